package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gateops/internal/domain/bay"
	"gateops/internal/domain/request"
	"gateops/internal/domain/visit"
	"gateops/internal/infra"
	"gateops/internal/pkg/clock"
	"gateops/internal/pkg/errs"
	"gateops/internal/usecase/shared"
)

var (
	ErrVisitNotFound      = errs.New("visit not found")
	ErrVisitAlreadyClosed = errs.New("visit is already closed")
	ErrInvalidInterval    = errs.New("visit interval is invalid")
)

type WalkInInput struct {
	Subject string
	Branch  string
}

type TruckLogInput struct {
	PlateNumber string
	Branch      string
	BayCode     string
}

type VisitCommands interface {
	// Close stamps time-out on an active visit and derives its dwell
	// minutes. Closing a truck visit releases its bay and completes the
	// originating request if one exists.
	Close(ctx context.Context, visitID uuid.UUID) error
	// AddWalkIn opens a visitor visit with no originating request.
	AddWalkIn(ctx context.Context, input WalkInInput) (uuid.UUID, error)
	// LogTruck admits a registered truck straight into the yard by plate
	// number, bypassing the request flow.
	LogTruck(ctx context.Context, input TruckLogInput) (uuid.UUID, error)
}

type visitCommandsImpl struct {
	uow       shared.UnitOfWork
	allocator *bay.Allocator
	clock     clock.Clock
}

func NewVisitCommands(uow shared.UnitOfWork, allocator *bay.Allocator, clk clock.Clock) VisitCommands {
	return &visitCommandsImpl{
		uow:       uow,
		allocator: allocator,
		clock:     clk,
	}
}

func (uc *visitCommandsImpl) Close(ctx context.Context, visitID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().VisitByID(ctx, visitID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVisitNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		v, err := reconstructVisit(snap)
		if err != nil {
			return errs.Mark(err, ErrValidationFailed)
		}

		if err := v.Close(now); err != nil {
			switch {
			case errors.Is(err, visit.ErrAlreadyClosed):
				return ErrVisitAlreadyClosed
			case errors.Is(err, visit.ErrInvalidInterval):
				return errs.Mark(err, ErrInvalidInterval)
			default:
				return errs.Mark(err, ErrValidationFailed)
			}
		}

		if err := tx.Visits().Close(ctx, tx.DB(), visitID, *v.TimeOut(), *v.DurationMinutes()); err != nil {
			// Zero rows means a concurrent close won.
			if infra.IsKind(err, infra.KindConflict) {
				return ErrVisitAlreadyClosed
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return uc.completeTruckRequest(ctx, tx, v, now)
	})
}

// completeTruckRequest moves the originating truck request approved -> done
// once its yard visit has closed. A request already decided elsewhere is
// left untouched.
func (uc *visitCommandsImpl) completeTruckRequest(ctx context.Context, tx shared.Tx, v *visit.Visit, now time.Time) error {
	if v.Kind() != request.KindTruck || v.RequestID() == nil {
		return nil
	}

	err := tx.Requests().UpdateStatus(ctx, tx.DB(), *v.RequestID(), request.StatusApproved, request.StatusDone, now)
	if err != nil && !infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *visitCommandsImpl) AddWalkIn(ctx context.Context, input WalkInInput) (uuid.UUID, error) {
	v, err := visit.NewVisitorVisit(nil, input.Subject, input.Branch, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, cerr := tx.Visits().Create(ctx, tx.DB(), v)
		if cerr != nil {
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *visitCommandsImpl) LogTruck(ctx context.Context, input TruckLogInput) (uuid.UUID, error) {
	now := uc.clock.Now()
	code, err := bay.NewCode(input.BayCode)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		matched, merr := tx.Reads().ClientByPlate(ctx, input.PlateNumber)
		if merr != nil {
			if infra.IsKind(merr, infra.KindNotFound) {
				return ErrClientNotRegistered
			}
			return errs.Mark(merr, ErrDatabaseOperationFailed)
		}

		occupied, oerr := occupiedCodes(ctx, tx, input.Branch)
		if oerr != nil {
			return oerr
		}
		if aerr := uc.allocator.CheckAssign(code, occupied); aerr != nil {
			if errors.Is(aerr, bay.ErrUnknown) {
				return ErrUnknownBay
			}
			return ErrBayOccupied
		}

		v, verr := visit.NewTruckVisit(nil, matched.ID, matched.ClientName, input.Branch, code, now)
		if verr != nil {
			return errs.Mark(verr, ErrValidationFailed)
		}

		created, cerr := tx.Visits().Create(ctx, tx.DB(), v)
		if cerr != nil {
			if infra.IsKind(cerr, infra.KindConflict) || infra.IsKind(cerr, infra.KindDuplicateKey) {
				return ErrBayOccupied
			}
			return errs.Mark(cerr, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

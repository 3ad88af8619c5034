package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"gateops/internal/domain/bay"
	"gateops/internal/domain/client"
	"gateops/internal/domain/request"
	"gateops/internal/domain/visit"
	"gateops/internal/infra"
	"gateops/internal/pkg/clock"
	"gateops/internal/pkg/errs"
	"gateops/internal/usecase/shared"
)

var (
	ErrRequestNotFound         = errs.New("request not found")
	ErrInvalidTransition       = errs.New("request is not in a state that allows this operation")
	ErrValidationFailed        = errs.New("request validation failed")
	ErrPlateAlreadyRegistered  = errs.New("a client with this plate number is already registered")
	ErrClientNotRegistered     = errs.New("no registered client matches the request plate number")
	ErrBayOccupied             = errs.New("bay is held by an active visit")
	ErrUnknownBay              = errs.New("bay does not exist in the yard")
	ErrBayCodeRequired         = errs.New("truck accept requires a bay code")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type SubmitAppointmentInput struct {
	Subject       string
	Branch        string
	Purpose       string
	PersonToVisit string
}

type SubmitTruckInput struct {
	Subject     string
	Branch      string
	PlateNumber string
	TruckType   string
	TruckBrand  string
	ClientName  string
}

type RequestCommands interface {
	SubmitAppointment(ctx context.Context, input SubmitAppointmentInput) (uuid.UUID, error)
	SubmitTruck(ctx context.Context, input SubmitTruckInput) (uuid.UUID, error)
	// Approve moves a pending request to approved. For truck requests the
	// plate is matched against registered clients: an unknown plate is
	// registered in the same transaction, a known plate is reused unless
	// expectNewClient demands a fresh registration.
	Approve(ctx context.Context, requestID uuid.UUID, expectNewClient bool) error
	Reject(ctx context.Context, requestID uuid.UUID) error
	// Accept converts an approved request into a visit. Appointments open a
	// visitor visit and the request completes immediately; trucks enter the
	// yard holding bayCode and the request completes when that visit closes.
	Accept(ctx context.Context, requestID uuid.UUID, bayCode *string) (uuid.UUID, error)
}

type requestCommandsImpl struct {
	uow       shared.UnitOfWork
	allocator *bay.Allocator
	clock     clock.Clock
}

func NewRequestCommands(uow shared.UnitOfWork, allocator *bay.Allocator, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{
		uow:       uow,
		allocator: allocator,
		clock:     clk,
	}
}

func (uc *requestCommandsImpl) SubmitAppointment(ctx context.Context, input SubmitAppointmentInput) (uuid.UUID, error) {
	details, err := request.NewAppointmentDetails(input.Purpose, input.PersonToVisit)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	req, err := request.NewAppointmentRequest(input.Subject, input.Branch, details, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	return uc.persist(ctx, req)
}

func (uc *requestCommandsImpl) SubmitTruck(ctx context.Context, input SubmitTruckInput) (uuid.UUID, error) {
	details, err := request.NewTruckDetails(input.PlateNumber, input.TruckType, input.TruckBrand, input.ClientName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	req, err := request.NewTruckRequest(input.Subject, input.Branch, details, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidationFailed)
	}

	return uc.persist(ctx, req)
}

func (uc *requestCommandsImpl) persist(ctx context.Context, req *request.Request) (uuid.UUID, error) {
	var id uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Requests().Create(ctx, tx.DB(), req)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (uc *requestCommandsImpl) Approve(ctx context.Context, requestID uuid.UUID, expectNewClient bool) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := uc.loadRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}

		from := req.Status()
		if err := req.Approve(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		if req.Kind() == request.KindTruck {
			if err := uc.matchClient(ctx, tx, req.Truck(), req.Branch(), expectNewClient); err != nil {
				return err
			}
		}

		return uc.updateStatus(ctx, tx, requestID, from, req.Status(), now)
	})
}

func (uc *requestCommandsImpl) Reject(ctx context.Context, requestID uuid.UUID) error {
	now := uc.clock.Now()
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := uc.loadRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}

		from := req.Status()
		if err := req.Reject(now); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		return uc.updateStatus(ctx, tx, requestID, from, req.Status(), now)
	})
}

func (uc *requestCommandsImpl) Accept(ctx context.Context, requestID uuid.UUID, bayCode *string) (uuid.UUID, error) {
	now := uc.clock.Now()
	var visitID uuid.UUID

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := uc.loadRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if err := req.CanAccept(); err != nil {
			return errs.Mark(err, ErrInvalidTransition)
		}

		var v *visit.Visit
		switch req.Kind() {
		case request.KindTruck:
			v, err = uc.buildTruckVisit(ctx, tx, req, bayCode, now)
		default:
			v, err = uc.buildVisitorVisit(ctx, tx, req, now)
		}
		if err != nil {
			return err
		}

		created, err := tx.Visits().Create(ctx, tx.DB(), v)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrBayOccupied
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		visitID = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return visitID, nil
}

// buildVisitorVisit opens the appointment visit and completes the request in
// the same transaction.
func (uc *requestCommandsImpl) buildVisitorVisit(ctx context.Context, tx shared.Tx, req *request.Request, now time.Time) (*visit.Visit, error) {
	from := req.Status()
	if err := req.MarkDone(now); err != nil {
		return nil, errs.Mark(err, ErrInvalidTransition)
	}
	if err := uc.updateStatus(ctx, tx, req.ID(), from, req.Status(), now); err != nil {
		return nil, err
	}

	requestID := req.ID()
	v, err := visit.NewVisitorVisit(&requestID, req.Subject(), req.Branch(), now)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	return v, nil
}

// buildTruckVisit checks the bay against the yard and the active-visit
// snapshot before the guarded insert. The request stays approved until the
// yard visit closes.
func (uc *requestCommandsImpl) buildTruckVisit(ctx context.Context, tx shared.Tx, req *request.Request, bayCode *string, now time.Time) (*visit.Visit, error) {
	if bayCode == nil {
		return nil, ErrBayCodeRequired
	}
	code, err := bay.NewCode(*bayCode)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	occupied, err := occupiedCodes(ctx, tx, req.Branch())
	if err != nil {
		return nil, err
	}
	if err := uc.allocator.CheckAssign(code, occupied); err != nil {
		switch {
		case errors.Is(err, bay.ErrUnknown):
			return nil, ErrUnknownBay
		default:
			return nil, ErrBayOccupied
		}
	}

	matched, err := tx.Reads().ClientByPlate(ctx, req.Truck().PlateNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotRegistered
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	requestID := req.ID()
	v, err := visit.NewTruckVisit(&requestID, matched.ID, req.Subject(), req.Branch(), code, now)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	return v, nil
}

func (uc *requestCommandsImpl) matchClient(ctx context.Context, tx shared.Tx, details *request.TruckDetails, branch string, expectNewClient bool) error {
	_, err := tx.Reads().ClientByPlate(ctx, details.PlateNumber)
	if err == nil {
		if expectNewClient {
			return ErrPlateAlreadyRegistered
		}
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	plate, perr := client.NewPlateNumber(details.PlateNumber)
	if perr != nil {
		return errs.Mark(perr, ErrValidationFailed)
	}
	name := details.ClientName
	if name == "" {
		name = "unknown client"
	}
	c, cerr := client.NewClient(name, plate, details.TruckType, details.TruckBrand, branch)
	if cerr != nil {
		return errs.Mark(cerr, ErrValidationFailed)
	}

	if _, err := tx.Clients().Create(ctx, tx.DB(), c); err != nil {
		// A concurrent approval may have registered the plate first.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			if expectNewClient {
				return ErrPlateAlreadyRegistered
			}
			return nil
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (uc *requestCommandsImpl) loadRequest(ctx context.Context, tx shared.Tx, id uuid.UUID) (*request.Request, error) {
	snap, err := tx.Reads().RequestByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	req, err := reconstructRequest(snap)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}
	return req, nil
}

func (uc *requestCommandsImpl) updateStatus(ctx context.Context, tx shared.Tx, id uuid.UUID, from, to request.Status, decidedAt time.Time) error {
	if err := tx.Requests().UpdateStatus(ctx, tx.DB(), id, from, to, decidedAt); err != nil {
		// Zero rows means another operator decided first.
		if infra.IsKind(err, infra.KindConflict) {
			return ErrInvalidTransition
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// occupiedCodes reads the active-visit bay snapshot for a branch as parsed
// codes. A bay code that fails to parse means the stored row is corrupt, so
// the occupancy picture cannot be trusted and the command fails.
func occupiedCodes(ctx context.Context, tx shared.Tx, branch string) ([]bay.Code, error) {
	raw, err := tx.Reads().OccupiedBays(ctx, branch)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	codes := make([]bay.Code, 0, len(raw))
	for _, s := range raw {
		code, cerr := bay.NewCode(s)
		if cerr != nil {
			return nil, errs.Mark(errs.Wrap(cerr, "invalid bay code on active visit"), ErrDatabaseOperationFailed)
		}
		codes = append(codes, code)
	}
	return codes, nil
}

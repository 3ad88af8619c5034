package visit

import (
	"errors"
	"strings"
	"time"

	"gateops/internal/domain/bay"
	"gateops/internal/domain/request"

	"github.com/google/uuid"
)

var (
	ErrEmptySubject  = errors.New("subject must not be empty")
	ErrEmptyBranch   = errors.New("branch must not be empty")
	ErrAlreadyClosed = errors.New("visit is already closed")
	ErrBayRequired   = errors.New("truck visit requires a bay")
)

// Visit is a timed presence window for a visitor or truck. timeOut and
// durationMinutes are written exactly once, by Close, and are immutable
// afterward.
type Visit struct {
	id              uuid.UUID
	kind            request.Kind
	requestID       *uuid.UUID
	clientID        *uuid.UUID
	subject         string
	branch          string
	bay             *bay.Code
	timeIn          time.Time
	timeOut         *time.Time
	durationMinutes *int
	createdAt       time.Time
	updatedAt       time.Time
}

// NewVisitorVisit opens a presence window for a person. requestID is nil
// for walk-in adds.
func NewVisitorVisit(requestID *uuid.UUID, subject, branch string, now time.Time) (*Visit, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, ErrEmptyBranch
	}

	return &Visit{
		id:        uuid.New(),
		kind:      request.KindAppointment,
		requestID: requestID,
		subject:   subject,
		branch:    branch,
		timeIn:    now,
	}, nil
}

// NewTruckVisit opens a yard presence window holding a bay. clientID points
// at the durable registration matched by plate number.
func NewTruckVisit(requestID *uuid.UUID, clientID uuid.UUID, subject, branch string, code bay.Code, now time.Time) (*Visit, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, ErrEmptyBranch
	}
	if code.String() == "" {
		return nil, ErrBayRequired
	}

	return &Visit{
		id:        uuid.New(),
		kind:      request.KindTruck,
		requestID: requestID,
		clientID:  &clientID,
		subject:   subject,
		branch:    branch,
		bay:       &code,
		timeIn:    now,
	}, nil
}

func ReconstructVisit(
	id uuid.UUID,
	kind request.Kind,
	requestID, clientID *uuid.UUID,
	subject, branch string,
	code *bay.Code,
	timeIn time.Time,
	timeOut *time.Time,
	durationMinutes *int,
	createdAt, updatedAt time.Time,
) *Visit {
	return &Visit{
		id:              id,
		kind:            kind,
		requestID:       requestID,
		clientID:        clientID,
		subject:         subject,
		branch:          branch,
		bay:             code,
		timeIn:          timeIn,
		timeOut:         timeOut,
		durationMinutes: durationMinutes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Close stamps timeOut and derives the dwell minutes. Closing releases the
// bay implicitly: availability is recomputed from active visits only.
func (v *Visit) Close(now time.Time) error {
	if v.timeOut != nil {
		return ErrAlreadyClosed
	}

	minutes, err := DurationMinutes(v.timeIn, now)
	if err != nil {
		return err
	}

	v.timeOut = &now
	v.durationMinutes = &minutes
	return nil
}

func (v *Visit) IsActive() bool {
	return v.timeOut == nil
}

func (v *Visit) ID() uuid.UUID         { return v.id }
func (v *Visit) Kind() request.Kind    { return v.kind }
func (v *Visit) RequestID() *uuid.UUID { return v.requestID }
func (v *Visit) ClientID() *uuid.UUID  { return v.clientID }
func (v *Visit) Subject() string       { return v.subject }
func (v *Visit) Branch() string        { return v.branch }
func (v *Visit) Bay() *bay.Code        { return v.bay }
func (v *Visit) TimeIn() time.Time     { return v.timeIn }
func (v *Visit) TimeOut() *time.Time   { return v.timeOut }
func (v *Visit) DurationMinutes() *int { return v.durationMinutes }
func (v *Visit) CreatedAt() time.Time  { return v.createdAt }
func (v *Visit) UpdatedAt() time.Time  { return v.updatedAt }

package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request is an externally submitted ask (appointment or truck registration)
// awaiting an operator decision. Its status moves pending -> approved ->
// done, or pending -> rejected; rejected and done are terminal.
type Request struct {
	id          uuid.UUID
	kind        Kind
	subject     string
	branch      string
	status      Status
	appointment *AppointmentDetails
	truck       *TruckDetails
	submittedAt time.Time
	decidedAt   *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAppointmentRequest builds a pending appointment request. Submission
// always succeeds once field validation passes.
func NewAppointmentRequest(subject, branch string, details AppointmentDetails, now time.Time) (*Request, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, ErrEmptyBranch
	}

	return &Request{
		id:          uuid.New(),
		kind:        KindAppointment,
		subject:     subject,
		branch:      branch,
		status:      StatusPending,
		appointment: &details,
		submittedAt: now,
	}, nil
}

// NewTruckRequest builds a pending truck-registration request.
func NewTruckRequest(subject, branch string, details TruckDetails, now time.Time) (*Request, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = details.ClientName
	}
	if subject == "" {
		return nil, ErrEmptySubject
	}
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return nil, ErrEmptyBranch
	}

	return &Request{
		id:          uuid.New(),
		kind:        KindTruck,
		subject:     subject,
		branch:      branch,
		status:      StatusPending,
		truck:       &details,
		submittedAt: now,
	}, nil
}

func ReconstructRequest(
	id uuid.UUID,
	kind Kind,
	subject, branch string,
	status Status,
	appointment *AppointmentDetails,
	truck *TruckDetails,
	submittedAt time.Time,
	decidedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:          id,
		kind:        kind,
		subject:     subject,
		branch:      branch,
		status:      status,
		appointment: appointment,
		truck:       truck,
		submittedAt: submittedAt,
		decidedAt:   decidedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Approve transitions pending -> approved.
func (r *Request) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusApproved
	r.decidedAt = &now
	return nil
}

// Reject transitions pending -> rejected. Terminal; the record is retained
// for audit and never produces a visit.
func (r *Request) Reject(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidTransition
	}
	r.status = StatusRejected
	r.decidedAt = &now
	return nil
}

// CanAccept reports whether the request may be converted into a visit.
func (r *Request) CanAccept() error {
	if r.status != StatusApproved {
		return ErrInvalidTransition
	}
	return nil
}

// MarkDone transitions approved -> done. For appointments this happens at
// accept time; for trucks once the yard visit produced by accept is closed.
func (r *Request) MarkDone(now time.Time) error {
	if r.status != StatusApproved {
		return ErrInvalidTransition
	}
	r.status = StatusDone
	r.decidedAt = &now
	return nil
}

func (r *Request) ID() uuid.UUID                    { return r.id }
func (r *Request) Kind() Kind                       { return r.kind }
func (r *Request) Subject() string                  { return r.subject }
func (r *Request) Branch() string                   { return r.branch }
func (r *Request) Status() Status                   { return r.status }
func (r *Request) Appointment() *AppointmentDetails { return r.appointment }
func (r *Request) Truck() *TruckDetails             { return r.truck }
func (r *Request) SubmittedAt() time.Time           { return r.submittedAt }
func (r *Request) DecidedAt() *time.Time            { return r.decidedAt }
func (r *Request) CreatedAt() time.Time             { return r.createdAt }
func (r *Request) UpdatedAt() time.Time             { return r.updatedAt }

package shared

import (
	"context"
	"time"

	"gateops/internal/domain/client"
	"gateops/internal/domain/request"
	"gateops/internal/domain/visit"
	"gateops/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Requests() RequestRepository
	Visits() VisitRepository
	Clients() ClientRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	VisitByID(ctx context.Context, id uuid.UUID) (*VisitSnapshot, error)
	ClientByPlate(ctx context.Context, plateNumber string) (*ClientSnapshot, error)
	// OccupiedBays returns the normalized bay codes held by active truck
	// visits in a branch.
	OccupiedBays(ctx context.Context, branch string) ([]string, error)
}

// Minimal snapshots for command-side validation. Reconstructed into domain
// aggregates before any transition check.
type RequestSnapshot struct {
	ID            uuid.UUID
	Kind          string
	Subject       string
	Branch        string
	Status        string
	Purpose       *string
	PersonToVisit *string
	PlateNumber   *string
	TruckType     *string
	TruckBrand    *string
	ClientName    *string
	SubmittedAt   time.Time
	DecidedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type VisitSnapshot struct {
	ID              uuid.UUID
	Kind            string
	RequestID       *uuid.UUID
	ClientID        *uuid.UUID
	Subject         string
	Branch          string
	Bay             *string
	TimeIn          time.Time
	TimeOut         *time.Time
	DurationMinutes *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ClientSnapshot struct {
	ID          uuid.UUID
	ClientName  string
	PlateNumber string
	TruckType   string
	TruckBrand  string
	Branch      string
}

type RequestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, req *request.Request) (uuid.UUID, error)
	// UpdateStatus is a conditional write: the row moves from -> to only if
	// it still holds from, so concurrent operators cannot both win.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to request.Status, decidedAt time.Time) error
}

type VisitRepository interface {
	// Create inserts the visit; for truck visits the insert carries a
	// NOT EXISTS guard on the bay so exclusivity is enforced at the write.
	Create(ctx context.Context, dbtx db.DBTX, v *visit.Visit) (uuid.UUID, error)
	// Close stamps time_out and duration only while time_out is still null.
	Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, timeOut time.Time, durationMinutes int) error
}

type ClientRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *client.Client) (uuid.UUID, error)
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}

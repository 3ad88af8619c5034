package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gateops/internal/domain/visit"
	"gateops/internal/infra"
	"gateops/internal/infra/db"
)

type VisitRepository struct{}

func NewVisitRepository() *VisitRepository {
	return &VisitRepository{}
}

const createVisitSQL = `
INSERT INTO visits (
    id, kind, request_id, client_id, subject, branch, bay,
    time_in, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, $7,
    $8, now(), now()
)
RETURNING id`

// createGuardedVisitSQL only inserts while no active visit in the branch
// holds the same bay. Bay exclusivity is enforced here, at the write,
// regardless of what the caller checked beforehand.
const createGuardedVisitSQL = `
INSERT INTO visits (
    id, kind, request_id, client_id, subject, branch, bay,
    time_in, created_at, updated_at
)
SELECT $1, $2, $3, $4, $5, $6, $7, $8, now(), now()
WHERE NOT EXISTS (
    SELECT 1 FROM visits
    WHERE branch = $6 AND bay = $7 AND time_out IS NULL
)
RETURNING id`

func (r *VisitRepository) Create(ctx context.Context, dbtx db.DBTX, v *visit.Visit) (uuid.UUID, error) {
	var bayCode *string
	if b := v.Bay(); b != nil {
		s := b.String()
		bayCode = &s
	}

	sql := createVisitSQL
	if bayCode != nil {
		sql = createGuardedVisitSQL
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, sql,
		v.ID(), v.Kind().String(), v.RequestID(), v.ClientID(),
		v.Subject(), v.Branch(), bayCode, v.TimeIn(),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, infra.WrapRepoErr("bay is held by an active visit", err, infra.KindConflict)
		}
		return uuid.Nil, wrapWriteErr("failed to create visit", err)
	}
	return id, nil
}

const closeVisitSQL = `
UPDATE visits
SET time_out = $2, duration_minutes = $3, updated_at = now()
WHERE id = $1 AND time_out IS NULL`

// Close stamps the visit exactly once. Zero affected rows means a
// concurrent close already won.
func (r *VisitRepository) Close(ctx context.Context, dbtx db.DBTX, id uuid.UUID, timeOut time.Time, durationMinutes int) error {
	tag, err := dbtx.Exec(ctx, closeVisitSQL, id, timeOut, durationMinutes)
	if err != nil {
		return wrapWriteErr("failed to close visit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("visit already closed", nil, infra.KindConflict)
	}
	return nil
}

package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gateops/internal/infra"
	"gateops/internal/infra/db"
	"gateops/internal/usecase/queries"
	"gateops/internal/usecase/shared"
)

const visitColumns = `id, kind, request_id, client_id, subject, branch, bay,
       time_in, time_out, duration_minutes, created_at, updated_at`

type VisitReadStore struct {
	db db.DBTX
}

func NewVisitReadStore(db db.DBTX) *VisitReadStore {
	return &VisitReadStore{db: db}
}

func (r *VisitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VisitView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+visitColumns+` FROM visits WHERE id = $1`, id)

	view, err := scanVisitView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("visit not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find visit by ID", err)
	}
	return view, nil
}

func (r *VisitReadStore) FindFiltered(ctx context.Context, filters queries.VisitFilters, limit int) ([]*queries.VisitView, error) {
	sql := `SELECT ` + visitColumns + ` FROM visits`
	var conds []string
	var args []any

	if filters.Branch != nil {
		args = append(args, *filters.Branch)
		conds = append(conds, fmt.Sprintf("branch = $%d", len(args)))
	}
	if filters.ActiveOnly {
		conds = append(conds, "time_out IS NULL")
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY time_in DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visits", err)
	}
	defer rows.Close()

	views := make([]*queries.VisitView, 0, limit)
	for rows.Next() {
		view, serr := scanVisitView(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan visit row", serr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate visit rows", err)
	}
	return views, nil
}

// OccupiedBays returns the bay codes held by active visits in a branch.
// Closed visits release their bay by dropping out of this set.
func (r *VisitReadStore) OccupiedBays(ctx context.Context, branch string) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT bay FROM visits WHERE branch = $1 AND bay IS NOT NULL AND time_out IS NULL`,
		branch,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied bays", err)
	}
	defer rows.Close()

	var bays []string
	for rows.Next() {
		var bay string
		if serr := rows.Scan(&bay); serr != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied bay", serr)
		}
		bays = append(bays, bay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupied bays", err)
	}
	return bays, nil
}

func (r *VisitReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.VisitSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.VisitSnapshot{
		ID:              view.ID,
		Kind:            view.Kind,
		RequestID:       view.RequestID,
		ClientID:        view.ClientID,
		Subject:         view.Subject,
		Branch:          view.Branch,
		Bay:             view.Bay,
		TimeIn:          view.TimeIn,
		TimeOut:         view.TimeOut,
		DurationMinutes: view.DurationMinutes,
		CreatedAt:       view.CreatedAt,
		UpdatedAt:       view.UpdatedAt,
	}, nil
}

func scanVisitView(row pgx.Row) (*queries.VisitView, error) {
	var v queries.VisitView
	err := row.Scan(
		&v.ID, &v.Kind, &v.RequestID, &v.ClientID, &v.Subject, &v.Branch, &v.Bay,
		&v.TimeIn, &v.TimeOut, &v.DurationMinutes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

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

const requestColumns = `id, kind, subject, branch, status,
       purpose, person_to_visit,
       plate_number, truck_type, truck_brand, client_name,
       submitted_at, decided_at, created_at, updated_at`

type RequestReadStore struct {
	db db.DBTX
}

func NewRequestReadStore(db db.DBTX) *RequestReadStore {
	return &RequestReadStore{db: db}
}

func (r *RequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id = $1`, id)

	view, err := scanRequestView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find request by ID", err)
	}
	return view, nil
}

func (r *RequestReadStore) FindFiltered(ctx context.Context, filters queries.RequestFilters, limit int) ([]*queries.RequestView, error) {
	sql := `SELECT ` + requestColumns + ` FROM requests`
	var conds []string
	var args []any

	if filters.Branch != nil {
		args = append(args, *filters.Branch)
		conds = append(conds, fmt.Sprintf("branch = $%d", len(args)))
	}
	if filters.Status != nil {
		args = append(args, *filters.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filters.Kind != nil {
		args = append(args, *filters.Kind)
		conds = append(conds, fmt.Sprintf("kind = $%d", len(args)))
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY submitted_at DESC LIMIT $%d", len(args))

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list requests", err)
	}
	defer rows.Close()

	views := make([]*queries.RequestView, 0, limit)
	for rows.Next() {
		view, serr := scanRequestView(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", serr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate request rows", err)
	}
	return views, nil
}

// SnapshotByID feeds the command side; same row shape, different model.
func (r *RequestReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	view, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &shared.RequestSnapshot{
		ID:            view.ID,
		Kind:          view.Kind,
		Subject:       view.Subject,
		Branch:        view.Branch,
		Status:        view.Status,
		Purpose:       view.Purpose,
		PersonToVisit: view.PersonToVisit,
		PlateNumber:   view.PlateNumber,
		TruckType:     view.TruckType,
		TruckBrand:    view.TruckBrand,
		ClientName:    view.ClientName,
		SubmittedAt:   view.SubmittedAt,
		DecidedAt:     view.DecidedAt,
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}, nil
}

func scanRequestView(row pgx.Row) (*queries.RequestView, error) {
	var v queries.RequestView
	err := row.Scan(
		&v.ID, &v.Kind, &v.Subject, &v.Branch, &v.Status,
		&v.Purpose, &v.PersonToVisit,
		&v.PlateNumber, &v.TruckType, &v.TruckBrand, &v.ClientName,
		&v.SubmittedAt, &v.DecidedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

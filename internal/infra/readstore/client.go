package readstore

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"gateops/internal/infra"
	"gateops/internal/infra/db"
	"gateops/internal/usecase/queries"
	"gateops/internal/usecase/shared"
)

const clientColumns = `id, client_name, plate_number, truck_type, truck_brand, branch, created_at, updated_at`

type ClientReadStore struct {
	db db.DBTX
}

func NewClientReadStore(db db.DBTX) *ClientReadStore {
	return &ClientReadStore{db: db}
}

// FindByPlate matches case-insensitively; plates are stored upper case.
func (r *ClientReadStore) FindByPlate(ctx context.Context, plateNumber string) (*queries.ClientView, error) {
	plate := strings.ToUpper(strings.TrimSpace(plateNumber))
	row := r.db.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE plate_number = $1`, plate)

	view, err := scanClientView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find client by plate", err)
	}
	return view, nil
}

func (r *ClientReadStore) FindFiltered(ctx context.Context, branch *string, limit int) ([]*queries.ClientView, error) {
	sql := `SELECT ` + clientColumns + ` FROM clients`
	var args []any

	if branch != nil {
		args = append(args, *branch)
		sql += " WHERE branch = $1"
	}

	args = append(args, limit)
	if branch != nil {
		sql += " ORDER BY client_name ASC LIMIT $2"
	} else {
		sql += " ORDER BY client_name ASC LIMIT $1"
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	defer rows.Close()

	views := make([]*queries.ClientView, 0, limit)
	for rows.Next() {
		view, serr := scanClientView(rows)
		if serr != nil {
			return nil, infra.WrapRepoErr("failed to scan client row", serr)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate client rows", err)
	}
	return views, nil
}

func (r *ClientReadStore) SnapshotByPlate(ctx context.Context, plateNumber string) (*shared.ClientSnapshot, error) {
	view, err := r.FindByPlate(ctx, plateNumber)
	if err != nil {
		return nil, err
	}

	return &shared.ClientSnapshot{
		ID:          view.ID,
		ClientName:  view.ClientName,
		PlateNumber: view.PlateNumber,
		TruckType:   view.TruckType,
		TruckBrand:  view.TruckBrand,
		Branch:      view.Branch,
	}, nil
}

func scanClientView(row pgx.Row) (*queries.ClientView, error) {
	var v queries.ClientView
	err := row.Scan(
		&v.ID, &v.ClientName, &v.PlateNumber, &v.TruckType, &v.TruckBrand, &v.Branch,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

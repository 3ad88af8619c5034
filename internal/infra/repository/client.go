package repository

import (
	"context"

	"github.com/google/uuid"

	"gateops/internal/domain/client"
	"gateops/internal/infra/db"
)

type ClientRepository struct{}

func NewClientRepository() *ClientRepository {
	return &ClientRepository{}
}

const createClientSQL = `
INSERT INTO clients (
    id, client_name, plate_number, truck_type, truck_brand, branch,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6, now(), now()
)
RETURNING id`

// Create relies on the unique index on plate_number: a duplicate plate
// surfaces as KindDuplicateKey for the caller to resolve.
func (r *ClientRepository) Create(ctx context.Context, dbtx db.DBTX, c *client.Client) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createClientSQL,
		c.ID(), c.ClientName(), c.PlateNumber().Value(),
		c.TruckType(), c.TruckBrand(), c.Branch(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create client", err)
	}
	return id, nil
}

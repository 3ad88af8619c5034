package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gateops/internal/domain/request"
	"gateops/internal/infra"
	"gateops/internal/infra/db"
)

type RequestRepository struct{}

func NewRequestRepository() *RequestRepository {
	return &RequestRepository{}
}

const createRequestSQL = `
INSERT INTO requests (
    id, kind, subject, branch, status,
    purpose, person_to_visit,
    plate_number, truck_type, truck_brand, client_name,
    submitted_at, created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7,
    $8, $9, $10, $11,
    $12, now(), now()
)
RETURNING id`

func (r *RequestRepository) Create(ctx context.Context, dbtx db.DBTX, req *request.Request) (uuid.UUID, error) {
	var purpose, personToVisit, plateNumber, truckType, truckBrand, clientName *string
	if a := req.Appointment(); a != nil {
		purpose = &a.Purpose
		if a.PersonToVisit != "" {
			personToVisit = &a.PersonToVisit
		}
	}
	if t := req.Truck(); t != nil {
		plateNumber = &t.PlateNumber
		if t.TruckType != "" {
			truckType = &t.TruckType
		}
		if t.TruckBrand != "" {
			truckBrand = &t.TruckBrand
		}
		if t.ClientName != "" {
			clientName = &t.ClientName
		}
	}

	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createRequestSQL,
		req.ID(), req.Kind().String(), req.Subject(), req.Branch(), req.Status().String(),
		purpose, personToVisit,
		plateNumber, truckType, truckBrand, clientName,
		req.SubmittedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create request", err)
	}
	return id, nil
}

const updateRequestStatusSQL = `
UPDATE requests
SET status = $3, decided_at = $4, updated_at = now()
WHERE id = $1 AND status = $2`

// UpdateStatus moves the row from -> to only while it still holds from.
// Zero affected rows is reported as a conflict: a concurrent decision won.
func (r *RequestRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to request.Status, decidedAt time.Time) error {
	tag, err := dbtx.Exec(ctx, updateRequestStatusSQL, id, from.String(), to.String(), decidedAt)
	if err != nil {
		return wrapWriteErr("failed to update request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("request status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

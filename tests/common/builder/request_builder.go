//go:build unit || e2e

package builder

import (
	"time"

	domrequest "gateops/internal/domain/request"
	reqdto "gateops/internal/handler/dto/request"
	"gateops/internal/usecase/queries"
	"gateops/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestBuilder struct {
	ID            uuid.UUID
	Kind          string
	Subject       string
	Branch        string
	Status        string
	Purpose       string
	PersonToVisit string
	PlateNumber   string
	TruckType     string
	TruckBrand    string
	ClientName    string
	SubmittedAt   time.Time
}

func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		ID:            uuid.New(),
		Kind:          "appointment",
		Subject:       "Jane Visitor",
		Branch:        "main",
		Status:        "pending",
		Purpose:       "supplier meeting",
		PersonToVisit: "Warehouse Manager",
		PlateNumber:   "ABC-1234",
		TruckType:     "10-wheeler",
		TruckBrand:    "Isuzu",
		ClientName:    "Acme Logistics",
		SubmittedAt:   time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) Truck() *RequestBuilder {
	b.Kind = "truck"
	b.Subject = b.ClientName
	return b
}

func (b *RequestBuilder) BuildDomain() (*domrequest.Request, error) {
	if b.Kind == "truck" {
		details, err := domrequest.NewTruckDetails(b.PlateNumber, b.TruckType, b.TruckBrand, b.ClientName)
		if err != nil {
			return nil, err
		}
		return domrequest.NewTruckRequest(b.Subject, b.Branch, details, b.SubmittedAt)
	}

	details, err := domrequest.NewAppointmentDetails(b.Purpose, b.PersonToVisit)
	if err != nil {
		return nil, err
	}
	return domrequest.NewAppointmentRequest(b.Subject, b.Branch, details, b.SubmittedAt)
}

func (b *RequestBuilder) BuildSubmitAppointmentDTO() reqdto.SubmitAppointmentRequest {
	return reqdto.SubmitAppointmentRequest{
		Subject:       b.Subject,
		Branch:        b.Branch,
		Purpose:       b.Purpose,
		PersonToVisit: b.PersonToVisit,
	}
}

func (b *RequestBuilder) BuildSubmitTruckDTO() reqdto.SubmitTruckRequest {
	return reqdto.SubmitTruckRequest{
		Subject:     b.Subject,
		Branch:      b.Branch,
		PlateNumber: b.PlateNumber,
		TruckType:   b.TruckType,
		TruckBrand:  b.TruckBrand,
		ClientName:  b.ClientName,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	view := &queries.RequestView{
		ID:          b.ID,
		Kind:        b.Kind,
		Subject:     b.Subject,
		Branch:      b.Branch,
		Status:      b.Status,
		SubmittedAt: b.SubmittedAt,
		CreatedAt:   b.SubmittedAt,
		UpdatedAt:   b.SubmittedAt,
	}
	if b.Kind == "truck" {
		view.PlateNumber = &b.PlateNumber
		view.TruckType = &b.TruckType
		view.TruckBrand = &b.TruckBrand
		view.ClientName = &b.ClientName
	} else {
		view.Purpose = &b.Purpose
		view.PersonToVisit = &b.PersonToVisit
	}
	return view
}

func (b *RequestBuilder) BuildSnapshot() *shared.RequestSnapshot {
	snap := &shared.RequestSnapshot{
		ID:          b.ID,
		Kind:        b.Kind,
		Subject:     b.Subject,
		Branch:      b.Branch,
		Status:      b.Status,
		SubmittedAt: b.SubmittedAt,
		CreatedAt:   b.SubmittedAt,
		UpdatedAt:   b.SubmittedAt,
	}
	if b.Kind == "truck" {
		snap.PlateNumber = &b.PlateNumber
		snap.TruckType = &b.TruckType
		snap.TruckBrand = &b.TruckBrand
		snap.ClientName = &b.ClientName
	} else {
		snap.Purpose = &b.Purpose
		snap.PersonToVisit = &b.PersonToVisit
	}
	return snap
}

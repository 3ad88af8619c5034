//go:build unit || e2e

package builder

import (
	"time"

	"gateops/internal/domain/bay"
	"gateops/internal/domain/visit"
	"gateops/internal/usecase/queries"
	"gateops/internal/usecase/shared"

	"github.com/google/uuid"
)

type VisitBuilder struct {
	ID        uuid.UUID
	Kind      string
	RequestID *uuid.UUID
	ClientID  *uuid.UUID
	Subject   string
	Branch    string
	Bay       string
	TimeIn    time.Time
	TimeOut   *time.Time
}

func NewVisitBuilder() *VisitBuilder {
	return &VisitBuilder{
		ID:      uuid.New(),
		Kind:    "appointment",
		Subject: "Jane Visitor",
		Branch:  "main",
		Bay:     "3a",
		TimeIn:  time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC),
	}
}

func (b *VisitBuilder) With(mutate func(*VisitBuilder)) *VisitBuilder {
	mutate(b)
	return b
}

func (b *VisitBuilder) Truck() *VisitBuilder {
	b.Kind = "truck"
	b.Subject = "Acme Logistics"
	clientID := uuid.New()
	b.ClientID = &clientID
	return b
}

func (b *VisitBuilder) BuildDomain() (*visit.Visit, error) {
	if b.Kind == "truck" {
		code, err := bay.NewCode(b.Bay)
		if err != nil {
			return nil, err
		}
		clientID := uuid.New()
		if b.ClientID != nil {
			clientID = *b.ClientID
		}
		return visit.NewTruckVisit(b.RequestID, clientID, b.Subject, b.Branch, code, b.TimeIn)
	}
	return visit.NewVisitorVisit(b.RequestID, b.Subject, b.Branch, b.TimeIn)
}

func (b *VisitBuilder) BuildView() *queries.VisitView {
	view := &queries.VisitView{
		ID:        b.ID,
		Kind:      b.Kind,
		RequestID: b.RequestID,
		ClientID:  b.ClientID,
		Subject:   b.Subject,
		Branch:    b.Branch,
		TimeIn:    b.TimeIn,
		TimeOut:   b.TimeOut,
		CreatedAt: b.TimeIn,
		UpdatedAt: b.TimeIn,
	}
	if b.Kind == "truck" {
		view.Bay = &b.Bay
	}
	if b.TimeOut != nil {
		minutes := int(b.TimeOut.Sub(b.TimeIn) / time.Minute)
		view.DurationMinutes = &minutes
	}
	return view
}

func (b *VisitBuilder) BuildSnapshot() *shared.VisitSnapshot {
	snap := &shared.VisitSnapshot{
		ID:        b.ID,
		Kind:      b.Kind,
		RequestID: b.RequestID,
		ClientID:  b.ClientID,
		Subject:   b.Subject,
		Branch:    b.Branch,
		TimeIn:    b.TimeIn,
		TimeOut:   b.TimeOut,
		CreatedAt: b.TimeIn,
		UpdatedAt: b.TimeIn,
	}
	if b.Kind == "truck" {
		snap.Bay = &b.Bay
	}
	if b.TimeOut != nil {
		minutes := int(b.TimeOut.Sub(b.TimeIn) / time.Minute)
		snap.DurationMinutes = &minutes
	}
	return snap
}

package queries

import (
	"context"

	"gateops/internal/infra"
	"gateops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrVisitNotFound    = errs.New("visit not found")
	ErrVisitQueryFailed = errs.New("visit query failed")
)

type VisitQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VisitView, error)
	List(ctx context.Context, filters VisitFilters, limit int) ([]*VisitView, error)
}

type VisitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VisitView, error)
	FindFiltered(ctx context.Context, filters VisitFilters, limit int) ([]*VisitView, error)
	// OccupiedBays returns normalized bay codes held by active truck visits.
	OccupiedBays(ctx context.Context, branch string) ([]string, error)
}

type visitQueriesImpl struct {
	readStore VisitReadStore
}

func NewVisitQueries(readStore VisitReadStore) VisitQueries {
	return &visitQueriesImpl{readStore: readStore}
}

func (q *visitQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VisitView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, errs.Mark(err, ErrVisitQueryFailed)
	}
	return view, nil
}

func (q *visitQueriesImpl) List(ctx context.Context, filters VisitFilters, limit int) ([]*VisitView, error) {
	views, err := q.readStore.FindFiltered(ctx, filters, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrVisitQueryFailed)
	}
	return views, nil
}

package queries

import (
	"context"

	"gateops/internal/infra"
	"gateops/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound    = errs.New("request not found")
	ErrRequestQueryFailed = errs.New("request query failed")
)

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	List(ctx context.Context, filters RequestFilters, limit int) ([]*RequestView, error)
}

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindFiltered(ctx context.Context, filters RequestFilters, limit int) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	readStore RequestReadStore
}

func NewRequestQueries(readStore RequestReadStore) RequestQueries {
	return &requestQueriesImpl{readStore: readStore}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, errs.Mark(err, ErrRequestQueryFailed)
	}
	return view, nil
}

func (q *requestQueriesImpl) List(ctx context.Context, filters RequestFilters, limit int) ([]*RequestView, error) {
	views, err := q.readStore.FindFiltered(ctx, filters, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrRequestQueryFailed)
	}
	return views, nil
}

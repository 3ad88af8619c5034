package queries

import (
	"context"

	"gateops/internal/infra"
	"gateops/internal/pkg/errs"
)

var (
	ErrClientNotFound    = errs.New("client not found")
	ErrClientQueryFailed = errs.New("client query failed")
)

type ClientQueries interface {
	GetByPlate(ctx context.Context, plateNumber string) (*ClientView, error)
	List(ctx context.Context, branch *string, limit int) ([]*ClientView, error)
}

type ClientReadStore interface {
	FindByPlate(ctx context.Context, plateNumber string) (*ClientView, error)
	FindFiltered(ctx context.Context, branch *string, limit int) ([]*ClientView, error)
}

type clientQueriesImpl struct {
	readStore ClientReadStore
}

func NewClientQueries(readStore ClientReadStore) ClientQueries {
	return &clientQueriesImpl{readStore: readStore}
}

func (q *clientQueriesImpl) GetByPlate(ctx context.Context, plateNumber string) (*ClientView, error) {
	view, err := q.readStore.FindByPlate(ctx, plateNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, errs.Mark(err, ErrClientQueryFailed)
	}
	return view, nil
}

func (q *clientQueriesImpl) List(ctx context.Context, branch *string, limit int) ([]*ClientView, error) {
	views, err := q.readStore.FindFiltered(ctx, branch, ValidateLimit(limit))
	if err != nil {
		return nil, errs.Mark(err, ErrClientQueryFailed)
	}
	return views, nil
}

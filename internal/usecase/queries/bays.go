package queries

import (
	"context"

	"gateops/internal/domain/bay"
	"gateops/internal/pkg/errs"
)

var ErrBayQueryFailed = errs.New("bay availability query failed")

type BayQueries interface {
	ListAvailable(ctx context.Context, branch string) ([]string, error)
}

type bayQueriesImpl struct {
	allocator *bay.Allocator
	readStore VisitReadStore
}

func NewBayQueries(allocator *bay.Allocator, readStore VisitReadStore) BayQueries {
	return &bayQueriesImpl{allocator: allocator, readStore: readStore}
}

func (q *bayQueriesImpl) ListAvailable(ctx context.Context, branch string) ([]string, error) {
	occupiedRaw, err := q.readStore.OccupiedBays(ctx, branch)
	if err != nil {
		return nil, errs.Mark(err, ErrBayQueryFailed)
	}

	// A stored bay code that fails to parse would make an occupied bay look
	// free, so the query fails rather than guessing.
	occupied := make([]bay.Code, 0, len(occupiedRaw))
	for _, s := range occupiedRaw {
		code, cerr := bay.NewCode(s)
		if cerr != nil {
			return nil, errs.Mark(errs.Wrap(cerr, "invalid bay code on active visit"), ErrBayQueryFailed)
		}
		occupied = append(occupied, code)
	}

	free := q.allocator.ListAvailable(occupied)
	out := make([]string, len(free))
	for i, c := range free {
		out[i] = c.String()
	}
	return out, nil
}

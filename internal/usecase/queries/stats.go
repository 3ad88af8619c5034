package queries

import (
	"context"

	"gateops/internal/domain/bay"
	"gateops/internal/pkg/errs"
)

var ErrStatsQueryFailed = errs.New("branch stats query failed")

type StatsQueries interface {
	BranchStats(ctx context.Context, branch string) (*BranchStatsView, error)
}

type StatsReadStore interface {
	CountPendingRequests(ctx context.Context, branch string) (int, error)
	CountActiveVisits(ctx context.Context, branch string) (int, error)
}

type statsQueriesImpl struct {
	allocator  *bay.Allocator
	readStore  StatsReadStore
	visitStore VisitReadStore
}

func NewStatsQueries(allocator *bay.Allocator, readStore StatsReadStore, visitStore VisitReadStore) StatsQueries {
	return &statsQueriesImpl{
		allocator:  allocator,
		readStore:  readStore,
		visitStore: visitStore,
	}
}

func (q *statsQueriesImpl) BranchStats(ctx context.Context, branch string) (*BranchStatsView, error) {
	pending, err := q.readStore.CountPendingRequests(ctx, branch)
	if err != nil {
		return nil, errs.Mark(err, ErrStatsQueryFailed)
	}

	active, err := q.readStore.CountActiveVisits(ctx, branch)
	if err != nil {
		return nil, errs.Mark(err, ErrStatsQueryFailed)
	}

	occupied, err := q.visitStore.OccupiedBays(ctx, branch)
	if err != nil {
		return nil, errs.Mark(err, ErrStatsQueryFailed)
	}

	total := len(q.allocator.Yard())
	free := total - len(occupied)
	if free < 0 {
		free = 0
	}

	return &BranchStatsView{
		Branch:          branch,
		PendingRequests: pending,
		ActiveVisits:    active,
		OccupiedBays:    len(occupied),
		FreeBays:        free,
	}, nil
}

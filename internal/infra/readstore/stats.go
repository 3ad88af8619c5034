package readstore

import (
	"context"

	"gateops/internal/infra"
	"gateops/internal/infra/db"
)

type StatsReadStore struct {
	db db.DBTX
}

func NewStatsReadStore(db db.DBTX) *StatsReadStore {
	return &StatsReadStore{db: db}
}

func (r *StatsReadStore) CountPendingRequests(ctx context.Context, branch string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM requests WHERE branch = $1 AND status = 'pending'`, branch,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count pending requests", err)
	}
	return count, nil
}

func (r *StatsReadStore) CountActiveVisits(ctx context.Context, branch string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT count(*) FROM visits WHERE branch = $1 AND time_out IS NULL`, branch,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active visits", err)
	}
	return count, nil
}

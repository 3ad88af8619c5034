//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gateops/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationCompute(t *testing.T) {
	ctx := context.Background()
	q := queries.NewDurationQueries()

	t.Run("same day", func(t *testing.T) {
		view, err := q.Compute(ctx, queries.DurationInput{Date: "2025-03-10", TimeIn: "08:30", TimeOut: "11:00"})
		require.NoError(t, err)
		assert.Equal(t, 150, view.Minutes)
	})

	t.Run("cross midnight", func(t *testing.T) {
		view, err := q.Compute(ctx, queries.DurationInput{
			Date: "2025-03-10", TimeIn: "23:00", TimeOut: "01:00", TimeOutDate: "2025-03-11",
		})
		require.NoError(t, err)
		assert.Equal(t, 120, view.Minutes)
	})

	t.Run("negative interval", func(t *testing.T) {
		_, err := q.Compute(ctx, queries.DurationInput{Date: "2025-03-10", TimeIn: "11:00", TimeOut: "08:30"})
		require.ErrorIs(t, err, queries.ErrDurationInvalidInterval)
	})

	t.Run("malformed time", func(t *testing.T) {
		_, err := q.Compute(ctx, queries.DurationInput{Date: "2025-03-10", TimeIn: "8.30am", TimeOut: "11:00"})
		require.ErrorIs(t, err, queries.ErrDurationBadFormat)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := q.Compute(ctx, queries.DurationInput{Date: "10/03/2025", TimeIn: "08:30", TimeOut: "11:00"})
		require.ErrorIs(t, err, queries.ErrDurationBadFormat)
	})
}

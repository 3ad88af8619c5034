package queries

import (
	"context"
	"errors"

	"gateops/internal/domain/visit"
	"gateops/internal/pkg/errs"
)

var (
	ErrDurationBadFormat       = errs.New("duration input is malformed")
	ErrDurationInvalidInterval = errs.New("time out is earlier than time in")
)

type DurationInput struct {
	Date        string
	TimeIn      string
	TimeOut     string
	TimeOutDate string
}

type DurationView struct {
	Minutes int `json:"minutes"`
}

// DurationQueries computes dwell minutes from wall-clock fields without
// touching storage. Exposed so clients can preview a duration before a
// visit is closed.
type DurationQueries interface {
	Compute(ctx context.Context, input DurationInput) (*DurationView, error)
}

type durationQueriesImpl struct{}

func NewDurationQueries() DurationQueries {
	return &durationQueriesImpl{}
}

func (q *durationQueriesImpl) Compute(_ context.Context, input DurationInput) (*DurationView, error) {
	minutes, err := visit.DurationFromWallClock(input.Date, input.TimeIn, input.TimeOut, input.TimeOutDate)
	if err != nil {
		if errors.Is(err, visit.ErrInvalidInterval) {
			return nil, errs.Mark(err, ErrDurationInvalidInterval)
		}
		return nil, errs.Mark(err, ErrDurationBadFormat)
	}
	return &DurationView{Minutes: minutes}, nil
}

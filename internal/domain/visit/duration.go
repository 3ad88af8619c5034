package visit

import (
	"errors"
	"time"
)

var (
	ErrInvalidInterval = errors.New("time out is earlier than time in")
	ErrBadDateFormat   = errors.New("date must be formatted as 2006-01-02")
	ErrBadTimeFormat   = errors.New("time must be formatted as 15:04")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DurationMinutes returns the whole minutes elapsed between timeIn and
// timeOut. A negative span is rejected rather than clamped: it signals a
// clock or data-entry error upstream.
func DurationMinutes(timeIn, timeOut time.Time) (int, error) {
	d := timeOut.Sub(timeIn)
	if d < 0 {
		return 0, ErrInvalidInterval
	}
	return int(d / time.Minute), nil
}

// DurationFromWallClock computes dwell minutes from wall-clock times on the
// given dates. timeOutDate may be empty or equal to date for a same-day
// close; a later date adds the full elapsed days ("23:00" to "01:00" next
// day is 120 minutes).
func DurationFromWallClock(date, timeIn, timeOut, timeOutDate string) (int, error) {
	inDay, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, ErrBadDateFormat
	}

	outDay := inDay
	if timeOutDate != "" {
		outDay, err = time.Parse(dateLayout, timeOutDate)
		if err != nil {
			return 0, ErrBadDateFormat
		}
	}

	in, err := time.Parse(timeLayout, timeIn)
	if err != nil {
		return 0, ErrBadTimeFormat
	}
	out, err := time.Parse(timeLayout, timeOut)
	if err != nil {
		return 0, ErrBadTimeFormat
	}

	start := inDay.Add(time.Duration(in.Hour())*time.Hour + time.Duration(in.Minute())*time.Minute)
	end := outDay.Add(time.Duration(out.Hour())*time.Hour + time.Duration(out.Minute())*time.Minute)

	return DurationMinutes(start, end)
}

//go:build unit

package request_test

import (
	"testing"
	"time"

	"gateops/internal/domain/request"
	"gateops/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.RequestBuilder)
	errIs  error
}

func TestRequest(t *testing.T) {
	t.Run("appointment submission", func(t *testing.T) {
		actual, err := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, request.KindAppointment, actual.Kind())
		assert.Equal(t, request.StatusPending, actual.Status())
		assert.Nil(t, actual.DecidedAt())
		require.NotNil(t, actual.Appointment())
		assert.Nil(t, actual.Truck())

		expected, err := request.NewAppointmentDetails("supplier meeting", "Warehouse Manager")
		require.NoError(t, err)
		if diff := cmp.Diff(expected, *actual.Appointment(), cmpOpts...); diff != "" {
			t.Errorf("AppointmentDetails mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("truck submission", func(t *testing.T) {
		actual, err := builder.NewRequestBuilder().Truck().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, request.KindTruck, actual.Kind())
		assert.Equal(t, request.StatusPending, actual.Status())
		require.NotNil(t, actual.Truck())
		assert.Nil(t, actual.Appointment())

		expected, err := request.NewTruckDetails("ABC-1234", "10-wheeler", "Isuzu", "Acme Logistics")
		require.NoError(t, err)
		if diff := cmp.Diff(expected, *actual.Truck(), cmpOpts...); diff != "" {
			t.Errorf("TruckDetails mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("field validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty subject",
				mutate: func(b *builder.RequestBuilder) { b.Subject = "   " },
				errIs:  request.ErrEmptySubject,
			},
			{
				name:   "empty branch",
				mutate: func(b *builder.RequestBuilder) { b.Branch = "" },
				errIs:  request.ErrEmptyBranch,
			},
			{
				name:   "missing purpose",
				mutate: func(b *builder.RequestBuilder) { b.Purpose = " " },
				errIs:  request.ErrMissingPurpose,
			},
		})
	})

	t.Run("truck subject falls back to client name", func(t *testing.T) {
		actual, err := builder.NewRequestBuilder().
			Truck().
			With(func(b *builder.RequestBuilder) { b.Subject = "" }).
			BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Acme Logistics", actual.Subject())
	})

	t.Run("truck request requires a plate", func(t *testing.T) {
		_, err := request.NewTruckDetails("  ", "10-wheeler", "Isuzu", "Acme Logistics")
		require.ErrorIs(t, err, request.ErrMissingPlate)
	})

	t.Run("plate number is normalized upper case", func(t *testing.T) {
		details, err := request.NewTruckDetails("abc-1234", "10-wheeler", "Isuzu", "Acme Logistics")
		require.NoError(t, err)
		assert.Equal(t, "ABC-1234", details.PlateNumber)
	})
}

func TestRequestTransitions(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *request.Request {
		t.Helper()
		req, err := builder.NewRequestBuilder().BuildDomain()
		require.NoError(t, err)
		return req
	}

	t.Run("approve pending", func(t *testing.T) {
		req := newPending(t)

		require.NoError(t, req.Approve(now))
		assert.Equal(t, request.StatusApproved, req.Status())
		require.NotNil(t, req.DecidedAt())
		assert.Equal(t, now, *req.DecidedAt())
	})

	t.Run("reject pending", func(t *testing.T) {
		req := newPending(t)

		require.NoError(t, req.Reject(now))
		assert.Equal(t, request.StatusRejected, req.Status())
		assert.True(t, req.Status().IsTerminal())
	})

	t.Run("approve twice fails", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Approve(now))

		err := req.Approve(now.Add(time.Minute))
		require.ErrorIs(t, err, request.ErrInvalidTransition)
		assert.Equal(t, request.StatusApproved, req.Status())
	})

	t.Run("reject after approve fails", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Approve(now))

		require.ErrorIs(t, req.Reject(now), request.ErrInvalidTransition)
	})

	t.Run("accept requires approved", func(t *testing.T) {
		req := newPending(t)
		require.ErrorIs(t, req.CanAccept(), request.ErrInvalidTransition)

		require.NoError(t, req.Approve(now))
		require.NoError(t, req.CanAccept())
	})

	t.Run("mark done from approved", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Approve(now))

		require.NoError(t, req.MarkDone(now.Add(time.Hour)))
		assert.Equal(t, request.StatusDone, req.Status())
		assert.True(t, req.Status().IsTerminal())
	})

	t.Run("mark done from pending fails", func(t *testing.T) {
		req := newPending(t)
		require.ErrorIs(t, req.MarkDone(now), request.ErrInvalidTransition)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		req := newPending(t)
		require.NoError(t, req.Reject(now))

		require.ErrorIs(t, req.Approve(now), request.ErrInvalidTransition)
		require.ErrorIs(t, req.MarkDone(now), request.ErrInvalidTransition)
		require.ErrorIs(t, req.CanAccept(), request.ErrInvalidTransition)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRequestBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

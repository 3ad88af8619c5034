//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gateops/internal/domain/bay"
	"gateops/internal/pkg/clock"
	"gateops/internal/usecase/commands"
	"gateops/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestYard(t *testing.T) *bay.Allocator {
	t.Helper()
	codes := make([]bay.Code, 0, 4)
	for _, v := range []string{"1a", "2a", "3a", "3b"} {
		c, err := bay.NewCode(v)
		require.NoError(t, err)
		codes = append(codes, c)
	}
	return bay.NewAllocator(codes)
}

type commandsFixture struct {
	uow      *fakeUoW
	clock    *clock.MockClock
	requests commands.RequestCommands
	visits   commands.VisitCommands
}

func newCommandsFixture(t *testing.T) *commandsFixture {
	t.Helper()
	uow := newFakeUoW()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC))
	allocator := newTestYard(t)
	return &commandsFixture{
		uow:      uow,
		clock:    clk,
		requests: commands.NewRequestCommands(uow, allocator, clk),
		visits:   commands.NewVisitCommands(uow, allocator, clk),
	}
}

func appointmentInput() commands.SubmitAppointmentInput {
	return commands.SubmitAppointmentInput{
		Subject:       "Jane Visitor",
		Branch:        "main",
		Purpose:       "supplier meeting",
		PersonToVisit: "Warehouse Manager",
	}
}

func truckInput() commands.SubmitTruckInput {
	return commands.SubmitTruckInput{
		Branch:      "main",
		PlateNumber: "abc-1234",
		TruckType:   "10-wheeler",
		TruckBrand:  "Isuzu",
		ClientName:  "Acme Logistics",
	}
}

func strPtr(s string) *string { return &s }

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("appointment lands pending", func(t *testing.T) {
		f := newCommandsFixture(t)

		id, err := f.requests.SubmitAppointment(ctx, appointmentInput())
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)

		snap, err := f.uow.CommandReads().RequestByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "pending", snap.Status)
		assert.Equal(t, "appointment", snap.Kind)
	})

	t.Run("truck lands pending with normalized plate", func(t *testing.T) {
		f := newCommandsFixture(t)

		id, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)

		snap, err := f.uow.CommandReads().RequestByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "truck", snap.Kind)
		assert.Equal(t, "Acme Logistics", snap.Subject)
		require.NotNil(t, snap.PlateNumber)
		assert.Equal(t, "ABC-1234", *snap.PlateNumber)
	})

	t.Run("appointment without purpose fails validation", func(t *testing.T) {
		f := newCommandsFixture(t)

		input := appointmentInput()
		input.Purpose = "  "
		_, err := f.requests.SubmitAppointment(ctx, input)
		require.ErrorIs(t, err, commands.ErrValidationFailed)
	})

	t.Run("truck without plate fails validation", func(t *testing.T) {
		f := newCommandsFixture(t)

		input := truckInput()
		input.PlateNumber = ""
		_, err := f.requests.SubmitTruck(ctx, input)
		require.ErrorIs(t, err, commands.ErrValidationFailed)
	})
}

func TestApproveReject(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending appointment", func(t *testing.T) {
		f := newCommandsFixture(t)
		id, err := f.requests.SubmitAppointment(ctx, appointmentInput())
		require.NoError(t, err)

		require.NoError(t, f.requests.Approve(ctx, id, false))

		snap, err := f.uow.CommandReads().RequestByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "approved", snap.Status)
		require.NotNil(t, snap.DecidedAt)
	})

	t.Run("approve unknown request", func(t *testing.T) {
		f := newCommandsFixture(t)
		err := f.requests.Approve(ctx, uuid.New(), false)
		require.ErrorIs(t, err, commands.ErrRequestNotFound)
	})

	t.Run("approve twice fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		id, err := f.requests.SubmitAppointment(ctx, appointmentInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, id, false))

		require.ErrorIs(t, f.requests.Approve(ctx, id, false), commands.ErrInvalidTransition)
	})

	t.Run("reject pending then approve fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		id, err := f.requests.SubmitAppointment(ctx, appointmentInput())
		require.NoError(t, err)

		require.NoError(t, f.requests.Reject(ctx, id))

		snap, err := f.uow.CommandReads().RequestByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "rejected", snap.Status)

		require.ErrorIs(t, f.requests.Approve(ctx, id, false), commands.ErrInvalidTransition)
	})

	t.Run("truck approve registers unknown plate", func(t *testing.T) {
		f := newCommandsFixture(t)
		id, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)

		require.NoError(t, f.requests.Approve(ctx, id, false))

		matched, err := f.uow.CommandReads().ClientByPlate(ctx, "ABC-1234")
		require.NoError(t, err)
		assert.Equal(t, "Acme Logistics", matched.ClientName)
	})

	t.Run("truck approve reuses known plate", func(t *testing.T) {
		f := newCommandsFixture(t)
		first, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, first, false))

		second, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, second, false))
	})

	t.Run("truck approve expecting new client conflicts on known plate", func(t *testing.T) {
		f := newCommandsFixture(t)
		first, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, first, false))

		second, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)

		err = f.requests.Approve(ctx, second, true)
		require.ErrorIs(t, err, commands.ErrPlateAlreadyRegistered)

		// The failed approval must not have moved the request.
		snap, rerr := f.uow.CommandReads().RequestByID(ctx, second)
		require.NoError(t, rerr)
		assert.Equal(t, "pending", snap.Status)
	})
}

func TestAccept(t *testing.T) {
	ctx := context.Background()

	approvedAppointment := func(t *testing.T, f *commandsFixture) uuid.UUID {
		t.Helper()
		id, err := f.requests.SubmitAppointment(ctx, appointmentInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, id, false))
		return id
	}

	approvedTruck := func(t *testing.T, f *commandsFixture) uuid.UUID {
		t.Helper()
		id, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, id, false))
		return id
	}

	t.Run("appointment accept opens visit and completes request", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedAppointment(t, f)

		visitID, err := f.requests.Accept(ctx, id, nil)
		require.NoError(t, err)

		snap, err := f.uow.CommandReads().RequestByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "done", snap.Status)

		v, err := f.uow.CommandReads().VisitByID(ctx, visitID)
		require.NoError(t, err)
		assert.Equal(t, "appointment", v.Kind)
		assert.Nil(t, v.Bay)
		assert.Nil(t, v.TimeOut)
		require.NotNil(t, v.RequestID)
		assert.Equal(t, id, *v.RequestID)
	})

	t.Run("accept pending request fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		id, err := f.requests.SubmitAppointment(ctx, appointmentInput())
		require.NoError(t, err)

		_, err = f.requests.Accept(ctx, id, nil)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("accept done request fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedAppointment(t, f)
		_, err := f.requests.Accept(ctx, id, nil)
		require.NoError(t, err)

		_, err = f.requests.Accept(ctx, id, nil)
		require.ErrorIs(t, err, commands.ErrInvalidTransition)
	})

	t.Run("truck accept requires a bay code", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedTruck(t, f)

		_, err := f.requests.Accept(ctx, id, nil)
		require.ErrorIs(t, err, commands.ErrBayCodeRequired)
	})

	t.Run("truck accept rejects a bay outside the yard", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedTruck(t, f)

		_, err := f.requests.Accept(ctx, id, strPtr("9z"))
		require.ErrorIs(t, err, commands.ErrUnknownBay)
	})

	t.Run("truck accept holds the bay and leaves the request approved", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedTruck(t, f)

		visitID, err := f.requests.Accept(ctx, id, strPtr("3A"))
		require.NoError(t, err)

		v, err := f.uow.CommandReads().VisitByID(ctx, visitID)
		require.NoError(t, err)
		require.NotNil(t, v.Bay)
		assert.Equal(t, "3a", *v.Bay)

		snap, err := f.uow.CommandReads().RequestByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "approved", snap.Status)
	})

	t.Run("truck accept into an occupied bay fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		first := approvedTruck(t, f)
		_, err := f.requests.Accept(ctx, first, strPtr("3a"))
		require.NoError(t, err)

		input := truckInput()
		input.PlateNumber = "XYZ-9999"
		second, err := f.requests.SubmitTruck(ctx, input)
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, second, false))

		_, err = f.requests.Accept(ctx, second, strPtr("3A"))
		require.ErrorIs(t, err, commands.ErrBayOccupied)
	})

	t.Run("truck accept surfaces a corrupt stored bay", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedTruck(t, f)

		corrupt := builder.NewVisitBuilder().
			Truck().
			With(func(b *builder.VisitBuilder) { b.Bay = "  " }).
			BuildSnapshot()
		f.uow.visits[corrupt.ID] = *corrupt

		_, err := f.requests.Accept(ctx, id, strPtr("3a"))
		require.ErrorIs(t, err, commands.ErrDatabaseOperationFailed)
	})

	t.Run("truck accept without a registered client fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		id := approvedTruck(t, f)
		delete(f.uow.clients, "ABC-1234")

		_, err := f.requests.Accept(ctx, id, strPtr("3a"))
		require.ErrorIs(t, err, commands.ErrClientNotRegistered)
	})
}

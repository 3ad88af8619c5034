//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"gateops/internal/usecase/commands"
	"gateops/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerClient(f *commandsFixture, plate, name string) {
	f.uow.clients[plate] = shared.ClientSnapshot{
		ID:          uuid.New(),
		ClientName:  name,
		PlateNumber: plate,
		TruckType:   "10-wheeler",
		TruckBrand:  "Isuzu",
		Branch:      "main",
	}
}

func TestClose(t *testing.T) {
	ctx := context.Background()

	t.Run("close stamps dwell minutes", func(t *testing.T) {
		f := newCommandsFixture(t)
		visitID, err := f.visits.AddWalkIn(ctx, commands.WalkInInput{Subject: "Jane Visitor", Branch: "main"})
		require.NoError(t, err)

		f.clock.Add(150 * time.Minute)
		require.NoError(t, f.visits.Close(ctx, visitID))

		snap, err := f.uow.CommandReads().VisitByID(ctx, visitID)
		require.NoError(t, err)
		require.NotNil(t, snap.TimeOut)
		require.NotNil(t, snap.DurationMinutes)
		assert.Equal(t, 150, *snap.DurationMinutes)
	})

	t.Run("close unknown visit", func(t *testing.T) {
		f := newCommandsFixture(t)
		require.ErrorIs(t, f.visits.Close(ctx, uuid.New()), commands.ErrVisitNotFound)
	})

	t.Run("close twice fails", func(t *testing.T) {
		f := newCommandsFixture(t)
		visitID, err := f.visits.AddWalkIn(ctx, commands.WalkInInput{Subject: "Jane Visitor", Branch: "main"})
		require.NoError(t, err)

		f.clock.Add(time.Hour)
		require.NoError(t, f.visits.Close(ctx, visitID))
		require.ErrorIs(t, f.visits.Close(ctx, visitID), commands.ErrVisitAlreadyClosed)
	})

	t.Run("closing a truck visit releases the bay and completes the request", func(t *testing.T) {
		f := newCommandsFixture(t)
		requestID, err := f.requests.SubmitTruck(ctx, truckInput())
		require.NoError(t, err)
		require.NoError(t, f.requests.Approve(ctx, requestID, false))
		visitID, err := f.requests.Accept(ctx, requestID, strPtr("3a"))
		require.NoError(t, err)

		f.clock.Add(2 * time.Hour)
		require.NoError(t, f.visits.Close(ctx, visitID))

		snap, err := f.uow.CommandReads().RequestByID(ctx, requestID)
		require.NoError(t, err)
		assert.Equal(t, "done", snap.Status)

		occupied, err := f.uow.CommandReads().OccupiedBays(ctx, "main")
		require.NoError(t, err)
		assert.Empty(t, occupied)

		// The freed bay can be assigned again.
		registerClient(f, "XYZ-9999", "Beta Freight")
		_, err = f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "XYZ-9999", Branch: "main", BayCode: "3a"})
		require.NoError(t, err)
	})
}

func TestAddWalkIn(t *testing.T) {
	ctx := context.Background()

	t.Run("opens an active visitor visit", func(t *testing.T) {
		f := newCommandsFixture(t)
		visitID, err := f.visits.AddWalkIn(ctx, commands.WalkInInput{Subject: "Jane Visitor", Branch: "main"})
		require.NoError(t, err)

		snap, err := f.uow.CommandReads().VisitByID(ctx, visitID)
		require.NoError(t, err)
		assert.Equal(t, "appointment", snap.Kind)
		assert.Nil(t, snap.RequestID)
		assert.Nil(t, snap.TimeOut)
	})

	t.Run("empty subject fails validation", func(t *testing.T) {
		f := newCommandsFixture(t)
		_, err := f.visits.AddWalkIn(ctx, commands.WalkInInput{Subject: "  ", Branch: "main"})
		require.ErrorIs(t, err, commands.ErrValidationFailed)
	})
}

func TestLogTruck(t *testing.T) {
	ctx := context.Background()

	t.Run("admits a registered truck into a free bay", func(t *testing.T) {
		f := newCommandsFixture(t)
		registerClient(f, "ABC-1234", "Acme Logistics")

		visitID, err := f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "abc-1234", Branch: "main", BayCode: "2A"})
		require.NoError(t, err)

		snap, err := f.uow.CommandReads().VisitByID(ctx, visitID)
		require.NoError(t, err)
		assert.Equal(t, "truck", snap.Kind)
		assert.Equal(t, "Acme Logistics", snap.Subject)
		assert.Nil(t, snap.RequestID)
		require.NotNil(t, snap.Bay)
		assert.Equal(t, "2a", *snap.Bay)
	})

	t.Run("unregistered plate is rejected", func(t *testing.T) {
		f := newCommandsFixture(t)
		_, err := f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "NOPE-0000", Branch: "main", BayCode: "2a"})
		require.ErrorIs(t, err, commands.ErrClientNotRegistered)
	})

	t.Run("occupied bay is rejected", func(t *testing.T) {
		f := newCommandsFixture(t)
		registerClient(f, "ABC-1234", "Acme Logistics")
		registerClient(f, "XYZ-9999", "Beta Freight")

		_, err := f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "ABC-1234", Branch: "main", BayCode: "2a"})
		require.NoError(t, err)

		_, err = f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "XYZ-9999", Branch: "main", BayCode: "2a"})
		require.ErrorIs(t, err, commands.ErrBayOccupied)
	})

	t.Run("same bay in another branch stays free", func(t *testing.T) {
		f := newCommandsFixture(t)
		registerClient(f, "ABC-1234", "Acme Logistics")
		registerClient(f, "XYZ-9999", "Beta Freight")

		_, err := f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "ABC-1234", Branch: "main", BayCode: "2a"})
		require.NoError(t, err)

		_, err = f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "XYZ-9999", Branch: "north", BayCode: "2a"})
		require.NoError(t, err)
	})

	t.Run("unknown bay is rejected", func(t *testing.T) {
		f := newCommandsFixture(t)
		registerClient(f, "ABC-1234", "Acme Logistics")

		_, err := f.visits.LogTruck(ctx, commands.TruckLogInput{PlateNumber: "ABC-1234", Branch: "main", BayCode: "zz"})
		require.ErrorIs(t, err, commands.ErrUnknownBay)
	})
}

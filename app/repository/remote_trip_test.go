package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/remotesync"
)

// newRemoteTripTestRepo builds a trip repository over a hand-seeded
// cache. The queue has no workers running, so writes only hit the
// in-memory state.
func newRemoteTripTestRepo(t *testing.T) *remoteTripRepository {
	t.Helper()

	state := newRemoteState()
	state.clients["client-1"] = models.Client{ID: "client-1", Name: "Jordan Avery"}
	state.order.clients = append(state.order.clients, "client-1")

	pinned := "opt-1"
	state.trips["trip-1"] = models.Trip{
		ID:             "trip-1",
		ClientID:       "client-1",
		Title:          "Paris anniversary",
		Status:         models.TRIP_STATUS_SEARCHING,
		PinnedOptionID: &pinned,
		AwardOptions: []models.AwardOption{
			{ID: "opt-1", TripID: "trip-1", Program: "Virgin Atlantic", MilesRequired: 50000, Position: 0},
			{ID: "opt-2", TripID: "trip-1", Program: "Flying Blue", MilesRequired: 55000, Position: 1},
		},
	}
	state.order.trips = append(state.order.trips, "trip-1")

	return &remoteTripRepository{state: state, queue: remotesync.NewQueue(nil, 1)}
}

func TestRemoteRemoveOptionLeavesEarlierReadsIntact(t *testing.T) {
	repo := newRemoteTripTestRepo(t)

	before, err := repo.GetByID("trip-1")
	require.NoError(t, err)
	require.Len(t, before.AwardOptions, 2)

	require.NoError(t, repo.RemoveAwardOption("trip-1", "opt-1"))

	assert.Equal(t, "opt-1", before.AwardOptions[0].ID)
	assert.Equal(t, "Virgin Atlantic", before.AwardOptions[0].Program)
	assert.Equal(t, "opt-2", before.AwardOptions[1].ID)

	after, err := repo.GetByID("trip-1")
	require.NoError(t, err)
	require.Len(t, after.AwardOptions, 1)
	assert.Equal(t, "opt-2", after.AwardOptions[0].ID)
	assert.Equal(t, 0, after.AwardOptions[0].Position)
	assert.Nil(t, after.PinnedOptionID)
}

func TestRemoteUpdateOptionLeavesEarlierReadsIntact(t *testing.T) {
	repo := newRemoteTripTestRepo(t)

	before, err := repo.GetByID("trip-1")
	require.NoError(t, err)

	require.NoError(t, repo.UpdateAwardOption("trip-1", &models.AwardOption{
		ID:            "opt-2",
		Program:       "Flying Blue",
		MilesRequired: 47500,
	}))

	assert.Equal(t, 55000, before.AwardOptions[1].MilesRequired)

	after, err := repo.GetByID("trip-1")
	require.NoError(t, err)
	assert.Equal(t, 47500, after.AwardOptions[1].MilesRequired)
	assert.Equal(t, 1, after.AwardOptions[1].Position)
}

func TestRemoteClosedTripSwallowsOptionWrites(t *testing.T) {
	repo := newRemoteTripTestRepo(t)

	trip := repo.state.trips["trip-1"]
	trip.Status = models.TRIP_STATUS_CLOSED
	repo.state.trips["trip-1"] = trip

	require.NoError(t, repo.RemoveAwardOption("trip-1", "opt-1"))

	got, err := repo.GetByID("trip-1")
	require.NoError(t, err)
	assert.Len(t, got.AwardOptions, 2)
}

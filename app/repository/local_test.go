package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/portalstore"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	store := portalstore.New(portalstore.NewMemoryStorage())
	store.Hydrate()
	return NewLocalRepositories(store)
}

func TestLocalClientCreateAndGet(t *testing.T) {
	repos := newTestRepositories(t)

	client := models.Client{Name: "Sam Ortega", Status: models.CLIENT_STATUS_LEAD}
	require.NoError(t, repos.Client.Create(&client))
	require.NotEmpty(t, client.ID)

	got, err := repos.Client.GetByID(client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sam Ortega", got.Name)
}

func TestLocalTripCreateRequiresClient(t *testing.T) {
	repos := newTestRepositories(t)

	trip := models.Trip{ClientID: "no-such-client", Title: "Tokyo in the fall"}
	err := repos.Trip.Create(&trip)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestLocalTripUpdateLeavesOptionsAlone(t *testing.T) {
	repos := newTestRepositories(t)

	trip, err := repos.Trip.GetByID("seed-trip-1")
	require.NoError(t, err)
	require.NotEmpty(t, trip.AwardOptions)
	optionCount := len(trip.AwardOptions)

	edited := *trip
	edited.Title = "Paris, but in spring"
	edited.AwardOptions = nil
	require.NoError(t, repos.Trip.Update(&edited))

	after, err := repos.Trip.GetByID(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "Paris, but in spring", after.Title)
	assert.Len(t, after.AwardOptions, optionCount)
}

func TestLocalGenerateRequiresPin(t *testing.T) {
	repos := newTestRepositories(t)

	trip, err := repos.Trip.GetByID("seed-trip-1")
	require.NoError(t, err)
	require.Nil(t, trip.PinnedOptionID)

	_, err = repos.Itinerary.Generate(trip.ID)
	assert.Error(t, err)

	require.NoError(t, repos.Trip.PinAwardOption(trip.ID, trip.AwardOptions[0].ID))
	itinerary, err := repos.Itinerary.Generate(trip.ID)
	require.NoError(t, err)
	assert.Equal(t, trip.AwardOptions[0].ID, itinerary.OptionAID)
	assert.Equal(t, trip.ID, itinerary.TripID)
}

func TestLocalKnowledgeNotFound(t *testing.T) {
	repos := newTestRepositories(t)

	_, err := repos.Knowledge.GetByID("missing")
	assert.True(t, IsNotFound(err))

	articles, err := repos.Knowledge.List()
	require.NoError(t, err)
	assert.NotEmpty(t, articles)
}

func TestLocalCommunicationRoundTrip(t *testing.T) {
	repos := newTestRepositories(t)

	entry := models.CommunicationEntry{
		ClientID: "seed-client-1",
		Channel:  models.COMM_CHANNEL_EMAIL,
		Summary:  "sent three Paris options",
	}
	require.NoError(t, repos.Communication.Add(&entry))
	require.NotEmpty(t, entry.ID)

	entries, err := repos.Communication.ListByClient("seed-client-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sent three Paris options", entries[0].Summary)
}

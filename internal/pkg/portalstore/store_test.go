package portalstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(NewMemoryStorage())
	s.Hydrate()
	return s
}

func createTripWithOption(t *testing.T, s *Store) (models.Trip, models.AwardOption) {
	t.Helper()
	client := s.CreateClient(models.Client{Name: "Robin Okafor"})
	trip := s.CreateTrip(models.Trip{ClientID: client.ID, Title: "Lisbon long weekend"})
	opt := s.AddAwardOption(trip.ID, models.AwardOption{
		Program:       "TAP Miles&Go",
		Route:         "EWR–LIS",
		MilesRequired: 35000,
		FeesUSD:       95,
	})
	require.NotEmpty(t, opt.ID)
	return *s.GetTrip(trip.ID), opt
}

func TestHydrateSeedsWhenEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	s := New(storage)
	s.Hydrate()

	snap := s.Snapshot()
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.NotEmpty(t, snap.Clients)
	assert.NotEmpty(t, snap.Trips)

	// The seed is persisted immediately.
	data, err := storage.Load()
	require.NoError(t, err)
	decoded, err := DecodeSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, len(snap.Clients), len(decoded.Clients))
}

func TestHydrateDiscardsSchemaMismatch(t *testing.T) {
	storage := NewMemoryStorage()

	stale := DefaultSeed()
	stale.SchemaVersion = SchemaVersion - 1
	stale.Clients[0].Name = "Stale Person"
	data, err := stale.Encode()
	require.NoError(t, err)
	require.NoError(t, storage.Save(data))

	s := New(storage)
	s.Hydrate()

	snap := s.Snapshot()
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.NotEqual(t, "Stale Person", snap.Clients[0].Name)
}

func TestHydrateDiscardsMalformedDocument(t *testing.T) {
	storage := NewMemoryStorage()
	require.NoError(t, storage.Save([]byte(`{"schemaVersion":3,"clients":"not an array"}`)))

	s := New(storage)
	s.Hydrate()

	snap := s.Snapshot()
	assert.Equal(t, SchemaVersion, snap.SchemaVersion)
	assert.NotEmpty(t, snap.Clients)
}

func TestSnapshotRoundTripIsByteIdentical(t *testing.T) {
	storage := NewMemoryStorage()
	s := New(storage)
	s.Hydrate()

	first, err := storage.Load()
	require.NoError(t, err)

	decoded, err := DecodeSnapshot(first)
	require.NoError(t, err)
	again, err := decoded.Encode()
	require.NoError(t, err)

	assert.Equal(t, string(first), string(again))
}

func TestClosedTripMutationsAreSilentlyDropped(t *testing.T) {
	s := newTestStore(t)
	trip, opt := createTripWithOption(t, s)

	s.SetTripStatus(trip.ID, models.TRIP_STATUS_BOOKED)
	s.SetTripStatus(trip.ID, models.TRIP_STATUS_CLOSED)

	before, err := json.Marshal(s.GetTrip(trip.ID))
	require.NoError(t, err)

	// Every mutation entry point must leave the trip untouched.
	s.SetTripStatus(trip.ID, models.TRIP_STATUS_INTAKE)
	s.AddAwardOption(trip.ID, models.AwardOption{Program: "Late entry", MilesRequired: 1000})
	s.UpdateAwardOption(trip.ID, models.AwardOption{ID: opt.ID, Program: "Changed", MilesRequired: 1})
	s.RemoveAwardOption(trip.ID, opt.ID)
	s.PinAwardOption(trip.ID, opt.ID)
	s.AddHotelOption(trip.ID, models.HotelOption{Name: "Hotel"})
	s.UpdateTrip(trip.ID, "trip.update", func(tr *models.Trip) { tr.Notes = "edited" })

	after, err := json.Marshal(s.GetTrip(trip.ID))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))

	added := s.AddAwardOption(trip.ID, models.AwardOption{Program: "X", MilesRequired: 10})
	assert.Empty(t, added.ID, "dropped writes return the zero record, not an error")
}

func TestRemovingPinnedOptionClearsPin(t *testing.T) {
	s := newTestStore(t)
	trip, opt := createTripWithOption(t, s)

	s.PinAwardOption(trip.ID, opt.ID)
	require.True(t, s.GetTrip(trip.ID).PinnedOptionResolves())

	s.RemoveAwardOption(trip.ID, opt.ID)

	got := s.GetTrip(trip.ID)
	assert.Nil(t, got.PinnedOptionID, "normalization must clear the dangling pin")
	assert.Empty(t, got.AwardOptions)
}

func TestNormalizationRunsOnEveryCommit(t *testing.T) {
	s := newTestStore(t)
	trip, _ := createTripWithOption(t, s)

	// Force a dangling pin directly through the general update path.
	stale := "option-that-never-existed"
	s.UpdateTrip(trip.ID, "trip.update", func(tr *models.Trip) {
		tr.PinnedOptionID = &stale
	})

	got := s.GetTrip(trip.ID)
	assert.Nil(t, got.PinnedOptionID)
}

func TestGenerateItineraryRequiresResolvingPin(t *testing.T) {
	s := newTestStore(t)
	trip, opt := createTripWithOption(t, s)

	_, ok := s.GenerateItinerary(trip.ID)
	assert.False(t, ok, "no pin set")

	s.PinAwardOption(trip.ID, opt.ID)
	second := s.AddAwardOption(trip.ID, models.AwardOption{
		Program:       "Aeroplan",
		MilesRequired: 40000,
		FeesUSD:       120,
	})

	itinerary, ok := s.GenerateItinerary(trip.ID)
	require.True(t, ok)
	assert.Equal(t, opt.ID, itinerary.OptionAID)
	assert.Equal(t, []string{second.ID}, itinerary.BackupOptionIDs)
	assert.Equal(t, trip.ID, itinerary.TripID)

	snap := s.Snapshot()
	require.Len(t, snap.Itineraries, 1)
}

func TestShareTokenRegenerationInvalidatesOldToken(t *testing.T) {
	s := newTestStore(t)
	trip, opt := createTripWithOption(t, s)
	s.PinAwardOption(trip.ID, opt.ID)
	itinerary, ok := s.GenerateItinerary(trip.ID)
	require.True(t, ok)

	s.SetItineraryShareToken(itinerary.ID, "token-one")
	found := s.FindItineraryByShareToken("token-one")
	require.NotNil(t, found)
	assert.Equal(t, itinerary.ID, found.ID)

	s.SetItineraryShareToken(itinerary.ID, "token-two")
	assert.Nil(t, s.FindItineraryByShareToken("token-one"))
	require.NotNil(t, s.FindItineraryByShareToken("token-two"))
}

func TestSubscribersNotifiedAfterCommit(t *testing.T) {
	s := newTestStore(t)

	var seen []int
	unsubscribe := s.Subscribe(func(snap Snapshot) {
		seen = append(seen, len(snap.Clients))
	})

	s.CreateClient(models.Client{Name: "A"})
	s.CreateClient(models.Client{Name: "B"})
	unsubscribe()
	s.CreateClient(models.Client{Name: "C"})

	require.Len(t, seen, 2)
	assert.Greater(t, seen[1], seen[0])
}

func TestUpdateClientReplacesRecord(t *testing.T) {
	s := newTestStore(t)
	client := s.CreateClient(models.Client{Name: "Dana Li", Status: models.CLIENT_STATUS_LEAD})

	client.Status = models.CLIENT_STATUS_ACTIVE
	client.Loyalty.Other = map[string]int{"Avios": 12000}
	s.UpdateClient(client)

	got := s.GetClient(client.ID)
	require.NotNil(t, got)
	assert.Equal(t, models.CLIENT_STATUS_ACTIVE, got.Status)
	assert.Equal(t, 12000, got.Loyalty.Other["Avios"])

	// Unknown ids are a silent no-op.
	s.UpdateClient(models.Client{ID: "missing", Name: "Ghost"})
	assert.Nil(t, s.GetClient("missing"))
}

func TestAuditLogRecordsCommittedMutations(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Snapshot().AuditLog)

	trip, _ := createTripWithOption(t, s)
	s.SetTripStatus(trip.ID, models.TRIP_STATUS_BOOKED)
	s.SetTripStatus(trip.ID, models.TRIP_STATUS_CLOSED)
	mid := len(s.Snapshot().AuditLog)
	assert.Greater(t, mid, before)

	// Dropped writes never reach the audit log.
	s.SetTripStatus(trip.ID, models.TRIP_STATUS_INTAKE)
	assert.Equal(t, mid, len(s.Snapshot().AuditLog))
}

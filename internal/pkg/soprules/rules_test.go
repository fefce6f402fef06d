package soprules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

func intakeTrip(intake models.IntakeProgress) *models.Trip {
	return &models.Trip{
		ID:       "trip-1",
		ClientID: "client-1",
		Title:    "Tokyo in the fall",
		Status:   models.TRIP_STATUS_INTAKE,
		Intake:   intake,
	}
}

func TestSearchingRequiresFourIntakeItems(t *testing.T) {
	intake := models.IntakeProgress{
		TravelerNamesCaptured:      true,
		PreferredAirportsConfirmed: true,
		DatesConfirmed:             true,
	}
	trip := intakeTrip(intake)

	d := CanTransition(trip, models.TRIP_STATUS_SEARCHING, nil)
	require.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "at least 4 of 7")
	assert.Contains(t, d.Reason, "currently 3")

	trip.Intake.CabinConfirmed = true
	d = CanTransition(trip, models.TRIP_STATUS_SEARCHING, nil)
	assert.True(t, d.Allowed)
	assert.Empty(t, d.Reason)
}

func TestSentRequiresItinerary(t *testing.T) {
	trip := intakeTrip(models.IntakeProgress{})
	trip.Status = models.TRIP_STATUS_DRAFT_READY

	d := CanTransition(trip, models.TRIP_STATUS_SENT, nil)
	require.False(t, d.Allowed)
	assert.Contains(t, d.Reason, "itinerary")

	itineraries := []models.Itinerary{{ID: "it-1", TripID: "other-trip"}}
	d = CanTransition(trip, models.TRIP_STATUS_SENT, itineraries)
	assert.False(t, d.Allowed, "itinerary for a different trip must not count")

	itineraries = append(itineraries, models.Itinerary{ID: "it-2", TripID: trip.ID})
	d = CanTransition(trip, models.TRIP_STATUS_SENT, itineraries)
	assert.True(t, d.Allowed)
}

func TestClosedRequiresBooked(t *testing.T) {
	trip := intakeTrip(models.IntakeProgress{})

	for _, status := range []string{
		models.TRIP_STATUS_INTAKE,
		models.TRIP_STATUS_SEARCHING,
		models.TRIP_STATUS_DRAFT_READY,
		models.TRIP_STATUS_SENT,
	} {
		trip.Status = status
		d := CanTransition(trip, models.TRIP_STATUS_CLOSED, nil)
		assert.False(t, d.Allowed, "status %q must not close", status)
		assert.Contains(t, d.Reason, "Booked")
	}

	trip.Status = models.TRIP_STATUS_BOOKED
	d := CanTransition(trip, models.TRIP_STATUS_CLOSED, nil)
	assert.True(t, d.Allowed)
}

func TestUngatedTransitionsAreAllowed(t *testing.T) {
	trip := intakeTrip(models.IntakeProgress{})
	trip.Status = models.TRIP_STATUS_BOOKED

	// Backward transitions are deliberate agent overrides.
	d := CanTransition(trip, models.TRIP_STATUS_INTAKE, nil)
	assert.True(t, d.Allowed)

	d = CanTransition(trip, models.TRIP_STATUS_DRAFT_READY, nil)
	assert.True(t, d.Allowed)

	trip.Status = models.TRIP_STATUS_SENT
	d = CanTransition(trip, models.TRIP_STATUS_BOOKED, nil)
	assert.True(t, d.Allowed)
}

func TestItineraryGenerationThreeWayDenials(t *testing.T) {
	pinned := "opt-1"
	option := models.AwardOption{ID: "opt-1", Program: "Virgin Atlantic", MilesRequired: 50000}

	// Wrong status only.
	trip := intakeTrip(models.IntakeProgress{})
	trip.Status = models.TRIP_STATUS_SEARCHING
	trip.AwardOptions = []models.AwardOption{option}
	trip.PinnedOptionID = &pinned

	d := CanGenerateItinerary(trip)
	require.False(t, d.Allowed)
	assert.Equal(t, "trip must be in Draft Ready before generating an itinerary", d.Reason)

	// Wrong pin only.
	trip.Status = models.TRIP_STATUS_DRAFT_READY
	trip.PinnedOptionID = nil
	d = CanGenerateItinerary(trip)
	require.False(t, d.Allowed)
	assert.Equal(t, "pin exactly one award option before generating an itinerary", d.Reason)

	// Both wrong: generic combined message.
	trip.Status = models.TRIP_STATUS_SEARCHING
	d = CanGenerateItinerary(trip)
	require.False(t, d.Allowed)
	assert.Equal(t, "trip is not ready for itinerary generation", d.Reason)

	// Draft Ready with a resolving pin: allowed.
	trip.Status = models.TRIP_STATUS_DRAFT_READY
	trip.PinnedOptionID = &pinned
	d = CanGenerateItinerary(trip)
	assert.True(t, d.Allowed)
}

func TestItineraryGenerationStalePinDenies(t *testing.T) {
	stale := "opt-gone"
	trip := intakeTrip(models.IntakeProgress{})
	trip.Status = models.TRIP_STATUS_DRAFT_READY
	trip.AwardOptions = []models.AwardOption{{ID: "opt-1", Program: "Aeroplan", MilesRequired: 70000}}
	trip.PinnedOptionID = &stale

	d := CanGenerateItinerary(trip)
	require.False(t, d.Allowed)
	assert.Equal(t, "pin exactly one award option before generating an itinerary", d.Reason)
}

package tripmetrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

func cashValue(v float64) *float64 {
	return &v
}

func tripWithOptions(opts ...models.AwardOption) *models.Trip {
	return &models.Trip{
		ID:           "trip-1",
		ClientID:     "client-1",
		Title:        "Paris anniversary",
		Status:       models.TRIP_STATUS_SEARCHING,
		AwardOptions: opts,
	}
}

func TestPrimaryAwardOptionPrefersPinned(t *testing.T) {
	trip := tripWithOptions(
		models.AwardOption{ID: "opt-1", Program: "Aeroplan", MilesRequired: 70000},
		models.AwardOption{ID: "opt-2", Program: "Virgin Atlantic", MilesRequired: 50000},
	)
	pinned := "opt-2"
	trip.PinnedOptionID = &pinned

	primary := PrimaryAwardOption(trip)
	require.NotNil(t, primary)
	assert.Equal(t, "opt-2", primary.ID)
}

func TestPrimaryAwardOptionStalePinFallsBackToFirst(t *testing.T) {
	trip := tripWithOptions(
		models.AwardOption{ID: "opt-1", Program: "Aeroplan", MilesRequired: 70000},
	)
	stale := "opt-gone"
	trip.PinnedOptionID = &stale

	primary := PrimaryAwardOption(trip)
	require.NotNil(t, primary)
	assert.Equal(t, "opt-1", primary.ID)
}

func TestPrimaryAwardOptionNoOptions(t *testing.T) {
	assert.Nil(t, PrimaryAwardOption(tripWithOptions()))
	assert.Nil(t, PrimaryAwardOption(nil))
}

func TestComputeTripMetricsNoOptionsAllUnknown(t *testing.T) {
	m := ComputeTripMetrics(tripWithOptions())

	assert.Nil(t, m.MilesUsed)
	assert.Nil(t, m.FeesUSD)
	assert.Nil(t, m.EstimatedCashValue)
	assert.Nil(t, m.EstimatedSavings)
}

func TestComputeTripMetricsWithCashValue(t *testing.T) {
	trip := tripWithOptions(models.AwardOption{
		ID:            "opt-1",
		Program:       "Virgin Atlantic",
		MilesRequired: 50000,
		FeesUSD:       220,
		CashValueUSD:  cashValue(3400),
	})

	m := ComputeTripMetrics(trip)
	require.NotNil(t, m.MilesUsed)
	require.NotNil(t, m.FeesUSD)
	require.NotNil(t, m.EstimatedCashValue)
	require.NotNil(t, m.EstimatedSavings)

	assert.Equal(t, 50000, *m.MilesUsed)
	assert.Equal(t, 220.0, *m.FeesUSD)
	assert.Equal(t, 3400.0, *m.EstimatedCashValue)
	assert.Equal(t, 3180.0, *m.EstimatedSavings)
}

func TestComputeTripMetricsUnknownCashValueKeepsSavingsUnknown(t *testing.T) {
	trip := tripWithOptions(models.AwardOption{
		ID:            "opt-1",
		Program:       "ANA",
		MilesRequired: 88000,
		FeesUSD:       410,
	})

	m := ComputeTripMetrics(trip)
	require.NotNil(t, m.MilesUsed)
	assert.Nil(t, m.EstimatedCashValue)
	assert.Nil(t, m.EstimatedSavings, "savings must stay unknown without a cash value, not become -fees")
}

func TestComputeGlobalMetricsEmptyDeliveredSet(t *testing.T) {
	trips := []models.Trip{
		*tripWithOptions(models.AwardOption{ID: "opt-1", Program: "Aeroplan", MilesRequired: 60000, FeesUSD: 80}),
	}

	g := ComputeGlobalMetrics(trips, nil)
	assert.Equal(t, 0, g.DeliveredCount)
	assert.Nil(t, g.AvgSavingsUSD)
	assert.Nil(t, g.AvgMilesUsed)
	assert.Nil(t, g.AvgDeliveryTimeDays)
}

func TestComputeGlobalMetricsSkipsUnknownValues(t *testing.T) {
	withSavings := tripWithOptions(models.AwardOption{
		ID: "opt-1", Program: "Virgin Atlantic", MilesRequired: 50000, FeesUSD: 200, CashValueUSD: cashValue(3200),
	})
	withSavings.ID = "trip-a"
	withSavings.Status = models.TRIP_STATUS_SENT

	withoutSavings := tripWithOptions(models.AwardOption{
		ID: "opt-2", Program: "ANA", MilesRequired: 90000, FeesUSD: 400,
	})
	withoutSavings.ID = "trip-b"
	withoutSavings.Status = models.TRIP_STATUS_BOOKED

	g := ComputeGlobalMetrics([]models.Trip{*withSavings, *withoutSavings}, nil)
	assert.Equal(t, 2, g.DeliveredCount)
	require.NotNil(t, g.AvgSavingsUSD)
	assert.Equal(t, 3000.0, *g.AvgSavingsUSD, "mean over the single trip with a known savings value")
	require.NotNil(t, g.AvgMilesUsed)
	assert.Equal(t, 70000.0, *g.AvgMilesUsed)
}

func TestComputeGlobalMetricsDeliveryDuration(t *testing.T) {
	draftReady := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	generated := draftReady.Add(72 * time.Hour)

	trip := tripWithOptions(models.AwardOption{ID: "opt-1", Program: "Aeroplan", MilesRequired: 60000})
	trip.Status = models.TRIP_STATUS_SENT
	trip.DraftReadyAt = &draftReady

	itineraries := []models.Itinerary{
		{ID: "it-1", TripID: trip.ID, OptionAID: "opt-1", GeneratedAt: generated},
	}

	g := ComputeGlobalMetrics([]models.Trip{*trip}, itineraries)
	require.NotNil(t, g.AvgDeliveryTimeDays)
	assert.InDelta(t, 3.0, *g.AvgDeliveryTimeDays, 0.0001)
}

func TestComputeGlobalMetricsDiscardsNegativeDurations(t *testing.T) {
	draftReady := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	generated := draftReady.Add(-24 * time.Hour)

	trip := tripWithOptions(models.AwardOption{ID: "opt-1", Program: "Aeroplan", MilesRequired: 60000})
	trip.Status = models.TRIP_STATUS_SENT
	trip.DraftReadyAt = &draftReady

	itineraries := []models.Itinerary{
		{ID: "it-1", TripID: trip.ID, OptionAID: "opt-1", GeneratedAt: generated},
	}

	g := ComputeGlobalMetrics([]models.Trip{*trip}, itineraries)
	assert.Nil(t, g.AvgDeliveryTimeDays)
}

func TestComputeGlobalMetricsEarliestItineraryWins(t *testing.T) {
	draftReady := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	trip := tripWithOptions(models.AwardOption{ID: "opt-1", Program: "Aeroplan", MilesRequired: 60000})
	trip.Status = models.TRIP_STATUS_SENT
	trip.DraftReadyAt = &draftReady

	itineraries := []models.Itinerary{
		{ID: "it-2", TripID: trip.ID, OptionAID: "opt-1", GeneratedAt: draftReady.Add(5 * 24 * time.Hour)},
		{ID: "it-1", TripID: trip.ID, OptionAID: "opt-1", GeneratedAt: draftReady.Add(2 * 24 * time.Hour)},
	}

	g := ComputeGlobalMetrics([]models.Trip{*trip}, itineraries)
	require.NotNil(t, g.AvgDeliveryTimeDays)
	assert.InDelta(t, 2.0, *g.AvgDeliveryTimeDays, 0.0001)
}

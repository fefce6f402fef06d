package searchurl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

func sampleTrip() *models.Trip {
	return &models.Trip{
		ID:              "trip-1",
		Origin:          "JFK",
		Destination:     "CDG",
		DateStart:       "2026-09-10",
		DateEnd:         "2026-09-20",
		Passengers:      2,
		FlexibilityDays: 3,
		CabinPref:       "Premium Economy",
	}
}

func TestBuildSubstitutesAllVariables(t *testing.T) {
	template := "https://awards.example.com/search?o={origin}&d={destination}&from={dateStart}&to={dateEnd}&pax={passengers}&flex={flexibilityDays}&cabin={cabin}"

	got := Build(template, sampleTrip())
	assert.Equal(t,
		"https://awards.example.com/search?o=JFK&d=CDG&from=2026-09-10&to=2026-09-20&pax=2&flex=3&cabin=premium-economy",
		got)
}

func TestBuildEncodesNonNumericValues(t *testing.T) {
	trip := sampleTrip()
	trip.CabinPref = "Business & First"

	got := Build("c={cabinPref}&n={passengers}", trip)
	assert.Equal(t, "c=Business+%26+First&n=2", got)
}

func TestBuildUnknownPlaceholderIsEmpty(t *testing.T) {
	got := Build("x={nope}&o={origin}", sampleTrip())
	assert.Equal(t, "x=&o=JFK", got)
}

func TestBuildAllSkipsDisabledIntegrations(t *testing.T) {
	integrations := []models.AwardSearchIntegration{
		{ID: "i-1", Name: "seatfinder", URLTemplate: "https://a.example/{origin}", Enabled: true},
		{ID: "i-2", Name: "milemap", URLTemplate: "https://b.example/{origin}", Enabled: false},
	}

	links := BuildAll(integrations, sampleTrip())
	assert.Len(t, links, 1)
	assert.Equal(t, "https://a.example/JFK", links["seatfinder"])
}

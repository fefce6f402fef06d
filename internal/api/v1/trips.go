package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/awardparse"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/searchurl"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/soprules"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/tripmetrics"
)

// ListTrips returns every trip
func (s *APIServer) ListTrips(c *fiber.Ctx) error {
	trips, err := s.repos.Trip.List()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(trips)
}

// GetTrip returns one trip with its options
func (s *APIServer) GetTrip(c *fiber.Ctx) error {
	trip, err := s.repos.Trip.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(trip)
}

// CreateTrip creates a trip for an existing client
func (s *APIServer) CreateTrip(c *fiber.Ctx) error {
	var trip models.Trip
	if err := c.BodyParser(&trip); err != nil {
		return badRequest(c, "invalid trip payload")
	}
	if trip.Status == "" {
		trip.Status = models.TRIP_STATUS_INTAKE
	}
	if trip.Passengers == 0 {
		trip.Passengers = 1
	}
	if err := trip.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := s.repos.Trip.Create(&trip); err != nil {
		return repoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(trip)
}

// UpdateTrip replaces a trip's editable fields. Options and the pin
// have their own endpoints; writes against a Closed trip are dropped.
func (s *APIServer) UpdateTrip(c *fiber.Ctx) error {
	var trip models.Trip
	if err := c.BodyParser(&trip); err != nil {
		return badRequest(c, "invalid trip payload")
	}
	trip.ID = c.Params("id")
	if err := s.repos.Trip.Update(&trip); err != nil {
		return repoError(c, err)
	}
	updated, err := s.repos.Trip.GetByID(trip.ID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(updated)
}

// TransitionRequest is the body for a status change
type TransitionRequest struct {
	Status string `json:"status"`
}

// SetTripStatus moves a trip through the workflow. Gated transitions
// return 422 with the gate's reason; everything else is allowed.
func (s *APIServer) SetTripStatus(c *fiber.Ctx) error {
	trip, err := s.repos.Trip.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}

	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid status payload")
	}
	if !models.IsValidTripStatus(req.Status) {
		return badRequest(c, "unknown trip status")
	}

	itineraries, err := s.repos.Itinerary.ListByTrip(trip.ID)
	if err != nil {
		return repoError(c, err)
	}
	if decision := soprules.CanTransition(trip, req.Status, itineraries); !decision.Allowed {
		telemetry.Record(telemetry.EventTransitionBlocked, map[string]string{
			"trip_id": trip.ID,
			"from":    trip.Status,
			"to":      req.Status,
			"reason":  decision.Reason,
		})
		return unprocessable(c, decision.Reason)
	}

	from := trip.Status
	if err := s.repos.Trip.SetStatus(trip.ID, req.Status); err != nil {
		return repoError(c, err)
	}
	telemetry.Record(telemetry.EventTripStatusChanged, map[string]string{
		"trip_id": trip.ID,
		"from":    from,
		"to":      req.Status,
	})

	updated, err := s.repos.Trip.GetByID(trip.ID)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(updated)
}

// GetTripMetrics returns derived numbers for one trip, with formatted
// strings alongside the raw values so the UI never renders unknown as zero.
func (s *APIServer) GetTripMetrics(c *fiber.Ctx) error {
	trip, err := s.repos.Trip.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	metrics := tripmetrics.ComputeTripMetrics(trip)
	return c.JSON(fiber.Map{
		"metrics": metrics,
		"display": fiber.Map{
			"miles_used":           tripmetrics.FormatMiles(metrics.MilesUsed),
			"fees_usd":             tripmetrics.FormatCurrency(metrics.FeesUSD),
			"estimated_cash_value": tripmetrics.FormatCurrency(metrics.EstimatedCashValue),
			"estimated_savings":    tripmetrics.FormatCurrency(metrics.EstimatedSavings),
		},
	})
}

// GetSearchLinks returns the award-search deep links for one trip
func (s *APIServer) GetSearchLinks(c *fiber.Ctx) error {
	trip, err := s.repos.Trip.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	integrations, err := s.repos.Integration.List()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(searchurl.BuildAll(integrations, trip))
}

// ParseRequest is the body for free-text award parsing
type ParseRequest struct {
	Text string `json:"text"`
}

// ParseAwardOption extracts structured award fields from pasted text.
// Parsing never fails; unmatched fields are simply absent.
func (s *APIServer) ParseAwardOption(c *fiber.Ctx) error {
	var req ParseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid parse payload")
	}
	result := awardparse.Parse(req.Text)
	telemetry.Record(telemetry.EventAwardOptionParsed, nil)
	return c.JSON(result)
}

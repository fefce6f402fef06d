package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/sharelink"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/soprules"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
)

// GenerateItinerary builds an itinerary from the trip's pinned option.
// Eligibility follows the same gate the UI shows: Draft Ready status
// plus exactly one resolving pin.
func (s *APIServer) GenerateItinerary(c *fiber.Ctx) error {
	trip, err := s.repos.Trip.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	if decision := soprules.CanGenerateItinerary(trip); !decision.Allowed {
		return unprocessable(c, decision.Reason)
	}

	itinerary, err := s.repos.Itinerary.Generate(trip.ID)
	if err != nil {
		return repoError(c, err)
	}
	telemetry.Record(telemetry.EventItineraryGenerated, map[string]string{
		"trip_id":      trip.ID,
		"itinerary_id": itinerary.ID,
	})
	return c.Status(fiber.StatusCreated).JSON(itinerary)
}

// ListTripItineraries returns every itinerary generated for a trip
func (s *APIServer) ListTripItineraries(c *fiber.Ctx) error {
	tripID := c.Params("id")
	if _, err := s.repos.Trip.GetByID(tripID); err != nil {
		return repoError(c, err)
	}
	itineraries, err := s.repos.Itinerary.ListByTrip(tripID)
	if err != nil {
		return repoError(c, err)
	}
	if itineraries == nil {
		itineraries = []models.Itinerary{}
	}
	return c.JSON(itineraries)
}

// GetItinerary returns one itinerary by id
func (s *APIServer) GetItinerary(c *fiber.Ctx) error {
	itinerary, err := s.repos.Itinerary.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(itinerary)
}

// IssueShareLink returns the itinerary's share token, generating one
// on the first call. The token is stable across repeat calls; passing
// ?rotate=1 issues a replacement and invalidates the previous link.
func (s *APIServer) IssueShareLink(c *fiber.Ctx) error {
	itinerary, err := s.repos.Itinerary.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}

	token := itinerary.ShareToken
	if !itinerary.HasShareToken() || c.QueryBool("rotate") {
		token, err = sharelink.GenerateToken()
		if err != nil {
			return repoError(c, err)
		}
		if err := s.repos.Itinerary.SetShareToken(itinerary.ID, token); err != nil {
			return repoError(c, err)
		}
		telemetry.Record(telemetry.EventShareLinkIssued, map[string]string{
			"itinerary_id": itinerary.ID,
		})
	}
	return c.JSON(fiber.Map{
		"share_token": token,
		"share_path":  sharelink.BuildPath(token),
	})
}

// NotesRequest is the body for itinerary note edits
type NotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateItineraryNotes replaces the agent notes on an itinerary
func (s *APIServer) UpdateItineraryNotes(c *fiber.Ctx) error {
	var req NotesRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid notes payload")
	}
	id := c.Params("id")
	if err := s.repos.Itinerary.UpdateNotes(id, req.Notes); err != nil {
		return repoError(c, err)
	}
	itinerary, err := s.repos.Itinerary.GetByID(id)
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(itinerary)
}

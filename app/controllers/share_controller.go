package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/repository"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/viewmodel"
)

// HandleShareView serves the public itinerary page. No login required;
// the token is the only credential, and an unknown or rotated token is
// indistinguishable from a page that never existed.
func HandleShareView(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return fiber.ErrNotFound
	}

	repos := repository.GetGlobalRepositories()

	itinerary, err := repos.Itinerary.GetByShareToken(token)
	if err != nil {
		return fiber.ErrNotFound
	}
	trip, err := repos.Trip.GetByID(itinerary.TripID)
	if err != nil {
		return fiber.ErrNotFound
	}
	client, err := repos.Client.GetByID(trip.ClientID)
	if err != nil {
		return fiber.ErrNotFound
	}

	telemetry.Record(telemetry.EventShareLinkVisited, map[string]string{
		"itinerary_id": itinerary.ID,
	})

	page := viewmodel.NewSharePage(client, trip, itinerary)
	return c.Render("share", fiber.Map{
		"Page": page,
	})
}

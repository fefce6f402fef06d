package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/repository"
)

// APIServer holds the repositories backing the JSON API
type APIServer struct {
	repos *repository.Repositories
}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{
		repos: repository.GetGlobalRepositories(),
	}
}

// Pong is the ping response body
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// RegisterHandlers attaches every v1 route to the given router group
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)

	router.Get("/clients", s.ListClients)
	router.Post("/clients", s.CreateClient)
	router.Get("/clients/:id", s.GetClient)
	router.Put("/clients/:id", s.UpdateClient)
	router.Get("/clients/:id/trips", s.ListClientTrips)
	router.Get("/clients/:id/communications", s.ListCommunications)
	router.Post("/clients/:id/communications", s.AddCommunication)

	router.Get("/trips", s.ListTrips)
	router.Post("/trips", s.CreateTrip)
	router.Get("/trips/:id", s.GetTrip)
	router.Put("/trips/:id", s.UpdateTrip)
	router.Post("/trips/:id/status", s.SetTripStatus)
	router.Get("/trips/:id/metrics", s.GetTripMetrics)
	router.Get("/trips/:id/search-links", s.GetSearchLinks)

	router.Post("/trips/:id/options", s.AddAwardOption)
	router.Put("/trips/:id/options/:optionID", s.UpdateAwardOption)
	router.Delete("/trips/:id/options/:optionID", s.RemoveAwardOption)
	router.Post("/trips/:id/options/:optionID/pin", s.PinAwardOption)
	router.Delete("/trips/:id/pin", s.UnpinAwardOption)

	router.Post("/trips/:id/hotels", s.AddHotelOption)
	router.Delete("/trips/:id/hotels/:hotelID", s.RemoveHotelOption)

	router.Post("/trips/:id/itineraries", s.GenerateItinerary)
	router.Get("/trips/:id/itineraries", s.ListTripItineraries)
	router.Get("/itineraries/:id", s.GetItinerary)
	router.Post("/itineraries/:id/share", s.IssueShareLink)
	router.Put("/itineraries/:id/notes", s.UpdateItineraryNotes)

	router.Post("/parse/award-option", s.ParseAwardOption)

	router.Get("/metrics/global", s.GetGlobalMetrics)
	router.Get("/statistics/dashboard", s.GetDashboard)

	router.Get("/knowledge", s.ListKnowledge)
	router.Get("/knowledge/:id", s.GetKnowledgeArticle)

	router.Get("/integrations", s.ListIntegrations)
}

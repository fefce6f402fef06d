package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/telemetry"
)

// ListClients returns every client record
func (s *APIServer) ListClients(c *fiber.Ctx) error {
	clients, err := s.repos.Client.List()
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(clients)
}

// GetClient returns one client by id
func (s *APIServer) GetClient(c *fiber.Ctx) error {
	client, err := s.repos.Client.GetByID(c.Params("id"))
	if err != nil {
		return repoError(c, err)
	}
	return c.JSON(client)
}

// CreateClient creates a client record
func (s *APIServer) CreateClient(c *fiber.Ctx) error {
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return badRequest(c, "invalid client payload")
	}
	if err := client.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := s.repos.Client.Create(&client); err != nil {
		return repoError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient replaces a client's editable fields
func (s *APIServer) UpdateClient(c *fiber.Ctx) error {
	var client models.Client
	if err := c.BodyParser(&client); err != nil {
		return badRequest(c, "invalid client payload")
	}
	client.ID = c.Params("id")
	if err := client.Validate(); err != nil {
		return unprocessable(c, err.Error())
	}
	if err := s.repos.Client.Update(&client); err != nil {
		return repoError(c, err)
	}
	return c.JSON(client)
}

// ListClientTrips returns all trips belonging to one client
func (s *APIServer) ListClientTrips(c *fiber.Ctx) error {
	clientID := c.Params("id")
	if _, err := s.repos.Client.GetByID(clientID); err != nil {
		return repoError(c, err)
	}
	trips, err := s.repos.Trip.ListByClient(clientID)
	if err != nil {
		return repoError(c, err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}
	return c.JSON(trips)
}

// ListCommunications returns the touch log for one client
func (s *APIServer) ListCommunications(c *fiber.Ctx) error {
	clientID := c.Params("id")
	if _, err := s.repos.Client.GetByID(clientID); err != nil {
		return repoError(c, err)
	}
	entries, err := s.repos.Communication.ListByClient(clientID)
	if err != nil {
		return repoError(c, err)
	}
	if entries == nil {
		entries = []models.CommunicationEntry{}
	}
	return c.JSON(entries)
}

// AddCommunication appends a touch log entry for one client
func (s *APIServer) AddCommunication(c *fiber.Ctx) error {
	clientID := c.Params("id")
	if _, err := s.repos.Client.GetByID(clientID); err != nil {
		return repoError(c, err)
	}

	var entry models.CommunicationEntry
	if err := c.BodyParser(&entry); err != nil {
		return badRequest(c, "invalid communication payload")
	}
	entry.ClientID = clientID
	if entry.Summary == "" {
		return unprocessable(c, "summary is required")
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	if err := s.repos.Communication.Add(&entry); err != nil {
		return repoError(c, err)
	}

	telemetry.Record(telemetry.EventCommunicationLogged, map[string]string{
		"client_id": clientID,
		"channel":   entry.Channel,
	})
	return c.Status(fiber.StatusCreated).JSON(entry)
}

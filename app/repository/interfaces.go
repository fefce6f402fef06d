package repository

import (
	"github.com/TripDeskHQ/TripDesk/app/models"
)

// ClientRepository defines the interface for client record operations
type ClientRepository interface {
	List() ([]models.Client, error)
	GetByID(id string) (*models.Client, error)
	Create(client *models.Client) error
	Update(client *models.Client) error
}

// TripRepository defines the interface for trip operations. Award and
// hotel option sub-operations are trip-level updates: every one of them
// passes the same read-only gate and pin normalization, and writes
// against a Closed trip are silently dropped without error.
type TripRepository interface {
	List() ([]models.Trip, error)
	ListByClient(clientID string) ([]models.Trip, error)
	GetByID(id string) (*models.Trip, error)
	Create(trip *models.Trip) error
	Update(trip *models.Trip) error
	SetStatus(id, status string) error
	AddAwardOption(tripID string, opt *models.AwardOption) error
	UpdateAwardOption(tripID string, opt *models.AwardOption) error
	RemoveAwardOption(tripID, optionID string) error
	PinAwardOption(tripID, optionID string) error
	AddHotelOption(tripID string, hotel *models.HotelOption) error
	RemoveHotelOption(tripID, hotelID string) error
}

// ItineraryRepository defines the interface for itinerary operations.
// Generate is the only way an itinerary comes into existence.
type ItineraryRepository interface {
	List() ([]models.Itinerary, error)
	ListByTrip(tripID string) ([]models.Itinerary, error)
	GetByID(id string) (*models.Itinerary, error)
	GetByShareToken(token string) (*models.Itinerary, error)
	Generate(tripID string) (*models.Itinerary, error)
	SetShareToken(id, token string) error
	UpdateNotes(id, notes string) error
}

// KnowledgeRepository defines the interface for knowledge base reads
type KnowledgeRepository interface {
	List() ([]models.KnowledgeArticle, error)
	GetByID(id string) (*models.KnowledgeArticle, error)
}

// CommunicationRepository defines the interface for the client touch log
type CommunicationRepository interface {
	ListByClient(clientID string) ([]models.CommunicationEntry, error)
	Add(entry *models.CommunicationEntry) error
}

// IntegrationRepository defines the interface for award-search deep links
type IntegrationRepository interface {
	List() ([]models.AwardSearchIntegration, error)
}

// AgentRepository defines the interface for portal logins
type AgentRepository interface {
	GetByEmail(email string) (*models.Agent, error)
	Create(agent *models.Agent) error
	Update(agent *models.Agent) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Client        ClientRepository
	Trip          TripRepository
	Itinerary     ItineraryRepository
	Knowledge     KnowledgeRepository
	Communication CommunicationRepository
	Integration   IntegrationRepository
	Agent         AgentRepository
}

package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/env"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/portalstore"
)

// NewLocalRepositories wires every repository to the portal data store.
// This is the default backend; all invariants live in the store itself.
func NewLocalRepositories(store *portalstore.Store) *Repositories {
	return &Repositories{
		Client:        &localClientRepository{store: store},
		Trip:          &localTripRepository{store: store},
		Itinerary:     &localItineraryRepository{store: store},
		Knowledge:     &localKnowledgeRepository{store: store},
		Communication: &localCommunicationRepository{store: store},
		Integration:   &localIntegrationRepository{store: store},
		Agent:         newLocalAgentRepository(),
	}
}

type localClientRepository struct {
	store *portalstore.Store
}

func (r *localClientRepository) List() ([]models.Client, error) {
	return r.store.Snapshot().Clients, nil
}

func (r *localClientRepository) GetByID(id string) (*models.Client, error) {
	client := r.store.GetClient(id)
	if client == nil {
		return nil, ErrNotFound
	}
	return client, nil
}

func (r *localClientRepository) Create(client *models.Client) error {
	*client = r.store.CreateClient(*client)
	return nil
}

func (r *localClientRepository) Update(client *models.Client) error {
	if r.store.GetClient(client.ID) == nil {
		return ErrNotFound
	}
	r.store.UpdateClient(*client)
	return nil
}

type localTripRepository struct {
	store *portalstore.Store
}

func (r *localTripRepository) List() ([]models.Trip, error) {
	return r.store.Snapshot().Trips, nil
}

func (r *localTripRepository) ListByClient(clientID string) ([]models.Trip, error) {
	var trips []models.Trip
	for _, trip := range r.store.Snapshot().Trips {
		if trip.ClientID == clientID {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

func (r *localTripRepository) GetByID(id string) (*models.Trip, error) {
	trip := r.store.GetTrip(id)
	if trip == nil {
		return nil, ErrNotFound
	}
	return trip, nil
}

func (r *localTripRepository) Create(trip *models.Trip) error {
	if r.store.GetClient(trip.ClientID) == nil {
		return fmt.Errorf("trip client %s: %w", trip.ClientID, ErrNotFound)
	}
	*trip = r.store.CreateTrip(*trip)
	return nil
}

// Update replaces the trip's editable fields. Owned collections and the
// pin are deliberately left to their sub-operations.
func (r *localTripRepository) Update(trip *models.Trip) error {
	if r.store.GetTrip(trip.ID) == nil {
		return ErrNotFound
	}
	r.store.UpdateTrip(trip.ID, "trip.update", func(t *models.Trip) {
		t.Title = trip.Title
		t.Origin = trip.Origin
		t.Destination = trip.Destination
		t.DateStart = trip.DateStart
		t.DateEnd = trip.DateEnd
		t.Passengers = trip.Passengers
		t.CabinPref = trip.CabinPref
		t.FlexibilityDays = trip.FlexibilityDays
		t.BudgetUSD = trip.BudgetUSD
		t.Notes = trip.Notes
		t.Intake = trip.Intake
	})
	return nil
}

func (r *localTripRepository) SetStatus(id, status string) error {
	if r.store.GetTrip(id) == nil {
		return ErrNotFound
	}
	r.store.SetTripStatus(id, status)
	return nil
}

func (r *localTripRepository) AddAwardOption(tripID string, opt *models.AwardOption) error {
	if r.store.GetTrip(tripID) == nil {
		return ErrNotFound
	}
	created := r.store.AddAwardOption(tripID, *opt)
	if created.ID != "" {
		*opt = created
	}
	return nil
}

func (r *localTripRepository) UpdateAwardOption(tripID string, opt *models.AwardOption) error {
	if r.store.GetTrip(tripID) == nil {
		return ErrNotFound
	}
	r.store.UpdateAwardOption(tripID, *opt)
	return nil
}

func (r *localTripRepository) RemoveAwardOption(tripID, optionID string) error {
	if r.store.GetTrip(tripID) == nil {
		return ErrNotFound
	}
	r.store.RemoveAwardOption(tripID, optionID)
	return nil
}

func (r *localTripRepository) PinAwardOption(tripID, optionID string) error {
	if r.store.GetTrip(tripID) == nil {
		return ErrNotFound
	}
	r.store.PinAwardOption(tripID, optionID)
	return nil
}

func (r *localTripRepository) AddHotelOption(tripID string, hotel *models.HotelOption) error {
	if r.store.GetTrip(tripID) == nil {
		return ErrNotFound
	}
	created := r.store.AddHotelOption(tripID, *hotel)
	if created.ID != "" {
		*hotel = created
	}
	return nil
}

func (r *localTripRepository) RemoveHotelOption(tripID, hotelID string) error {
	if r.store.GetTrip(tripID) == nil {
		return ErrNotFound
	}
	r.store.RemoveHotelOption(tripID, hotelID)
	return nil
}

type localItineraryRepository struct {
	store *portalstore.Store
}

func (r *localItineraryRepository) List() ([]models.Itinerary, error) {
	return r.store.Snapshot().Itineraries, nil
}

func (r *localItineraryRepository) ListByTrip(tripID string) ([]models.Itinerary, error) {
	var out []models.Itinerary
	for _, it := range r.store.Snapshot().Itineraries {
		if it.TripID == tripID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *localItineraryRepository) GetByID(id string) (*models.Itinerary, error) {
	snap := r.store.Snapshot()
	for i := range snap.Itineraries {
		if snap.Itineraries[i].ID == id {
			return &snap.Itineraries[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *localItineraryRepository) GetByShareToken(token string) (*models.Itinerary, error) {
	it := r.store.FindItineraryByShareToken(token)
	if it == nil {
		return nil, ErrNotFound
	}
	return it, nil
}

func (r *localItineraryRepository) Generate(tripID string) (*models.Itinerary, error) {
	if r.store.GetTrip(tripID) == nil {
		return nil, ErrNotFound
	}
	itinerary, ok := r.store.GenerateItinerary(tripID)
	if !ok {
		return nil, fmt.Errorf("trip %s is not eligible for itinerary generation", tripID)
	}
	return &itinerary, nil
}

func (r *localItineraryRepository) SetShareToken(id, token string) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	r.store.SetItineraryShareToken(id, token)
	return nil
}

func (r *localItineraryRepository) UpdateNotes(id, notes string) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	r.store.UpdateItineraryNotes(id, notes)
	return nil
}

type localKnowledgeRepository struct {
	store *portalstore.Store
}

func (r *localKnowledgeRepository) List() ([]models.KnowledgeArticle, error) {
	return r.store.Snapshot().KnowledgeArticles, nil
}

func (r *localKnowledgeRepository) GetByID(id string) (*models.KnowledgeArticle, error) {
	snap := r.store.Snapshot()
	for i := range snap.KnowledgeArticles {
		if snap.KnowledgeArticles[i].ID == id {
			return &snap.KnowledgeArticles[i], nil
		}
	}
	return nil, ErrNotFound
}

type localCommunicationRepository struct {
	store *portalstore.Store
}

func (r *localCommunicationRepository) ListByClient(clientID string) ([]models.CommunicationEntry, error) {
	var out []models.CommunicationEntry
	for _, entry := range r.store.Snapshot().CommunicationEntries {
		if entry.ClientID == clientID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *localCommunicationRepository) Add(entry *models.CommunicationEntry) error {
	*entry = r.store.AddCommunicationEntry(*entry)
	return nil
}

type localIntegrationRepository struct {
	store *portalstore.Store
}

func (r *localIntegrationRepository) List() ([]models.AwardSearchIntegration, error) {
	integrations := r.store.Snapshot().AwardSearchIntegrations
	sort.SliceStable(integrations, func(i, j int) bool {
		return integrations[i].Position < integrations[j].Position
	})
	return integrations, nil
}

// localAgentRepository keeps logins in memory, seeded from the
// environment. Agent accounts only persist durably on the remote
// backend; local mode is single-agency.
type localAgentRepository struct {
	mu     sync.Mutex
	agents map[string]models.Agent
	nextID uint
}

func newLocalAgentRepository() *localAgentRepository {
	r := &localAgentRepository{
		agents: make(map[string]models.Agent),
		nextID: 1,
	}

	email := env.GetEnv("ADMIN_EMAIL", "")
	password := env.GetEnv("ADMIN_PASSWORD", "")
	if email != "" && password != "" {
		agent, err := models.CreateAgent(env.GetEnv("ADMIN_NAME", "Agency Admin"), email, password)
		if err == nil {
			agent.Role = models.AGENT_ROLE_ADMIN
			_ = r.Create(agent)
		}
	}
	return r
}

func (r *localAgentRepository) GetByEmail(email string) (*models.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agent, ok := r.agents[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &agent, nil
}

func (r *localAgentRepository) Create(agent *models.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	agent.ID = r.nextID
	r.nextID++
	r.agents[agent.Email] = *agent
	return nil
}

func (r *localAgentRepository) Update(agent *models.Agent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[agent.Email]; !ok {
		return ErrNotFound
	}
	r.agents[agent.Email] = *agent
	return nil
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/remotesync"
)

// remoteState is the in-memory cache in front of the remote backend.
// It is populated by a one-time bulk fetch and kept current by
// optimistic updates; remote writes drain through the sync queue
// afterwards with no rollback on failure.
type remoteState struct {
	mu          sync.RWMutex
	clients     map[string]models.Client
	trips       map[string]models.Trip
	itineraries map[string]models.Itinerary
	order       struct {
		clients     []string
		trips       []string
		itineraries []string
	}
}

func newRemoteState() *remoteState {
	return &remoteState{
		clients:     make(map[string]models.Client),
		trips:       make(map[string]models.Trip),
		itineraries: make(map[string]models.Itinerary),
	}
}

// NewRemoteRepositories wires the repositories to a remote relational
// backend with an optimistic in-memory cache. The returned queue must
// be started by the caller and stopped on shutdown.
func NewRemoteRepositories(db *gorm.DB, workers int) (*Repositories, *remotesync.Queue) {
	state := newRemoteState()
	queue := remotesync.NewQueue(&gormApplier{db: db}, workers)

	state.hydrate(db)

	repos := &Repositories{
		Client:        &remoteClientRepository{state: state, queue: queue},
		Trip:          &remoteTripRepository{state: state, queue: queue},
		Itinerary:     &remoteItineraryRepository{state: state, queue: queue},
		Knowledge:     &remoteKnowledgeRepository{},
		Communication: &remoteCommunicationRepository{},
		Integration:   &remoteIntegrationRepository{db: db},
		Agent:         &remoteAgentRepository{db: db},
	}
	return repos, queue
}

// hydrate bulk-fetches every cached collection concurrently. Partial
// failure of one collection does not block the others; it only logs.
func (s *remoteState) hydrate(db *gorm.DB) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		var clients []models.Client
		if err := db.Order("created_at").Find(&clients).Error; err != nil {
			log.Errorf("[Repository] Bulk fetch of clients failed: %v", err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, c := range clients {
			s.clients[c.ID] = c
			s.order.clients = append(s.order.clients, c.ID)
		}
	}()

	go func() {
		defer wg.Done()
		var trips []models.Trip
		err := db.Preload("AwardOptions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).Preload("HotelOptions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position")
		}).Order("created_at").Find(&trips).Error
		if err != nil {
			log.Errorf("[Repository] Bulk fetch of trips failed: %v", err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, t := range trips {
			normalizeTripPin(&t)
			s.trips[t.ID] = t
			s.order.trips = append(s.order.trips, t.ID)
		}
	}()

	go func() {
		defer wg.Done()
		var itineraries []models.Itinerary
		if err := db.Order("generated_at").Find(&itineraries).Error; err != nil {
			log.Errorf("[Repository] Bulk fetch of itineraries failed: %v", err)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for _, it := range itineraries {
			s.itineraries[it.ID] = it
			s.order.itineraries = append(s.order.itineraries, it.ID)
		}
	}()

	wg.Wait()
}

// normalizeTripPin mirrors the local store's invariant: a pinned id
// that does not resolve within the trip's own list is cleared.
func normalizeTripPin(trip *models.Trip) {
	if trip.PinnedOptionID != nil && !trip.PinnedOptionResolves() {
		trip.PinnedOptionID = nil
	}
}

// gormApplier lands queued writes on the relational backend.
type gormApplier struct {
	db *gorm.DB
}

func (a *gormApplier) Apply(ctx context.Context, job remotesync.WriteJob) error {
	db := a.db.WithContext(ctx)

	if job.Action == remotesync.ActionDelete {
		switch job.Entity {
		case remotesync.EntityClient:
			return db.Delete(&models.Client{}, "id = ?", job.RecordID).Error
		case remotesync.EntityTrip:
			return db.Delete(&models.Trip{}, "id = ?", job.RecordID).Error
		case remotesync.EntityItinerary:
			return db.Delete(&models.Itinerary{}, "id = ?", job.RecordID).Error
		}
		return fmt.Errorf("unknown delete entity %q", job.Entity)
	}

	switch job.Entity {
	case remotesync.EntityClient:
		var client models.Client
		if err := json.Unmarshal(job.Payload, &client); err != nil {
			return err
		}
		return db.Save(&client).Error

	case remotesync.EntityTrip:
		var trip models.Trip
		if err := json.Unmarshal(job.Payload, &trip); err != nil {
			return err
		}
		return db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&trip).Error; err != nil {
				return err
			}
			// Drop options removed from the owning trip.
			optionIDs := make([]string, 0, len(trip.AwardOptions))
			for _, opt := range trip.AwardOptions {
				optionIDs = append(optionIDs, opt.ID)
			}
			q := tx.Where("trip_id = ?", trip.ID)
			if len(optionIDs) > 0 {
				q = q.Where("id NOT IN ?", optionIDs)
			}
			if err := q.Delete(&models.AwardOption{}).Error; err != nil {
				return err
			}
			hotelIDs := make([]string, 0, len(trip.HotelOptions))
			for _, h := range trip.HotelOptions {
				hotelIDs = append(hotelIDs, h.ID)
			}
			q = tx.Where("trip_id = ?", trip.ID)
			if len(hotelIDs) > 0 {
				q = q.Where("id NOT IN ?", hotelIDs)
			}
			return q.Delete(&models.HotelOption{}).Error
		})

	case remotesync.EntityItinerary:
		var itinerary models.Itinerary
		if err := json.Unmarshal(job.Payload, &itinerary); err != nil {
			return err
		}
		return db.Save(&itinerary).Error

	case remotesync.EntityCommunication:
		var entry models.CommunicationEntry
		if err := json.Unmarshal(job.Payload, &entry); err != nil {
			return err
		}
		return db.Save(&entry).Error
	}

	return fmt.Errorf("unknown upsert entity %q", job.Entity)
}

// enqueueUpsert serializes and queues a record for remote persistence.
func enqueueUpsert(queue *remotesync.Queue, entity remotesync.Entity, recordID string, record any) {
	job, err := remotesync.NewUpsert(entity, recordID, record)
	if err != nil {
		log.Errorf("[Repository] Queue %s/%s failed: %v", entity, recordID, err)
		return
	}
	queue.Enqueue(job)
}

// remoteKnowledgeRepository is not wired yet: knowledge content is
// authored outside the portal. It must fail distinctly from "not
// found" so callers cannot mistake it for an empty knowledge base.
type remoteKnowledgeRepository struct{}

func (r *remoteKnowledgeRepository) List() ([]models.KnowledgeArticle, error) {
	return nil, fmt.Errorf("knowledge base on remote backend: %w", ErrNotImplemented)
}

func (r *remoteKnowledgeRepository) GetByID(id string) (*models.KnowledgeArticle, error) {
	return nil, fmt.Errorf("knowledge base on remote backend: %w", ErrNotImplemented)
}

// remoteCommunicationRepository is not wired yet either.
type remoteCommunicationRepository struct{}

func (r *remoteCommunicationRepository) ListByClient(clientID string) ([]models.CommunicationEntry, error) {
	return nil, fmt.Errorf("communication log on remote backend: %w", ErrNotImplemented)
}

func (r *remoteCommunicationRepository) Add(entry *models.CommunicationEntry) error {
	return fmt.Errorf("communication log on remote backend: %w", ErrNotImplemented)
}

type remoteIntegrationRepository struct {
	db *gorm.DB
}

func (r *remoteIntegrationRepository) List() ([]models.AwardSearchIntegration, error) {
	var integrations []models.AwardSearchIntegration
	err := r.db.Order("position").Find(&integrations).Error
	return integrations, err
}

type remoteAgentRepository struct {
	db *gorm.DB
}

func (r *remoteAgentRepository) GetByEmail(email string) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.Where("email = ?", email).First(&agent).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *remoteAgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

func (r *remoteAgentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

// sortedIDs materializes cached record ids in insertion order, with
// records created this session appended after the hydrated ones.
func sortedIDs(order []string, known map[string]struct{}) []string {
	out := make([]string, 0, len(order))
	seen := make(map[string]struct{}, len(order))
	for _, id := range order {
		if _, ok := known[id]; ok {
			if _, dup := seen[id]; !dup {
				out = append(out, id)
				seen[id] = struct{}{}
			}
		}
	}
	rest := make([]string, 0)
	for id := range known {
		if _, ok := seen[id]; !ok {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func newRecordID() string {
	return uuid.NewString()
}

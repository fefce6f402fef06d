// Package portalstore is the single source of truth for portal records
// within a running session. All mutations are synchronous and atomic: a
// mutation clones the current snapshot, applies the change, normalizes,
// persists and notifies subscribers before returning. Mutations against
// a Closed trip are silently dropped: no change, no error.
package portalstore

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

// Subscriber receives the committed snapshot after each mutation.
// Callbacks run synchronously under the store lock and must not call
// back into the store.
type Subscriber func(Snapshot)

// Store owns the in-memory snapshot and its persistence.
type Store struct {
	mu        sync.Mutex
	storage   Storage
	snap      Snapshot
	hydrated  bool
	subs      map[int]Subscriber
	nextSubID int
}

// New creates a store over the given storage backend. Hydration is lazy;
// call Hydrate at startup to surface load problems early.
func New(storage Storage) *Store {
	return &Store{
		storage: storage,
		subs:    make(map[int]Subscriber),
	}
}

// Hydrate loads the persisted snapshot, seeding from defaults when it is
// absent, malformed or schema-mismatched. Idempotent; runs at most once
// per store.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()
}

func (s *Store) hydrateLocked() {
	if s.hydrated {
		return
	}
	s.hydrated = true

	data, err := s.storage.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSnapshot) {
			log.Printf("[PortalStore] Snapshot load failed, reseeding: %v", err)
		}
		s.reseedLocked()
		return
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		log.Printf("[PortalStore] Discarding persisted snapshot: %v", err)
		s.reseedLocked()
		return
	}

	snap.normalize()
	s.snap = snap
}

func (s *Store) reseedLocked() {
	s.snap = DefaultSeed()
	s.persistLocked()
}

// Subscribe registers a callback for committed mutations and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()
	return s.snap.clone()
}

// commit normalizes, appends the audit record, swaps the snapshot in,
// persists it and notifies subscribers.
func (s *Store) commitLocked(next Snapshot, action, entity, entityID string) {
	next.normalize()
	next.AuditLog = append(next.AuditLog, models.AuditEntry{
		ID:        uuid.NewString(),
		Actor:     "portal",
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		CreatedAt: time.Now().UTC(),
	})
	s.snap = next
	s.persistLocked()
	for _, fn := range s.subs {
		fn(s.snap.clone())
	}
}

func (s *Store) persistLocked() {
	data, err := s.snap.Encode()
	if err != nil {
		log.Printf("[PortalStore] Snapshot encode failed: %v", err)
		return
	}
	if err := s.storage.Save(data); err != nil {
		// Persistence failures are recoverable locally; state stays live.
		log.Printf("[PortalStore] Snapshot persist failed: %v", err)
	}
}

// CreateClient adds a client and returns the stored record.
func (s *Store) CreateClient(client models.Client) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	now := time.Now().UTC()
	client.ID = uuid.NewString()
	client.CreatedAt = now
	client.UpdatedAt = now
	if client.Status == "" {
		client.Status = models.CLIENT_STATUS_LEAD
	}
	if client.Loyalty.Other == nil {
		client.Loyalty.Other = map[string]int{}
	}
	if client.Preferences.HomeAirports == nil {
		client.Preferences.HomeAirports = []string{}
	}

	next := s.snap.clone()
	next.Clients = append(next.Clients, client)
	s.commitLocked(next, "client.create", "client", client.ID)
	return client
}

// UpdateClient replaces a client record wholesale. Unknown ids are a
// silent no-op; clients are never deleted in the portal.
func (s *Store) UpdateClient(client models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	next := s.snap.clone()
	existing := next.findClient(client.ID)
	if existing == nil {
		return
	}
	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = time.Now().UTC()
	*existing = client
	s.commitLocked(next, "client.update", "client", client.ID)
}

// GetClient returns a copy of the client, or nil.
func (s *Store) GetClient(id string) *models.Client {
	snap := s.Snapshot()
	return snap.findClient(id)
}

// CreateTrip adds a trip for a client and returns the stored record.
func (s *Store) CreateTrip(trip models.Trip) models.Trip {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	now := time.Now().UTC()
	trip.ID = uuid.NewString()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	if trip.Status == "" {
		trip.Status = models.TRIP_STATUS_INTAKE
	}
	if trip.Passengers <= 0 {
		trip.Passengers = 1
	}
	trip.AwardOptions = []models.AwardOption{}
	trip.HotelOptions = []models.HotelOption{}
	trip.PinnedOptionID = nil

	next := s.snap.clone()
	next.Trips = append(next.Trips, trip)
	s.commitLocked(next, "trip.create", "trip", trip.ID)
	return trip
}

// GetTrip returns a copy of the trip, or nil.
func (s *Store) GetTrip(id string) *models.Trip {
	snap := s.Snapshot()
	return snap.findTrip(id)
}

// UpdateTrip applies fn to the trip and commits. The mutation is
// silently dropped when the trip is unknown or read-only. Every award
// and hotel option sub-operation funnels through here, so the read-only
// gate and the pin normalization pass cover them all.
func (s *Store) UpdateTrip(id string, action string, fn func(*models.Trip)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	next := s.snap.clone()
	trip := next.findTrip(id)
	if trip == nil || trip.IsReadOnly() {
		return
	}
	fn(trip)
	trip.UpdatedAt = time.Now().UTC()
	s.commitLocked(next, action, "trip", id)
}

// SetTripStatus moves a trip to a new workflow status, stamping the
// draft-ready and sent markers used by delivery metrics. SOP gating is
// the caller's responsibility; Closed trips still refuse the write.
func (s *Store) SetTripStatus(id, status string) {
	if !models.IsValidTripStatus(status) {
		return
	}
	s.UpdateTrip(id, "trip.status", func(trip *models.Trip) {
		trip.Status = status
		now := time.Now().UTC()
		switch status {
		case models.TRIP_STATUS_DRAFT_READY:
			if trip.DraftReadyAt == nil {
				trip.DraftReadyAt = &now
			}
		case models.TRIP_STATUS_SENT:
			if trip.SentAt == nil {
				trip.SentAt = &now
			}
		}
	})
}

// AddAwardOption appends an option to the trip's list and returns it.
// The zero id means the write was dropped (unknown or closed trip).
func (s *Store) AddAwardOption(tripID string, opt models.AwardOption) models.AwardOption {
	opt.ID = uuid.NewString()
	opt.TripID = tripID
	opt.CreatedAt = time.Now().UTC()
	if opt.TransferTime == "" {
		opt.TransferTime = models.TRANSFER_TIME_UNKNOWN
	}
	if opt.Badges == nil {
		opt.Badges = []string{}
	}

	applied := false
	s.UpdateTrip(tripID, "trip.option.add", func(trip *models.Trip) {
		opt.Position = len(trip.AwardOptions)
		trip.AwardOptions = append(trip.AwardOptions, opt)
		applied = true
	})
	if !applied {
		return models.AwardOption{}
	}
	return opt
}

// UpdateAwardOption replaces an option in place, keeping its position.
func (s *Store) UpdateAwardOption(tripID string, opt models.AwardOption) {
	s.UpdateTrip(tripID, "trip.option.update", func(trip *models.Trip) {
		existing := trip.FindAwardOption(opt.ID)
		if existing == nil {
			return
		}
		opt.TripID = tripID
		opt.Position = existing.Position
		opt.CreatedAt = existing.CreatedAt
		*existing = opt
	})
}

// RemoveAwardOption deletes an option from the trip's list. A pin
// referencing it is cleared by the normalization pass.
func (s *Store) RemoveAwardOption(tripID, optionID string) {
	s.UpdateTrip(tripID, "trip.option.remove", func(trip *models.Trip) {
		kept := trip.AwardOptions[:0]
		for _, opt := range trip.AwardOptions {
			if opt.ID != optionID {
				kept = append(kept, opt)
			}
		}
		trip.AwardOptions = kept
		for i := range trip.AwardOptions {
			trip.AwardOptions[i].Position = i
		}
	})
}

// PinAwardOption designates one option as the trip's pinned choice.
// An empty optionID clears the pin.
func (s *Store) PinAwardOption(tripID, optionID string) {
	s.UpdateTrip(tripID, "trip.option.pin", func(trip *models.Trip) {
		if optionID == "" {
			trip.PinnedOptionID = nil
			return
		}
		trip.PinnedOptionID = &optionID
	})
}

// AddHotelOption appends a hotel option to the trip's list.
func (s *Store) AddHotelOption(tripID string, hotel models.HotelOption) models.HotelOption {
	hotel.ID = uuid.NewString()
	hotel.TripID = tripID
	hotel.CreatedAt = time.Now().UTC()

	applied := false
	s.UpdateTrip(tripID, "trip.hotel.add", func(trip *models.Trip) {
		hotel.Position = len(trip.HotelOptions)
		trip.HotelOptions = append(trip.HotelOptions, hotel)
		applied = true
	})
	if !applied {
		return models.HotelOption{}
	}
	return hotel
}

// RemoveHotelOption deletes a hotel option from the trip's list.
func (s *Store) RemoveHotelOption(tripID, hotelID string) {
	s.UpdateTrip(tripID, "trip.hotel.remove", func(trip *models.Trip) {
		kept := trip.HotelOptions[:0]
		for _, h := range trip.HotelOptions {
			if h.ID != hotelID {
				kept = append(kept, h)
			}
		}
		trip.HotelOptions = kept
		for i := range trip.HotelOptions {
			trip.HotelOptions[i].Position = i
		}
	})
}

// GenerateItinerary creates the itinerary artifact for a trip: option A
// is the pinned option, backups are the remaining options in list order.
// Returns false when the trip is unknown, read-only, or has no resolving
// pin. This is the only way an itinerary comes into existence.
func (s *Store) GenerateItinerary(tripID string) (models.Itinerary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	next := s.snap.clone()
	trip := next.findTrip(tripID)
	if trip == nil || trip.IsReadOnly() || !trip.PinnedOptionResolves() {
		return models.Itinerary{}, false
	}

	itinerary := models.Itinerary{
		ID:              uuid.NewString(),
		TripID:          tripID,
		OptionAID:       *trip.PinnedOptionID,
		BackupOptionIDs: []string{},
		GeneratedAt:     time.Now().UTC(),
	}
	for _, opt := range trip.AwardOptions {
		if opt.ID != itinerary.OptionAID {
			itinerary.BackupOptionIDs = append(itinerary.BackupOptionIDs, opt.ID)
		}
	}

	next.Itineraries = append(next.Itineraries, itinerary)
	s.commitLocked(next, "itinerary.generate", "itinerary", itinerary.ID)
	return itinerary, true
}

// SetItineraryShareToken attaches or replaces the share token. The
// previous token stops resolving immediately.
func (s *Store) SetItineraryShareToken(id, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	next := s.snap.clone()
	itinerary := next.findItinerary(id)
	if itinerary == nil {
		return
	}
	itinerary.ShareToken = token
	s.commitLocked(next, "itinerary.share", "itinerary", id)
}

// UpdateItineraryNotes replaces the itinerary's notes.
func (s *Store) UpdateItineraryNotes(id, notes string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	next := s.snap.clone()
	itinerary := next.findItinerary(id)
	if itinerary == nil {
		return
	}
	itinerary.Notes = notes
	s.commitLocked(next, "itinerary.notes", "itinerary", id)
}

// FindItineraryByShareToken resolves a share token by exact match.
func (s *Store) FindItineraryByShareToken(token string) *models.Itinerary {
	if token == "" {
		return nil
	}
	snap := s.Snapshot()
	for i := range snap.Itineraries {
		if snap.Itineraries[i].ShareToken == token {
			return &snap.Itineraries[i]
		}
	}
	return nil
}

// AddCommunicationEntry logs a client touchpoint.
func (s *Store) AddCommunicationEntry(entry models.CommunicationEntry) models.CommunicationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hydrateLocked()

	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = entry.CreatedAt
	}

	next := s.snap.clone()
	next.CommunicationEntries = append(next.CommunicationEntries, entry)
	s.commitLocked(next, "communication.add", "communication", entry.ID)
	return entry
}

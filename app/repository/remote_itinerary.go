package repository

import (
	"fmt"
	"time"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/remotesync"
)

type remoteItineraryRepository struct {
	state *remoteState
	queue *remotesync.Queue
}

func (r *remoteItineraryRepository) List() ([]models.Itinerary, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	known := make(map[string]struct{}, len(r.state.itineraries))
	for id := range r.state.itineraries {
		known[id] = struct{}{}
	}
	out := make([]models.Itinerary, 0, len(known))
	for _, id := range sortedIDs(r.state.order.itineraries, known) {
		out = append(out, r.state.itineraries[id])
	}
	return out, nil
}

func (r *remoteItineraryRepository) ListByTrip(tripID string) ([]models.Itinerary, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	var out []models.Itinerary
	for _, it := range all {
		if it.TripID == tripID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *remoteItineraryRepository) GetByID(id string) (*models.Itinerary, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	it, ok := r.state.itineraries[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *remoteItineraryRepository) GetByShareToken(token string) (*models.Itinerary, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	for _, it := range r.state.itineraries {
		if it.ShareToken == token {
			found := it
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Generate builds an itinerary from the trip's current pin. The pinned
// option becomes Option A, every other award option a backup in list
// order. The trip itself is not touched.
func (r *remoteItineraryRepository) Generate(tripID string) (*models.Itinerary, error) {
	r.state.mu.Lock()
	trip, ok := r.state.trips[tripID]
	if !ok {
		r.state.mu.Unlock()
		return nil, ErrNotFound
	}
	if trip.IsReadOnly() || !trip.PinnedOptionResolves() {
		r.state.mu.Unlock()
		return nil, fmt.Errorf("trip %s is not eligible for itinerary generation", tripID)
	}
	pinnedID := *trip.PinnedOptionID
	backups := make([]string, 0, len(trip.AwardOptions))
	for _, opt := range trip.AwardOptions {
		if opt.ID != pinnedID {
			backups = append(backups, opt.ID)
		}
	}
	itinerary := models.Itinerary{
		ID:              newRecordID(),
		TripID:          tripID,
		OptionAID:       pinnedID,
		BackupOptionIDs: backups,
		GeneratedAt:     time.Now().UTC(),
	}
	r.state.itineraries[itinerary.ID] = itinerary
	r.state.order.itineraries = append(r.state.order.itineraries, itinerary.ID)
	r.state.mu.Unlock()

	enqueueUpsert(r.queue, remotesync.EntityItinerary, itinerary.ID, itinerary)
	return &itinerary, nil
}

func (r *remoteItineraryRepository) SetShareToken(id, token string) error {
	return r.mutate(id, func(it *models.Itinerary) {
		it.ShareToken = token
	})
}

func (r *remoteItineraryRepository) UpdateNotes(id, notes string) error {
	return r.mutate(id, func(it *models.Itinerary) {
		it.Notes = notes
	})
}

func (r *remoteItineraryRepository) mutate(id string, fn func(*models.Itinerary)) error {
	r.state.mu.Lock()
	it, ok := r.state.itineraries[id]
	if !ok {
		r.state.mu.Unlock()
		return ErrNotFound
	}
	if trip, ok := r.state.trips[it.TripID]; ok && trip.IsReadOnly() {
		r.state.mu.Unlock()
		return nil
	}
	fn(&it)
	r.state.itineraries[id] = it
	r.state.mu.Unlock()

	enqueueUpsert(r.queue, remotesync.EntityItinerary, it.ID, it)
	return nil
}

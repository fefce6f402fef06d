package repository

import (
	"time"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/remotesync"
)

type remoteTripRepository struct {
	state *remoteState
	queue *remotesync.Queue
}

// mutate applies fn to the cached trip and queues the result. A trip
// that is read-only swallows the write without error, matching the
// local backend. Returns ErrNotFound when the trip is unknown.
//
// The option slices are copied before fn runs: trips handed out by
// GetByID and List share the cached backing arrays, so fn must never
// write into them.
func (r *remoteTripRepository) mutate(tripID string, fn func(*models.Trip)) error {
	r.state.mu.Lock()
	trip, ok := r.state.trips[tripID]
	if !ok {
		r.state.mu.Unlock()
		return ErrNotFound
	}
	if trip.IsReadOnly() {
		r.state.mu.Unlock()
		return nil
	}
	trip.AwardOptions = append([]models.AwardOption(nil), trip.AwardOptions...)
	trip.HotelOptions = append([]models.HotelOption(nil), trip.HotelOptions...)
	fn(&trip)
	normalizeTripPin(&trip)
	trip.UpdatedAt = time.Now().UTC()
	r.state.trips[tripID] = trip
	r.state.mu.Unlock()

	enqueueUpsert(r.queue, remotesync.EntityTrip, trip.ID, trip)
	return nil
}

func (r *remoteTripRepository) List() ([]models.Trip, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	known := make(map[string]struct{}, len(r.state.trips))
	for id := range r.state.trips {
		known[id] = struct{}{}
	}
	out := make([]models.Trip, 0, len(known))
	for _, id := range sortedIDs(r.state.order.trips, known) {
		out = append(out, r.state.trips[id])
	}
	return out, nil
}

func (r *remoteTripRepository) ListByClient(clientID string) ([]models.Trip, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	var trips []models.Trip
	for _, trip := range all {
		if trip.ClientID == clientID {
			trips = append(trips, trip)
		}
	}
	return trips, nil
}

func (r *remoteTripRepository) GetByID(id string) (*models.Trip, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	trip, ok := r.state.trips[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &trip, nil
}

func (r *remoteTripRepository) Create(trip *models.Trip) error {
	r.state.mu.Lock()
	if _, ok := r.state.clients[trip.ClientID]; !ok {
		r.state.mu.Unlock()
		return ErrNotFound
	}
	if trip.ID == "" {
		trip.ID = newRecordID()
	}
	if trip.Status == "" {
		trip.Status = models.TRIP_STATUS_INTAKE
	}
	now := time.Now().UTC()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	normalizeTripPin(trip)
	r.state.trips[trip.ID] = *trip
	r.state.order.trips = append(r.state.order.trips, trip.ID)
	r.state.mu.Unlock()

	enqueueUpsert(r.queue, remotesync.EntityTrip, trip.ID, *trip)
	return nil
}

// Update replaces the trip's editable fields. Owned collections and the
// pin are deliberately left to their sub-operations.
func (r *remoteTripRepository) Update(trip *models.Trip) error {
	return r.mutate(trip.ID, func(t *models.Trip) {
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
}

func (r *remoteTripRepository) SetStatus(id, status string) error {
	if !models.IsValidTripStatus(status) {
		return r.mutate(id, func(t *models.Trip) {})
	}
	return r.mutate(id, func(t *models.Trip) {
		t.Status = status
		now := time.Now().UTC()
		if status == models.TRIP_STATUS_DRAFT_READY && t.DraftReadyAt == nil {
			t.DraftReadyAt = &now
		}
		if status == models.TRIP_STATUS_SENT && t.SentAt == nil {
			t.SentAt = &now
		}
	})
}

func (r *remoteTripRepository) AddAwardOption(tripID string, opt *models.AwardOption) error {
	if opt.ID == "" {
		opt.ID = newRecordID()
	}
	opt.TripID = tripID
	opt.CreatedAt = time.Now().UTC()
	return r.mutate(tripID, func(t *models.Trip) {
		opt.Position = len(t.AwardOptions)
		t.AwardOptions = append(t.AwardOptions, *opt)
	})
}

func (r *remoteTripRepository) UpdateAwardOption(tripID string, opt *models.AwardOption) error {
	return r.mutate(tripID, func(t *models.Trip) {
		for i := range t.AwardOptions {
			if t.AwardOptions[i].ID == opt.ID {
				updated := *opt
				updated.TripID = tripID
				updated.Position = t.AwardOptions[i].Position
				updated.CreatedAt = t.AwardOptions[i].CreatedAt
				t.AwardOptions[i] = updated
				return
			}
		}
	})
}

func (r *remoteTripRepository) RemoveAwardOption(tripID, optionID string) error {
	return r.mutate(tripID, func(t *models.Trip) {
		kept := t.AwardOptions[:0]
		for _, existing := range t.AwardOptions {
			if existing.ID != optionID {
				kept = append(kept, existing)
			}
		}
		t.AwardOptions = kept
		for i := range t.AwardOptions {
			t.AwardOptions[i].Position = i
		}
	})
}

func (r *remoteTripRepository) PinAwardOption(tripID, optionID string) error {
	return r.mutate(tripID, func(t *models.Trip) {
		if optionID == "" {
			t.PinnedOptionID = nil
			return
		}
		t.PinnedOptionID = &optionID
	})
}

func (r *remoteTripRepository) AddHotelOption(tripID string, hotel *models.HotelOption) error {
	if hotel.ID == "" {
		hotel.ID = newRecordID()
	}
	hotel.TripID = tripID
	hotel.CreatedAt = time.Now().UTC()
	return r.mutate(tripID, func(t *models.Trip) {
		hotel.Position = len(t.HotelOptions)
		t.HotelOptions = append(t.HotelOptions, *hotel)
	})
}

func (r *remoteTripRepository) RemoveHotelOption(tripID, hotelID string) error {
	return r.mutate(tripID, func(t *models.Trip) {
		kept := t.HotelOptions[:0]
		for _, existing := range t.HotelOptions {
			if existing.ID != hotelID {
				kept = append(kept, existing)
			}
		}
		t.HotelOptions = kept
		for i := range t.HotelOptions {
			t.HotelOptions[i].Position = i
		}
	})
}

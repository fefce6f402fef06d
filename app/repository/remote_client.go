package repository

import (
	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/remotesync"
)

type remoteClientRepository struct {
	state *remoteState
	queue *remotesync.Queue
}

func (r *remoteClientRepository) List() ([]models.Client, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	known := make(map[string]struct{}, len(r.state.clients))
	for id := range r.state.clients {
		known[id] = struct{}{}
	}
	out := make([]models.Client, 0, len(known))
	for _, id := range sortedIDs(r.state.order.clients, known) {
		out = append(out, r.state.clients[id])
	}
	return out, nil
}

func (r *remoteClientRepository) GetByID(id string) (*models.Client, error) {
	r.state.mu.RLock()
	defer r.state.mu.RUnlock()
	client, ok := r.state.clients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

func (r *remoteClientRepository) Create(client *models.Client) error {
	if client.ID == "" {
		client.ID = newRecordID()
	}
	r.state.mu.Lock()
	r.state.clients[client.ID] = *client
	r.state.order.clients = append(r.state.order.clients, client.ID)
	r.state.mu.Unlock()

	enqueueUpsert(r.queue, remotesync.EntityClient, client.ID, *client)
	return nil
}

func (r *remoteClientRepository) Update(client *models.Client) error {
	r.state.mu.Lock()
	if _, ok := r.state.clients[client.ID]; !ok {
		r.state.mu.Unlock()
		return ErrNotFound
	}
	r.state.clients[client.ID] = *client
	r.state.mu.Unlock()

	enqueueUpsert(r.queue, remotesync.EntityClient, client.ID, *client)
	return nil
}

package repository

import (
	"strconv"
	"sync"

	"gorm.io/gorm"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/env"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/portalstore"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/remotesync"
)

const (
	BACKEND_LOCAL  = "local"
	BACKEND_REMOTE = "remote"
)

// Backend returns the configured repository backend.
func Backend() string {
	return env.GetEnv("REPO_BACKEND", BACKEND_LOCAL)
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	store *portalstore.Store
	db    *gorm.DB
	repos *Repositories
	queue *remotesync.Queue
	once  sync.Once
}

// NewFactory creates a new repository factory. Exactly one of store or
// db is used, depending on REPO_BACKEND.
func NewFactory(store *portalstore.Store, db *gorm.DB) *Factory {
	return &Factory{
		store: store,
		db:    db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		if Backend() == BACKEND_REMOTE {
			workers, err := strconv.Atoi(env.GetEnv("REMOTE_SYNC_WORKERS", "2"))
			if err != nil || workers < 1 {
				workers = 2
			}
			f.repos, f.queue = NewRemoteRepositories(f.db, workers)
			f.queue.Start()
			return
		}
		f.repos = NewLocalRepositories(f.store)
	})
	return f.repos
}

// GetClientRepository returns the client repository instance
func (f *Factory) GetClientRepository() ClientRepository {
	return f.GetRepositories().Client
}

// GetTripRepository returns the trip repository instance
func (f *Factory) GetTripRepository() TripRepository {
	return f.GetRepositories().Trip
}

// GetItineraryRepository returns the itinerary repository instance
func (f *Factory) GetItineraryRepository() ItineraryRepository {
	return f.GetRepositories().Itinerary
}

// GetKnowledgeRepository returns the knowledge repository instance
func (f *Factory) GetKnowledgeRepository() KnowledgeRepository {
	return f.GetRepositories().Knowledge
}

// GetCommunicationRepository returns the communication repository instance
func (f *Factory) GetCommunicationRepository() CommunicationRepository {
	return f.GetRepositories().Communication
}

// GetIntegrationRepository returns the integration repository instance
func (f *Factory) GetIntegrationRepository() IntegrationRepository {
	return f.GetRepositories().Integration
}

// GetAgentRepository returns the agent repository instance
func (f *Factory) GetAgentRepository() AgentRepository {
	return f.GetRepositories().Agent
}

// Shutdown stops the remote sync queue if one is running.
func (f *Factory) Shutdown() {
	if f.queue != nil {
		f.queue.Stop()
	}
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(store *portalstore.Store, db *gorm.DB) {
	factoryOnce.Do(func() {
		globalFactory = NewFactory(store, db)
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

package statistics

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/TripDeskHQ/TripDesk/app/models"
	"github.com/TripDeskHQ/TripDesk/app/repository"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/cache"
	"github.com/TripDeskHQ/TripDesk/internal/pkg/tripmetrics"
)

const (
	CacheKeyDashboard = "statistics:dashboard"
	CacheExpiration   = 30 * time.Minute
)

// DashboardData holds the aggregate figures for the agent dashboard.
// Formatted fields already carry the unknown placeholder where the
// underlying average could not be computed.
type DashboardData struct {
	TotalClients    int            `json:"total_clients"`
	TotalTrips      int            `json:"total_trips"`
	ActiveTrips     int            `json:"active_trips"`
	DeliveredCount  int            `json:"delivered_count"`
	AvgSavingsUSD   string         `json:"avg_savings_usd"`
	AvgMilesUsed    string         `json:"avg_miles_used"`
	AvgDeliveryDays string         `json:"avg_delivery_days"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache checks whether the cache should be updated
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded updates the cache when the interval has passed
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Errorf("[Statistics] Cache update failed: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next UpdateCacheIfNeeded to refresh
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recomputes the dashboard aggregates and caches them
func UpdateStatisticsCache() error {
	repos := repository.GetGlobalRepositories()

	clients, err := repos.Client.List()
	if err != nil {
		return err
	}
	trips, err := repos.Trip.List()
	if err != nil {
		return err
	}
	itineraries, err := repos.Itinerary.List()
	if err != nil {
		return err
	}

	data := Compute(clients, trips, itineraries)
	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return cache.Set(CacheKeyDashboard, string(encoded), CacheExpiration)
}

// Compute builds the dashboard figures from in-memory records.
func Compute(clients []models.Client, trips []models.Trip, itineraries []models.Itinerary) DashboardData {
	global := tripmetrics.ComputeGlobalMetrics(trips, itineraries)

	data := DashboardData{
		TotalClients:    len(clients),
		TotalTrips:      len(trips),
		DeliveredCount:  global.DeliveredCount,
		AvgSavingsUSD:   tripmetrics.FormatCurrency(global.AvgSavingsUSD),
		AvgMilesUsed:    tripmetrics.FormatAvgMiles(global.AvgMilesUsed),
		AvgDeliveryDays: tripmetrics.FormatDays(global.AvgDeliveryTimeDays),
		StatusBreakdown: make(map[string]int, len(models.TripStatuses)),
	}
	for _, status := range models.TripStatuses {
		data.StatusBreakdown[status] = 0
	}
	for _, trip := range trips {
		data.StatusBreakdown[trip.Status]++
		if trip.Status != models.TRIP_STATUS_CLOSED {
			data.ActiveTrips++
		}
	}
	return data
}

// GetDashboardData returns the cached dashboard figures, refreshing the
// cache on a miss.
func GetDashboardData() (DashboardData, error) {
	raw, err := cache.Get(CacheKeyDashboard)
	if err == nil && raw != "" {
		var data DashboardData
		if jsonErr := json.Unmarshal([]byte(raw), &data); jsonErr == nil {
			return data, nil
		}
	}

	if err := UpdateStatisticsCache(); err != nil {
		return DashboardData{}, err
	}
	raw, err = cache.Get(CacheKeyDashboard)
	if err != nil {
		return DashboardData{}, err
	}
	var data DashboardData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return DashboardData{}, err
	}
	return data, nil
}

// Package tripmetrics derives financial and delivery metrics from trip
// and itinerary records. All functions are pure; "unknown" values are
// represented as nil pointers and are never conflated with zero.
package tripmetrics

import (
	"time"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

// TripMetrics holds the per-trip derived values. A nil field means the
// value cannot be computed from the trip's current options.
type TripMetrics struct {
	MilesUsed          *int     `json:"miles_used,omitempty"`
	FeesUSD            *float64 `json:"fees_usd,omitempty"`
	EstimatedCashValue *float64 `json:"estimated_cash_value,omitempty"`
	EstimatedSavings   *float64 `json:"estimated_savings,omitempty"`
}

// GlobalMetrics aggregates across delivered trips (status Sent or Booked).
// Averages are means over trips where the value is known; nil when no
// delivered trip has a known value.
type GlobalMetrics struct {
	DeliveredCount      int      `json:"delivered_count"`
	AvgSavingsUSD       *float64 `json:"avg_savings_usd,omitempty"`
	AvgMilesUsed        *float64 `json:"avg_miles_used,omitempty"`
	AvgDeliveryTimeDays *float64 `json:"avg_delivery_time_days,omitempty"`
}

// PrimaryAwardOption returns the option the trip's numbers are based on:
// the pinned option when its id resolves, otherwise the first option in
// list order, otherwise nil. Absence is a valid result, not an error.
func PrimaryAwardOption(trip *models.Trip) *models.AwardOption {
	if trip == nil {
		return nil
	}
	if trip.PinnedOptionID != nil && *trip.PinnedOptionID != "" {
		if opt := trip.FindAwardOption(*trip.PinnedOptionID); opt != nil {
			return opt
		}
	}
	if len(trip.AwardOptions) > 0 {
		return &trip.AwardOptions[0]
	}
	return nil
}

// ComputeTripMetrics derives the four display values for one trip. With
// no primary option every field is unknown.
func ComputeTripMetrics(trip *models.Trip) TripMetrics {
	primary := PrimaryAwardOption(trip)
	if primary == nil {
		return TripMetrics{}
	}

	m := TripMetrics{
		MilesUsed: intPtr(primary.MilesRequired),
		FeesUSD:   floatPtr(primary.FeesUSD),
	}
	if primary.CashValueUSD != nil {
		m.EstimatedCashValue = floatPtr(*primary.CashValueUSD)
		m.EstimatedSavings = floatPtr(*primary.CashValueUSD - primary.FeesUSD)
	}
	return m
}

// ComputeGlobalMetrics aggregates savings, miles and delivery time over
// delivered trips. Trips with unknown values are skipped per metric; an
// average over zero valid values is nil, never zero or NaN.
func ComputeGlobalMetrics(trips []models.Trip, itineraries []models.Itinerary) GlobalMetrics {
	var (
		g            GlobalMetrics
		savingsSum   float64
		savingsCount int
		milesSum     float64
		milesCount   int
		daysSum      float64
		daysCount    int
	)

	for i := range trips {
		trip := &trips[i]
		if !trip.IsDelivered() {
			continue
		}
		g.DeliveredCount++

		m := ComputeTripMetrics(trip)
		if m.EstimatedSavings != nil {
			savingsSum += *m.EstimatedSavings
			savingsCount++
		}
		if m.MilesUsed != nil {
			milesSum += float64(*m.MilesUsed)
			milesCount++
		}

		if days, ok := deliveryDays(trip, itineraries); ok {
			daysSum += days
			daysCount++
		}
	}

	if savingsCount > 0 {
		g.AvgSavingsUSD = floatPtr(savingsSum / float64(savingsCount))
	}
	if milesCount > 0 {
		g.AvgMilesUsed = floatPtr(milesSum / float64(milesCount))
	}
	if daysCount > 0 {
		g.AvgDeliveryTimeDays = floatPtr(daysSum / float64(daysCount))
	}
	return g
}

// deliveryDays is the fractional number of days between the trip going
// draft-ready and its itinerary going out. Start: DraftReadyAt when set,
// else the primary option's creation time. End: SentAt when set, else the
// earliest itinerary generation time. Negative spans are invalid.
func deliveryDays(trip *models.Trip, itineraries []models.Itinerary) (float64, bool) {
	var start time.Time
	switch {
	case trip.DraftReadyAt != nil:
		start = *trip.DraftReadyAt
	default:
		primary := PrimaryAwardOption(trip)
		if primary == nil {
			return 0, false
		}
		start = primary.CreatedAt
	}

	var end time.Time
	if trip.SentAt != nil {
		end = *trip.SentAt
	} else {
		for i := range itineraries {
			if itineraries[i].TripID != trip.ID {
				continue
			}
			if end.IsZero() || itineraries[i].GeneratedAt.Before(end) {
				end = itineraries[i].GeneratedAt
			}
		}
	}
	if end.IsZero() {
		return 0, false
	}

	days := end.Sub(start).Hours() / 24
	if days < 0 {
		return 0, false
	}
	return days, true
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

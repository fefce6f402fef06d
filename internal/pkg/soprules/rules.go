// Package soprules gates trip workflow transitions and itinerary
// generation according to the agency's standard operating procedure.
// Everything here is pure; callers apply a transition only after the
// decision allows it.
package soprules

import (
	"fmt"

	"github.com/TripDeskHQ/TripDesk/app/models"
)

// IntakeThreshold is the minimum number of completed intake checklist
// items before a trip may move into Searching.
const IntakeThreshold = 4

// Decision is an allow/deny result with a human-readable reason on denial.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// CanTransition decides whether trip may move to target status. Only
// three transitions are gated: Searching (intake completeness), Sent
// (itinerary exists) and Closed (must be Booked). Every other
// transition, including backward ones, is allowed so agents can
// override the normal flow.
func CanTransition(trip *models.Trip, target string, itineraries []models.Itinerary) Decision {
	switch target {
	case models.TRIP_STATUS_SEARCHING:
		completed := trip.Intake.CompletedCount()
		if completed < IntakeThreshold {
			return deny(fmt.Sprintf(
				"intake checklist needs at least %d of 7 items before Searching (currently %d)",
				IntakeThreshold, completed))
		}
		return allow()

	case models.TRIP_STATUS_SENT:
		for i := range itineraries {
			if itineraries[i].TripID == trip.ID {
				return allow()
			}
		}
		return deny("generate an itinerary before marking the trip Sent")

	case models.TRIP_STATUS_CLOSED:
		if trip.Status != models.TRIP_STATUS_BOOKED {
			return deny("only Booked trips can be Closed")
		}
		return allow()
	}

	return allow()
}

// CanGenerateItinerary decides whether an itinerary may be generated:
// the trip must be in Draft Ready with exactly one pinned award option
// whose id resolves. The three failure combinations carry distinct
// messages.
func CanGenerateItinerary(trip *models.Trip) Decision {
	statusOK := trip.Status == models.TRIP_STATUS_DRAFT_READY
	pinOK := trip.PinnedOptionResolves()

	switch {
	case !statusOK && !pinOK:
		return deny("trip is not ready for itinerary generation")
	case !statusOK:
		return deny("trip must be in Draft Ready before generating an itinerary")
	case !pinOK:
		return deny("pin exactly one award option before generating an itinerary")
	}

	return allow()
}

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	TRIP_STATUS_INTAKE      = "Intake"
	TRIP_STATUS_SEARCHING   = "Searching"
	TRIP_STATUS_DRAFT_READY = "Draft Ready"
	TRIP_STATUS_SENT        = "Sent"
	TRIP_STATUS_BOOKED      = "Booked"
	TRIP_STATUS_CLOSED      = "Closed"
)

// TripStatuses lists every workflow status in order.
var TripStatuses = []string{
	TRIP_STATUS_INTAKE,
	TRIP_STATUS_SEARCHING,
	TRIP_STATUS_DRAFT_READY,
	TRIP_STATUS_SENT,
	TRIP_STATUS_BOOKED,
	TRIP_STATUS_CLOSED,
}

// IntakeProgress is the seven-item checklist an agent works through
// before a trip may move into Searching.
type IntakeProgress struct {
	TravelerNamesCaptured      bool `json:"traveler_names_captured"`
	PreferredAirportsConfirmed bool `json:"preferred_airports_confirmed"`
	DatesConfirmed             bool `json:"dates_confirmed"`
	CabinConfirmed             bool `json:"cabin_confirmed"`
	PointsReviewed             bool `json:"points_reviewed"`
	DocsChecked                bool `json:"docs_checked"`
	BudgetNotesAdded           bool `json:"budget_notes_added"`
}

// CompletedCount returns how many checklist items are done.
func (p IntakeProgress) CompletedCount() int {
	count := 0
	for _, done := range []bool{
		p.TravelerNamesCaptured,
		p.PreferredAirportsConfirmed,
		p.DatesConfirmed,
		p.CabinConfirmed,
		p.PointsReviewed,
		p.DocsChecked,
		p.BudgetNotesAdded,
	} {
		if done {
			count++
		}
	}
	return count
}

// Trip is one award-travel engagement for a client. Award and hotel
// options are owned by the trip and only mutated through it.
type Trip struct {
	ID              string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClientID        string         `gorm:"type:varchar(36);index" json:"client_id" validate:"required"`
	Title           string         `gorm:"type:varchar(200)" json:"title" validate:"required,min=2,max=200"`
	Status          string         `gorm:"type:varchar(50);default:'Intake'" json:"status" validate:"oneof=Intake Searching 'Draft Ready' Sent Booked Closed"`
	Origin          string         `gorm:"type:varchar(10)" json:"origin" validate:"omitempty,len=3"`
	Destination     string         `gorm:"type:varchar(10)" json:"destination" validate:"omitempty,len=3"`
	DateStart       string         `gorm:"type:varchar(10)" json:"date_start"`
	DateEnd         string         `gorm:"type:varchar(10)" json:"date_end"`
	Passengers      int            `gorm:"default:1" json:"passengers" validate:"gte=1"`
	CabinPref       string         `gorm:"type:varchar(50)" json:"cabin_pref"`
	FlexibilityDays int            `gorm:"default:0" json:"flexibility_days"`
	BudgetUSD       *float64       `json:"budget_usd,omitempty"`
	Notes           string         `gorm:"type:text" json:"notes"`
	Intake          IntakeProgress `gorm:"embedded;embeddedPrefix:intake_" json:"intake"`
	AwardOptions    []AwardOption  `gorm:"foreignKey:TripID" json:"award_options"`
	HotelOptions    []HotelOption  `gorm:"foreignKey:TripID" json:"hotel_options"`
	PinnedOptionID  *string        `gorm:"type:varchar(36)" json:"pinned_option_id,omitempty"`
	DraftReadyAt    *time.Time     `gorm:"type:timestamp;default:null" json:"draft_ready_at,omitempty"`
	SentAt          *time.Time     `gorm:"type:timestamp;default:null" json:"sent_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Trip model
func (Trip) TableName() string {
	return "trips"
}

func (t *Trip) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// IsReadOnly reports whether the trip refuses further mutation.
// Closed trips and everything nested under them are immutable.
func (t *Trip) IsReadOnly() bool {
	return t.Status == TRIP_STATUS_CLOSED
}

// IsDelivered reports whether the trip counts toward delivery metrics.
func (t *Trip) IsDelivered() bool {
	return t.Status == TRIP_STATUS_SENT || t.Status == TRIP_STATUS_BOOKED
}

// FindAwardOption returns the award option with the given id, or nil.
func (t *Trip) FindAwardOption(id string) *AwardOption {
	for i := range t.AwardOptions {
		if t.AwardOptions[i].ID == id {
			return &t.AwardOptions[i]
		}
	}
	return nil
}

// PinnedOptionResolves reports whether the pinned id points at an option
// currently in the trip's own list.
func (t *Trip) PinnedOptionResolves() bool {
	if t.PinnedOptionID == nil || *t.PinnedOptionID == "" {
		return false
	}
	return t.FindAwardOption(*t.PinnedOptionID) != nil
}

// IsValidTripStatus reports whether s is one of the known workflow statuses.
func IsValidTripStatus(s string) bool {
	for _, known := range TripStatuses {
		if s == known {
			return true
		}
	}
	return false
}

package models

import (
	"time"
)

// Itinerary is the generated client-facing artifact for a trip. It is
// only created through the generation operation; afterwards the share
// token and notes are the only fields that change.
type Itinerary struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TripID          string    `gorm:"type:varchar(36);index" json:"trip_id"`
	OptionAID       string    `gorm:"type:varchar(36)" json:"option_a_id"`
	BackupOptionIDs []string  `gorm:"serializer:json" json:"backup_option_ids"`
	ShareToken      string    `gorm:"type:varchar(64);index" json:"share_token"`
	Notes           string    `gorm:"type:text" json:"notes"`
	GeneratedAt     time.Time `gorm:"autoCreateTime" json:"generated_at"`
}

// TableName specifies the table name for the Itinerary model
func (Itinerary) TableName() string {
	return "itineraries"
}

// HasShareToken reports whether a share link has been issued.
func (i *Itinerary) HasShareToken() bool {
	return i.ShareToken != ""
}

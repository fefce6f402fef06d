package models

import (
	"time"
)

const (
	COMM_CHANNEL_EMAIL = "email"
	COMM_CHANNEL_PHONE = "phone"
	COMM_CHANNEL_SMS   = "sms"
	COMM_CHANNEL_OTHER = "other"
)

// CommunicationEntry logs one touchpoint with a client, optionally tied
// to a specific trip.
type CommunicationEntry struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClientID   string    `gorm:"type:varchar(36);index" json:"client_id"`
	TripID     *string   `gorm:"type:varchar(36);index" json:"trip_id,omitempty"`
	Channel    string    `gorm:"type:varchar(20)" json:"channel"`
	Summary    string    `gorm:"type:text" json:"summary"`
	OccurredAt time.Time `json:"occurred_at"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the CommunicationEntry model
func (CommunicationEntry) TableName() string {
	return "communication_entries"
}

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	TRANSFER_TIME_INSTANT  = "Instant"
	TRANSFER_TIME_1_2_DAYS = "1–2 days"
	TRANSFER_TIME_UNKNOWN  = "Unknown"
)

// AwardOption is one candidate redemption found during the search phase.
type AwardOption struct {
	ID               string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TripID           string    `gorm:"type:varchar(36);index" json:"trip_id"`
	Program          string    `gorm:"type:varchar(150)" json:"program" validate:"required,max=150"`
	Route            string    `gorm:"type:varchar(100)" json:"route" validate:"max=100"`
	MilesRequired    int       `json:"miles_required" validate:"gt=0"`
	FeesUSD          float64   `json:"fees_usd" validate:"gte=0"`
	CashValueUSD     *float64  `json:"cash_value_usd,omitempty"`
	TransferRequired bool      `gorm:"type:tinyint(1);default:0" json:"transfer_required"`
	TransferTime     string    `gorm:"type:varchar(20);default:'Unknown'" json:"transfer_time" validate:"omitempty,oneof=Instant '1–2 days' Unknown"`
	Badges           []string  `gorm:"serializer:json" json:"badges"`
	Position         int       `gorm:"default:0" json:"position"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the AwardOption model
func (AwardOption) TableName() string {
	return "award_options"
}

func (o *AwardOption) Validate() error {
	v := validator.New()

	return v.Struct(o)
}

// IsValidTransferTime reports whether s is a known transfer-time category.
func IsValidTransferTime(s string) bool {
	switch s {
	case TRANSFER_TIME_INSTANT, TRANSFER_TIME_1_2_DAYS, TRANSFER_TIME_UNKNOWN:
		return true
	}
	return false
}

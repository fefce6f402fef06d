package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// HotelOption is a candidate points hotel stay attached to a trip.
type HotelOption struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	TripID          string    `gorm:"type:varchar(36);index" json:"trip_id"`
	Name            string    `gorm:"type:varchar(200)" json:"name" validate:"required,max=200"`
	PointsPerNight  int       `json:"points_per_night" validate:"gte=0"`
	CashPerNightUSD float64   `json:"cash_per_night_usd" validate:"gte=0"`
	Notes           string    `gorm:"type:text" json:"notes"`
	Position        int       `gorm:"default:0" json:"position"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the HotelOption model
func (HotelOption) TableName() string {
	return "hotel_options"
}

func (h *HotelOption) Validate() error {
	v := validator.New()

	return v.Struct(h)
}

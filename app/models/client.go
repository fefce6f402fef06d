package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const (
	CLIENT_STATUS_LEAD      = "Lead"
	CLIENT_STATUS_ACTIVE    = "Active"
	CLIENT_STATUS_COMPLETED = "Completed"
)

// LoyaltyBalances tracks point balances across the programs the agency
// works with most. Programs outside the fixed set go into Other.
type LoyaltyBalances struct {
	AmexMR          int            `gorm:"column:amex_mr;default:0" json:"amex_mr"`
	ChaseUR         int            `gorm:"column:chase_ur;default:0" json:"chase_ur"`
	CitiTYP         int            `gorm:"column:citi_typ;default:0" json:"citi_typ"`
	CapitalOneMiles int            `gorm:"column:capital_one_miles;default:0" json:"capital_one_miles"`
	Other           map[string]int `gorm:"serializer:json" json:"other"`
}

// TravelPreferences captures how a client likes to fly.
type TravelPreferences struct {
	HomeAirports    []string `gorm:"serializer:json" json:"home_airports"`
	CabinClass      string   `gorm:"type:varchar(50)" json:"cabin_class"`
	FlexibilityDays int      `gorm:"default:0" json:"flexibility_days"`
	Notes           string   `gorm:"type:text" json:"notes"`
}

// Client is an agency customer. Clients are never deleted in the portal;
// updates replace the full record.
type Client struct {
	ID          string            `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string            `gorm:"type:varchar(150)" json:"name" validate:"required,min=2,max=150"`
	Email       string            `gorm:"type:varchar(200);index" json:"email" validate:"omitempty,email,max=200"`
	Phone       string            `gorm:"type:varchar(50)" json:"phone" validate:"max=50"`
	Status      string            `gorm:"type:varchar(50);default:'Lead'" json:"status" validate:"oneof=Lead Active Completed"`
	Preferences TravelPreferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	Loyalty     LoyaltyBalances   `gorm:"embedded" json:"loyalty"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

func (c *Client) Validate() error {
	v := validator.New()

	return v.Struct(c)
}

// TotalPoints sums all known loyalty balances including the open-ended set.
func (l LoyaltyBalances) TotalPoints() int {
	total := l.AmexMR + l.ChaseUR + l.CitiTYP + l.CapitalOneMiles
	for _, v := range l.Other {
		total += v
	}
	return total
}

// BeforeSave keeps the JSON-serialized maps non-nil so snapshots round-trip.
func (c *Client) BeforeSave(tx *gorm.DB) error {
	if c.Loyalty.Other == nil {
		c.Loyalty.Other = map[string]int{}
	}
	if c.Preferences.HomeAirports == nil {
		c.Preferences.HomeAirports = []string{}
	}
	return nil
}

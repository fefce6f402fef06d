package models

import (
	"time"
)

// AuditEntry records one committed portal mutation for traceability.
type AuditEntry struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Actor     string    `gorm:"type:varchar(150)" json:"actor"`
	Action    string    `gorm:"type:varchar(100)" json:"action"`
	Entity    string    `gorm:"type:varchar(50)" json:"entity"`
	EntityID  string    `gorm:"type:varchar(36);index" json:"entity_id"`
	Detail    string    `gorm:"type:text" json:"detail"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the AuditEntry model
func (AuditEntry) TableName() string {
	return "audit_entries"
}

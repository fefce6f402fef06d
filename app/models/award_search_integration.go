package models

// AwardSearchIntegration is a configured deep link into a third-party
// award search tool. URLTemplate contains {variable} placeholders filled
// from trip fields (see internal/pkg/searchurl).
type AwardSearchIntegration struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string `gorm:"type:varchar(100)" json:"name"`
	URLTemplate string `gorm:"type:varchar(500)" json:"url_template"`
	Enabled     bool   `gorm:"type:tinyint(1);default:1" json:"enabled"`
	Position    int    `gorm:"default:0" json:"position"`
}

// TableName specifies the table name for the AwardSearchIntegration model
func (AwardSearchIntegration) TableName() string {
	return "award_search_integrations"
}

package models

import (
	"time"
)

// KnowledgeArticle is read-only reference content for agents (program
// sweet spots, transfer partner notes, SOP write-ups). The body is
// lightweight markup served as-is; rendering happens client-side.
type KnowledgeArticle struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title     string    `gorm:"type:varchar(255)" json:"title"`
	Category  string    `gorm:"type:varchar(100);index" json:"category"`
	Body      string    `gorm:"type:text" json:"body"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the KnowledgeArticle model
func (KnowledgeArticle) TableName() string {
	return "knowledge_articles"
}

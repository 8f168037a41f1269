package models

import (
	"time"

	"gorm.io/gorm"
)

// SearchTerm tracks how often a search term has been submitted and how many
// results it produced. Terms are stored lower-cased and trimmed.
type SearchTerm struct {
	gorm.Model
	Term         string    `gorm:"uniqueIndex;not null" json:"term"`
	Count        int       `gorm:"not null;default:1" json:"count"`
	TotalResults int       `gorm:"not null;default:0" json:"total_results"`
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `gorm:"index" json:"last_seen"`
}

// TableName specifies the table name for SearchTerm
func (SearchTerm) TableName() string {
	return "search_terms"
}

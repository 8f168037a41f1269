package models

import (
	"gorm.io/gorm"
)

// Game represents a catalog entry for a single game
type Game struct {
	gorm.Model
	Name        string  `gorm:"not null;index" json:"name"`
	Slug        string  `gorm:"uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	ReleaseDate string  `gorm:"index" json:"release_date"` // YYYY-MM-DD, empty when unannounced
	Released    bool    `gorm:"index;default:false" json:"released"`
	Featured    bool    `gorm:"index;default:false" json:"featured"`
	CoverURL    string  `json:"cover_url"`
	Genres      []Genre `gorm:"many2many:game_genres;" json:"genres,omitempty"`
}

// TableName specifies the table name for Game
func (Game) TableName() string {
	return "games"
}

package models

import (
	"gorm.io/gorm"
)

// Genre is a catalog category games can belong to
type Genre struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
}

// TableName specifies the table name for Genre
func (Genre) TableName() string {
	return "genres"
}

package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Image       string `json:"image"`
	Description string `json:"description"`

	// deleting a category removes its products
	Products []Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

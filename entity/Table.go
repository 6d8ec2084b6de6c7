package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber int `gorm:"uniqueIndex" json:"tableNumber"`
	Capacity    int `json:"capacity"`
}

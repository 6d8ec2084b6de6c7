package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingPending   = "Pending"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

type Booking struct {
	gorm.Model
	Reference     string `gorm:"uniqueIndex" json:"reference"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	// table stays optional; nulled when the table is removed
	TableID *uint  `json:"tableId,omitempty"`
	Table   *Table `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Date   time.Time `json:"date"`
	Time   string    `json:"time"`
	Guests int       `json:"guests"`
	Status string    `gorm:"default:Pending" json:"status"`
}

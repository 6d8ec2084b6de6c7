package entity

import (
	"gorm.io/gorm"
)

// Order doubles as the shopping cart while Complete is false. Each
// customer has at most one open order at a time.
type Order struct {
	gorm.Model
	CustomerID uint     `json:"customerId"`
	Customer   Customer `json:"-"`

	Complete bool `gorm:"default:false;index" json:"complete"`

	RazorpayOrderID   string `gorm:"index" json:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string `json:"razorpayPaymentId,omitempty"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

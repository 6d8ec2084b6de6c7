package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Allowed values for Product.OfferTag.
var OfferTags = []string{"new", "bestseller", "spicy", "discount", "limited"}

type Product struct {
	gorm.Model
	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	Name        string          `json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`

	OfferTag  string `json:"offerTag,omitempty"`
	OfferText string `json:"offerText,omitempty"`

	IsHomepageOffer      bool   `json:"isHomepageOffer"`
	OfferTitle           string `json:"offerTitle,omitempty"`
	OfferDiscountPercent int    `json:"offerDiscountPercent"`

	OrderItems []OrderItem `json:"-"`
}

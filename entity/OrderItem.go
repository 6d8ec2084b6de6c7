package entity

import (
	"gorm.io/gorm"
)

// One row per (order, product); quantity changes mutate the row and a
// quantity of zero removes it. Rows are deleted for real (Unscoped) so
// the composite index never collides with a soft-deleted leftover.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:idx_order_product" json:"orderId"`
	Order   Order `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_order_product" json:"productId"`
	Product   Product `json:"product"`

	Quantity int `gorm:"default:0" json:"quantity"`
}

package repository

import (
	"errors"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// GetOrCreateOpenOrder returns the customer's single incomplete order,
// creating an empty one if none exists. Run inside a transaction so two
// concurrent requests cannot both create one.
func (r *OrderRepository) GetOrCreateOpenOrder(tx *gorm.DB, customerID uint) (*entity.Order, error) {
	var o entity.Order
	err := tx.Where("customer_id = ? AND complete = ?", customerID, false).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		o = entity.Order{CustomerID: customerID}
		if err := tx.Create(&o).Error; err != nil {
			return nil, err
		}
		return &o, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) OpenOrderWithItems(customerID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("customer_id = ? AND complete = ?", customerID, false).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Product").
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Order{CustomerID: customerID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrCreateItem(tx *gorm.DB, orderID, productID uint) (*entity.OrderItem, error) {
	var it entity.OrderItem
	err := tx.Where("order_id = ? AND product_id = ?", orderID, productID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		it = entity.OrderItem{OrderID: orderID, ProductID: productID, Quantity: 0}
		if err := tx.Create(&it).Error; err != nil {
			return nil, err
		}
		return &it, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *OrderRepository) SaveItem(tx *gorm.DB, it *entity.OrderItem) error {
	return tx.Save(it).Error
}

// DeleteItem removes the row for real; a soft-deleted leftover would
// collide with the (order, product) unique index on re-add.
func (r *OrderRepository) DeleteItem(tx *gorm.DB, it *entity.OrderItem) error {
	return tx.Unscoped().Delete(it).Error
}

func (r *OrderRepository) SetGatewayOrder(orderID uint, gatewayOrderID string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("razorpay_order_id", gatewayOrderID).Error
}

func (r *OrderRepository) FindByGatewayOrderID(gatewayOrderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("razorpay_order_id = ?", gatewayOrderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) MarkComplete(orderID uint, paymentID string) error {
	return r.DB.Model(&entity.Order{}).Where("id = ?", orderID).
		Updates(map[string]any{"complete": true, "razorpay_payment_id": paymentID}).Error
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

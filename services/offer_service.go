package services

import (
	"context"
	"errors"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

type OfferService struct {
	DB           *gorm.DB
	OrderRepo    *repository.OrderRepository
	CatalogRepo  *repository.CatalogRepository
	CustomerRepo *repository.CustomerRepository
	Offers       *repository.OfferStore
}

func NewOfferService(
	db *gorm.DB,
	or *repository.OrderRepository,
	catr *repository.CatalogRepository,
	cr *repository.CustomerRepository,
	offers *repository.OfferStore,
) *OfferService {
	return &OfferService{DB: db, OrderRepo: or, CatalogRepo: catr, CustomerRepo: cr, Offers: offers}
}

// DiscountedPrice is the one rounding rule for offers; apply and
// checkout both go through it.
func DiscountedPrice(price decimal.Decimal, discountPercent int) decimal.Decimal {
	d := decimal.NewFromInt(int64(discountPercent))
	return price.Sub(price.Mul(d).Div(hundred)).Round(2)
}

// Apply activates a percentage offer on a product for the user's
// session. The product is added to the open order (one more unit) and
// the overlay replaces any previously active offer.
func (s *OfferService) Apply(ctx context.Context, userID, productID uint, discountPercent int) (*repository.OfferOverlay, error) {
	if discountPercent < 0 || discountPercent > 100 {
		return nil, ErrInvalidDiscount
	}

	product, err := s.CatalogRepo.FindProductByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	customer, err := s.CustomerRepo.GetOrCreateForUser(userID)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.OrderRepo.GetOrCreateOpenOrder(tx, customer.ID)
		if err != nil {
			return err
		}
		item, err := s.OrderRepo.GetOrCreateItem(tx, order.ID, productID)
		if err != nil {
			return err
		}
		item.Quantity++
		return s.OrderRepo.SaveItem(tx, item)
	})
	if err != nil {
		return nil, err
	}

	overlay := &repository.OfferOverlay{
		ProductID:       productID,
		DiscountPercent: discountPercent,
		Price:           DiscountedPrice(product.Price, discountPercent),
	}
	if err := s.Offers.Set(ctx, customer.ID, overlay); err != nil {
		return nil, err
	}
	return overlay, nil
}

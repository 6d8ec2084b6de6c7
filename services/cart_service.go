package services

import (
	"context"
	"errors"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB           *gorm.DB
	OrderRepo    *repository.OrderRepository
	CatalogRepo  *repository.CatalogRepository
	CustomerRepo *repository.CustomerRepository
	Offers       *repository.OfferStore
}

func NewCartService(
	db *gorm.DB,
	or *repository.OrderRepository,
	catr *repository.CatalogRepository,
	cr *repository.CustomerRepository,
	offers *repository.OfferStore,
) *CartService {
	return &CartService{DB: db, OrderRepo: or, CatalogRepo: catr, CustomerRepo: cr, Offers: offers}
}

type CartLine struct {
	ItemID    uint            `json:"itemId"`
	ProductID uint            `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`

	DiscountPercent int              `json:"discountPercent,omitempty"`
	DiscountedPrice *decimal.Decimal `json:"discountedPrice,omitempty"`
}

type CartView struct {
	OrderID   uint            `json:"orderId"`
	Lines     []CartLine      `json:"lines"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
}

// View resolves the open order and overlays the active offer, if any.
// This is the single place cart totals are computed; checkout reuses it
// so the two can never disagree.
func (s *CartService) View(ctx context.Context, userID uint) (*CartView, error) {
	customer, err := s.CustomerRepo.GetOrCreateForUser(userID)
	if err != nil {
		return nil, err
	}
	order, err := s.OrderRepo.OpenOrderWithItems(customer.ID)
	if err != nil {
		return nil, err
	}
	overlay, err := s.Offers.Get(ctx, customer.ID)
	if err != nil {
		return nil, err
	}
	return buildCartView(order, overlay), nil
}

// UpdateItem applies a single +1/-1 quantity delta for the product in
// the user's open order. A quantity reaching zero removes the line.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID uint, action string) (*CartView, error) {
	var delta int
	switch action {
	case "add":
		delta = 1
	case "remove":
		delta = -1
	default:
		return nil, ErrInvalidAction
	}

	if _, err := s.CatalogRepo.FindProductByID(productID); err != nil {
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
		item.Quantity += delta
		if item.Quantity <= 0 {
			return s.OrderRepo.DeleteItem(tx, item)
		}
		return s.OrderRepo.SaveItem(tx, item)
	})
	if err != nil {
		return nil, err
	}

	return s.View(ctx, userID)
}

func buildCartView(order *entity.Order, overlay *repository.OfferOverlay) *CartView {
	view := &CartView{
		OrderID: order.ID,
		Lines:   make([]CartLine, 0, len(order.Items)),
		Total:   decimal.NewFromInt(0),
	}

	for _, it := range order.Items {
		line := CartLine{
			ItemID:    it.ID,
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Image:     it.Product.Image,
			Quantity:  it.Quantity,
			UnitPrice: it.Product.Price,
		}
		qty := decimal.NewFromInt(int64(it.Quantity))

		if overlay != nil && overlay.ProductID == it.ProductID {
			price := overlay.Price
			line.DiscountPercent = overlay.DiscountPercent
			line.DiscountedPrice = &price
			line.LineTotal = price.Mul(qty).Round(2)
		} else {
			line.LineTotal = it.Product.Price.Mul(qty).Round(2)
		}

		view.ItemCount += it.Quantity
		view.Total = view.Total.Add(line.LineTotal)
		view.Lines = append(view.Lines, line)
	}

	return view
}

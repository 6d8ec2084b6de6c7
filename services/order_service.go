package services

import (
	"time"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/entity"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	OrderRepo    *repository.OrderRepository
	CustomerRepo *repository.CustomerRepository
}

func NewOrderService(or *repository.OrderRepository, cr *repository.CustomerRepository) *OrderService {
	return &OrderService{OrderRepo: or, CustomerRepo: cr}
}

type OrderSummary struct {
	ID        uint            `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Complete  bool            `json:"complete"`
	ItemCount int             `json:"itemCount"`
	Total     decimal.Decimal `json:"total"`
	Items     []CartLine      `json:"items"`
}

// History lists the customer's orders, most recent first, with totals
// recomputed from line items.
func (s *OrderService) History(userID uint) ([]OrderSummary, error) {
	customer, err := s.CustomerRepo.GetOrCreateForUser(userID)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.ListByCustomer(customer.ID)
	if err != nil {
		return nil, err
	}

	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, summarize(&o))
	}
	return out, nil
}

func summarize(o *entity.Order) OrderSummary {
	sum := OrderSummary{
		ID:        o.ID,
		CreatedAt: o.CreatedAt,
		Complete:  o.Complete,
		Total:     decimal.NewFromInt(0),
		Items:     make([]CartLine, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		qty := decimal.NewFromInt(int64(it.Quantity))
		lineTotal := it.Product.Price.Mul(qty).Round(2)
		sum.Items = append(sum.Items, CartLine{
			ItemID:    it.ID,
			ProductID: it.ProductID,
			Name:      it.Product.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Product.Price,
			LineTotal: lineTotal,
		})
		sum.ItemCount += it.Quantity
		sum.Total = sum.Total.Add(lineTotal)
	}
	return sum
}

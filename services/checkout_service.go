package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const Currency = "INR"

// Gateway is the payment processor contract. The production
// implementation is pkg/razorpay.Client.
type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency string) (string, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

type CheckoutService struct {
	DB           *gorm.DB
	Cart         *CartService
	OrderRepo    *repository.OrderRepository
	CustomerRepo *repository.CustomerRepository
	Offers       *repository.OfferStore
	Gateway      Gateway

	KeyID       string
	CallbackURL string
}

func NewCheckoutService(
	db *gorm.DB,
	cart *CartService,
	or *repository.OrderRepository,
	cr *repository.CustomerRepository,
	offers *repository.OfferStore,
	gw Gateway,
	keyID, callbackURL string,
) *CheckoutService {
	return &CheckoutService{
		DB: db, Cart: cart, OrderRepo: or, CustomerRepo: cr, Offers: offers,
		Gateway: gw, KeyID: keyID, CallbackURL: callbackURL,
	}
}

// CheckoutContext carries what the client needs to open the gateway's
// payment flow.
type CheckoutContext struct {
	OrderID         uint            `json:"orderId"`
	Lines           []CartLine      `json:"lines"`
	CartTotal       decimal.Decimal `json:"cartTotal"`
	RazorpayOrderID string          `json:"razorpayOrderId"`
	RazorpayKeyID   string          `json:"razorpayKeyId"`
	AmountMinor     int64           `json:"amount"`
	Currency        string          `json:"currency"`
	CallbackURL     string          `json:"callbackUrl"`
}

// Begin totals the cart (offer overlay included), opens a gateway order
// for the amount in minor units and records the gateway order id on the
// local order before the user ever reaches the payment form.
func (s *CheckoutService) Begin(ctx context.Context, userID uint) (*CheckoutContext, error) {
	view, err := s.Cart.View(ctx, userID)
	if err != nil {
		return nil, err
	}
	if view.Total.IsZero() {
		return nil, ErrEmptyCart
	}

	amountMinor := view.Total.Shift(2).Round(0).IntPart()

	gatewayOrderID, err := s.Gateway.CreateOrder(ctx, amountMinor, Currency)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	if err := s.OrderRepo.SetGatewayOrder(view.OrderID, gatewayOrderID); err != nil {
		return nil, err
	}

	return &CheckoutContext{
		OrderID:         view.OrderID,
		Lines:           view.Lines,
		CartTotal:       view.Total,
		RazorpayOrderID: gatewayOrderID,
		RazorpayKeyID:   s.KeyID,
		AmountMinor:     amountMinor,
		Currency:        Currency,
		CallbackURL:     s.CallbackURL,
	}, nil
}

// Confirm finalizes an order from the gateway's post-payment callback.
// Safe to call more than once for the same gateway order id: an
// already-complete order is left as is.
func (s *CheckoutService) Confirm(ctx context.Context, gatewayOrderID, paymentID, signature string) error {
	if !s.Gateway.VerifySignature(gatewayOrderID, paymentID, signature) {
		return ErrInvalidSignature
	}

	order, err := s.OrderRepo.FindByGatewayOrderID(gatewayOrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if !order.Complete {
		if err := s.OrderRepo.MarkComplete(order.ID, paymentID); err != nil {
			return err
		}
	}

	// the discount is single-use per checkout
	return s.Offers.Clear(ctx, order.CustomerID)
}

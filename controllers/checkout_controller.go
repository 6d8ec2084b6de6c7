package controllers

import (
	"errors"
	"net/http"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/resp"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/utils"
	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// GET /checkout
func (h *CheckoutController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx, err := h.Svc.Begin(c.Request.Context(), uid)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.Fail(c, http.StatusBadRequest, "Your cart is empty", "/cart")
		case errors.Is(err, services.ErrPaymentGateway):
			resp.Fail(c, http.StatusBadGateway, err.Error(), "/cart")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, ctx)
}

// POST /payment/callback receives the form-encoded fields posted by the
// gateway's checkout widget after the user pays.
func (h *CheckoutController) PaymentCallback(c *gin.Context) {
	paymentID := c.PostForm("razorpay_payment_id")
	gatewayOrderID := c.PostForm("razorpay_order_id")
	signature := c.PostForm("razorpay_signature")
	if paymentID == "" || gatewayOrderID == "" || signature == "" {
		resp.Fail(c, http.StatusBadRequest, "missing payment fields", "/cart")
		return
	}

	err := h.Svc.Confirm(c.Request.Context(), gatewayOrderID, paymentID, signature)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidSignature):
			resp.Fail(c, http.StatusBadRequest, "Payment verification failed", "/cart")
		case errors.Is(err, services.ErrOrderNotFound):
			resp.Fail(c, http.StatusNotFound, "Order not found", "/cart")
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"message":  "Payment successful! Your order has been placed.",
		"redirect": "/orders",
	})
}

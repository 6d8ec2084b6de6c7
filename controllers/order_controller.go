package controllers

import (
	"net/http"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /orders
func (h *OrderController) History(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	orders, err := h.Svc.History(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

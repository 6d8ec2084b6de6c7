package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/utils"
	"github.com/gin-gonic/gin"
)

type OfferController struct{ Svc *services.OfferService }

func NewOfferController(s *services.OfferService) *OfferController { return &OfferController{Svc: s} }

// GET /apply-offer/:productId/:discount
func (h *OfferController) Apply(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	discount, err := strconv.Atoi(c.Param("discount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid discount"})
		return
	}

	overlay, err := h.Svc.Apply(c.Request.Context(), uid, uint(productID), discount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDiscount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"offer":    overlay,
		"message":  fmt.Sprintf("%d%% offer applied successfully", discount),
		"redirect": "/cart",
	})
}

package controllers

import (
	"net/http"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/gin-gonic/gin"
)

type MenuController struct{ Svc *services.CatalogService }

func NewMenuController(s *services.CatalogService) *MenuController { return &MenuController{Svc: s} }

// GET /home
func (h *MenuController) Home(c *gin.Context) {
	offers, err := h.Svc.HomepageOffers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"offerProducts": offers})
}

// GET /menu?category=&q=
func (h *MenuController) Menu(c *gin.Context) {
	page, err := h.Svc.Menu(c.Query("category"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": cats})
}

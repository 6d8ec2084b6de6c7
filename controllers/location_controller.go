package controllers

import (
	"net/http"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/nominatim"
	"github.com/gin-gonic/gin"
)

type LocationController struct{ Geo *nominatim.Client }

func NewLocationController(geo *nominatim.Client) *LocationController {
	return &LocationController{Geo: geo}
}

// GET /location?lat=&lon=
func (h *LocationController) Get(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing coordinates"})
		return
	}

	addr, err := h.Geo.Reverse(c.Request.Context(), lat, lon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, addr)
}

package controllers

import (
	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/resp"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/gin-gonic/gin"
)

type DashboardController struct{ Svc *services.ReportService }

func NewDashboardController(s *services.ReportService) *DashboardController {
	return &DashboardController{Svc: s}
}

// GET /staff/dashboard
func (h *DashboardController) Dashboard(c *gin.Context) {
	stats, err := h.Svc.Dashboard()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, stats)
}

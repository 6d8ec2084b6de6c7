package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/resp"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/gin-gonic/gin"
)

type BookingController struct{ Svc *services.BookingService }

func NewBookingController(s *services.BookingService) *BookingController {
	return &BookingController{Svc: s}
}

// POST /bookings (public: the booking form asks for name and phone)
func (h *BookingController) Create(c *gin.Context) {
	var in services.BookingIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b, err := h.Svc.Create(&in)
	if err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, b)
}

// GET /staff/bookings
func (h *BookingController) List(c *gin.Context) {
	bookings, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, bookings)
}

// PATCH /staff/bookings/:id  {status}
func (h *BookingController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid booking id")
		return
	}
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateStatus(uint(id), body.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /staff/tables
func (h *BookingController) Tables(c *gin.Context) {
	tables, err := h.Svc.Tables()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, tables)
}

// POST /staff/tables
func (h *BookingController) CreateTable(c *gin.Context) {
	var in services.TableIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t, err := h.Svc.CreateTable(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, t)
}

// DELETE /staff/tables/:id
func (h *BookingController) DeleteTable(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid table id")
		return
	}
	if err := h.Svc.DeleteTable(uint(id)); err != nil {
		if errors.Is(err, services.ErrTableNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

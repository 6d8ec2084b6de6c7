package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/pkg/resp"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/gin-gonic/gin"
)

// Staff-side category and product management.
type AdminCatalogController struct{ Svc *services.CatalogService }

func NewAdminCatalogController(s *services.CatalogService) *AdminCatalogController {
	return &AdminCatalogController{Svc: s}
}

// POST /staff/categories
func (h *AdminCatalogController) CreateCategory(c *gin.Context) {
	var in services.CategoryIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cat, err := h.Svc.CreateCategory(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, cat)
}

// PATCH /staff/categories/:id
func (h *AdminCatalogController) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateCategory(uint(id), updates); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /staff/categories/:id
func (h *AdminCatalogController) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid category id")
		return
	}
	if err := h.Svc.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /staff/products
func (h *AdminCatalogController) CreateProduct(c *gin.Context) {
	var in services.ProductIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	p, err := h.Svc.CreateProduct(&in)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, p)
}

// PATCH /staff/products/:id
func (h *AdminCatalogController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateProduct(uint(id), updates); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// DELETE /staff/products/:id
func (h *AdminCatalogController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid product id")
		return
	}
	if err := h.Svc.DeleteProduct(uint(id)); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package controllers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/arjunkrishnadev/Hotel-Ganaraj/services"
	"github.com/arjunkrishnadev/Hotel-Ganaraj/utils"
	"github.com/gin-gonic/gin"
)

type ProfileController struct{ Svc *services.ProfileService }

func NewProfileController(s *services.ProfileService) *ProfileController {
	return &ProfileController{Svc: s}
}

// GET /profile
func (h *ProfileController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	view, err := h.Svc.Get(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}

// PATCH /profile
func (h *ProfileController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var in services.UpdateProfileIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.Svc.Update(uid, &in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": view})
}

type avatarReq struct {
	ContentType string `json:"contentType" binding:"required"`
	DataBase64  string `json:"dataBase64" binding:"required"`
}

// POST /profile/avatar
func (h *ProfileController) UploadAvatar(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req avatarReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content type must be image/*"})
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.DataBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid base64 data"})
		return
	}

	if err := h.Svc.UploadAvatar(uid, data, req.ContentType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

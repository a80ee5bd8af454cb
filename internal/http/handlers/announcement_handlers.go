package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/HirushaDilshanOfficial/PETVERSES-sub000/domain"
)

// AnnouncementHandlers handles platform announcement HTTP requests
type AnnouncementHandlers struct {
	svc domain.AnnouncementService
}

// NewAnnouncementHandlers creates new announcement handlers
func NewAnnouncementHandlers(svc domain.AnnouncementService) *AnnouncementHandlers {
	return &AnnouncementHandlers{svc: svc}
}

// AnnouncementRequest represents a publish request
type AnnouncementRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

// Publish handles announcement creation (admin only)
func (h *AnnouncementHandlers) Publish(c *gin.Context) {
	var req AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminIDStr, _ := c.Get("user_id")
	adminID, err := strconv.ParseUint(adminIDStr.(string), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	a, err := h.svc.Publish(c.Request.Context(), uint(adminID), req.Title, req.Body)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyAnnouncementTitle) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish announcement"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"id":         a.ID,
			"title":      a.Title,
			"body":       a.Body,
			"created_at": a.CreatedAt,
		},
	})
}

// List handles announcement listing
func (h *AnnouncementHandlers) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list announcements"})
		return
	}

	out := make([]gin.H, 0, len(items))
	for _, a := range items {
		out = append(out, gin.H{
			"id":         a.ID,
			"title":      a.Title,
			"body":       a.Body,
			"created_at": a.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

// Remove handles announcement deletion (admin only)
func (h *AnnouncementHandlers) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	if err := h.svc.Remove(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, domain.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement"})
		return
	}

	c.Status(http.StatusNoContent)
}

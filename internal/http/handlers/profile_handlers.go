package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/beautyauthsvc/domain"
	"github.com/you/beautyauthsvc/internal/http/middleware"
)

// ProfileHandlers handles beauty profile HTTP requests. The request body
// for create and update is a sparse field map: keys present mean "set
// this", keys absent mean "leave alone".
type ProfileHandlers struct {
	profileSvc domain.ProfileService
}

// NewProfileHandlers creates new profile handlers
func NewProfileHandlers(profileSvc domain.ProfileService) *ProfileHandlers {
	return &ProfileHandlers{profileSvc: profileSvc}
}

// Get returns the authenticated user's beauty profile
func (h *ProfileHandlers) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	profile, err := h.profileSvc.Get(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Beauty profile not found"})
			return
		}
		serviceUnavailable(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"profile": profile,
		},
	})
}

// Create creates the authenticated user's beauty profile
func (h *ProfileHandlers) Create(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileSvc.Create(c.Request.Context(), userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Beauty profile already exists. Use PUT to update."})
		case errors.Is(err, domain.ErrMissingProfileFields), errors.Is(err, domain.ErrInvalidProfileField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			serviceUnavailable(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data": gin.H{
			"message": "Beauty profile created successfully",
			"profile": profile,
		},
	})
}

// Update partially updates the authenticated user's beauty profile
func (h *ProfileHandlers) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileSvc.Update(c.Request.Context(), userID, fields)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Beauty profile not found"})
		case errors.Is(err, domain.ErrNoFieldsToUpdate), errors.Is(err, domain.ErrInvalidProfileField):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			serviceUnavailable(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"message": "Profile updated successfully",
			"profile": profile,
		},
	})
}

package handlers

import (
	"errors"
	"net/http"

	"nutribook/services/profile"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler exposes the user profile adapter over HTTP.
type ProfileHandler struct {
	Service profile.ProfileService
}

func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := userIDFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	prof, err := h.Service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to load profile", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

// UpdateProfileHandler handles PUT /api/profile with a partial field map;
// only the supplied fields are merged into the stored record.
func (h *ProfileHandler) UpdateProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := userIDFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload"})
		return
	}

	prof, err := h.Service.UpdateProfile(c.Request.Context(), userID, fields)
	if err != nil {
		if errors.Is(err, profile.ErrNoUpdatableFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("failed to update profile", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, prof)
}

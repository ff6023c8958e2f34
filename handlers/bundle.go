package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Catalog endpoints.
	ListNutritionistsHandler gin.HandlerFunc
	GetNutritionistHandler   gin.HandlerFunc

	// Appointment endpoints.
	BookAppointmentHandler    gin.HandlerFunc
	ListAppointmentsHandler   gin.HandlerFunc
	StreamAppointmentsHandler gin.HandlerFunc
	CancelAppointmentHandler  gin.HandlerFunc

	// Profile endpoints.
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc
}

// userIDFromContext pulls the authenticated user id set by the auth
// middleware. An empty second value means the request is unauthenticated.
func userIDFromContext(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
}

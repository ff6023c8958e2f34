package handlers

import (
	"errors"
	"net/http"

	"nutribook/models"
	"nutribook/services/booking"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookAppointmentHandler handles POST /api/appointments.
func (h *BookingHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := userIDFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking payload"})
		return
	}

	appt, err := h.Service.BookAppointment(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrUnknownNutritionist):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, booking.ErrIncompleteRequest),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrUnavailableDay),
			errors.Is(err, booking.ErrInvalidTimeSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("booking failed", zap.String("userId", userID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to book appointment. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, appt)
}

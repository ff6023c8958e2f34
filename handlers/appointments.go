package handlers

import (
	"errors"
	"io"
	"net/http"

	"nutribook/services/appointments"
	"nutribook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentsHandler exposes the classified appointment views and
// cancellation over HTTP.
type AppointmentsHandler struct {
	Service appointments.AppointmentService
}

func NewAppointmentsHandler(svc appointments.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{Service: svc}
}

// ListAppointmentsHandler handles GET /api/appointments. It returns a
// one-shot classified view for clients that do not hold the stream open.
func (h *AppointmentsHandler) ListAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := userIDFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	view, err := h.Service.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to list appointments", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// StreamAppointmentsHandler handles GET /api/appointments/stream as a
// server-sent-event stream. Every store change (and periodic re-evaluation)
// pushes a fresh classified view; the subscription is torn down when the
// client disconnects.
func (h *AppointmentsHandler) StreamAppointmentsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := userIDFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	views, stop, err := h.Service.WatchAppointments(c.Request.Context(), userID)
	if err != nil {
		logger.Error("failed to open appointment stream", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open appointment stream"})
		return
	}
	defer stop()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		view, ok := <-views
		if !ok {
			return false
		}
		c.SSEvent("appointments", view)
		return true
	})
}

// CancelAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentsHandler) CancelAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	userID, ok := userIDFromContext(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	appointmentID := c.Param("id")
	err := h.Service.CancelAppointment(c.Request.Context(), userID, appointmentID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, appointments.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("cancellation failed",
				zap.String("appointmentId", appointmentID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment cancelled"})
}

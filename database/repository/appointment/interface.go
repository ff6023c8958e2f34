package appointmentRepo

import (
	"context"
	"errors"

	"nutribook/models"
)

// ErrNotFound is returned when no appointment exists for the given id.
var ErrNotFound = errors.New("appointment not found")

// AppointmentRepository defines persistence operations over the appointments
// collection. Appointments are never deleted; cancellation is a status update.
type AppointmentRepository interface {
	// Create durably stores a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error

	// GetByID fetches a single appointment, ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)

	// ListByUser returns every appointment owned by the given user.
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)

	// SetStatus partially updates only the status field of an appointment.
	SetStatus(ctx context.Context, id string, status models.AppointmentStatus) error

	// Watch opens a live subscription scoped to the user's appointments. Every
	// matching change delivers the full current result set (not a diff) on the
	// returned channel. The channel is closed when ctx is cancelled or the
	// underlying stream fails.
	Watch(ctx context.Context, userID string) (<-chan []models.Appointment, error)
}

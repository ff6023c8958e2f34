package appointments

import (
	"context"
)

// AppointmentService exposes the classified appointment views and the
// cancellation operation for the authenticated user.
type AppointmentService interface {
	// ListAppointments returns a one-shot classified view of the user's
	// appointments, evaluated against the current wall clock.
	ListAppointments(ctx context.Context, userID string) (ClassifiedView, error)

	// WatchAppointments opens a live view: a fresh ClassifiedView is pushed on
	// every store change and on a periodic re-evaluation tick. The returned
	// stop function tears the subscription down; the channel is closed on
	// teardown or context cancellation.
	WatchAppointments(ctx context.Context, userID string) (<-chan ClassifiedView, func(), error)

	// CancelAppointment transitions a scheduled appointment to cancelled.
	// Cancellation is terminal and updates only the status field.
	CancelAppointment(ctx context.Context, userID, appointmentID string) error
}

package booking

import (
	"context"

	"nutribook/models"
)

// BookingService validates a booking request and creates the appointment
// record. The created record is returned synchronously; the appointments view
// itself updates out of band through the live subscription.
type BookingService interface {
	BookAppointment(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error)
}

// ReminderScheduler schedules a push reminder ahead of a booked appointment.
// Scheduling is best-effort; a failure never fails the booking.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(appt models.Appointment) error
}

package booking

import (
	"context"
	"fmt"
	"time"

	"nutribook/catalog"
	appointmentRepo "nutribook/database/repository/appointment"
	"nutribook/models"
	"nutribook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo      appointmentRepo.AppointmentRepository
	Reminders ReminderScheduler
	Now       func() time.Time // overridable in tests; defaults to time.Now
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BookAppointment validates the request against the selected nutritionist's
// declared availability and, if valid, writes a single appointment record.
// Validation failures are reported before any store interaction.
func (s *DefaultBookingService) BookAppointment(ctx context.Context, userID string, req models.BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if userID == "" {
		return nil, ErrUnauthenticated
	}
	if req.Date.IsZero() || req.TimeSlot == "" {
		return nil, ErrIncompleteRequest
	}
	if req.Date.Before(s.now()) {
		return nil, ErrInvalidDate
	}

	nutritionist, ok := catalog.ByID(req.NutritionistID)
	if !ok {
		return nil, ErrUnknownNutritionist
	}
	if !nutritionist.AvailableOn(req.Date.Weekday().String()) {
		return nil, ErrUnavailableDay
	}
	if !models.ValidTimeSlot(req.TimeSlot) {
		return nil, ErrInvalidTimeSlot
	}

	// Name and price are snapshotted here so later catalog edits never
	// rewrite booking history.
	appt := &models.Appointment{
		ID:               uuid.New().String(),
		UserID:           userID,
		NutritionistID:   nutritionist.ID,
		NutritionistName: nutritionist.Name,
		Date:             req.Date,
		TimeSlot:         req.TimeSlot,
		Status:           models.StatusScheduled,
		PricePerHour:     nutritionist.PricePerHour,
	}

	if err := s.Repo.Create(ctx, appt); err != nil {
		logger.Error("booking write failed",
			zap.String("userId", userID),
			zap.String("nutritionistId", nutritionist.ID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(*appt); err != nil {
			// The booking already succeeded; a missed reminder is only logged.
			logger.Warn("failed to schedule appointment reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment booked",
		zap.String("appointmentId", appt.ID),
		zap.String("userId", userID),
		zap.String("nutritionistId", nutritionist.ID),
		zap.Time("date", appt.Date))
	return appt, nil
}

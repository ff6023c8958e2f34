package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "nutribook/database/repository/appointment"
	"nutribook/models"
	"nutribook/utils"

	"go.uber.org/zap"
)

// CancelAppointment marks the appointment cancelled via a partial status
// update. An appointment owned by a different user is reported as not found.
// No cancellation fee is computed or recorded.
func (s *DefaultAppointmentService) CancelAppointment(ctx context.Context, userID, appointmentID string) error {
	logger := utils.GetLogger()

	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if appt.UserID != userID {
		return ErrNotFound
	}
	if appt.Cancelled() {
		return ErrAlreadyCancelled
	}

	if err := s.Repo.SetStatus(ctx, appointmentID, models.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrNotFound) {
			return ErrNotFound
		}
		logger.Error("cancellation write failed",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Info("appointment cancelled",
		zap.String("appointmentId", appointmentID),
		zap.String("userId", userID))
	return nil
}

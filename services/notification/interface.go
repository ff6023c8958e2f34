package notification

import (
	"context"
	"fmt"

	profileRepo "nutribook/database/repository/profile"
	"nutribook/models"
	"nutribook/utils"

	"firebase.google.com/go/v4/messaging"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	profiles profileRepo.ProfileRepository
}

func NewDefaultNotificationService(profiles profileRepo.ProfileRepository) (*DefaultNotificationService, error) {
	if profiles == nil {
		return nil, fmt.Errorf("notification service initialization error: profile repository is nil")
	}
	return &DefaultNotificationService{profiles: profiles}, nil
}

// SendAppointmentReminder looks up the user's FCM token and sends a push
// about the upcoming appointment.
func (s *DefaultNotificationService) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	prof, err := s.profiles.Get(ctx, payload.UserID)
	if err != nil {
		return fmt.Errorf("SendAppointmentReminder: could not load profile for user %s: %w", payload.UserID, err)
	}
	token := prof.FCMToken
	if token == "" {
		// Nothing to deliver to; not an error.
		return nil
	}

	title := "Upcoming appointment reminder"
	body := fmt.Sprintf(
		"Your session with %s is coming up on %s at %s.",
		payload.NutritionistName,
		payload.Date.Format("Monday, January 2"),
		payload.TimeSlot,
	)

	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"type":          "appointment_reminder",
			"appointmentId": payload.AppointmentID,
		},
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendAppointmentReminder: failed to send FCM message: %w", err)
	}
	return nil
}

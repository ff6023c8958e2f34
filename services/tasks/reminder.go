package tasks

import (
	"encoding/json"
	"time"

	"nutribook/config"
	"nutribook/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues reminder tasks on the redis-backed queue consumed by the
// reminder worker.
type Scheduler struct {
	client *asynq.Client
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// ScheduleAppointmentReminder schedules a push reminder ahead of the
// appointment. Bookings too close to their start time get no reminder.
func (s *Scheduler) ScheduleAppointmentReminder(appt models.Appointment) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := appt.Date.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		AppointmentID:    appt.ID,
		UserID:           appt.UserID,
		NutritionistName: appt.NutritionistName,
		Date:             appt.Date,
		TimeSlot:         appt.TimeSlot,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}

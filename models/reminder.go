package models

import "time"

// ReminderPayload is the task payload enqueued when an appointment is booked
// and consumed by the reminder worker shortly before the appointment starts.
type ReminderPayload struct {
	AppointmentID    string    `json:"appointmentId"`
	UserID           string    `json:"userId"`
	NutritionistName string    `json:"nutritionistName"`
	Date             time.Time `json:"date"`
	TimeSlot         string    `json:"timeSlot"`
}

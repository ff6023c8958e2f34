package models

import "time"

// BookingRequest is the payload a client submits to book an appointment.
type BookingRequest struct {
	NutritionistID string    `json:"nutritionistId"`
	Date           time.Time `json:"date"`
	TimeSlot       string    `json:"timeSlot"`
}

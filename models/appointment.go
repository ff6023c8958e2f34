package models

import "time"

// AppointmentStatus enumerates the appointment lifecycle states.
// The only legal transition is StatusScheduled -> StatusCancelled;
// cancellation is terminal.
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
)

// TimeSlots is the fixed set of bookable time-of-day slots.
var TimeSlots = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
}

// ValidTimeSlot reports whether slot is one of the bookable slots.
func ValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Appointment is a confirmed booking record stored in the appointments
// collection. NutritionistName and PricePerHour are copied from the catalog
// at booking time so later catalog edits never rewrite booking history.
// All fields except Status are immutable once the record is created.
type Appointment struct {
	ID               string            `firestore:"id" json:"id"`
	UserID           string            `firestore:"userId" json:"userId"`
	NutritionistID   string            `firestore:"nutritionistId" json:"nutritionistId"`
	NutritionistName string            `firestore:"nutritionistName" json:"nutritionistName"`
	Date             time.Time         `firestore:"date" json:"date"`
	TimeSlot         string            `firestore:"timeSlot" json:"timeSlot"`
	Status           AppointmentStatus `firestore:"status" json:"status"`
	PricePerHour     float64           `firestore:"pricePerHour" json:"pricePerHour"`
	CreatedAt        time.Time         `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// Cancelled reports whether the appointment has been cancelled.
func (a Appointment) Cancelled() bool {
	return a.Status == StatusCancelled
}

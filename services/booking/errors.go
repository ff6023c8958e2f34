package booking

import "errors"

// Validation errors are detected locally, before any store round-trip, and
// are safe to show to the caller.
var (
	ErrUnauthenticated     = errors.New("you must be signed in to book an appointment")
	ErrIncompleteRequest   = errors.New("please select both date and time")
	ErrInvalidDate         = errors.New("appointment date cannot be in the past")
	ErrUnknownNutritionist = errors.New("nutritionist not found")
	ErrUnavailableDay      = errors.New("nutritionist is not available on the selected day")
	ErrInvalidTimeSlot     = errors.New("selected time slot is not offered")
)

// ErrPersistence wraps store-level write failures. The booking is not retried.
var ErrPersistence = errors.New("failed to save appointment")

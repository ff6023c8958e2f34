package appointments

import "errors"

var (
	// ErrNotFound is returned when the appointment does not exist or is not
	// owned by the requesting user.
	ErrNotFound = errors.New("appointment not found")

	// ErrAlreadyCancelled is returned when cancelling an appointment that has
	// already been cancelled. Cancellation is terminal.
	ErrAlreadyCancelled = errors.New("appointment is already cancelled")

	// ErrPersistence wraps store-level failures; the operation is not retried.
	ErrPersistence = errors.New("appointment store failure")
)

package contact

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFields is returned when name, email or message is empty
	ErrMissingFields = errors.New("contact: missing required field")

	// ErrInvalidEmail is returned when the email does not match the pattern
	ErrInvalidEmail = errors.New("contact: invalid email address")
)

// User-facing messages for validation failures.
var validationMessages = map[error]string{
	ErrMissingFields: "Please fill in all fields",
	ErrInvalidEmail:  "Invalid email address",
}

// ValidationError is the caller's fault. Message is safe to echo back.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// Message returns the text shown to the submitter.
func (e *ValidationError) Message() string {
	if msg, ok := validationMessages[e.Err]; ok {
		return msg
	}
	return "Invalid submission"
}

// DispatchError means the outbound channel failed. The wrapped error is
// logged but never returned to the client.
type DispatchError struct {
	Channel string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("contact: dispatch via %s failed: %v", e.Channel, e.Err)
}

func (e *DispatchError) Unwrap() error { return e.Err }

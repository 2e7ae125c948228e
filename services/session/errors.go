package session

import (
	"errors"
	"fmt"

	"inspectra/services/scheduling"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("scheduling session not found or expired")

// ValidationRejectedError carries the authoritative validation result when a
// confirmation is rejected before any remote write happens.
type ValidationRejectedError struct {
	Result scheduling.ValidationResult
}

func (e *ValidationRejectedError) Error() string {
	return fmt.Sprintf("selection rejected: %s", e.Result.Message)
}

// AfterHoursConfirmationError blocks a confirmation whose end time runs past
// business close until the user explicitly acknowledges the warning.
type AfterHoursConfirmationError struct {
	Message string
}

func (e *AfterHoursConfirmationError) Error() string {
	return e.Message
}

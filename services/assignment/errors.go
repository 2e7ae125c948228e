package assignment

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	staffRepo "inspectra/database/repository/staff"
)

// Step names the remote operations the saga performs, in execution order.
type Step string

const (
	StepLeadUpsert           Step = "lead-upsert"
	StepAssignmentCreate     Step = "assignment-create"
	StepStaffLookup          Step = "staff-lookup"
	StepWorkAllocationCreate Step = "work-allocation-create"
)

// ErrStaffNotFound marks the named staff-lookup failure: the inspector has no
// operational staff record, so no work allocation can be posted.
var ErrStaffNotFound = staffRepo.ErrNotFound

// StepError is the single structured failure a saga execution can produce.
// Completed lists every step whose remote effect is already committed; the
// saga performs no compensation, so callers use it to resume from the right
// point instead of blindly restarting.
type StepError struct {
	Step      Step   `json:"failedStep"`
	Completed []Step `json:"completedSteps"`
	Message   string `json:"message"`
	Transient bool   `json:"transient"`
	cause     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Message, e.cause)
}

func (e *StepError) Unwrap() error {
	return e.cause
}

func newStepError(step Step, completed []Step, message string, cause error) *StepError {
	return &StepError{
		Step:      step,
		Completed: completed,
		Message:   message,
		Transient: isTransient(cause),
		cause:     cause,
	}
}

// isTransient separates "try again shortly" failures from data-validity ones.
// Timeouts, cancellations, and store connectivity problems are retryable;
// anything else needs the caller's input fixed first.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}

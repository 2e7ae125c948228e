package session

import (
	"context"
	"time"

	"inspectra/models"
	"inspectra/services/assignment"
	"inspectra/services/availability"
	"inspectra/services/scheduling"
)

// Update carries the user's changes to a scheduling session. Nil fields are
// untouched. A date change discards the previously fetched availability and
// any selection made against it.
type Update struct {
	Date           *string                  `json:"date,omitempty"`
	InspectorEmail *string                  `json:"inspectorEmail,omitempty"`
	Slot           *models.AvailabilitySlot `json:"slot,omitempty"`
}

// ConfirmInput is the confirmation payload that turns a session into an
// assignment saga execution.
type ConfirmInput struct {
	LeadID                string           `json:"leadId,omitempty"`
	Lead                  models.LeadPatch `json:"lead"`
	Start                 string           `json:"start"`
	End                   string           `json:"end"`
	Priority              models.Priority  `json:"priority"`
	Description           string           `json:"description"`
	AcknowledgeAfterHours bool             `json:"acknowledgeAfterHours"`
}

// Service manages the stateful scheduling dialog: availability per viewed
// date, slot and inspector selection, continuous validation, and the final
// handoff to the assignment saga.
type Service interface {
	InitiateSession(ctx context.Context, date string) (*models.SchedulingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.SchedulingSession, error)
	UpdateSession(ctx context.Context, sessionID string, update Update) (*models.SchedulingSession, error)
	ValidateSelection(ctx context.Context, sessionID, start, end string) (scheduling.ValidationResult, error)
	ConfirmAssignment(ctx context.Context, sessionID string, input ConfirmInput) (*assignment.Result, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultService implements Service on top of the Redis session cache.
// Now is injected so slot filtering and default times are deterministic in
// tests; production wiring passes time.Now.
type DefaultService struct {
	Availability availability.Service
	Saga         assignment.Saga
	Now          func() time.Time
}

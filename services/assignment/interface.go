package assignment

import (
	"context"

	allocationRepo "inspectra/database/repository/allocation"
	assignmentRepo "inspectra/database/repository/assignment"
	leadRepo "inspectra/database/repository/lead"
	staffRepo "inspectra/database/repository/staff"
	"inspectra/models"
)

// Request is a confirmed inspector assignment, immutable once Execute begins.
// LeadID is empty when the inquiry has not been persisted yet.
type Request struct {
	LeadID         string           `json:"leadId,omitempty"`
	Lead           models.LeadPatch `json:"lead"`
	InspectorEmail string           `json:"inspectorEmail"`
	Date           string           `json:"date"` // "YYYY-MM-DD"
	Start          int              `json:"start"`
	End            int              `json:"end"`
	Priority       models.Priority  `json:"priority"`
	Description    string           `json:"description"`
}

// Result carries the identifiers created by a fully successful execution.
type Result struct {
	LeadID           string `json:"leadId"`
	AssignmentID     string `json:"assignmentId"`
	WorkAllocationID string `json:"workAllocationId"`
}

// Saga finalizes an inspector assignment through an ordered chain of dependent
// remote writes: persist the lead, create the assignment record, resolve the
// inspector's staff identity, create the work allocation. Every failure
// surfaces as a *StepError; effects of earlier steps are never rolled back.
type Saga interface {
	Execute(ctx context.Context, req Request) (*Result, error)
}

// DefaultSaga implements Saga against the record-store repositories.
type DefaultSaga struct {
	Leads       leadRepo.LeadRepository
	Assignments assignmentRepo.AssignmentRepository
	Staff       staffRepo.StaffRepository
	Allocations allocationRepo.WorkAllocationRepository
}

package assignment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	staffRepo "inspectra/database/repository/staff"
	"inspectra/models"
	"inspectra/services/scheduling"
	"inspectra/utils"
)

// Execute runs the four saga steps in strict sequence. Each step depends on
// the previous step's output, so there is no fan-out and no speculative work.
// On failure the returned *StepError names the failed step and the steps whose
// remote effects are already committed. Re-running a failed execution is only
// safe once the lead ID is known: step 1 on a fresh lead would create a
// duplicate inquiry.
func (s *DefaultSaga) Execute(ctx context.Context, req Request) (*Result, error) {
	logger := utils.GetLogger()
	var completed []Step

	// Step 1: persist the inquiry.
	leadID, err := s.upsertLead(ctx, req)
	if err != nil {
		logger.Warn("assignment saga: lead upsert failed", zap.Error(err))
		return nil, newStepError(StepLeadUpsert, completed, "failed to save inquiry", err)
	}
	completed = append(completed, StepLeadUpsert)

	// Step 2: create the assignment record against the persisted lead.
	assignmentID, err := s.Assignments.Create(ctx, models.Assignment{
		LeadID:         leadID,
		InspectorEmail: req.InspectorEmail,
		Description:    req.Description,
		Priority:       req.Priority,
		PreferredDate:  req.Date,
		StartDateTime:  utils.CombineDateTime(req.Date, req.Start),
		EndDateTime:    utils.CombineDateTime(req.Date, req.End),
	})
	if err != nil {
		logger.Warn("assignment saga: assignment create failed",
			zap.String("leadId", leadID), zap.Error(err))
		return nil, newStepError(StepAssignmentCreate, completed, "inquiry was saved, but creating the assignment failed", err)
	}
	completed = append(completed, StepAssignmentCreate)

	// Step 3: resolve the inspector's operational identity. A missing staff
	// record aborts with a named failure; steps 1-2 stay committed.
	staff, err := s.Staff.GetByEmail(ctx, req.InspectorEmail)
	if err != nil {
		if errors.Is(err, staffRepo.ErrNotFound) {
			logger.Warn("assignment saga: no staff record for inspector",
				zap.String("inspectorEmail", req.InspectorEmail))
			return nil, newStepError(StepStaffLookup, completed,
				fmt.Sprintf("inquiry and assignment were saved, but no staff record exists for %s", req.InspectorEmail), err)
		}
		logger.Warn("assignment saga: staff lookup failed",
			zap.String("inspectorEmail", req.InspectorEmail), zap.Error(err))
		return nil, newStepError(StepStaffLookup, completed, "inquiry and assignment were saved, but the staff lookup failed", err)
	}
	completed = append(completed, StepStaffLookup)

	// Step 4: post the allocated hours against the staff record.
	allocationID, err := s.Allocations.Create(ctx, models.WorkAllocation{
		StaffID:         staff.ID,
		Date:            req.Date,
		WorkTitle:       "Site inspection",
		WorkDescription: req.Description,
		StartTime:       utils.ToTimeString(req.Start),
		EndTime:         utils.ToTimeString(req.End),
		DurationHours:   scheduling.Duration(req.Start, req.End),
	})
	if err != nil {
		logger.Warn("assignment saga: work allocation create failed",
			zap.String("staffId", staff.ID), zap.Error(err))
		return nil, newStepError(StepWorkAllocationCreate, completed, "assignment was saved, but recording the work allocation failed", err)
	}

	logger.Info("assignment saga completed",
		zap.String("leadId", leadID),
		zap.String("assignmentId", assignmentID),
		zap.String("workAllocationId", allocationID))

	return &Result{
		LeadID:           leadID,
		AssignmentID:     assignmentID,
		WorkAllocationID: allocationID,
	}, nil
}

// upsertLead persists the inquiry. For an existing lead the current remote
// record is fetched and the locally edited fields are merged over it: local
// edits always win, and absent (nil) fields never clobber stored values.
func (s *DefaultSaga) upsertLead(ctx context.Context, req Request) (string, error) {
	if req.LeadID == "" {
		lead := &models.Lead{}
		req.Lead.Apply(lead)
		if lead.Status == "" {
			lead.Status = "Scheduled"
		}
		return s.Leads.Create(ctx, lead)
	}

	lead, err := s.Leads.GetByID(ctx, req.LeadID)
	if err != nil {
		return "", err
	}
	req.Lead.Apply(lead)
	if err := s.Leads.Update(ctx, lead); err != nil {
		return "", err
	}
	return lead.ID, nil
}

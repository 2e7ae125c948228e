package assignment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectra/models"
)

// --- In-memory fakes for the record-store repositories ---

type fakeLeadRepo struct {
	leads     map[string]*models.Lead
	createErr error
	updateErr error
	nextID    string
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: map[string]*models.Lead{}, nextID: "lead-1"}
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	lead.ID = f.nextID
	copied := *lead
	f.leads[lead.ID] = &copied
	return lead.ID, nil
}

func (f *fakeLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	lead, ok := f.leads[id]
	if !ok {
		return nil, errors.New("lead not found")
	}
	copied := *lead
	return &copied, nil
}

func (f *fakeLeadRepo) Update(ctx context.Context, lead *models.Lead) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	copied := *lead
	f.leads[lead.ID] = &copied
	return nil
}

func (f *fakeLeadRepo) Delete(ctx context.Context, id string) error {
	delete(f.leads, id)
	return nil
}

func (f *fakeLeadRepo) List(ctx context.Context, status string) ([]models.Lead, error) {
	var out []models.Lead
	for _, lead := range f.leads {
		out = append(out, *lead)
	}
	return out, nil
}

type fakeAssignmentRepo struct {
	assignments []models.Assignment
	createErr   error
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, a models.Assignment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	a.ID = "assignment-1"
	f.assignments = append(f.assignments, a)
	return a.ID, nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	for _, a := range f.assignments {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, errors.New("assignment not found")
}

func (f *fakeAssignmentRepo) ListByLeadID(ctx context.Context, leadID string) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.LeadID == leadID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) ListByInspector(ctx context.Context, email, date string) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.InspectorEmail == email && a.PreferredDate == date {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeStaffRepo struct {
	byEmail   map[string]*models.Staff
	lookupErr error
}

func (f *fakeStaffRepo) Create(ctx context.Context, staff *models.Staff) (string, error) {
	f.byEmail[staff.Email] = staff
	return staff.ID, nil
}

func (f *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	staff, ok := f.byEmail[email]
	if !ok {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}

func (f *fakeStaffRepo) ListActive(ctx context.Context) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range f.byEmail {
		out = append(out, *s)
	}
	return out, nil
}

type fakeAllocationRepo struct {
	allocations []models.WorkAllocation
	createErr   error
}

func (f *fakeAllocationRepo) Create(ctx context.Context, a models.WorkAllocation) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	a.ID = "allocation-1"
	f.allocations = append(f.allocations, a)
	return a.ID, nil
}

func (f *fakeAllocationRepo) ListByStaffAndDate(ctx context.Context, staffID, date string) ([]models.WorkAllocation, error) {
	var out []models.WorkAllocation
	for _, a := range f.allocations {
		if a.StaffID == staffID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }

func newTestSaga() (*DefaultSaga, *fakeLeadRepo, *fakeAssignmentRepo, *fakeStaffRepo, *fakeAllocationRepo) {
	leads := newFakeLeadRepo()
	assignments := &fakeAssignmentRepo{}
	staff := &fakeStaffRepo{byEmail: map[string]*models.Staff{
		"jordan@inspectra.test": {ID: "staff-7", DisplayName: "Jordan Reyes", Email: "jordan@inspectra.test", Active: true},
	}}
	allocations := &fakeAllocationRepo{}
	saga := &DefaultSaga{Leads: leads, Assignments: assignments, Staff: staff, Allocations: allocations}
	return saga, leads, assignments, staff, allocations
}

func TestSagaHappyPathNewLead(t *testing.T) {
	saga, leads, assignments, _, allocations := newTestSaga()

	result, err := saga.Execute(context.Background(), Request{
		Lead:           models.LeadPatch{CustomerName: strPtr("Dana Whitfield")},
		InspectorEmail: "jordan@inspectra.test",
		Date:           "2025-03-14",
		Start:          555, // 09:15
		End:            570, // 09:30
		Priority:       models.PriorityMedium,
		Description:    "Roof inspection",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.LeadID)
	assert.NotEmpty(t, result.AssignmentID)
	assert.NotEmpty(t, result.WorkAllocationID)

	lead := leads.leads[result.LeadID]
	require.NotNil(t, lead)
	assert.Equal(t, "Dana Whitfield", lead.CustomerName)
	assert.Equal(t, "Scheduled", lead.Status)

	require.Len(t, assignments.assignments, 1)
	created := assignments.assignments[0]
	assert.Equal(t, result.LeadID, created.LeadID)
	assert.Equal(t, "2025-03-14 09:15:00", created.StartDateTime)
	assert.Equal(t, "2025-03-14 09:30:00", created.EndDateTime)
	assert.Equal(t, models.PriorityMedium, created.Priority)

	require.Len(t, allocations.allocations, 1)
	alloc := allocations.allocations[0]
	assert.Equal(t, "staff-7", alloc.StaffID)
	assert.Equal(t, "09:15", alloc.StartTime)
	assert.Equal(t, "09:30", alloc.EndTime)
	assert.Equal(t, 0.25, alloc.DurationHours)
}

func TestSagaStaffLookupFailureIsNotRolledBack(t *testing.T) {
	saga, leads, assignments, staff, allocations := newTestSaga()
	delete(staff.byEmail, "jordan@inspectra.test")

	_, err := saga.Execute(context.Background(), Request{
		Lead:           models.LeadPatch{CustomerName: strPtr("Dana Whitfield")},
		InspectorEmail: "jordan@inspectra.test",
		Date:           "2025-03-14",
		Start:          600,
		End:            660,
		Priority:       models.PriorityHigh,
		Description:    "Foundation check",
	})

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepStaffLookup, stepErr.Step)
	assert.Equal(t, []Step{StepLeadUpsert, StepAssignmentCreate}, stepErr.Completed)
	assert.False(t, stepErr.Transient, "a missing staff record is a data problem, not a retryable one")
	assert.ErrorIs(t, err, ErrStaffNotFound)

	// Steps 1-2 stay committed; step 4 never ran.
	assert.Len(t, leads.leads, 1)
	assert.Len(t, assignments.assignments, 1)
	assert.Empty(t, allocations.allocations)
}

func TestSagaAssignmentCreateFailureKeepsLead(t *testing.T) {
	saga, leads, assignments, _, allocations := newTestSaga()
	assignments.createErr = errors.New("duplicate key")

	_, err := saga.Execute(context.Background(), Request{
		Lead:           models.LeadPatch{CustomerName: strPtr("Dana Whitfield")},
		InspectorEmail: "jordan@inspectra.test",
		Date:           "2025-03-14",
		Start:          600,
		End:            660,
		Priority:       models.PriorityLow,
	})

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepAssignmentCreate, stepErr.Step)
	assert.Equal(t, []Step{StepLeadUpsert}, stepErr.Completed)

	assert.Len(t, leads.leads, 1, "the saved inquiry survives the failed assignment")
	assert.Empty(t, allocations.allocations)
}

func TestSagaTransientFailureClassification(t *testing.T) {
	saga, _, _, _, _ := newTestSaga()
	saga.Leads.(*fakeLeadRepo).createErr = context.DeadlineExceeded

	_, err := saga.Execute(context.Background(), Request{
		Lead:           models.LeadPatch{CustomerName: strPtr("Dana Whitfield")},
		InspectorEmail: "jordan@inspectra.test",
		Date:           "2025-03-14",
		Start:          600,
		End:            660,
		Priority:       models.PriorityLow,
	})

	var stepErr *StepError
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, StepLeadUpsert, stepErr.Step)
	assert.Empty(t, stepErr.Completed)
	assert.True(t, stepErr.Transient, "a timeout should read as try-again-shortly")
}

func TestSagaLeadMergeLocalWinsNilDropped(t *testing.T) {
	saga, leads, _, _, _ := newTestSaga()
	leads.leads["lead-42"] = &models.Lead{
		ID:           "lead-42",
		CustomerName: "Dana Whitfield",
		Email:        "dana@customers.test",
		Phone:        "555-0143",
		Notes:        "Prefers mornings",
		Status:       "New",
	}

	result, err := saga.Execute(context.Background(), Request{
		LeadID: "lead-42",
		Lead: models.LeadPatch{
			Notes:  strPtr("Gate code 4471"),
			Status: strPtr("Scheduled"),
			// Email and Phone deliberately absent: stored values must survive.
		},
		InspectorEmail: "jordan@inspectra.test",
		Date:           "2025-03-14",
		Start:          600,
		End:            660,
		Priority:       models.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, "lead-42", result.LeadID)

	merged := leads.leads["lead-42"]
	assert.Equal(t, "Gate code 4471", merged.Notes, "local edit overrides the stored value")
	assert.Equal(t, "Scheduled", merged.Status)
	assert.Equal(t, "dana@customers.test", merged.Email, "absent fields never clobber stored values")
	assert.Equal(t, "555-0143", merged.Phone)
}

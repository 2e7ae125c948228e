package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inspectra/models"
)

func TestValidateRequiredTimes(t *testing.T) {
	result := Validate("", "10:00", ValidationContext{})
	assert.False(t, result.Valid)
	assert.True(t, result.FieldErrors.Start)
	assert.False(t, result.FieldErrors.End)
	assert.Equal(t, SeverityError, result.Severity)

	result = Validate("", "", ValidationContext{})
	assert.False(t, result.Valid)
	assert.True(t, result.FieldErrors.Start)
	assert.True(t, result.FieldErrors.End)
}

func TestValidateMalformedTime(t *testing.T) {
	result := Validate("9am", "10:00", ValidationContext{})
	assert.False(t, result.Valid)
	assert.True(t, result.FieldErrors.Start)
	assert.False(t, result.FieldErrors.End)
}

func TestValidateOrderingAndMinimumGap(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		valid   bool
		message string
	}{
		{"end before start", "10:00", "09:30", false, "end time must be after start time"},
		{"end equals start", "10:00", "10:00", false, "end time must be after start time"},
		{"gap below minimum", "10:00", "10:10", false, "start and end times must be at least 15 minutes apart"},
		{"gap exactly minimum", "10:00", "10:15", true, ""},
		{"comfortable gap", "10:00", "11:00", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.start, tt.end, ValidationContext{})
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, tt.message, result.Message)
				assert.True(t, result.FieldErrors.Start)
				assert.True(t, result.FieldErrors.End)
			}
		})
	}
}

func TestValidatePastStartToday(t *testing.T) {
	now := 14 * 60 // 14:00
	result := Validate("13:00", "13:30", ValidationContext{Now: &now})

	assert.False(t, result.Valid)
	assert.Equal(t, "start time cannot be in the past", result.Message)
	assert.True(t, result.FieldErrors.Start)
	assert.False(t, result.FieldErrors.End, "past-start blames the start field only")
}

func TestValidateSlotContainment(t *testing.T) {
	free := []models.AvailabilitySlot{{Start: 540, End: 720}} // 09:00-12:00

	result := Validate("09:30", "11:00", ValidationContext{FreeSlots: free})
	assert.True(t, result.Valid)

	result = Validate("11:30", "12:30", ValidationContext{FreeSlots: free})
	assert.False(t, result.Valid)
	assert.Equal(t, "selected time must be within the inspector's available slots", result.Message)
	assert.True(t, result.FieldErrors.Start)
	assert.True(t, result.FieldErrors.End)
}

func TestValidateChosenSlotBoundsWhenNoInspector(t *testing.T) {
	chosen := &models.AvailabilitySlot{Start: 600, End: 660} // 10:00-11:00

	result := Validate("10:00", "10:30", ValidationContext{ChosenSlot: chosen})
	assert.True(t, result.Valid)

	result = Validate("10:45", "11:15", ValidationContext{ChosenSlot: chosen})
	assert.False(t, result.Valid)
}

func TestValidateBusinessCloseWarning(t *testing.T) {
	result := Validate("17:50", "18:10", ValidationContext{})

	assert.True(t, result.Valid, "business close is a soft gate, not a rejection")
	assert.Equal(t, SeverityWarning, result.Severity)
	assert.NotEmpty(t, result.Message)
	assert.False(t, result.FieldErrors.Start)
	assert.False(t, result.FieldErrors.End)
}

func TestValidateWarningSuppressedByHardError(t *testing.T) {
	// Gap failure and late end together: the hard error wins.
	result := Validate("18:05", "18:10", ValidationContext{})

	assert.False(t, result.Valid)
	assert.Equal(t, SeverityError, result.Severity)
	assert.Equal(t, "start and end times must be at least 15 minutes apart", result.Message)
}

func TestValidateFieldErrorsAccumulate(t *testing.T) {
	// Past start and containment both fail; the message comes from the first
	// failed rule but both fields end up flagged.
	now := 11 * 60
	free := []models.AvailabilitySlot{{Start: 540, End: 600}}

	result := Validate("10:00", "10:30", ValidationContext{Now: &now, FreeSlots: free})
	assert.False(t, result.Valid)
	assert.Equal(t, "start time cannot be in the past", result.Message)
	assert.True(t, result.FieldErrors.Start)
	assert.True(t, result.FieldErrors.End)
}

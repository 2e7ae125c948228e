package scheduling

import (
	"inspectra/models"
	"inspectra/utils"
)

// Severity levels for a validation outcome.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// FieldErrors flags which time field(s) are at fault so the UI can highlight
// them. Flags accumulate across every rule that matched, independent of which
// rule supplied the message.
type FieldErrors struct {
	Start bool `json:"start"`
	End   bool `json:"end"`
}

// ValidationResult is the outcome of validating a candidate (start, end) pair.
// A warning-severity result is still valid; the caller must surface a blocking
// confirmation before proceeding past business close.
type ValidationResult struct {
	Valid       bool        `json:"valid"`
	FieldErrors FieldErrors `json:"fieldErrors"`
	Message     string      `json:"message,omitempty"`
	Severity    string      `json:"severity,omitempty"`
}

// ValidationContext carries everything the validator needs besides the
// candidate times. Now is the current minute of day when the inspection date
// is today, nil otherwise. FreeSlots is the selected inspector's free slots,
// nil when no inspector has been chosen yet; ChosenSlot is the raw slot the
// user picked and bounds the selection until an inspector is known.
type ValidationContext struct {
	Date       string
	Now        *int
	FreeSlots  []models.AvailabilitySlot
	ChosenSlot *models.AvailabilitySlot
}

// Validate is the single source of truth for whether a candidate (start, end)
// is acceptable. It is pure and intended to run on every field change, and
// again authoritatively at submission. The first failing rule supplies the
// message; field flags accumulate from every failed rule.
func Validate(start, end string, vctx ValidationContext) ValidationResult {
	result := ValidationResult{Severity: SeverityError}

	if start == "" || end == "" {
		result.FieldErrors.Start = start == ""
		result.FieldErrors.End = end == ""
		result.Message = "both start and end times are required"
		return result
	}

	startMin, err := utils.ToMinutes(start)
	if err != nil {
		result.FieldErrors.Start = true
		result.Message = "start time is not a valid time"
		return result
	}
	endMin, err := utils.ToMinutes(end)
	if err != nil {
		result.FieldErrors.End = true
		result.Message = "end time is not a valid time"
		return result
	}

	fail := func(msg string, blameStart, blameEnd bool) {
		if result.Message == "" {
			result.Message = msg
		}
		result.FieldErrors.Start = result.FieldErrors.Start || blameStart
		result.FieldErrors.End = result.FieldErrors.End || blameEnd
	}

	if endMin <= startMin {
		fail("end time must be after start time", true, true)
	}
	// Evaluated even when ordering already failed: both rules feed the field flags.
	if endMin-startMin < MinSelectionMinutes {
		fail("start and end times must be at least 15 minutes apart", true, true)
	}
	if vctx.Now != nil && startMin < *vctx.Now {
		fail("start time cannot be in the past", true, false)
	}
	if bounds := vctx.containmentBounds(); bounds != nil {
		if !containedInAny(startMin, endMin, bounds) {
			fail("selected time must be within the inspector's available slots", true, true)
		}
	}

	if result.Message != "" {
		return result
	}

	result.Valid = true
	if endMin > BusinessCloseMinutes {
		result.Severity = SeverityWarning
		result.Message = "end time is past business close (18:00)"
	} else {
		result.Severity = ""
	}
	return result
}

// containmentBounds picks the slot set the selection must fit within: the
// selected inspector's free slots when one is chosen, else the raw slot the
// user picked, else no containment check at all.
func (vctx ValidationContext) containmentBounds() []models.AvailabilitySlot {
	if vctx.FreeSlots != nil {
		return vctx.FreeSlots
	}
	if vctx.ChosenSlot != nil {
		return []models.AvailabilitySlot{*vctx.ChosenSlot}
	}
	return nil
}

// containedInAny reports whether [start, end) lies within at least one slot.
func containedInAny(start, end int, slots []models.AvailabilitySlot) bool {
	for _, slot := range slots {
		if start >= slot.Start && end <= slot.End {
			return true
		}
	}
	return false
}

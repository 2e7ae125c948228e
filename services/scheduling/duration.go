package scheduling

import (
	"time"

	"inspectra/models"
	"inspectra/utils"
)

// Duration returns the elapsed hours between two minute-of-day values.
// A non-positive interval yields 0; callers treat that as "not yet a valid
// duration" rather than an error.
func Duration(start, end int) float64 {
	if end <= start {
		return 0
	}
	return float64(end-start) / 60.0
}

// EndTimeConstraints derives the earliest and latest permissible end time for
// the current selection. With a start already chosen the minimum is start plus
// the minimum selection length; otherwise it is the slot's own start. The
// maximum is the slot's end, or business close when no slot is known yet.
func EndTimeConstraints(selectedSlot *models.AvailabilitySlot, requestedStart *int) (minTime, maxTime int) {
	switch {
	case requestedStart != nil:
		minTime = *requestedStart + MinSelectionMinutes
	case selectedSlot != nil:
		minTime = selectedSlot.Start
	default:
		minTime = BusinessOpenMinutes
	}

	if selectedSlot != nil {
		maxTime = selectedSlot.End
	} else {
		maxTime = BusinessCloseMinutes
	}
	return minTime, maxTime
}

// DefaultStartTime proposes a start time for a fresh selection. For today it
// rounds the current time up to the next 15-minute boundary, clamped forward
// to the selected slot's start when that is later. For a future day it is the
// slot's start, or 09:00 when no slot is chosen.
func DefaultStartTime(date string, now time.Time, selectedSlot *models.AvailabilitySlot) string {
	if date == now.Format("2006-01-02") {
		minute := now.Hour()*60 + now.Minute()
		rounded := ((minute + MinSelectionMinutes - 1) / MinSelectionMinutes) * MinSelectionMinutes
		if selectedSlot != nil && selectedSlot.Start > rounded {
			rounded = selectedSlot.Start
		}
		return utils.ToTimeString(rounded)
	}

	if selectedSlot != nil {
		return utils.ToTimeString(selectedSlot.Start)
	}
	return utils.ToTimeString(DefaultStartFallbackMinutes)
}

// DefaultEndTime proposes an end for a given start: the minimum selection
// length past the start, clamped to the slot's end when a slot is chosen.
func DefaultEndTime(start int, selectedSlot *models.AvailabilitySlot) string {
	end := start + MinSelectionMinutes
	if selectedSlot != nil && end > selectedSlot.End {
		end = selectedSlot.End
	}
	return utils.ToTimeString(end)
}

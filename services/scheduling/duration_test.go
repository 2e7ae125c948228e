package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inspectra/models"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, 0.0, Duration(540, 540), "zero-length interval is not an error")
	assert.Equal(t, 0.0, Duration(600, 540), "inverted interval collapses to zero")
	assert.Equal(t, 1.5, Duration(540, 630))
	assert.Equal(t, 0.25, Duration(555, 570))
}

func TestEndTimeConstraints(t *testing.T) {
	slot := &models.AvailabilitySlot{Start: 540, End: 720} // 09:00-12:00
	start := 600                                           // 10:00

	minTime, maxTime := EndTimeConstraints(slot, &start)
	assert.Equal(t, 615, minTime, "minimum end is start plus the minimum gap")
	assert.Equal(t, 720, maxTime)

	minTime, maxTime = EndTimeConstraints(slot, nil)
	assert.Equal(t, 540, minTime, "without a start the slot's own start bounds the end")
	assert.Equal(t, 720, maxTime)

	minTime, maxTime = EndTimeConstraints(nil, nil)
	assert.Equal(t, BusinessOpenMinutes, minTime)
	assert.Equal(t, BusinessCloseMinutes, maxTime, "no slot falls back to business close")
}

func TestDefaultStartTime(t *testing.T) {
	slot := &models.AvailabilitySlot{Start: 540, End: 720} // 09:00-12:00
	today := time.Date(2025, 3, 14, 9, 7, 0, 0, time.Local)

	// Today: round up to the next 15-minute boundary.
	assert.Equal(t, "09:15", DefaultStartTime("2025-03-14", today, slot))

	// Today, current time already on a boundary: no rounding.
	onBoundary := time.Date(2025, 3, 14, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "09:30", DefaultStartTime("2025-03-14", onBoundary, slot))

	// Today, slot starts later than the rounded time: clamp forward.
	lateSlot := &models.AvailabilitySlot{Start: 660, End: 720}
	assert.Equal(t, "11:00", DefaultStartTime("2025-03-14", today, lateSlot))

	// Future day: the slot's start.
	assert.Equal(t, "09:00", DefaultStartTime("2025-03-21", today, slot))

	// Future day without a slot: the 09:00 fallback.
	assert.Equal(t, "09:00", DefaultStartTime("2025-03-21", today, nil))
}

func TestDefaultEndTime(t *testing.T) {
	slot := &models.AvailabilitySlot{Start: 540, End: 720}

	assert.Equal(t, "09:30", DefaultEndTime(555, slot), "default end is start plus the minimum gap")
	assert.Equal(t, "12:00", DefaultEndTime(715, slot), "clamped to the slot end")
	assert.Equal(t, "09:30", DefaultEndTime(555, nil))
}

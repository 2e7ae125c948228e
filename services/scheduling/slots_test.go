package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inspectra/models"
)

func minutePtr(m int) *int { return &m }

func TestFilterSelectableSlotsFutureDate(t *testing.T) {
	free := []models.AvailabilitySlot{
		{Start: 540, End: 600, DurationHours: 1},
		{Start: 660, End: 720, DurationHours: 1},
	}

	got := FilterSelectableSlots(free, nil)
	assert.Equal(t, free, got, "future dates pass through untouched")
}

func TestFilterSelectableSlotsToday(t *testing.T) {
	slot := models.AvailabilitySlot{Start: 540, End: 600, DurationHours: 1} // 09:00-10:00

	tests := []struct {
		name string
		now  int
		want []models.AvailabilitySlot
	}{
		{
			name: "before slot begins",
			now:  480, // 08:00
			want: []models.AvailabilitySlot{slot},
		},
		{
			name: "mid-slot truncates to now",
			now:  570, // 09:30
			want: []models.AvailabilitySlot{{Start: 570, End: 600, DurationHours: 0.5}},
		},
		{
			name: "at slot end drops the slot",
			now:  600, // 10:00
			want: []models.AvailabilitySlot{},
		},
		{
			name: "after slot end drops the slot",
			now:  630,
			want: []models.AvailabilitySlot{},
		},
		{
			name: "exactly at slot start keeps the full window",
			now:  540,
			want: []models.AvailabilitySlot{{Start: 540, End: 600, DurationHours: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterSelectableSlots([]models.AvailabilitySlot{slot}, minutePtr(tt.now))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilterSelectableSlotsPreservesOrder(t *testing.T) {
	free := []models.AvailabilitySlot{
		{Start: 480, End: 510, DurationHours: 0.5},  // over
		{Start: 540, End: 600, DurationHours: 1},    // in progress
		{Start: 660, End: 780, DurationHours: 2},    // future
		{Start: 900, End: 960, DurationHours: 1},    // future
	}

	got := FilterSelectableSlots(free, minutePtr(570)) // 09:30
	require.Len(t, got, 3)
	assert.Equal(t, 570, got[0].Start)
	assert.Equal(t, 660, got[1].Start)
	assert.Equal(t, 900, got[2].Start)
}

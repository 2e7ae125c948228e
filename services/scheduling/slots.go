package scheduling

import "inspectra/models"

// Business-hours policy for a single operating region. All times are local
// wall-clock minutes from midnight.
const (
	BusinessOpenMinutes  = 8 * 60  // 08:00
	BusinessCloseMinutes = 18 * 60 // 18:00

	// Minimum selectable inspection length.
	MinSelectionMinutes = 15

	// Fallback default start for future-day selections without a chosen slot.
	DefaultStartFallbackMinutes = 9 * 60 // 09:00
)

// FilterSelectableSlots reduces a day's free slots to the set a user may pick
// right now. nowIfToday is nil when the viewed date is in the future, in which
// case every slot is selectable as-is. For today, slots that have already
// ended are dropped and the slot currently in progress is truncated to begin
// at now. Input order is preserved; slots are trusted to be sorted and
// non-overlapping.
func FilterSelectableSlots(freeSlots []models.AvailabilitySlot, nowIfToday *int) []models.AvailabilitySlot {
	if nowIfToday == nil {
		return freeSlots
	}
	now := *nowIfToday

	selectable := make([]models.AvailabilitySlot, 0, len(freeSlots))
	for _, slot := range freeSlots {
		switch {
		case slot.End <= now:
			// Already over, including the slot ending exactly now.
		case slot.Start > now:
			selectable = append(selectable, slot)
		default:
			selectable = append(selectable, models.AvailabilitySlot{
				Start:         now,
				End:           slot.End,
				DurationHours: Duration(now, slot.End),
			})
		}
	}
	return selectable
}

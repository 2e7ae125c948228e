package models

// AvailabilitySlot is a contiguous time interval within a single day.
// Start and End are minutes from midnight (e.g., 540 for 9:00 AM); Start < End.
type AvailabilitySlot struct {
	Start         int     `bson:"start" json:"start"`
	End           int     `bson:"end" json:"end"`
	DurationHours float64 `bson:"durationHours,omitempty" json:"durationHours,omitempty"`
}

// InspectorAvailability is one inspector's occupied and free time for a date.
// Slot lists are sorted ascending and mutually non-overlapping.
type InspectorAvailability struct {
	InspectorID        string             `json:"inspectorId"`
	DisplayName        string             `json:"displayName"`
	Email              string             `json:"email"`
	Date               string             `json:"date"` // "YYYY-MM-DD"
	OccupiedSlots      []AvailabilitySlot `json:"occupiedSlots"`
	FreeSlots          []AvailabilitySlot `json:"freeSlots"`
	IsCompletelyFree   bool               `json:"isCompletelyFree"`
	TotalOccupiedHours float64            `json:"totalOccupiedHours"`
}

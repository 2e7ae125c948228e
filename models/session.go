package models

import "time"

// SchedulingSession is the transient state of one scheduling dialog, cached
// in Redis for the session TTL. Availability is recomputed wholesale whenever
// the viewed date changes; a stale fetch never survives a date switch.
type SchedulingSession struct {
	SessionID              string                  `json:"sessionId"`
	Date                   string                  `json:"date"` // "YYYY-MM-DD"
	Availability           []InspectorAvailability `json:"availability"`
	SelectedInspectorEmail string                  `json:"selectedInspectorEmail,omitempty"`
	SelectedSlot           *AvailabilitySlot       `json:"selectedSlot,omitempty"`
	Start                  string                  `json:"start,omitempty"` // "HH:MM"
	End                    string                  `json:"end,omitempty"`   // "HH:MM"
	CreatedAt              time.Time               `json:"createdAt"`
}

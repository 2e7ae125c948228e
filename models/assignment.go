package models

import "time"

// Priority of an inspection assignment.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// IsValid reports whether p is one of the known priority levels.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Assignment records who is assigned to inspect what, and when.
type Assignment struct {
	ID             string    `bson:"id" json:"id"`
	LeadID         string    `bson:"leadId" json:"leadId"`
	InspectorEmail string    `bson:"inspectorEmail" json:"inspectorEmail"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Priority       Priority  `bson:"priority" json:"priority"`
	PreferredDate  string    `bson:"preferredDate" json:"preferredDate"`   // "YYYY-MM-DD"
	StartDateTime  string    `bson:"startDateTime" json:"startDateTime"`   // "YYYY-MM-DD HH:MM:SS"
	EndDateTime    string    `bson:"endDateTime" json:"endDateTime"`       // "YYYY-MM-DD HH:MM:SS"
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// WorkAllocation records the hours allocated to a staff member for one piece
// of work on a given date.
type WorkAllocation struct {
	ID              string    `bson:"id" json:"id"`
	StaffID         string    `bson:"staffId" json:"staffId"`
	Date            string    `bson:"date" json:"date"` // "YYYY-MM-DD"
	WorkTitle       string    `bson:"workTitle" json:"workTitle"`
	WorkDescription string    `bson:"workDescription,omitempty" json:"workDescription,omitempty"`
	StartTime       string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime         string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	DurationHours   float64   `bson:"durationHours" json:"durationHours"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
}

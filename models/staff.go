package models

import "time"

// Staff is the operational-identity record for an inspector, distinct from
// the scheduling identity. Work allocations are posted against staff IDs.
type Staff struct {
	ID          string    `bson:"id" json:"id"`
	DisplayName string    `bson:"displayName" json:"displayName"`
	Email       string    `bson:"email" json:"email"`
	Role        string    `bson:"role,omitempty" json:"role,omitempty"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

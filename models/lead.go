package models

import "time"

// Lead is an inspection inquiry as stored in the record store.
type Lead struct {
	ID            string    `bson:"id" json:"id"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	Email         string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address       string    `bson:"address,omitempty" json:"address,omitempty"`
	City          string    `bson:"city,omitempty" json:"city,omitempty"`
	PostalCode    string    `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Source        string    `bson:"source,omitempty" json:"source,omitempty"`
	Status        string    `bson:"status,omitempty" json:"status,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	PreferredDate string    `bson:"preferredDate,omitempty" json:"preferredDate,omitempty"` // "YYYY-MM-DD"
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// LeadPatch carries locally edited lead fields. Nil fields are absent edits
// and never clobber the stored value when merged over an existing lead.
type LeadPatch struct {
	CustomerName  *string `json:"customerName,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	City          *string `json:"city,omitempty"`
	PostalCode    *string `json:"postalCode,omitempty"`
	Source        *string `json:"source,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	PreferredDate *string `json:"preferredDate,omitempty"`
}

// Apply merges the patch onto a lead, local edits winning over stored fields.
func (p LeadPatch) Apply(lead *Lead) {
	if p.CustomerName != nil {
		lead.CustomerName = *p.CustomerName
	}
	if p.Email != nil {
		lead.Email = *p.Email
	}
	if p.Phone != nil {
		lead.Phone = *p.Phone
	}
	if p.Address != nil {
		lead.Address = *p.Address
	}
	if p.City != nil {
		lead.City = *p.City
	}
	if p.PostalCode != nil {
		lead.PostalCode = *p.PostalCode
	}
	if p.Source != nil {
		lead.Source = *p.Source
	}
	if p.Status != nil {
		lead.Status = *p.Status
	}
	if p.Notes != nil {
		lead.Notes = *p.Notes
	}
	if p.PreferredDate != nil {
		lead.PreferredDate = *p.PreferredDate
	}
}

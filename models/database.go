package models

import "time"

// Database is a named resource owned by exactly one BusinessClient and
// attributed to the user who created it.
type Database struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnedBy     int64     `json:"owned_by"`
	CreatedBy   int64     `json:"created_by"`
	DateCreated time.Time `json:"date_created"`
}

// TableName returns the name of the database table
// associated with the Database model.
func (d Database) TableName() string {
	return "databases"
}

// DatabaseInput carries writable database attributes decoded from a request.
// CreatedBy is never accepted from the body; it is taken from the caller.
type DatabaseInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	OwnedBy     *int64  `json:"owned_by,omitempty"`
}

// Apply copies every provided field of in onto d.
func (in DatabaseInput) Apply(d *Database) {
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.OwnedBy != nil {
		d.OwnedBy = *in.OwnedBy
	}
}

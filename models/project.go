package models

import "time"

// Project is a named unit of work that belongs to one Database and one
// BusinessClient. The client link is stored independently of the
// database's owner and is not cross-checked.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Database    int64     `json:"database"`
	Client      int64     `json:"client"`
	CreatedBy   int64     `json:"created_by"`
	DateCreated time.Time `json:"date_created"`
}

// TableName returns the name of the database table
// associated with the Project model.
func (p Project) TableName() string {
	return "projects"
}

// ProjectInput carries writable project attributes decoded from a request.
type ProjectInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Database    *int64  `json:"database,omitempty"`
	Client      *int64  `json:"client,omitempty"`
}

// Apply copies every provided field of in onto p.
func (in ProjectInput) Apply(p *Project) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Database != nil {
		p.Database = *in.Database
	}
	if in.Client != nil {
		p.Client = *in.Client
	}
}

package models

import "time"

// BusinessClient is a named tenant that owns databases and projects.
type BusinessClient struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"date_created"`
}

// TableName returns the name of the database table
// associated with the BusinessClient model.
func (c BusinessClient) TableName() string {
	return "business_clients"
}

// ClientView is the rendered form of a BusinessClient. It carries exactly
// the name and creation date, nothing else.
type ClientView struct {
	Name        string    `json:"name"`
	DateCreated time.Time `json:"date_created"`
}

// View renders c for API responses.
func (c BusinessClient) View() ClientView {
	return ClientView{Name: c.Name, DateCreated: c.DateCreated}
}

// ClientViews renders every client with [BusinessClient.View].
func ClientViews(clients []BusinessClient) []ClientView {
	views := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		views = append(views, c.View())
	}
	return views
}

// ClientInput carries writable client attributes decoded from a request.
type ClientInput struct {
	Name *string `json:"name,omitempty"`
}

// Apply copies every provided field of in onto c.
func (in ClientInput) Apply(c *BusinessClient) {
	if in.Name != nil {
		c.Name = *in.Name
	}
}

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	// Detail is a human-readable description of the failure.
	Detail string `json:"detail"`

	// Errors optionally maps request field names to validation messages.
	Errors map[string]string `json:"errors,omitempty"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

package model

import "time"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// MessageResponse is a generic success body (delete favorite, record view).
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

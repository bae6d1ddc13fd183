package server

import (
	"time"

	"github.com/rezonia/intrari-furnizori/internal/model"
	"github.com/rezonia/intrari-furnizori/internal/report"
)

// AcceptResponse is the response to an accepted submission
type AcceptResponse struct {
	Result    string `json:"result"`
	Documente int    `json:"documente"`
	RequestID string `json:"request_id"`
}

// ValidationResponse is the response for validate endpoint
type ValidationResponse struct {
	Valid   bool            `json:"valid"`
	Summary *report.Summary `json:"summary,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error     string   `json:"error"`
	Details   string   `json:"details,omitempty"`
	Field     string   `json:"field,omitempty"`
	Accepted  []string `json:"accepted,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// Received is one accepted batch
type Received struct {
	RequestID  string                 `json:"request_id"`
	ReceivedAt time.Time              `json:"received_at"`
	Summary    report.Summary         `json:"summary"`
	Batch      model.IntrareFurnizori `json:"batch"`
}

// ReceivedResponse lists accepted batches, newest first
type ReceivedResponse struct {
	Batches []Received `json:"batches"`
}

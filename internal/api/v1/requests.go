package v1

import (
	"fmt"
	"strings"
	"time"
)

// AddEventRequest is the body of POST /api/events/add.
type AddEventRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Validate checks the request and returns the parsed date.
func (r *AddEventRequest) Validate() (time.Time, error) {
	if strings.TrimSpace(r.Title) == "" {
		return time.Time{}, fmt.Errorf("title is required")
	}
	if r.Date == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	return ParseDate(r.Date)
}

// CompleteEventRequest is the body of POST /api/events/complete.
// Index is 1-based.
type CompleteEventRequest struct {
	Index *int `json:"index"`
}

// ActionResponse is returned by every mutating endpoint.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProcessResponse is returned by POST /api/events/process.
type ProcessResponse struct {
	Success bool   `json:"success"`
	Event   *Event `json:"event"`
}

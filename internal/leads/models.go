// internal/leads/models.go
package leads

import "quote-engine/internal/quote"

// Contact holds the submitter's contact details.
type Contact struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message,omitempty"`
}

// CreateInput is the request to record a quote lead.
type CreateInput struct {
	Contact       Contact                    `json:"contact"`
	Configuration quote.ProjectConfiguration `json:"configuration"`
}

// Lead is the persisted lead record.
type Lead struct {
	ID            string                     `json:"id"`
	Contact       Contact                    `json:"contact"`
	Configuration quote.ProjectConfiguration `json:"configuration"`
	Comparison    quote.ComparisonResult     `json:"comparison"`
	Score         int                        `json:"score"`
	Priority      string                     `json:"priority"`
	Status        string                     `json:"status"`
	CreatedAt     string                     `json:"createdAt"` // ISO 8601
}

// Priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Statuses
const (
	StatusSubmitted = "submitted"
)

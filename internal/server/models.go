// internal/server/models.go
package server

import (
	"quote-engine/internal/leads"
	"quote-engine/internal/quote"
)

// QuoteRequest is the full submission from the configurator wizard.
type QuoteRequest struct {
	CurrentStep   int                    `json:"currentStep,omitempty"`
	Contact       leads.Contact          `json:"contact"`
	Configuration quote.RawConfiguration `json:"configuration"`
}

// PreviewRequest carries only the configuration for a non-persisting quote.
type PreviewRequest struct {
	CurrentStep   int                    `json:"currentStep,omitempty"`
	Configuration quote.RawConfiguration `json:"configuration"`
}

// PreviewResponse is the live quote shown while the wizard is in progress.
type PreviewResponse struct {
	Comparison quote.ComparisonResult `json:"comparison"`
	Score      int                    `json:"score"`
}

// ProfileView is the public subset of a provider profile.
type ProfileView struct {
	Provider  string  `json:"provider"`
	DayRate   int     `json:"dayRate"`
	SpreadPct float64 `json:"spreadPct"`
	MinWeeks  float64 `json:"minWeeks"`
}

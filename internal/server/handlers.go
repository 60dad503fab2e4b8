// internal/server/handlers.go
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"quote-engine/internal/common/metrics"
	"quote-engine/internal/common/validation"
	"quote-engine/internal/leads"
	"quote-engine/internal/quote"
)

// ==========================
// Response envelope
// ==========================

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

type apiError struct {
	Code    string                       `json:"code"`
	Message string                       `json:"message"`
	Fields  []validation.ValidationError `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message},
	})
}

func respondFieldErrors(w http.ResponseWriter, status int, code, message string, fields []validation.ValidationError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message, Fields: fields},
	})
}

// ==========================
// Quote handlers
// ==========================

// handleCreateQuote validates a full submission, runs the comparison, and
// persists the lead. Shape failures are 400, domain failures 422.
func (s *Server) handleCreateQuote(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	doc, ok := s.decodeDocument(w, r, quoteRequestSchema)
	if !ok {
		s.recordQuote(r.Context(), start, "malformed")
		return
	}

	var req QuoteRequest
	if !s.bindDocument(w, doc, &req) {
		s.recordQuote(r.Context(), start, "malformed")
		return
	}

	cfg, validationErrs := quote.Validate(req.Configuration)
	if len(validationErrs) > 0 {
		for _, ve := range validationErrs {
			metrics.ValidationFailures.WithLabelValues(ve.Field).Inc()
		}
		respondFieldErrors(w, http.StatusUnprocessableEntity, "CONFIGURATION_INVALID",
			"project configuration failed validation", validationErrs)
		s.recordQuote(r.Context(), start, "invalid")
		return
	}

	lead, err := s.leadService.Create(r.Context(), &leads.CreateInput{
		Contact:       req.Contact,
		Configuration: cfg,
	})
	if err != nil {
		stdErr, status := s.errHandler.Handle("create_quote", err)
		respondError(w, status, string(stdErr.Code), stdErr.Message)
		s.recordQuote(r.Context(), start, "failed")
		return
	}

	respondJSON(w, http.StatusCreated, lead)
	s.recordQuote(r.Context(), start, "created")
}

func (s *Server) recordQuote(ctx context.Context, start time.Time, status string) {
	if s.observer == nil {
		return
	}
	s.observer.RecordQuoteProcessed(ctx, status)
	s.observer.RecordQuoteDuration(ctx, time.Since(start), status)
}

// handlePreviewQuote runs the comparison without persisting anything. The
// marketing site calls this on every wizard step change.
func (s *Server) handlePreviewQuote(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.decodeDocument(w, r, previewRequestSchema)
	if !ok {
		return
	}

	var req PreviewRequest
	if !s.bindDocument(w, doc, &req) {
		return
	}

	cfg, validationErrs := quote.Validate(req.Configuration)
	if len(validationErrs) > 0 {
		for _, ve := range validationErrs {
			metrics.ValidationFailures.WithLabelValues(ve.Field).Inc()
		}
		respondFieldErrors(w, http.StatusUnprocessableEntity, "CONFIGURATION_INVALID",
			"project configuration failed validation", validationErrs)
		return
	}

	comparison := quote.Compare(cfg)
	score := quote.Score(cfg, comparison)
	metrics.QuotesCalculated.WithLabelValues(cfg.ProjectType).Inc()

	respondJSON(w, http.StatusOK, PreviewResponse{
		Comparison: comparison,
		Score:      score,
	})
}

// handleListProfiles exposes the static provider profiles used on the
// comparison page.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles := quote.Profiles()

	views := make([]ProfileView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, ProfileView{
			Provider:  p.Provider,
			DayRate:   p.DayRate,
			SpreadPct: p.SpreadPct,
			MinWeeks:  p.MinWeeks,
		})
	}

	respondJSON(w, http.StatusOK, views)
}

// decodeDocument reads the request body as a generic document and runs the
// structural shape check. It writes the error response itself on failure.
func (s *Server) decodeDocument(w http.ResponseWriter, r *http.Request, schema string) (map[string]interface{}, bool) {
	var doc map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		respondError(w, http.StatusBadRequest, "REQUEST_MALFORMED", "request body must be a JSON object")
		return nil, false
	}

	result, err := validation.CheckShape(doc, schema)
	if err != nil {
		s.logger.Error("shape check failed", map[string]interface{}{"error": err.Error()})
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "request could not be validated")
		return nil, false
	}
	if !result.Valid {
		respondFieldErrors(w, http.StatusBadRequest, "REQUEST_MALFORMED",
			"request body has an invalid shape", result.Errors)
		return nil, false
	}

	return doc, true
}

// bindDocument re-marshals the already shape-checked document into the typed
// request struct.
func (s *Server) bindDocument(w http.ResponseWriter, doc map[string]interface{}, target interface{}) bool {
	raw, err := json.Marshal(doc)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "request could not be processed")
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		respondError(w, http.StatusBadRequest, "REQUEST_MALFORMED", "request body does not match the expected structure")
		return false
	}
	return true
}

// ==========================
// Health handlers
// ==========================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// handleReady pings the backing stores registered at construction. A single
// failing dependency makes the whole server not ready.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	for _, p := range s.readiness {
		if err := p.Ping(ctx); err != nil {
			s.logger.Warn("readiness check failed", map[string]interface{}{"error": err.Error()})
			respondError(w, http.StatusServiceUnavailable, "NOT_READY", "a backing service is unreachable")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ready",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"
)

// Logger is the minimal logging surface the handler needs.
type Logger interface {
	Error(msg string, fields map[string]interface{})
}

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeConfigurationInvalid:     http.StatusUnprocessableEntity,
	ErrCodeRequestMalformed:         http.StatusBadRequest,
	ErrCodeEstimationFailed:         http.StatusUnprocessableEntity,
	ErrCodeDatabaseConnectionFailed: http.StatusServiceUnavailable,
	ErrCodeQueryExecutionFailed:     http.StatusInternalServerError,
	ErrCodeDatabaseInsertFailed:     http.StatusInternalServerError,
	ErrCodeDuplicateLead:            http.StatusConflict,
	ErrCodeCacheUnavailable:         http.StatusServiceUnavailable,
	ErrCodeSearchIndexFailed:        http.StatusInternalServerError,
	ErrCodeNotificationSendFailed:   http.StatusBadGateway,
}

// HTTPStatus returns the status code for an error code, defaulting to 500.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Handler normalizes and logs application errors at service boundaries.
type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Normalize ensures we always have a StandardError.
func (h *Handler) Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// Handle normalizes the error, logs it, and returns it with its HTTP status.
func (h *Handler) Handle(operation string, err error) (*StandardError, int) {
	stdErr := h.Normalize(err)

	h.logger.Error("Operation failed", map[string]interface{}{
		"operation":     operation,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	})

	return stdErr, HTTPStatus(stdErr.Code)
}

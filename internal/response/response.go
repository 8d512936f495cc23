package response

import (
	"context"
	"encoding/json"
	"net/http"

	"weplanet/internal/contextutils"
	"weplanet/internal/services"

	"go.uber.org/zap"
)

// ===============================
// RESPONSE TYPES
// ===============================

// APIResponse represents a standardized API response
type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"request_id,omitempty"`
}

// ErrorDetail represents error information in API responses
type ErrorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ===============================
// RESPONSE BUILDER
// ===============================

// Builder writes API responses and translates service errors to transport
// status codes. Error-kind mapping happens only here, never in services.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a new response builder
func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{logger: logger}
}

// WriteSuccess writes a 200 response with the given payload.
func (b *Builder) WriteSuccess(w http.ResponseWriter, r *http.Request, data interface{}) {
	b.writeJSON(w, r, &APIResponse{
		Success:   true,
		Data:      data,
		RequestID: contextutils.GetRequestID(r.Context()),
	}, http.StatusOK)
}

// WriteCreated writes a 201 response with the given payload.
func (b *Builder) WriteCreated(w http.ResponseWriter, r *http.Request, data interface{}) {
	b.writeJSON(w, r, &APIResponse{
		Success:   true,
		Data:      data,
		RequestID: contextutils.GetRequestID(r.Context()),
	}, http.StatusCreated)
}

// WriteError maps a service error to its status code and writes it.
// Internal causes are logged but never exposed to the client.
func (b *Builder) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{
		Type:    "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	}

	if svcErr, ok := services.AsServiceError(err); ok {
		status = svcErr.GetStatusCode()
		detail.Type = svcErr.Type
		detail.Code = svcErr.Code
		if status < http.StatusInternalServerError {
			detail.Message = svcErr.Message
		}
	}

	b.logError(r.Context(), err, status)
	b.writeJSON(w, r, &APIResponse{
		Success:   false,
		Error:     detail,
		RequestID: contextutils.GetRequestID(r.Context()),
	}, status)
}

// WriteUnauthorized writes a 401 response.
func (b *Builder) WriteUnauthorized(w http.ResponseWriter, r *http.Request, message string) {
	b.WriteError(w, r, services.NewUnauthorizedError(message))
}

func (b *Builder) writeJSON(w http.ResponseWriter, r *http.Request, resp *APIResponse, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		b.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (b *Builder) logError(ctx context.Context, err error, status int) {
	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", status),
		zap.String("request_id", contextutils.GetRequestID(ctx)),
	}
	if status >= http.StatusInternalServerError {
		b.logger.Error("Request failed", fields...)
	} else {
		b.logger.Info("Request rejected", fields...)
	}
}

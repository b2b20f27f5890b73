package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/schema"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/server"
	"github.com/syntrixbase/vidlist/pkg/model"
)

// Handler serves the content listing API.
type Handler struct {
	listing listing.Service
	decoder *schema.Decoder
}

// NewHandler creates a Handler over the given listing service.
func NewHandler(svc listing.Service) *Handler {
	if svc == nil {
		panic("listing service cannot be nil")
	}

	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	return &Handler{
		listing: svc,
		decoder: decoder,
	}
}

// Default request timeouts
const (
	DefaultRequestTimeout = 30 * time.Second
	HealthRequestTimeout  = 5 * time.Second
)

// APIError represents a structured error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// writeError writes a structured JSON error response
func writeError(w http.ResponseWriter, status int, code string, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(APIError{Code: code, Message: message}); err != nil {
		slog.Warn("Failed to encode error response", "error", err)
	}
}

// writeInternalError writes an internal error response, but first checks if the error
// is due to client cancellation (returns 499 instead of 500).
func writeInternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	if model.IsCanceled(err) {
		w.WriteHeader(server.StatusClientClosedRequest)
		return
	}
	slog.Error(message, "error", err, "request_id", server.GetRequestID(r.Context()))
	writeError(w, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// writeJSON writes a JSON response with proper error handling
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("Failed to encode JSON response", "error", err)
	}
}

// RegisterRoutes registers the listing and health routes.
// Request ID, recovery, and logging are handled by the server middleware.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /api/v1/videos", server.TimeoutMiddleware(DefaultRequestTimeout)(http.HandlerFunc(h.handleListVideos)))
	mux.Handle("GET /health", server.TimeoutMiddleware(HealthRequestTimeout)(http.HandlerFunc(h.handleHealth)))
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/games-catalog-service/internal/http/middleware"
	"github.com/preston-bernstein/games-catalog-service/internal/http/requestutil"
	"github.com/preston-bernstein/games-catalog-service/internal/logging"
)

type errorResponse struct {
	Error     string   `json:"error"`
	RequestID string   `json:"requestId,omitempty"`
	Fields    []string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorResponse{Error: message, RequestID: requestID(r)}, logger)
}

func writeFieldError(w http.ResponseWriter, r *http.Request, status int, message string, fields []string, logger *slog.Logger) {
	writeJSON(w, status, errorResponse{Error: message, RequestID: requestID(r), Fields: fields}, logger)
}

func requestID(r *http.Request) string {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(requestutil.HeaderRequestID)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/games-catalog-service/internal/app/games"
	domaingames "github.com/preston-bernstein/games-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/games-catalog-service/internal/logging"
	"github.com/preston-bernstein/games-catalog-service/internal/store"
)

// IDParam is the route parameter holding a game id.
const IDParam = "id"

const maxBodyBytes = 1 << 20

// Handler wires HTTP routes to the games service.
type Handler struct {
	svc    *games.Service
	logger *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(svc *games.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// Root answers the root liveness check.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// ListGames returns every game in insertion order.
func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Games(), h.logger)
}

// GetGame returns a single game. Unknown and non-numeric ids are both 404.
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}

	game, err := h.svc.GameByID(id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, game, h.logger)
}

// CreateGame validates the body, stores the game, and answers 201 with the new id.
func (h *Handler) CreateGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)

	var in domaingames.NewGame
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, "invalid JSON body", h.logger)
		return
	}

	id, err := h.svc.CreateGame(in)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	logging.Info(logger, "game created", logging.FieldGameID, id, logging.FieldTitle, *in.Title)
	writeJSON(w, http.StatusCreated, id, h.logger)
}

// DeleteGame removes a game and answers with its id.
func (h *Handler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
		return
	}

	deleted, err := h.svc.DeleteGame(id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	logging.Info(loggerFromContext(r, h.logger), "game deleted", logging.FieldGameID, deleted)
	writeJSON(w, http.StatusOK, deleted, h.logger)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with an unsupported verb.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// writeServiceError maps service outcomes onto status codes.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	var verr *domaingames.ValidationError
	switch {
	case errors.As(err, &verr):
		logging.Debug(logger, "create rejected", "error", err)
		writeFieldError(w, r, http.StatusUnprocessableEntity, "missing required fields", verr.Fields, h.logger)
	case errors.Is(err, store.ErrDuplicateTitle):
		logging.Debug(logger, "create rejected", "error", err)
		writeError(w, r, http.StatusMethodNotAllowed, "game title already exists", h.logger)
	case errors.Is(err, store.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "game not found", h.logger)
	default:
		logging.Error(logger, "unexpected service error", err)
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
	}
}

func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, IDParam))
	if err != nil {
		return 0, false
	}
	return id, true
}

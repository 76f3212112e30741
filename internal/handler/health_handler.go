package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IndexResponse is returned from the service root.
type IndexResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler serves the root info and health endpoints.
type HealthHandler struct {
	db     Pinger
	logger zerolog.Logger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(db Pinger, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger.With().Str("handler", "health").Logger(),
	}
}

// Index handles GET / requests.
func (h *HealthHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, IndexResponse{Message: "Products CRUD API"})
}

// Health handles GET /health requests by pinging the database.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error().Err(err).Msg("database health check failed")
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "unhealthy"})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

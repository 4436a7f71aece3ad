package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/apdd/apdd-server/internal/logger"
)

// Pinger checks store reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles the liveness probe.
type Health struct {
	db     Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(db Pinger, logger *logger.Logger) *Health {
	return &Health{
		db:     db,
		logger: logger,
	}
}

// Check verifies store reachability and reports the server time.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.logger.Error("Health handler: database unreachable", "error", err.Error())
		respondError(w, http.StatusInternalServerError, "Banco indisponível")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"ok":        true,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

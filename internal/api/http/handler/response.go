package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/apdd/apdd-server/internal/model"
)

// Every response carries an "ok" flag plus either a payload or an error
// message string.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{"ok": false, "error": message})
}

// errorMessages carries the user-facing message per error kind for one
// endpoint. Store failures never leak internal detail to the caller.
type errorMessages struct {
	invalid  string
	notFound string
	store    string
}

func respondServiceError(w http.ResponseWriter, err error, msgs errorMessages) {
	switch {
	case errors.Is(err, model.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, msgs.invalid)
	case errors.Is(err, model.ErrNotFound):
		respondError(w, http.StatusNotFound, msgs.notFound)
	case errors.Is(err, model.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "Não autorizado")
	default:
		// Store failures (model.ErrStoreUnavailable) land here.
		respondError(w, http.StatusInternalServerError, msgs.store)
	}
}

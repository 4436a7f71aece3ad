package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/apdd/apdd-server/internal/logger"
)

// AuthService defines login and logout operations.
type AuthService interface {
	Login(username, password string) (string, error)
	Logout(token string)
}

// Auth handles the login and logout endpoints.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a session token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Requisição inválida")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Warn("Auth handler: login failed", "username", req.Username)
		respondError(w, http.StatusUnauthorized, "Credenciais inválidas")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"ok": true, "token": token})
}

// Logout revokes the presented session token.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	token := BearerToken(r)
	h.authService.Logout(token)

	respondJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// BearerToken extracts the token from the Authorization header, empty if
// absent.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

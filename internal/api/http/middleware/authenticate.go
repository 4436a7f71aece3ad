package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/apdd/apdd-server/internal/logger"
)

// TokenValidator checks session token membership.
type TokenValidator interface {
	IsValid(token string) bool
}

// Authenticate rejects requests whose bearer token is missing or was never
// issued. With query token support enabled it also accepts ?token=, which
// lets the browser download the CSV export directly.
type Authenticate struct {
	sessions        TokenValidator
	allowQueryToken bool
	logger          *logger.Logger
}

// NewAuthenticate creates an Authenticate middleware reading the
// Authorization header only.
func NewAuthenticate(sessions TokenValidator, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, logger: logger}
}

// NewAuthenticateWithQueryToken creates an Authenticate middleware that also
// accepts the token as a query string parameter.
func NewAuthenticateWithQueryToken(sessions TokenValidator, logger *logger.Logger) *Authenticate {
	return &Authenticate{sessions: sessions, allowQueryToken: true, logger: logger}
}

// Handle validates the session token before passing the request on. There is
// no partial effect on rejection: the protected handler never runs.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if token == "" && m.allowQueryToken {
			token = r.URL.Query().Get("token")
		}

		if token == "" || !m.sessions.IsValid(token) {
			m.logger.Warn("rejected unauthenticated request", "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "Não autorizado"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

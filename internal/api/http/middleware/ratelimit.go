package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimit throttles requests per client address. Used on the login route
// to slow down credential guessing: 5 attempts per 15 minutes per IP.
type RateLimit struct {
	mu       sync.Mutex
	visitors map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	message  string
}

// NewLoginRateLimit creates the limiter applied to the login route.
func NewLoginRateLimit() *RateLimit {
	window := 15 * time.Minute
	attempts := 5
	return &RateLimit{
		visitors: make(map[string]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(attempts)),
		burst:    attempts,
		message:  "Muitas tentativas de login. Tente novamente em 15 minutos.",
	}
}

func (m *RateLimit) limiterFor(addr string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	lim, ok := m.visitors[addr]
	if !ok {
		lim = rate.NewLimiter(m.limit, m.burst)
		m.visitors[addr] = lim
	}
	return lim
}

// Handle rejects requests exceeding the per-address budget with 429.
func (m *RateLimit) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		addr := r.RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}

		if !m.limiterFor(addr).Allow() {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": m.message})
			return
		}

		next.ServeHTTP(w, r)
	})
}

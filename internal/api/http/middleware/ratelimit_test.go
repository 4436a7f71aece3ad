package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimit_Handle(t *testing.T) {
	t.Run("allows burst then rejects", func(t *testing.T) {
		m := NewLoginRateLimit()
		handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			assert.Equal(t, http.StatusOK, res.Code)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusTooManyRequests, res.Code)
		assert.JSONEq(t, `{"ok":false,"error":"Muitas tentativas de login. Tente novamente em 15 minutos."}`, res.Body.String())
	})

	t.Run("addresses are throttled independently", func(t *testing.T) {
		m := NewLoginRateLimit()
		handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for i := 0; i < 6; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "192.0.2.1:1234"
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "198.51.100.2:1234"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("different ports share one address budget", func(t *testing.T) {
		m := NewLoginRateLimit()
		handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = "192.0.2.1:1000"
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, req)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "192.0.2.1:2000"
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusTooManyRequests, res.Code)
	})
}

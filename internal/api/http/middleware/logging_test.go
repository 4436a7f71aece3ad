package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apdd/apdd-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	logger := testutil.MakeNoopLogger()

	t.Run("passes request through", func(t *testing.T) {
		m := NewLogging(logger)
		handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("done"))
		}))

		req := httptest.NewRequest(http.MethodPost, "/api/lead", nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusCreated, res.Code)
		assert.Equal(t, "done", res.Body.String())
	})

	t.Run("records default status when handler never writes header", func(t *testing.T) {
		m := NewLogging(logger)

		var recorded *statusRecorder
		handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorded = w.(*statusRecorder)
		}))

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, recorded.status)
	})
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	h := &Handler{}

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestReadyHandler(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		h := &Handler{health: &MockPinger{}}

		rr := httptest.NewRecorder()
		h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("database unreachable", func(t *testing.T) {
		h := &Handler{health: &MockPinger{
			MockPing: func(ctx context.Context) error { return errors.New("connection refused") },
		}}

		rr := httptest.NewRecorder()
		h.Ready(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	})
}

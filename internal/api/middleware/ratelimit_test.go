package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterRejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	h := rl.Handler(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/topics", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", w.Header().Get("Retry-After"))
			assert.JSONEq(t, `{"msg":"Too many requests"}`, w.Body.String())
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterKeysByClientIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	h := rl.Handler(okHandler())

	for _, addr := range []string{"203.0.113.7:1", "203.0.113.8:1", "203.0.113.7:2"} {
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		if addr == "203.0.113.7:2" {
			assert.Equal(t, http.StatusTooManyRequests, w.Code, "same IP on a new port shares the bucket")
		} else {
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}
}

func TestRateLimiterEvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	rl.getVisitor("idle")
	current = current.Add(rl.ttl)
	rl.lookups = 4999
	rl.getVisitor("active")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "idle")
	assert.Contains(t, rl.visitors, "active")
}

func TestNewRateLimiterCoercesBurst(t *testing.T) {
	rl := NewRateLimiter(5, 0)
	assert.Equal(t, 1, rl.burst)
}

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WellVis/WV-Backend/internal/middleware"
)

// call wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting an Origin header, and returns the recorded response.
func call(t *testing.T, mw func(http.Handler) http.Handler, method, origin string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(method, "/test", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestCORSMiddleware_AllowedOrigin verifies that an allow-listed origin is
// echoed back with the CORS headers.
func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	mw := middleware.CORSMiddleware([]string{"http://localhost:5173"})

	rec := call(t, mw, http.MethodGet, "http://localhost:5173")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

// TestCORSMiddleware_DisallowedOrigin verifies that an unknown origin gets no
// Access-Control-Allow-Origin header but the request still reaches the handler.
func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	mw := middleware.CORSMiddleware([]string{"http://localhost:5173"})

	rec := call(t, mw, http.MethodGet, "https://evil.example.com")

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no CORS header, got %q", got)
	}
}

// TestCORSMiddleware_Preflight verifies that OPTIONS requests short-circuit
// with 204 and never reach the inner handler.
func TestCORSMiddleware_Preflight(t *testing.T) {
	mw := middleware.CORSMiddleware([]string{"http://localhost:5173"})

	rec := call(t, mw, http.MethodOptions, "http://localhost:5173")

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

// TestRateLimitMiddleware_Burst verifies that requests within the burst pass
// and the next one is rejected with 429.
func TestRateLimitMiddleware_Burst(t *testing.T) {
	mw := middleware.RateLimitMiddleware(0.001, 2)

	for i := 0; i < 2; i++ {
		rec := call(t, mw, http.MethodGet, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := call(t, mw, http.MethodGet, "")
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429")
	}
}

package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	l := New(2, time.Minute)

	if !l.Allow("a") || !l.Allow("a") {
		t.Fatal("first two requests should be allowed")
	}
	if l.Allow("a") {
		t.Error("third request should be limited")
	}
	if !l.Allow("b") {
		t.Error("other keys have their own window")
	}
	if got := l.Remaining("a"); got != 0 {
		t.Errorf("Remaining(a) = %d, want 0", got)
	}

	l.Reset("a")
	if !l.Allow("a") {
		t.Error("Reset should clear the window")
	}
}

func TestLimiter_Refills(t *testing.T) {
	l := New(1, 50*time.Millisecond)

	if !l.Allow("a") {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("a") {
		t.Fatal("second request should be limited")
	}
	time.Sleep(70 * time.Millisecond)
	if !l.Allow("a") {
		t.Error("bucket should refill after the window")
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5555"
	if got := ClientIP(req); got != "10.0.0.1" {
		t.Errorf("ClientIP() = %q, want 10.0.0.1", got)
	}

	req.Header.Set("X-Real-IP", "10.0.0.2")
	if got := ClientIP(req); got != "10.0.0.2" {
		t.Errorf("ClientIP() = %q, want 10.0.0.2", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.3")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Errorf("ClientIP() = %q, want 203.0.113.7", got)
	}
}

func TestMiddleware(t *testing.T) {
	limited := 0
	h := Middleware(New(1, time.Minute), func(*http.Request, string) { limited++ })(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first request: status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q, want 60", rec.Header().Get("Retry-After"))
	}
	if limited != 1 {
		t.Errorf("onLimited called %d times, want 1", limited)
	}
}

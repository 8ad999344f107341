package errors_test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/eduardgagite/portfolio/internal/app/features/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"go.uber.org/zap"
)

// render runs fn, tolerating the panic an unbooted template engine causes.
func render(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			// Template rendering may panic in tests - that's expected
		}
	}()
	fn()
}

func TestNotFound_Status(t *testing.T) {
	h := uierrors.NewHandler(seo.NewSite("", ""))
	rec := httptest.NewRecorder()

	render(func() { h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil)) })

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLogUnavailable_Status(t *testing.T) {
	l := uierrors.NewErrorLogger(zap.NewNop(), seo.NewSite("", ""))
	rec := httptest.NewRecorder()

	render(func() {
		l.LogUnavailable(rec, httptest.NewRequest(http.MethodGet, "/materials", nil), "index failed", stderrors.New("boom"), "")
	})

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestLogBadRequest(t *testing.T) {
	l := uierrors.NewErrorLogger(zap.NewNop(), seo.NewSite("", ""))
	rec := httptest.NewRecorder()

	l.LogBadRequest(rec, httptest.NewRequest(http.MethodPost, "/materials/sidebar/toggle", nil), "bad form", stderrors.New("x"), "Invalid form data.")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

package health_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/features/health"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"go.uber.org/zap"
)

type stubSource struct {
	index []byte
	err   error
}

func (s stubSource) ReadIndex(ctx context.Context) ([]byte, error) { return s.index, s.err }

func (s stubSource) ReadContent(ctx context.Context, p string) ([]byte, error) {
	return nil, errors.New("unused")
}

func (s stubSource) String() string { return "stub" }

type response struct {
	Status    string `json:"status"`
	Catalog   string `json:"catalog"`
	Source    string `json:"source"`
	Materials int    `json:"materials"`
	Message   string `json:"message"`
	Error     string `json:"error"`
}

func serve(t *testing.T, src catalog.Source) (*httptest.ResponseRecorder, response) {
	t.Helper()
	handler := health.NewHandler(catalog.NewLoader(src, zap.NewNop()), zap.NewNop())

	rec := httptest.NewRecorder()
	health.Routes(handler).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, resp
}

func TestServe_IndexLoaded(t *testing.T) {
	index := `{"entries":[{"id":{"category":"redis","section":"basics","slug":"intro","lang":"ru"},"title":"Intro","category":"redis","categoryTitle":"Redis","section":"basics","sectionTitle":"Basics","path":"/content/materials/redis/basics/intro.ru.md","contentPath":"/materials-content/redis/basics/intro.ru.json"}]}`

	rec, resp := serve(t, stubSource{index: []byte(index)})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Status != "ok" {
		t.Errorf("status: got %q, want %q", resp.Status, "ok")
	}
	if resp.Catalog != "loaded" {
		t.Errorf("catalog: got %q, want %q", resp.Catalog, "loaded")
	}
	if resp.Source != "stub" {
		t.Errorf("source: got %q, want %q", resp.Source, "stub")
	}
	if resp.Materials != 1 {
		t.Errorf("materials: got %d, want 1", resp.Materials)
	}
}

func TestServe_IndexUnavailable(t *testing.T) {
	rec, resp := serve(t, stubSource{err: errors.New("connection refused")})

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if resp.Status != "error" {
		t.Errorf("status: got %q, want %q", resp.Status, "error")
	}
	if resp.Catalog != "unavailable" {
		t.Errorf("catalog: got %q, want %q", resp.Catalog, "unavailable")
	}
	if resp.Error == "" {
		t.Error("expected error detail in response")
	}
}

func TestServe_MalformedIndex(t *testing.T) {
	rec, _ := serve(t, stubSource{index: []byte(`{"entries": "nope"}`)})

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
}

// internal/app/features/materials/assets.go
package materials

import (
	"bytes"
	"net/http"
	"time"

	"github.com/eduardgagite/portfolio/internal/app/system/sitemap"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeHighlightCSS serves the stylesheet for syntax-highlighted code blocks.
func (h *Handler) ServeHighlightCSS(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Markdown.WriteCSS(&buf); err != nil {
		h.Log.Error("write highlight css", zap.Error(err))
		http.Error(w, "stylesheet unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(buf.Bytes())
}

// ServeSitemap serves /sitemap.xml built from the current index.
func (h *Handler) ServeSitemap(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "load index for sitemap")
	defer cancel()

	idx, err := h.Catalog.Index(ctx)
	if err != nil {
		h.Log.Error("sitemap: index unavailable", zap.Error(err))
		http.Error(w, "sitemap unavailable", http.StatusServiceUnavailable)
		return
	}

	out, err := sitemap.Generate(h.Site.BaseURL, idx.Entries, time.Now())
	if err != nil {
		h.Log.Error("sitemap: generate", zap.Error(err))
		http.Error(w, "sitemap unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write(out)
}

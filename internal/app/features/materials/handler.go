// internal/app/features/materials/handler.go
package materials

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	uierrors "github.com/eduardgagite/portfolio/internal/app/features/errors"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/markdown"
	"github.com/eduardgagite/portfolio/internal/app/system/matfilter"
	"github.com/eduardgagite/portfolio/internal/app/system/prefs"
	"github.com/eduardgagite/portfolio/internal/app/system/ratelimit"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// Handler owns the public materials pages: the landing, articles, the
// sidebar toggle and the generated assets (highlight CSS, sitemap).
//
// It is constructed once at startup in bootstrap, using the shared
// catalog loader, preferences manager and logger.
type Handler struct {
	Catalog  *catalog.Loader
	Prefs    *prefs.Manager
	Markdown *markdown.Renderer
	Site     seo.Site
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger

	// Toggles limits sidebar toggle posts per client, since each one
	// rewrites the preferences cookie.
	Toggles *ratelimit.Limiter
}

// NewHandler constructs a materials Handler.
func NewHandler(loader *catalog.Loader, pm *prefs.Manager, md *markdown.Renderer, site seo.Site, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog:  loader,
		Prefs:    pm,
		Markdown: md,
		Site:     site,
		ErrLog:   errLog,
		Log:      logger,
		Toggles:  ratelimit.New(120, time.Minute),
	}
}

// catalogView is everything a materials page needs from the catalog for
// one request.
type catalogView struct {
	Tree     *models.MaterialsTree // full tree in the page language
	Filtered *models.MaterialsTree // tree narrowed by Criteria
	Criteria matfilter.Criteria
	Options  matfilter.Options
}

// loadCatalog fetches the tree for lang and applies the request's filter
// criteria. Criteria naming a tag or level the catalog no longer offers are
// dropped first.
func (h *Handler) loadCatalog(ctx context.Context, r *http.Request, lang models.Lang) (catalogView, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), h.Log, "load materials tree")
	defer cancel()

	tree, err := h.Catalog.Tree(ctx, lang)
	if err != nil {
		return catalogView{}, err
	}

	opts := matfilter.DeriveOptions(tree)
	c := matfilter.FromValues(r.URL.Query()).Sanitize(opts)

	return catalogView{Tree: tree, Filtered: matfilter.Filter(tree, c), Criteria: c, Options: opts}, nil
}

// catalogFailed reports a tree load failure. A request the client already
// abandoned gets no page.
func (h *Handler) catalogFailed(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) && r.Context().Err() != nil {
		h.Log.Debug("client went away while loading materials", zap.String("path", r.URL.Path))
		return
	}
	h.ErrLog.LogUnavailable(w, r, "materials index load failed", err, "")
}

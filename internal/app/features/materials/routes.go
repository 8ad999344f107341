// internal/app/features/materials/routes.go
package materials

import (
	"net/http"

	"github.com/eduardgagite/portfolio/internal/app/system/ratelimit"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Routes mounts the materials pages under whatever base path the caller
// chooses (always "/materials" from bootstrap, since stored paths and
// generated links assume it).
//
// Example from bootstrap:
//
//	h := materials.NewHandler(loader, prefsMgr, md, site, errLog, logger)
//	r.Mount("/materials", materials.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// LANDING
	r.Get("/", h.ServeLanding)

	// SIDEBAR (no-JS expand/collapse)
	toggles := r
	if h.Toggles != nil {
		toggles = r.With(ratelimit.Middleware(h.Toggles, func(r *http.Request, ip string) {
			h.Log.Warn("sidebar toggle rate limited", zap.String("ip", ip))
		}))
	}
	toggles.Post("/sidebar/toggle", h.HandleSidebarToggle)

	// CATEGORY / SECTION / ARTICLE
	r.Get("/*", h.ServeArticle)

	return r
}

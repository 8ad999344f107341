// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"path/filepath"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	errorsfeature "github.com/eduardgagite/portfolio/internal/app/features/errors"
	healthfeature "github.com/eduardgagite/portfolio/internal/app/features/health"
	homefeature "github.com/eduardgagite/portfolio/internal/app/features/home"
	materialsfeature "github.com/eduardgagite/portfolio/internal/app/features/materials"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/markdown"
	"github.com/eduardgagite/portfolio/internal/app/system/prefs"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, catalog setup and any Startup hooks
// have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the catalog source and loader bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The portfolio boots the template engine, negotiates the page language for
// every request and mounts the home, materials and health features next to
// the static and generated artifacts.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Preferences cookie (sidebar, last article, language).
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	prefsMgr, err := prefs.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger.Named("prefs"))
	if err != nil {
		logger.Error("preferences manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	site := seo.NewSite(appCfg.BaseURL, appCfg.SiteAuthor)
	errLog := errorsfeature.NewErrorLogger(logger, site)
	md := markdown.New(appCfg.HighlightStyle)

	r := chi.NewRouter()

	// Language for every page: ?lang=, then the stored preference, then
	// Accept-Language, then the configured default.
	r.Use(i18n.Middleware(func(r *http.Request) models.Lang {
		return prefsMgr.Load(r).Lang
	}, appCfg.DefaultLang))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Loader, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.PublicDir))

	// Generated artifacts and the markdown sources their images live next to
	r.Get("/"+catalog.IndexFile, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(appCfg.PublicDir, catalog.IndexFile))
	})
	r.Handle("/materials-content/*", fileserver.Handler("/materials-content", filepath.Join(appCfg.PublicDir, "materials-content")))
	r.Handle("/content/materials/*", fileserver.Handler("/content/materials", appCfg.ContentDir))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.Loader, site, logger)
	r.Handle("/", homefeature.Routes(homeHandler))

	materialsHandler := materialsfeature.NewHandler(deps.Loader, prefsMgr, md, site, errLog, logger)
	r.Mount("/materials", materialsfeature.Routes(materialsHandler))
	r.Get("/assets/highlight.css", materialsHandler.ServeHighlightCSS)
	r.Get("/sitemap.xml", materialsHandler.ServeSitemap)

	// Error pages
	errorsHandler := errorsfeature.NewHandler(site)
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

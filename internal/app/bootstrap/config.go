// internal/app/bootstrap/config.go
package bootstrap

import (
	"net/url"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dalemusser/waffle/config"
	"github.com/eduardgagite/portfolio/internal/app/system/markdown"
	"github.com/eduardgagite/portfolio/internal/app/system/prefs"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// devSessionKey is the default signing key. It is refused in production.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for the portfolio.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: catalog_source, public_dir, etc.
//   - Environment variables: PORTFOLIO_CATALOG_SOURCE, PORTFOLIO_PUBLIC_DIR, etc.
//   - Command-line flags: --catalog_source, --public_dir, etc.
var appConfigKeys = []config.AppKey{
	// Materials catalog
	{Name: "catalog_source", Default: "file", Desc: "Where the materials index comes from: 'file' or 'http'"},
	{Name: "public_dir", Default: "public", Desc: "Directory with generated artifacts and static assets"},
	{Name: "content_dir", Default: "content/materials", Desc: "Markdown source tree served under /content/materials"},
	{Name: "catalog_base_url", Default: "", Desc: "Base URL serving materials-index.json (http source)"},
	{Name: "watch_index", Default: false, Desc: "Reload the catalog when the index file changes (file source)"},
	{Name: "content_timeout", Default: "10s", Desc: "Timeout for one index or content read (e.g., 5s, 1m)"},

	// Rendering
	{Name: "highlight_style", Default: markdown.DefaultStyle, Desc: "Chroma style for highlighted code"},

	// Site identity
	{Name: "base_url", Default: seo.DefaultBaseURL, Desc: "Absolute site URL used in canonical and Open Graph links"},
	{Name: "site_author", Default: seo.DefaultAuthor, Desc: "Author name for article metadata"},
	{Name: "default_lang", Default: string(models.DefaultLang), Desc: "Fallback display language: 'ru' or 'en'"},

	// Preferences cookie
	{Name: "session_key", Default: devSessionKey, Desc: "Preferences cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: prefs.DefaultCookieName, Desc: "Preferences cookie name"},
	{Name: "session_domain", Default: "", Desc: "Preferences cookie domain (blank means current host)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PORTFOLIO_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PORTFOLIO", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		// Catalog
		CatalogSource:  appValues.String("catalog_source"),
		PublicDir:      appValues.String("public_dir"),
		ContentDir:     appValues.String("content_dir"),
		CatalogBaseURL: appValues.String("catalog_base_url"),
		WatchIndex:     appValues.Bool("watch_index"),
		ContentTimeout: appValues.Duration("content_timeout", timeouts.DefaultFetch),

		// Rendering
		HighlightStyle: appValues.String("highlight_style"),

		// Site
		BaseURL:    appValues.String("base_url"),
		SiteAuthor: appValues.String("site_author"),

		// Preferences cookie
		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
	}

	lang, ok := models.ParseLang(appValues.String("default_lang"))
	if !ok {
		logger.Warn("unsupported default_lang; using default",
			zap.String("default_lang", appValues.String("default_lang")),
			zap.String("using", string(models.DefaultLang)))
		lang = models.DefaultLang
	}
	appCfg.DefaultLang = lang

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The catalog source must be usable and production must not run with the
// development cookie key.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	switch appCfg.CatalogSource {
	case "file":
		if appCfg.PublicDir == "" {
			return errors.New("catalog_source=file requires public_dir")
		}
	case "http":
		u, err := url.Parse(appCfg.CatalogBaseURL)
		if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
			return errors.WithHint(
				errors.Newf("invalid catalog_base_url %q", appCfg.CatalogBaseURL),
				"catalog_source=http needs an absolute http(s) URL, e.g. https://eduardgagite.github.io")
		}
		if appCfg.WatchIndex {
			logger.Warn("watch_index has no effect with catalog_source=http")
		}
	default:
		return errors.Newf("unknown catalog_source %q (want 'file' or 'http')", appCfg.CatalogSource)
	}

	if appCfg.ContentTimeout < 0 || (appCfg.ContentTimeout > 0 && appCfg.ContentTimeout < 100*time.Millisecond) {
		return errors.Newf("content_timeout %s is too short", appCfg.ContentTimeout)
	}

	if appCfg.SessionKey == "" {
		return errors.New("session_key must not be empty")
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.SessionKey == devSessionKey {
		return errors.WithHint(errors.New("refusing to run in prod with the development session_key"),
			"set PORTFOLIO_SESSION_KEY to at least 32 random characters")
	}

	return nil
}

// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where the portfolio keeps everything about where the
// materials catalog comes from and how pages describe themselves.
type AppConfig struct {
	// Materials catalog
	CatalogSource  string // "file" (read PublicDir) or "http" (fetch CatalogBaseURL)
	PublicDir      string // generated artifacts and static assets (e.g., "public")
	ContentDir     string // markdown sources, served for article images (e.g., "content/materials")
	CatalogBaseURL string // static host serving materials-index.json (http source only)
	WatchIndex     bool   // reload the catalog when the index file changes (file source only)
	ContentTimeout time.Duration

	// Rendering
	HighlightStyle string // chroma style name for code blocks

	// Site identity for SEO
	BaseURL     string // absolute site URL, e.g. "https://eduardgagite.github.io"
	SiteAuthor  string
	DefaultLang models.Lang

	// Preferences cookie (sidebar state, last article, language)
	SessionKey    string // Secret key for signing the cookie (must be strong in production)
	SessionName   string // Cookie name (default: portfolio-prefs)
	SessionDomain string // Cookie domain (blank means current host)
}

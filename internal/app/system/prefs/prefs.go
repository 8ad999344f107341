// internal/app/system/prefs/prefs.go
package prefs

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/resolver"
	"github.com/eduardgagite/portfolio/internal/app/system/sidebar"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie keys                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultCookieName = "portfolio-prefs"

	sidebarKey     = "materials.sidebarState"
	lastPathPrefix = "materials.lastPath."
	langKey        = "lang"

	maxAge = 365 * 24 * time.Hour
)

// Prefs is the visitor's client-side state. It lives entirely in a signed
// cookie; the server keeps nothing.
type Prefs struct {
	Sidebar  sidebar.State
	LastPath map[models.Lang]string
	Lang     models.Lang // empty when never chosen
}

// LastPathFor returns the stored materials path for lang, or "".
func (p Prefs) LastPathFor(lang models.Lang) string {
	return p.LastPath[lang]
}

// WithLastPath returns a copy with the last path for lang replaced. Paths
// that are not local materials paths are ignored.
func (p Prefs) WithLastPath(lang models.Lang, path string) Prefs {
	if !resolver.IsMaterialsPath(path) {
		return p
	}
	out := p
	out.LastPath = make(map[models.Lang]string, len(p.LastPath)+1)
	for k, v := range p.LastPath {
		out.LastPath[k] = v
	}
	out.LastPath[lang] = path
	return out
}

// Manager reads and writes Prefs through a gorilla/sessions cookie store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager creates a Manager. secure marks the cookie Secure, which only
// works over HTTPS; use false for local development.
func NewManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if sessionKey == "" {
		return nil, errors.WithHint(errors.New("session key is empty"), "provide at least 32 random characters")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = DefaultCookieName
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   int(maxAge / time.Second),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// Load reads the visitor's preferences. A missing, tampered or otherwise
// unreadable cookie yields empty defaults; errors are never surfaced.
func (m *Manager) Load(r *http.Request) Prefs {
	p := Prefs{Sidebar: sidebar.Empty(), LastPath: map[models.Lang]string{}}

	sess, err := m.store.Get(r, m.name)
	if err != nil {
		if securecookie.IsDecode(err) {
			m.log.Debug("discarding unreadable preferences cookie", zap.Error(err))
		}
		return p
	}

	if raw, ok := sess.Values[sidebarKey].(string); ok {
		p.Sidebar = sidebar.Decode(raw)
	}
	for _, lang := range models.SupportedLangs {
		if v, ok := sess.Values[lastPathPrefix+string(lang)].(string); ok && resolver.IsMaterialsPath(v) {
			p.LastPath[lang] = v
		}
	}
	if v, ok := sess.Values[langKey].(string); ok {
		if lang, ok := models.ParseLang(v); ok {
			p.Lang = lang
		}
	}
	return p
}

// Save writes p back to the cookie. Failures are logged at debug level and
// otherwise ignored: losing a preference must never break a page.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, p Prefs) {
	sess, err := m.store.Get(r, m.name)
	if err != nil && sess == nil {
		m.log.Debug("preferences cookie unavailable", zap.Error(err))
		return
	}

	raw, err := p.Sidebar.Encode()
	if err != nil {
		m.log.Debug("encode sidebar state", zap.Error(err))
		return
	}
	sess.Values[sidebarKey] = raw
	for lang, path := range p.LastPath {
		if resolver.IsMaterialsPath(path) {
			sess.Values[lastPathPrefix+string(lang)] = path
		}
	}
	if p.Lang.Valid() {
		sess.Values[langKey] = string(p.Lang)
	}

	if err := sess.Save(r, w); err != nil {
		m.log.Debug("save preferences cookie", zap.Error(err))
	}
}

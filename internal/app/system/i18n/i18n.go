// internal/app/system/i18n/i18n.go
package i18n

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/eduardgagite/portfolio/internal/domain/models"
	"golang.org/x/text/language"
)

// T returns the copy for key in lang, falling back to Russian and then to
// the key itself. It never fails.
func T(lang models.Lang, key string) string {
	if s, ok := messages[lang][key]; ok {
		return s
	}
	if s, ok := messages[models.DefaultLang][key]; ok {
		return s
	}
	return key
}

// Tf is T followed by fmt.Sprintf.
func Tf(lang models.Lang, key string, args ...any) string {
	return fmt.Sprintf(T(lang, key), args...)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Negotiation                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

var matcher = language.NewMatcher([]language.Tag{language.Russian, language.English})

// Negotiate picks the display language. An explicit ?lang= wins, then the
// visitor's saved choice, then Accept-Language, then fallback. The second
// result reports whether the language came from the query string.
func Negotiate(r *http.Request, saved, fallback models.Lang) (models.Lang, bool) {
	if lang, ok := models.ParseLang(r.URL.Query().Get("lang")); ok {
		return lang, true
	}
	if saved.Valid() {
		return saved, false
	}
	if lang, ok := fromAcceptLanguage(r.Header.Get("Accept-Language")); ok {
		return lang, false
	}
	if fallback.Valid() {
		return fallback, false
	}
	return models.DefaultLang, false
}

func fromAcceptLanguage(header string) (models.Lang, bool) {
	if header == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	tag, _, conf := matcher.Match(tags...)
	if conf == language.No {
		return "", false
	}
	base, _ := tag.Base()
	return models.ParseLang(base.String())
}

/*─────────────────────────────────────────────────────────────────────────────*
| Request context                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey struct{}

type choice struct {
	lang     models.Lang
	explicit bool
}

// NewContext stores the negotiated language in ctx.
func NewContext(ctx context.Context, lang models.Lang, explicit bool) context.Context {
	return context.WithValue(ctx, ctxKey{}, choice{lang: lang, explicit: explicit})
}

// FromContext returns the request language, or the default language when the
// middleware did not run.
func FromContext(ctx context.Context) models.Lang {
	if c, ok := ctx.Value(ctxKey{}).(choice); ok {
		return c.lang
	}
	return models.DefaultLang
}

// Explicit reports whether the visitor asked for the language in the URL.
func Explicit(ctx context.Context) bool {
	c, ok := ctx.Value(ctxKey{}).(choice)
	return ok && c.explicit
}

// Middleware negotiates the language for every request. saved reads the
// visitor's stored preference and may be nil.
func Middleware(saved func(*http.Request) models.Lang, fallback models.Lang) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var pref models.Lang
			if saved != nil {
				pref = saved(r)
			}
			lang, explicit := Negotiate(r, pref, fallback)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), lang, explicit)))
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| URLs                                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// LangURL sets the lang query parameter on a site-relative path, keeping any
// other parameters and the fragment.
func LangURL(path string, lang models.Lang) string {
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	q := u.Query()
	q.Set("lang", string(lang))
	u.RawQuery = q.Encode()
	return u.String()
}

// AbsoluteLangURL is LangURL joined onto baseURL.
func AbsoluteLangURL(baseURL, path string, lang models.Lang) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return LangURL(path, lang)
	}
	ref, err := url.Parse(LangURL(path, lang))
	if err != nil {
		return LangURL(path, lang)
	}
	return base.ResolveReference(ref).String()
}

// Other returns the other supported language, used by the language switch.
func Other(lang models.Lang) models.Lang {
	if lang == models.LangEN {
		return models.LangRU
	}
	return models.LangEN
}

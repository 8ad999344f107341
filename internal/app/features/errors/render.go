// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/app/system/viewdata"
)

// RenderNotFound shows the 404 page with links home and to the materials.
func RenderNotFound(w http.ResponseWriter, r *http.Request, site seo.Site) {
	lang := i18n.FromContext(r.Context())
	meta := site.Page(i18n.T(lang, "notFound.title"), i18n.T(lang, "notFound.description"), r.URL.Path, lang)

	data := pageData{
		BaseVM:         viewdata.NewBaseVM(r, meta),
		Code:           http.StatusNotFound,
		Heading:        i18n.T(lang, "notFound.heading"),
		Message:        i18n.T(lang, "notFound.hint"),
		PrimaryURL:     i18n.LangURL("/", lang),
		PrimaryLabel:   i18n.T(lang, "notFound.goHome"),
		SecondaryURL:   i18n.LangURL("/materials", lang),
		SecondaryLabel: i18n.T(lang, "notFound.goMaterials"),
	}

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", data)
}

// RenderUnavailable shows the catalog-unavailable page. retryURL reloads the
// page that failed; if empty it defaults to the current request URI.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, site seo.Site, retryURL string) {
	lang := i18n.FromContext(r.Context())
	if retryURL == "" {
		retryURL = r.URL.RequestURI()
	}
	meta := site.Page(i18n.T(lang, "unavailable.title"), "", r.URL.Path, lang)

	data := pageData{
		BaseVM:         viewdata.NewBaseVM(r, meta),
		Code:           http.StatusServiceUnavailable,
		Heading:        i18n.T(lang, "materials.loadError"),
		PrimaryURL:     retryURL,
		PrimaryLabel:   i18n.T(lang, "materials.retry"),
		SecondaryURL:   i18n.LangURL("/", lang),
		SecondaryLabel: i18n.T(lang, "notFound.goHome"),
	}

	w.Header().Set("Retry-After", "30")
	w.WriteHeader(http.StatusServiceUnavailable)
	templates.Render(w, r, "error_page", data)
}

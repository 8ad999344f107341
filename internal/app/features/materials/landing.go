// internal/app/features/materials/landing.go
package materials

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/prefs"
	"github.com/eduardgagite/portfolio/internal/app/system/resolver"
	"github.com/eduardgagite/portfolio/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ServeLanding renders GET /materials.
//
// A returning visitor whose last article (for the page language) still
// exists is sent straight back to it, unless they arrived with filter
// criteria, in which case the filtered landing is shown.
func (h *Handler) ServeLanding(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lang := i18n.FromContext(ctx)

	cv, err := h.loadCatalog(ctx, r, lang)
	if err != nil {
		h.catalogFailed(w, r, err)
		return
	}

	p := h.Prefs.Load(r)
	if !cv.Criteria.Active() {
		if out := resolver.ResolveLanding(p.LastPathFor(lang), cv.Tree); out.Kind == resolver.KindRedirect {
			h.Log.Debug("restoring last material", zap.String("location", out.Location))
			http.Redirect(w, r, i18n.LangURL(out.Location, lang), http.StatusFound)
			return
		}
	}

	h.rememberLang(w, r, p)

	data := landingData{
		BaseVM:     viewdata.NewBaseVM(r, h.Site.Landing(lang)),
		Sidebar:    buildSidebar(cv.Filtered, p.Sidebar, cv.Criteria, cv.Options, nil, resolver.Base, lang),
		Categories: buildLanding(cv.Filtered, lang, cv.Criteria),
		Empty:      cv.Tree.Count() == 0,
	}
	templates.Render(w, r, "materials_landing", data)
}

// rememberLang persists an explicitly chosen language. It must run before
// the response body is written.
func (h *Handler) rememberLang(w http.ResponseWriter, r *http.Request, p prefs.Prefs) {
	lang := i18n.FromContext(r.Context())
	if !i18n.Explicit(r.Context()) || p.Lang == lang {
		return
	}
	p.Lang = lang
	h.Prefs.Save(w, r, p)
}

// internal/app/features/materials/article.go
package materials

import (
	"context"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/resolver"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/app/system/viewdata"
	"github.com/eduardgagite/portfolio/internal/domain/models"
	"go.uber.org/zap"
)

// ServeArticle renders GET /materials/*. Shorthand paths redirect to their
// first article (the query string is kept), unknown paths get the 404 page
// and a full category/section/slug path renders the article.
func (h *Handler) ServeArticle(w http.ResponseWriter, r *http.Request) {
	segs := resolver.Segments(r.URL.Path)
	if len(segs) == 0 {
		h.ServeLanding(w, r)
		return
	}

	ctx := r.Context()
	lang := i18n.FromContext(ctx)

	cv, err := h.loadCatalog(ctx, r, lang)
	if err != nil {
		h.catalogFailed(w, r, err)
		return
	}

	out := resolver.Resolve(segs, cv.Tree)
	switch out.Kind {
	case resolver.KindRedirect:
		target := out.Location
		if q := r.URL.RawQuery; q != "" {
			target += "?" + q
		}
		http.Redirect(w, r, target, http.StatusFound)
	case resolver.KindArticle:
		h.renderArticle(w, r, cv, out)
	case resolver.KindRoot:
		h.ServeLanding(w, r)
	default:
		h.ErrLog.LogNotFound(w, r, "material not found")
	}
}

func (h *Handler) renderArticle(w http.ResponseWriter, r *http.Request, cv catalogView, out resolver.Outcome) {
	ctx := r.Context()
	lang := i18n.FromContext(ctx)
	mat := *out.Material

	// Remember where the visitor is and make sure the sidebar shows it.
	// Cookies go out with the headers, so this precedes any body write.
	p := h.Prefs.Load(r).WithLastPath(lang, resolver.ArticlePath(mat.ID))
	p.Sidebar, _ = p.Sidebar.EnsureOpen(mat.ID.Category, mat.ID.Section)
	if i18n.Explicit(ctx) {
		p.Lang = lang
	}
	h.Prefs.Save(w, r, p)

	langs := cv.Tree.AvailableLanguages[mat.ID.CanonicalKey()]
	meta, err := h.Site.ForMaterial(mat, langs)
	if err != nil {
		h.Log.Warn("build material metadata", zap.String("material", mat.ID.Key()), zap.Error(err))
		meta = h.Site.Page(mat.Title, mat.Subtitle, resolver.ArticlePath(mat.ID), lang)
	}

	body, contentErr := h.articleBody(ctx, mat)
	if contentErr && ctx.Err() != nil {
		return
	}

	prev, next := resolver.Neighbors(out.Section, mat.ID.Slug)

	data := articleData{
		BaseVM:        viewdata.NewBaseVM(r, meta),
		Sidebar:       buildSidebar(cv.Filtered, p.Sidebar, cv.Criteria, cv.Options, &mat.ID, r.URL.Path, lang),
		Title:         mat.Title,
		Subtitle:      mat.Subtitle,
		Level:         mat.Level,
		CategoryTitle: out.Category.Title,
		SectionTitle:  out.Section.Title,
		Tags:          mat.Tags,
		DatePublished: mat.DatePublished,
		DateModified:  mat.DateModified,
		Languages:     languageLinks(mat.ID, langs, mat.ID.Lang),
		Body:          body,
		ContentError:  contentErr,
		Prev:          pagerLink(prev, lang, cv.Criteria),
		Next:          pagerLink(next, lang, cv.Criteria),
	}
	templates.Render(w, r, "materials_article", data)
}

// articleBody loads and renders the article's markdown. A failure is logged
// and reported as true so the page can show an inline error while the
// sidebar stays usable.
func (h *Handler) articleBody(ctx context.Context, mat models.MaterialMeta) (template.HTML, bool) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.Fetch(), h.Log, "load material content")
	defer cancel()

	mc, err := h.Catalog.Content(ctx, mat)
	if err != nil {
		h.Log.Warn("material content load failed",
			zap.String("material", mat.ID.Key()),
			zap.String("content_path", mat.ContentPath),
			zap.Error(err))
		return "", true
	}

	html, err := h.Markdown.Render(mc.Content, mat.AssetBase())
	if err != nil {
		h.Log.Warn("material render failed", zap.String("material", mat.ID.Key()), zap.Error(err))
		return "", true
	}
	return html, false
}

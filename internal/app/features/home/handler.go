// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/eduardgagite/portfolio/internal/app/store/catalog"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/eduardgagite/portfolio/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Contact details shown on the profile card.
const (
	TelegramHandle = "edublago"
	Email          = "eduardgagite@gmail.com"
	GitHubURL      = "https://github.com/eduardgagite"
)

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Catalog *catalog.Loader
	Site    seo.Site
	Log     *zap.Logger
}

func NewHandler(loader *catalog.Loader, site seo.Site, logger *zap.Logger) *Handler {
	return &Handler{
		Catalog: loader,
		Site:    site,
		Log:     logger,
	}
}

// topicVM is one materials category teased on the home page.
type topicVM struct {
	Title string
	URL   string
	Count int
}

type homeData struct {
	viewdata.BaseVM

	TelegramHandle string
	TelegramURL    string
	Email          string
	GitHubURL      string

	Topics []topicVM
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – profile                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	lang := i18n.FromContext(r.Context())
	meta := h.Site.Page(i18n.T(lang, "meta.homeTitle"), i18n.T(lang, "meta.homeDescription"), "/", lang)

	data := homeData{
		BaseVM:         viewdata.NewBaseVM(r, meta),
		TelegramHandle: TelegramHandle,
		TelegramURL:    "https://t.me/" + TelegramHandle,
		Email:          Email,
		GitHubURL:      GitHubURL,
		Topics:         h.topics(r),
	}

	templates.Render(w, r, "home", data)
}

// topics lists the materials categories for the teaser. The home page
// renders without them when the catalog is unavailable.
func (h *Handler) topics(r *http.Request) []topicVM {
	if h.Catalog == nil {
		return nil
	}
	lang := i18n.FromContext(r.Context())

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Fetch(), h.Log, "load home topics")
	defer cancel()

	tree, err := h.Catalog.Tree(ctx, lang)
	if err != nil {
		h.Log.Warn("home: materials catalog unavailable", zap.Error(err))
		return nil
	}

	out := make([]topicVM, 0, len(tree.Categories))
	for i := range tree.Categories {
		cat := &tree.Categories[i]
		out = append(out, topicVM{
			Title: cat.Title,
			URL:   i18n.LangURL("/materials/"+cat.ID, lang),
			Count: cat.MaterialCount(),
		})
	}
	return out
}

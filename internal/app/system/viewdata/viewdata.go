// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, meta),
//	    // page-specific fields...
//	}
//
// Templates translate with {{.T "nav.home"}} (or {{$.T ...}} inside range).
type BaseVM struct {
	// Language context (from the i18n middleware)
	Lang      models.Lang
	OtherLang models.Lang

	// Head metadata
	SEO seo.Meta

	// Page context
	CurrentPath   string
	SwitchLangURL string
	HomeURL       string
	MaterialsURL  string
	Year          int
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request (language comes from its context)
//   - meta: the page's head metadata
func NewBaseVM(r *http.Request, meta seo.Meta) BaseVM {
	lang := i18n.FromContext(r.Context())
	other := i18n.Other(lang)
	return BaseVM{
		Lang:          lang,
		OtherLang:     other,
		SEO:           meta,
		CurrentPath:   httpnav.CurrentPath(r),
		SwitchLangURL: i18n.LangURL(r.URL.RequestURI(), other),
		HomeURL:       i18n.LangURL("/", lang),
		MaterialsURL:  i18n.LangURL("/materials", lang),
		Year:          time.Now().Year(),
	}
}

// T translates key into the page language.
func (vm BaseVM) T(key string) string { return i18n.T(vm.Lang, key) }

// Tf translates and formats.
func (vm BaseVM) Tf(key string, args ...any) string { return i18n.Tf(vm.Lang, key, args...) }

// URL adds the page language to a site path.
func (vm BaseVM) URL(path string) string { return i18n.LangURL(path, vm.Lang) }

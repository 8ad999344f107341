// internal/app/features/materials/types.go
package materials

import (
	"html/template"

	"github.com/eduardgagite/portfolio/internal/app/system/matfilter"
	"github.com/eduardgagite/portfolio/internal/app/system/viewdata"
	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// ========================= SIDEBAR VIEW MODELS ======================

// materialLinkVM is one article link inside a sidebar section.
type materialLinkVM struct {
	Title    string
	Subtitle string
	Level    string
	URL      string
	Active   bool
}

// sectionVM is a collapsible section of the sidebar.
type sectionVM struct {
	ID        string
	Title     string
	Open      bool
	Active    bool
	Materials []materialLinkVM
}

// categoryVM is a collapsible top-level node of the sidebar.
type categoryVM struct {
	ID       string
	Title    string
	Open     bool
	Active   bool
	Count    int
	Sections []sectionVM
}

// sidebarVM provides template data for the navigation sidebar, including
// the filter form.
type sidebarVM struct {
	Criteria matfilter.Criteria
	Options  matfilter.Options

	// Filtering is true when any criterion is active; NoMatches when the
	// filtered tree came back empty.
	Filtering bool
	NoMatches bool

	Categories []categoryVM

	// FormAction is the path the filter form submits to; ResetURL clears
	// the filters; ReturnPath is where a toggle POST redirects back to.
	FormAction string
	ResetURL   string
	ReturnPath string
}

// ========================= PAGE VIEW MODELS ======================

// landingCategoryVM is a category card on the landing page.
type landingCategoryVM struct {
	Title    string
	URL      string
	Count    int
	Sections int
}

// landingData provides template data for the materials landing page.
type landingData struct {
	viewdata.BaseVM

	Sidebar    sidebarVM
	Categories []landingCategoryVM
	Empty      bool
}

// pagerLinkVM is a previous/next link under an article.
type pagerLinkVM struct {
	Title string
	URL   string
}

// langLinkVM links to one language variant of the current article.
type langLinkVM struct {
	Lang    models.Lang
	URL     string
	Current bool
}

// articleData provides template data for an article page.
type articleData struct {
	viewdata.BaseVM

	Sidebar sidebarVM

	Title         string
	Subtitle      string
	Level         string
	CategoryTitle string
	SectionTitle  string
	Tags          []string
	DatePublished string
	DateModified  string
	Languages     []langLinkVM

	Body         template.HTML
	ContentError bool

	Prev *pagerLinkVM
	Next *pagerLinkVM
}

// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/eduardgagite/portfolio/internal/app/system/seo"
	"github.com/eduardgagite/portfolio/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM

	Code         int
	Heading      string
	Message      string
	PrimaryURL   string
	PrimaryLabel string
	// Secondary link is optional.
	SecondaryURL   string
	SecondaryLabel string
}

// Handler is the errors feature handler.
// No backend needed; it just renders templates.
type Handler struct {
	Site seo.Site
}

// NewHandler constructs an errors Handler.
func NewHandler(site seo.Site) *Handler {
	return &Handler{Site: site}
}

// NotFound renders the 404 page. It is installed as the router's
// NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, h.Site)
}

// internal/app/features/materials/toggle.go
package materials

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/navigation"
	"go.uber.org/zap"
)

// HandleSidebarToggle handles POST /materials/sidebar/toggle.
//
// Form fields:
//   - kind: "category" or "section"
//   - category: category id
//   - section: section id (kind=section only)
//   - return: materials path to go back to
//
// The flipped state is stored in the preferences cookie and the visitor is
// sent back with 303. A return value outside /materials falls back to the
// landing, keeping the lang field when present.
func (h *Handler) HandleSidebarToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse sidebar toggle form", err, "Invalid form data.")
		return
	}

	kind := r.PostFormValue("kind")
	category := strings.TrimSpace(r.PostFormValue("category"))
	section := strings.TrimSpace(r.PostFormValue("section"))

	ret := navigation.SafeBackURL(r, navigation.MaterialsBackURL)

	if category == "" {
		h.ErrLog.LogBadRequest(w, r, "sidebar toggle without category", errors.New("missing category"), "Missing category.")
		return
	}

	p := h.Prefs.Load(r)
	switch kind {
	case "category":
		p.Sidebar = p.Sidebar.ToggleCategory(category)
	case "section":
		if section == "" {
			h.ErrLog.LogBadRequest(w, r, "sidebar toggle without section", errors.New("missing section"), "Missing section.")
			return
		}
		p.Sidebar = p.Sidebar.ToggleSection(category, section)
	default:
		h.ErrLog.LogBadRequest(w, r, "unknown sidebar toggle kind", errors.Newf("kind %q", kind), "Invalid toggle.")
		return
	}
	h.Prefs.Save(w, r, p)

	h.Log.Debug("sidebar toggled",
		zap.String("kind", kind),
		zap.String("category", category),
		zap.String("section", section))

	http.Redirect(w, r, ret, http.StatusSeeOther)
}

// internal/app/features/materials/views.go
package materials

import (
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/app/system/matfilter"
	"github.com/eduardgagite/portfolio/internal/app/system/resolver"
	"github.com/eduardgagite/portfolio/internal/app/system/sidebar"
	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// linkURL builds a materials link that keeps the page language and the
// active filter criteria.
func linkURL(path string, lang models.Lang, c matfilter.Criteria) string {
	if q := c.Values(); len(q) > 0 {
		path += "?" + q.Encode()
	}
	return i18n.LangURL(path, lang)
}

// buildSidebar turns a (possibly filtered) tree into the sidebar view model.
// While filtering, every node is shown open so matches are never hidden
// behind a collapsed parent; otherwise nodes follow the persisted state.
// active is the article being shown, if any.
func buildSidebar(tree *models.MaterialsTree, st sidebar.State, c matfilter.Criteria, opts matfilter.Options, active *models.MaterialID, path string, lang models.Lang) sidebarVM {
	vm := sidebarVM{
		Criteria:   c,
		Options:    opts,
		Filtering:  c.Active(),
		FormAction: path,
		ResetURL:   i18n.LangURL(path, lang),
		ReturnPath: linkURL(path, lang, c),
	}
	if tree == nil {
		vm.NoMatches = true
		return vm
	}

	for _, cat := range tree.Categories {
		cvm := categoryVM{
			ID:    cat.ID,
			Title: cat.Title,
			Count: cat.MaterialCount(),
			Open:  vm.Filtering || st.CategoryOpen(cat.ID),
		}
		for _, sec := range cat.Sections {
			svm := sectionVM{
				ID:    sec.ID,
				Title: sec.Title,
				Open:  vm.Filtering || st.SectionOpen(cat.ID, sec.ID),
			}
			for _, m := range sec.Materials {
				isActive := active != nil && m.ID.CanonicalKey() == active.CanonicalKey()
				svm.Materials = append(svm.Materials, materialLinkVM{
					Title:    m.Title,
					Subtitle: m.Subtitle,
					Level:    m.Level,
					URL:      linkURL(resolver.ArticlePath(m.ID), lang, c),
					Active:   isActive,
				})
				if isActive {
					svm.Active = true
				}
			}
			if svm.Active {
				cvm.Active = true
			}
			cvm.Sections = append(cvm.Sections, svm)
		}
		vm.Categories = append(vm.Categories, cvm)
	}
	vm.NoMatches = len(vm.Categories) == 0
	return vm
}

// buildLanding lists the category cards of the landing page. Without
// filters a card links to the category shorthand, which redirects to its
// first article. Shorthands resolve against the whole catalog, so a
// filtered card links straight to the first matching article instead.
func buildLanding(tree *models.MaterialsTree, lang models.Lang, c matfilter.Criteria) []landingCategoryVM {
	if tree == nil {
		return nil
	}
	out := make([]landingCategoryVM, 0, len(tree.Categories))
	for _, cat := range tree.Categories {
		target := resolver.Base + "/" + cat.ID
		if c.Active() && len(cat.Sections) > 0 && len(cat.Sections[0].Materials) > 0 {
			target = resolver.ArticlePath(cat.Sections[0].Materials[0].ID)
		}
		out = append(out, landingCategoryVM{
			Title:    cat.Title,
			URL:      linkURL(target, lang, c),
			Count:    cat.MaterialCount(),
			Sections: len(cat.Sections),
		})
	}
	return out
}

// languageLinks lists the languages an article exists in. A single-language
// article gets no switcher.
func languageLinks(id models.MaterialID, langs []models.Lang, current models.Lang) []langLinkVM {
	if len(langs) < 2 {
		return nil
	}
	out := make([]langLinkVM, 0, len(langs))
	for _, l := range langs {
		out = append(out, langLinkVM{
			Lang:    l,
			URL:     i18n.LangURL(resolver.ArticlePath(id), l),
			Current: l == current,
		})
	}
	return out
}

// pagerLink converts a neighbor into a pager link; nil stays nil.
func pagerLink(m *models.MaterialMeta, lang models.Lang, c matfilter.Criteria) *pagerLinkVM {
	if m == nil {
		return nil
	}
	return &pagerLinkVM{Title: m.Title, URL: linkURL(resolver.ArticlePath(m.ID), lang, c)}
}

// internal/app/store/catalog/tree.go
package catalog

import (
	"sort"

	"github.com/eduardgagite/portfolio/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collatorFor returns a collator for title comparison in lang. Collators are
// not safe for concurrent use, so callers create one per operation.
func collatorFor(lang models.Lang) *collate.Collator {
	tag := language.Russian
	if lang == models.LangEN {
		tag = language.English
	}
	return collate.New(tag)
}

type sectionBuilder struct {
	section  models.Section
	hasOrder bool
}

type categoryBuilder struct {
	category models.Category
	sections []*sectionBuilder
	byID     map[string]*sectionBuilder
}

// BuildTree groups index entries by canonical key, picks one language
// variant per material and assembles the Category → Section → Material
// hierarchy. It is pure: the same entries and language always produce the
// same tree, and entries is not modified.
func BuildTree(entries []models.MaterialMeta, preferred models.Lang) *models.MaterialsTree {
	var keys []string
	variants := make(map[string][]models.MaterialMeta)
	for _, e := range entries {
		key := e.ID.CanonicalKey()
		if _, ok := variants[key]; !ok {
			keys = append(keys, key)
		}
		variants[key] = append(variants[key], e)
	}

	tree := &models.MaterialsTree{
		Lang:               preferred,
		ByID:               make(map[string]models.MaterialMeta, len(keys)),
		AvailableLanguages: make(map[string][]models.Lang, len(keys)),
	}

	var cats []*categoryBuilder
	catByID := make(map[string]*categoryBuilder)

	for _, key := range keys {
		vs := variants[key]
		chosen := pickVariant(vs, preferred)
		tree.ByID[chosen.ID.Key()] = chosen

		langs := make([]models.Lang, 0, len(vs))
		for _, v := range vs {
			langs = append(langs, v.ID.Lang)
		}
		tree.AvailableLanguages[key] = langs

		cb, ok := catByID[chosen.ID.Category]
		if !ok {
			cb = &categoryBuilder{
				category: models.Category{ID: chosen.ID.Category, Title: chosen.CategoryTitle},
				byID:     make(map[string]*sectionBuilder),
			}
			catByID[chosen.ID.Category] = cb
			cats = append(cats, cb)
		}

		sb, ok := cb.byID[chosen.ID.Section]
		if !ok {
			sb = &sectionBuilder{section: models.Section{ID: chosen.ID.Section, Title: chosen.SectionTitle}}
			cb.byID[chosen.ID.Section] = sb
			cb.sections = append(cb.sections, sb)
		}
		if chosen.SectionOrder != nil && (!sb.hasOrder || *chosen.SectionOrder < sb.section.Order) {
			sb.section.Order = *chosen.SectionOrder
			sb.hasOrder = true
		}
		sb.section.Materials = append(sb.section.Materials, chosen)
	}

	col := collatorFor(preferred)
	tree.Categories = make([]models.Category, 0, len(cats))
	for _, cb := range cats {
		cat := cb.category
		cat.Sections = make([]models.Section, 0, len(cb.sections))
		for _, sb := range cb.sections {
			sec := sb.section
			sort.SliceStable(sec.Materials, func(i, j int) bool {
				a, b := sec.Materials[i], sec.Materials[j]
				if a.SortOrder() != b.SortOrder() {
					return a.SortOrder() < b.SortOrder()
				}
				return col.CompareString(a.Title, b.Title) < 0
			})
			cat.Sections = append(cat.Sections, sec)
		}
		sort.SliceStable(cat.Sections, func(i, j int) bool {
			a, b := cat.Sections[i], cat.Sections[j]
			if a.Order != b.Order {
				return a.Order < b.Order
			}
			return col.CompareString(a.Title, b.Title) < 0
		})
		tree.Categories = append(tree.Categories, cat)
	}
	sort.SliceStable(tree.Categories, func(i, j int) bool {
		return col.CompareString(tree.Categories[i].Title, tree.Categories[j].Title) < 0
	})

	return tree
}

// pickVariant returns the preferred-language variant, otherwise the first
// variant in SupportedLangs priority, otherwise the first one seen.
func pickVariant(vs []models.MaterialMeta, preferred models.Lang) models.MaterialMeta {
	if v, ok := variantFor(vs, preferred); ok {
		return v
	}
	for _, lang := range models.SupportedLangs {
		if v, ok := variantFor(vs, lang); ok {
			return v
		}
	}
	return vs[0]
}

func variantFor(vs []models.MaterialMeta, lang models.Lang) (models.MaterialMeta, bool) {
	for _, v := range vs {
		if v.ID.Lang == lang {
			return v, true
		}
	}
	return models.MaterialMeta{}, false
}

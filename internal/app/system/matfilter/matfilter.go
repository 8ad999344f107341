// internal/app/system/matfilter/matfilter.go
package matfilter

import (
	"net/url"
	"sort"
	"strings"

	"github.com/eduardgagite/portfolio/internal/domain/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Criteria narrows the catalog. Empty Tag or Level means "any".
type Criteria struct {
	Query string
	Tag   string
	Level string
}

// FromValues reads criteria from the q, tag and level query parameters.
func FromValues(v url.Values) Criteria {
	return Criteria{
		Query: v.Get("q"),
		Tag:   strings.TrimSpace(v.Get("tag")),
		Level: strings.TrimSpace(v.Get("level")),
	}
}

// Values encodes the active criteria as query parameters.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if q := strings.TrimSpace(c.Query); q != "" {
		v.Set("q", q)
	}
	if c.Tag != "" {
		v.Set("tag", c.Tag)
	}
	if c.Level != "" {
		v.Set("level", c.Level)
	}
	return v
}

// Active reports whether any criterion is set.
func (c Criteria) Active() bool {
	return normalizeQuery(c.Query) != "" || c.Tag != "" || c.Level != ""
}

// Sanitize drops a tag or level that is no longer offered, so a stale
// selection cannot hide the whole catalog.
func (c Criteria) Sanitize(opts Options) Criteria {
	if c.Tag != "" && !contains(opts.Tags, c.Tag) {
		c.Tag = ""
	}
	if c.Level != "" && !contains(opts.Levels, c.Level) {
		c.Level = ""
	}
	return c
}

// Matches reports whether a single material satisfies the criteria.
func (c Criteria) Matches(m models.MaterialMeta) bool {
	if c.Level != "" && m.Level != c.Level {
		return false
	}
	if c.Tag != "" && !m.HasTag(c.Tag) {
		return false
	}
	q := normalizeQuery(c.Query)
	if q == "" {
		return true
	}
	return strings.Contains(m.SearchText(), q)
}

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Filter returns a tree holding only matching materials. Sections and
// categories without surviving materials are dropped and order is kept.
// The source tree is never modified; with no active criteria it is returned
// as is.
func Filter(tree *models.MaterialsTree, c Criteria) *models.MaterialsTree {
	if tree == nil || !c.Active() {
		return tree
	}

	out := &models.MaterialsTree{
		Lang:               tree.Lang,
		ByID:               make(map[string]models.MaterialMeta),
		AvailableLanguages: make(map[string][]models.Lang),
	}
	for _, cat := range tree.Categories {
		var sections []models.Section
		for _, sec := range cat.Sections {
			var mats []models.MaterialMeta
			for _, m := range sec.Materials {
				if !c.Matches(m) {
					continue
				}
				mats = append(mats, m)
				out.ByID[m.ID.Key()] = m
				if langs, ok := tree.AvailableLanguages[m.ID.CanonicalKey()]; ok {
					out.AvailableLanguages[m.ID.CanonicalKey()] = langs
				}
			}
			if len(mats) == 0 {
				continue
			}
			sec.Materials = mats
			sections = append(sections, sec)
		}
		if len(sections) == 0 {
			continue
		}
		cat.Sections = sections
		out.Categories = append(out.Categories, cat)
	}
	return out
}

// Options are the tag and level values offered for filtering.
type Options struct {
	Tags   []string
	Levels []string
}

// DeriveOptions collects the distinct tags and levels of an (unfiltered)
// tree, sorted with the tree language's collation.
func DeriveOptions(tree *models.MaterialsTree) Options {
	if tree == nil {
		return Options{}
	}
	tags := map[string]bool{}
	levels := map[string]bool{}
	for _, cat := range tree.Categories {
		for _, sec := range cat.Sections {
			for _, m := range sec.Materials {
				for _, t := range m.Tags {
					if t != "" {
						tags[t] = true
					}
				}
				if m.Level != "" {
					levels[m.Level] = true
				}
			}
		}
	}

	tag := language.Russian
	if tree.Lang == models.LangEN {
		tag = language.English
	}
	col := collate.New(tag)
	return Options{Tags: sortedKeys(tags, col), Levels: sortedKeys(levels, col)}
}

func sortedKeys(set map[string]bool, col *collate.Collator) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := col.CompareString(out[i], out[j]); c != 0 {
			return c < 0
		}
		return out[i] < out[j]
	})
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// internal/domain/models/material.go
package models

import "strings"

// MaterialID identifies one language variant of a material. It is derived
// from the source path materials/<category>/<section>/<slug>.<lang>.md and
// never from frontmatter.
type MaterialID struct {
	Category string `json:"category"`
	Section  string `json:"section"`
	Slug     string `json:"slug"`
	Lang     Lang   `json:"lang"`
}

// CanonicalKey groups the language variants of one material:
// "category/section/slug".
func (id MaterialID) CanonicalKey() string {
	return id.Category + "/" + id.Section + "/" + id.Slug
}

// Key is unique per language variant: "category/section/slug:lang".
func (id MaterialID) Key() string {
	return id.CanonicalKey() + ":" + string(id.Lang)
}

// Path is the materials route of the article, without a language suffix.
func (id MaterialID) Path() string {
	return "/materials/" + id.CanonicalKey()
}

// Frontmatter is the validated, normalized header of a material source file.
// Optional numeric fields are pointers so that "absent" and "0" stay distinct
// in the generated index.
type Frontmatter struct {
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	CategoryTitle string   `json:"categoryTitle"`
	Section       string   `json:"section"`
	SectionTitle  string   `json:"sectionTitle"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Level         string   `json:"level,omitempty"`
	Order         *int     `json:"order,omitempty"`
	SectionOrder  *int     `json:"sectionOrder,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	DatePublished string   `json:"datePublished,omitempty"`
	DateModified  string   `json:"dateModified,omitempty"`
}

// MaterialMeta is one entry of the generated index.
type MaterialMeta struct {
	Frontmatter
	ID          MaterialID `json:"id"`
	Path        string     `json:"path"`        // web path of the markdown source
	ContentPath string     `json:"contentPath"` // path of the content blob
}

// SortOrder returns Order, or 0 when absent.
func (m MaterialMeta) SortOrder() int {
	if m.Order == nil {
		return 0
	}
	return *m.Order
}

// HasTag reports whether tag is one of the material's tags.
func (m MaterialMeta) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SearchText is the lower-cased text that free-text queries match against.
func (m MaterialMeta) SearchText() string {
	return strings.ToLower(m.Title + " " + m.Subtitle)
}

// AssetBase is the directory of the markdown source; relative links and
// images inside the article resolve against it.
func (m MaterialMeta) AssetBase() string {
	i := strings.LastIndex(m.Path, "/")
	if i < 0 {
		return "/"
	}
	return m.Path[:i+1]
}

// MaterialWithContent is a material together with its markdown body.
type MaterialWithContent struct {
	MaterialMeta
	Content string
}

// GeneratedIndex is the combined index emitted by the content indexer.
type GeneratedIndex struct {
	Entries []MaterialMeta `json:"entries"`
}

// ContentBlob is the per-article content file.
type ContentBlob struct {
	Content string `json:"content"`
}

// IntPtr is a helper for building optional order values.
func IntPtr(v int) *int { return &v }

// internal/domain/models/tree.go
package models

// Section groups materials under a category. Order is the smallest
// sectionOrder declared by any of its materials (0 when none declare one).
type Section struct {
	ID        string
	Title     string
	Order     int
	Materials []MaterialMeta
}

// Category is a top-level group of sections.
type Category struct {
	ID       string
	Title    string
	Sections []Section
}

// MaterialsTree is the navigable catalog for one preferred language.
//
// A tree handed out by the catalog is shared between requests and must be
// treated as read-only; filtering produces a new tree.
type MaterialsTree struct {
	Lang       Lang
	Categories []Category

	// ByID maps MaterialID.Key() to the chosen variant.
	ByID map[string]MaterialMeta

	// AvailableLanguages maps a canonical key to every language that has a
	// variant of that material, in index order.
	AvailableLanguages map[string][]Lang
}

// FindCategory returns the category with the given id.
func (t *MaterialsTree) FindCategory(id string) (*Category, bool) {
	for i := range t.Categories {
		if t.Categories[i].ID == id {
			return &t.Categories[i], true
		}
	}
	return nil, false
}

// FindSection returns the section with the given id inside the category.
func (c *Category) FindSection(id string) (*Section, bool) {
	for i := range c.Sections {
		if c.Sections[i].ID == id {
			return &c.Sections[i], true
		}
	}
	return nil, false
}

// FindMaterial returns the material with the given slug inside the section.
func (s *Section) FindMaterial(slug string) (*MaterialMeta, bool) {
	for i := range s.Materials {
		if s.Materials[i].ID.Slug == slug {
			return &s.Materials[i], true
		}
	}
	return nil, false
}

// MaterialCount returns the number of materials in the category.
func (c *Category) MaterialCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Materials)
	}
	return n
}

// Count returns the number of materials in the tree.
func (t *MaterialsTree) Count() int {
	n := 0
	for i := range t.Categories {
		n += t.Categories[i].MaterialCount()
	}
	return n
}

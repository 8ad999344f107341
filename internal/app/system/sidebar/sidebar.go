// internal/app/system/sidebar/sidebar.go
package sidebar

import "encoding/json"

// State records which sidebar nodes the visitor has expanded. Categories are
// keyed by category id, sections by "category/section". Missing keys are
// collapsed. State is independent of the catalog: ids for nodes that no
// longer exist are kept and simply never rendered.
type State struct {
	Categories map[string]bool `json:"categories"`
	Sections   map[string]bool `json:"sections"`
}

// Empty returns a state with nothing expanded.
func Empty() State {
	return State{Categories: map[string]bool{}, Sections: map[string]bool{}}
}

// SectionKey is the Sections key of a section within a category.
func SectionKey(categoryID, sectionID string) string {
	return categoryID + "/" + sectionID
}

// Decode parses a persisted state. Anything unreadable yields Empty.
func Decode(raw string) State {
	if raw == "" {
		return Empty()
	}
	var st State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return Empty()
	}
	return st.normalized()
}

// Encode serializes the state for persistence.
func (s State) Encode() (string, error) {
	b, err := json.Marshal(s.normalized())
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s State) normalized() State {
	if s.Categories == nil {
		s.Categories = map[string]bool{}
	}
	if s.Sections == nil {
		s.Sections = map[string]bool{}
	}
	return s
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := Empty()
	for k, v := range s.Categories {
		out.Categories[k] = v
	}
	for k, v := range s.Sections {
		out.Sections[k] = v
	}
	return out
}

// CategoryOpen reports whether the category is expanded.
func (s State) CategoryOpen(id string) bool { return s.Categories[id] }

// SectionOpen reports whether the section is expanded.
func (s State) SectionOpen(categoryID, sectionID string) bool {
	return s.Sections[SectionKey(categoryID, sectionID)]
}

// ToggleCategory returns a copy with the category flag flipped.
func (s State) ToggleCategory(id string) State {
	out := s.Clone()
	out.Categories[id] = !out.Categories[id]
	return out
}

// ToggleSection returns a copy with the section flag flipped.
func (s State) ToggleSection(categoryID, sectionID string) State {
	out := s.Clone()
	key := SectionKey(categoryID, sectionID)
	out.Sections[key] = !out.Sections[key]
	return out
}

// EnsureOpen expands the category and section of the active article. It only
// ever sets flags to true; every other flag is left untouched. The second
// result reports whether anything changed.
func (s State) EnsureOpen(categoryID, sectionID string) (State, bool) {
	key := SectionKey(categoryID, sectionID)
	if s.Categories[categoryID] && s.Sections[key] {
		return s, false
	}
	out := s.Clone()
	out.Categories[categoryID] = true
	out.Sections[key] = true
	return out, true
}

// internal/app/system/contentindex/problem.go
package contentindex

import (
	"fmt"
	"strings"
)

// Kind classifies an indexing problem.
type Kind string

const (
	KindEmptyFile          Kind = "empty_file"
	KindEmptyContent       Kind = "empty_content"
	KindInvalidPath        Kind = "invalid_path"
	KindDuplicateID        Kind = "duplicate_id"
	KindInvalidFrontmatter Kind = "invalid_frontmatter"
	KindUnreadable         Kind = "unreadable"
)

// Problem is one reason a source file was rejected.
type Problem struct {
	Kind    Kind
	File    string
	Field   string // frontmatter field, when the problem concerns one
	Message string
}

func (p Problem) String() string {
	return p.File + ": " + p.Message
}

// ValidationError aggregates every problem found during one indexing run.
// A run that produces it writes nothing.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "material generation failed with %d validation error(s):", len(e.Problems))
	for _, p := range e.Problems {
		b.WriteString("\n- ")
		b.WriteString(p.String())
	}
	return b.String()
}

// Kinds returns the distinct problem kinds in first-seen order.
func (e *ValidationError) Kinds() []Kind {
	seen := make(map[Kind]bool)
	var out []Kind
	for _, p := range e.Problems {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			out = append(out, p.Kind)
		}
	}
	return out
}

// internal/app/system/contentindex/validate.go
package contentindex

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/eduardgagite/portfolio/internal/domain/models"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var requiredStringFields = []string{"title", "category", "categoryTitle", "section", "sectionTitle"}

// ValidateFrontmatter checks an untyped frontmatter map against the material
// schema and the path-derived identity. Every violation is reported; the
// returned Frontmatter is only meaningful when the problem list is empty.
func ValidateFrontmatter(fm map[string]any, id models.MaterialID, file string) (models.Frontmatter, []Problem) {
	var problems []Problem
	fail := func(field, format string, args ...any) {
		problems = append(problems, Problem{
			Kind:    KindInvalidFrontmatter,
			File:    file,
			Field:   field,
			Message: fmt.Sprintf(format, args...),
		})
	}
	if fm == nil {
		fm = map[string]any{}
	}

	for _, field := range requiredStringFields {
		if _, ok := nonEmptyString(fm[field]); !ok {
			fail(field, "frontmatter %q must be a non-empty string", field)
		}
	}

	if v, ok := nonEmptyString(fm["category"]); ok && v != id.Category {
		fail("category", "frontmatter \"category\" (%s) must match path category (%s)", v, id.Category)
	}
	if v, ok := nonEmptyString(fm["section"]); ok && v != id.Section {
		fail("section", "frontmatter \"section\" (%s) must match path section (%s)", v, id.Section)
	}

	for _, field := range []string{"subtitle", "level"} {
		if raw, present := fm[field]; present {
			if _, ok := nonEmptyString(raw); !ok {
				fail(field, "frontmatter %q must be a non-empty string when provided", field)
			}
		}
	}

	order, orderOK := optionalCount(fm, "order")
	if !orderOK {
		fail("order", "frontmatter \"order\" must be an integer >= 0")
	}
	sectionOrder, sectionOrderOK := optionalCount(fm, "sectionOrder")
	if !sectionOrderOK {
		fail("sectionOrder", "frontmatter \"sectionOrder\" must be an integer >= 0")
	}

	var tags []string
	if raw, present := fm["tags"]; present {
		var ok bool
		if tags, ok = stringList(raw); !ok {
			fail("tags", "frontmatter \"tags\" must be an array of non-empty strings")
		}
	}

	published, publishedOK := optionalDate(fm, "datePublished")
	if !publishedOK {
		fail("datePublished", "frontmatter \"datePublished\" must be in YYYY-MM-DD format")
	}
	modified, modifiedOK := optionalDate(fm, "dateModified")
	if !modifiedOK {
		fail("dateModified", "frontmatter \"dateModified\" must be in YYYY-MM-DD format")
	}
	if published != "" && modified != "" && modified < published {
		fail("dateModified", "frontmatter \"dateModified\" cannot be earlier than \"datePublished\"")
	}

	if len(problems) > 0 {
		return models.Frontmatter{}, problems
	}

	out := models.Frontmatter{
		Title:         trimmed(fm["title"]),
		Category:      trimmed(fm["category"]),
		CategoryTitle: trimmed(fm["categoryTitle"]),
		Section:       trimmed(fm["section"]),
		SectionTitle:  trimmed(fm["sectionTitle"]),
		Subtitle:      trimmed(fm["subtitle"]),
		Level:         trimmed(fm["level"]),
		Order:         order,
		SectionOrder:  sectionOrder,
		DatePublished: published,
		DateModified:  modified,
	}
	if tags != nil {
		out.Tags = make([]string, len(tags))
		for i, t := range tags {
			out.Tags[i] = strings.TrimSpace(t)
		}
	}
	return out, nil
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func trimmed(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// optionalCount reads a non-negative integer field. Decoders hand back
// different numeric types (YAML int, TOML int64, JSON-ish float64); a float
// is accepted only when it has no fractional part.
func optionalCount(fm map[string]any, field string) (*int, bool) {
	raw, present := fm[field]
	if !present {
		return nil, true
	}
	var n int64
	switch v := raw.(type) {
	case int:
		n = int64(v)
	case int64:
		n = v
	case uint64:
		if v > math.MaxInt32 {
			return nil, false
		}
		n = int64(v)
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return nil, false
		}
		n = int64(v)
	default:
		return nil, false
	}
	if n < 0 || n > math.MaxInt32 {
		return nil, false
	}
	out := int(n)
	return &out, true
}

func stringList(raw any) ([]string, bool) {
	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []string:
		for _, s := range v {
			items = append(items, s)
		}
	default:
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := nonEmptyString(item)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// optionalDate returns the normalized date, "" when absent. Unquoted TOML
// dates arrive as time.Time and are accepted as calendar dates.
func optionalDate(fm map[string]any, field string) (string, bool) {
	raw, present := fm[field]
	if !present {
		return "", true
	}
	switch v := raw.(type) {
	case string:
		if validDate(v) {
			return v, true
		}
	case time.Time:
		return v.Format(dateLayout), true
	}
	return "", false
}

// validDate accepts YYYY-MM-DD strings that name a real calendar date.
func validDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Format(dateLayout) == s
}

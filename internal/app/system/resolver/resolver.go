// internal/app/system/resolver/resolver.go
package resolver

import (
	"strings"

	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// Kind is the outcome of resolving a materials path.
type Kind int

const (
	KindRoot Kind = iota
	KindRedirect
	KindArticle
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindRedirect:
		return "redirect"
	case KindArticle:
		return "article"
	default:
		return "not-found"
	}
}

// Outcome is the result of Resolve. Location is set for redirects; the
// Category/Section/Material triple is set for articles.
type Outcome struct {
	Kind     Kind
	Location string

	Category *models.Category
	Section  *models.Section
	Material *models.MaterialMeta
}

// Base is the route prefix every materials path lives under.
const Base = "/materials"

// Segments splits a path below Base into its non-empty segments.
// "/materials/redis//basics/" yields ["redis", "basics"].
func Segments(p string) []string {
	if p == Base || strings.HasPrefix(p, Base+"/") {
		p = p[len(Base):]
	}
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Resolve maps up to three path segments onto the tree. Shorthand paths
// (category, or category/section) redirect to their first material; exact
// paths select an article; anything else is not found. The tree is only
// read.
func Resolve(segments []string, tree *models.MaterialsTree) Outcome {
	if len(segments) == 0 {
		return Outcome{Kind: KindRoot}
	}
	if len(segments) > 3 || tree == nil {
		return Outcome{Kind: KindNotFound}
	}

	cat, ok := tree.FindCategory(segments[0])
	if !ok {
		return Outcome{Kind: KindNotFound}
	}

	switch len(segments) {
	case 1:
		if len(cat.Sections) == 0 {
			return Outcome{Kind: KindNotFound}
		}
		return redirectToFirst(cat.Sections[0])
	case 2:
		sec, ok := cat.FindSection(segments[1])
		if !ok {
			return Outcome{Kind: KindNotFound}
		}
		return redirectToFirst(*sec)
	}

	sec, ok := cat.FindSection(segments[1])
	if !ok {
		return Outcome{Kind: KindNotFound}
	}
	mat, ok := sec.FindMaterial(segments[2])
	if !ok {
		return Outcome{Kind: KindNotFound}
	}
	return Outcome{Kind: KindArticle, Category: cat, Section: sec, Material: mat}
}

func redirectToFirst(sec models.Section) Outcome {
	if len(sec.Materials) == 0 {
		return Outcome{Kind: KindNotFound}
	}
	return Outcome{Kind: KindRedirect, Location: ArticlePath(sec.Materials[0].ID)}
}

// ArticlePath is the canonical three-segment route of a material.
func ArticlePath(id models.MaterialID) string {
	return id.Path()
}

// ResolveLanding decides what the bare materials route shows. When the
// visitor's last path still names an article, it returns a redirect to it;
// otherwise it returns root. The stored path is re-resolved every time, so
// an article that disappeared from the catalog is simply ignored.
func ResolveLanding(lastPath string, tree *models.MaterialsTree) Outcome {
	if !IsMaterialsPath(lastPath) {
		return Outcome{Kind: KindRoot}
	}
	out := Resolve(Segments(stripQuery(lastPath)), tree)
	if out.Kind != KindArticle {
		return Outcome{Kind: KindRoot}
	}
	return Outcome{Kind: KindRedirect, Location: ArticlePath(out.Material.ID)}
}

// IsMaterialsPath reports whether p is a safe, local materials path that may
// be stored and later redirected to.
func IsMaterialsPath(p string) bool {
	if p == "" || strings.Contains(p, "://") || strings.ContainsAny(p, "\r\n\\") {
		return false
	}
	if strings.HasPrefix(p, "//") {
		return false
	}
	return p == Base || strings.HasPrefix(p, Base+"/") || strings.HasPrefix(p, Base+"?")
}

func stripQuery(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		return p[:i]
	}
	return p
}

// Neighbors returns the materials before and after slug inside its section.
func Neighbors(sec *models.Section, slug string) (prev, next *models.MaterialMeta) {
	if sec == nil {
		return nil, nil
	}
	for i := range sec.Materials {
		if sec.Materials[i].ID.Slug != slug {
			continue
		}
		if i > 0 {
			prev = &sec.Materials[i-1]
		}
		if i+1 < len(sec.Materials) {
			next = &sec.Materials[i+1]
		}
		return prev, next
	}
	return nil, nil
}

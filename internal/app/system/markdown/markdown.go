// internal/app/system/markdown/markdown.go
package markdown

import (
	"bytes"
	"html/template"
	"io"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/htmlsanitize"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// DefaultStyle is the chroma style used for code blocks.
const DefaultStyle = "dracula"

var assetBaseKey = parser.NewContextKey()

// Renderer turns article markdown into sanitized HTML.
type Renderer struct {
	md    goldmark.Markdown
	style string
}

// New builds a Renderer. Code is highlighted with CSS classes; WriteCSS emits
// the matching stylesheet for style.
func New(style string) *Renderer {
	if style == "" {
		style = DefaultStyle
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(util.Prioritized(rebaser{}, 100)),
		),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md, style: style}
}

// Render converts source to HTML. Relative link and image targets resolve
// against assetBase, the public directory of the markdown file.
func (r *Renderer) Render(source, assetBase string) (template.HTML, error) {
	pc := parser.NewContext(parser.WithIDs(newHeadingIDs()))
	pc.Set(assetBaseKey, assetBase)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf, parser.WithContext(pc)); err != nil {
		return "", errors.Wrap(err, "render markdown")
	}
	return htmlsanitize.SanitizeToHTML(buf.String()), nil
}

// WriteCSS writes the stylesheet for highlighted code blocks.
func (r *Renderer) WriteCSS(w io.Writer) error {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	return formatter.WriteCSS(w, styles.Get(r.style))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Relative asset URLs                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

type rebaser struct{}

func (rebaser) Transform(doc *ast.Document, _ text.Reader, pc parser.Context) {
	base, _ := pc.Get(assetBaseKey).(string)
	if base == "" {
		return
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			node.Destination = []byte(Rebase(string(node.Destination), base))
		case *ast.Image:
			node.Destination = []byte(Rebase(string(node.Destination), base))
			node.SetAttributeString("loading", []byte("lazy"))
		}
		return ast.WalkContinue, nil
	})
}

// Rebase resolves a relative URL against base. Absolute URLs, root-relative
// paths, fragments and query-only references are returned unchanged.
func Rebase(dest, base string) string {
	if dest == "" || strings.HasPrefix(dest, "/") || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "?") {
		return dest
	}
	ref, err := url.Parse(dest)
	if err != nil || ref.Scheme != "" || ref.Host != "" {
		return dest
	}
	b, err := url.Parse(base)
	if err != nil {
		return dest
	}
	if !strings.HasSuffix(b.Path, "/") {
		b.Path += "/"
	}
	return b.ResolveReference(ref).String()
}

/*─────────────────────────────────────────────────────────────────────────────*
| Heading ids                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// headingIDs slugs heading text keeping letters of any script, so Cyrillic
// headings get readable anchors. Repeats get a numeric suffix.
type headingIDs struct {
	seen map[string]int
}

func newHeadingIDs() *headingIDs {
	return &headingIDs{seen: map[string]int{}}
}

func (s *headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	var b strings.Builder
	dash := false
	for _, r := range strings.TrimSpace(string(value)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
			dash = false
		case unicode.IsSpace(r) || r == '-' || r == '_':
			if b.Len() > 0 && !dash {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	id := strings.TrimSuffix(b.String(), "-")
	if id == "" {
		id = "heading"
		if kind != ast.KindHeading {
			id = "id"
		}
	}

	if n, dup := s.seen[id]; dup {
		s.seen[id] = n + 1
		id += "-" + strconv.Itoa(n)
	}
	s.seen[id]++
	return []byte(id)
}

func (s *headingIDs) Put(value []byte) {
	s.seen[string(value)]++
}

// internal/app/system/htmlsanitize/htmlsanitize.go
package htmlsanitize

import (
	"html/template"
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

var headingID = regexp.MustCompile(`^[\p{L}\p{N}_-]+$`)

// articlePolicy is the UGC policy widened for rendered articles: classes from
// the syntax highlighter, heading anchors and code-block languages survive.
func articlePolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("span", "div")
		p.AllowStyling()
		p.AllowAttrs("id").Matching(headingID).OnElements("h1", "h2", "h3", "h4", "h5", "h6")
		p.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")

		// Internal article links stay followable; external ones do not.
		p.RequireNoFollowOnLinks(false)
		p.RequireNoFollowOnFullyQualifiedLinks(true)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		policy = p
	})
	return policy
}

// Sanitize strips anything not allowed by the article policy.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return articlePolicy().Sanitize(s)
}

// SanitizeToHTML sanitizes s and marks the result safe for templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

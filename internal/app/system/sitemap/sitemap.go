// internal/app/system/sitemap/sitemap.go
package sitemap

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/domain/models"
)

// URL is one <url> element.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []URL    `xml:"url"`
}

// URLs lists the site pages: home, the materials landing, then one URL per
// canonical material in index order. Article URLs carry no language, so all
// variants of a material share one entry.
func URLs(baseURL string, entries []models.MaterialMeta, now time.Time) []URL {
	base := strings.TrimRight(baseURL, "/")
	lastmod := now.UTC().Format(time.RFC3339)

	urls := []URL{
		{Loc: base + "/", LastMod: lastmod, ChangeFreq: "weekly", Priority: "1.0"},
		{Loc: base + "/materials", LastMod: lastmod, ChangeFreq: "weekly", Priority: "0.9"},
	}

	seen := make(map[string]bool)
	for _, e := range entries {
		key := e.ID.CanonicalKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		urls = append(urls, URL{
			Loc:        base + e.ID.Path(),
			LastMod:    lastmod,
			ChangeFreq: "monthly",
			Priority:   "0.8",
		})
	}
	return urls
}

// Generate renders the sitemap XML document.
func Generate(baseURL string, entries []models.MaterialMeta, now time.Time) ([]byte, error) {
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
		URLs:  URLs(baseURL, entries, now),
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, errors.Wrap(err, "encode sitemap")
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

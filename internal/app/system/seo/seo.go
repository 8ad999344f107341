// internal/app/system/seo/seo.go
package seo

import (
	"encoding/json"
	"html/template"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/i18n"
	"github.com/eduardgagite/portfolio/internal/domain/models"
)

const (
	DefaultBaseURL = "https://eduardgagite.github.io"
	DefaultAuthor  = "Eduard Gagite"

	DefaultTitle       = "Eduard Gagite — Backend Developer"
	DefaultDescription = "Backend-разработчик. Пишу на Go, работаю с Kafka, RabbitMQ, Docker, gRPC. Делюсь знаниями: курсы по Redis, Docker и другим технологиям."
)

// Site holds the values every page's metadata is built from.
type Site struct {
	BaseURL string
	Author  string
	OGImage string
}

// NewSite fills blanks with the production defaults.
func NewSite(baseURL, author string) Site {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if author == "" {
		author = DefaultAuthor
	}
	return Site{BaseURL: baseURL, Author: author, OGImage: baseURL + "/images/og-image.png"}
}

// Alternate is one hreflang link.
type Alternate struct {
	Lang string
	URL  string
}

// Meta is everything rendered into <head>. Empty fields are omitted by the
// layout.
type Meta struct {
	Title         string
	Description   string
	Keywords      string
	OGTitle       string
	OGDescription string
	OGImage       string
	OGURL         string
	OGType        string
	OGLocale      string
	Canonical     string

	ArticleAuthor        string
	ArticlePublishedTime string
	ArticleSection       string

	Alternates     []Alternate
	StructuredData template.JS
}

// OGLocale maps a language to its Open Graph locale.
func OGLocale(lang models.Lang) string {
	if lang == models.LangEN {
		return "en_US"
	}
	return "ru_RU"
}

// Defaults is the site-wide metadata every page starts from.
func (s Site) Defaults() Meta {
	return Meta{
		Title:         DefaultTitle,
		Description:   DefaultDescription,
		OGTitle:       DefaultTitle,
		OGDescription: DefaultDescription,
		OGImage:       s.OGImage,
		OGURL:         s.BaseURL,
		OGType:        "website",
		Canonical:     s.BaseURL,
	}
}

// Page is metadata for a plain page at path in lang.
func (s Site) Page(title, description, path string, lang models.Lang) Meta {
	m := s.Defaults()
	url := i18n.AbsoluteLangURL(s.BaseURL, path, lang)
	if title != "" {
		m.Title, m.OGTitle = title, title
	}
	if description != "" {
		m.Description, m.OGDescription = description, description
	}
	m.OGURL, m.Canonical = url, url
	m.OGLocale = OGLocale(lang)
	return m
}

// Landing is the metadata of the materials landing view.
func (s Site) Landing(lang models.Lang) Meta {
	title := "Материалы — " + s.Author
	description := "Курсы и материалы по Redis, Docker и другим технологиям для backend-разработчиков."
	if lang == models.LangEN {
		title = "Materials — " + s.Author
		description = "Courses and notes on Redis, Docker and other technologies for backend developers."
	}
	m := s.Defaults()
	m.Title, m.OGTitle = title, title
	m.Description, m.OGDescription = description, description
	m.OGURL = s.BaseURL + "/materials"
	m.Canonical = m.OGURL
	m.OGLocale = OGLocale(lang)
	return m
}

// ForMaterial builds article metadata. langs are the languages the material
// exists in; with more than one an x-default alternate pointing at Russian
// is added.
func (s Site) ForMaterial(mat models.MaterialMeta, langs []models.Lang) (Meta, error) {
	title := mat.Title + " — " + mat.CategoryTitle
	description := mat.Subtitle
	if description == "" {
		description = "Материал из раздела " + mat.SectionTitle + " курса " + mat.CategoryTitle + "."
	}
	path := mat.ID.Path()
	url := i18n.AbsoluteLangURL(s.BaseURL, path, mat.ID.Lang)

	if len(langs) == 0 {
		langs = []models.Lang{mat.ID.Lang}
	}
	alternates := make([]Alternate, 0, len(langs)+1)
	for _, l := range langs {
		alternates = append(alternates, Alternate{Lang: string(l), URL: i18n.AbsoluteLangURL(s.BaseURL, path, l)})
	}
	if len(langs) > 1 {
		alternates = append(alternates, Alternate{Lang: "x-default", URL: i18n.AbsoluteLangURL(s.BaseURL, path, models.DefaultLang)})
	}

	ld, err := s.article(mat, description, url)
	if err != nil {
		return Meta{}, err
	}

	return Meta{
		Title:                title,
		Description:          description,
		Keywords:             strings.Join([]string{mat.CategoryTitle, mat.SectionTitle, mat.Title, "backend", "разработка"}, ", "),
		OGTitle:              title,
		OGDescription:        description,
		OGImage:              s.OGImage,
		OGURL:                url,
		OGType:               "article",
		OGLocale:             OGLocale(mat.ID.Lang),
		Canonical:            url,
		ArticleAuthor:        s.Author,
		ArticlePublishedTime: mat.DatePublished,
		ArticleSection:       mat.SectionTitle,
		Alternates:           alternates,
		StructuredData:       ld,
	}, nil
}

/*─────────────────────────────────────────────────────────────────────────────*
| JSON-LD                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

type person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type webPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

type article struct {
	Context          string  `json:"@context"`
	Type             string  `json:"@type"`
	Headline         string  `json:"headline"`
	Description      string  `json:"description"`
	Author           person  `json:"author"`
	Publisher        person  `json:"publisher"`
	DatePublished    string  `json:"datePublished,omitempty"`
	DateModified     string  `json:"dateModified,omitempty"`
	MainEntityOfPage webPage `json:"mainEntityOfPage"`
	ArticleSection   string  `json:"articleSection"`
	InLanguage       string  `json:"inLanguage"`
	Image            string  `json:"image"`
}

func (s Site) article(mat models.MaterialMeta, description, url string) (template.JS, error) {
	modified := mat.DateModified
	if modified == "" {
		modified = mat.DatePublished
	}
	author := person{Type: "Person", Name: s.Author, URL: s.BaseURL}
	b, err := json.Marshal(article{
		Context:          "https://schema.org",
		Type:             "Article",
		Headline:         mat.Title,
		Description:      description,
		Author:           author,
		Publisher:        author,
		DatePublished:    mat.DatePublished,
		DateModified:     modified,
		MainEntityOfPage: webPage{Type: "WebPage", ID: url},
		ArticleSection:   mat.SectionTitle,
		InLanguage:       string(mat.ID.Lang),
		Image:            s.OGImage,
	})
	if err != nil {
		return "", errors.Wrap(err, "encode article json-ld")
	}
	// json.Marshal escapes <, > and &, so the payload cannot close the script.
	return template.JS(b), nil
}

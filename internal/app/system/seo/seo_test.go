package seo

import (
	"encoding/json"
	"testing"

	"github.com/eduardgagite/portfolio/internal/domain/models"
)

func redisIntro(lang models.Lang) models.MaterialMeta {
	return models.MaterialMeta{
		Frontmatter: models.Frontmatter{
			Title:         "Что такое Redis",
			CategoryTitle: "Redis",
			SectionTitle:  "Основы",
			DatePublished: "2024-01-10",
		},
		ID: models.MaterialID{Category: "redis", Section: "basics", Slug: "intro", Lang: lang},
	}
}

func TestNewSite_Defaults(t *testing.T) {
	s := NewSite("", "")
	if s.BaseURL != DefaultBaseURL || s.Author != DefaultAuthor {
		t.Errorf("NewSite = %+v", s)
	}
	if s.OGImage != "https://eduardgagite.github.io/images/og-image.png" {
		t.Errorf("OGImage = %q", s.OGImage)
	}
	if got := NewSite("https://example.com/", "").BaseURL; got != "https://example.com" {
		t.Errorf("trailing slash kept: %q", got)
	}
}

func TestForMaterial(t *testing.T) {
	s := NewSite("", "")

	m, err := s.ForMaterial(redisIntro(models.LangRU), []models.Lang{models.LangRU, models.LangEN})
	if err != nil {
		t.Fatalf("ForMaterial: %v", err)
	}

	if m.Title != "Что такое Redis — Redis" {
		t.Errorf("Title = %q", m.Title)
	}
	if m.Description != "Материал из раздела Основы курса Redis." {
		t.Errorf("Description = %q", m.Description)
	}
	if m.Keywords != "Redis, Основы, Что такое Redis, backend, разработка" {
		t.Errorf("Keywords = %q", m.Keywords)
	}
	if m.Canonical != "https://eduardgagite.github.io/materials/redis/basics/intro?lang=ru" {
		t.Errorf("Canonical = %q", m.Canonical)
	}
	if m.OGType != "article" || m.OGLocale != "ru_RU" {
		t.Errorf("og = %q / %q", m.OGType, m.OGLocale)
	}

	want := []Alternate{
		{"ru", "https://eduardgagite.github.io/materials/redis/basics/intro?lang=ru"},
		{"en", "https://eduardgagite.github.io/materials/redis/basics/intro?lang=en"},
		{"x-default", "https://eduardgagite.github.io/materials/redis/basics/intro?lang=ru"},
	}
	if len(m.Alternates) != len(want) {
		t.Fatalf("Alternates = %+v", m.Alternates)
	}
	for i := range want {
		if m.Alternates[i] != want[i] {
			t.Errorf("Alternates[%d] = %+v, want %+v", i, m.Alternates[i], want[i])
		}
	}
}

func TestForMaterial_SingleLanguageHasNoDefault(t *testing.T) {
	mat := redisIntro(models.LangEN)
	mat.Subtitle = "Keys and values"

	m, err := NewSite("", "").ForMaterial(mat, []models.Lang{models.LangEN})
	if err != nil {
		t.Fatalf("ForMaterial: %v", err)
	}
	if len(m.Alternates) != 1 || m.Alternates[0].Lang != "en" {
		t.Errorf("Alternates = %+v", m.Alternates)
	}
	if m.Description != "Keys and values" || m.OGLocale != "en_US" {
		t.Errorf("Description/locale = %q / %q", m.Description, m.OGLocale)
	}
}

func TestForMaterial_StructuredData(t *testing.T) {
	m, err := NewSite("", "").ForMaterial(redisIntro(models.LangRU), nil)
	if err != nil {
		t.Fatalf("ForMaterial: %v", err)
	}

	var ld map[string]any
	if err := json.Unmarshal([]byte(m.StructuredData), &ld); err != nil {
		t.Fatalf("json-ld does not parse: %v", err)
	}
	if ld["@type"] != "Article" || ld["headline"] != "Что такое Redis" || ld["inLanguage"] != "ru" {
		t.Errorf("json-ld = %v", ld)
	}
	if ld["dateModified"] != "2024-01-10" {
		t.Errorf("dateModified should fall back to datePublished, got %v", ld["dateModified"])
	}
	author, _ := ld["author"].(map[string]any)
	if author["name"] != "Eduard Gagite" || author["url"] != "https://eduardgagite.github.io" {
		t.Errorf("author = %v", author)
	}
}

func TestLandingAndDefaults(t *testing.T) {
	s := NewSite("", "")

	l := s.Landing(models.LangRU)
	if l.Title != "Материалы — Eduard Gagite" || l.Canonical != "https://eduardgagite.github.io/materials" {
		t.Errorf("Landing = %+v", l)
	}
	d := s.Defaults()
	if d.Title != DefaultTitle || d.Canonical != DefaultBaseURL || d.StructuredData != "" || d.Alternates != nil {
		t.Errorf("Defaults = %+v", d)
	}
}

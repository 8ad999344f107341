package models

import "testing"

func TestMaterialIDKeys(t *testing.T) {
	id := MaterialID{Category: "redis", Section: "basics", Slug: "intro", Lang: LangEN}

	if got := id.CanonicalKey(); got != "redis/basics/intro" {
		t.Errorf("CanonicalKey() = %q", got)
	}
	if got := id.Key(); got != "redis/basics/intro:en" {
		t.Errorf("Key() = %q", got)
	}
	if got := id.Path(); got != "/materials/redis/basics/intro" {
		t.Errorf("Path() = %q", got)
	}
}

func TestParseLang(t *testing.T) {
	tests := []struct {
		in   string
		want Lang
		ok   bool
	}{
		{"ru", LangRU, true},
		{" EN ", LangEN, true},
		{"en-US", LangEN, true},
		{"ru_RU", LangRU, true},
		{"de", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLang(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLang(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMaterialMetaHelpers(t *testing.T) {
	m := MaterialMeta{
		Frontmatter: Frontmatter{Title: "Redis Intro", Subtitle: "Keys And Values", Tags: []string{"cache"}},
		Path:        "/content/materials/redis/basics/intro.ru.md",
	}

	if m.SortOrder() != 0 {
		t.Errorf("SortOrder() without order = %d, want 0", m.SortOrder())
	}
	m.Order = IntPtr(3)
	if m.SortOrder() != 3 {
		t.Errorf("SortOrder() = %d, want 3", m.SortOrder())
	}
	if !m.HasTag("cache") || m.HasTag("db") {
		t.Error("HasTag mismatch")
	}
	if got := m.SearchText(); got != "redis intro keys and values" {
		t.Errorf("SearchText() = %q", got)
	}
	if got := m.AssetBase(); got != "/content/materials/redis/basics/" {
		t.Errorf("AssetBase() = %q", got)
	}
}

// internal/domain/models/lang.go
package models

import "strings"

// Lang is a supported content language.
type Lang string

const (
	LangRU Lang = "ru"
	LangEN Lang = "en"
)

// DefaultLang is used whenever no usable language preference exists.
const DefaultLang = LangRU

// SupportedLangs lists the content languages in fallback priority order.
var SupportedLangs = []Lang{LangRU, LangEN}

// ParseLang normalizes s ("RU", " en ", "en-US") into a supported Lang.
func ParseLang(s string) (Lang, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i > 0 {
		s = s[:i]
	}
	switch Lang(s) {
	case LangRU:
		return LangRU, true
	case LangEN:
		return LangEN, true
	}
	return "", false
}

// Valid reports whether l is a supported language.
func (l Lang) Valid() bool {
	return l == LangRU || l == LangEN
}

// String implements fmt.Stringer.
func (l Lang) String() string { return string(l) }

// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"net/url"
	"strings"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required path prefix (e.g., "/materials").
	// If empty, any safe local URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject (e.g., "/sidebar/").
	// These prevent redirect loops back to action endpoints.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string

	// PreserveQueryParam is an optional query parameter to preserve in the fallback URL.
	// For example, "lang" keeps the page language when the return URL is rejected.
	PreserveQueryParam string
}

// SafeBackURL extracts and validates a return URL from the request.
//
// It reads the "return" form value (query or body), accepts only local
// paths (no scheme, host or protocol-relative form), optionally validates
// the prefix, and excludes specified subpaths to prevent redirect loops.
//
// Example usage:
//
//	url := navigation.SafeBackURL(r, navigation.MaterialsBackURL)
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	if ret := SafeLocal(r.FormValue("return")); ret != "" && allowed(ret, opts) {
		return ret
	}

	// Build fallback URL, optionally preserving a query parameter
	fallback := opts.Fallback
	if opts.PreserveQueryParam != "" {
		if param := strings.TrimSpace(r.FormValue(opts.PreserveQueryParam)); param != "" {
			sep := "?"
			if strings.Contains(fallback, "?") {
				sep = "&"
			}
			fallback += sep + url.QueryEscape(opts.PreserveQueryParam) + "=" + url.QueryEscape(param)
		}
	}
	return fallback
}

// SafeLocal returns s when it is a site-local path, or "" otherwise.
func SafeLocal(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || !strings.HasPrefix(s, "/") || strings.HasPrefix(s, "//") {
		return ""
	}
	if strings.ContainsAny(s, "\\\r\n") || strings.Contains(s, "://") {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}
	return s
}

func allowed(ret string, opts BackURLOptions) bool {
	if p := opts.AllowedPrefix; p != "" {
		if ret != p && !strings.HasPrefix(ret, p+"/") && !strings.HasPrefix(ret, p+"?") {
			return false
		}
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return false
		}
	}
	return true
}

// MaterialsBackURL returns options for the materials pages.
var MaterialsBackURL = BackURLOptions{
	AllowedPrefix:      "/materials",
	ExcludedSubpaths:   []string{"/sidebar/"},
	Fallback:           "/materials",
	PreserveQueryParam: "lang",
}

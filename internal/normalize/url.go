// Package normalize turns loosely formatted upstream values (hrefs, dates,
// whitespace-heavy text) into canonical strings.
package normalize

import (
	"net/url"
	"strings"
)

// skipPrefixes are href schemes/anchors that never yield a fetchable page.
var skipPrefixes = []string{"#", "javascript:", "mailto:", "tel:", "data:"}

// Absolutize resolves href against base. It returns "" for empty, anchor-only,
// non-HTTP and malformed input; it never panics. Protocol-relative URLs get
// https, and relative paths are resolved from the origin root.
func Absolutize(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}

	lower := strings.ToLower(href)
	for _, p := range skipPrefixes {
		if strings.HasPrefix(lower, p) {
			return ""
		}
	}

	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if u.IsAbs() {
		if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return ""
		}
		return u.String()
	}

	b, err := url.Parse(base)
	if err != nil || !b.IsAbs() || b.Host == "" {
		return ""
	}

	// "mps/profile" is meant as "/mps/profile" on the upstream site.
	if !strings.HasPrefix(href, "/") && !strings.HasPrefix(href, "?") {
		u, err = url.Parse("/" + href)
		if err != nil {
			return ""
		}
	}

	resolved := b.ResolveReference(u)
	resolved.Fragment = ""
	return resolved.String()
}

// Origin returns scheme://host of rawURL, or "" when it has none.
func Origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

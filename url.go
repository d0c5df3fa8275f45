package pagesift

import (
	"net/url"
	"strings"
)

// NormalizeURL canonicalizes a user-supplied URL string. Inputs without a
// scheme get "https://" prepended. Reachability is not checked here; that
// is deferred to the fetch step. Returns EINVALID for empty or unparseable
// input.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "url required")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", Errorf(EINVALID, "unparseable url %q", raw)
	}
	return u.String(), nil
}

// SourceLabel derives a source attribution from a page URL, used when the
// page offers no better source name. Returns the hostname without a
// leading "www.", or the input unchanged if it does not parse.
func SourceLabel(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return pageURL
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

package pagesift

import "strings"

// SiteClass selects the fetch path for a page.
type SiteClass string

// Fetch paths. Static pages are fetched with a plain HTTP GET; dynamic
// pages are rendered in a headless browser first.
const (
	SiteStatic  SiteClass = "static"
	SiteDynamic SiteClass = "dynamic"
)

// RouteTable maps URL substrings to fetch paths. It is a heuristic
// allow-list, not content inspection: hosts known to render their content
// with client-side script route to SiteDynamic, everything else defaults to
// SiteStatic. Adding a site is a data edit, not a dispatch change.
//
// Patterns are matched as substrings of the lowercased URL, so an entry can
// constrain both host and path (e.g. "linkedin.com/jobs").
type RouteTable map[string]SiteClass

// DefaultRoutes covers known JS-heavy job boards and publishing platforms.
func DefaultRoutes() RouteTable {
	return RouteTable{
		"naukri.com":        SiteDynamic,
		"linkedin.com/jobs": SiteDynamic,
		"indeed.com":        SiteDynamic,
		"glassdoor.com":     SiteDynamic,
		"wellfound.com":     SiteDynamic,
		"angel.co":          SiteDynamic,
		"medium.com":        SiteDynamic,
	}
}

// Class returns the fetch path for a normalized URL.
func (t RouteTable) Class(rawURL string) SiteClass {
	lower := strings.ToLower(rawURL)
	for pattern, class := range t {
		if strings.Contains(lower, pattern) {
			return class
		}
	}
	return SiteStatic
}

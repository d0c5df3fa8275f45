package pagesift

import "strings"

// protectedSites lists sites that hard-require authentication. Matching is
// a substring check over the lowercased URL so an entry can pin a path
// (e.g. "amazon.com/account"). The list is deliberately short: it only
// names sites where scraping without a session is known to be pointless.
var protectedSites = []string{
	"linkedin.com",
	"facebook.com",
	"instagram.com",
	"netflix.com",
	"gmail.com",
	"outlook.com",
	"amazon.com/account",
	"amazon.com/gp/your-account",
	"dropbox.com/home",
	"slack.com/messages",
	"discord.com/channels",
	"twitter.com/home",
	"x.com/home",
	"github.com/settings",
	"github.com/login",
}

// loginMarkers are body fragments that only ever appear on pages refusing
// anonymous access.
var loginMarkers = []string{
	"password required",
	"not logged in",
	"access denied",
	"login first",
	"401",
	"403",
}

// LoginRequired reports whether a page sits behind a login wall. It checks
// the URL against the protected-site list and, when body HTML is supplied,
// scans it for unambiguous refusal markers. Pass an empty html to check the
// URL alone before fetching.
func LoginRequired(pageURL, html string) bool {
	urlLower := strings.ToLower(pageURL)
	for _, site := range protectedSites {
		if strings.Contains(urlLower, site) {
			return true
		}
	}
	if html == "" {
		return false
	}
	htmlLower := strings.ToLower(html)
	for _, marker := range loginMarkers {
		if strings.Contains(htmlLower, marker) {
			return true
		}
	}
	return false
}

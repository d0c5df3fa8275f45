package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxLinks bounds how many anchors one page contributes.
const maxLinks = 20

// minLinkTextLen filters navigation chrome ("Home", "FAQ", icons).
const minLinkTextLen = 4

var _ Strategy = (*LinkStrategy)(nil)

// LinkStrategy is the last resort of the cascade: every anchor with enough
// text becomes an item. Title is the anchor text, the link is resolved
// absolute, there is no snippet, and attribution is just the page's host.
type LinkStrategy struct{}

// Name returns the strategy's identifier.
func (s *LinkStrategy) Name() string {
	return "links"
}

// Extract collects items from bare anchors.
func (s *LinkStrategy) Extract(doc *goquery.Document, base *url.URL, _ string) []pagesift.Item {
	host := pagesift.SourceLabel(base.String())
	var items []pagesift.Item
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := normalizeSpace(sel.Text())
		if len([]rune(title)) < minLinkTextLen {
			return true
		}
		href, _ := sel.Attr("href")
		link := resolveLink(base, href)
		if link == "" {
			return true
		}
		items = append(items, pagesift.Item{
			Title:   title,
			Company: host,
			Link:    link,
		})
		return len(items) < maxLinks
	})
	return items
}

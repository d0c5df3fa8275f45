package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxArticles bounds how many article containers one page contributes.
const maxArticles = 10

var _ Strategy = (*ArticleStrategy)(nil)

// ArticleStrategy extracts items from semantic <article> containers. It is
// the first and most reliable rung of the cascade: pages that mark their
// stories up semantically need no heuristics at all.
type ArticleStrategy struct{}

// Name returns the strategy's identifier.
func (s *ArticleStrategy) Name() string {
	return "articles"
}

// Extract derives one item per <article>: title from the first heading
// descendant, link from the first anchor (falling back to the page URL),
// snippet from the container text.
func (s *ArticleStrategy) Extract(doc *goquery.Document, base *url.URL, source string) []pagesift.Item {
	var items []pagesift.Item
	doc.Find("article").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		items = append(items, deriveItem(sel, base, source))
		return len(items) < maxArticles
	})
	return items
}

// deriveItem builds an item from a container element. Shared by the
// article and content-class strategies.
func deriveItem(sel *goquery.Selection, base *url.URL, source string) pagesift.Item {
	item := pagesift.Item{
		Title:   firstText(sel, "h1, h2, h3, h4"),
		Company: source,
		Snippet: normalizeSpace(sel.Text()),
		Link:    containerLink(sel, base),
	}

	// Score and comment counts are a bonus on aggregator-style pages.
	item.Score = firstText(sel, ".score, .points, .votes")
	item.Comments = firstText(sel, ".comments, .comment-count")

	return item
}

// containerLink returns the container's first resolvable anchor, or the
// page URL itself when the container has none.
func containerLink(sel *goquery.Selection, base *url.URL) string {
	link := ""
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, _ := a.Attr("href")
		link = resolveLink(base, href)
		return link == ""
	})
	if link == "" {
		return base.String()
	}
	return link
}

package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxContainers bounds how many heuristic containers one page contributes.
const maxContainers = 10

// containerVocabulary are the class/id substrings that mark an element as a
// likely content container.
var containerVocabulary = []string{"post", "article", "item", "content", "card", "story", "entry"}

var _ Strategy = (*ContainerStrategy)(nil)

// ContainerStrategy extracts items from elements whose class or id
// attributes match a known content vocabulary. It catches the large class
// of pages that skip semantic markup but still name their containers
// something like "post-card" or "story-item".
type ContainerStrategy struct{}

// Name returns the strategy's identifier.
func (s *ContainerStrategy) Name() string {
	return "containers"
}

// Extract derives one item per matching container, using the same
// title/link/snippet derivation as the article strategy. Containers
// without a heading are skipped.
func (s *ContainerStrategy) Extract(doc *goquery.Document, base *url.URL, source string) []pagesift.Item {
	var items []pagesift.Item
	doc.Find("div, section, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if !matchesVocabulary(sel) {
			return true
		}
		if sel.Find("h1, h2, h3, h4").Length() == 0 {
			return true
		}
		items = append(items, deriveItem(sel, base, source))
		return len(items) < maxContainers
	})
	return items
}

// matchesVocabulary reports whether the element's class or id contains any
// of the content vocabulary substrings.
func matchesVocabulary(sel *goquery.Selection) bool {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	attrs := strings.ToLower(class + " " + id)
	if strings.TrimSpace(attrs) == "" {
		return false
	}
	for _, word := range containerVocabulary {
		if strings.Contains(attrs, word) {
			return true
		}
	}
	return false
}

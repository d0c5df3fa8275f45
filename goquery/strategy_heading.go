package goquery

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxHeadings bounds how many headings one page contributes.
const maxHeadings = 15

// minHeadingLen filters out decorative one-character headings.
const minHeadingLen = 4

var _ Strategy = (*HeadingStrategy)(nil)

// HeadingStrategy treats each h1–h3 with non-trivial text as one item,
// taking its link from an anchor inside the heading, inside the heading's
// parent, or falling back to the page URL. The snippet comes from the
// first paragraph following the heading, when there is one.
type HeadingStrategy struct{}

// Name returns the strategy's identifier.
func (s *HeadingStrategy) Name() string {
	return "headings"
}

// Extract collects items from document headings.
func (s *HeadingStrategy) Extract(doc *goquery.Document, base *url.URL, source string) []pagesift.Item {
	var items []pagesift.Item
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := normalizeSpace(sel.Text())
		if len([]rune(title)) < minHeadingLen {
			return true
		}
		items = append(items, pagesift.Item{
			Title:   title,
			Company: source,
			Snippet: headingSnippet(sel),
			Link:    headingLink(sel, base),
		})
		return len(items) < maxHeadings
	})
	return items
}

// headingLink finds the anchor associated with a heading: a descendant
// anchor first, then any anchor under the heading's parent, then the page
// URL as a last resort.
func headingLink(sel *goquery.Selection, base *url.URL) string {
	if link := containerLink(sel, base); link != base.String() {
		return link
	}
	if parent := sel.Parent(); parent.Length() > 0 {
		return containerLink(parent, base)
	}
	return base.String()
}

// headingSnippet returns the text of the first paragraph after the heading,
// or of the first paragraph within the heading's parent.
func headingSnippet(sel *goquery.Selection) string {
	if text := normalizeSpace(sel.NextAllFiltered("p").First().Text()); text != "" {
		return text
	}
	return normalizeSpace(sel.Parent().Find("p").First().Text())
}

package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// maxSearchResults bounds how many results one search page contributes.
const maxSearchResults = 15

var _ pagesift.ItemExtractor = (*SearchResultExtractor)(nil)

// SearchResultExtractor parses DuckDuckGo's HTML search endpoint
// (html.duckduckgo.com/html). Search pages have a stable result structure,
// so this bypasses the generic cascade entirely.
type SearchResultExtractor struct{}

// NewSearchResultExtractor creates a SearchResultExtractor.
func NewSearchResultExtractor() *SearchResultExtractor {
	return &SearchResultExtractor{}
}

// Extract pulls search results out of a results page. The source label of
// each item is the result's own domain, not the search engine's.
func (e *SearchResultExtractor) Extract(html, pageURL string) ([]pagesift.Item, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	var items []pagesift.Item
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find("a.result__a").First()
		title := normalizeSpace(anchor.Text())
		if title == "" {
			return true
		}

		link := ""
		if href, ok := anchor.Attr("href"); ok {
			link = resolveLink(base, href)
		}

		source := normalizeSpace(sel.Find("span.result__url").First().Text())
		if source == "" {
			source = "Unknown source"
		}

		items = append(items, pagesift.Item{
			Title:   title,
			Company: source,
			Snippet: normalizeSpace(sel.Find("a.result__snippet").First().Text()),
			Link:    link,
		})
		return len(items) < maxSearchResults
	})

	return finalizeItems(items, maxSearchResults), nil
}

// Package goquery implements pagesift's HTML extraction on top of
// PuerkitoBio/goquery. The item extractor runs a fixed cascade of
// strategies against the parsed document; the first strategy that yields at
// least one valid item wins and its output is used exclusively.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagesift/pagesift"
)

// Ensure Extractor implements pagesift.ItemExtractor at compile time.
var _ pagesift.ItemExtractor = (*Extractor)(nil)

// Strategy is one extraction algorithm in the cascade. Implementations
// return items in document order; an empty slice means the strategy does
// not apply to this document. Items may still be incomplete at this point;
// the extractor validates, deduplicates and caps them afterwards.
type Strategy interface {
	// Name returns the strategy's identifier (e.g. "articles", "links").
	Name() string

	// Extract pulls items out of the parsed document. base resolves
	// relative links; source is the attribution used when a container
	// names no better one.
	Extract(doc *goquery.Document, base *url.URL, source string) []pagesift.Item
}

// Extractor applies a strategy cascade to HTML documents.
type Extractor struct {
	strategies []Strategy
	maxItems   int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrategies replaces the default cascade.
func WithStrategies(strategies ...Strategy) Option {
	return func(e *Extractor) {
		e.strategies = strategies
	}
}

// WithMaxItems caps the number of items returned per page.
// Defaults to pagesift.MaxItems.
func WithMaxItems(n int) Option {
	return func(e *Extractor) {
		e.maxItems = n
	}
}

// NewExtractor creates an Extractor with the default four-strategy cascade:
// semantic article search, content-class heuristic, heading scan, link
// fallback — in that order.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		strategies: []Strategy{
			&ArticleStrategy{},
			&ContainerStrategy{},
			&HeadingStrategy{},
			&LinkStrategy{},
		},
		maxItems: pagesift.MaxItems,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and runs the cascade. Script, style and noscript
// subtrees are removed before any strategy sees the document. Items missing
// a title or link are dropped silently; each strategy's output is
// deduplicated by (title, link) and capped in document order.
func (e *Extractor) Extract(html, pageURL string) ([]pagesift.Item, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript").Remove()

	source := pageTitle(doc)
	if source == "" {
		source = pagesift.SourceLabel(pageURL)
	}

	for _, strategy := range e.strategies {
		items := finalizeItems(strategy.Extract(doc, base, source), e.maxItems)
		if len(items) > 0 {
			return items, nil
		}
	}
	return nil, nil
}

// finalizeItems drops invalid items, deduplicates by (title, link) and caps
// the result, all in document order.
func finalizeItems(items []pagesift.Item, maxItems int) []pagesift.Item {
	seen := make(map[string]bool, len(items))
	out := make([]pagesift.Item, 0, len(items))
	for _, item := range items {
		item.Title = strings.TrimSpace(item.Title)
		item.Snippet = pagesift.TruncateSnippet(strings.TrimSpace(item.Snippet))
		if item.Validate() != nil {
			continue
		}
		key := item.Title + "\x00" + item.Link
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
		if len(out) == maxItems {
			break
		}
	}
	return out
}

// pageTitle returns the trimmed <title> text, or "".
func pageTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// resolveLink resolves an href against the page URL. Unparseable and
// non-HTTP hrefs (javascript:, mailto:, fragments) resolve to "".
func resolveLink(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" || isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// isNonHTTPLink reports whether href carries a scheme other than http(s).
func isNonHTTPLink(href string) bool {
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "ftp:"} {
		if strings.HasPrefix(strings.ToLower(href), prefix) {
			return true
		}
	}
	return false
}

// normalizeSpace collapses runs of whitespace into single spaces.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// firstText returns the trimmed text of the first node matching any of the
// given selectors within sel.
func firstText(sel *goquery.Selection, selectors string) string {
	return normalizeSpace(sel.Find(selectors).First().Text())
}

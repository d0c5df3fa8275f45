package pagesift

// ItemExtractor turns a page's HTML into content items.
type ItemExtractor interface {
	// Extract parses html and returns the items found in document order.
	// pageURL is used to resolve relative links and derive source
	// attribution. A nil or empty slice with a nil error means the page
	// yielded nothing extractable; that is not a failure.
	//
	// Returned items satisfy Item.Validate: no empty titles, no empty
	// links, snippets within SnippetMaxLen, at most MaxItems items.
	Extract(html, pageURL string) ([]Item, error)
}

// SummaryExtractor assembles page metadata into a Summary.
type SummaryExtractor interface {
	// ExtractSummary reads meta tags (and falls back to body content) to
	// describe the page at pageURL.
	ExtractSummary(html, pageURL string) (*Summary, error)
}

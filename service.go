package pagesift

import "context"

// Service is the scraping entry point consumed by the request layer.
type Service interface {
	// Scrape fetches, extracts and categorizes the page at url. The only
	// error it returns is EINVALID for an empty or unparseable url; fetch,
	// render and extraction failures degrade to an empty Result so a
	// broken site never turns into a server error.
	Scrape(ctx context.Context, url string) (*Result, error)

	// Search runs a web search for a free-text query and categorizes the
	// results the same way Scrape does. Returns EINVALID for an empty
	// query; search failures degrade to an empty Result.
	Search(ctx context.Context, query string) (*Result, error)
}

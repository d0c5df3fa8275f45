// Package scrape provides the scraping orchestration service. It composes
// the fetch, render and extraction layers behind pagesift.Service: one
// normalize → route → fetch → extract → categorize pass per request, with
// every failure past input validation degrading to an empty result.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pagesift/pagesift"
)

// DefaultSearchURL is the HTML search endpoint used by Search.
// DuckDuckGo's HTML frontend needs no API key and renders server-side.
const DefaultSearchURL = "https://html.duckduckgo.com/html/"

// Ensure Service implements pagesift.Service at compile time.
var _ pagesift.Service = (*Service)(nil)

// Service implements pagesift.Service.
type Service struct {
	routes    pagesift.RouteTable
	static    pagesift.Fetcher
	dynamic   pagesift.Fetcher // nil when no browser runtime is available
	items     pagesift.ItemExtractor
	jobs      pagesift.ItemExtractor // tried before the cascade on dynamic pages
	results   pagesift.ItemExtractor // search result pages
	summaries pagesift.SummaryExtractor
	searchURL string
	logger    *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithRoutes replaces the default static/dynamic route table.
func WithRoutes(routes pagesift.RouteTable) Option {
	return func(s *Service) {
		s.routes = routes
	}
}

// WithDynamicFetcher installs the browser-backed fetcher used for routes
// classified dynamic. Without one, every page takes the static path.
func WithDynamicFetcher(f pagesift.Fetcher) Option {
	return func(s *Service) {
		s.dynamic = f
	}
}

// WithJobExtractor installs a job-board extractor tried before the generic
// cascade on dynamically rendered pages.
func WithJobExtractor(e pagesift.ItemExtractor) Option {
	return func(s *Service) {
		s.jobs = e
	}
}

// WithSearchExtractor installs the extractor for search result pages.
// Without one, Search returns empty results.
func WithSearchExtractor(e pagesift.ItemExtractor) Option {
	return func(s *Service) {
		s.results = e
	}
}

// WithSearchURL overrides the search endpoint. Defaults to DefaultSearchURL.
func WithSearchURL(u string) Option {
	return func(s *Service) {
		s.searchURL = u
	}
}

// WithSummaryExtractor installs the page metadata extractor. Without one,
// results carry a minimal summary derived from the URL.
func WithSummaryExtractor(e pagesift.SummaryExtractor) Option {
	return func(s *Service) {
		s.summaries = e
	}
}

// WithLogger sets the logger for degraded failures. Defaults to
// slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service over the given static fetcher and item
// extractor, which are the only mandatory collaborators.
func NewService(static pagesift.Fetcher, items pagesift.ItemExtractor, opts ...Option) *Service {
	s := &Service{
		routes:    pagesift.DefaultRoutes(),
		static:    static,
		items:     items,
		searchURL: DefaultSearchURL,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape fetches, extracts and categorizes the page at rawURL. Exactly one
// fetch path runs per request: plain HTTP for static routes, a browser
// session for dynamic ones. The only error returned is EINVALID; fetch,
// render and extraction failures are logged and degrade to an empty result.
func (s *Service) Scrape(ctx context.Context, rawURL string) (*pagesift.Result, error) {
	pageURL, err := pagesift.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	if pagesift.LoginRequired(pageURL, "") {
		return s.loginWalled(pageURL), nil
	}

	class := s.routes.Class(pageURL)
	fetcher := s.static
	if class == pagesift.SiteDynamic && s.dynamic != nil {
		fetcher = s.dynamic
	}

	html, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		s.logger.Warn("fetch failed, degrading to empty result",
			"url", pageURL,
			"class", class,
			"err", err,
		)
		return &pagesift.Result{Summary: s.fallbackSummary(pageURL)}, nil
	}

	summary := s.summarize(html, pageURL)

	if pagesift.LoginRequired(pageURL, html) {
		summary.LoginRequired = true
		return &pagesift.Result{Summary: summary}, nil
	}

	items := s.extract(html, pageURL, class)
	return &pagesift.Result{
		Summary: summary,
		Items:   pagesift.Aggregate(items),
	}, nil
}

// Search fetches categorized web search results for a free-text query.
func (s *Service) Search(ctx context.Context, query string) (*pagesift.Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, pagesift.Errorf(pagesift.EINVALID, "search query required")
	}

	result := &pagesift.Result{Summary: searchSummary(query, 0)}
	if s.results == nil {
		return result, nil
	}

	searchURL := s.searchURL + "?q=" + url.QueryEscape(query)
	html, err := s.static.Fetch(ctx, searchURL)
	if err != nil {
		s.logger.Warn("search fetch failed, degrading to empty result",
			"query", query,
			"err", err,
		)
		return result, nil
	}

	items, err := s.results.Extract(html, searchURL)
	if err != nil {
		s.logger.Warn("search extraction failed", "query", query, "err", err)
		return result, nil
	}

	result.Summary = searchSummary(query, len(items))
	result.Items = pagesift.Aggregate(items)
	return result, nil
}

// extract runs the item extraction for one fetched page. Dynamic pages try
// the job-board extractor first; its empty yield hands over to the cascade.
func (s *Service) extract(html, pageURL string, class pagesift.SiteClass) []pagesift.Item {
	if class == pagesift.SiteDynamic && s.jobs != nil {
		items, err := s.jobs.Extract(html, pageURL)
		if err != nil {
			s.logger.Warn("job-board extraction failed", "url", pageURL, "err", err)
		} else if len(items) > 0 {
			return items
		}
	}

	items, err := s.items.Extract(html, pageURL)
	if err != nil {
		s.logger.Warn("extraction failed, degrading to empty result",
			"url", pageURL,
			"err", err,
		)
		return nil
	}
	return items
}

// summarize extracts page metadata, falling back to a URL-derived summary
// when the extractor is missing or fails.
func (s *Service) summarize(html, pageURL string) *pagesift.Summary {
	if s.summaries == nil {
		return s.fallbackSummary(pageURL)
	}
	summary, err := s.summaries.ExtractSummary(html, pageURL)
	if err != nil {
		s.logger.Warn("summary extraction failed", "url", pageURL, "err", err)
		return s.fallbackSummary(pageURL)
	}
	return summary
}

// fallbackSummary describes a page using nothing but its URL.
func (s *Service) fallbackSummary(pageURL string) *pagesift.Summary {
	label := pagesift.SourceLabel(pageURL)
	return &pagesift.Summary{
		Title:       label,
		Description: "No description available",
		URL:         pageURL,
		Type:        pagesift.ClassifySiteType(pageURL, "", ""),
		Domain:      label,
		SiteName:    label,
		Language:    "Not specified",
		Author:      "Not specified",
		Publisher:   "Not specified",
	}
}

// loginWalled builds the flagged, empty result for protected sites.
func (s *Service) loginWalled(pageURL string) *pagesift.Result {
	summary := s.fallbackSummary(pageURL)
	summary.Description = "This site requires login; content cannot be scraped anonymously."
	summary.LoginRequired = true
	return &pagesift.Result{Summary: summary}
}

// searchSummary describes a search result set.
func searchSummary(query string, count int) *pagesift.Summary {
	return &pagesift.Summary{
		Title:       "Search Results: " + query,
		Description: fmt.Sprintf("Found %d web results for your search query. Results are automatically categorized based on content.", count),
		URL:         "search:" + query,
		Type:        pagesift.SiteTypeSearch,
		Domain:      "Web Search",
		SiteName:    "Web Search",
		Language:    "en",
		Author:      "Multiple Sources",
		Publisher:   "Search Engine",
	}
}

package mock

import "github.com/pagesift/pagesift"

var _ pagesift.ItemExtractor = (*ItemExtractor)(nil)

// ItemExtractor is a mock implementation of pagesift.ItemExtractor.
type ItemExtractor struct {
	ExtractFn func(html, pageURL string) ([]pagesift.Item, error)
}

func (e *ItemExtractor) Extract(html, pageURL string) ([]pagesift.Item, error) {
	return e.ExtractFn(html, pageURL)
}

var _ pagesift.SummaryExtractor = (*SummaryExtractor)(nil)

// SummaryExtractor is a mock implementation of pagesift.SummaryExtractor.
type SummaryExtractor struct {
	ExtractSummaryFn func(html, pageURL string) (*pagesift.Summary, error)
}

func (e *SummaryExtractor) ExtractSummary(html, pageURL string) (*pagesift.Summary, error) {
	return e.ExtractSummaryFn(html, pageURL)
}

package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Service = (*Service)(nil)

// Service is a mock implementation of pagesift.Service.
type Service struct {
	ScrapeFn func(ctx context.Context, url string) (*pagesift.Result, error)
	SearchFn func(ctx context.Context, query string) (*pagesift.Result, error)
}

func (s *Service) Scrape(ctx context.Context, url string) (*pagesift.Result, error) {
	return s.ScrapeFn(ctx, url)
}

func (s *Service) Search(ctx context.Context, query string) (*pagesift.Result, error) {
	return s.SearchFn(ctx, query)
}

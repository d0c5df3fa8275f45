// Package rod provides a browser-based implementation of pagesift.Fetcher
// for pages whose content only exists after client-side rendering.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/pagesift/pagesift"
	"golang.org/x/sync/semaphore"
)

// DefaultRenderTimeout is the ceiling on navigate-and-render per page.
const DefaultRenderTimeout = 15 * time.Second

// DefaultMaxSessions bounds concurrently open browser pages. Each page is
// a Chrome target; an unbounded number of them exhausts memory fast.
const DefaultMaxSessions = 4

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// session abstracts a single browser page. It exists so tests can count
// sessions with a fake browser instead of launching Chrome.
type session interface {
	Navigate(url string) error
	WaitLoad() error
	HTML() (string, error)
	Close() error
}

// browser creates sessions bound to a context.
type browser interface {
	NewSession(ctx context.Context) (session, error)
	Close() error
}

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Every session it opens is closed on every exit path,
// including timeout and navigation failure.
//
// Fetcher is safe for concurrent use; the number of concurrently open
// sessions is bounded by a semaphore.
type Fetcher struct {
	browser browser
	sem     *semaphore.Weighted
	timeout time.Duration
	closed  atomic.Bool
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithRenderTimeout sets the per-page render ceiling.
// Defaults to DefaultRenderTimeout (15s).
func WithRenderTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxSessions bounds concurrently open browser pages.
// Defaults to DefaultMaxSessions. Requests past the bound block until a
// session frees up or their context expires.
func WithMaxSessions(n int64) FetcherOption {
	return func(f *Fetcher) {
		f.sem = semaphore.NewWeighted(n)
	}
}

// NewFetcher creates a Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns EUNAVAILABLE if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EUNAVAILABLE, "launching browser: %v", err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, pagesift.Errorf(pagesift.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	return newFetcher(&rodBrowser{browser: b}, opts...), nil
}

// newFetcher wires a Fetcher over any browser implementation.
func newFetcher(b browser, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		browser: b,
		sem:     semaphore.NewWeighted(DefaultMaxSessions),
		timeout: DefaultRenderTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch navigates to the URL, waits for the page to render within the
// configured ceiling, and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := f.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer f.sem.Release(1)

	sess, err := f.browser.NewSession(ctx)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "opening browser session: %v", err)
	}
	defer sess.Close()

	if err := sess.Navigate(url); err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}
	if err := sess.WaitLoad(); err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "waiting for %s to render: %v", url, err)
	}

	html, err := sess.HTML()
	if err != nil {
		return "", pagesift.Errorf(pagesift.EUNAVAILABLE, "reading rendered HTML of %s: %v", url, err)
	}
	return html, nil
}

// Close releases browser resources. Close is idempotent.
func (f *Fetcher) Close() error {
	if f.closed.Swap(true) {
		return nil
	}
	return f.browser.Close()
}

// rodBrowser adapts *rod.Browser to the browser interface.
type rodBrowser struct {
	browser *rod.Browser
}

func (b *rodBrowser) NewSession(ctx context.Context) (session, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	return &rodSession{page: page.Context(ctx)}, nil
}

func (b *rodBrowser) Close() error {
	return b.browser.Close()
}

// rodSession adapts *rod.Page to the session interface.
type rodSession struct {
	page *rod.Page
}

func (s *rodSession) Navigate(url string) error { return s.page.Navigate(url) }
func (s *rodSession) WaitLoad() error           { return s.page.WaitLoad() }
func (s *rodSession) HTML() (string, error)     { return s.page.HTML() }
func (s *rodSession) Close() error              { return s.page.Close() }

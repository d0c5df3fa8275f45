package rod

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBrowser counts sessions so tests can assert every opened session is
// also closed, without launching Chrome.
type fakeBrowser struct {
	mu       sync.Mutex
	opened   int
	closed   int
	shutdown bool

	newSessionErr error
	navigateErr   error
	waitLoadErr   error
	html          string
	waitLoadHang  bool
}

func (b *fakeBrowser) NewSession(ctx context.Context) (session, error) {
	if b.newSessionErr != nil {
		return nil, b.newSessionErr
	}
	b.mu.Lock()
	b.opened++
	b.mu.Unlock()
	return &fakeSession{browser: b, ctx: ctx}, nil
}

func (b *fakeBrowser) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shutdown = true
	return nil
}

func (b *fakeBrowser) counts() (opened, closed int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opened, b.closed
}

type fakeSession struct {
	browser *fakeBrowser
	ctx     context.Context
}

func (s *fakeSession) Navigate(url string) error { return s.browser.navigateErr }

func (s *fakeSession) WaitLoad() error {
	if s.browser.waitLoadHang {
		<-s.ctx.Done()
		return s.ctx.Err()
	}
	return s.browser.waitLoadErr
}

func (s *fakeSession) HTML() (string, error) { return s.browser.html, nil }

func (s *fakeSession) Close() error {
	s.browser.mu.Lock()
	defer s.browser.mu.Unlock()
	s.browser.closed++
	return nil
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns rendered HTML and closes the session", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{html: "<html>rendered</html>"}
		f := newFetcher(b)
		defer f.Close()

		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>rendered</html>", html)

		opened, closed := b.counts()
		assert.Equal(t, 1, opened)
		assert.Equal(t, 1, closed)
	})

	t.Run("closes the session when navigation fails", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{navigateErr: errors.New("net::ERR_NAME_NOT_RESOLVED")}
		f := newFetcher(b)
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://nowhere.invalid")

		require.Error(t, err)
		assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))

		opened, closed := b.counts()
		assert.Equal(t, opened, closed, "session leaked on navigation failure")
	})

	t.Run("closes the session when rendering exceeds the ceiling", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{waitLoadHang: true}
		f := newFetcher(b, WithRenderTimeout(20*time.Millisecond))
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://slow.example")

		require.Error(t, err)
		assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))

		opened, closed := b.counts()
		assert.Equal(t, opened, closed, "session leaked on render timeout")
	})

	t.Run("session open failure is unavailable", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{newSessionErr: errors.New("browser gone")}
		f := newFetcher(b)
		defer f.Close()

		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))
	})

	t.Run("canceled context fails before any session opens", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{}
		f := newFetcher(b)
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, "https://example.com")

		require.Error(t, err)
		opened, _ := b.counts()
		assert.Zero(t, opened)
	})

	t.Run("concurrent fetches never leak sessions", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{html: "<html></html>"}
		f := newFetcher(b, WithMaxSessions(2))
		defer f.Close()

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.Fetch(context.Background(), "https://example.com")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		opened, closed := b.counts()
		assert.Equal(t, 8, opened)
		assert.Equal(t, 8, closed)
	})
}

func TestFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("fetch after close fails", func(t *testing.T) {
		t.Parallel()

		b := &fakeBrowser{}
		f := newFetcher(b)
		require.NoError(t, f.Close())

		_, err := f.Fetch(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()

		f := newFetcher(&fakeBrowser{})
		require.NoError(t, f.Close())
		require.NoError(t, f.Close())
	})
}

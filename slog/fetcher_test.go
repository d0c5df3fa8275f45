package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/pagesift/pagesift/mock"
	siftslog "github.com/pagesift/pagesift/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the fetch", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>ok</html>", nil
			},
		}
		var buf bytes.Buffer
		f := siftslog.NewLoggingFetcher(next, slog.New(slog.NewTextHandler(&buf, nil)))

		html, err := f.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Contains(t, buf.String(), "https://example.com")
		assert.Contains(t, buf.String(), "bytes=15")
	})

	t.Run("logs the error and passes it through", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}
		var buf bytes.Buffer
		f := siftslog.NewLoggingFetcher(next, slog.New(slog.NewTextHandler(&buf, nil)))

		_, err := f.Fetch(context.Background(), "https://down.example")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) { return "", nil },
			CloseFn: func() error {
				closed = true
				return nil
			},
		}
		f := siftslog.NewLoggingFetcher(next, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

		require.NoError(t, f.Close())
		assert.True(t, closed)
	})
}

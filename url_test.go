package pagesift_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("bare domain gets https scheme", func(t *testing.T) {
		t.Parallel()
		got, err := pagesift.NormalizeURL("example.com/news")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/news", got)
	})

	t.Run("existing scheme is preserved", func(t *testing.T) {
		t.Parallel()
		got, err := pagesift.NormalizeURL("http://example.com")
		require.NoError(t, err)
		assert.Equal(t, "http://example.com", got)
	})

	t.Run("surrounding whitespace is trimmed", func(t *testing.T) {
		t.Parallel()
		got, err := pagesift.NormalizeURL("  example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", got)
	})

	t.Run("empty input is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := pagesift.NormalizeURL("   ")
		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})

	t.Run("unparseable input is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := pagesift.NormalizeURL("https://")
		require.Error(t, err)
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})
}

func TestSourceLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.com", pagesift.SourceLabel("https://www.example.com/a/b"))
	assert.Equal(t, "news.ycombinator.com", pagesift.SourceLabel("https://news.ycombinator.com"))
	assert.Equal(t, "not a url", pagesift.SourceLabel("not a url"))
}

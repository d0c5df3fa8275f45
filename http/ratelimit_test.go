package http_test

import (
	"context"
	"testing"
	"time"

	sifthttp "github.com/pagesift/pagesift/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per host passes immediately", func(t *testing.T) {
		t.Parallel()

		l := sifthttp.NewHostLimiter(1)
		start := time.Now()

		require.NoError(t, l.Wait(context.Background(), "a.example"))
		require.NoError(t, l.Wait(context.Background(), "b.example"))

		assert.Less(t, time.Since(start), 100*time.Millisecond, "distinct hosts don't throttle each other")
	})

	t.Run("repeat requests to one host are throttled", func(t *testing.T) {
		t.Parallel()

		l := sifthttp.NewHostLimiter(20) // 50ms between requests
		ctx := context.Background()

		require.NoError(t, l.Wait(ctx, "c.example"))
		start := time.Now()
		require.NoError(t, l.Wait(ctx, "c.example"))

		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		l := sifthttp.NewHostLimiter(0.001)
		ctx := context.Background()
		require.NoError(t, l.Wait(ctx, "d.example"))

		ctx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "d.example"))
	})
}

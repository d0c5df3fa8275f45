package pagesift_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagesift.Errorf(pagesift.EINVALID, "url %q is bad", "x")

	assert.Equal(t, pagesift.EINVALID, err.Code)
	assert.Equal(t, `url "x" is bad`, err.Message)
	assert.Contains(t, err.Error(), "code=invalid")
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagesift.ErrorCode(nil))
	})

	t.Run("application error returns its code", func(t *testing.T) {
		t.Parallel()
		err := pagesift.Errorf(pagesift.EUNAVAILABLE, "down")
		assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))
	})

	t.Run("wrapped application error is unwrapped", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", pagesift.Errorf(pagesift.EINVALID, "inner"))
		assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
	})

	t.Run("non-application error maps to internal", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagesift.EINTERNAL, pagesift.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", pagesift.ErrorMessage(nil))
	assert.Equal(t, "down", pagesift.ErrorMessage(pagesift.Errorf(pagesift.EUNAVAILABLE, "down")))
	assert.Equal(t, "Internal error.", pagesift.ErrorMessage(errors.New("boom")))
}

package domainerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	t.Run("matches wrapped domain errors", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", New(CodeNotFound, "check not found"))
		assert.True(t, HasCode(err, CodeNotFound))
		assert.False(t, HasCode(err, CodeForbidden))
	})

	t.Run("plain errors have no code", func(t *testing.T) {
		assert.False(t, HasCode(errors.New("boom"), CodeInternal))
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, CodeInternal, "failed to save check")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to save check: connection refused", err.Error())
	assert.Equal(t, CodeInternal, CodeOf(err))
}

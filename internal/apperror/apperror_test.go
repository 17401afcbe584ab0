package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFound(t *testing.T) {
	err := NotFound("activity", "a1")

	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "activity a1")

	wrapped := fmt.Errorf("resolving roster: %w", err)
	assert.True(t, IsNotFound(wrapped))

	assert.False(t, IsNotFound(errors.New("something else")))
	assert.False(t, IsNotFound(nil))
}

func TestValidation(t *testing.T) {
	err := Validationf("activity id cannot be empty")

	assert.True(t, IsValidation(err))
	assert.Equal(t, "activity id cannot be empty", err.Error())
	assert.False(t, IsNotFound(err))
	assert.False(t, IsUpstream(err))
}

func TestUpstream(t *testing.T) {
	cause := errors.New("connection reset")
	err := Upstream("chat completion", cause)

	assert.True(t, IsUpstream(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "chat completion")

	wrapped := fmt.Errorf("grading s1: %w", err)
	assert.True(t, IsUpstream(wrapped))
}

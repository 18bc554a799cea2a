package guard_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard"
)

func TestArgumentError(t *testing.T) {
	t.Parallel()

	t.Run("formats message with parameter annotation", func(t *testing.T) {
		err := &guard.ArgumentError{
			Kind:    guard.ErrArgumentOutOfRange,
			Name:    "port",
			Message: "'port' must not be zero.",
		}
		assert.Equal(t, "'port' must not be zero. (Parameter 'port')", err.Error())
	})

	t.Run("unwraps to kind", func(t *testing.T) {
		err := &guard.ArgumentError{Kind: guard.ErrNullArgument, Name: "svc", Message: "x"}
		assert.ErrorIs(t, err, guard.ErrNullArgument)
		assert.NotErrorIs(t, err, guard.ErrInvalidArgument)
		assert.NotErrorIs(t, err, guard.ErrArgumentOutOfRange)
	})

	t.Run("kinds are distinct", func(t *testing.T) {
		assert.NotEqual(t, guard.ErrNullArgument, guard.ErrInvalidArgument)
		assert.NotEqual(t, guard.ErrNullArgument, guard.ErrArgumentOutOfRange)
		assert.NotEqual(t, guard.ErrInvalidArgument, guard.ErrArgumentOutOfRange)
	})
}

func TestKind(t *testing.T) {
	t.Parallel()

	t.Run("returns kind of guard error", func(t *testing.T) {
		_, err := guard.NotZero("count", 0)
		assert.Equal(t, guard.ErrArgumentOutOfRange, guard.Kind(err))
	})

	t.Run("returns kind through wrapping", func(t *testing.T) {
		_, err := guard.NotEmpty("title", "")
		wrapped := fmt.Errorf("create post: %w", err)
		assert.Equal(t, guard.ErrInvalidArgument, guard.Kind(wrapped))
	})

	t.Run("returns nil for foreign errors", func(t *testing.T) {
		assert.Nil(t, guard.Kind(errors.New("boom")))
		assert.Nil(t, guard.Kind(nil))
	})
}

func TestIsArgumentError(t *testing.T) {
	t.Parallel()

	_, err := guard.NotNil[*int]("ptr", nil)
	require.Error(t, err)

	assert.True(t, guard.IsArgumentError(err))
	assert.True(t, guard.IsArgumentError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, guard.IsArgumentError(errors.New("boom")))
	assert.False(t, guard.IsArgumentError(nil))
}

package guard_test

import (
	"errors"
	"testing"

	"printflow/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		err := g.Validate(errors.New("should not be returned"))

		require.NoError(t, err)
	})

	t.Run("should fail for zero-value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		validationErr := errors.New("object was not constructed")

		err := g.Validate(validationErr)

		require.Error(t, err)
		assert.Equal(t, validationErr, err)
	})

	t.Run("should fall back to default error when nil is passed", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("should pass for constructed guard even with nil error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Embedding(t *testing.T) {
	type command struct {
		guard guard.ConstructorGuard
	}

	t.Run("zero-value struct should fail validation", func(t *testing.T) {
		var c command
		require.Error(t, c.guard.Validate(nil))
	})

	t.Run("constructed struct should pass validation", func(t *testing.T) {
		c := command{guard: guard.NewConstructorGuard()}
		require.NoError(t, c.guard.Validate(nil))
	})
}

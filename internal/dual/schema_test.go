package dual

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	t.Run("defines ordered axes", func(t *testing.T) {
		s, err := NewSchema("x", "y", "z")
		require.NoError(t, err)
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, []string{"x", "y", "z"}, s.Axes())

		i, ok := s.Index("y")
		require.True(t, ok)
		assert.Equal(t, 1, i)

		_, ok = s.Index("w")
		assert.False(t, ok)
	})

	t.Run("rejects empty axis list", func(t *testing.T) {
		s, err := NewSchema()
		assert.Nil(t, s)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Empty(t, schemaErr.Axis)
	})

	t.Run("rejects duplicate axis", func(t *testing.T) {
		s, err := NewSchema("x", "y", "x")
		assert.Nil(t, s)

		var schemaErr *SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, "x", schemaErr.Axis)
	})

	t.Run("axes copy is detached", func(t *testing.T) {
		s := MustSchema("x", "y")
		axes := s.Axes()
		axes[0] = "mutated"
		assert.Equal(t, []string{"x", "y"}, s.Axes())
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		names := []string{"x", "y"}
		s, err := NewSchema(names...)
		require.NoError(t, err)
		names[1] = "mutated"
		assert.Equal(t, []string{"x", "y"}, s.Axes())
	})
}

func TestMustSchema(t *testing.T) {
	assert.NotPanics(t, func() { MustSchema("x") })
	assert.Panics(t, func() { MustSchema() })
	assert.Panics(t, func() { MustSchema("x", "x") })
}

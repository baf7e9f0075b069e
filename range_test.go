package changeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRange(t *testing.T) {
	t.Run("end and emptiness", func(t *testing.T) {
		r := NewRange(5, 3)
		assert.Equal(t, uint64(8), r.End())
		assert.False(t, r.IsEmpty())

		assert.True(t, NewRange(5, 0).IsEmpty())
	})

	t.Run("contains", func(t *testing.T) {
		r := NewRange(5, 3)
		assert.False(t, r.Contains(4))
		assert.True(t, r.Contains(5))
		assert.True(t, r.Contains(7))
		assert.False(t, r.Contains(8), "end is exclusive")

		assert.False(t, NewRange(5, 0).Contains(5))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "[5:8)", NewRange(5, 3).String())
		assert.Equal(t, "[0:0)", Range{}.String())
	})
}

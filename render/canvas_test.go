package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 3)

	t.Run("Size", func(t *testing.T) {
		assert.Equal(t, 5, c.Height())
		assert.Equal(t, 14, c.Width())
		assert.Len(t, c.String(), 5*14-1)
	})

	t.Run("Index", func(t *testing.T) {
		assert.Equal(t, 0, c.Index(0, 0))
		assert.Equal(t, 14+2, c.Index(1, 2))
	})

	t.Run("Set ignores writes outside the printable area", func(t *testing.T) {
		before := c.String()
		c.Set(-1, 0, 'x')
		c.Set(0, 13, 'x') // newline slot
		c.Set(5, 0, 'x')
		assert.Equal(t, before, c.String())
		assert.Equal(t, byte(0), c.At(0, 13))
	})

	t.Run("Set and At", func(t *testing.T) {
		c.Set(3, 6, '>')
		assert.Equal(t, byte('>'), c.At(3, 6))
		assert.Equal(t, ">", string(c.Lines()[3][6]))
	})
}

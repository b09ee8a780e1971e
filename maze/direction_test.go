package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToward(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinate
		want     Direction
		ok       bool
	}{
		{"North", Coordinate{1, 1}, Coordinate{1, 0}, North, true},
		{"East", Coordinate{1, 1}, Coordinate{2, 1}, East, true},
		{"South", Coordinate{1, 1}, Coordinate{1, 2}, South, true},
		{"West", Coordinate{1, 1}, Coordinate{0, 1}, West, true},
		{"Diagonal resolves vertically", Coordinate{1, 1}, Coordinate{2, 2}, South, true},
		{"Same point", Coordinate{1, 1}, Coordinate{1, 1}, 0, false},
		{"Two apart", Coordinate{0, 0}, Coordinate{2, 0}, 0, false},
		{"Far", Coordinate{0, 5}, Coordinate{3, 0}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Toward(tt.from, tt.to)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDirection(t *testing.T) {
	t.Run("North is a real direction, not absence", func(t *testing.T) {
		d, ok := Toward(Coordinate{0, 1}, Coordinate{0, 0})
		assert.True(t, ok)
		assert.Equal(t, North, d)
		assert.Equal(t, Direction(0), d)
	})

	t.Run("Opposite", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, East, West.Opposite())
	})

	t.Run("Parse", func(t *testing.T) {
		for b := 0; b < 4; b++ {
			d, err := ParseDirection(byte(b))
			assert.NoError(t, err)
			assert.Equal(t, Direction(b), d)
		}
		_, err := ParseDirection(4)
		assert.Error(t, err)
		assert.Equal(t, "West", West.String())
	})
}

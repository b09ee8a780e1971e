package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGridRoundTrip(t *testing.T) {
	t.Run("Sample grid", func(t *testing.T) {
		g, _, err := DecodeGrid(sampleGrid)
		require.NoError(t, err)

		out, err := EncodeGrid(g)
		require.NoError(t, err)
		assert.Equal(t, sampleGrid, out)
	})

	t.Run("Every small shape", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for rows := 0; rows <= 7; rows++ {
			for cols := 0; cols <= 7; cols++ {
				g := NewWallGrid(uint16(rows), uint16(cols))
				for i := range g.Cells {
					g.Cells[i] = Cell(rng.Intn(16))
				}

				packed, err := EncodeGrid(g)
				require.NoError(t, err)
				assert.Len(t, packed, 4+(rows*cols+1)/2)
				if rows*cols%2 == 1 {
					assert.Equal(t, byte(0x0F), packed[len(packed)-1]&0x0F, "padding nibble for %dx%d", rows, cols)
				}

				back, n, err := DecodeGrid(packed)
				require.NoError(t, err)
				assert.Equal(t, len(packed), n)
				assert.Equal(t, g.Cells, back.Cells)

				again, err := EncodeGrid(back)
				require.NoError(t, err)
				assert.Equal(t, packed, again)
			}
		}
	})

	t.Run("Rejects broken grids", func(t *testing.T) {
		_, err := EncodeGrid(&WallGrid{Rows: 2, Cols: 2, Cells: []Cell{0}})
		assert.ErrorIs(t, err, ErrInvalidGrid)

		_, err = EncodeGrid(&WallGrid{Rows: 1, Cols: 1, Cells: []Cell{16}})
		assert.ErrorIs(t, err, ErrInvalidGrid)

		_, err = EncodeGrid(nil)
		assert.ErrorIs(t, err, ErrInvalidGrid)
	})
}

func TestEncodeSnapshot(t *testing.T) {
	g, _, err := DecodeGrid(sampleGrid)
	require.NoError(t, err)

	t.Run("Round trip with path and navigator", func(t *testing.T) {
		s := &Snapshot{
			Grid:    g,
			Path:    Path{{X: 0, Y: 5}, {X: 1, Y: 5}, {X: 1, Y: 4}},
			HasPath: true,
			Navigator: &Navigator{
				Position:    Coordinate{X: 1, Y: 4},
				Orientation: West,
				Start:       Coordinate{X: 0, Y: 5},
				End:         Coordinate{X: 1, Y: 0},
			},
		}
		buf, err := Encode(s)
		require.NoError(t, err)
		assert.Equal(t, len(sampleGrid)+4+3*4+15, len(buf))

		back, err := Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	})

	t.Run("Navigator without path gets an empty path section", func(t *testing.T) {
		s := &Snapshot{Grid: g, Navigator: &Navigator{Orientation: North}}
		buf, err := Encode(s)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xFF, 0xFF, 0x00, 0x00}, buf[len(sampleGrid):len(sampleGrid)+4])

		back, err := Decode(buf)
		require.NoError(t, err)
		assert.True(t, back.HasPath)
		assert.Empty(t, back.Path)
		assert.Equal(t, s.Navigator, back.Navigator)
	})

	t.Run("Grid only", func(t *testing.T) {
		buf, err := Encode(&Snapshot{Grid: g})
		require.NoError(t, err)
		assert.Equal(t, sampleGrid, buf)
	})

	t.Run("Rejects out of range values", func(t *testing.T) {
		_, err := Encode(&Snapshot{Grid: g, Path: Path{{X: 4, Y: 0}}})
		assert.ErrorIs(t, err, ErrCoordinateOutOfBounds)

		_, err = Encode(&Snapshot{Grid: g, Navigator: &Navigator{Orientation: Direction(9)}})
		assert.ErrorIs(t, err, ErrInvalidOrientation)
	})
}

package fixture

import (
	"testing"

	"github.com/beka-birhanu/vinom-mazeview/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleGrid = []byte{
	0x00, 0x06, 0x00, 0x04,
	0x6E, 0xC4, 0x51, 0x39, 0x7A, 0xA8, 0x56, 0xAC, 0x3D, 0x41, 0x2B, 0xB8,
}

func TestLoad(t *testing.T) {
	s, err := Load("testdata/sample.toml")
	require.NoError(t, err)

	t.Run("Grid matches the robot dump", func(t *testing.T) {
		packed, err := maze.EncodeGrid(s.Grid)
		require.NoError(t, err)
		assert.Equal(t, sampleGrid, packed)
	})

	t.Run("Path and navigator", func(t *testing.T) {
		assert.True(t, s.HasPath)
		assert.Len(t, s.Path, 9)
		assert.Equal(t, maze.Coordinate{X: 1, Y: 0}, s.Path[8])
		require.NotNil(t, s.Navigator)
		assert.Equal(t, maze.West, s.Navigator.Orientation)
		assert.Equal(t, maze.Coordinate{X: 1, Y: 3}, s.Navigator.End)
	})

	t.Run("Encodes and decodes back", func(t *testing.T) {
		buf, err := maze.Encode(s)
		require.NoError(t, err)
		back, err := maze.Decode(buf)
		require.NoError(t, err)
		assert.Equal(t, s, back)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load("testdata/nope.toml")
		assert.Error(t, err)
	})
}

func TestParse(t *testing.T) {
	t.Run("Walls default to closed", func(t *testing.T) {
		s, err := Parse("rows = 2\ncols = 3\n")
		require.NoError(t, err)
		assert.Len(t, s.Grid.Cells, 6)
		for _, c := range s.Grid.Cells {
			assert.Equal(t, maze.Cell(15), c)
		}
		assert.False(t, s.HasPath)
		assert.Nil(t, s.Navigator)
	})

	t.Run("Empty path is kept", func(t *testing.T) {
		s, err := Parse("rows = 1\ncols = 1\npath = []\n")
		require.NoError(t, err)
		assert.True(t, s.HasPath)
		assert.Empty(t, s.Path)
	})

	errorCases := map[string]string{
		"unknown key":         "rows = 1\ncols = 1\ncolour = 3\n",
		"wrong row count":     "rows = 2\ncols = 1\nwalls = [[\"N\"]]\n",
		"wrong column count":  "rows = 1\ncols = 2\nwalls = [[\"N\"]]\n",
		"bad wall letter":     "rows = 1\ncols = 1\nwalls = [[\"Q\"]]\n",
		"path out of bounds":  "rows = 1\ncols = 1\npath = [[1, 0]]\n",
		"path point shape":    "rows = 1\ncols = 1\npath = [[0]]\n",
		"bad orientation":     "rows = 1\ncols = 1\n[navigator]\nposition = [0, 0]\norientation = \"up\"\nstart = [0, 0]\nend = [0, 0]\n",
		"navigator no coords": "rows = 1\ncols = 1\n[navigator]\norientation = \"north\"\n",
		"negative dimension":  "rows = -1\ncols = 1\n",
		"malformed toml":      "rows = \n",
	}
	for name, data := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(data)
			assert.ErrorIs(t, err, ErrInvalidFixture)
		})
	}
}

func TestParseOrientation(t *testing.T) {
	for in, want := range map[string]maze.Direction{
		"north": maze.North, "E": maze.East, "v": maze.South, " <": maze.West,
	} {
		got, err := ParseOrientation(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

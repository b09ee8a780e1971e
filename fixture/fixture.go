// Package fixture reads maze snapshots from a small TOML description, so
// captures and test cases can be written by hand and encoded to wire bytes.
//
//	rows = 2
//	cols = 2
//	walls = [
//	  ["NW", "NE"],
//	  ["SW", "SE"],
//	]
//	path = [[0, 0], [0, 1], [1, 1]]
//
//	[navigator]
//	position = [1, 1]
//	orientation = "east"
//	start = [0, 0]
//	end = [1, 1]
//
// Wall strings list the present walls by initial (N, E, S, W), in any order.
package fixture

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/beka-birhanu/vinom-mazeview/maze"
)

var (
	ErrInvalidFixture = errors.New("invalid maze fixture")
)

type file struct {
	Rows      int        `toml:"rows"`
	Cols      int        `toml:"cols"`
	Walls     [][]string `toml:"walls"`
	Path      [][]int    `toml:"path"`
	Navigator *navigator `toml:"navigator"`
}

type navigator struct {
	Position    []int  `toml:"position"`
	Orientation string `toml:"orientation"`
	Start       []int  `toml:"start"`
	End         []int  `toml:"end"`
}

// Load reads and parses the fixture at path.
func Load(path string) (*maze.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse converts a TOML fixture into a snapshot.
func Parse(data string) (*maze.Snapshot, error) {
	var f file
	meta, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrInvalidFixture, undecoded[0].String())
	}

	grid, err := f.grid()
	if err != nil {
		return nil, err
	}
	s := &maze.Snapshot{Grid: grid}

	if meta.IsDefined("path") {
		s.HasPath = true
		s.Path = make(maze.Path, 0, len(f.Path))
		for i, p := range f.Path {
			c, err := coordinate(p, grid)
			if err != nil {
				return nil, fmt.Errorf("%w: path[%d]: %v", ErrInvalidFixture, i, err)
			}
			s.Path = append(s.Path, c)
		}
	}

	if f.Navigator != nil {
		s.Navigator, err = f.Navigator.build(grid)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (f *file) grid() (*maze.WallGrid, error) {
	if f.Rows < 0 || f.Rows > 0xFFFF || f.Cols < 0 || f.Cols > 0xFFFF {
		return nil, fmt.Errorf("%w: dimensions %dx%d out of range", ErrInvalidFixture, f.Rows, f.Cols)
	}
	g := maze.NewWallGrid(uint16(f.Rows), uint16(f.Cols))

	// Without a walls table every wall stays present.
	if f.Walls == nil {
		return g, nil
	}
	if len(f.Walls) != f.Rows {
		return nil, fmt.Errorf("%w: walls has %d rows, want %d", ErrInvalidFixture, len(f.Walls), f.Rows)
	}
	for y, row := range f.Walls {
		if len(row) != f.Cols {
			return nil, fmt.Errorf("%w: walls row %d has %d cells, want %d", ErrInvalidFixture, y, len(row), f.Cols)
		}
		for x, walls := range row {
			c, err := ParseWalls(walls)
			if err != nil {
				return nil, fmt.Errorf("%w: walls[%d][%d]: %v", ErrInvalidFixture, y, x, err)
			}
			g.Set(x, y, c)
		}
	}
	return g, nil
}

func (n *navigator) build(g *maze.WallGrid) (*maze.Navigator, error) {
	d, err := ParseOrientation(n.Orientation)
	if err != nil {
		return nil, fmt.Errorf("%w: navigator: %v", ErrInvalidFixture, err)
	}
	nav := &maze.Navigator{Orientation: d}

	fields := []struct {
		name string
		raw  []int
		dst  *maze.Coordinate
	}{
		{"position", n.Position, &nav.Position},
		{"start", n.Start, &nav.Start},
		{"end", n.End, &nav.End},
	}
	for _, f := range fields {
		c, err := coordinate(f.raw, g)
		if err != nil {
			return nil, fmt.Errorf("%w: navigator %s: %v", ErrInvalidFixture, f.name, err)
		}
		*f.dst = c
	}
	return nav, nil
}

// ParseWalls turns a wall string such as "NW" into a cell mask.
func ParseWalls(walls string) (maze.Cell, error) {
	var c maze.Cell
	for _, r := range strings.ToUpper(walls) {
		switch r {
		case 'N':
			c |= maze.NorthWall
		case 'E':
			c |= maze.EastWall
		case 'S':
			c |= maze.SouthWall
		case 'W':
			c |= maze.WestWall
		case ' ', '-':
		default:
			return 0, fmt.Errorf("unknown wall %q", r)
		}
	}
	return c, nil
}

// ParseOrientation accepts a direction name or its navigator arrow.
func ParseOrientation(s string) (maze.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "^":
		return maze.North, nil
	case "east", "e", ">":
		return maze.East, nil
	case "south", "s", "v":
		return maze.South, nil
	case "west", "w", "<":
		return maze.West, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

func coordinate(p []int, g *maze.WallGrid) (maze.Coordinate, error) {
	if len(p) != 2 {
		return maze.Coordinate{}, fmt.Errorf("want [x, y], got %v", p)
	}
	if p[0] < 0 || p[1] < 0 || p[0] >= int(g.Cols) || p[1] >= int(g.Rows) {
		return maze.Coordinate{}, fmt.Errorf("%w: %v", maze.ErrCoordinateOutOfBounds, p)
	}
	return maze.Coordinate{X: uint16(p[0]), Y: uint16(p[1])}, nil
}

/*
Package maze decodes the compact binary maze snapshot sent by the robot.

A snapshot is a wall grid optionally followed by a path section and a
navigator section. The grid header holds the dimensions, then every cell is a
nibble-packed, inverted 4-bit wall mask. Optional sections start with the
0xFFFF sentinel. All integers are big-endian.

	u16 rows, u16 cols
	ceil(rows*cols/2) bytes of packed cells
	[u16 0xFFFF, u16 n, n * (u16 x, u16 y)]
	[u16 0xFFFF, u16 x, u16 y, u8 orientation, u16 sx, u16 sy, u16 ex, u16 ey]

The package only decodes and encodes; drawing lives in package render.
*/
package maze

import "fmt"

// WallGrid is a rectangular maze. Cells are stored row-major.
type WallGrid struct {
	Rows  uint16
	Cols  uint16
	Cells []Cell
}

// NewWallGrid returns a grid of the given size where every wall is present.
func NewWallGrid(rows, cols uint16) *WallGrid {
	cells := make([]Cell, int(rows)*int(cols))
	for i := range cells {
		cells[i] = allWalls
	}
	return &WallGrid{Rows: rows, Cols: cols, Cells: cells}
}

// At returns the cell at column x, row y.
func (g *WallGrid) At(x, y int) Cell {
	return g.Cells[y*int(g.Cols)+x]
}

// Set replaces the cell at column x, row y.
func (g *WallGrid) Set(x, y int, c Cell) {
	g.Cells[y*int(g.Cols)+x] = c
}

// Contains reports whether c addresses a cell inside the grid.
func (g *WallGrid) Contains(c Coordinate) bool {
	return c.X < g.Cols && c.Y < g.Rows
}

// Validate checks the rows*cols invariant and every mask width.
func (g *WallGrid) Validate() error {
	if want := int(g.Rows) * int(g.Cols); len(g.Cells) != want {
		return fmt.Errorf("%w: %d cells for %dx%d grid", ErrInvalidGrid, len(g.Cells), g.Rows, g.Cols)
	}
	for i, c := range g.Cells {
		if !c.Valid() {
			return fmt.Errorf("%w: cell %d has mask %d", ErrInvalidGrid, i, c)
		}
	}
	return nil
}

// Snapshot is everything a single buffer carries.
type Snapshot struct {
	Grid      *WallGrid
	Path      Path
	HasPath   bool       // A path section was present, possibly with zero points.
	Navigator *Navigator // Nil when the buffer has no navigator section.
}

package render

import "github.com/beka-birhanu/vinom-mazeview/maze"

// Grid draws the walls of g onto a fresh canvas. Each cell owns a 4x2 block:
// the top line carries its north wall, the middle line its west wall. The right
// edge and the bottom border are always closed.
func Grid(g *maze.WallGrid) *Canvas {
	rows, cols := int(g.Rows), int(g.Cols)
	c := NewCanvas(rows, cols)

	for y := 0; y < rows; y++ {
		top, mid := 2*y, 2*y+1
		for x := 0; x < cols; x++ {
			cell := g.At(x, y)
			col := 4 * x

			c.Set(top, col, '+')
			if cell.HasNorthWall() {
				fill(c, top, col+1, 3, '-')
			}
			if cell.HasWestWall() {
				c.Set(mid, col, '|')
			}
		}
		c.Set(top, 4*cols, '+')
		c.Set(mid, 4*cols, '|')
	}

	bottom := 2 * rows
	for x := 0; x < cols; x++ {
		c.Set(bottom, 4*x, '+')
		fill(c, bottom, 4*x+1, 3, '-')
	}
	c.Set(bottom, 4*cols, '+')

	return c
}

func fill(c *Canvas, row, col, n int, glyph byte) {
	for i := 0; i < n; i++ {
		c.Set(row, col+i, glyph)
	}
}

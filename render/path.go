package render

import "github.com/beka-birhanu/vinom-mazeview/maze"

const (
	startGlyph    = '%'
	endGlyph      = 'X'
	turnGlyph     = 'O'
	verticalGlyph = '|'
	horizonGlyph  = '-'
)

// Path overlays p on c. The first point is marked '%', the last 'X', and
// every interior point gets a straight or turn glyph. Segments are drawn in
// the gap between neighbouring centres. Transitions between non-adjacent
// points are left blank.
func Path(c *Canvas, p maze.Path) {
	if len(p) == 0 {
		return
	}
	last := len(p) - 1

	setCenter(c, p[0], startGlyph)
	if last > 0 {
		if out, ok := maze.Toward(p[0], p[1]); ok {
			edge(c, p[0], out)
		}
	}

	for i := 1; i < last; i++ {
		interior(c, p[i], p[i-1], p[i+1])
	}

	setCenter(c, p[last], endGlyph)
	if last > 0 {
		if in, ok := maze.Toward(p[last], p[last-1]); ok {
			edge(c, p[last], in)
		}
	}
}

func interior(c *Canvas, pt, prev, next maze.Coordinate) {
	in, ok := maze.Toward(pt, prev)
	if !ok {
		return
	}
	out, ok := maze.Toward(pt, next)
	if !ok {
		return
	}

	edge(c, pt, in)
	switch {
	case in == out.Opposite() && in.Vertical():
		setCenter(c, pt, verticalGlyph)
	case in == out.Opposite():
		setCenter(c, pt, horizonGlyph)
	default:
		setCenter(c, pt, turnGlyph)
	}
}

// edge draws the segment leaving pt towards d.
func edge(c *Canvas, pt maze.Coordinate, d maze.Direction) {
	row, col := cellCenter(int(pt.X), int(pt.Y))
	switch d {
	case maze.North:
		c.Set(row-1, col, verticalGlyph)
	case maze.South:
		c.Set(row+1, col, verticalGlyph)
	case maze.East:
		fill(c, row, col+1, 3, horizonGlyph)
	case maze.West:
		fill(c, row, col-3, 3, horizonGlyph)
	}
}

func setCenter(c *Canvas, pt maze.Coordinate, glyph byte) {
	row, col := cellCenter(int(pt.X), int(pt.Y))
	c.Set(row, col, glyph)
}

package render

import "github.com/beka-birhanu/vinom-mazeview/maze"

// NavigatorGlyph returns the arrow drawn for a navigator facing d. The
// boolean is false for values outside the four directions.
func NavigatorGlyph(d maze.Direction) (byte, bool) {
	switch d {
	case maze.North:
		return '^', true
	case maze.East:
		return '>', true
	case maze.South:
		return 'v', true
	case maze.West:
		return '<', true
	default:
		return 0, false
	}
}

// Navigator draws the navigator arrow at its position. A navigator with an
// invalid orientation is not drawn.
func Navigator(c *Canvas, n *maze.Navigator) {
	if n == nil {
		return
	}
	if glyph, ok := NavigatorGlyph(n.Orientation); ok {
		setCenter(c, n.Position, glyph)
	}
}

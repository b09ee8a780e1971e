// Package render draws decoded maze snapshots as ASCII art.
//
// A cell (x, y) occupies a 4 column by 2 line block; its centre sits at line
// 2y+1, column 4x+2. The path and navigator overlays write into that grid.
package render

import "github.com/beka-birhanu/vinom-mazeview/maze"

// Snapshot renders the grid, then the path, then the navigator.
func Snapshot(s *maze.Snapshot) string {
	c := Grid(s.Grid)
	Path(c, s.Path)
	Navigator(c, s.Navigator)
	return c.String()
}

// DecodeAndRender decodes buf and renders it. On any decode failure it
// returns the error and no text.
func DecodeAndRender(buf []byte) (string, error) {
	s, err := maze.Decode(buf)
	if err != nil {
		return "", err
	}
	return Snapshot(s), nil
}

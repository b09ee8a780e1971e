// Package mazeviewapi exposes maze snapshot rendering over HTTP.
package mazeviewapi

import (
	"github.com/beka-birhanu/vinom-mazeview/maze"
	"github.com/google/uuid"
)

// CellResponse lists the walls present around a cell.
type CellResponse struct {
	North bool `json:"north"`
	East  bool `json:"east"`
	South bool `json:"south"`
	West  bool `json:"west"`
}

// CoordinateResponse is a cell address, x being the column.
type CoordinateResponse struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
}

// NavigatorResponse is the robot pose carried by a snapshot.
type NavigatorResponse struct {
	Position    CoordinateResponse `json:"position"`
	Orientation string             `json:"orientation"`
	Start       CoordinateResponse `json:"start"`
	End         CoordinateResponse `json:"end"`
}

// DecodeResponse is the structured form of a snapshot.
type DecodeResponse struct {
	RequestID uuid.UUID            `json:"request_id"`
	Rows      uint16               `json:"rows"`
	Cols      uint16               `json:"cols"`
	Cells     [][]CellResponse     `json:"cells"`
	Path      []CoordinateResponse `json:"path"`
	Navigator *NavigatorResponse   `json:"navigator,omitempty"`
	Rendered  string               `json:"rendered"`
}

// ErrorResponse is returned for every rejected snapshot.
type ErrorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind,omitempty"`
	Offset *int   `json:"offset,omitempty"`
}

func newDecodeResponse(id uuid.UUID, s *maze.Snapshot, rendered string) *DecodeResponse {
	g := s.Grid
	cells := make([][]CellResponse, g.Rows)
	for y := range cells {
		cells[y] = make([]CellResponse, g.Cols)
		for x := range cells[y] {
			c := g.At(x, y)
			cells[y][x] = CellResponse{
				North: c.HasNorthWall(),
				East:  c.HasEastWall(),
				South: c.HasSouthWall(),
				West:  c.HasWestWall(),
			}
		}
	}

	path := make([]CoordinateResponse, 0, len(s.Path))
	for _, c := range s.Path {
		path = append(path, coordinateResponse(c))
	}

	resp := &DecodeResponse{
		RequestID: id,
		Rows:      g.Rows,
		Cols:      g.Cols,
		Cells:     cells,
		Path:      path,
		Rendered:  rendered,
	}
	if n := s.Navigator; n != nil {
		resp.Navigator = &NavigatorResponse{
			Position:    coordinateResponse(n.Position),
			Orientation: n.Orientation.String(),
			Start:       coordinateResponse(n.Start),
			End:         coordinateResponse(n.End),
		}
	}
	return resp
}

func coordinateResponse(c maze.Coordinate) CoordinateResponse {
	return CoordinateResponse{X: c.X, Y: c.Y}
}

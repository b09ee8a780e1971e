package maze

import "fmt"

// Coordinate addresses a cell: X is the column, Y is the row, both 0-indexed.
type Coordinate struct {
	X uint16
	Y uint16
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Path is an ordered sequence of coordinates.
type Path []Coordinate

// Navigator is the marker of the robot inside the maze.
// Start and End are carried along but not rendered.
type Navigator struct {
	Position    Coordinate
	Orientation Direction
	Start       Coordinate
	End         Coordinate
}

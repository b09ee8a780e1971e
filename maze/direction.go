package maze

import "fmt"

// Direction is a cardinal direction. The numeric values are the wire values
// of the navigator orientation byte.
type Direction uint8

const (
	North Direction = iota // y decreases
	East                   // x increases
	South                  // y increases
	West                   // x decreases
)

// ParseDirection converts a wire orientation byte into a Direction.
func ParseDirection(b byte) (Direction, error) {
	d := Direction(b)
	if !d.Valid() {
		return 0, fmt.Errorf("orientation %d out of range 0-3", b)
	}
	return d, nil
}

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	return d <= West
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Vertical reports whether d is North or South.
func (d Direction) Vertical() bool {
	return d == North || d == South
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Toward returns the direction from one coordinate to an adjacent one.
// Points are adjacent when their Chebyshev distance is exactly 1; a diagonal
// step resolves to its vertical component. The boolean is false when no
// direction exists.
func Toward(from, to Coordinate) (Direction, bool) {
	dx := int(to.X) - int(from.X)
	dy := int(to.Y) - int(from.Y)
	if max(abs(dx), abs(dy)) != 1 {
		return 0, false
	}

	switch {
	case dy < 0:
		return North, true
	case dy > 0:
		return South, true
	case dx > 0:
		return East, true
	default:
		return West, true
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package maze

// Wall bits of a decoded cell mask. A set bit means the wall is present.
const (
	NorthWall Cell = 1 << iota
	EastWall
	SouthWall
	WestWall

	allWalls Cell = NorthWall | EastWall | SouthWall | WestWall
)

// Cell is the 4-bit wall mask of a single maze cell.
type Cell uint8

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c Cell) HasNorthWall() bool {
	return c&NorthWall != 0
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c Cell) HasEastWall() bool {
	return c&EastWall != 0
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c Cell) HasSouthWall() bool {
	return c&SouthWall != 0
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c Cell) HasWestWall() bool {
	return c&WestWall != 0
}

// Valid reports whether the mask fits in four bits.
func (c Cell) Valid() bool {
	return c&^allWalls == 0
}

// cellFromNibble decodes a raw wire nibble. The wire stores gaps, so the
// wall mask is its complement.
func cellFromNibble(v byte) Cell {
	return allWalls - Cell(v&0x0F)
}

// nibble is the inverse of cellFromNibble.
func (c Cell) nibble() byte {
	return byte(allWalls - c)
}

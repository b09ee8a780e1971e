package render

import "strings"

// Canvas is the text buffer of a rendered maze. All lines live in one flat
// slice; each line is followed by a newline slot, including the last one,
// which String drops.
type Canvas struct {
	buf    []byte
	height int
	width  int // Printable columns per line, excluding the newline.
	stride int
}

// NewCanvas allocates a blank canvas sized for a rows x cols maze.
func NewCanvas(rows, cols int) *Canvas {
	c := &Canvas{
		height: 2*rows + 1,
		width:  4*cols + 1,
	}
	c.stride = c.width + 1
	c.buf = make([]byte, c.height*c.stride)
	for i := range c.buf {
		c.buf[i] = ' '
	}
	for row := 0; row < c.height; row++ {
		c.buf[c.Index(row, c.width)] = '\n'
	}
	return c
}

// Height is the number of lines.
func (c *Canvas) Height() int {
	return c.height
}

// Width is the line length including the newline slot.
func (c *Canvas) Width() int {
	return c.stride
}

// Index maps a line and column to a position in the flat buffer.
func (c *Canvas) Index(row, col int) int {
	return row*c.stride + col
}

// Set writes glyph at (row, col). Writes outside the printable area are
// dropped.
func (c *Canvas) Set(row, col int, glyph byte) {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return
	}
	c.buf[c.Index(row, col)] = glyph
}

// At returns the glyph at (row, col), or 0 outside the printable area.
func (c *Canvas) At(row, col int) byte {
	if row < 0 || row >= c.height || col < 0 || col >= c.width {
		return 0
	}
	return c.buf[c.Index(row, col)]
}

// Lines returns a copy of every line without its newline.
func (c *Canvas) Lines() []string {
	return strings.Split(c.String(), "\n")
}

// String returns the canvas with the last line unterminated.
func (c *Canvas) String() string {
	return string(c.buf[:len(c.buf)-1])
}

// cellCenter returns the canvas address of the interior centre of cell (x, y).
func cellCenter(x, y int) (row, col int) {
	return 2*y + 1, 4*x + 2
}

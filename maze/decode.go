package maze

import "encoding/binary"

const (
	// Sentinel opens every optional section.
	Sentinel uint16 = 0xFFFF

	headerSize       = 4
	sentinelSize     = 2
	coordinateSize   = 4
	navigatorBodyLen = 13
)

// DecodeGrid parses the header and the packed cells at the start of buf.
// It returns the grid and the number of bytes consumed.
func DecodeGrid(buf []byte) (*WallGrid, int, error) {
	if len(buf) < headerSize {
		return nil, 0, formatErr(ErrTruncatedHeader, 0, "need %d bytes, have %d", headerSize, len(buf))
	}

	rows := binary.BigEndian.Uint16(buf[0:2])
	cols := binary.BigEndian.Uint16(buf[2:4])
	cellCount := int(rows) * int(cols)
	packed := (cellCount + 1) / 2

	body := buf[headerSize:]
	if len(body) < packed {
		return nil, 0, formatErr(ErrTruncatedGrid, headerSize, "%dx%d grid needs %d packed bytes, have %d", rows, cols, packed, len(body))
	}

	cells := make([]Cell, 0, cellCount)
	for _, b := range body[:packed] {
		cells = append(cells, cellFromNibble(b>>4))
		// The low nibble of the last byte is padding on odd cell counts.
		if len(cells) < cellCount {
			cells = append(cells, cellFromNibble(b))
		}
	}

	return &WallGrid{Rows: rows, Cols: cols, Cells: cells}, headerSize + packed, nil
}

// DecodePath parses a path section at the start of buf. Every coordinate
// must lie inside g.
func DecodePath(buf []byte, g *WallGrid) (Path, int, error) {
	return decodePath(buf, 0, g)
}

func decodePath(buf []byte, base int, g *WallGrid) (Path, int, error) {
	if len(buf) < sentinelSize {
		return nil, 0, formatErr(ErrTruncatedPath, base, "need sentinel, have %d bytes", len(buf))
	}
	if s := binary.BigEndian.Uint16(buf); s != Sentinel {
		return nil, 0, formatErr(ErrInvalidPathHeader, base, "sentinel is %#04x", s)
	}
	if len(buf) < sentinelSize+2 {
		return nil, 0, formatErr(ErrTruncatedPath, base, "missing path length")
	}

	n := int(binary.BigEndian.Uint16(buf[sentinelSize:]))
	size := sentinelSize + 2 + n*coordinateSize
	if len(buf) < size {
		return nil, 0, formatErr(ErrTruncatedPath, base, "%d points need %d bytes, have %d", n, size, len(buf))
	}

	path := make(Path, n)
	off := sentinelSize + 2
	for i := range path {
		c := readCoordinate(buf[off:])
		if !g.Contains(c) {
			return nil, 0, formatErr(ErrCoordinateOutOfBounds, base+off, "path point %d %s outside %dx%d grid", i, c, g.Rows, g.Cols)
		}
		path[i] = c
		off += coordinateSize
	}

	return path, size, nil
}

// DecodeNavigator parses a navigator section at the start of buf. All three
// coordinates must lie inside g.
func DecodeNavigator(buf []byte, g *WallGrid) (*Navigator, int, error) {
	return decodeNavigator(buf, 0, g)
}

func decodeNavigator(buf []byte, base int, g *WallGrid) (*Navigator, int, error) {
	if len(buf) < sentinelSize {
		return nil, 0, formatErr(ErrTruncatedNavigator, base, "need sentinel, have %d bytes", len(buf))
	}
	if s := binary.BigEndian.Uint16(buf); s != Sentinel {
		return nil, 0, formatErr(ErrInvalidNavigatorHeader, base, "sentinel is %#04x", s)
	}

	const size = sentinelSize + navigatorBodyLen
	if len(buf) < size {
		return nil, 0, formatErr(ErrTruncatedNavigator, base, "need %d bytes, have %d", size, len(buf))
	}

	body := buf[sentinelSize:size]
	orientation, err := ParseDirection(body[4])
	if err != nil {
		return nil, 0, formatErr(ErrInvalidOrientation, base+sentinelSize+4, "%v", err)
	}

	nav := &Navigator{
		Position:    readCoordinate(body[0:]),
		Orientation: orientation,
		Start:       readCoordinate(body[5:]),
		End:         readCoordinate(body[9:]),
	}

	fields := []struct {
		name string
		at   int
		c    Coordinate
	}{
		{"position", 0, nav.Position},
		{"start", 5, nav.Start},
		{"end", 9, nav.End},
	}
	for _, f := range fields {
		if !g.Contains(f.c) {
			return nil, 0, formatErr(ErrCoordinateOutOfBounds, base+sentinelSize+f.at, "navigator %s %s outside %dx%d grid", f.name, f.c, g.Rows, g.Cols)
		}
	}

	return nav, size, nil
}

// Decode runs the whole pipeline: grid, then the path section if bytes
// remain, then the navigator section if bytes still remain. Bytes after the
// navigator section are ignored.
func Decode(buf []byte) (*Snapshot, error) {
	grid, off, err := DecodeGrid(buf)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Grid: grid}

	if off == len(buf) {
		return snap, nil
	}
	path, n, err := decodePath(buf[off:], off, grid)
	if err != nil {
		return nil, err
	}
	snap.Path, snap.HasPath = path, true
	off += n

	if off == len(buf) {
		return snap, nil
	}
	nav, _, err := decodeNavigator(buf[off:], off, grid)
	if err != nil {
		return nil, err
	}
	snap.Navigator = nav

	return snap, nil
}

func readCoordinate(b []byte) Coordinate {
	return Coordinate{
		X: binary.BigEndian.Uint16(b[0:2]),
		Y: binary.BigEndian.Uint16(b[2:4]),
	}
}

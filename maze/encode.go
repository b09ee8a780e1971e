package maze

import (
	"encoding/binary"
	"fmt"
)

// EncodeGrid packs g into its wire form. It is the exact inverse of
// DecodeGrid, including the 0xF padding nibble on odd cell counts.
func EncodeGrid(g *WallGrid) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, headerSize, headerSize+(len(g.Cells)+1)/2)
	binary.BigEndian.PutUint16(buf[0:2], g.Rows)
	binary.BigEndian.PutUint16(buf[2:4], g.Cols)

	for i := 0; i < len(g.Cells); i += 2 {
		lo := byte(0x0F)
		if i+1 < len(g.Cells) {
			lo = g.Cells[i+1].nibble()
		}
		buf = append(buf, g.Cells[i].nibble()<<4|lo)
	}
	return buf, nil
}

// Encode serialises a snapshot. A navigator without a path is preceded by an
// empty path section, since the navigator section may only follow a path.
func Encode(s *Snapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil snapshot", ErrInvalidGrid)
	}
	buf, err := EncodeGrid(s.Grid)
	if err != nil {
		return nil, err
	}

	if s.HasPath || len(s.Path) > 0 || s.Navigator != nil {
		if len(s.Path) > int(^uint16(0)) {
			return nil, fmt.Errorf("path of %d points does not fit a u16 length", len(s.Path))
		}
		buf = binary.BigEndian.AppendUint16(buf, Sentinel)
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(s.Path)))
		for _, c := range s.Path {
			if !s.Grid.Contains(c) {
				return nil, fmt.Errorf("%w: path point %s", ErrCoordinateOutOfBounds, c)
			}
			buf = appendCoordinate(buf, c)
		}
	}

	if nav := s.Navigator; nav != nil {
		if !nav.Orientation.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, nav.Orientation)
		}
		for _, c := range []Coordinate{nav.Position, nav.Start, nav.End} {
			if !s.Grid.Contains(c) {
				return nil, fmt.Errorf("%w: navigator coordinate %s", ErrCoordinateOutOfBounds, c)
			}
		}
		buf = binary.BigEndian.AppendUint16(buf, Sentinel)
		buf = appendCoordinate(buf, nav.Position)
		buf = append(buf, byte(nav.Orientation))
		buf = appendCoordinate(buf, nav.Start)
		buf = appendCoordinate(buf, nav.End)
	}

	return buf, nil
}

func appendCoordinate(b []byte, c Coordinate) []byte {
	b = binary.BigEndian.AppendUint16(b, c.X)
	return binary.BigEndian.AppendUint16(b, c.Y)
}

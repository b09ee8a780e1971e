package i

import (
	"github.com/beka-birhanu/vinom-mazeview/maze"
	"github.com/google/uuid"
)

// MazeViewer decodes robot maze snapshots and renders them as text.
type MazeViewer interface {
	// Render returns the ASCII drawing of the snapshot in raw.
	Render(requestID uuid.UUID, raw []byte) (string, error)

	// Decode returns the decoded snapshot together with its drawing.
	Decode(requestID uuid.UUID, raw []byte) (*maze.Snapshot, string, error)
}

package service

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-mazeview/maze"
	"github.com/beka-birhanu/vinom-mazeview/render"
	"github.com/beka-birhanu/vinom-mazeview/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxSnapshotBytes = 64 * 1024
)

var (
	ErrEmptySnapshot    = errors.New("empty snapshot")
	ErrSnapshotTooLarge = errors.New("snapshot too large")
)

type ViewerOptions struct {
	MaxSnapshotBytes int
}

// MazeViewer is the logging wrapper around the maze decoder and renderer.
type MazeViewer struct {
	logger i.Logger
	opts   *ViewerOptions
}

func NewMazeViewer(logger i.Logger, opts *ViewerOptions) (i.MazeViewer, error) {
	if logger == nil {
		return nil, errors.New("maze viewer requires a logger")
	}
	if opts == nil {
		opts = &ViewerOptions{}
	}
	if opts.MaxSnapshotBytes <= 0 {
		opts.MaxSnapshotBytes = defaultMaxSnapshotBytes
	}

	return &MazeViewer{
		logger: logger,
		opts:   opts,
	}, nil
}

// Render implements i.MazeViewer.
func (mv *MazeViewer) Render(requestID uuid.UUID, raw []byte) (string, error) {
	_, text, err := mv.Decode(requestID, raw)
	return text, err
}

// Decode implements i.MazeViewer.
func (mv *MazeViewer) Decode(requestID uuid.UUID, raw []byte) (*maze.Snapshot, string, error) {
	if err := mv.checkSize(raw); err != nil {
		mv.logger.Warning(fmt.Sprintf("Rejected snapshot: ID=%s %s", requestID, err))
		return nil, "", err
	}

	snap, err := maze.Decode(raw)
	if err != nil {
		mv.logger.Warning(fmt.Sprintf("Decoding snapshot failed: ID=%s Kind=%s %s", requestID, maze.KindName(err), err))
		return nil, "", fmt.Errorf("decoding snapshot: %w", err)
	}

	text := render.Snapshot(snap)
	mv.logger.Info(fmt.Sprintf("Rendered snapshot: ID=%s Size=%dx%d PathLen=%d Navigator=%t", requestID, snap.Grid.Rows, snap.Grid.Cols, len(snap.Path), snap.Navigator != nil))
	return snap, text, nil
}

func (mv *MazeViewer) checkSize(raw []byte) error {
	switch {
	case len(raw) == 0:
		return ErrEmptySnapshot
	case len(raw) > mv.opts.MaxSnapshotBytes:
		return fmt.Errorf("%w: %d bytes, limit %d", ErrSnapshotTooLarge, len(raw), mv.opts.MaxSnapshotBytes)
	}
	return nil
}

package mazeviewapi

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/beka-birhanu/vinom-mazeview/maze"
	"github.com/beka-birhanu/vinom-mazeview/service"
	"github.com/beka-birhanu/vinom-mazeview/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID in and out of the API.
	RequestIDHeader = "X-Request-ID"

	defaultMaxBodyBytes = 64 * 1024
)

var errInvalidHex = errors.New("body is not valid hex")

// MazeViewController serves the render and decode endpoints.
type MazeViewController struct {
	viewer       i.MazeViewer
	maxBodyBytes int64
}

// NewMazeViewController initializes a MazeViewController. A non-positive
// maxBodyBytes selects the default limit.
func NewMazeViewController(viewer i.MazeViewer, maxBodyBytes int) (*MazeViewController, error) {
	if viewer == nil {
		return nil, errors.New("maze view controller requires a viewer")
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &MazeViewController{
		viewer:       viewer,
		maxBodyBytes: int64(maxBodyBytes),
	}, nil
}

// RegisterPublic registers public routes.
func (c *MazeViewController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/render", c.render)
	}
}

// RegisterProtected registers protected routes.
func (c *MazeViewController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/decode", c.decode)
	}
}

// render answers with the ASCII drawing of the posted snapshot.
func (c *MazeViewController) render(ctx *gin.Context) {
	id := requestID(ctx)
	raw, ok := c.readSnapshot(ctx)
	if !ok {
		return
	}

	text, err := c.viewer.Render(id, raw)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// decode answers with the structured snapshot and its drawing.
func (c *MazeViewController) decode(ctx *gin.Context) {
	id := requestID(ctx)
	raw, ok := c.readSnapshot(ctx)
	if !ok {
		return
	}

	snap, text, err := c.viewer.Decode(id, raw)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newDecodeResponse(id, snap, text))
}

// readSnapshot returns the request body as wire bytes. Plain-text bodies are
// hex dumps; whitespace between digits is ignored.
func (c *MazeViewController) readSnapshot(ctx *gin.Context) ([]byte, bool) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxBodyBytes*2)
	body, err := ctx.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(ctx, fmt.Errorf("%w: %v", service.ErrSnapshotTooLarge, err))
			return nil, false
		}
		abortWithError(ctx, err)
		return nil, false
	}

	if ctx.ContentType() != "text/plain" {
		return body, true
	}

	raw, err := hex.DecodeString(strings.Join(strings.Fields(string(body)), ""))
	if err != nil {
		abortWithError(ctx, fmt.Errorf("%w: %v", errInvalidHex, err))
		return nil, false
	}
	return raw, true
}

// requestID reuses a caller-supplied UUID or mints a new one, and echoes it back.
func requestID(ctx *gin.Context) uuid.UUID {
	id, err := uuid.Parse(ctx.GetHeader(RequestIDHeader))
	if err != nil {
		id = uuid.New()
	}
	ctx.Header(RequestIDHeader, id.String())
	return id
}

func abortWithError(ctx *gin.Context, err error) {
	resp := ErrorResponse{Error: err.Error()}

	var fe *maze.FormatError
	switch {
	case errors.As(err, &fe):
		resp.Kind = maze.KindName(err)
		resp.Offset = &fe.Offset
		ctx.AbortWithStatusJSON(http.StatusUnprocessableEntity, resp)
	case errors.Is(err, service.ErrSnapshotTooLarge):
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, resp)
	case errors.Is(err, service.ErrEmptySnapshot), errors.Is(err, errInvalidHex):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, resp)
	default:
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "error while reading snapshot"})
	}
}

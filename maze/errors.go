package maze

import (
	"errors"
	"fmt"
)

var (
	ErrTruncatedHeader        = errors.New("truncated maze header")
	ErrTruncatedGrid          = errors.New("truncated maze grid")
	ErrInvalidPathHeader      = errors.New("invalid path header")
	ErrTruncatedPath          = errors.New("truncated path section")
	ErrInvalidNavigatorHeader = errors.New("invalid navigator header")
	ErrTruncatedNavigator     = errors.New("truncated navigator section")
	ErrInvalidOrientation     = errors.New("invalid navigator orientation")
	ErrCoordinateOutOfBounds  = errors.New("coordinate out of bounds")

	// ErrInvalidGrid is returned by the encoder for grids that break the
	// rows*cols invariant or hold masks wider than four bits.
	ErrInvalidGrid = errors.New("invalid wall grid")
)

// FormatError reports where and why a buffer failed to decode.
// Kind is one of the Err* sentinels above; FormatError unwraps to it.
type FormatError struct {
	Kind   error
	Offset int    // Absolute byte offset of the offending section.
	Detail string // Human-readable context, may be empty.
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}

func formatErr(kind error, offset int, format string, args ...any) *FormatError {
	return &FormatError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// KindName returns a stable short name for the sentinel wrapped by err,
// or "" if err is not a decode failure.
func KindName(err error) string {
	var fe *FormatError
	if !errors.As(err, &fe) {
		return ""
	}
	switch fe.Kind {
	case ErrTruncatedHeader:
		return "TruncatedHeader"
	case ErrTruncatedGrid:
		return "TruncatedGrid"
	case ErrInvalidPathHeader:
		return "InvalidPathHeader"
	case ErrTruncatedPath:
		return "TruncatedPath"
	case ErrInvalidNavigatorHeader:
		return "InvalidNavigatorHeader"
	case ErrTruncatedNavigator:
		return "TruncatedNavigator"
	case ErrInvalidOrientation:
		return "InvalidOrientation"
	case ErrCoordinateOutOfBounds:
		return "CoordinateOutOfBounds"
	default:
		return "Unknown"
	}
}

package fbtext

import (
	"errors"

	"github.com/gogpu/fbtext/internal/blit"
	"github.com/gogpu/fbtext/internal/pixfmt"
)

// Sentinel errors. The geometry and format errors are shared with the
// internal packages, so errors.Is matches regardless of where they surface.
var (
	// ErrInvalidPosition is returned when a cursor or pixel coordinate lies
	// outside the buffer geometry.
	ErrInvalidPosition = blit.ErrInvalidPosition

	// ErrBufferTooSmall is returned when a coverage bitmap is shorter than
	// its claimed width*height. The glyph is skipped.
	ErrBufferTooSmall = blit.ErrBufferTooSmall

	// ErrInvalidGeometry is returned by NewWriter for inconsistent geometry.
	ErrInvalidGeometry = blit.ErrInvalidGeometry

	// ErrUnsupportedFormat is returned by NewWriter for an unknown pixel
	// format.
	ErrUnsupportedFormat = pixfmt.ErrUnsupportedFormat

	// ErrNotInitialized is returned by console operations before Init.
	ErrNotInitialized = errors.New("fbtext: console not initialized")

	// ErrAlreadyInitialized is returned by a second call to Init.
	ErrAlreadyInitialized = errors.New("fbtext: console already initialized")
)

// PositionError reports the rejected coordinate and the geometry it was
// checked against. It matches ErrInvalidPosition with errors.Is.
type PositionError = blit.PositionError

package blit

import (
	"errors"
	"fmt"
)

// Sentinel errors for blit package.
var (
	// ErrInvalidPosition is returned when a pixel coordinate lies outside
	// the buffer geometry.
	ErrInvalidPosition = errors.New("blit: invalid position")

	// ErrBufferTooSmall is returned when a coverage bitmap holds fewer than
	// width*height bytes.
	ErrBufferTooSmall = errors.New("blit: bitmap buffer too small")

	// ErrInvalidGeometry is returned when the boot geometry is inconsistent.
	ErrInvalidGeometry = errors.New("blit: invalid geometry")
)

// PositionError is returned when a coordinate lies outside the geometry.
// It matches ErrInvalidPosition with errors.Is.
type PositionError struct {
	X, Y          int
	Width, Height int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("blit: position (%d, %d) outside %dx%d", e.X, e.Y, e.Width, e.Height)
}

// Unwrap returns ErrInvalidPosition.
func (e *PositionError) Unwrap() error {
	return ErrInvalidPosition
}

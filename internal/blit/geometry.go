package blit

import (
	"fmt"

	"github.com/gogpu/fbtext/internal/pixfmt"
)

// Geometry describes the raw buffer handed over at boot.
// It is immutable for the lifetime of the Blitter that validated it.
type Geometry struct {
	// Width is the visible width in pixels.
	Width int

	// Height is the visible height in pixels.
	Height int

	// Stride is the distance between rows, in pixels. It is at least Width;
	// firmware pads rows for alignment.
	Stride int

	// BytesPerPixel is the size of one pixel in the buffer (3 or 4 in
	// practice, any value in 1..pixfmt.MaxBytesPerPixel is accepted).
	BytesPerPixel int

	// Format is the channel order of each pixel.
	Format pixfmt.Format
}

// Validate checks the geometry for internal consistency.
func (g Geometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, g.Width, g.Height)
	}
	if g.Stride < g.Width {
		return fmt.Errorf("%w: stride %d smaller than width %d", ErrInvalidGeometry, g.Stride, g.Width)
	}
	if g.BytesPerPixel < 1 || g.BytesPerPixel > pixfmt.MaxBytesPerPixel {
		return fmt.Errorf("%w: %d bytes per pixel", ErrInvalidGeometry, g.BytesPerPixel)
	}
	if !g.Format.IsValid() {
		return fmt.Errorf("%w: %s", pixfmt.ErrUnsupportedFormat, g.Format)
	}
	return nil
}

// Contains reports whether (x, y) is a visible pixel.
func (g Geometry) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Offset returns the byte offset of pixel (x, y).
func (g Geometry) Offset(x, y int) int {
	return (y*g.Stride + x) * g.BytesPerPixel
}

// RequiredLen is the number of bytes a buffer needs to hold every visible
// pixel of the geometry.
func (g Geometry) RequiredLen() int {
	return g.Offset(g.Width-1, g.Height-1) + g.BytesPerPixel
}

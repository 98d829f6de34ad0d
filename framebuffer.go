package fbtext

import (
	"github.com/gogpu/fbtext/internal/blit"
	"github.com/gogpu/fbtext/internal/pixfmt"
)

// Geometry describes the pixel layout of a framebuffer: Width, Height,
// Stride (in pixels), BytesPerPixel and Format.
type Geometry = blit.Geometry

// PixelFormat is the channel order of a framebuffer pixel.
type PixelFormat = pixfmt.Format

// Pixel formats.
const (
	FormatUnknown = pixfmt.FormatUnknown
	FormatRGB     = pixfmt.FormatRGB
	FormatBGR     = pixfmt.FormatBGR
)

// ParseFormat parses a pixel format name ("rgb" or "bgr").
func ParseFormat(s string) (PixelFormat, error) {
	return pixfmt.ParseFormat(s)
}

// Framebuffer is the boot handoff: the raw buffer and its geometry.
//
// After NewWriter the Writer owns Buffer exclusively. Nothing else may read
// or write it while the Writer is in use.
type Framebuffer struct {
	Buffer   []byte
	Geometry Geometry
}

// NewFramebuffer allocates a zeroed heap buffer large enough for g.
// It is meant for tests and off-screen rendering.
func NewFramebuffer(g Geometry) (Framebuffer, error) {
	if err := g.Validate(); err != nil {
		return Framebuffer{}, err
	}
	return Framebuffer{
		Buffer:   make([]byte, g.RequiredLen()),
		Geometry: g,
	}, nil
}

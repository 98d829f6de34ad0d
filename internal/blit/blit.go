// Package blit writes pixels and coverage bitmaps into a raw framebuffer.
//
// Every byte goes through a volatile, bounds-checked store. Coordinates are
// checked against the geometry first, and the store re-checks the byte range
// against the buffer length, so a geometry that overstates the buffer only
// loses writes.
package blit

import (
	"github.com/gogpu/fbtext/internal/blend"
	"github.com/gogpu/fbtext/internal/pixfmt"
	"github.com/gogpu/fbtext/internal/volatile"
)

// Blitter owns a framebuffer and draws into it.
//
// Blitter is not safe for concurrent use.
type Blitter struct {
	buf  *volatile.Buffer
	geom Geometry
	enc  pixfmt.Encoder

	// px is scratch space for one encoded pixel.
	px [pixfmt.MaxBytesPerPixel]byte
}

// New validates the geometry and takes ownership of mem.
func New(mem []byte, g Geometry) (*Blitter, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	enc, err := pixfmt.NewEncoder(g.Format, g.BytesPerPixel)
	if err != nil {
		return nil, err
	}
	return &Blitter{
		buf:  volatile.New(mem),
		geom: g,
		enc:  enc,
	}, nil
}

// Geometry returns the buffer geometry.
func (b *Blitter) Geometry() Geometry {
	return b.geom
}

// Len returns the buffer size in bytes.
func (b *Blitter) Len() int {
	return b.buf.Len()
}

// WritePixelAt stores color at (x, y). Coordinates outside the geometry
// return a *PositionError and leave the buffer untouched.
func (b *Blitter) WritePixelAt(x, y int, color uint32) error {
	if !b.geom.Contains(x, y) {
		return &PositionError{X: x, Y: y, Width: b.geom.Width, Height: b.geom.Height}
	}
	b.WriteAtOffset(b.geom.Offset(x, y), color)
	return nil
}

// WriteAtOffset stores color at a byte offset. It reports false, writing
// nothing, when offset+bpp exceeds the buffer.
func (b *Blitter) WriteAtOffset(offset int, color uint32) bool {
	return b.buf.StoreBytes(offset, b.enc.Encode(b.px[:], color))
}

// PixelAt reads back and decodes the pixel at (x, y).
func (b *Blitter) PixelAt(x, y int) (uint32, error) {
	if !b.geom.Contains(x, y) {
		return 0, &PositionError{X: x, Y: y, Width: b.geom.Width, Height: b.geom.Height}
	}
	px := b.px[:b.geom.BytesPerPixel]
	if !b.buf.LoadBytes(b.geom.Offset(x, y), px) {
		return 0, ErrBufferTooSmall
	}
	return b.enc.Decode(px), nil
}

// Fill paints every visible pixel with color. Row padding beyond Width is
// left as is.
func (b *Blitter) Fill(color uint32) {
	px := b.enc.Encode(b.px[:], color)
	for y := 0; y < b.geom.Height; y++ {
		row := b.geom.Offset(0, y)
		for x := 0; x < b.geom.Width; x++ {
			b.buf.StoreBytes(row+x*len(px), px)
		}
	}
}

// RenderBitmap composites a width*height coverage bitmap with its top-left
// corner at (x, y). Pixels outside the geometry are skipped, as are pixels
// with zero coverage; the rest are blended between bg and fg and written.
//
// A bitmap shorter than width*height fails with ErrBufferTooSmall before
// anything is drawn.
func (b *Blitter) RenderBitmap(x, y int, bitmap []byte, width, height int, fg, bg uint32) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if len(bitmap) < width*height {
		return ErrBufferTooSmall
	}

	for row := 0; row < height; row++ {
		sy := y + row
		if sy < 0 || sy >= b.geom.Height {
			continue
		}
		line := bitmap[row*width : (row+1)*width]
		for col, alpha := range line {
			sx := x + col
			if alpha == 0 || sx < 0 || sx >= b.geom.Width {
				continue
			}
			b.WriteAtOffset(b.geom.Offset(sx, sy), blend.Colors(bg, fg, alpha))
		}
	}
	return nil
}

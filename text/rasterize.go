package text

import (
	"bytes"
	"image"

	"golang.org/x/image/math/fixed"
)

// GlyphKey identifies a rasterized glyph in the glyph cache.
type GlyphKey struct {
	Rune rune
	Size float64
}

// glyph is a cached rasterization result.
type glyph struct {
	metrics  GlyphMetrics
	coverage []byte
}

// Rasterize renders r at size and returns its metrics and coverage bitmap.
//
// The bitmap is Width*Height bytes, row-major, 0 transparent and 255 fully
// opaque. Runes missing from the font render as the font's .notdef glyph.
// Rasterization is deterministic; results are cached, and each call returns
// its own copy of the coverage.
func (f *Font) Rasterize(r rune, size float64) (GlyphMetrics, []byte) {
	g := f.lookup(r, size)
	return g.metrics, bytes.Clone(g.coverage)
}

// Metrics returns the metrics Rasterize would report, without copying the
// bitmap.
func (f *Font) Metrics(r rune, size float64) GlyphMetrics {
	return f.lookup(r, size).metrics
}

func (f *Font) lookup(r rune, size float64) *glyph {
	return f.glyphs.getOrCreate(GlyphKey{Rune: r, Size: size}, func() *glyph {
		return f.rasterize(r, size)
	})
}

// rasterize draws the glyph with the sized x/image face.
func (f *Font) rasterize(r rune, size float64) *glyph {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.faceLocked(size)
	if err != nil {
		return &glyph{}
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return &glyph{}
	}

	w, h := dr.Dx(), dr.Dy()
	g := &glyph{
		metrics: GlyphMetrics{
			XMin:         dr.Min.X,
			YMin:         -dr.Max.Y,
			Width:        w,
			Height:       h,
			AdvanceWidth: fixedToFloat64(advance),
		},
	}
	if w > 0 && h > 0 {
		// The face reuses its mask between calls, so copy it out.
		g.coverage = copyCoverage(mask, maskp, w, h)
	}
	return g
}

// copyCoverage extracts a w*h alpha bitmap from mask starting at maskp.
func copyCoverage(mask image.Image, maskp image.Point, w, h int) []byte {
	out := make([]byte, w*h)

	if a, ok := mask.(*image.Alpha); ok {
		for y := 0; y < h; y++ {
			start := a.PixOffset(maskp.X, maskp.Y+y)
			copy(out[y*w:(y+1)*w], a.Pix[start:start+w])
		}
		return out
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, alpha := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			out[y*w+x] = byte(alpha >> 8)
		}
	}
	return out
}

package text

// Bounds is an axis-aligned box in pixels.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent, or 0 for a degenerate box.
func (b Bounds) Width() float64 {
	if b.MaxX > b.MinX {
		return b.MaxX - b.MinX
	}
	return 0
}

// Height returns the vertical extent, or 0 for a degenerate box.
func (b Bounds) Height() float64 {
	if b.MaxY > b.MinY {
		return b.MaxY - b.MinY
	}
	return 0
}

// Measure lays text out at the origin with no width or height limit and
// returns the bounding box of the resulting glyphs. Empty text yields the
// zero Bounds. A nil shaper selects BuiltinShaper.
func Measure(f *Font, s Shaper, text string, size float64) Bounds {
	if text == "" {
		return Bounds{}
	}
	l := NewLayout(f, s)
	l.Append(text, size)
	return l.Bounds()
}

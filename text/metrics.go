package text

// LineMetrics holds font-wide vertical metrics at a specific size.
type LineMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (positive, below baseline).
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64
}

// Height returns ascent + descent + line gap.
func (m LineMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// GlyphMetrics describes one rasterized glyph.
type GlyphMetrics struct {
	// XMin is the offset from the pen position to the left edge of the bitmap.
	XMin int

	// YMin is the offset from the baseline to the bottom edge of the bitmap,
	// positive upwards. Descenders have a negative YMin.
	YMin int

	// Width and Height are the bitmap dimensions.
	Width  int
	Height int

	// AdvanceWidth is how far the pen moves after this glyph, in pixels.
	AdvanceWidth float64
}

// Top returns the offset from the baseline to the top edge of the bitmap,
// in Y-down screen space (negative above the baseline).
func (m GlyphMetrics) Top() int {
	return -(m.YMin + m.Height)
}

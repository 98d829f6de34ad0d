// Package text rasterizes and lays out text for framebuffer output.
//
// The pipeline is small on purpose:
//
//   - Font: the embedded Go Mono face, parsed once on first use
//   - Rasterize: (rune, size) to metrics plus an 8-bit coverage bitmap
//   - Shaper: horizontal advances for a run of runes (built-in or HarfBuzz)
//   - Layout: positions glyphs left to right with line wrapping
//   - Measure: bounding box of a run without touching any output
//
// # Example usage
//
//	f, err := text.Default()
//	if err != nil {
//	    return err // the embedded font failed to parse
//	}
//
//	l := text.NewLayout(f, nil)
//	l.Reset(text.LayoutSettings{X: 1, Y: 1, MaxWidth: 798})
//	l.Append("Hello, framebuffer!", 16)
//	for _, g := range l.Glyphs() {
//	    _, coverage := f.Rasterize(g.Rune, 16)
//	    // blit coverage at (g.X, g.Y)
//	}
//
// Coordinates are in pixels with the origin at the top-left and Y growing
// downwards.
package text

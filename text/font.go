package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font is the parsed embedded font face.
//
// Font is safe for concurrent use. Sized faces are created on demand and
// guarded by a mutex, since x/image faces keep per-call scratch state.
type Font struct {
	data   []byte
	parsed *opentype.Font
	name   string

	mu    sync.Mutex
	faces map[float64]font.Face

	glyphs *glyphCache
}

// glyphCacheLimit bounds the number of rasterized glyphs kept in memory.
const glyphCacheLimit = 512

var (
	defaultOnce sync.Once
	defaultFont *Font
	defaultErr  error
)

// Default returns the embedded font, parsing it on the first call.
// A parse failure is returned to every caller; it means the binary was built
// with a broken asset and nothing can be rendered.
func Default() (*Font, error) {
	defaultOnce.Do(func() {
		defaultFont, defaultErr = newFont(gomono.TTF)
	})
	return defaultFont, defaultErr
}

// newFont parses TTF/OTF data.
func newFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	f := &Font{
		data:   data,
		parsed: parsed,
		faces:  make(map[float64]font.Face),
		glyphs: newGlyphCache(glyphCacheLimit),
	}
	f.name = familyName(parsed)
	return f, nil
}

// familyName extracts the family name, falling back to the full name.
func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return "Unknown Font"
}

// Name returns the font family name.
func (f *Font) Name() string {
	return f.name
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return f.parsed.NumGlyphs()
}

// HasGlyph reports whether the font maps r to a real glyph (not .notdef).
func (f *Font) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.parsed.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// LineMetrics returns the font-wide vertical metrics at size.
func (f *Font) LineMetrics(size float64) LineMetrics {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.faceLocked(size)
	if err != nil {
		return LineMetrics{}
	}
	m := face.Metrics()
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	// Hinting rounds each metric separately, so the gap can come out negative.
	return LineMetrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: max(fixedToFloat64(m.Height)-ascent-descent, 0),
	}
}

// Advance returns the horizontal advance of r at size, in pixels.
func (f *Font) Advance(r rune, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.faceLocked(size)
	if err != nil {
		return 0
	}
	adv, ok := face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return fixedToFloat64(adv)
}

// Kern returns the kerning adjustment between prev and r at size.
func (f *Font) Kern(prev, r rune, size float64) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	face, err := f.faceLocked(size)
	if err != nil {
		return 0
	}
	return fixedToFloat64(face.Kern(prev, r))
}

// faceLocked returns the sized face, creating it on first use.
// Caller must hold f.mu.
func (f *Font) faceLocked(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if face, ok := f.faces[size]; ok {
		return face, nil
	}

	// 72 DPI makes the point size equal to pixels per em.
	face, err := opentype.NewFace(f.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	f.faces[size] = face
	return face, nil
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

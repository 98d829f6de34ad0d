package fbtext

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/fbtext/internal/blit"
	"github.com/gogpu/fbtext/text"
)

// Writer renders text into a framebuffer and keeps the cursor and color
// state between calls.
//
// The cursor is the top-left corner of the next character cell. It stays
// inside the geometry: SetPosition rejects coordinates outside it and
// Newline wraps back to the top instead of running off the bottom. There is
// no scrolling and no history; wrapped lines overwrite what was there.
//
// Writer is not safe for concurrent use. Use Init and the console functions
// to share one Writer across goroutines. The zero Writer has no framebuffer
// and panics on use; create Writers with NewWriter.
type Writer struct {
	blit   *blit.Blitter
	font   *text.Font
	layout *text.Layout
	cfg    config

	x, y   int
	fg, bg Color

	// ascent is the baseline offset from the top of a line, in pixels.
	ascent int

	// cell is the font size rounded up to whole pixels.
	cell int

	// partial holds the leading bytes of a character split across Write
	// calls.
	partial []byte

	// onGlyph, when set, observes every glyph before it is drawn.
	onGlyph func(text.PositionedGlyph)
}

// NewWriter validates the framebuffer, loads the embedded font and clears the
// screen to the background color.
//
// It fails with ErrUnsupportedFormat or ErrInvalidGeometry for a buffer the
// engine cannot draw into, and with the font parse error if the embedded
// font is unusable. These are the only fatal conditions: once a Writer
// exists, rendering never fails the process.
func NewWriter(fb Framebuffer, opts ...Option) (*Writer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := fb.Geometry
	b, err := blit.New(fb.Buffer, g)
	if err != nil {
		return nil, fmt.Errorf("fbtext: %w", err)
	}
	pad := cfg.borderPadding
	if g.Width <= 2*pad || g.Height <= 2*pad {
		return nil, fmt.Errorf("fbtext: %w: %dx%d leaves no room inside padding %d",
			ErrInvalidGeometry, g.Width, g.Height, pad)
	}

	f, err := text.Default()
	if err != nil {
		return nil, fmt.Errorf("fbtext: load font: %w", err)
	}

	w := &Writer{
		blit:   b,
		font:   f,
		layout: text.NewLayout(f, cfg.shaper),
		cfg:    cfg,
		fg:     cfg.fg,
		bg:     cfg.bg,
		ascent: int(math.Ceil(f.LineMetrics(cfg.fontSize).Ascent)),
		cell:   int(math.Ceil(cfg.fontSize)),
	}

	if need := g.RequiredLen(); len(fb.Buffer) < need {
		Logger().Warn("fbtext: buffer shorter than geometry, trailing writes are dropped",
			"len", len(fb.Buffer), "need", need)
	}
	Logger().Info("fbtext: writer initialized",
		"width", g.Width, "height", g.Height, "stride", g.Stride,
		"bpp", g.BytesPerPixel, "format", g.Format.String(),
		"font", f.Name(), "glyphs", f.NumGlyphs(), "size", cfg.fontSize)

	w.Clear()
	return w, nil
}

// Geometry returns the framebuffer geometry.
func (w *Writer) Geometry() Geometry {
	return w.blit.Geometry()
}

// Clear fills the screen with the background color and moves the cursor to
// the top-left corner inside the padding.
func (w *Writer) Clear() {
	w.blit.Fill(uint32(w.bg))
	w.ResetCursor()
}

// FillScreen fills every pixel with c. The cursor is unchanged.
func (w *Writer) FillScreen(c Color) {
	w.blit.Fill(uint32(c))
}

// ResetCursor moves the cursor to (padding, padding).
func (w *Writer) ResetCursor() {
	w.x = w.cfg.borderPadding
	w.y = w.cfg.borderPadding
}

// SetPosition moves the cursor. Coordinates outside the geometry fail with a
// *PositionError and leave the cursor unchanged.
func (w *Writer) SetPosition(x, y int) error {
	g := w.Geometry()
	if !g.Contains(x, y) {
		return &PositionError{X: x, Y: y, Width: g.Width, Height: g.Height}
	}
	w.x, w.y = x, y
	return nil
}

// Position returns the cursor.
func (w *Writer) Position() (x, y int) {
	return w.x, w.y
}

// SetForeground sets the text color.
func (w *Writer) SetForeground(c Color) { w.fg = c }

// SetBackground sets the color glyph edges blend against and Clear fills
// with.
func (w *Writer) SetBackground(c Color) { w.bg = c }

// Foreground returns the text color.
func (w *Writer) Foreground() Color { return w.fg }

// Background returns the background color.
func (w *Writer) Background() Color { return w.bg }

// WriteChar writes one character at the cursor.
//
// '\n' moves to the next line, '\r' back to the left margin and '\t' writes
// spaces. Other control characters are ignored. A printable character is
// drawn and the cursor advances by its advance width plus the letter
// spacing, moving to the next line once it passes the right margin.
func (w *Writer) WriteChar(r rune) error {
	switch {
	case r == '\n':
		w.Newline()
		return nil
	case r == '\r':
		w.x = w.cfg.borderPadding
		return nil
	case r == '\t':
		for range w.cfg.tabWidth {
			if err := w.writeRune(' '); err != nil {
				return err
			}
		}
		return nil
	case unicode.IsControl(r):
		return nil
	}
	return w.writeRune(r)
}

func (w *Writer) writeRune(r rune) error {
	m := w.font.Metrics(r, w.cfg.fontSize)
	err := w.drawGlyph(text.PositionedGlyph{
		Rune:    r,
		X:       w.x + m.XMin,
		Y:       w.y + w.ascent + m.Top(),
		Width:   m.Width,
		Height:  m.Height,
		PenX:    float64(w.x),
		Advance: m.AdvanceWidth,
	})

	w.x += int(m.AdvanceWidth) + w.cfg.letterSpacing
	if w.x > w.Geometry().Width-w.cfg.borderPadding {
		w.Newline()
	}
	return err
}

// Newline moves the cursor to the left margin of the next line. When a full
// line would not fit above the bottom margin the cursor wraps to the top.
// Nothing is scrolled or cleared.
func (w *Writer) Newline() {
	pad := w.cfg.borderPadding
	w.x = pad
	w.y += w.cell + w.cfg.lineSpacing

	if w.y+w.cell > w.Geometry().Height-pad {
		Logger().Debug("fbtext: cursor wrapped to top", "y", w.y)
		w.y = pad
	}
}

// Write implements io.Writer. It never fails on content; see WriteString.
//
// A multi-byte character cut off at the end of p is held back and drawn
// once the rest of it arrives, so output copied in arbitrary chunks renders
// the same as one WriteString.
func (w *Writer) Write(p []byte) (int, error) {
	s := string(w.partial) + string(p)
	w.partial = w.partial[:0]
	if n := incompleteSuffix(s); n > 0 {
		w.partial = append(w.partial, s[len(s)-n:]...)
		s = s[:len(s)-n]
	}

	if _, err := w.WriteString(s); err != nil {
		return 0, err
	}
	return len(p), nil
}

// incompleteSuffix returns the length of a truncated UTF-8 sequence at the
// end of s, or 0. Invalid bytes are not held back.
func incompleteSuffix(s string) int {
	for i := len(s) - 1; i >= 0 && i >= len(s)-utf8.UTFMax; i-- {
		if !utf8.RuneStart(s[i]) {
			continue
		}
		if utf8.FullRuneInString(s[i:]) {
			return 0
		}
		return len(s) - i
	}
	return 0
}

// WriteString lays text out from the cursor and draws it.
//
// The text is normalized to NFC and laid out in one pass within the space
// right of and below the cursor, wrapping at word boundaries when a line
// fills up. Each '\n' is a Newline. Text that needs a line that would not
// fit above the bottom margin continues after a Newline, which may wrap to
// the top. The cursor ends just past the last glyph, on its line.
//
// WriteString implements io.StringWriter. It returns len(s) unless a glyph
// could not be drawn.
func (w *Writer) WriteString(s string) (int, error) {
	if s == "" {
		return 0, nil
	}

	var errs []error
	for i, seg := range strings.Split(norm.NFC.String(s), "\n") {
		if i > 0 {
			w.Newline()
		}
		if err := w.writeSegment(seg); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return 0, err
	}
	return len(s), nil
}

// writeSegment renders a run without newlines, continuing after a Newline
// whenever the layout runs out of room at the bottom.
func (w *Writer) writeSegment(seg string) error {
	g := w.Geometry()
	pad := w.cfg.borderPadding

	var errs []error
	for seg != "" {
		if w.x >= g.Width-pad {
			w.Newline()
		}

		w.layout.Reset(text.LayoutSettings{
			X:          float64(w.x),
			Y:          float64(w.y),
			MaxWidth:   float64(g.Width - w.x - pad),
			MaxHeight:  float64(max(g.Height-pad-w.cell-w.y+1, 1)),
			LineHeight: w.cfg.lineHeight,
			TabWidth:   w.cfg.tabWidth,
		})
		w.layout.Append(seg, w.cfg.fontSize)

		for _, pg := range w.layout.Glyphs() {
			if err := w.drawGlyph(pg); err != nil {
				errs = append(errs, err)
			}
		}

		x, top := w.layout.Pen()
		w.x, w.y = int(math.Ceil(x)), int(top)

		n := w.layout.Consumed()
		if !w.layout.Truncated() || n == 0 {
			break
		}
		Logger().Debug("fbtext: layout truncated at bottom margin",
			"lines", len(w.layout.Lines()), "consumed", n, "remaining", len(seg)-n)
		seg = seg[n:]
		w.Newline()
	}

	if w.x > g.Width-pad {
		w.Newline()
	}
	return errors.Join(errs...)
}

// drawGlyph rasterizes and composites one positioned glyph. Whitespace has
// no ink and is skipped.
func (w *Writer) drawGlyph(pg text.PositionedGlyph) error {
	if unicode.IsSpace(pg.Rune) {
		return nil
	}
	if w.onGlyph != nil {
		w.onGlyph(pg)
	}
	if !w.font.HasGlyph(pg.Rune) {
		Logger().Debug("fbtext: rune missing from font, drawing .notdef", "rune", fmt.Sprintf("%U", pg.Rune))
	}

	m, coverage := w.font.Rasterize(pg.Rune, w.cfg.fontSize)
	err := w.blit.RenderBitmap(pg.X, pg.Y, coverage, m.Width, m.Height, uint32(w.fg), uint32(w.bg))
	if err != nil {
		Logger().Warn("fbtext: glyph skipped", "rune", string(pg.Rune), "err", err)
		return fmt.Errorf("fbtext: glyph %q: %w", pg.Rune, err)
	}
	return nil
}

// MeasureText returns the size of the box enclosing the glyphs of s when laid
// out on one line. It does not touch the cursor or the buffer. Empty text
// measures (0, 0).
func (w *Writer) MeasureText(s string) (width, height int) {
	b := text.Measure(w.font, w.cfg.shaper, norm.NFC.String(s), w.cfg.fontSize)
	return int(math.Ceil(b.Width())), int(math.Ceil(b.Height()))
}

// TextWidth returns how far right of the cursor the glyphs of s reach when
// laid out on one line.
func (w *Writer) TextWidth(s string) int {
	b := text.Measure(w.font, w.cfg.shaper, norm.NFC.String(s), w.cfg.fontSize)
	if b == (text.Bounds{}) {
		return 0
	}
	return int(math.Ceil(b.MaxX))
}

// TextFits reports whether s fits between the cursor and the right margin.
func (w *Writer) TextFits(s string) bool {
	return w.TextWidth(s) <= w.Geometry().Width-w.x-w.cfg.borderPadding
}

// WritePixelAt stores c at (x, y). Coordinates outside the geometry fail
// with a *PositionError and leave the buffer untouched.
func (w *Writer) WritePixelAt(x, y int, c Color) error {
	return w.blit.WritePixelAt(x, y, uint32(c))
}

// PixelAt reads back the color at (x, y).
func (w *Writer) PixelAt(x, y int) (Color, error) {
	c, err := w.blit.PixelAt(x, y)
	return Color(c), err
}

// Snapshot copies the visible pixels into an image. Pixels that cannot be
// read back, because the buffer is shorter than the geometry, are left
// transparent.
func (w *Writer) Snapshot() *image.RGBA {
	g := w.Geometry()
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := range g.Height {
		for x := range g.Width {
			c, err := w.PixelAt(x, y)
			if err != nil {
				continue
			}
			img.SetRGBA(x, y, color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF})
		}
	}
	return img
}

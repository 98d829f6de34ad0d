package text

import (
	"math"
	"unicode"
)

const (
	// DefaultLineHeight is the line advance as a multiple of the font size.
	DefaultLineHeight = 1.2

	// DefaultTabWidth is the number of space advances a tab covers.
	DefaultTabWidth = 4
)

// LayoutSettings configures a Layout.
type LayoutSettings struct {
	// X and Y are the top-left origin of the first line.
	X, Y float64

	// MaxWidth is the maximum line width in pixels measured from X.
	// If 0, no line wrapping is performed.
	MaxWidth float64

	// MaxHeight bounds the area below Y. A line whose top would lie at or
	// beyond Y+MaxHeight is not started and the layout is marked truncated.
	// The first line is always kept. If 0, the height is unbounded.
	MaxHeight float64

	// LineHeight is the line advance as a multiple of the font size.
	// Zero means DefaultLineHeight.
	LineHeight float64

	// TabWidth is the number of space advances a tab covers.
	// Zero means DefaultTabWidth.
	TabWidth int
}

// PositionedGlyph is one laid-out character.
type PositionedGlyph struct {
	// Rune is the character this glyph renders.
	Rune rune

	// Index is the byte offset of Rune in the text appended since the last
	// Clear.
	Index int

	// X and Y are the absolute position of the coverage bitmap's top-left
	// corner.
	X, Y int

	// Width and Height are the coverage bitmap dimensions.
	Width, Height int

	// PenX is the pen position the glyph was placed at.
	PenX float64

	// Advance is how far the pen moved after this glyph.
	Advance float64

	// Line is the index of the line in Lines.
	Line int
}

// Line is one laid-out line.
type Line struct {
	// Top is the Y coordinate of the top of the line box.
	Top float64

	// Baseline is the Y coordinate of the baseline.
	Baseline float64

	// First and Last delimit the line's glyphs: Glyphs()[First:Last].
	First, Last int

	// Width is the pen advance from the layout origin to the end of the line.
	Width float64
}

// Layout positions runs of text left to right, wrapping at word boundaries
// when a line would exceed MaxWidth.
//
// A Layout is reusable: Clear drops the glyphs and keeps the settings,
// Reset replaces the settings. Slices returned by Glyphs and Lines are valid
// until the next call that modifies the layout.
//
// Layout is not safe for concurrent use.
type Layout struct {
	font     *Font
	shaper   Shaper
	settings LayoutSettings

	glyphs    []PositionedGlyph
	lines     []Line
	penX      float64
	consumed  int
	truncated bool
}

// NewLayout creates a layout for f. A nil shaper selects BuiltinShaper.
func NewLayout(f *Font, s Shaper) *Layout {
	if s == nil {
		s = BuiltinShaper{}
	}
	l := &Layout{font: f, shaper: s}
	l.Reset(LayoutSettings{})
	return l
}

// Reset replaces the settings and clears the layout.
func (l *Layout) Reset(s LayoutSettings) {
	if s.LineHeight <= 0 {
		s.LineHeight = DefaultLineHeight
	}
	if s.TabWidth <= 0 {
		s.TabWidth = DefaultTabWidth
	}
	l.settings = s
	l.Clear()
}

// Clear removes all glyphs and moves the pen back to the origin.
func (l *Layout) Clear() {
	l.glyphs = l.glyphs[:0]
	l.lines = l.lines[:0]
	l.penX = l.settings.X
	l.consumed = 0
	l.truncated = false
}

// Glyphs returns the positioned glyphs in text order.
func (l *Layout) Glyphs() []PositionedGlyph {
	return l.glyphs
}

// Lines returns the laid-out lines.
func (l *Layout) Lines() []Line {
	return l.lines
}

// Truncated reports whether text was dropped because it would have started
// a line below MaxHeight.
func (l *Layout) Truncated() bool {
	return l.truncated
}

// Consumed returns how many bytes of the appended text were laid out.
// It is smaller than the total appended length only when Truncated is true.
func (l *Layout) Consumed() int {
	return l.consumed
}

// Pen returns the pen position after the last laid-out character: its X
// coordinate and the top of its line.
func (l *Layout) Pen() (x, lineTop float64) {
	if len(l.lines) == 0 {
		return l.settings.X, l.settings.Y
	}
	return l.penX, l.lines[len(l.lines)-1].Top
}

// Append lays out text at size after what was appended before.
// '\n' starts a new line, tabs advance by TabWidth spaces and other control
// characters are ignored.
func (l *Layout) Append(text string, size float64) {
	if text == "" || size <= 0 || l.truncated {
		return
	}

	runes := make([]rune, 0, len(text))
	offsets := make([]int, 0, len(text))
	for i, r := range text {
		runes = append(runes, r)
		offsets = append(offsets, i)
	}

	advances := l.shaper.Advances(l.font, runes, size)
	breaks := breakOpportunities(runes)
	ascent := math.Ceil(l.font.LineMetrics(size).Ascent)
	lineAdvance := l.settings.LineHeight * size
	right := l.settings.X + l.settings.MaxWidth
	base := l.consumed

	if len(l.lines) == 0 {
		l.lines = append(l.lines, Line{
			Top:      l.settings.Y,
			Baseline: l.settings.Y + ascent,
			First:    len(l.glyphs),
			Last:     len(l.glyphs),
		})
	}

	breakAt := -1
	for i, r := range runes {
		index := base + offsets[i]
		advance := advances[i]

		switch {
		case r == '\n':
			if !l.newLine(lineAdvance, ascent) {
				l.consumed = index
				return
			}
			breakAt = -1
			continue
		case r == '\t':
			advance = float64(l.settings.TabWidth) * l.font.Advance(' ', size)
		case unicode.IsControl(r):
			continue
		}

		if breaks[i] {
			breakAt = len(l.glyphs)
		}

		m := l.font.Metrics(r, size)
		line := &l.lines[len(l.lines)-1]
		overflow := l.settings.MaxWidth > 0 &&
			classifyRune(r) != breakSpace &&
			len(l.glyphs) > line.First &&
			math.Floor(l.penX)+float64(m.XMin+m.Width) > right

		if overflow {
			// A break at len(l.glyphs) falls before r itself: nothing to move.
			if breakAt > line.First && breakAt < len(l.glyphs) {
				if stop, ok := l.wrapAt(breakAt, lineAdvance, ascent); !ok {
					l.consumed = stop
					return
				}
			} else if !l.newLine(lineAdvance, ascent) {
				l.consumed = index
				return
			}
			breakAt = -1
			line = &l.lines[len(l.lines)-1]
		}

		l.glyphs = append(l.glyphs, PositionedGlyph{
			Rune:    r,
			Index:   index,
			X:       int(math.Floor(l.penX)) + m.XMin,
			Y:       int(math.Floor(line.Baseline)) + m.Top(),
			Width:   m.Width,
			Height:  m.Height,
			PenX:    l.penX,
			Advance: advance,
			Line:    len(l.lines) - 1,
		})
		l.penX += advance
		line.Last = len(l.glyphs)
		line.Width = l.penX - l.settings.X
	}

	l.consumed = base + len(text)
}

// newLine closes the current line and opens the next one. It reports false,
// leaving the layout unchanged apart from the truncation flag, when the new
// line would start below MaxHeight.
func (l *Layout) newLine(lineAdvance, ascent float64) bool {
	cur := &l.lines[len(l.lines)-1]
	cur.Last = len(l.glyphs)
	cur.Width = l.penX - l.settings.X

	top := cur.Top + lineAdvance
	if l.settings.MaxHeight > 0 && top >= l.settings.Y+l.settings.MaxHeight {
		l.truncated = true
		return false
	}

	l.lines = append(l.lines, Line{
		Top:      top,
		Baseline: top + ascent,
		First:    len(l.glyphs),
		Last:     len(l.glyphs),
	})
	l.penX = l.settings.X
	return true
}

// wrapAt moves glyphs[k:] to a new line. When the new line does not fit,
// those glyphs are dropped and the byte index of the first one is returned
// with ok false.
func (l *Layout) wrapAt(k int, lineAdvance, ascent float64) (stop int, ok bool) {
	breakPen := l.glyphs[k].PenX
	shift := breakPen - l.settings.X

	if !l.newLine(lineAdvance, ascent) {
		stop = l.glyphs[k].Index
		l.glyphs = l.glyphs[:k]
		cur := &l.lines[len(l.lines)-1]
		cur.Last = k
		cur.Width = shift
		l.penX = breakPen
		return stop, false
	}

	prev := &l.lines[len(l.lines)-2]
	next := &l.lines[len(l.lines)-1]
	prev.Last = k
	prev.Width = shift
	next.First = k

	dy := int(math.Floor(next.Baseline)) - int(math.Floor(prev.Baseline))
	for j := k; j < len(l.glyphs); j++ {
		g := &l.glyphs[j]
		xmin := g.X - int(math.Floor(g.PenX))
		g.PenX -= shift
		g.X = int(math.Floor(g.PenX)) + xmin
		g.Y += dy
		g.Line = len(l.lines) - 1
	}
	l.penX -= shift
	next.Last = len(l.glyphs)
	next.Width = l.penX - l.settings.X
	return 0, true
}

// Bounds returns the bounding box of every glyph box in the layout.
// Zero-size glyphs such as spaces contribute their position.
func (l *Layout) Bounds() Bounds {
	if len(l.glyphs) == 0 {
		return Bounds{}
	}

	b := Bounds{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
	}
	for _, g := range l.glyphs {
		b.MinX = min(b.MinX, float64(g.X))
		b.MinY = min(b.MinY, float64(g.Y))
		b.MaxX = max(b.MaxX, float64(g.X+g.Width))
		b.MaxY = max(b.MaxY, float64(g.Y+g.Height))
	}
	return b
}

package text

import "testing"

const testSize = 16.0

// layoutTestLayout creates a layout over the embedded font with s applied.
func layoutTestLayout(t *testing.T, s LayoutSettings) *Layout {
	t.Helper()

	l := NewLayout(testFont(t), nil)
	l.Reset(s)
	return l
}

// assertWithinWidth checks that every visible glyph that is not the first on
// its line ends at or before the right edge.
func assertWithinWidth(t *testing.T, l *Layout) {
	t.Helper()

	s := l.settings
	right := s.X + s.MaxWidth
	for i, g := range l.Glyphs() {
		line := l.Lines()[g.Line]
		if i == line.First || g.Width == 0 {
			continue
		}
		if float64(g.X+g.Width) > right {
			t.Errorf("glyph %q at x=%d width %d passes right edge %v", g.Rune, g.X, g.Width, right)
		}
	}
}

func TestLayout_Empty(t *testing.T) {
	l := layoutTestLayout(t, LayoutSettings{X: 5, Y: 7})
	l.Append("", testSize)

	if len(l.Glyphs()) != 0 {
		t.Errorf("got %d glyphs for empty text", len(l.Glyphs()))
	}
	if b := l.Bounds(); b != (Bounds{}) {
		t.Errorf("Bounds() = %+v, want zero", b)
	}
	if x, y := l.Pen(); x != 5 || y != 7 {
		t.Errorf("Pen() = (%v, %v), want origin", x, y)
	}
}

func TestLayout_SingleLine(t *testing.T) {
	l := layoutTestLayout(t, LayoutSettings{X: 10, Y: 20})
	l.Append("abc", testSize)

	glyphs := l.Glyphs()
	if len(glyphs) != 3 {
		t.Fatalf("got %d glyphs, want 3", len(glyphs))
	}
	if len(l.Lines()) != 1 {
		t.Fatalf("got %d lines, want 1", len(l.Lines()))
	}
	if glyphs[0].PenX != 10 {
		t.Errorf("first PenX = %v, want 10", glyphs[0].PenX)
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].PenX <= glyphs[i-1].PenX {
			t.Errorf("glyph %d PenX %v not after %v", i, glyphs[i].PenX, glyphs[i-1].PenX)
		}
		if glyphs[i].Index != i {
			t.Errorf("glyph %d Index = %d", i, glyphs[i].Index)
		}
	}

	// Glyph tops sit below the line top and the baseline is ascent below it.
	line := l.Lines()[0]
	if line.Top != 20 {
		t.Errorf("line Top = %v, want 20", line.Top)
	}
	for _, g := range glyphs {
		if g.Y < 20 || g.Y+g.Height > int(line.Baseline)+1 {
			t.Errorf("glyph %q box y=[%d,%d) outside [20, baseline %v]", g.Rune, g.Y, g.Y+g.Height, line.Baseline)
		}
	}

	x, top := l.Pen()
	last := glyphs[len(glyphs)-1]
	if x != last.PenX+last.Advance || top != 20 {
		t.Errorf("Pen() = (%v, %v), want just past the last glyph", x, top)
	}
}

func TestLayout_HardBreak(t *testing.T) {
	l := layoutTestLayout(t, LayoutSettings{X: 0, Y: 0})
	l.Append("a\nb", testSize)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if want := DefaultLineHeight * testSize; lines[1].Top != want {
		t.Errorf("second line Top = %v, want %v", lines[1].Top, want)
	}
	glyphs := l.Glyphs()
	if len(glyphs) != 2 || glyphs[1].Line != 1 || glyphs[1].PenX != 0 {
		t.Errorf("glyphs = %+v, want 'b' at the start of line 1", glyphs)
	}
	if glyphs[1].Index != 2 {
		t.Errorf("'b' Index = %d, want 2", glyphs[1].Index)
	}
}

func TestLayout_WordWrap(t *testing.T) {
	f := testFont(t)
	hello := Measure(f, nil, "hello", testSize)
	slack := f.Advance(' ', testSize) / 2

	l := layoutTestLayout(t, LayoutSettings{X: 3, Y: 0, MaxWidth: hello.MaxX + slack})
	l.Append("hello world", testSize)

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	glyphs := l.Glyphs()
	w := glyphs[lines[1].First]
	if w.Rune != 'w' {
		t.Errorf("second line starts with %q, want 'w'", w.Rune)
	}
	if w.PenX != 3 {
		t.Errorf("'w' PenX = %v, want line origin 3", w.PenX)
	}
	for _, g := range glyphs[lines[1].First:] {
		if g.Line != 1 {
			t.Errorf("glyph %q Line = %d, want 1", g.Rune, g.Line)
		}
	}
	assertWithinWidth(t, l)
}

// TestLayout_WrapMovesWholeWord covers both places a word can overflow: on
// its first letter, where the break falls just before the glyph being placed,
// and on a later letter, where already placed glyphs move down.
func TestLayout_WrapMovesWholeWord(t *testing.T) {
	f := testFont(t)
	adv := f.Advance('a', testSize)

	tests := []struct {
		name    string
		columns float64
	}{
		{"overflow on first letter", 6},
		{"overflow inside word", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := layoutTestLayout(t, LayoutSettings{MaxWidth: (tt.columns + 0.5) * adv})
			l.Append("aaaaa bbbbb", testSize)

			lines := l.Lines()
			if len(lines) != 2 {
				t.Fatalf("got %d lines, want 2", len(lines))
			}
			glyphs := l.Glyphs()
			if len(glyphs) != 11 {
				t.Fatalf("got %d glyphs, want 11", len(glyphs))
			}
			if lines[1].First != 6 || lines[1].Last != 11 {
				t.Errorf("second line = glyphs[%d:%d], want [6:11]", lines[1].First, lines[1].Last)
			}
			if b := glyphs[6]; b.Rune != 'b' || b.PenX != 0 || b.Line != 1 {
				t.Errorf("first 'b' = %+v, want it at the start of line 1", b)
			}
			if x, top := l.Pen(); x != 5*adv || top != lines[1].Top {
				t.Errorf("Pen() = (%v, %v), want (%v, %v)", x, top, 5*adv, lines[1].Top)
			}
			if l.Consumed() != len("aaaaa bbbbb") || l.Truncated() {
				t.Errorf("Consumed() = %d, Truncated() = %v", l.Consumed(), l.Truncated())
			}
			assertWithinWidth(t, l)
		})
	}
}

// TestLayout_WrapAtFirstLetterTruncates is the bottom-margin variant of a
// first-letter overflow: the word is left for the caller.
func TestLayout_WrapAtFirstLetterTruncates(t *testing.T) {
	f := testFont(t)
	adv := f.Advance('a', testSize)

	l := layoutTestLayout(t, LayoutSettings{MaxWidth: 6.5 * adv, MaxHeight: 5})
	l.Append("aaaaa bbbbb", testSize)

	if !l.Truncated() || l.Consumed() != 6 {
		t.Errorf("Truncated() = %v, Consumed() = %d; want true, 6", l.Truncated(), l.Consumed())
	}
	if len(l.Glyphs()) != 6 || len(l.Lines()) != 1 {
		t.Errorf("got %d glyphs on %d lines, want the first word and its space", len(l.Glyphs()), len(l.Lines()))
	}
}

func TestLayout_CharWrap(t *testing.T) {
	f := testFont(t)
	adv := f.Advance('m', testSize)

	l := layoutTestLayout(t, LayoutSettings{MaxWidth: adv * 3})
	l.Append("mmmmmmmmmm", testSize)

	if len(l.Glyphs()) != 10 {
		t.Fatalf("got %d glyphs, want 10", len(l.Glyphs()))
	}
	if len(l.Lines()) < 4 {
		t.Errorf("got %d lines, want at least 4", len(l.Lines()))
	}
	for _, line := range l.Lines() {
		if line.Last <= line.First {
			t.Errorf("empty line %+v", line)
		}
	}
	assertWithinWidth(t, l)
}

func TestLayout_TrailingSpacesDoNotWrap(t *testing.T) {
	f := testFont(t)
	ab := Measure(f, nil, "ab", testSize)

	l := layoutTestLayout(t, LayoutSettings{MaxWidth: ab.MaxX})
	l.Append("ab      ", testSize)

	if len(l.Lines()) != 1 {
		t.Errorf("got %d lines, want 1", len(l.Lines()))
	}
}

func TestLayout_MaxHeight(t *testing.T) {
	l := layoutTestLayout(t, LayoutSettings{X: 0, Y: 100, MaxHeight: 10})
	l.Append("a\nb\nc", testSize)

	if !l.Truncated() {
		t.Fatal("Truncated() = false")
	}
	if len(l.Lines()) != 1 || len(l.Glyphs()) != 1 {
		t.Errorf("got %d lines / %d glyphs, want the first line only", len(l.Lines()), len(l.Glyphs()))
	}
	if l.Consumed() != 1 {
		t.Errorf("Consumed() = %d, want 1", l.Consumed())
	}

	// Appending after truncation is a no-op.
	l.Append("more", testSize)
	if len(l.Glyphs()) != 1 {
		t.Errorf("append after truncation added glyphs")
	}
}

func TestLayout_MaxHeightSoftWrap(t *testing.T) {
	f := testFont(t)
	hello := Measure(f, nil, "hello", testSize)
	slack := f.Advance(' ', testSize) / 2

	l := layoutTestLayout(t, LayoutSettings{MaxWidth: hello.MaxX + slack, MaxHeight: 5})
	l.Append("hello world", testSize)

	if !l.Truncated() {
		t.Fatal("Truncated() = false")
	}
	if got := l.Consumed(); got != 6 {
		t.Errorf("Consumed() = %d, want 6 (start of \"world\")", got)
	}
	for _, g := range l.Glyphs() {
		if g.Line != 0 {
			t.Errorf("glyph %q on line %d", g.Rune, g.Line)
		}
	}
}

func TestLayout_TabsAndControls(t *testing.T) {
	f := testFont(t)
	l := layoutTestLayout(t, LayoutSettings{})
	l.Append("a\tb\x01c", testSize)

	glyphs := l.Glyphs()
	if len(glyphs) != 4 {
		t.Fatalf("got %d glyphs, want 4 (a, tab, b, c)", len(glyphs))
	}
	tab := glyphs[1]
	if want := DefaultTabWidth * f.Advance(' ', testSize); tab.Advance != want {
		t.Errorf("tab advance = %v, want %v", tab.Advance, want)
	}
	if glyphs[3].Rune != 'c' || glyphs[3].PenX != glyphs[2].PenX+glyphs[2].Advance {
		t.Errorf("control character moved the pen")
	}
}

func TestLayout_ClearKeepsSettings(t *testing.T) {
	l := layoutTestLayout(t, LayoutSettings{X: 4, Y: 8, MaxWidth: 100})
	l.Append("abc", testSize)
	l.Clear()

	if len(l.Glyphs()) != 0 || len(l.Lines()) != 0 {
		t.Error("Clear() left glyphs or lines")
	}
	if s := l.settings; s.X != 4 || s.MaxWidth != 100 || s.LineHeight != DefaultLineHeight {
		t.Errorf("settings after Clear = %+v", s)
	}

	l.Append("x", testSize)
	if g := l.Glyphs()[0]; g.PenX != 4 || g.Index != 0 {
		t.Errorf("glyph after Clear = %+v", g)
	}
}

func TestMeasure(t *testing.T) {
	f := testFont(t)

	if b := Measure(f, nil, "", testSize); b.Width() != 0 || b.Height() != 0 {
		t.Errorf("Measure(\"\") = %+v, want zero", b)
	}

	short := Measure(f, nil, "ab", testSize)
	long := Measure(f, nil, "abcd", testSize)
	if short.Width() <= 0 || short.Height() <= 0 {
		t.Fatalf("Measure(ab) = %+v", short)
	}
	if long.Width() <= short.Width() {
		t.Errorf("Measure(abcd) width %v <= Measure(ab) width %v", long.Width(), short.Width())
	}

	// No constraint: a long run stays on one line.
	wide := Measure(f, nil, "a very long line of text that never wraps", testSize)
	if wide.Height() > 2*testSize {
		t.Errorf("unconstrained measure wrapped: height %v", wide.Height())
	}

	multi := Measure(f, nil, "ab\nab", testSize)
	if multi.Height() <= short.Height() {
		t.Errorf("two-line height %v <= one-line height %v", multi.Height(), short.Height())
	}
}

func BenchmarkLayout_Append(b *testing.B) {
	l := NewLayout(testFont(b), nil)
	l.Reset(LayoutSettings{MaxWidth: 400})
	const s = "The quick brown fox jumps over the lazy dog."
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Clear()
		l.Append(s, testSize)
	}
}

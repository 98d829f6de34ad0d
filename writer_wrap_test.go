package fbtext

import (
	"strings"
	"testing"
)

func TestWriteStringWrapped_FitsOnOneLine(t *testing.T) {
	w, _ := newTestWriter(t, testGeometry(400, 100))
	glyphs := recordGlyphs(w)

	if err := w.WriteStringWrapped("ab cd"); err != nil {
		t.Fatal(err)
	}
	if _, y := w.Position(); y != 1 {
		t.Errorf("y = %d, want 1", y)
	}

	// The single space between words is written with WriteChar.
	probe, _ := newTestWriter(t, testGeometry(400, 100))
	_, _ = probe.WriteString("ab")
	x, _ := probe.Position()
	want := float64(x + w.spaceWidth())

	var c float64
	for _, pg := range *glyphs {
		if pg.Rune == 'c' {
			c = pg.PenX
		}
	}
	if c != want {
		t.Errorf("'c' PenX = %v, want %v", c, want)
	}
}

func TestWriteStringWrapped_CollapsesWhitespace(t *testing.T) {
	w, _ := newTestWriter(t, testGeometry(400, 100))

	if err := w.WriteStringWrapped("  \t\n  "); err != nil {
		t.Fatal(err)
	}
	if x, y := w.Position(); x != 1 || y != 1 {
		t.Errorf("blank input moved the cursor to (%d, %d)", x, y)
	}

	glyphs := recordGlyphs(w)
	_ = w.WriteStringWrapped("a \n\t b")
	if len(*glyphs) != 2 {
		t.Errorf("drew %d glyphs, want 2", len(*glyphs))
	}
	if _, y := w.Position(); y != 1 {
		t.Errorf("embedded newline was not collapsed, y = %d", y)
	}
}

// TestWriteStringWrapped_OverflowingWord checks that a word too wide for the
// rest of the line gets exactly one newline before it and none inside it.
func TestWriteStringWrapped_OverflowingWord(t *testing.T) {
	const width = 240
	w, _ := newTestWriter(t, testGeometry(width, 200))
	right := width - DefaultBorderPadding

	if _, err := w.WriteString("prefix text"); err != nil {
		t.Fatal(err)
	}
	x0, y0 := w.Position()

	word := "w"
	for w.TextWidth(word) <= right-x0 {
		word += "w"
	}
	if w.TextWidth(word) > right-DefaultBorderPadding {
		t.Fatalf("word %q does not fit a whole line; widen the screen", word)
	}

	glyphs := recordGlyphs(w)
	if err := w.WriteStringWrapped(word); err != nil {
		t.Fatal(err)
	}

	_, y1 := w.Position()
	if step := int(DefaultFontSize) + DefaultLineSpacing; y1 != y0+step {
		t.Errorf("y = %d after the word, want %d (one newline)", y1, y0+step)
	}
	if len(*glyphs) != len(word) {
		t.Fatalf("drew %d glyphs, want %d", len(*glyphs), len(word))
	}
	for _, pg := range *glyphs {
		if pg.Line != 0 {
			t.Errorf("glyph at index %d broke onto layout line %d", pg.Index, pg.Line)
		}
	}
	if first := (*glyphs)[0]; first.PenX != DefaultBorderPadding {
		t.Errorf("word starts at %v, want the left margin", first.PenX)
	}
}

func TestWriteStringWrapped_NoNewlineAtLineStart(t *testing.T) {
	w, _ := newTestWriter(t, testGeometry(80, 200))

	// Wider than the whole line: WriteString breaks it, but no blank line is
	// emitted first.
	glyphs := recordGlyphs(w)
	if err := w.WriteStringWrapped(strings.Repeat("m", 12)); err != nil {
		t.Fatal(err)
	}
	if first := (*glyphs)[0]; first.PenX != 1 || first.Line != 0 {
		t.Errorf("first glyph = %+v, want it at the cursor", first)
	}
}

func TestWriteStringWrapped_BreaksBeforeNextWord(t *testing.T) {
	probe, _ := newTestWriter(t, testGeometry(400, 100))
	_, _ = probe.WriteString("ab")
	x, _ := probe.Position()
	cd := probe.TextWidth("cd")

	// "ab" fits, "ab cd" misses by one pixel: the space is dropped and "cd"
	// starts the next line.
	width := x + probe.spaceWidth() + cd - 1 + DefaultBorderPadding
	w, _ := newTestWriter(t, testGeometry(width, 100))
	glyphs := recordGlyphs(w)

	if err := w.WriteStringWrapped("ab cd"); err != nil {
		t.Fatal(err)
	}
	var c float64 = -1
	for _, pg := range *glyphs {
		if pg.Rune == 'c' {
			c = pg.PenX
		}
	}
	if c != DefaultBorderPadding {
		t.Errorf("'c' PenX = %v, want the left margin", c)
	}
	if _, y := w.Position(); y != 1+int(DefaultFontSize)+DefaultLineSpacing {
		t.Errorf("y = %d, want the second line", y)
	}
}

// TestWriteStringWrapped_WithinMargin is the wrap invariant: no glyph starts
// past the right margin, whatever the sequence of calls.
func TestWriteStringWrapped_WithinMargin(t *testing.T) {
	const width = 173
	w, _ := newTestWriter(t, testGeometry(width, 400))
	glyphs := recordGlyphs(w)

	inputs := []string{
		"The quick brown fox jumps over the lazy dog.",
		"supercalifragilisticexpialidocious",
		"a b c d e f g h i j k l m n o p q r s t u v w x y z",
		"trailing  spaces   and\ttabs\n\nand newlines",
	}
	for i := 0; i < 5; i++ {
		for _, s := range inputs {
			if err := w.WriteStringWrapped(s); err != nil {
				t.Fatal(err)
			}
		}
	}

	if len(*glyphs) == 0 {
		t.Fatal("nothing drawn")
	}
	for _, pg := range *glyphs {
		if pg.X > width-DefaultBorderPadding {
			t.Fatalf("glyph %q at x=%d past the margin %d", pg.Rune, pg.X, width-DefaultBorderPadding)
		}
	}
}

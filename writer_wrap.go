package fbtext

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WriteStringWrapped writes s word by word, breaking lines greedily.
//
// s is split on whitespace. A word wider than the space left on the current
// line starts a new line first, unless the cursor is already at the left
// margin. Between words a single space is written, or, when the space and
// the next word would pass the right margin, a Newline instead. Words are
// never hyphenated and placed words are never reflowed. A word wider than a
// whole line is broken by WriteString.
func (w *Writer) WriteStringWrapped(s string) error {
	words := strings.Fields(norm.NFC.String(s))
	if len(words) == 0 {
		return nil
	}

	pad := w.cfg.borderPadding
	right := w.Geometry().Width - pad
	space := w.spaceWidth()

	width := w.TextWidth(words[0])
	for i, word := range words {
		if width > right-w.x && w.x > pad {
			w.Newline()
		}
		if _, err := w.WriteString(word); err != nil {
			return err
		}

		if i == len(words)-1 {
			break
		}
		width = w.TextWidth(words[i+1])
		if w.x+space+width > right {
			w.Newline()
			continue
		}
		if err := w.WriteChar(' '); err != nil {
			return err
		}
	}
	return nil
}

// spaceWidth is how far WriteChar(' ') moves the cursor.
func (w *Writer) spaceWidth() int {
	return int(w.font.Advance(' ', w.cfg.fontSize)) + w.cfg.letterSpacing
}

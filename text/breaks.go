package text

import "unicode"

// breakClass is a simplified UAX #14 line breaking class.
type breakClass uint8

const (
	breakOther breakClass = iota
	breakSpace
	breakZero
	breakOpen
	breakClose
	breakHyphen
	breakIdeographic
)

// classifyRune returns the break class of a rune.
func classifyRune(r rune) breakClass {
	switch r {
	case ' ', '\t':
		return breakSpace
	case '\u00A0', '\u202F': // No-break spaces glue their neighbours.
		return breakOther
	case '\u200B': // Zero-width space
		return breakZero
	case '(', '[', '{', '\u201C', '\u2018':
		return breakOpen
	case ')', ']', '}', '\u201D', '\u2019':
		return breakClose
	case '-', '\u2010', '\u2013', '\u2014':
		return breakHyphen
	}
	if isCJKRune(r) {
		return breakIdeographic
	}
	if unicode.IsSpace(r) {
		return breakSpace
	}
	return breakOther
}

// isCJKRune reports whether r is a CJK character that allows breaking
// around it.
func isCJKRune(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// breakOpportunities returns, for each rune index i, whether a line may
// start at rune i. Index 0 is always false.
func breakOpportunities(runes []rune) []bool {
	out := make([]bool, len(runes))
	if len(runes) < 2 {
		return out
	}

	classes := make([]breakClass, len(runes))
	for i, r := range runes {
		classes[i] = classifyRune(r)
	}

	for i := 1; i < len(runes); i++ {
		prev, curr := classes[i-1], classes[i]
		switch {
		case curr == breakClose || curr == breakSpace:
			// Never start a line with closing punctuation or whitespace.
		case prev == breakOpen:
		case prev == breakSpace, prev == breakZero:
			out[i] = true
		case prev == breakHyphen && curr != breakHyphen:
			out[i] = true
		case curr == breakIdeographic, prev == breakIdeographic:
			out[i] = true
		}
	}
	return out
}

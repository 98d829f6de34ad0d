package text

import "unicode"

// Shaper computes horizontal advances for a run of runes.
//
// Glyph selection stays one rune to one glyph; a Shaper only decides how far
// the pen moves after each rune, which is where kerning shows up.
type Shaper interface {
	// Advances returns one advance per rune, in pixels at size.
	// Control characters get a zero advance.
	Advances(f *Font, runes []rune, size float64) []float64
}

// BuiltinShaper uses the font's advance widths and kerning pairs.
// It is the default Shaper and has no state.
type BuiltinShaper struct{}

// Advances implements Shaper.
func (BuiltinShaper) Advances(f *Font, runes []rune, size float64) []float64 {
	adv := make([]float64, len(runes))
	prev := rune(-1)
	for i, r := range runes {
		if unicode.IsControl(r) {
			prev = -1
			continue
		}
		adv[i] = f.Advance(r, size)
		if prev >= 0 {
			// Kerning adjusts the gap between the pair, which belongs to the
			// advance of the first rune.
			adv[i-1] += f.Kern(prev, r, size)
		}
		prev = r
	}
	return adv
}

package text

import (
	"bytes"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper computes advances with HarfBuzz shaping from
// go-text/typesetting, picking up GPOS kerning that the legacy kern table
// does not carry.
//
// Shaped glyphs are mapped back to runes through their cluster index; when
// several glyphs share a cluster their advances are summed onto the first
// rune of the cluster.
//
// GoTextShaper is safe for concurrent use. It caches parsed font.Font objects
// (which are thread-safe) and creates a font.Face per call. HarfbuzzShaper
// instances are pooled since they are not safe for concurrent use.
type GoTextShaper struct {
	shaperPool sync.Pool

	mu        sync.RWMutex
	fontCache map[*Font]*font.Font
}

// NewGoTextShaper creates a GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		fontCache: make(map[*Font]*font.Font),
	}
}

// Advances implements Shaper. If the font cannot be loaded by go-text the
// built-in advances are returned instead.
func (s *GoTextShaper) Advances(f *Font, runes []rune, size float64) []float64 {
	if len(runes) == 0 {
		return nil
	}

	goTextFont, err := s.getOrCreateFont(f)
	if err != nil {
		return BuiltinShaper{}.Advances(f, runes, size)
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	adv := make([]float64, len(runes))
	for _, g := range output.Glyphs {
		i := g.TextIndex()
		if i < 0 || i >= len(runes) {
			continue
		}
		adv[i] += fixedToFloat64(g.Advance)
	}
	for i, r := range runes {
		if unicode.IsControl(r) {
			adv[i] = 0
		}
	}
	return adv
}

// getOrCreateFont returns the cached go-text font for f, parsing it once.
func (s *GoTextShaper) getOrCreateFont(f *Font) (*font.Font, error) {
	s.mu.RLock()
	if gf, ok := s.fontCache[f]; ok {
		s.mu.RUnlock()
		return gf, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if gf, ok := s.fontCache[f]; ok {
		return gf, nil
	}

	face, err := font.ParseTTF(bytes.NewReader(f.data))
	if err != nil {
		return nil, err
	}
	s.fontCache[f] = face.Font
	return face.Font, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

package text

import "testing"

func TestGlyphCache_CreatesOnce(t *testing.T) {
	c := newGlyphCache(0)
	calls := 0
	create := func() *glyph {
		calls++
		return &glyph{metrics: GlyphMetrics{Width: 3}}
	}

	key := GlyphKey{Rune: 'a', Size: 16}
	first := c.getOrCreate(key, create)
	second := c.getOrCreate(key, create)

	if first != second {
		t.Error("second lookup returned a different glyph")
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestGlyphCache_EvictsLeastRecent(t *testing.T) {
	c := newGlyphCache(3)
	created := map[rune]int{}
	get := func(r rune) {
		c.getOrCreate(GlyphKey{Rune: r, Size: 16}, func() *glyph {
			created[r]++
			return &glyph{}
		})
	}

	get('a')
	get('b')
	get('c')
	get('a') // a is now the most recent
	get('d') // evicts b

	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	get('a')
	get('b')
	if created['a'] != 1 {
		t.Errorf("'a' created %d times, want 1 (it was recently used)", created['a'])
	}
	if created['b'] != 2 {
		t.Errorf("'b' created %d times, want 2 (it was the oldest)", created['b'])
	}
}

func TestGlyphCache_SizeIsPartOfKey(t *testing.T) {
	c := newGlyphCache(0)
	c.getOrCreate(GlyphKey{Rune: 'a', Size: 12}, func() *glyph { return &glyph{} })
	c.getOrCreate(GlyphKey{Rune: 'a', Size: 24}, func() *glyph { return &glyph{} })

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want one entry per size", c.Len())
	}
}

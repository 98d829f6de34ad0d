package text

import (
	"container/list"
	"sync"
)

// glyphCache holds rasterized glyphs, dropping the least recently used one
// once more than limit are stored. A limit of 0 keeps everything.
//
// glyphCache is safe for concurrent use.
type glyphCache struct {
	mu    sync.Mutex
	limit int
	order *list.List // *glyphEntry, most recent first
	index map[GlyphKey]*list.Element
}

type glyphEntry struct {
	key   GlyphKey
	glyph *glyph
}

func newGlyphCache(limit int) *glyphCache {
	return &glyphCache{
		limit: limit,
		order: list.New(),
		index: make(map[GlyphKey]*list.Element),
	}
}

// getOrCreate returns the glyph for key, calling create on a miss.
// create runs under the cache lock, so a glyph is rasterized at most once
// while it stays cached.
func (c *glyphCache) getOrCreate(key GlyphKey, create func() *glyph) *glyph {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.index[key]; ok {
		c.order.MoveToFront(e)
		return e.Value.(*glyphEntry).glyph
	}

	g := create()
	c.index[key] = c.order.PushFront(&glyphEntry{key: key, glyph: g})
	for c.limit > 0 && c.order.Len() > c.limit {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.index, oldest.Value.(*glyphEntry).key)
	}
	return g
}

// Len returns the number of cached glyphs.
func (c *glyphCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

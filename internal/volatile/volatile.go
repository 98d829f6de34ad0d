// Package volatile provides bounds-checked byte stores that the compiler can
// neither elide nor merge, for memory that may be observed by hardware.
//
// Go has no volatile qualifier. Accesses go through sync/atomic, which the
// compiler must emit and keeps in program order. A run of bytes covering a
// whole naturally aligned 32-bit word is written with one atomic store. A
// store to part of a word is merged with a load and compare-and-swap, which
// reads device memory and needs exclusive access to it on weakly ordered
// CPUs. Keep pixels word-aligned (4 bytes per pixel over a word-aligned
// mapping) to stay on plain stores. Bytes at the unaligned head or tail of the
// region fall back to a store inside a function that is never inlined.
package volatile

import (
	"encoding/binary"
	"sync/atomic"
	"unsafe"
)

// Buffer is an owned, length-known byte region with volatile access.
// All indexing is checked; out-of-range accesses report false and touch
// nothing.
//
// Buffer is not safe for concurrent use; callers serialize access.
type Buffer struct {
	mem []byte
}

// New wraps mem. The caller hands over ownership: no other code may alias
// mem afterwards.
func New(mem []byte) *Buffer {
	return &Buffer{mem: mem}
}

// Len returns the region size in bytes.
func (b *Buffer) Len() int {
	return len(b.mem)
}

// Store writes v at off. It reports false, writing nothing, when off is
// outside the region.
func (b *Buffer) Store(off int, v byte) bool {
	if off < 0 || off >= len(b.mem) {
		return false
	}
	b.store8(off, v)
	return true
}

// StoreBytes writes p starting at off. The range is checked as a whole:
// when off+len(p) exceeds the region nothing is written.
func (b *Buffer) StoreBytes(off int, p []byte) bool {
	if off < 0 || len(p) > len(b.mem)-off {
		return false
	}
	for i := 0; i < len(p); {
		if w, lane, ok := b.word(off + i); ok && lane == 0 && len(p)-i >= 4 {
			atomic.StoreUint32(w, binary.NativeEndian.Uint32(p[i:i+4]))
			i += 4
			continue
		}
		b.store8(off+i, p[i])
		i++
	}
	return true
}

// Load reads the byte at off with the same ordering guarantees as Store.
func (b *Buffer) Load(off int) (byte, bool) {
	if off < 0 || off >= len(b.mem) {
		return 0, false
	}
	if w, lane, ok := b.word(off); ok {
		var tmp [4]byte
		binary.NativeEndian.PutUint32(tmp[:], atomic.LoadUint32(w))
		return tmp[lane], true
	}
	return loadByte(&b.mem[off]), true
}

// LoadBytes fills p from the region starting at off.
func (b *Buffer) LoadBytes(off int, p []byte) bool {
	if off < 0 || len(p) > len(b.mem)-off {
		return false
	}
	for i := 0; i < len(p); {
		if w, lane, ok := b.word(off + i); ok && lane == 0 && len(p)-i >= 4 {
			binary.NativeEndian.PutUint32(p[i:i+4], atomic.LoadUint32(w))
			i += 4
			continue
		}
		p[i], _ = b.Load(off + i)
		i++
	}
	return true
}

func (b *Buffer) store8(off int, v byte) {
	w, lane, ok := b.word(off)
	if !ok {
		storeByte(&b.mem[off], v)
		return
	}

	var tmp [4]byte
	for {
		old := atomic.LoadUint32(w)
		binary.NativeEndian.PutUint32(tmp[:], old)
		tmp[lane] = v
		if atomic.CompareAndSwapUint32(w, old, binary.NativeEndian.Uint32(tmp[:])) {
			return
		}
	}
}

// word returns the aligned 32-bit word holding byte off, when that whole
// word lies inside the region.
func (b *Buffer) word(off int) (*uint32, int, bool) {
	base := unsafe.Pointer(unsafe.SliceData(b.mem))
	lane := int((uintptr(base) + uintptr(off)) & 3)
	start := off - lane
	if start < 0 || start+4 > len(b.mem) {
		return nil, 0, false
	}
	return (*uint32)(unsafe.Add(base, start)), lane, true
}

//go:noinline
func storeByte(p *byte, v byte) {
	*p = v
}

//go:noinline
func loadByte(p *byte) byte {
	return *p
}

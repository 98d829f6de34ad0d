// Package spin provides a busy-wait mutual exclusion lock.
//
// The lock never parks the caller: contention is resolved by spinning, which
// suits critical sections that are short and bounded, such as painting one
// line of text into a framebuffer.
package spin

import (
	"runtime"
	"sync/atomic"
)

// Mutex is a spinning lock. The zero value is unlocked.
// A Mutex must not be copied after first use.
type Mutex struct {
	_      noCopy
	locked atomic.Bool
}

// Lock acquires m, spinning until it is available.
func (m *Mutex) Lock() {
	for !m.locked.CompareAndSwap(false, true) {
		for m.locked.Load() {
			runtime.Gosched()
		}
	}
}

// TryLock acquires m if it is free and reports whether it did.
func (m *Mutex) TryLock() bool {
	return m.locked.CompareAndSwap(false, true)
}

// Unlock releases m. Unlocking an unlocked Mutex panics.
func (m *Mutex) Unlock() {
	if !m.locked.CompareAndSwap(true, false) {
		panic("spin: unlock of unlocked mutex")
	}
}

// noCopy lets go vet's copylocks check flag copies of Mutex.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

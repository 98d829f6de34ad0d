//go:build linux

package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/gogpu/fbtext"
)

// mapping is a framebuffer device mapped into memory.
type mapping struct {
	mem  []byte
	geom fbtext.Geometry
}

// mapDevice maps the whole framebuffer device read-write and shared, so
// stores reach the display.
func mapDevice(path string, format fbtext.PixelFormat) (*mapping, error) {
	geom, err := deviceGeometry(path, format)
	if err != nil {
		return nil, err
	}
	if err := geom.Validate(); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size := geom.Stride * geom.BytesPerPixel * geom.Height
	mem, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	return &mapping{mem: mem, geom: geom}, nil
}

// Framebuffer returns the boot handoff for the mapping.
func (m *mapping) Framebuffer() fbtext.Framebuffer {
	return fbtext.Framebuffer{Buffer: m.mem, Geometry: m.geom}
}

// Close unmaps the device memory.
func (m *mapping) Close() error {
	if m.mem == nil {
		return nil
	}
	err := unix.Munmap(m.mem)
	m.mem = nil
	return err
}

// Package fbtext renders UTF-8 text directly into a raw pixel buffer.
//
// # Overview
//
// fbtext targets environments where the only display is a linear
// framebuffer handed over at startup: a byte region plus its geometry
// (width, height, stride, bytes per pixel and channel order). Glyphs are
// rasterized from one embedded font and composited into the buffer with
// bounds-checked, non-elidable stores, because the buffer may be device
// memory.
//
// # Quick Start
//
//	fb := fbtext.Framebuffer{
//	    Buffer: mem,
//	    Geometry: fbtext.Geometry{
//	        Width: 800, Height: 600, Stride: 800,
//	        BytesPerPixel: 4, Format: fbtext.FormatRGB,
//	    },
//	}
//	w, err := fbtext.NewWriter(fb)
//	if err != nil {
//	    return err
//	}
//	w.WriteString("hello, framebuffer")
//	w.WriteStringWrapped("long paragraphs wrap at word boundaries")
//
// # Console
//
// Init installs one process-wide Writer behind a spin lock. Print, Printf,
// Println and Console give every caller access to it without threading a
// handle around. Fatalf and Recover report failures through an independent
// output (see SetFatalOutput) and only paint on screen when the console lock
// is free, so a failure raised while the lock is held cannot deadlock.
//
// # Architecture
//
// The package is organized into:
//   - Public API: Writer, Framebuffer, Color, options, console, fatal path
//   - text: embedded font, glyph rasterization, layout and measurement
//   - internal/blit: geometry, pixel writes and bitmap compositing
//   - internal/pixfmt, internal/blend: byte packing and alpha blending
//   - internal/volatile, internal/spin: raw memory access and locking
package fbtext

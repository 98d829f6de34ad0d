package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/fbtext"
	"github.com/gogpu/fbtext/harness"
)

// Self-tests run on an off-screen buffer so -selftest can check a target
// without touching its display.
func init() {
	harness.Register("clear_fills_background", testClear)
	harness.Register("set_position_rejects_out_of_bounds", testSetPosition)
	harness.Register("write_char_paints_foreground", testWriteChar)
	harness.Register("newline_wraps_to_top", testNewline)
	harness.Register("wrapped_text_stays_inside_margin", testWrapped)
	harness.RegisterShouldPanic("zero_writer_panics", testZeroWriter)
}

func newSelfTestWriter(opts ...fbtext.Option) (*fbtext.Writer, error) {
	fb, err := fbtext.NewFramebuffer(fbtext.Geometry{
		Width:         320,
		Height:        200,
		Stride:        320,
		BytesPerPixel: 4,
		Format:        fbtext.FormatRGB,
	})
	if err != nil {
		return nil, err
	}
	return fbtext.NewWriter(fb, opts...)
}

func testClear() error {
	w, err := newSelfTestWriter(fbtext.WithBackground(fbtext.Gray))
	if err != nil {
		return err
	}
	w.Clear()
	g := w.Geometry()
	for _, pt := range [][2]int{{0, 0}, {g.Width - 1, 0}, {0, g.Height - 1}, {g.Width - 1, g.Height - 1}} {
		c, err := w.PixelAt(pt[0], pt[1])
		if err != nil {
			return err
		}
		if c != fbtext.Gray {
			return fmt.Errorf("pixel %v = %v after clear", pt, c)
		}
	}
	return nil
}

func testSetPosition() error {
	w, err := newSelfTestWriter()
	if err != nil {
		return err
	}
	g := w.Geometry()
	if err := w.SetPosition(g.Width, 0); !errors.Is(err, fbtext.ErrInvalidPosition) {
		return fmt.Errorf("SetPosition(width, 0) = %v", err)
	}
	if err := w.WritePixelAt(0, g.Height, fbtext.White); !errors.Is(err, fbtext.ErrInvalidPosition) {
		return fmt.Errorf("WritePixelAt(0, height) = %v", err)
	}
	return nil
}

func testWriteChar() error {
	w, err := newSelfTestWriter(fbtext.WithFontSize(48))
	if err != nil {
		return err
	}
	if err := w.WriteChar('#'); err != nil {
		return err
	}
	g := w.Geometry()
	for y := range g.Height {
		for x := range g.Width {
			if c, _ := w.PixelAt(x, y); c == fbtext.White {
				return nil
			}
		}
	}
	return errors.New("no pixel painted in the foreground color")
}

func testNewline() error {
	w, err := newSelfTestWriter()
	if err != nil {
		return err
	}
	g := w.Geometry()
	if err := w.SetPosition(10, g.Height-fbtext.DefaultBorderPadding-1); err != nil {
		return err
	}
	w.Newline()
	if x, y := w.Position(); x != fbtext.DefaultBorderPadding || y != fbtext.DefaultBorderPadding {
		return fmt.Errorf("cursor at (%d, %d) after newline at the bottom", x, y)
	}
	return nil
}

func testWrapped() error {
	w, err := newSelfTestWriter()
	if err != nil {
		return err
	}
	if err := w.WriteStringWrapped(strings.Repeat("lorem ipsum dolor sit amet ", 8)); err != nil {
		return err
	}
	g := w.Geometry()
	x, y := w.Position()
	if x >= g.Width || y >= g.Height {
		return fmt.Errorf("cursor (%d, %d) outside %dx%d", x, y, g.Width, g.Height)
	}
	return nil
}

// testZeroWriter draws through a Writer that never got a framebuffer.
func testZeroWriter() {
	var w fbtext.Writer
	w.Clear()
}

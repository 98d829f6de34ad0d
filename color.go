package fbtext

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a 24-bit 0xRRGGBB color. The top byte is ignored.
type Color uint32

// Common colors.
const (
	White Color = 0xFFFFFF
	Black Color = 0x000000
	Gray  Color = 0x808080
	Red   Color = 0xFF0000
	Green Color = 0x00FF00
	Blue  Color = 0x0000FF
)

// RGB creates a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. The color is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}.RGBA()
}

// String returns the color as #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// FromColor converts any color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent colors cannot be un-premultiplied.
		return Black
	}
	r, g, b := cf.RGB255()
	return RGB(r, g, b)
}

// ParseColor parses a hex color in "#rrggbb" or "#rgb" form, or an SVG 1.1
// color name such as "white" or "darkorange".
func ParseColor(s string) (Color, error) {
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("fbtext: invalid color %q: %w", s, err)
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b), nil
}

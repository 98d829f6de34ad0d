// Package pixfmt encodes 24-bit colors into the byte layout of a framebuffer.
//
// The layout is a property of the display firmware: the channel order reported
// by the boot handoff plus the number of bytes per pixel. Each supported pair
// has its own fixed table; tables are not derived from one another.
package pixfmt

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when the framebuffer advertises a pixel
// format this package has no table for.
var ErrUnsupportedFormat = errors.New("pixfmt: unsupported pixel format")

// Format is the channel order tag reported by the boot handoff.
type Format uint8

const (
	// FormatUnknown is the zero value. It is never accepted by NewEncoder.
	FormatUnknown Format = iota

	// FormatRGB is red-first channel order.
	FormatRGB

	// FormatBGR is blue-first channel order.
	FormatBGR

	// formatCount is the number of formats (for internal use).
	formatCount
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "Unknown"
	case FormatRGB:
		return "RGB"
	case FormatBGR:
		return "BGR"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// IsValid reports whether f is a known, non-zero format.
func (f Format) IsValid() bool {
	return f > FormatUnknown && f < formatCount
}

// ParseFormat returns the format named by s ("rgb" or "bgr", any case).
func ParseFormat(s string) (Format, error) {
	switch s {
	case "rgb", "RGB", "Rgb":
		return FormatRGB, nil
	case "bgr", "BGR", "Bgr":
		return FormatBGR, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// MaxBytesPerPixel bounds the pixel size accepted by NewEncoder.
const MaxBytesPerPixel = 8

// noChannel marks a byte lane that is always written as zero.
const noChannel = -1

// Shifts select which 8 bits of a 0xXXRRGGBB color land in each byte lane.
const (
	shiftB = 0
	shiftG = 8
	shiftR = 16
	shiftX = 24
)

// channelTables holds the byte order for the (format, bpp) pairs the firmware
// defines explicitly. The 4-byte tables are a hardware contract and are not
// mirrors of each other.
var channelTables = map[Format]map[int][]int8{
	FormatRGB: {
		3: {shiftR, shiftG, shiftB},
		4: {shiftB, shiftG, shiftR, shiftX},
	},
	FormatBGR: {
		3: {shiftB, shiftG, shiftR},
		4: {shiftR, shiftG, shiftB, shiftX},
	},
}

// fallbackTable returns little-endian lanes for bpp bytes, zero padded past 4.
func fallbackTable(bpp int) []int8 {
	lanes := make([]int8, bpp)
	for i := range lanes {
		if i < 4 {
			lanes[i] = int8(i * 8)
		} else {
			lanes[i] = noChannel
		}
	}
	return lanes
}

package pixfmt

import "fmt"

// Encoder packs colors for one (format, bytes-per-pixel) pair.
// The zero value is not usable; create one with NewEncoder.
type Encoder struct {
	format Format
	lanes  []int8
}

// NewEncoder returns the encoder for the given format and pixel size.
// Unknown formats fail with ErrUnsupportedFormat; pixel sizes outside
// 1..MaxBytesPerPixel are rejected as well.
func NewEncoder(format Format, bpp int) (Encoder, error) {
	if !format.IsValid() {
		return Encoder{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if bpp < 1 || bpp > MaxBytesPerPixel {
		return Encoder{}, fmt.Errorf("pixfmt: bytes per pixel %d out of range [1, %d]", bpp, MaxBytesPerPixel)
	}

	lanes, ok := channelTables[format][bpp]
	if !ok {
		lanes = fallbackTable(bpp)
	}
	return Encoder{format: format, lanes: lanes}, nil
}

// Format returns the channel order this encoder was built for.
func (e Encoder) Format() Format { return e.format }

// BytesPerPixel returns the number of bytes Encode produces.
func (e Encoder) BytesPerPixel() int { return len(e.lanes) }

// Encode writes the pixel bytes of color into dst and returns dst[:bpp].
// dst must have room for BytesPerPixel bytes.
func (e Encoder) Encode(dst []byte, color uint32) []byte {
	dst = dst[:len(e.lanes)]
	for i, shift := range e.lanes {
		if shift == noChannel {
			dst[i] = 0
			continue
		}
		dst[i] = byte(color >> uint(shift))
	}
	return dst
}

// Decode reconstructs the 24-bit color stored in px.
// Channels the layout does not carry decode as zero, and the top byte of the
// original value is not part of the result.
func (e Encoder) Decode(px []byte) uint32 {
	var c uint32
	for i, shift := range e.lanes {
		if i >= len(px) {
			break
		}
		if shift == noChannel || shift == shiftX {
			continue
		}
		c |= uint32(px[i]) << uint(shift)
	}
	return c
}

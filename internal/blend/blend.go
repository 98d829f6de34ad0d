// Package blend composites a glyph's foreground color over the background
// using 8-bit coverage.
//
// Colors are 24-bit 0xRRGGBB values. The result for each channel is
//
//	(fg*alpha + bg*(255-alpha)) / 255
//
// with integer (floor) division. Fully opaque and fully transparent coverage
// return the input colors unchanged so glyph edges stay crisp.
package blend

// Colors blends fg over bg with the given coverage.
func Colors(bg, fg uint32, alpha uint8) uint32 {
	switch alpha {
	case 255:
		return fg
	case 0:
		return bg
	}

	a := uint16(alpha)
	inv := inv255(alpha)

	r := mix(channel(fg, 16), channel(bg, 16), a, inv)
	g := mix(channel(fg, 8), channel(bg, 8), a, inv)
	b := mix(channel(fg, 0), channel(bg, 0), a, inv)

	return uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// channel extracts the 8-bit channel at shift.
func channel(c uint32, shift uint) uint16 {
	return uint16(c>>shift) & 0xFF
}

// mix computes (fg*a + bg*inv) / 255 for one channel.
// fg*a + bg*inv never exceeds 255*255, so the sum fits in uint16.
func mix(fg, bg, a, inv uint16) byte {
	return byte(div255(fg*a + bg*inv))
}

package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It equals x / 255 (floor) for every x in
// [0, 255*255], which covers all blend sums.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// inv255 computes 255 - x (inverse alpha).
func inv255(x byte) uint16 {
	return 255 - uint16(x)
}

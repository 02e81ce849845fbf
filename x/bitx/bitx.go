package bitx

import "golang.org/x/exp/constraints"

// Mask returns a right-aligned mask of width bits.
func Mask[T constraints.Unsigned](width uint) T {
	if width == 0 {
		return 0
	}
	var all T = ^T(0)
	return all >> (bitsOf[T]() - width)
}

// Insert replaces the width-bit field at shift in word with v.
// Bits of v above width are discarded.
func Insert[T constraints.Unsigned](word T, shift, width uint, v T) T {
	m := Mask[T](width) << shift
	return (word &^ m) | ((v << shift) & m)
}

// Extract returns the width-bit field at shift in word.
func Extract[T constraints.Unsigned](word T, shift, width uint) T {
	return (word >> shift) & Mask[T](width)
}

// Bit returns a word with only bit n set.
func Bit[T constraints.Unsigned](n uint) T { return T(1) << n }

func bitsOf[T constraints.Unsigned]() uint {
	var n uint
	for v := ^T(0); v != 0; v >>= 1 {
		n++
	}
	return n
}

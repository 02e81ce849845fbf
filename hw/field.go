package hw

import "quickfeather-go/x/bitx"

// WriteField does a read-modify-write of one bit field in a register.
func WriteField(r Registers, a Addr, shift, width uint, v uint32) {
	r.Write32(a, bitx.Insert(r.Read32(a), shift, width, v))
}

// ReadField returns one bit field of a register.
func ReadField(r Registers, a Addr, shift, width uint) uint32 {
	return bitx.Extract(r.Read32(a), shift, width)
}

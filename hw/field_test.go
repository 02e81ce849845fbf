package hw

import "testing"

type memRegs map[Addr]uint32

func (m memRegs) Read32(a Addr) uint32     { return m[a] }
func (m memRegs) Write32(a Addr, v uint32) { m[a] = v }

func TestWriteFieldPreservesNeighbours(t *testing.T) {
	r := memRegs{0x10: 0xFFFFFFFF}
	WriteField(r, 0x10, 8, 4, 0x5)
	if r[0x10] != 0xFFFFF5FF {
		t.Fatalf("got %#x", r[0x10])
	}
	if ReadField(r, 0x10, 8, 4) != 0x5 {
		t.Fatalf("ReadField mismatch")
	}
}

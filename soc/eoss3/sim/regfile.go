// Package sim is a host-side stand-in for EOS S3 hardware: a register file
// that records every access, and a PL011 UART that raises its interrupt.
package sim

import (
	"sync"

	"quickfeather-go/hw"
)

var _ hw.Registers = (*RegFile)(nil)

// Write is one recorded register write.
type Write struct {
	Addr  hw.Addr
	Value uint32
}

// RegFile is a sparse simulated register space. Addresses marked W1C clear
// the bits written as one instead of storing the value.
type RegFile struct {
	mu    sync.Mutex
	mem   map[hw.Addr]uint32
	w1c   map[hw.Addr]bool
	trace []Write
}

func NewRegFile() *RegFile {
	return &RegFile{
		mem: make(map[hw.Addr]uint32),
		w1c: make(map[hw.Addr]bool),
	}
}

// MarkW1C makes writes to a behave as write-one-to-clear.
func (r *RegFile) MarkW1C(a hw.Addr) {
	r.mu.Lock()
	r.w1c[a] = true
	r.mu.Unlock()
}

func (r *RegFile) Read32(a hw.Addr) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mem[a]
}

func (r *RegFile) Write32(a hw.Addr, v uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trace = append(r.trace, Write{Addr: a, Value: v})
	if r.w1c[a] {
		r.mem[a] &^= v
		return
	}
	r.mem[a] = v
}

// Raise sets bits in a from the hardware side. It is not traced.
func (r *RegFile) Raise(a hw.Addr, bits uint32) {
	r.mu.Lock()
	r.mem[a] |= bits
	r.mu.Unlock()
}

// Trace returns a copy of all writes so far, oldest first.
func (r *RegFile) Trace() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Write(nil), r.trace...)
}

// WritesTo returns the recorded writes to a.
func (r *RegFile) WritesTo(a hw.Addr) []Write {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Write
	for _, w := range r.trace {
		if w.Addr == a {
			out = append(out, w)
		}
	}
	return out
}

// ResetTrace forgets recorded writes; register contents are kept.
func (r *RegFile) ResetTrace() {
	r.mu.Lock()
	r.trace = nil
	r.mu.Unlock()
}

// Snapshot returns a copy of the register contents.
func (r *RegFile) Snapshot() map[hw.Addr]uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[hw.Addr]uint32, len(r.mem))
	for k, v := range r.mem {
		out[k] = v
	}
	return out
}

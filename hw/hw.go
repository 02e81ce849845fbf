// Package hw holds the contracts between boot code and the hardware it
// touches. Register access is injected so host tests can substitute a
// simulated register file; nothing in this module keeps registers in
// package-level variables.
package hw

// Addr is a memory-mapped register address.
type Addr uintptr

// Registers is word-wide access to memory-mapped I/O.
type Registers interface {
	Read32(a Addr) uint32
	Write32(a Addr, v uint32)
}

// Pad names a physical pin whose function is chosen by the pad mux.
type Pad uint8

// PadConfig is the encoded control word for one pad (function, drive, pull).
type PadConfig uint32

// PadMux applies a pad control word. Writes are unconditional.
type PadMux interface {
	SetPadFunction(pad Pad, cfg PadConfig)
}

// PadAssignment is one compiled-in (pad, config) pair.
type PadAssignment struct {
	Pad    Pad
	Config PadConfig
}

// IRQ is an interrupt line number.
type IRQ int

// Handler is an interrupt service routine. arg is the context argument bound
// to the vector slot when the driver connected it.
type Handler func(arg any)

// VectorTable is the per-line handler binding owned by the interrupt
// controller.
type VectorTable interface {
	// Replace rebinds the handler for irq. The slot's context argument is kept.
	Replace(irq IRQ, h Handler)
	// Handler returns the handler currently bound to irq.
	Handler(irq IRQ) (Handler, bool)
}

// PendingClearer acknowledges an interrupt at the SoC aggregator level.
type PendingClearer interface {
	ClearPending(irq IRQ)
}

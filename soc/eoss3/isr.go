package eoss3

import "quickfeather-go/hw"

var _ hw.VectorTable = (*ISRTable)(nil)

type isrEntry struct {
	isr hw.Handler
	arg any
}

// ISRTable is the software interrupt table: one (isr, arg) slot per line.
//
// Drivers Connect their handler before any init step runs. Replace swaps the
// handler of a slot and keeps its argument. Slots are written only during
// boot, with interrupts masked, so no locking is done.
type ISRTable struct {
	slots    [NumIRQs]isrEntry
	spurious uint32
}

func NewISRTable() *ISRTable { return &ISRTable{} }

func slot(irq hw.IRQ) int {
	if irq < 0 || int(irq) >= NumIRQs {
		panic("eoss3: irq out of range")
	}
	return int(irq)
}

// Connect binds isr and its context argument to irq.
func (t *ISRTable) Connect(irq hw.IRQ, isr hw.Handler, arg any) {
	i := slot(irq)
	t.slots[i] = isrEntry{isr: isr, arg: arg}
}

// Replace rebinds the handler for irq. The previous handler is dropped.
func (t *ISRTable) Replace(irq hw.IRQ, h hw.Handler) {
	i := slot(irq)
	t.slots[i].isr = h
}

func (t *ISRTable) Handler(irq hw.IRQ) (hw.Handler, bool) {
	e := t.slots[slot(irq)]
	return e.isr, e.isr != nil
}

// Arg returns the context argument bound to irq.
func (t *ISRTable) Arg(irq hw.IRQ) any { return t.slots[slot(irq)].arg }

// Dispatch runs the handler bound to irq with its argument. An empty slot
// counts as a spurious interrupt and reports false.
func (t *ISRTable) Dispatch(irq hw.IRQ) bool {
	e := t.slots[slot(irq)]
	if e.isr == nil {
		t.spurious++
		return false
	}
	e.isr(e.arg)
	return true
}

// Spurious returns the number of dispatches that found an empty slot.
func (t *ISRTable) Spurious() uint32 { return t.spurious }

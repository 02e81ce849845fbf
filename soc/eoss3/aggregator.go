package eoss3

import "quickfeather-go/hw"

var _ hw.PendingClearer = (*Aggregator)(nil)

// otherIntrBit maps NVIC lines to their pending bit in OTHER_INTR. Lines not
// listed are not aggregated and need no SoC-level acknowledgment.
var otherIntrBit = map[hw.IRQ]uint{
	IRQUart:      1,
	IRQTimer:     2,
	IRQSPIMaster: 4,
	IRQFabric0:   8,
}

// AggregatorBit returns the OTHER_INTR bit for irq.
func AggregatorBit(irq hw.IRQ) (uint, bool) {
	b, ok := otherIntrBit[irq]
	return b, ok
}

// Aggregator is the INTR_CTRL second-tier pending state.
type Aggregator struct {
	R hw.Registers
}

func NewAggregator(r hw.Registers) *Aggregator { return &Aggregator{R: r} }

// ClearPending acknowledges irq at the aggregator with a single
// write-one-to-clear. Unaggregated lines are left alone.
func (a *Aggregator) ClearPending(irq hw.IRQ) {
	bit, ok := otherIntrBit[irq]
	if !ok {
		return
	}
	a.R.Write32(OtherIntr, 1<<bit)
}

// Pending reports whether the aggregator holds irq pending.
func (a *Aggregator) Pending(irq hw.IRQ) bool {
	bit, ok := otherIntrBit[irq]
	if !ok {
		return false
	}
	return a.R.Read32(OtherIntr)&(1<<bit) != 0
}

// Enable routes irq's aggregator source through to the NVIC.
func (a *Aggregator) Enable(irq hw.IRQ) {
	bit, ok := otherIntrBit[irq]
	if !ok {
		return
	}
	hw.WriteField(a.R, OtherIntrEn, bit, 1, 1)
}

// Enabled reports whether irq's aggregator source is routed.
func (a *Aggregator) Enabled(irq hw.IRQ) bool {
	bit, ok := otherIntrBit[irq]
	if !ok {
		return true
	}
	return hw.ReadField(a.R, OtherIntrEn, bit, 1) == 1
}

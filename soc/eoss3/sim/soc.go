package sim

import (
	"quickfeather-go/hw"
	"quickfeather-go/soc/eoss3"
)

// SoC bundles a simulated EOS S3 with its PL011 already connected to the ISR
// table, the way a static IRQ connection is in place before boot.
type SoC struct {
	Regs *RegFile
	Mux  *eoss3.IOMux
	ISR  *eoss3.ISRTable
	Agg  *eoss3.Aggregator
	UART *PL011

	nvicEnabled [eoss3.NumIRQs]bool
	global      bool
}

func NewSoC() *SoC {
	regs := NewRegFile()
	regs.MarkW1C(eoss3.OtherIntr)
	s := &SoC{
		Regs: regs,
		Mux:  eoss3.NewIOMux(regs),
		ISR:  eoss3.NewISRTable(),
		Agg:  eoss3.NewAggregator(regs),
		UART: NewPL011(regs, eoss3.IRQUart),
	}
	s.ISR.Connect(eoss3.IRQUart, s.UART.ISR, s.UART)
	return s
}

// EnableIRQ unmasks irq at the NVIC and at the aggregator.
func (s *SoC) EnableIRQ(irq hw.IRQ) {
	s.nvicEnabled[irq] = true
	s.Agg.Enable(irq)
}

// EnableInterrupts sets the global interrupt enable, as the kernel does
// when it starts scheduling.
func (s *SoC) EnableInterrupts() { s.global = true }

// IRQEnabled reports whether irq is unmasked at the NVIC.
func (s *SoC) IRQEnabled(irq hw.IRQ) bool { return s.nvicEnabled[irq] }

// Service takes irq once if interrupts are on, the line is unmasked and
// the aggregator holds it pending. It reports whether a handler ran.
func (s *SoC) Service(irq hw.IRQ) bool {
	if !s.global || !s.nvicEnabled[irq] || !s.Agg.Enabled(irq) || !s.Agg.Pending(irq) {
		return false
	}
	return s.ISR.Dispatch(irq)
}

// Drain services irq until it stops being pending or max takes are reached,
// returning the number of takes. A line whose pending bit is never cleared
// keeps re-firing until max.
func (s *SoC) Drain(irq hw.IRQ, max int) int {
	n := 0
	for n < max && s.Service(irq) {
		n++
	}
	return n
}

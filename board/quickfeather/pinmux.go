package quickfeather

import (
	"quickfeather-go/hw"
	"quickfeather-go/soc/eoss3"
)

// PadSet returns the pad assignments applied for f: the UART baseline
// followed by each enabled optional group.
func PadSet(f Features) []hw.PadAssignment {
	n := len(UARTPads) + len(SPIPads) + len(PWMPads) + len(FBUARTPads)
	out := make([]hw.PadAssignment, 0, n)
	out = append(out, UARTPads...)
	if f.SPI {
		out = append(out, SPIPads...)
	}
	if f.PWM() {
		out = append(out, PWMPads...)
	}
	if f.LiteUART {
		out = append(out, FBUARTPads...)
	}
	return out
}

// PinMux applies the board's pad configuration.
type PinMux struct {
	Mux  hw.PadMux
	Regs hw.Registers
	pads []hw.PadAssignment
}

// NewPinMux resolves the pad set for f once, up front.
func NewPinMux(mux hw.PadMux, regs hw.Registers, f Features) *PinMux {
	return &PinMux{Mux: mux, Regs: regs, pads: PadSet(f)}
}

// Pads returns the resolved pad set.
func (p *PinMux) Pads() []hw.PadAssignment { return p.pads }

// Init applies every pad assignment, then routes pad 45 into the UART RXD
// input. It is safe to run more than once and always returns 0.
func (p *PinMux) Init() int {
	for _, a := range p.pads {
		p.Mux.SetPadFunction(a.Pad, a.Config)
	}
	p.Regs.Write32(eoss3.UARTRxdSel, UARTRxSel)
	return 0
}

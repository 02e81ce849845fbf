package eoss3

import "quickfeather-go/hw"

// Ensure IOMux satisfies the contract at compile time.
var _ hw.PadMux = (*IOMux)(nil)

// IOMux programs pad control registers through an injected register backend.
type IOMux struct {
	R hw.Registers
}

func NewIOMux(r hw.Registers) *IOMux { return &IOMux{R: r} }

// SetPadFunction writes the control word for pad. Pad numbers are board
// constants, so an out-of-range pad is a build error made visible.
func (m *IOMux) SetPadFunction(pad hw.Pad, cfg hw.PadConfig) {
	if int(pad) >= NumPads {
		panic("eoss3: pad out of range")
	}
	m.R.Write32(PadCtrlAddr(pad), uint32(cfg))
}

// PadFunction reads back the control word for pad.
func (m *IOMux) PadFunction(pad hw.Pad) hw.PadConfig {
	if int(pad) >= NumPads {
		panic("eoss3: pad out of range")
	}
	return hw.PadConfig(m.R.Read32(PadCtrlAddr(pad)))
}

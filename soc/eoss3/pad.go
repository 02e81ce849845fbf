package eoss3

import (
	"quickfeather-go/hw"
	"quickfeather-go/x/bitx"
)

// Pad control word layout:
//
//	[1:0]  FUNC_SEL  alternate function
//	[4:3]  CTRL_SEL  who drives the pad (AO register, other, fabric)
//	[5]    OEN       1 = output disabled
//	[7:6]  P         pull
//	[9:8]  E         drive strength
//	[10]   SR        1 = fast slew
//	[11]   REN       1 = receiver enabled
//	[12]   SMT       1 = schmitt trigger
const (
	shFunc, wFunc = 0, 2
	shCtrl, wCtrl = 3, 2
	shOEN         = 5
	shPull, wPull = 6, 2
	shDrv, wDrv   = 8, 2
	shSR          = 10
	shREN         = 11
	shSMT         = 12
)

type CtrlSel uint8

const (
	CtrlAO     CtrlSel = 0 // pad driven by the always-on domain registers
	CtrlOther  CtrlSel = 1
	CtrlFabric CtrlSel = 2 // pad driven by the FPGA fabric
)

type Pull uint8

const (
	PullNone   Pull = 0
	PullUp     Pull = 1
	PullDown   Pull = 2
	PullKeeper Pull = 3
)

type Drive uint8

const (
	Drive2mA  Drive = 0
	Drive4mA  Drive = 1
	Drive8mA  Drive = 2
	Drive12mA Drive = 3
)

// PadCtrl is the decoded form of a pad control word.
type PadCtrl struct {
	Func          uint8
	Ctrl          CtrlSel
	OutputDisable bool
	Pull          Pull
	Drive         Drive
	FastSlew      bool
	InputEnable   bool
	Schmitt       bool
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Encode packs c into a pad control word.
func (c PadCtrl) Encode() hw.PadConfig {
	var w uint32
	w = bitx.Insert(w, shFunc, wFunc, uint32(c.Func))
	w = bitx.Insert(w, shCtrl, wCtrl, uint32(c.Ctrl))
	w = bitx.Insert(w, shOEN, 1, b2u(c.OutputDisable))
	w = bitx.Insert(w, shPull, wPull, uint32(c.Pull))
	w = bitx.Insert(w, shDrv, wDrv, uint32(c.Drive))
	w = bitx.Insert(w, shSR, 1, b2u(c.FastSlew))
	w = bitx.Insert(w, shREN, 1, b2u(c.InputEnable))
	w = bitx.Insert(w, shSMT, 1, b2u(c.Schmitt))
	return hw.PadConfig(w)
}

// DecodePad unpacks a pad control word.
func DecodePad(cfg hw.PadConfig) PadCtrl {
	w := uint32(cfg)
	return PadCtrl{
		Func:          uint8(bitx.Extract(w, shFunc, wFunc)),
		Ctrl:          CtrlSel(bitx.Extract(w, shCtrl, wCtrl)),
		OutputDisable: bitx.Extract(w, shOEN, 1) == 1,
		Pull:          Pull(bitx.Extract(w, shPull, wPull)),
		Drive:         Drive(bitx.Extract(w, shDrv, wDrv)),
		FastSlew:      bitx.Extract(w, shSR, 1) == 1,
		InputEnable:   bitx.Extract(w, shREN, 1) == 1,
		Schmitt:       bitx.Extract(w, shSMT, 1) == 1,
	}
}

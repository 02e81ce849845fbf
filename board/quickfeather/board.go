// Package quickfeather is the QuickFeather board layer: pad assignments for
// the peripherals routed on this board and the boot steps that apply them.
package quickfeather

import (
	"quickfeather-go/hw"
	"quickfeather-go/soc/eoss3"
)

// Pads used on this board.
const (
	UARTTxPad hw.Pad = 44
	UARTRxPad hw.Pad = 45

	SPIClkPad  hw.Pad = 34
	SPIMisoPad hw.Pad = 36
	SPIMosiPad hw.Pad = 38
	SPISS1Pad  hw.Pad = 39

	PWM0Pad hw.Pad = 18
	PWM1Pad hw.Pad = 21
	PWM2Pad hw.Pad = 22

	FBUARTTxPad hw.Pad = 8
	FBUARTRxPad hw.Pad = 9
)

// UARTRxSel selects pad 45 as the UART RXD source.
const UARTRxSel uint32 = 3

var (
	uartTxCfg = eoss3.PadCtrl{Func: 3, Ctrl: eoss3.CtrlAO, Pull: eoss3.PullDown, Drive: eoss3.Drive4mA}.Encode()
	uartRxCfg = eoss3.PadCtrl{Func: 3, Ctrl: eoss3.CtrlAO, OutputDisable: true, InputEnable: true}.Encode()

	spiOutCfg = eoss3.PadCtrl{Func: 2, Ctrl: eoss3.CtrlAO, Drive: eoss3.Drive4mA, FastSlew: true}.Encode()
	spiInCfg  = eoss3.PadCtrl{Func: 2, Ctrl: eoss3.CtrlAO, OutputDisable: true, InputEnable: true}.Encode()

	fabricOutCfg = eoss3.PadCtrl{Ctrl: eoss3.CtrlFabric, Drive: eoss3.Drive4mA}.Encode()
	fabricInCfg  = eoss3.PadCtrl{Ctrl: eoss3.CtrlFabric, OutputDisable: true, InputEnable: true}.Encode()
)

// Pad groups. Baseline is always applied; the others are gated by Features.
var (
	UARTPads = []hw.PadAssignment{
		{Pad: UARTTxPad, Config: uartTxCfg},
		{Pad: UARTRxPad, Config: uartRxCfg},
	}
	SPIPads = []hw.PadAssignment{
		{Pad: SPIClkPad, Config: spiOutCfg},
		{Pad: SPIMisoPad, Config: spiInCfg},
		{Pad: SPIMosiPad, Config: spiOutCfg},
		{Pad: SPISS1Pad, Config: spiOutCfg},
	}
	PWMPads = []hw.PadAssignment{
		{Pad: PWM0Pad, Config: fabricOutCfg},
		{Pad: PWM1Pad, Config: fabricOutCfg},
		{Pad: PWM2Pad, Config: fabricOutCfg},
	}
	FBUARTPads = []hw.PadAssignment{
		{Pad: FBUARTTxPad, Config: fabricOutCfg},
		{Pad: FBUARTRxPad, Config: fabricInCfg},
	}
)

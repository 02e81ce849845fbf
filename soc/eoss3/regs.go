// Package eoss3 is the QuickLogic EOS S3 SoC layer: pad control encoding,
// the IO_MUX block, the software ISR table and the INTR_CTRL aggregator.
package eoss3

import (
	"quickfeather-go/dt"
	"quickfeather-go/hw"
)

// IO_MUX register map.
const (
	IOMuxBase     hw.Addr = dt.IOMuxBaseAddress
	PadCtrlStride         = 4
	NumPads               = 46

	// UARTRxdSel routes one of several pads into the UART RXD input.
	UARTRxdSel hw.Addr = IOMuxBase + 0x12C
)

// INTR_CTRL register map. OtherIntr holds the aggregator pending bits and is
// write-one-to-clear.
const (
	IntrCtrlBase hw.Addr = dt.IntrCtrlBaseAddress
	OtherIntr    hw.Addr = IntrCtrlBase + 0x30
	OtherIntrEn  hw.Addr = IntrCtrlBase + 0x34
)

// Interrupt lines routed through the NVIC.
const (
	IRQSoftware1 hw.IRQ = 0
	IRQSoftware2 hw.IRQ = 1
	IRQTimer     hw.IRQ = 2
	IRQUart      hw.IRQ = dt.PL011Port0IRQRx
	IRQSPIMaster hw.IRQ = 6
	IRQFabric0   hw.IRQ = 10

	NumIRQs = 32
)

// PadCtrlAddr returns the control register address for pad.
func PadCtrlAddr(pad hw.Pad) hw.Addr {
	return IOMuxBase + hw.Addr(pad)*PadCtrlStride
}

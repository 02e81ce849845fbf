// Package dt carries the devicetree-derived constants the boot layer
// consumes. Values are opaque to the code that uses them.
package dt

// PL011 port 0 (the on-chip UART).
const (
	PL011Port0BaseAddress  = 0x40010000
	PL011Port0IRQRx        = 3
	PL011Port0CurrentSpeed = 115200
	PL011Port0Label        = "UART_0"
)

// INTR_CTRL, the SoC interrupt aggregator.
const (
	IntrCtrlBaseAddress = 0x40004800
	IntrCtrlSize        = 0x100
)

// IO_MUX, pad control and peripheral input selects.
const (
	IOMuxBaseAddress = 0x40004C00
	IOMuxSize        = 0x200
)

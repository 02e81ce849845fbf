package sim

import (
	"sync"

	"quickfeather-go/hw"
	"quickfeather-go/soc/eoss3"

	"tinygo.org/x/drivers"
)

var _ drivers.UART = (*PL011)(nil)

// PL011 models the on-chip UART as far as the boot layer sees it. Its ISR
// drains the RX FIFO and clears the peripheral's own interrupt status; it
// does not touch the SoC aggregator.
type PL011 struct {
	mu   sync.Mutex
	regs *RegFile
	irq  hw.IRQ

	fifo []byte // received, not yet serviced
	rx   []byte // serviced, waiting for Read
	tx   []byte

	ris  bool   // peripheral raw interrupt status
	isrs uint32 // ISR invocations
}

func NewPL011(regs *RegFile, irq hw.IRQ) *PL011 {
	return &PL011{regs: regs, irq: irq}
}

// Inject delivers bytes on the RX line and raises the interrupt at both the
// peripheral and the aggregator.
func (u *PL011) Inject(b ...byte) {
	u.mu.Lock()
	u.fifo = append(u.fifo, b...)
	u.ris = true
	u.mu.Unlock()
	if bit, ok := eoss3.AggregatorBit(u.irq); ok {
		u.regs.Raise(eoss3.OtherIntr, 1<<bit)
	}
}

// ISR is the driver's interrupt handler. arg is the device it was connected
// with.
func (u *PL011) ISR(arg any) {
	dev, ok := arg.(*PL011)
	if !ok || dev == nil {
		dev = u
	}
	dev.mu.Lock()
	dev.isrs++
	dev.rx = append(dev.rx, dev.fifo...)
	dev.fifo = dev.fifo[:0]
	dev.ris = false
	dev.mu.Unlock()
}

// ISRCount returns how many times ISR ran.
func (u *PL011) ISRCount() uint32 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.isrs
}

// RawStatus reports the peripheral-level interrupt status.
func (u *PL011) RawStatus() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ris
}

func (u *PL011) Read(p []byte) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := copy(p, u.rx)
	u.rx = u.rx[n:]
	return n, nil
}

func (u *PL011) Write(p []byte) (int, error) {
	u.mu.Lock()
	u.tx = append(u.tx, p...)
	u.mu.Unlock()
	return len(p), nil
}

func (u *PL011) Buffered() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.rx)
}

// Transmitted returns everything written so far.
func (u *PL011) Transmitted() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]byte(nil), u.tx...)
}

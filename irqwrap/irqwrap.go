// Package irqwrap replaces a driver's interrupt handler with one that runs
// the original and then acknowledges the line at the SoC aggregator.
//
// The PL011 driver clears only its own interrupt status. On the EOS S3 the
// INTR_CTRL aggregator keeps a second pending bit that must be cleared as
// well, or the line keeps firing.
package irqwrap

import (
	"quickfeather-go/errcode"
	"quickfeather-go/hw"
)

// Chain is the record a wrapper is built from.
type Chain struct {
	IRQ      hw.IRQ
	Original hw.Handler
	Clearer  hw.PendingClearer
}

// ISR runs the original handler with arg, then clears irq at the SoC level.
// The clear always runs, including when the original panics.
func (c *Chain) ISR(arg any) {
	defer c.Clearer.ClearPending(c.IRQ)
	c.Original(arg)
}

// WrapAndAck returns the handler for c.
func WrapAndAck(c Chain) hw.Handler {
	return (&c).ISR
}

// Interceptor installs a Chain into a vector table as an init routine.
type Interceptor struct {
	Vectors hw.VectorTable
	Clearer hw.PendingClearer
	IRQ     hw.IRQ

	// Original is the driver's handler. When nil, the handler bound to IRQ
	// at install time is adopted.
	Original hw.Handler

	chain     Chain
	wrapper   hw.Handler
	installed bool
}

// Init replaces the handler for IRQ with the wrapper. Installing twice
// rebinds the same wrapper rather than wrapping it again. It returns
// a non-zero status, and leaves the slot untouched, if there is no
// original handler to chain.
func (i *Interceptor) Init() int {
	if i.installed {
		i.Vectors.Replace(i.IRQ, i.wrapper)
		return errcode.Status(errcode.OK)
	}
	orig := i.Original
	if orig == nil {
		h, ok := i.Vectors.Handler(i.IRQ)
		if !ok {
			return errcode.Status(errcode.NoHandler)
		}
		orig = h
	}
	i.chain = Chain{IRQ: i.IRQ, Original: orig, Clearer: i.Clearer}
	i.wrapper = i.chain.ISR
	i.Vectors.Replace(i.IRQ, i.wrapper)
	i.installed = true
	return errcode.Status(errcode.OK)
}

// Wrapper returns the installed wrapper, or nil before Init succeeds.
func (i *Interceptor) Wrapper() hw.Handler { return i.wrapper }

// Installed reports whether Init has replaced the handler.
func (i *Interceptor) Installed() bool { return i.installed }

package quickfeather

import (
	"io"

	"quickfeather-go/hw"
	"quickfeather-go/initseq"
	"quickfeather-go/irqwrap"
	"quickfeather-go/soc/eoss3"
)

// PinMuxStep is the board init step. It runs in PRE_KERNEL_1 at the kernel
// default priority, ahead of device drivers.
func PinMuxStep(p *PinMux) initseq.Step {
	return initseq.Step{
		Name:     "eos_s3_board_init",
		Level:    initseq.PreKernel1,
		Priority: initseq.PrioKernelDefault,
		Fn:       p.Init,
	}
}

// UARTInterceptor builds the PL011 RX wrapper installer. original is the
// driver's ISR; nil adopts whatever the driver connected.
func UARTInterceptor(vectors hw.VectorTable, clr hw.PendingClearer, original hw.Handler) *irqwrap.Interceptor {
	return &irqwrap.Interceptor{
		Vectors:  vectors,
		Clearer:  clr,
		IRQ:      eoss3.IRQUart,
		Original: original,
	}
}

// IRQWrapperStep registers the interceptor at PRE_KERNEL_1 priority 0. The
// driver's handler is connected statically, so it is already in the table.
func IRQWrapperStep(ic *irqwrap.Interceptor) initseq.Step {
	return initseq.Step{
		Name:     "register_irq_wrappers",
		Level:    initseq.PreKernel1,
		Priority: 0,
		Fn:       ic.Init,
	}
}

// BootTable is the board's explicit init list. Driver steps are passed in
// extra and keep their own levels and priorities.
func BootTable(log io.Writer, p *PinMux, ic *irqwrap.Interceptor, extra ...initseq.Step) *initseq.Table {
	t := &initseq.Table{Log: log}
	t.MustAdd(PinMuxStep(p), IRQWrapperStep(ic))
	t.MustAdd(extra...)
	return t
}

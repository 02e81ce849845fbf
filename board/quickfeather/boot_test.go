package quickfeather

import (
	"bytes"
	"strings"
	"testing"

	"quickfeather-go/initseq"
	"quickfeather-go/soc/eoss3"
	"quickfeather-go/soc/eoss3/sim"
)

// bootSoC runs the board table against a simulated SoC with a driver step
// that unmasks the UART line, then turns interrupts on.
func bootSoC(t *testing.T, f Features) (*sim.SoC, *bytes.Buffer) {
	t.Helper()
	soc := sim.NewSoC()
	var log bytes.Buffer
	pm := NewPinMux(soc.Mux, soc.Regs, f)
	ic := UARTInterceptor(soc.ISR, soc.Agg, soc.UART.ISR)
	tab := BootTable(&log, pm, ic, initseq.Step{
		Name:     "uart_pl011_init",
		Level:    initseq.PreKernel1,
		Priority: initseq.PrioDevice,
		Fn:       func() int { soc.EnableIRQ(eoss3.IRQUart); return 0 },
	})
	if _, err := tab.Run(); err != nil {
		t.Fatalf("boot: %v", err)
	}
	soc.EnableInterrupts()
	return soc, &log
}

func TestBootOrder(t *testing.T) {
	_, log := bootSoC(t, Features{})
	lines := strings.Split(strings.TrimSpace(log.String()), "\n")
	want := []string{
		"[init] PRE_KERNEL_1 0 register_irq_wrappers rc=0",
		"[init] PRE_KERNEL_1 40 eos_s3_board_init rc=0",
		"[init] PRE_KERNEL_1 50 uart_pl011_init rc=0",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("boot log:\n%s", log.String())
	}
}

func TestTriggerOnceHandlesOnceAndClearsOnce(t *testing.T) {
	soc, _ := bootSoC(t, Features{SPI: true, PWMLitex: true})
	soc.Regs.ResetTrace()

	soc.UART.Inject('h', 'i')
	if !soc.Agg.Pending(eoss3.IRQUart) {
		t.Fatal("aggregator not pending after inject")
	}
	if n := soc.Drain(eoss3.IRQUart, 10); n != 1 {
		t.Fatalf("line taken %d times, want 1", n)
	}
	if soc.UART.ISRCount() != 1 {
		t.Fatalf("driver ISR ran %d times", soc.UART.ISRCount())
	}
	if soc.Agg.Pending(eoss3.IRQUart) {
		t.Fatal("aggregator still pending")
	}
	if got := len(soc.Regs.WritesTo(eoss3.OtherIntr)); got != 1 {
		t.Fatalf("pending clears = %d", got)
	}
	buf := make([]byte, 4)
	n, _ := soc.UART.Read(buf)
	if string(buf[:n]) != "hi" {
		t.Fatalf("rx = %q", buf[:n])
	}
}

func TestEachTriggerIsAcknowledged(t *testing.T) {
	soc, _ := bootSoC(t, Features{})
	soc.Regs.ResetTrace()
	for i := 0; i < 3; i++ {
		soc.UART.Inject(byte('a' + i))
		soc.Drain(eoss3.IRQUart, 10)
	}
	if soc.UART.ISRCount() != 3 {
		t.Fatalf("ISR count = %d", soc.UART.ISRCount())
	}
	if got := len(soc.Regs.WritesTo(eoss3.OtherIntr)); got != 3 {
		t.Fatalf("pending clears = %d", got)
	}
}

func TestWithoutWrapperLineRefires(t *testing.T) {
	soc := sim.NewSoC()
	soc.EnableIRQ(eoss3.IRQUart)
	soc.EnableInterrupts()

	soc.UART.Inject('x')
	if n := soc.Drain(eoss3.IRQUart, 5); n != 5 {
		t.Fatalf("line taken %d times, want it to keep firing", n)
	}
	if soc.UART.RawStatus() {
		t.Fatal("driver did not clear its own status")
	}
}

func TestInterruptsMaskedDuringBoot(t *testing.T) {
	soc := sim.NewSoC()
	soc.UART.Inject('x')
	pm := NewPinMux(soc.Mux, soc.Regs, Features{})
	ic := UARTInterceptor(soc.ISR, soc.Agg, soc.UART.ISR)
	tab := BootTable(nil, pm, ic)
	tab.Run()
	if soc.Service(eoss3.IRQUart) {
		t.Fatal("interrupt taken before enable")
	}
	if soc.UART.ISRCount() != 0 {
		t.Fatal("ISR ran during boot")
	}
}

package main

import (
	"flag"
	"os"

	"quickfeather-go/board/quickfeather"
	"quickfeather-go/initseq"
	"quickfeather-go/soc/eoss3"
	"quickfeather-go/soc/eoss3/sim"

	"tinygo.org/x/drivers"
)

func main() {
	feats := flag.String("features", "", "feature list applied over the compiled defaults, e.g. \"spi_eoss3 pwm_litex\"")
	rx := flag.String("rx", "hello", "bytes delivered on the UART RX line after boot")
	flag.Parse()

	f, err := quickfeather.ParseFeatures(quickfeather.DefaultFeatures, *feats)
	if err != nil {
		println("[main] features:", err.Error())
		os.Exit(2)
	}

	soc := sim.NewSoC()
	var console drivers.UART = soc.UART

	println("[main] features:", f.String())
	pm := quickfeather.NewPinMux(soc.Mux, soc.Regs, f)
	ic := quickfeather.UARTInterceptor(soc.ISR, soc.Agg, soc.UART.ISR)
	tab := quickfeather.BootTable(console, pm, ic, initseq.Step{
		Name:     "uart_pl011_init",
		Level:    initseq.PreKernel1,
		Priority: initseq.PrioDevice,
		Fn:       func() int { soc.EnableIRQ(eoss3.IRQUart); return 0 },
	})

	if _, err := tab.RunLevel(initseq.PreKernel2); err != nil {
		println("[main] pre-kernel:", err.Error())
		os.Exit(1)
	}
	println("[main] kernel up, interrupts on")
	soc.EnableInterrupts()
	if _, err := tab.Run(); err != nil {
		println("[main] post-kernel:", err.Error())
		os.Exit(1)
	}
	os.Stdout.Write(soc.UART.Transmitted())

	for i := 0; i < len(*rx); i++ {
		soc.UART.Inject((*rx)[i])
		taken := soc.Drain(eoss3.IRQUart, 4)
		if taken != 1 {
			println("[main] irq taken", taken, "times for one byte")
		}
	}

	buf := make([]byte, console.Buffered())
	n, _ := console.Read(buf)
	println("[main] rx:", string(buf[:n]))
	println("[main] isr runs:", soc.UART.ISRCount(),
		"pending clears:", len(soc.Regs.WritesTo(eoss3.OtherIntr)),
		"still pending:", soc.Agg.Pending(eoss3.IRQUart))
}

// cmd/boardtest/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"quickfeather-go/board/quickfeather"
	"quickfeather-go/hw"
	"quickfeather-go/soc/eoss3"
	"quickfeather-go/soc/eoss3/sim"
)

// ---------- Feature matrix ----------

func combos() []quickfeather.Features {
	var out []quickfeather.Features
	for m := 0; m < 16; m++ {
		out = append(out, quickfeather.Features{
			SPI:      m&1 != 0,
			PWMLitex: m&2 != 0,
			PWMEOSS3: m&4 != 0,
			LiteUART: m&8 != 0,
		})
	}
	return out
}

func expectedPads(f quickfeather.Features) int {
	n := len(quickfeather.UARTPads)
	if f.SPI {
		n += len(quickfeather.SPIPads)
	}
	if f.PWM() {
		n += len(quickfeather.PWMPads)
	}
	if f.LiteUART {
		n += len(quickfeather.FBUARTPads)
	}
	return n
}

// ---------- Trace printing ----------

func describe(w sim.Write) string {
	if w.Addr == eoss3.UARTRxdSel {
		return fmt.Sprintf("  %#08x UART_rxd_SEL = %d", uint32(w.Addr), w.Value)
	}
	pad := hw.Pad((w.Addr - eoss3.IOMuxBase) / eoss3.PadCtrlStride)
	c := eoss3.DecodePad(hw.PadConfig(w.Value))
	return fmt.Sprintf("  %#08x PAD_%d_CTRL = %#05x func=%d ctrl=%d oen=%t pull=%d drive=%d ren=%t",
		uint32(w.Addr), pad, w.Value, c.Func, c.Ctrl, c.OutputDisable, c.Pull, c.Drive, c.InputEnable)
}

func main() {
	verbose := flag.Bool("v", false, "print every register write")
	only := flag.String("features", "", "check a single feature list instead of the full matrix")
	flag.Parse()

	list := combos()
	if *only != "" {
		f, err := quickfeather.ParseFeatures(quickfeather.Features{}, *only)
		if err != nil {
			fmt.Println("[boardtest] features:", err)
			os.Exit(2)
		}
		list = []quickfeather.Features{f}
	}

	failed := 0
	for _, f := range list {
		regs := sim.NewRegFile()
		quickfeather.NewPinMux(eoss3.NewIOMux(regs), regs, f).Init()
		tr := regs.Trace()

		pads := len(tr) - 1
		ok := pads == expectedPads(f) && tr[len(tr)-1].Addr == eoss3.UARTRxdSel
		status := "ok"
		if !ok {
			status = "FAIL"
			failed++
		}
		fmt.Printf("[boardtest] %-40s pads=%d rxsel=1 %s\n", f.String(), pads, status)
		if *verbose || !ok {
			for _, w := range tr {
				fmt.Println(describe(w))
			}
		}
	}
	if failed > 0 {
		fmt.Println("[boardtest]", failed, "combination(s) failed")
		os.Exit(1)
	}
}

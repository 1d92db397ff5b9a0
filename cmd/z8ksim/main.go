// Package main provides the entry point for z8ksim.
// z8ksim hosts the Z8000 register-bank layout adapter and dumps how
// the bank's byte, word, long, and quad views alias under a chosen
// byte order.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"

	"github.com/sarchlab/z8ksim/dasm"
	"github.com/sarchlab/z8ksim/emu"
	"github.com/sarchlab/z8ksim/z8k"
)

var (
	orderName = flag.String("order", "host", "register bank layout: host, little, big")
	segmented = flag.Bool("segmented", false, "format addresses in segmented mode")
	debug     = flag.Bool("debug", false, "enable debug logging")
	quiet     = flag.Bool("q", false, "only log errors")
)

func main() {
	flag.Parse()
	logger := createLogger(*debug, *quiet)

	order, err := parseOrder(*orderName)
	if err != nil {
		logger.Fatal(err.Error())
	}

	resolveEnvironment(logger)

	logger.Info("dumping register bank",
		log.String("order", order.String()),
		log.String("host", z8k.HostByteOrder.String()))

	dumpBank(order, dasm.StaticConfig{Segmented: *segmented})
}

// createLogger creates a logger with appropriate settings.
func createLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

func parseOrder(name string) (z8k.ByteOrder, error) {
	switch name {
	case "host":
		return z8k.HostByteOrder, nil
	case "little":
		return z8k.LittleEndian, nil
	case "big":
		return z8k.BigEndian, nil
	}
	return 0, fmt.Errorf("unknown byte order %q", name)
}

// resolveEnvironment builds the callback environment a Z8000 core
// expects: four interrupt-acknowledge read taps and the multi-micro
// output line, all resolved to safe defaults since nothing real is
// attached here.
func resolveEnvironment(logger *log.Logger) {
	iack := z8k.NewRead16Array(4, z8k.WithReadLogger(logger))
	iack.ResolveAllSafe(0xffff)

	mo := z8k.NewWriteLine(z8k.WithLineLogger(logger))
	mo.ResolveSafe()
	mo.Write(z8k.ClearLine)
}

// dumpBank fills the word registers with recognizable values and
// prints every view of the bank. Identical output on every host is
// the point: the index transforms hide the layout difference.
func dumpBank(order z8k.ByteOrder, cfg dasm.Config) {
	rf := emu.NewRegFile(emu.WithByteOrder(order))
	for n := 0; n < emu.WordRegCount; n++ {
		rf.WriteWordReg(n, uint16(n)*0x1111)
	}

	w := os.Stdout
	for n := 0; n < emu.WordRegCount; n++ {
		fmt.Fprintf(w, "R%-2d  %%%04x", n, rf.ReadWordReg(n))
		if n < 8 {
			fmt.Fprintf(w, "   RH%d %%%02x  RL%d %%%02x",
				n, rf.ReadByteReg(n), n, rf.ReadByteReg(n+8))
		}
		if n%2 == 0 {
			fmt.Fprintf(w, "   RR%-2d %%%08x", n, rf.ReadLongReg(n))
		}
		if n%4 == 0 {
			fmt.Fprintf(w, "   RQ%-2d %%%016x", n, rf.ReadQuadReg(n))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "PC   %s\n", dasm.FormatAddress(cfg, 0x2_1000))
}

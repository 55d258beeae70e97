// Command m6502run loads a flat binary image into memory and runs it
// on the 6502 interpreter until a halt, an error, or a wall-clock
// timeout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/pgrabas/emu502/clock"
	"github.com/pgrabas/emu502/cpu6502"
	"github.com/pgrabas/emu502/mem"
	"github.com/pgrabas/emu502/program"
)

// runner owns the machine this command builds and drives: configure
// parses arguments and wires the clock, bus, and CPU; run then steps
// the already-configured machine to completion.
type runner struct {
	clk *clock.Clock
	bus *mem.MemoryMapper16
	cpu *cpu6502.CPU

	timeout time.Duration
}

func (r *runner) configure(args []string) error {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	var verbose bool
	var loadAt string
	var entry string
	var hz int
	var fixJMPBug bool

	fs.BoolVar(&verbose, "v", false, "Verbose mode")
	fs.StringVar(&loadAt, "load", "0x0600", "Address to load the image at")
	fs.StringVar(&entry, "entry", "", "Entry address (defaults to -load)")
	fs.IntVar(&hz, "hz", 0, "Target clock frequency in Hz (0 = uncapped)")
	fs.DurationVar(&r.timeout, "timeout", time.Second, "Wall-clock run budget")
	fs.BoolVar(&fixJMPBug, "fix-indirect-jmp-bug", false, "Disable the indirect JMP page-boundary hardware bug")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: %v [-v] [-load addr] [-entry addr] image.bin", args[0])
	}

	loadAddr, err := parseAddress(loadAt)
	if err != nil {
		return err
	}
	entryAddr := loadAddr
	if entry != "" {
		entryAddr, err = parseAddress(entry)
		if err != nil {
			return err
		}
	}

	image, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	r.clk = clock.New(hz)
	r.clk.Verbose = verbose
	r.bus = mem.NewMemoryMapper16(r.clk)
	if err := r.bus.Mount(0, mem.NewRAM(0x10000)); err != nil {
		return err
	}
	if err := r.bus.WriteBulk(loadAddr, image); err != nil {
		return err
	}

	r.cpu = cpu6502.New(r.bus, r.clk)
	r.cpu.Verbose = verbose
	r.cpu.FixIndirectJMPBug = fixJMPBug
	r.cpu.Reg.PC = entryAddr
	return nil
}

func (r *runner) run() error {
	halted, err := r.cpu.Run(r.timeout)
	if err != nil {
		return err
	}
	if halted != nil {
		log.Print(halted)
	}
	log.Printf("A=%02X X=%02X Y=%02X S=%02X PC=%04X cycles=%d",
		r.cpu.Reg.A, r.cpu.Reg.X, r.cpu.Reg.Y, r.cpu.Reg.S, r.cpu.Reg.PC, r.clk.Cycles())
	return nil
}

func main() {
	r := &runner{}
	if err := r.configure(os.Args); err != nil {
		log.Fatal(err)
	}
	if err := r.run(); err != nil {
		log.Fatal(err)
	}
}

func parseAddress(s string) (program.Address, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, err
	}
	return program.Address(v), nil
}

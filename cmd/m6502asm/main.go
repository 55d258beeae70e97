// Command m6502asm assembles a 6502 source file into a flat binary
// image covering its populated address range. A source path of "-"
// reads from stdin, matching the "-o -" convention already used for
// the output file.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"sort"

	"github.com/pgrabas/emu502/asm"
	"github.com/pgrabas/emu502/program"
)

func main() {
	var verbose bool
	var output string
	var labels bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&output, "o", "-", "Output binary file")
	flag.BoolVar(&labels, "labels", false, "Print the defined label table after assembling")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: usage: %v [-v] [-o out.bin] source.s", os.Args[0], os.Args[0])
	}

	source := io.Reader(os.Stdin)
	if flag.Arg(0) != "-" {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
		defer f.Close()
		source = f
	}

	a := asm.New()
	a.Verbose = verbose

	prog, err := a.Parse(source)
	if err != nil {
		log.Fatalf("%v: %v", flag.Arg(0), err)
	}

	out := os.Stdout
	if output != "-" {
		out, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer out.Close()
	}

	if _, err := out.Write(prog.Code.Dump()); err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Print(prog.Code.HexDump())
	}

	if labels {
		printLabels(prog)
	}
}

// printLabels lists every defined symbol in address order, resolved
// through Program.Debug so the listing reflects the same lookup an
// interpreter-side error message would use to annotate a faulting
// address.
func printLabels(prog *program.Program) {
	var addrs []program.Address
	for _, sym := range prog.Symbols {
		if sym.Defined {
			addrs = append(addrs, sym.Offset)
		}
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i] < addrs[j] })

	for _, addr := range addrs {
		if name, ok := prog.Debug(addr); ok {
			log.Printf("%04X: %s", uint16(addr), name)
		}
	}
}

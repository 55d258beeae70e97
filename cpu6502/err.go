package cpu6502

import (
	"github.com/pgrabas/emu502/internal/localize"
	"github.com/pgrabas/emu502/program"
)

var f = localize.F

// ErrUnknownOpcode reports a fetched byte with no entry in the decode
// table.
type ErrUnknownOpcode struct {
	PC     program.Address
	Opcode byte
}

func (e ErrUnknownOpcode) Error() string {
	return f("unknown opcode %#02x at %#04x", e.Opcode, uint16(e.PC))
}

// ErrUnsupportedMode reports a decoded (mnemonic, mode) pair the
// interpreter has no addressing-mode or execution handler for. This
// should never happen for a table entry produced by the opcode
// package; it guards against a future mnemonic added to the table
// without a matching handler.
type ErrUnsupportedMode struct {
	Mnemonic string
	Mode     string
}

func (e ErrUnsupportedMode) Error() string {
	return f("unsupported addressing mode %s for %s", e.Mode, e.Mnemonic)
}

// Halted reports that BRK was reached with no IRQ vector installed, the
// condition the interpreter treats as a normal run boundary. The final
// register file is attached so a caller can inspect machine state after
// the run stops.
type Halted struct {
	PC  program.Address
	Reg Registers
}

func (e *Halted) Error() string {
	return f("CPU halted at %#04x", uint16(e.PC))
}

package cpu6502

import "github.com/pgrabas/emu502/program"

// Registers is the visible state of the 6502 register file: the three
// general registers, the stack pointer, the program counter, and the
// status flags.
type Registers struct {
	A  byte
	X  byte
	Y  byte
	S  byte
	PC program.Address
	P  Flags
}

// Reset puts the register file into the power-on state this
// interpreter uses for test fixtures: S at the top of the stack page,
// interrupts disabled, everything else zeroed. PC is left untouched —
// callers set it explicitly from a reset vector or a known entry point.
func (r *Registers) Reset() {
	r.A, r.X, r.Y = 0, 0, 0
	r.S = 0xFF
	r.P = Flags{I: true}
}

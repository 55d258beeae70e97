package cpu6502

// Flags holds the seven status bits of the 6502 P register, expanded to
// named booleans rather than a packed byte so flag logic in the
// execution handlers reads as plain boolean algebra.
type Flags struct {
	N bool // negative: bit 7 of the last result
	V bool // signed overflow
	B bool // break marker, meaningful only once pushed onto the stack
	D bool // decimal mode selector; arithmetic stays binary regardless
	I bool // interrupt disable
	Z bool // zero: the last result was 0x00
	C bool // carry / borrow
}

const (
	flagC      byte = 1 << 0
	flagZ      byte = 1 << 1
	flagI      byte = 1 << 2
	flagD      byte = 1 << 3
	flagB      byte = 1 << 4
	flagUnused byte = 1 << 5
	flagV      byte = 1 << 6
	flagN      byte = 1 << 7
)

// Pack encodes the flags into the hardware P byte layout. Bit 5 is
// unused on real silicon but always reads back as 1.
func (fl Flags) Pack() byte {
	b := flagUnused
	if fl.N {
		b |= flagN
	}
	if fl.V {
		b |= flagV
	}
	if fl.B {
		b |= flagB
	}
	if fl.D {
		b |= flagD
	}
	if fl.I {
		b |= flagI
	}
	if fl.Z {
		b |= flagZ
	}
	if fl.C {
		b |= flagC
	}
	return b
}

// UnpackFlags decodes a hardware P byte, as pulled from the stack by
// PLP or RTI, into Flags.
func UnpackFlags(b byte) Flags {
	return Flags{
		N: b&flagN != 0,
		V: b&flagV != 0,
		B: b&flagB != 0,
		D: b&flagD != 0,
		I: b&flagI != 0,
		Z: b&flagZ != 0,
		C: b&flagC != 0,
	}
}

// setNZ updates N and Z from a result byte, the shared tail of nearly
// every load, transfer, and arithmetic opcode.
func (fl *Flags) setNZ(result byte) {
	fl.Z = result == 0
	fl.N = result&0x80 != 0
}

package opcode

// init populates the static opcode table for all 56 documented 6502
// mnemonics across every address mode they support. Bytes, sizes, and base
// cycle counts are the standard MOS 6502 encoding; PageCrossPenalty marks
// indexed-read address modes which take one extra cycle when the effective
// address crosses a page boundary.
func init() {
	// Load/store.
	define("LDA", Immediate, 0xA9, 2, 2, false)
	define("LDA", ZeroPage, 0xA5, 2, 3, false)
	define("LDA", ZeroPageX, 0xB5, 2, 4, false)
	define("LDA", Absolute, 0xAD, 3, 4, false)
	define("LDA", AbsoluteX, 0xBD, 3, 4, true)
	define("LDA", AbsoluteY, 0xB9, 3, 4, true)
	define("LDA", IndirectX, 0xA1, 2, 6, false)
	define("LDA", IndirectY, 0xB1, 2, 5, true)

	define("LDX", Immediate, 0xA2, 2, 2, false)
	define("LDX", ZeroPage, 0xA6, 2, 3, false)
	define("LDX", ZeroPageY, 0xB6, 2, 4, false)
	define("LDX", Absolute, 0xAE, 3, 4, false)
	define("LDX", AbsoluteY, 0xBE, 3, 4, true)

	define("LDY", Immediate, 0xA0, 2, 2, false)
	define("LDY", ZeroPage, 0xA4, 2, 3, false)
	define("LDY", ZeroPageX, 0xB4, 2, 4, false)
	define("LDY", Absolute, 0xAC, 3, 4, false)
	define("LDY", AbsoluteX, 0xBC, 3, 4, true)

	define("STA", ZeroPage, 0x85, 2, 3, false)
	define("STA", ZeroPageX, 0x95, 2, 4, false)
	define("STA", Absolute, 0x8D, 3, 4, false)
	define("STA", AbsoluteX, 0x9D, 3, 5, false)
	define("STA", AbsoluteY, 0x99, 3, 5, false)
	define("STA", IndirectX, 0x81, 2, 6, false)
	define("STA", IndirectY, 0x91, 2, 6, false)

	define("STX", ZeroPage, 0x86, 2, 3, false)
	define("STX", ZeroPageY, 0x96, 2, 4, false)
	define("STX", Absolute, 0x8E, 3, 4, false)

	define("STY", ZeroPage, 0x84, 2, 3, false)
	define("STY", ZeroPageX, 0x94, 2, 4, false)
	define("STY", Absolute, 0x8C, 3, 4, false)

	// Register transfers.
	define("TAX", Implied, 0xAA, 1, 2, false)
	define("TXA", Implied, 0x8A, 1, 2, false)
	define("TAY", Implied, 0xA8, 1, 2, false)
	define("TYA", Implied, 0x98, 1, 2, false)
	define("TSX", Implied, 0xBA, 1, 2, false)
	define("TXS", Implied, 0x9A, 1, 2, false)

	// Stack.
	define("PHA", Implied, 0x48, 1, 3, false)
	define("PLA", Implied, 0x68, 1, 4, false)
	define("PHP", Implied, 0x08, 1, 3, false)
	define("PLP", Implied, 0x28, 1, 4, false)

	// Arithmetic.
	define("ADC", Immediate, 0x69, 2, 2, false)
	define("ADC", ZeroPage, 0x65, 2, 3, false)
	define("ADC", ZeroPageX, 0x75, 2, 4, false)
	define("ADC", Absolute, 0x6D, 3, 4, false)
	define("ADC", AbsoluteX, 0x7D, 3, 4, true)
	define("ADC", AbsoluteY, 0x79, 3, 4, true)
	define("ADC", IndirectX, 0x61, 2, 6, false)
	define("ADC", IndirectY, 0x71, 2, 5, true)

	define("SBC", Immediate, 0xE9, 2, 2, false)
	define("SBC", ZeroPage, 0xE5, 2, 3, false)
	define("SBC", ZeroPageX, 0xF5, 2, 4, false)
	define("SBC", Absolute, 0xED, 3, 4, false)
	define("SBC", AbsoluteX, 0xFD, 3, 4, true)
	define("SBC", AbsoluteY, 0xF9, 3, 4, true)
	define("SBC", IndirectX, 0xE1, 2, 6, false)
	define("SBC", IndirectY, 0xF1, 2, 5, true)

	// Increment/decrement.
	define("INC", ZeroPage, 0xE6, 2, 5, false)
	define("INC", ZeroPageX, 0xF6, 2, 6, false)
	define("INC", Absolute, 0xEE, 3, 6, false)
	define("INC", AbsoluteX, 0xFE, 3, 7, false)

	define("DEC", ZeroPage, 0xC6, 2, 5, false)
	define("DEC", ZeroPageX, 0xD6, 2, 6, false)
	define("DEC", Absolute, 0xCE, 3, 6, false)
	define("DEC", AbsoluteX, 0xDE, 3, 7, false)

	define("INX", Implied, 0xE8, 1, 2, false)
	define("INY", Implied, 0xC8, 1, 2, false)
	define("DEX", Implied, 0xCA, 1, 2, false)
	define("DEY", Implied, 0x88, 1, 2, false)

	// Logical.
	define("AND", Immediate, 0x29, 2, 2, false)
	define("AND", ZeroPage, 0x25, 2, 3, false)
	define("AND", ZeroPageX, 0x35, 2, 4, false)
	define("AND", Absolute, 0x2D, 3, 4, false)
	define("AND", AbsoluteX, 0x3D, 3, 4, true)
	define("AND", AbsoluteY, 0x39, 3, 4, true)
	define("AND", IndirectX, 0x21, 2, 6, false)
	define("AND", IndirectY, 0x31, 2, 5, true)

	define("ORA", Immediate, 0x09, 2, 2, false)
	define("ORA", ZeroPage, 0x05, 2, 3, false)
	define("ORA", ZeroPageX, 0x15, 2, 4, false)
	define("ORA", Absolute, 0x0D, 3, 4, false)
	define("ORA", AbsoluteX, 0x1D, 3, 4, true)
	define("ORA", AbsoluteY, 0x19, 3, 4, true)
	define("ORA", IndirectX, 0x01, 2, 6, false)
	define("ORA", IndirectY, 0x11, 2, 5, true)

	define("EOR", Immediate, 0x49, 2, 2, false)
	define("EOR", ZeroPage, 0x45, 2, 3, false)
	define("EOR", ZeroPageX, 0x55, 2, 4, false)
	define("EOR", Absolute, 0x4D, 3, 4, false)
	define("EOR", AbsoluteX, 0x5D, 3, 4, true)
	define("EOR", AbsoluteY, 0x59, 3, 4, true)
	define("EOR", IndirectX, 0x41, 2, 6, false)
	define("EOR", IndirectY, 0x51, 2, 5, true)

	define("BIT", ZeroPage, 0x24, 2, 3, false)
	define("BIT", Absolute, 0x2C, 3, 4, false)

	// Shifts/rotates.
	define("ASL", Accumulator, 0x0A, 1, 2, false)
	define("ASL", ZeroPage, 0x06, 2, 5, false)
	define("ASL", ZeroPageX, 0x16, 2, 6, false)
	define("ASL", Absolute, 0x0E, 3, 6, false)
	define("ASL", AbsoluteX, 0x1E, 3, 7, false)

	define("LSR", Accumulator, 0x4A, 1, 2, false)
	define("LSR", ZeroPage, 0x46, 2, 5, false)
	define("LSR", ZeroPageX, 0x56, 2, 6, false)
	define("LSR", Absolute, 0x4E, 3, 6, false)
	define("LSR", AbsoluteX, 0x5E, 3, 7, false)

	define("ROL", Accumulator, 0x2A, 1, 2, false)
	define("ROL", ZeroPage, 0x26, 2, 5, false)
	define("ROL", ZeroPageX, 0x36, 2, 6, false)
	define("ROL", Absolute, 0x2E, 3, 6, false)
	define("ROL", AbsoluteX, 0x3E, 3, 7, false)

	define("ROR", Accumulator, 0x6A, 1, 2, false)
	define("ROR", ZeroPage, 0x66, 2, 5, false)
	define("ROR", ZeroPageX, 0x76, 2, 6, false)
	define("ROR", Absolute, 0x6E, 3, 6, false)
	define("ROR", AbsoluteX, 0x7E, 3, 7, false)

	// Compare.
	define("CMP", Immediate, 0xC9, 2, 2, false)
	define("CMP", ZeroPage, 0xC5, 2, 3, false)
	define("CMP", ZeroPageX, 0xD5, 2, 4, false)
	define("CMP", Absolute, 0xCD, 3, 4, false)
	define("CMP", AbsoluteX, 0xDD, 3, 4, true)
	define("CMP", AbsoluteY, 0xD9, 3, 4, true)
	define("CMP", IndirectX, 0xC1, 2, 6, false)
	define("CMP", IndirectY, 0xD1, 2, 5, true)

	define("CPX", Immediate, 0xE0, 2, 2, false)
	define("CPX", ZeroPage, 0xE4, 2, 3, false)
	define("CPX", Absolute, 0xEC, 3, 4, false)

	define("CPY", Immediate, 0xC0, 2, 2, false)
	define("CPY", ZeroPage, 0xC4, 2, 3, false)
	define("CPY", Absolute, 0xCC, 3, 4, false)

	// Branches (relative).
	define("BCC", Relative, 0x90, 2, 2, false)
	define("BCS", Relative, 0xB0, 2, 2, false)
	define("BEQ", Relative, 0xF0, 2, 2, false)
	define("BNE", Relative, 0xD0, 2, 2, false)
	define("BMI", Relative, 0x30, 2, 2, false)
	define("BPL", Relative, 0x10, 2, 2, false)
	define("BVC", Relative, 0x50, 2, 2, false)
	define("BVS", Relative, 0x70, 2, 2, false)

	// Jumps/calls.
	define("JMP", Absolute, 0x4C, 3, 3, false)
	define("JMP", Indirect, 0x6C, 3, 5, false)
	define("JSR", Absolute, 0x20, 3, 6, false)
	define("RTS", Implied, 0x60, 1, 6, false)
	define("RTI", Implied, 0x40, 1, 6, false)
	define("BRK", Implied, 0x00, 1, 7, false)

	// Status flags.
	define("CLC", Implied, 0x18, 1, 2, false)
	define("SEC", Implied, 0x38, 1, 2, false)
	define("CLI", Implied, 0x58, 1, 2, false)
	define("SEI", Implied, 0x78, 1, 2, false)
	define("CLV", Implied, 0xB8, 1, 2, false)
	define("CLD", Implied, 0xD8, 1, 2, false)
	define("SED", Implied, 0xF8, 1, 2, false)

	// No-op.
	define("NOP", Implied, 0xEA, 1, 2, false)
}

// Package cpu6502 implements a cycle-accurate interpreter for the MOS
// 6502 instruction set: register file, thirteen addressing modes, and
// the 56 documented opcodes. Every single-byte memory access runs
// through the attached mem.Memory16, so the cycle count an instruction
// takes emerges from the accesses it actually performs rather than a
// hand-maintained tally; ExecuteNextInstruction tops the count up to
// the opcode table's declared base cycles for the instructions whose
// internal bus-idle cycles don't correspond to any Load or Store
// (implied-mode operations, stack pushes and pulls, JSR, RTS, RTI).
package cpu6502

// Package asm implements the two-pass symbolic 6502 assembler: tokenized
// source lines are walked by a CompilationContext that maintains the
// current address and segment, emits bytes into a program.Program,
// defines and back-patches symbols, and records relocations for any
// operand that depended on a symbol not yet defined at the point of use.
package asm

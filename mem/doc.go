// Package mem implements the byte-addressable memory bus the CPU
// interpreter executes against: a Memory16 interface backed by a
// MemoryMapper16 that dispatches each access to whichever mounted
// device owns that address range.
package mem

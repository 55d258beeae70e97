// Package program holds the data model the assembler produces and the
// interpreter consumes: a sparse byte-addressable code image, a symbol
// table, an alias table, and an ordered relocation set.
//
// Program owns symbols and relocations; a relocation's reference back to
// its target symbol is a "weak" handle (the symbol's name, looked up
// through Program.Symbols) rather than a pointer, so dropping a
// relocation never leaves a dangling strong edge. This mirrors an
// index-based bookkeeping style over a pointer graph.
package program

import "fmt"

// Byte is an 8-bit unit of the code image.
type Byte = byte

// Address is a 16-bit location in the 64 KiB flat address space.
type Address uint16

// NearOffset is a signed 8-bit branch displacement.
type NearOffset int8

// Segment tags a symbol for later size-mode resolution (zero-page vs
// absolute).
type Segment int

const (
	SegmentUnknown Segment = iota
	SegmentZeroPage
	SegmentCode
	SegmentData
	SegmentRoData
	SegmentAbsoluteAddress
)

func (s Segment) String() string {
	switch s {
	case SegmentZeroPage:
		return "zeropage"
	case SegmentCode:
		return "code"
	case SegmentData:
		return "data"
	case SegmentRoData:
		return "rodata"
	case SegmentAbsoluteAddress:
		return "abs"
	default:
		return "unknown"
	}
}

// RelocMode selects how a relocation's target address is encoded into the
// image when patched.
type RelocMode int

const (
	RelocAbsolute RelocMode = iota // 2-byte little-endian address
	RelocRelative                  // 1-byte signed branch offset
	RelocZeroPage                  // 1-byte low address, high byte must be zero
)

// Size returns the number of bytes a relocation of this mode patches.
func (m RelocMode) Size() int {
	switch m {
	case RelocAbsolute:
		return 2
	case RelocRelative, RelocZeroPage:
		return 1
	default:
		return 0
	}
}

func (m RelocMode) String() string {
	switch m {
	case RelocAbsolute:
		return "absolute"
	case RelocRelative:
		return "relative"
	case RelocZeroPage:
		return "zeropage"
	default:
		return fmt.Sprintf("RelocMode(%d)", int(m))
	}
}

// ValueAlias is a purely textual substitution defined by `.alias` and
// resolved at parse time only.
type ValueAlias struct {
	Name  string
	Value []byte
}

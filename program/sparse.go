package program

import (
	"fmt"
	"sort"
	"strings"
)

// FillByte is returned for addresses with no populated byte when a sparse
// image is materialized to a dense vector.
const FillByte = Byte(0x55)

// SparseBinaryCode is a mapping from Address to Byte. Absent entries are
// undefined. Overwrite is disallowed by default: inserting at an address
// that already holds a byte fails unless the caller passes overwrite=true,
// so relocation patches can rewrite placeholder bytes while ordinary
// emission can never silently clobber another directive's output.
type SparseBinaryCode struct {
	bytes map[Address]Byte
}

// NewSparseBinaryCode creates an empty sparse image.
func NewSparseBinaryCode() *SparseBinaryCode {
	return &SparseBinaryCode{bytes: make(map[Address]Byte)}
}

// Insert writes a single byte at addr. Fails with ErrOverwrite if addr is
// already populated, unless overwrite is true.
func (s *SparseBinaryCode) Insert(addr Address, b Byte, overwrite bool) error {
	if _, exists := s.bytes[addr]; exists && !overwrite {
		return ErrOverwrite
	}
	s.bytes[addr] = b
	return nil
}

// InsertSequence writes bytes starting at addr, in order. Fails atomically:
// if any byte in the run would overwrite without permission, no bytes from
// this call are written.
func (s *SparseBinaryCode) InsertSequence(addr Address, data []byte, overwrite bool) error {
	if !overwrite {
		for n := range data {
			if _, exists := s.bytes[addr+Address(n)]; exists {
				return ErrOverwrite
			}
		}
	}
	for n, b := range data {
		s.bytes[addr+Address(n)] = b
	}
	return nil
}

// Load reads a single byte, reporting whether it was populated.
func (s *SparseBinaryCode) Load(addr Address) (b Byte, ok bool) {
	b, ok = s.bytes[addr]
	return
}

// Range returns the populated [min,max] address range. ok is false when the
// image is empty.
func (s *SparseBinaryCode) Range() (min, max Address, ok bool) {
	if len(s.bytes) == 0 {
		return 0, 0, false
	}
	first := true
	for addr := range s.bytes {
		if first || addr < min {
			min = addr
		}
		if first || addr > max {
			max = addr
		}
		first = false
	}
	return min, max, true
}

// Dump materializes the sparse image into a dense byte vector covering
// [min,max], filling undefined addresses with FillByte.
func (s *SparseBinaryCode) Dump() []byte {
	min, max, ok := s.Range()
	if !ok {
		return nil
	}
	out := make([]byte, int(max)-int(min)+1)
	for i := range out {
		out[i] = FillByte
	}
	for addr, b := range s.bytes {
		out[int(addr)-int(min)] = b
	}
	return out
}

// HexDump renders the populated range as a classic hex-dump: one 16-byte
// row per line, an address prefix, and undefined bytes shown as FillByte.
func (s *SparseBinaryCode) HexDump() string {
	min, max, ok := s.Range()
	if !ok {
		return ""
	}

	var b strings.Builder
	rowStart := min - (min % 16)
	for addr := rowStart; ; addr += 16 {
		fmt.Fprintf(&b, "%04X:", addr)
		for n := Address(0); n < 16; n++ {
			a := addr + n
			if a < min || a > max {
				b.WriteString("   ")
				continue
			}
			v, ok := s.bytes[a]
			if !ok {
				v = FillByte
			}
			fmt.Fprintf(&b, " %02X", v)
		}
		b.WriteByte('\n')
		if addr+16 > max {
			break
		}
	}
	return b.String()
}

// Addresses returns the populated addresses in ascending order.
func (s *SparseBinaryCode) Addresses() []Address {
	out := make([]Address, 0, len(s.bytes))
	for addr := range s.bytes {
		out = append(out, addr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

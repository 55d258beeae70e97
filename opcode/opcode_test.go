package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKnownEntry(t *testing.T) {
	assert := assert.New(t)

	e, ok := Lookup("LDA", Immediate)
	assert.True(ok)
	assert.Equal(byte(0xA9), e.Opcode)
	assert.Equal(2, e.Size)
	assert.Equal(1, e.OperandSize())
}

func TestLookupUnknownCombination(t *testing.T) {
	assert := assert.New(t)

	_, ok := Lookup("LDA", Relative)
	assert.False(ok)

	_, ok = Lookup("NOTAMNEMONIC", Implied)
	assert.False(ok)
}

func TestKnown(t *testing.T) {
	assert := assert.New(t)
	assert.True(Known("BRK"))
	assert.False(Known("WAI"))
}

func TestModesReturnsSupportedSet(t *testing.T) {
	assert := assert.New(t)
	modes := Modes("STA")
	_, hasImmediate := modes[Immediate]
	_, hasZeroPage := modes[ZeroPage]
	assert.False(hasImmediate)
	assert.True(hasZeroPage)
}

func TestDecodeRoundTripsEveryDefinedOpcode(t *testing.T) {
	assert := assert.New(t)
	for mnemonic, modes := range table {
		for mode, entry := range modes {
			decoded, ok := Decode(entry.Opcode)
			assert.True(ok, "opcode %#02x (%s %s) missing from reverse table", entry.Opcode, mnemonic, mode)
			assert.Equal(mnemonic, decoded.Mnemonic)
			assert.Equal(mode, decoded.Mode)
		}
	}
}

func TestDecodeUnknownByte(t *testing.T) {
	assert := assert.New(t)
	// 0x02 is not a documented NMOS 6502 opcode.
	_, ok := Decode(0x02)
	assert.False(ok)
}

func TestModeStringKnownAndUnknown(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("ZeroPageX", ZeroPageX.String())
	assert.Equal("Mode(99)", Mode(99).String())
}

func TestAbsoluteIndexedReadWriteAsymmetry(t *testing.T) {
	// Read-style instructions carry a conditional page-cross penalty;
	// write and read-modify-write instructions always pay for it via a
	// higher fixed BaseCycles instead.
	assert := assert.New(t)

	read, ok := Lookup("LDA", AbsoluteX)
	assert.True(ok)
	assert.True(read.PageCrossPenalty)
	assert.Equal(4, read.BaseCycles)

	write, ok := Lookup("STA", AbsoluteX)
	assert.True(ok)
	assert.False(write.PageCrossPenalty)
	assert.Equal(5, write.BaseCycles)

	rmw, ok := Lookup("INC", AbsoluteX)
	assert.True(ok)
	assert.False(rmw.PageCrossPenalty)
	assert.Equal(7, rmw.BaseCycles)
}

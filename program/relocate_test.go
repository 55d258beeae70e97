package program

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeJumpOffsetForwardAndBackward(t *testing.T) {
	assert := assert.New(t)

	off, err := RelativeJumpOffset(0x0602, 0x0600)
	require.NoError(t, err)
	assert.Equal(NearOffset(-2), off)

	off, err = RelativeJumpOffset(0x0600, 0x0602)
	require.NoError(t, err)
	assert.Equal(NearOffset(2), off)
}

func TestRelativeJumpOffsetOutOfRange(t *testing.T) {
	assert := assert.New(t)
	_, err := RelativeJumpOffset(0x0600, 0x0700)
	assert.ErrorIs(err, ErrBranchRange)
}

func TestPatchBytesAbsolute(t *testing.T) {
	assert := assert.New(t)
	b, err := PatchBytes(RelocAbsolute, 0x0600, 0x1234)
	require.NoError(t, err)
	assert.Equal([]byte{0x34, 0x12}, b)
}

func TestPatchBytesZeroPageRejectsHighByte(t *testing.T) {
	assert := assert.New(t)
	_, err := PatchBytes(RelocZeroPage, 0x0600, 0x0142)
	assert.ErrorIs(err, ErrZeroPageHigh)

	b, err := PatchBytes(RelocZeroPage, 0x0600, 0x0042)
	require.NoError(t, err)
	assert.Equal([]byte{0x42}, b)
}

func TestPatchBytesRelative(t *testing.T) {
	assert := assert.New(t)
	// position is the address of the branch's one-byte operand; the
	// offset is measured from the byte after it.
	b, err := PatchBytes(RelocRelative, 0x0600, 0x0600)
	require.NoError(t, err)
	assert.Equal([]byte{0xFF}, b)
}

func TestPatchBytesUnknownMode(t *testing.T) {
	assert := assert.New(t)
	_, err := PatchBytes(RelocMode(99), 0x0600, 0x0042)
	assert.ErrorIs(err, ErrBadRelocMode)
}

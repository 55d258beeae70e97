package cpu6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgrabas/emu502/clock"
	"github.com/pgrabas/emu502/mem"
	"github.com/pgrabas/emu502/program"
)

// newTestCPU wires a flat 64 KiB RAM bus and an uncapped clock, the
// fixture every scenario below loads its program bytes into directly.
func newTestCPU(t *testing.T) (*CPU, *mem.MemoryMapper16, *clock.Clock) {
	t.Helper()
	c := clock.New(0)
	m := mem.NewMemoryMapper16(c)
	require.NoError(t, m.Mount(0, mem.NewRAM(0x10000)))
	return New(m, c), m, c
}

func TestFlagsPackUnpackRoundTrip(t *testing.T) {
	assert := assert.New(t)

	fl := Flags{N: true, V: false, B: true, D: true, I: false, Z: true, C: true}
	got := UnpackFlags(fl.Pack())
	assert.Equal(fl, got)
	assert.Equal(byte(0b10111011), fl.Pack())
}

func TestLDAImmediateFlags(t *testing.T) {
	// S1: LDA #$00 with A=0xFF, Z=0 beforehand.
	assert := assert.New(t)
	cpu, m, clk := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0xA9, 0x00}))
	cpu.Reg.PC = 0x0600
	cpu.Reg.A = 0xFF

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(byte(0x00), cpu.Reg.A)
	assert.True(cpu.Reg.P.Z)
	assert.False(cpu.Reg.P.N)
	assert.Equal(program.Address(0x0602), cpu.Reg.PC)
	assert.Equal(int64(2), clk.Cycles())
}

func TestSTAZeroPage(t *testing.T) {
	// S2: STA $42 with A=0x7E.
	assert := assert.New(t)
	cpu, m, clk := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x85, 0x42}))
	cpu.Reg.PC = 0x0600
	cpu.Reg.A = 0x7E

	require.NoError(t, cpu.ExecuteNextInstruction())

	got, err := m.ReadRange(0x0042, 1)
	require.NoError(t, err)
	assert.Equal(byte(0x7E), got[0])
	assert.Equal(int64(3), clk.Cycles())
}

func TestBackwardBranchTakenCycles(t *testing.T) {
	// S3: loop: NOP \n BNE loop at org 0x1000, Z=0, running from the
	// branch with the branch taken and same-page target.
	assert := assert.New(t)
	cpu, m, clk := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x1000, []byte{0xEA, 0xD0, 0xFD}))
	cpu.Reg.PC = 0x1001
	cpu.Reg.P.Z = false

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(program.Address(0x1000), cpu.Reg.PC)
	assert.Equal(int64(3), clk.Cycles())
}

func TestForwardJMPRelocatedTarget(t *testing.T) {
	// S4 shape: JMP end \n NOP \n end: BRK, bytes already patched.
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x4C, 0x04, 0x06, 0xEA, 0x00}))
	cpu.Reg.PC = 0x0600

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(program.Address(0x0604), cpu.Reg.PC)
}

func TestJSRRTSPairing(t *testing.T) {
	// S5: after JSR sub, RTS returns to the byte after the JSR operand.
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	// 0600: JSR 0610 ; 0603: BRK ; 0610: RTS
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x20, 0x10, 0x06, 0x00}))
	require.NoError(t, m.WriteBulk(0x0610, []byte{0x60}))
	cpu.Reg.PC = 0x0600
	cpu.Reg.S = 0xFF

	require.NoError(t, cpu.ExecuteNextInstruction()) // JSR
	assert.Equal(program.Address(0x0610), cpu.Reg.PC)
	assert.Equal(byte(0xFD), cpu.Reg.S)

	require.NoError(t, cpu.ExecuteNextInstruction()) // RTS
	assert.Equal(program.Address(0x0603), cpu.Reg.PC)
	assert.Equal(byte(0xFF), cpu.Reg.S)
}

func TestBRKHaltsWithNoVector(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x00}))
	cpu.Reg.PC = 0x0600

	err := cpu.ExecuteNextInstruction()
	var halted *Halted
	require.ErrorAs(t, err, &halted)
	assert.Equal(program.Address(0x0600), halted.PC)
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x69, 0x01})) // ADC #$01
	cpu.Reg.PC = 0x0600
	cpu.Reg.A = 0x7F // +1 overflows into negative: classic signed-overflow case

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(byte(0x80), cpu.Reg.A)
	assert.True(cpu.Reg.P.V)
	assert.True(cpu.Reg.P.N)
	assert.False(cpu.Reg.P.C)
}

func TestSBCBorrow(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0xE9, 0x01})) // SBC #$01
	cpu.Reg.PC = 0x0600
	cpu.Reg.A = 0x00
	cpu.Reg.P.C = true // no pending borrow

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(byte(0xFF), cpu.Reg.A)
	assert.False(cpu.Reg.P.C) // borrow occurred
	assert.True(cpu.Reg.P.N)
}

func TestCMPSetsCarryWhenRegGreaterOrEqual(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0xC9, 0x10})) // CMP #$10
	cpu.Reg.PC = 0x0600
	cpu.Reg.A = 0x10

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.True(cpu.Reg.P.C)
	assert.True(cpu.Reg.P.Z)
}

func TestASLAccumulatorShiftsAndSetsCarry(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x0A})) // ASL A
	cpu.Reg.PC = 0x0600
	cpu.Reg.A = 0x81

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(byte(0x02), cpu.Reg.A)
	assert.True(cpu.Reg.P.C)
}

func TestINCMemoryDoesDummyWriteThenFinalWrite(t *testing.T) {
	// INC $00 at zero page: read, dummy write of the original, then the
	// incremented write, totalling BaseCycles(5).
	assert := assert.New(t)
	cpu, m, clk := newTestCPU(t)
	require.NoError(t, m.WriteBulk(0x0600, []byte{0xE6, 0x10}))
	require.NoError(t, m.WriteBulk(0x0010, []byte{0x7F}))
	cpu.Reg.PC = 0x0600

	require.NoError(t, cpu.ExecuteNextInstruction())

	got, err := m.ReadRange(0x0010, 1)
	require.NoError(t, err)
	assert.Equal(byte(0x80), got[0])
	assert.True(cpu.Reg.P.N)
	assert.Equal(int64(5), clk.Cycles())
}

func TestIndirectJMPPageBoundaryBugByDefault(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	// Pointer at $02FF: hardware fetches the high byte from $0200, not
	// $0300, when the bug is reproduced.
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x6C, 0xFF, 0x02}))
	require.NoError(t, m.WriteBulk(0x02FF, []byte{0x34}))
	require.NoError(t, m.WriteBulk(0x0200, []byte{0x12}))
	require.NoError(t, m.WriteBulk(0x0300, []byte{0x99}))
	cpu.Reg.PC = 0x0600

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(program.Address(0x1234), cpu.Reg.PC)
}

func TestIndirectJMPFixedBugOptOut(t *testing.T) {
	assert := assert.New(t)
	cpu, m, _ := newTestCPU(t)
	cpu.FixIndirectJMPBug = true
	require.NoError(t, m.WriteBulk(0x0600, []byte{0x6C, 0xFF, 0x02}))
	require.NoError(t, m.WriteBulk(0x02FF, []byte{0x34}))
	require.NoError(t, m.WriteBulk(0x0300, []byte{0x99}))
	cpu.Reg.PC = 0x0600

	require.NoError(t, cpu.ExecuteNextInstruction())

	assert.Equal(program.Address(0x9934), cpu.Reg.PC)
}

func TestExecuteNextInstructionDeterministic(t *testing.T) {
	// Property 5: identical starting state, identical trajectory.
	assert := assert.New(t)
	run := func() (Registers, int64) {
		cpu, m, clk := newTestCPU(t)
		require.NoError(t, m.WriteBulk(0x0600, []byte{0xA9, 0x10, 0x69, 0x05}))
		cpu.Reg.PC = 0x0600
		require.NoError(t, cpu.ExecuteNextInstruction())
		require.NoError(t, cpu.ExecuteNextInstruction())
		return cpu.Reg, clk.Cycles()
	}
	reg1, cycles1 := run()
	reg2, cycles2 := run()
	assert.Equal(reg1, reg2)
	assert.Equal(cycles1, cycles2)
}

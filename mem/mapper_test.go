package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pgrabas/emu502/program"
)

type fakeClock struct {
	cycles int
}

func (c *fakeClock) WaitForNextCycle() { c.cycles++ }

func TestMapperLoadStore(t *testing.T) {
	assert := assert.New(t)

	clk := &fakeClock{}
	m := NewMemoryMapper16(clk)
	assert.NoError(m.Mount(0x0000, NewRAM(0x1000)))

	assert.NoError(m.Store(0x10, 0x42))
	b, err := m.Load(0x10)
	assert.NoError(err)
	assert.Equal(byte(0x42), b)
	assert.Equal(2, clk.cycles) // one Store, one Load
}

func TestMapperBusError(t *testing.T) {
	assert := assert.New(t)

	m := NewMemoryMapper16(nil)
	assert.NoError(m.Mount(0x0000, NewRAM(0x100)))

	_, err := m.Load(0x200)
	assert.Error(err)
	var busErr ErrBusError
	assert.ErrorAs(err, &busErr)
}

func TestMapperOverlapRejected(t *testing.T) {
	assert := assert.New(t)

	m := NewMemoryMapper16(nil)
	assert.NoError(m.Mount(0x0000, NewRAM(0x100)))
	err := m.Mount(0x0080, NewRAM(0x100))
	assert.ErrorIs(err, ErrRangeOverlap)
}

func TestMapperROMReadOnly(t *testing.T) {
	assert := assert.New(t)

	m := NewMemoryMapper16(nil)
	assert.NoError(m.Mount(0x8000, NewROM([]byte{0xEA, 0x00})))

	b, err := m.Load(0x8000)
	assert.NoError(err)
	assert.Equal(byte(0xEA), b)

	err = m.Store(0x8000, 0x00)
	assert.ErrorIs(err, ErrReadOnly)
}

func TestMapperWriteBulkDoesNotTick(t *testing.T) {
	assert := assert.New(t)

	clk := &fakeClock{}
	m := NewMemoryMapper16(clk)
	assert.NoError(m.Mount(0x0000, NewRAM(0x100)))

	assert.NoError(m.WriteBulk(0x10, []byte{1, 2, 3, 4}))
	assert.Equal(0, clk.cycles)

	data, err := m.ReadRange(0x10, 4)
	assert.NoError(err)
	assert.Equal([]byte{1, 2, 3, 4}, data)
	assert.Equal(0, clk.cycles)
}

func TestMapperMultipleDevices(t *testing.T) {
	assert := assert.New(t)

	m := NewMemoryMapper16(nil)
	assert.NoError(m.Mount(0x0000, NewRAM(0x8000)))
	assert.NoError(m.Mount(0x8000, NewROM(make([]byte, 0x8000))))

	assert.NoError(m.Store(0x0010, 0x99))
	b, _ := m.Load(0x0010)
	assert.Equal(byte(0x99), b)

	b, err := m.Load(program.Address(0x8000))
	assert.NoError(err)
	assert.Equal(byte(0), b)
}

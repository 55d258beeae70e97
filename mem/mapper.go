package mem

import (
	"sort"

	"github.com/pgrabas/emu502/program"
)

// mount records one device's position in the address space.
type mount struct {
	base   program.Address
	length int
	dev    Device
}

func (m mount) contains(addr program.Address) bool {
	return addr >= m.base && int(addr)-int(m.base) < m.length
}

// MemoryMapper16 composes non-overlapping address ranges, each backed
// by a Device, into a single flat Memory16 bus. An access to an
// address with no mounted device fails with ErrBusError.
type MemoryMapper16 struct {
	clock  Ticker
	mounts []mount
}

var _ Memory16 = (*MemoryMapper16)(nil)

// NewMemoryMapper16 creates an empty bus. clock may be nil, in which
// case accesses don't advance any cycle counter — useful when the
// mapper backs the assembler's image rather than a running CPU.
func NewMemoryMapper16(clock Ticker) *MemoryMapper16 {
	return &MemoryMapper16{clock: clock}
}

// Mount attaches dev at base. It fails with ErrRangeOverlap if any
// byte of dev's range is already owned by another mounted device.
func (m *MemoryMapper16) Mount(base program.Address, dev Device) error {
	length := dev.Len()
	newMount := mount{base: base, length: length, dev: dev}
	for _, existing := range m.mounts {
		if rangesOverlap(existing, newMount) {
			return ErrRangeOverlap
		}
	}
	m.mounts = append(m.mounts, newMount)
	sort.Slice(m.mounts, func(i, j int) bool { return m.mounts[i].base < m.mounts[j].base })
	return nil
}

func rangesOverlap(a, b mount) bool {
	aEnd := int(a.base) + a.length
	bEnd := int(b.base) + b.length
	return int(a.base) < bEnd && int(b.base) < aEnd
}

func (m *MemoryMapper16) find(addr program.Address) (mount, bool) {
	for _, mnt := range m.mounts {
		if mnt.contains(addr) {
			return mnt, true
		}
	}
	return mount{}, false
}

func (m *MemoryMapper16) tick() {
	if m.clock != nil {
		m.clock.WaitForNextCycle()
	}
}

// Load reads one byte and advances the clock by one cycle.
func (m *MemoryMapper16) Load(addr program.Address) (byte, error) {
	mnt, ok := m.find(addr)
	if !ok {
		return 0, ErrBusError(addr)
	}
	b, err := mnt.dev.Load(addr - mnt.base)
	m.tick()
	return b, err
}

// Store writes one byte and advances the clock by one cycle.
func (m *MemoryMapper16) Store(addr program.Address, b byte) error {
	mnt, ok := m.find(addr)
	if !ok {
		return ErrBusError(addr)
	}
	err := mnt.dev.Store(addr-mnt.base, b)
	m.tick()
	return err
}

// WriteBulk writes data starting at addr without ticking the clock,
// used to load a program image before execution begins.
func (m *MemoryMapper16) WriteBulk(addr program.Address, data []byte) error {
	for n, b := range data {
		mnt, ok := m.find(addr + program.Address(n))
		if !ok {
			return ErrBusError(addr + program.Address(n))
		}
		if err := mnt.dev.Store(addr+program.Address(n)-mnt.base, b); err != nil {
			return err
		}
	}
	return nil
}

// ReadRange reads length bytes starting at addr without ticking the
// clock.
func (m *MemoryMapper16) ReadRange(addr program.Address, length int) ([]byte, error) {
	out := make([]byte, length)
	for n := range out {
		mnt, ok := m.find(addr + program.Address(n))
		if !ok {
			return nil, ErrBusError(addr + program.Address(n))
		}
		b, err := mnt.dev.Load(addr + program.Address(n) - mnt.base)
		if err != nil {
			return nil, err
		}
		out[n] = b
	}
	return out, nil
}

package mem

import "github.com/pgrabas/emu502/program"

// Ticker is the subset of a clock that memory needs: advancing past
// one cycle, paced to the clock's target frequency if one is set.
// Satisfied by *clock.Clock; kept as a local interface so mem never
// imports clock.
type Ticker interface {
	WaitForNextCycle()
}

// Memory16 is the bus the CPU interpreter executes against. Every
// single-byte Load or Store advances the attached Ticker by one cycle;
// the bulk operations exist for program loading and never tick, since
// they are setup rather than execution.
type Memory16 interface {
	Load(addr program.Address) (byte, error)
	Store(addr program.Address, b byte) error
	WriteBulk(addr program.Address, data []byte) error
	ReadRange(addr program.Address, length int) ([]byte, error)
}

// Device is a single memory-mapped component: a RAM array, a ROM, or a
// peripheral. Offsets are local to the device, starting at 0.
type Device interface {
	Load(offset program.Address) (byte, error)
	Store(offset program.Address, b byte) error
	Len() int
}

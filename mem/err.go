package mem

import (
	"errors"

	"github.com/pgrabas/emu502/internal/localize"
	"github.com/pgrabas/emu502/program"
)

var f = localize.F

var (
	ErrReadOnly     = errors.New(f("store to read-only device"))
	ErrRangeOverlap = errors.New(f("mounted range overlaps an existing device"))
	ErrOutOfRange   = errors.New(f("offset out of range for device"))
)

// ErrBusError reports an access to an address with no mounted device.
type ErrBusError program.Address

func (e ErrBusError) Error() string {
	return f("bus error at %#04x", uint16(e))
}

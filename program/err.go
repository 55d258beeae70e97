package program

import (
	"errors"

	"github.com/pgrabas/emu502/internal/localize"
)

var f = localize.F

var (
	// EmitError kinds.
	ErrOverwrite    = errors.New(f("byte already emitted at this address"))
	ErrBranchRange  = errors.New(f("branch out of range"))
	ErrZeroPageHigh = errors.New(f("zero-page relocation target has non-zero high byte"))

	// ResolutionError kinds.
	ErrSymbolDuplicate = errors.New(f("symbol already defined"))
	ErrAliasDuplicate  = errors.New(f("alias already defined"))
	ErrBadRelocMode    = errors.New(f("unrecognized relocation mode"))
)

// ErrSymbolUndefined reports a symbol with no offset at end of assembly.
type ErrSymbolUndefined string

func (e ErrSymbolUndefined) Error() string {
	return f("undefined symbol `%v`", string(e))
}

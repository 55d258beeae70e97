package asm

import (
	"errors"

	"github.com/pgrabas/emu502/internal/localize"
)

var f = localize.F

var (
	// ParseError kinds.
	ErrUnknownMnemonic  = errors.New(f("unrecognized mnemonic"))
	ErrUnknownDirective = errors.New(f("unrecognized directive"))
	ErrBadOperand       = errors.New(f("invalid address-mode syntax"))
	ErrNoMode           = errors.New(f("opcode does not accept this addressing form"))
	ErrDirectiveSyntax  = errors.New(f("directive syntax error"))
	ErrUnknownAlias     = errors.New(f("reference to undefined alias"))
)

// ErrSyntax carries the source line number and text of a failing line,
// wrapping the underlying cause.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (e *ErrSyntax) Error() string {
	return f("line %d: `%v`: %v", e.LineNo, e.Line, e.Err)
}

func (e *ErrSyntax) Unwrap() error {
	return e.Err
}

package token

import "github.com/pgrabas/emu502/internal/localize"

var f = localize.F

// ErrBadToken reports a character that starts no recognized token kind.
type ErrBadToken string

func (e ErrBadToken) Error() string {
	return f("unexpected character `%v`", string(e))
}

// ErrUnterminatedString reports a string literal with no closing quote.
type ErrUnterminatedString string

func (e ErrUnterminatedString) Error() string {
	return f("unterminated string %v", string(e))
}

// ErrBadNumber reports a malformed numeric literal.
type ErrBadNumber string

func (e ErrBadNumber) Error() string {
	return f("`%v` is not a valid numeric literal", string(e))
}

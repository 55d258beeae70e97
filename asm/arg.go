package asm

import (
	"github.com/pgrabas/emu502/opcode"
	"github.com/pgrabas/emu502/program"
	"github.com/pgrabas/emu502/token"
)

// ArgForm is the syntactic shape an operand was written in, independent of
// whether its value is numeric or symbolic.
type ArgForm int

const (
	FormNone        ArgForm = iota // no operand at all
	FormAccumulator                // the literal "A"
	FormImmediate                  // "#<val>"
	FormDirect                     // "<val>" or "<val>,X/Y"
	FormIndirect                   // "(<val>)"
	FormIndirectX                  // "(<val>,X)"
	FormIndirectY                  // "(<val>),Y"
)

// Index names the index register suffix on a direct operand, if any.
type Index int

const (
	IndexNone Index = iota
	IndexX
	IndexY
)

// ArgKind distinguishes a resolved numeric value from a symbol reference.
type ArgKind int

const (
	ArgNumber ArgKind = iota
	ArgSymbol
)

// Arg is the parsed operand of a single instruction: empty, a literal
// byte sequence, or a symbol reference, tagged with the syntactic form
// it appeared in.
type Arg struct {
	Form   ArgForm
	Kind   ArgKind
	Bytes  []byte // ArgNumber: 1 or 2 bytes, little-endian
	Symbol string // ArgSymbol
	Index  Index
}

// ParseArgument consumes the operand tokens following a mnemonic (not
// including the mnemonic itself) and returns the parsed Arg. A trailing
// EOL token is ignored; no tokens besides it means "no operand".
func ParseArgument(toks []token.Token) (Arg, error) {
	toks = trimEOL(toks)

	if len(toks) == 0 {
		return Arg{Form: FormNone}, nil
	}

	if len(toks) == 1 && toks[0].Kind == token.Identifier && toks[0].Text == "A" {
		return Arg{Form: FormAccumulator}, nil
	}

	if toks[0].Kind == token.Punct && toks[0].Text == "#" {
		value, rest, err := parseValue(toks[1:])
		if err != nil {
			return Arg{}, err
		}
		if len(rest) != 0 {
			return Arg{}, ErrBadOperand
		}
		value.Form = FormImmediate
		return value, nil
	}

	if toks[0].Kind == token.Punct && toks[0].Text == "(" {
		return parseIndirect(toks[1:])
	}

	value, rest, err := parseValue(toks)
	if err != nil {
		return Arg{}, err
	}

	if len(rest) == 0 {
		value.Form = FormDirect
		return value, nil
	}

	if rest[0].Kind == token.Punct && rest[0].Text == "," && len(rest) >= 2 && rest[1].Kind == token.Identifier {
		idx, err := parseIndexReg(rest[1].Text)
		if err != nil {
			return Arg{}, err
		}
		if len(rest) != 2 {
			return Arg{}, ErrBadOperand
		}
		value.Form = FormDirect
		value.Index = idx
		return value, nil
	}

	return Arg{}, ErrBadOperand
}

// parseIndirect parses the inside of a parenthesized operand, having
// already consumed the opening '('. It returns an Arg of FormIndirect,
// FormIndirectX, or FormIndirectY.
func parseIndirect(toks []token.Token) (Arg, error) {
	value, rest, err := parseValue(toks)
	if err != nil {
		return Arg{}, err
	}

	// (<val>,X)
	if len(rest) >= 3 && isPunct(rest[0], ",") && rest[1].Kind == token.Identifier && isPunct(rest[2], ")") {
		idx, err := parseIndexReg(rest[1].Text)
		if err != nil {
			return Arg{}, err
		}
		if idx != IndexX || len(rest) != 3 {
			return Arg{}, ErrBadOperand
		}
		value.Form = FormIndirectX
		return value, nil
	}

	// (<val>),Y
	if len(rest) >= 3 && isPunct(rest[0], ")") && isPunct(rest[1], ",") && rest[2].Kind == token.Identifier {
		idx, err := parseIndexReg(rest[2].Text)
		if err != nil {
			return Arg{}, err
		}
		if idx != IndexY || len(rest) != 3 {
			return Arg{}, ErrBadOperand
		}
		value.Form = FormIndirectY
		return value, nil
	}

	// (<val>)
	if len(rest) == 1 && isPunct(rest[0], ")") {
		value.Form = FormIndirect
		return value, nil
	}

	return Arg{}, ErrBadOperand
}

func isPunct(tok token.Token, text string) bool {
	return tok.Kind == token.Punct && tok.Text == text
}

func parseIndexReg(name string) (Index, error) {
	switch name {
	case "X", "x":
		return IndexX, nil
	case "Y", "y":
		return IndexY, nil
	default:
		return IndexNone, ErrBadOperand
	}
}

// parseValue consumes a single Number or Identifier token and returns the
// remaining tokens.
func parseValue(toks []token.Token) (Arg, []token.Token, error) {
	if len(toks) == 0 {
		return Arg{}, nil, ErrBadOperand
	}
	switch toks[0].Kind {
	case token.Number:
		return Arg{Kind: ArgNumber, Bytes: toks[0].Value}, toks[1:], nil
	case token.Identifier:
		return Arg{Kind: ArgSymbol, Symbol: toks[0].Text}, toks[1:], nil
	default:
		return Arg{}, nil, ErrBadOperand
	}
}

func trimEOL(toks []token.Token) []token.Token {
	if len(toks) > 0 && toks[len(toks)-1].Kind == token.EOL {
		return toks[:len(toks)-1]
	}
	return toks
}

// CandidateModes returns the set of address modes this Arg could
// syntactically represent. symbolSegment is consulted only for
// ArgSymbol, non-indexed operands whose symbol is already defined: a
// known ZeroPage segment adds ZeroPage as an extra (deprioritized)
// candidate alongside Absolute/Relative.
func CandidateModes(arg Arg, symbolSegment program.Segment) []opcode.Mode {
	switch arg.Form {
	case FormNone:
		return []opcode.Mode{opcode.Implied, opcode.Accumulator}
	case FormAccumulator:
		return []opcode.Mode{opcode.Accumulator}
	case FormImmediate:
		return []opcode.Mode{opcode.Immediate}
	case FormIndirectX:
		return []opcode.Mode{opcode.IndirectX}
	case FormIndirectY:
		return []opcode.Mode{opcode.IndirectY}
	case FormIndirect:
		return []opcode.Mode{opcode.Indirect}
	case FormDirect:
		return directCandidates(arg, symbolSegment)
	default:
		return nil
	}
}

func directCandidates(arg Arg, symbolSegment program.Segment) []opcode.Mode {
	if arg.Kind == ArgSymbol {
		// Zero-page indexed modes are never candidates for a symbol
		// operand; only a literal byte value can resolve to ZeroPageX/Y.
		switch arg.Index {
		case IndexX:
			return []opcode.Mode{opcode.AbsoluteX}
		case IndexY:
			return []opcode.Mode{opcode.AbsoluteY}
		default:
			modes := []opcode.Mode{opcode.Absolute, opcode.Relative}
			if symbolSegment == program.SegmentZeroPage {
				modes = append(modes, opcode.ZeroPage)
			}
			return modes
		}
	}

	size := len(arg.Bytes)
	switch arg.Index {
	case IndexX:
		if size == 1 {
			return []opcode.Mode{opcode.ZeroPageX, opcode.AbsoluteX}
		}
		return []opcode.Mode{opcode.AbsoluteX}
	case IndexY:
		if size == 1 {
			return []opcode.Mode{opcode.ZeroPageY, opcode.AbsoluteY}
		}
		return []opcode.Mode{opcode.AbsoluteY}
	default:
		if size == 1 {
			return []opcode.Mode{opcode.ZeroPage}
		}
		return []opcode.Mode{opcode.Absolute, opcode.Relative}
	}
}

// SelectMode intersects candidates with the modes mnemonic actually
// supports and applies the tie-breaking rule: when a symbol operand
// could resolve to either Absolute or ZeroPage, Absolute always wins,
// since the target's final address isn't known until pass two.
func SelectMode(mnemonic string, arg Arg, symbolSegment program.Segment) (opcode.Mode, error) {
	supported := opcode.Modes(mnemonic)
	candidates := CandidateModes(arg, symbolSegment)

	var survive []opcode.Mode
	for _, m := range candidates {
		if _, ok := supported[m]; ok {
			survive = append(survive, m)
		}
	}

	switch len(survive) {
	case 0:
		return 0, ErrNoMode
	case 1:
		return survive[0], nil
	default:
		if arg.Kind == ArgSymbol {
			for _, m := range survive {
				if m == opcode.Absolute {
					return opcode.Absolute, nil
				}
			}
		}
		// Otherwise take the first survivor in CandidateModes order,
		// which lists the zero-page form of a one-byte indexed number
		// ahead of its absolute form.
		return survive[0], nil
	}
}

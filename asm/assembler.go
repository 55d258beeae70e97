package asm

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/pgrabas/emu502/opcode"
	"github.com/pgrabas/emu502/program"
	"github.com/pgrabas/emu502/token"
)

// CompilationContext is the per-file assembly state threaded through
// every line: the address the next byte will be written to, the
// segment tag new labels are defined under, and the Program being
// built.
type CompilationContext struct {
	Address program.Address
	Segment program.Segment
	Prog    *program.Program
}

// Assembler is a two-pass symbolic 6502 assembler. The two passes are
// implicit rather than scheduled: forward references are resolved by
// back-patching as soon as the referenced label is defined, so a
// single top-to-bottom walk of the source suffices.
type Assembler struct {
	Verbose bool
}

// New creates an Assembler with default settings.
func New() *Assembler {
	return &Assembler{}
}

// Parse assembles source read from r into a Program. The first failing
// line aborts assembly and its error is returned wrapped in ErrSyntax
// with the offending line number and text. A symbol still undefined at
// end of input is reported as program.ErrSymbolUndefined, without a line.
func (a *Assembler) Parse(r io.Reader) (*program.Program, error) {
	prog := program.New()
	ctx := &CompilationContext{Segment: program.SegmentCode, Prog: prog}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if a.Verbose {
			log.Printf("asm: line %d: %q (addr=%04X seg=%v)", lineNo, line, ctx.Address, ctx.Segment)
		}
		if err := a.parseLine(ctx, line); err != nil {
			if a.Verbose {
				log.Printf("asm: line %d failed: %+v", lineNo, err)
			}
			return nil, &ErrSyntax{LineNo: lineNo, Line: line, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if undef := prog.Undefined(); len(undef) > 0 {
		return nil, program.ErrSymbolUndefined(undef[0])
	}

	return prog, nil
}

func (a *Assembler) parseLine(ctx *CompilationContext, line string) error {
	expanded, err := expandExpressions(line, ctx.Prog)
	if err != nil {
		return err
	}

	toks, err := token.Collect(expanded)
	if err != nil {
		return err
	}

	toks, err = ctx.consumeLabel(toks)
	if err != nil {
		return err
	}

	if len(toks) == 1 && toks[0].Kind == token.EOL {
		return nil
	}

	word, rest, err := splitLeadWord(toks)
	if err != nil {
		return err
	}

	if d, ok := LookupDirective(word); ok {
		return ctx.applyDirective(d, rest)
	}

	mnemonic := strings.ToUpper(word)
	if !opcode.Known(mnemonic) {
		return ErrUnknownMnemonic
	}
	return ctx.emitInstruction(mnemonic, rest)
}

// consumeLabel defines a symbol and runs back-patching if toks opens
// with a label token, returning the remaining tokens either way.
func (ctx *CompilationContext) consumeLabel(toks []token.Token) ([]token.Token, error) {
	if len(toks) == 0 || toks[0].Kind != token.Identifier || !toks[0].Label {
		return toks, nil
	}
	sym, err := ctx.Prog.DefineSymbol(toks[0].Text, ctx.Address, ctx.Segment)
	if err != nil {
		return nil, err
	}
	if err := ctx.backpatch(sym); err != nil {
		return nil, err
	}
	return toks[1:], nil
}

// backpatch rewrites every still-live relocation referencing sym now
// that its offset is known.
func (ctx *CompilationContext) backpatch(sym *program.SymbolInfo) error {
	for _, idx := range sym.References {
		reloc := ctx.Prog.Relocations[idx]
		if !reloc.Live() {
			continue
		}
		data, err := program.PatchBytes(reloc.Mode, reloc.Position, sym.Offset)
		if err != nil {
			return err
		}
		if err := ctx.Prog.Code.InsertSequence(reloc.Position, data, true); err != nil {
			return err
		}
		ctx.Prog.MarkPatched(idx)
	}
	return nil
}

// splitLeadWord extracts the directive-or-mnemonic word that opens an
// instruction line, accepting an optional leading '.' punctuation token.
func splitLeadWord(toks []token.Token) (string, []token.Token, error) {
	if len(toks) == 0 {
		return "", nil, ErrDirectiveSyntax
	}
	if toks[0].Kind == token.Punct && toks[0].Text == "." {
		if len(toks) < 2 || toks[1].Kind != token.Identifier {
			return "", nil, ErrDirectiveSyntax
		}
		return toks[1].Text, toks[2:], nil
	}
	if toks[0].Kind != token.Identifier {
		return "", nil, ErrBadOperand
	}
	return toks[0].Text, toks[1:], nil
}

func (ctx *CompilationContext) applyDirective(d Directive, rest []token.Token) error {
	switch d {
	case DirectiveOrg:
		return ctx.applyOrg(rest)
	case DirectiveByte:
		return ctx.applyByte(rest)
	case DirectiveWord:
		return ctx.applyWord(rest)
	case DirectiveText:
		return ctx.applyText(rest)
	case DirectiveAlias:
		return ctx.applyAlias(rest)
	case DirectiveSegment:
		return ctx.applySegment(rest)
	default:
		return ErrUnknownDirective
	}
}

func (ctx *CompilationContext) applyOrg(rest []token.Token) error {
	rest = trimEOL(rest)
	if len(rest) != 1 || rest[0].Kind != token.Number {
		return ErrDirectiveSyntax
	}
	addr, err := addressFromBytes(rest[0].Value)
	if err != nil {
		return err
	}
	ctx.Address = addr
	return nil
}

func addressFromBytes(b []byte) (program.Address, error) {
	switch len(b) {
	case 1:
		return program.Address(b[0]), nil
	case 2:
		return program.Address(b[0]) | program.Address(b[1])<<8, nil
	default:
		return 0, ErrDirectiveSyntax
	}
}

func (ctx *CompilationContext) applyByte(rest []token.Token) error {
	return ctx.emitGroups(rest, 1)
}

func (ctx *CompilationContext) applyWord(rest []token.Token) error {
	return ctx.emitGroups(rest, 2)
}

func (ctx *CompilationContext) emitGroups(rest []token.Token, size int) error {
	for _, group := range splitArgs(rest) {
		data, err := ctx.resolveValue(group, size)
		if err != nil {
			return err
		}
		if err := ctx.Prog.Code.InsertSequence(ctx.Address, data, false); err != nil {
			return err
		}
		ctx.Address += program.Address(len(data))
	}
	return nil
}

// resolveValue resolves a single `.byte`/`.word` operand to its final
// byte encoding: a numeric literal fitted to size, or an alias name
// substituted for its defined value.
func (ctx *CompilationContext) resolveValue(group []token.Token, size int) ([]byte, error) {
	if len(group) != 1 {
		return nil, ErrDirectiveSyntax
	}
	switch group[0].Kind {
	case token.Number:
		return fitOperand(group[0].Value, size)
	case token.Identifier:
		alias, ok := ctx.Prog.Aliases[group[0].Text]
		if !ok {
			return nil, ErrUnknownAlias
		}
		return fitOperand(alias.Value, size)
	default:
		return nil, ErrDirectiveSyntax
	}
}

func (ctx *CompilationContext) applyText(rest []token.Token) error {
	rest = trimEOL(rest)
	if len(rest) != 1 || rest[0].Kind != token.String {
		return ErrDirectiveSyntax
	}
	data := []byte(rest[0].Text)
	if err := ctx.Prog.Code.InsertSequence(ctx.Address, data, false); err != nil {
		return err
	}
	ctx.Address += program.Address(len(data))
	return nil
}

func (ctx *CompilationContext) applyAlias(rest []token.Token) error {
	rest = trimEOL(rest)
	if len(rest) != 3 || rest[0].Kind != token.Identifier || !isPunct(rest[1], "=") || rest[2].Kind != token.Number {
		return ErrDirectiveSyntax
	}
	return ctx.Prog.AddAlias(rest[0].Text, rest[2].Value)
}

var segmentNames = map[string]program.Segment{
	"zeropage": program.SegmentZeroPage,
	"zp":       program.SegmentZeroPage,
	"code":     program.SegmentCode,
	"data":     program.SegmentData,
	"rodata":   program.SegmentRoData,
	"abs":      program.SegmentAbsoluteAddress,
}

func (ctx *CompilationContext) applySegment(rest []token.Token) error {
	rest = trimEOL(rest)
	if len(rest) != 1 || rest[0].Kind != token.Identifier {
		return ErrDirectiveSyntax
	}
	seg, ok := segmentNames[strings.ToLower(rest[0].Text)]
	if !ok {
		return ErrDirectiveSyntax
	}
	ctx.Segment = seg
	return nil
}

// splitArgs splits a comma-separated operand list into its individual
// argument token groups.
func splitArgs(toks []token.Token) [][]token.Token {
	toks = trimEOL(toks)
	var groups [][]token.Token
	var cur []token.Token
	for _, t := range toks {
		if t.Kind == token.Punct && t.Text == "," {
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, t)
	}
	groups = append(groups, cur)
	return groups
}

// fitOperand zero-extends a little-endian byte value up to size, or
// fails if it is already wider than size.
func fitOperand(b []byte, size int) ([]byte, error) {
	if len(b) == size {
		return b, nil
	}
	if len(b) > size {
		return nil, ErrBadOperand
	}
	out := make([]byte, size)
	copy(out, b)
	return out, nil
}

// emitInstruction implements the instruction emission order: parse the
// argument, select its address mode, write the opcode byte, then write
// the operand bytes (direct, computed from an already-defined symbol,
// or a zero-filled placeholder plus relocation for a forward symbol).
func (ctx *CompilationContext) emitInstruction(mnemonic string, rest []token.Token) error {
	arg, err := ParseArgument(rest)
	if err != nil {
		return err
	}

	symbolSeg := program.SegmentUnknown
	if arg.Kind == ArgSymbol {
		symbolSeg = ctx.Prog.Symbol(arg.Symbol).Segment
	}

	mode, err := SelectMode(mnemonic, arg, symbolSeg)
	if err != nil {
		return err
	}

	entry, _ := opcode.Lookup(mnemonic, mode)

	if err := ctx.Prog.Code.Insert(ctx.Address, entry.Opcode, false); err != nil {
		return err
	}
	ctx.Address++

	operandSize := entry.OperandSize()
	if operandSize == 0 {
		return nil
	}

	operandAddr := ctx.Address
	if err := ctx.emitOperand(arg, mode, operandAddr, operandSize); err != nil {
		return err
	}
	ctx.Address += program.Address(operandSize)
	return nil
}

func (ctx *CompilationContext) emitOperand(arg Arg, mode opcode.Mode, addr program.Address, size int) error {
	if arg.Kind == ArgNumber {
		data, err := fitOperand(arg.Bytes, size)
		if err != nil {
			return err
		}
		return ctx.Prog.Code.InsertSequence(addr, data, false)
	}

	sym := ctx.Prog.Symbol(arg.Symbol)
	relocMode := relocModeFor(mode)

	if sym.Defined {
		data, err := program.PatchBytes(relocMode, addr, sym.Offset)
		if err != nil {
			return err
		}
		return ctx.Prog.Code.InsertSequence(addr, data, false)
	}

	placeholder := make([]byte, size)
	if err := ctx.Prog.Code.InsertSequence(addr, placeholder, false); err != nil {
		return err
	}
	ctx.Prog.AddRelocation(arg.Symbol, addr, relocMode)
	return nil
}

func relocModeFor(mode opcode.Mode) program.RelocMode {
	switch mode {
	case opcode.Relative:
		return program.RelocRelative
	case opcode.ZeroPage, opcode.ZeroPageX, opcode.ZeroPageY:
		return program.RelocZeroPage
	default:
		return program.RelocAbsolute
	}
}

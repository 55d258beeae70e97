package asm

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/pgrabas/emu502/program"
)

// exprPattern matches a `$( ... )` compile-time expression embedded in a
// source line, evaluated against the currently defined aliases before
// tokenization.
var exprPattern = regexp.MustCompile(`\$\([^$]*\)`)

// expandExpressions rewrites every `$(...)` occurrence in line with the
// decimal value of evaluating its contents as a Starlark expression,
// with each defined alias bound as an integer variable. Aliases whose
// value isn't a plain integer are skipped rather than erroring, since
// they may be referenced only for their byte value elsewhere.
func expandExpressions(line string, prog *program.Program) (string, error) {
	var evalErr error
	out := exprPattern.ReplaceAllStringFunc(line, func(match string) string {
		inner := match[2 : len(match)-1]
		value, err := evalExpr(inner, prog)
		if err != nil {
			evalErr = err
			return match
		}
		return fmt.Sprintf("%d", value)
	})
	if evalErr != nil {
		return "", evalErr
	}
	return out, nil
}

func evalExpr(expr string, prog *program.Program) (int64, error) {
	predeclared := starlark.StringDict{}
	for name, alias := range prog.Aliases {
		v, ok := aliasInt(alias.Value)
		if !ok {
			continue
		}
		predeclared[name] = starlark.MakeInt64(v)
	}

	thread := &starlark.Thread{}
	opts := syntax.FileOptions{}
	source := "__result__ = " + expr + "\n"

	globals, err := starlark.ExecFileOptions(&opts, thread, "expr", source, predeclared)
	if err != nil {
		return 0, &ErrSyntax{Line: expr, Err: ErrDirectiveSyntax}
	}

	result, ok := globals["__result__"]
	if !ok {
		return 0, &ErrSyntax{Line: expr, Err: ErrDirectiveSyntax}
	}
	i, ok := result.(starlark.Int)
	if !ok {
		return 0, &ErrSyntax{Line: expr, Err: ErrDirectiveSyntax}
	}
	v, ok := i.Int64()
	if !ok {
		return 0, &ErrSyntax{Line: expr, Err: ErrDirectiveSyntax}
	}
	return v, nil
}

// aliasInt interprets a little-endian alias byte value as an integer, for
// use as a predeclared Starlark name. Only 1- and 2-byte aliases qualify.
func aliasInt(b []byte) (int64, bool) {
	switch len(b) {
	case 1:
		return int64(b[0]), true
	case 2:
		return int64(b[0]) | int64(b[1])<<8, true
	default:
		return 0, false
	}
}

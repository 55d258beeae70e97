package asm

import "strings"

// Directive names a recognized dot-directive.
type Directive int

const (
	DirectiveNone Directive = iota
	DirectiveOrg
	DirectiveByte
	DirectiveWord
	DirectiveText
	DirectiveAlias
	DirectiveSegment
)

var directiveNames = map[string]Directive{
	"org":     DirectiveOrg,
	"byte":    DirectiveByte,
	"word":    DirectiveWord,
	"text":    DirectiveText,
	"alias":   DirectiveAlias,
	"segment": DirectiveSegment,
}

// LookupDirective resolves a directive keyword, case-insensitively and
// with the leading '.' optional.
func LookupDirective(word string) (Directive, bool) {
	word = strings.TrimPrefix(word, ".")
	d, ok := directiveNames[strings.ToLower(word)]
	return d, ok
}

func (d Directive) String() string {
	for name, v := range directiveNames {
		if v == d {
			return name
		}
	}
	return "none"
}

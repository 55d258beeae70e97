// Package token turns a single logical assembly-source line into a stream
// of tokens: identifiers, numeric literals, string literals, punctuation,
// and end-of-line. A ";" outside a string literal starts a comment that
// runs to the end of the line and ends the token stream.
package token

import (
	"iter"
	"strings"

	"github.com/pkg/errors"
)

// Kind classifies a Token.
type Kind int

const (
	Identifier Kind = iota
	Number
	String
	Punct
	EOL
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case Punct:
		return "punct"
	case EOL:
		return "eol"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of a source line.
type Token struct {
	Kind  Kind
	Text  string // identifier name, decoded string contents, or punctuation rune
	Value []byte // decoded numeric value for Kind==Number, little-endian, 1 or 2 bytes
	Label bool   // Kind==Identifier with a trailing ':' consumed
	Col   int    // 0-based column where the token starts
}

const punctuation = ",#()[]:.="

// Tokenize returns a restartable lazy sequence of tokens for line: each
// call to the returned iter.Seq starts scanning from the beginning of
// line again, since it captures only the (unmodified) input string.
//
// The sequence stops after yielding an EOL token, or silently at the
// first lexical error, which it does not report; callers that need the
// error use Collect, which returns it.
func Tokenize(line string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := &scanner{text: line}
		for {
			tok, err := s.next()
			if err != nil {
				return
			}
			if !yield(tok) {
				return
			}
			if tok.Kind == EOL {
				return
			}
		}
	}
}

// Collect tokenizes line fully and returns the tokens (including the
// trailing EOL), or the first lexical error encountered.
func Collect(line string) ([]Token, error) {
	s := &scanner{text: line}
	var out []Token
	for {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == EOL {
			return out, nil
		}
	}
}

type scanner struct {
	text string
	pos  int
}

func (s *scanner) next() (Token, error) {
	s.skipSpace()

	if s.pos >= len(s.text) {
		return Token{Kind: EOL, Col: s.pos}, nil
	}

	c := s.text[s.pos]

	if c == ';' {
		// Comment consumes the rest of the line.
		s.pos = len(s.text)
		return Token{Kind: EOL, Col: s.pos}, nil
	}

	start := s.pos

	if c == '"' {
		return s.scanString(start)
	}

	if strings.IndexByte(punctuation, c) >= 0 {
		s.pos++
		return Token{Kind: Punct, Text: string(c), Col: start}, nil
	}

	if isIdentStart(c) {
		return s.scanIdentifier(start)
	}

	if isNumberStart(c) {
		return s.scanNumber(start)
	}

	return Token{}, errors.WithStack(ErrBadToken(s.text[start : start+1]))
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.text) && (s.text[s.pos] == ' ' || s.text[s.pos] == '\t') {
		s.pos++
	}
}

func (s *scanner) scanString(start int) (Token, error) {
	s.pos++ // opening quote
	var b strings.Builder
	for {
		if s.pos >= len(s.text) {
			return Token{}, errors.WithStack(ErrUnterminatedString(s.text[start:]))
		}
		c := s.text[s.pos]
		if c == '"' {
			s.pos++
			return Token{Kind: String, Text: b.String(), Col: start}, nil
		}
		if c == '\\' && s.pos+1 < len(s.text) {
			s.pos++
			switch s.text[s.pos] {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				b.WriteByte(s.text[s.pos])
			}
			s.pos++
			continue
		}
		b.WriteByte(c)
		s.pos++
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func (s *scanner) scanIdentifier(start int) (Token, error) {
	for s.pos < len(s.text) && isIdentCont(s.text[s.pos]) {
		s.pos++
	}
	name := s.text[start:s.pos]
	label := false
	if s.pos < len(s.text) && s.text[s.pos] == ':' {
		label = true
		s.pos++
	}
	return Token{Kind: Identifier, Text: name, Label: label, Col: start}, nil
}

func isNumberStart(c byte) bool {
	return c == '$' || c == '%' || (c >= '0' && c <= '9')
}

func (s *scanner) scanNumber(start int) (Token, error) {
	// Consume an optional single-character radix prefix ('$' or '%') before
	// scanning the digit run; "0x..." carries its radix marker inside the
	// digit run itself and needs no special first step.
	if s.text[s.pos] == '$' || s.text[s.pos] == '%' {
		s.pos++
	}
	for s.pos < len(s.text) && isNumberCont(s.text[s.pos]) {
		s.pos++
	}
	text := s.text[start:s.pos]
	value, err := DecodeNumber(text)
	if err != nil {
		return Token{}, errors.WithStack(err)
	}
	return Token{Kind: Number, Text: text, Value: value, Col: start}, nil
}

func isNumberCont(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == 'x' || c == 'X'
}

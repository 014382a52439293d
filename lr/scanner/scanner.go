/*
Package scanner defines the tokenizer interface of the parsers of package
lr/lalr.

Two tokenizers are provided. GoTokenizer splits input into Go-like tokens,
using the standard library's text/scanner. Sub-package lexmach adapts
lexmachine, for scanners specific to a grammar.

Every token carries a token type. Tokenizers built for a grammar use its
terminal codes as token types. The Go tokenizer delivers token classes
instead (Ident, Int, String, …, or the character itself for operators), which
Terminals maps onto the terminals of a set of parser tables. End of input is
always signalled with token type EOF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/bqlite/lemonade"
	"github.com/bqlite/lemonade/lr"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemonade.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("lemonade.scanner")
}

// Token classes of the Go tokenizer. They are negative and thus never collide
// with single-character tokens.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is the interface parsers read tokens from.
type Tokenizer interface {
	NextToken() lemonade.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer reads Go-like tokens. Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	Error        func(error) // called for malformed input
	unifyStrings bool        // deliver Char and RawString as String
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

func logError(e error) {
	tracer().Errorf("scanner error: %v", e)
}

// GoTokenizer creates a tokenizer for input, named sourceID in positions of
// error messages.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{Error: logError}
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler replaces the handler for malformed input. The default
// handler logs errors; nil restores it.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		h = logError
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
func (t *DefaultTokenizer) NextToken() lemonade.Token {
	class := t.Scan()
	switch class {
	case scanner.EOF:
		tracer().Debugf("%s: end of input", t.Filename)
	case scanner.Char, scanner.RawString:
		if t.unifyStrings {
			class = scanner.String
		}
	}
	span := lemonade.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)}
	return MakeDefaultToken(lemonade.TokType(class), t.TokenText(), span)
}

// ClassName names the class of a token type of the Go tokenizer, e.g. "Int"
// or "EOF". Single-character tokens are named by their character.
func ClassName(typ lemonade.TokType) string {
	if typ < 0 {
		return scanner.TokenString(rune(typ))
	}
	return string(rune(typ))
}

// Terminals maps tokens of the Go tokenizer to the terminals of a set of
// tables, by name. A token is the terminal spelled like its lexeme; failing
// that, the terminal named like its class (see ClassName). EOF is lr.EOF.
// Tokens matching no terminal map to -1, which parsers reject.
func Terminals(t *lr.Tables) func(lemonade.Token) lr.Symbol {
	byName := make(map[string]lr.Symbol, t.NTerminal)
	for sym := 1; sym < t.NTerminal && sym < len(t.SymbolNames); sym++ {
		byName[t.SymbolNames[sym]] = lr.Symbol(sym)
	}
	return func(token lemonade.Token) lr.Symbol {
		if token.TokType() == EOF {
			return lr.EOF
		}
		if sym, ok := byName[token.Lexeme()]; ok {
			return sym
		}
		if sym, ok := byName[ClassName(token.TokType())]; ok {
			return sym
		}
		tracer().Debugf("no terminal for token %v", token)
		return -1
	}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is the token type of the Go tokenizer and of the lexmachine
// adapter.
type DefaultToken struct {
	kind   lemonade.TokType
	lexeme string
	Val    interface{}
	span   lemonade.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ lemonade.TokType, lexeme string, span lemonade.Span) DefaultToken {
	return DefaultToken{kind: typ, lexeme: lexeme, span: span}
}

func (t DefaultToken) TokType() lemonade.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() lemonade.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}

// --- Options ---------------------------------------------------------------

// Option configures a Go tokenizer.
type Option func(t *DefaultTokenizer)

const (
	optionSkipComments uint = scanner.SkipComments
	optionUnifyStrings uint = 1 << 31
)

// SkipComments drops comments from the token stream. Without it, comments are
// delivered as tokens of class Comment.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings delivers single characters and raw strings as String tokens.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

func (t *DefaultTokenizer) hasmode(m uint) bool {
	if m == optionUnifyStrings {
		return t.unifyStrings
	}
	return t.Mode&m != 0
}

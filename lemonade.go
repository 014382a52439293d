package lemonade

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Scanners feeding an LALR parser use
// the grammar's terminal codes as token types, with the exception of the
// end-of-input token, which is mapped to terminal 0 by the parser.
type TokType int

// TokTypeStringer is a type to be provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a column name in a schema definition:
//
//    TokType = NAME        // terminal code of the grammar
//    Lexeme  = "age"       // lexeme how it appeared in the input stream
//    Value   = nil         // optional, set by the scanner
//    Span    = 7…10        // occurred from byte position 7 in the input stream
//
// Tokens are handed to the parser as the semantic value of a terminal. Semantic
// actions receive them back when reducing a rule containing the terminal.
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input run. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for the zero span.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering both s and other. Null spans
// do not contribute.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	}
	if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

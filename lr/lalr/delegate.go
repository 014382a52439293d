package lalr

import (
	"github.com/bqlite/lemonade"
	"github.com/bqlite/lemonade/lr"
)

// Delegate receives the semantic events of a parse.
//
// Reduce is called for every reduction by rule number, before the right hand
// side is removed from the stack. Its return value becomes the semantic value
// of the left hand side. Returning an error aborts the parse.
//
// Accept and ParseFailed are called once at the end of a parse, after the
// stack has been cleared. SyntaxError is called with the offending token,
// subject to suppression while the parser recovers from a previous error.
type Delegate interface {
	Reduce(rule int, rhs RHS) (interface{}, error)
	Accept()
	ParseFailed()
	SyntaxError(major lr.Symbol, minor interface{})
}

// RHS is a read-only view of the right hand side of a rule being reduced.
type RHS struct {
	entries []StackEntry
}

// Len returns the number of symbols of the right hand side.
func (rhs RHS) Len() int {
	return len(rhs.entries)
}

// At returns an entry by negative offset from the top of the stack: At(-1) is
// the last symbol of the right hand side, At(-Len()) the first.
func (rhs RHS) At(i int) StackEntry {
	return rhs.entries[len(rhs.entries)+i]
}

// Value returns the semantic value of the k-th symbol, counting from 0 in
// source order.
func (rhs RHS) Value(k int) interface{} {
	return rhs.entries[k].Minor
}

// Symbol returns the k-th symbol, counting from 0 in source order.
func (rhs RHS) Symbol(k int) lr.Symbol {
	return rhs.entries[k].Major
}

// Token returns the k-th value as a token, if it is one.
func (rhs RHS) Token(k int) (lemonade.Token, bool) {
	t, ok := rhs.entries[k].Minor.(lemonade.Token)
	return t, ok
}

// Spanner is implemented by semantic values which know their input span.
type Spanner interface {
	Span() lemonade.Span
}

// Span returns the input span covered by all values of the right hand side
// implementing Spanner (tokens do).
func (rhs RHS) Span() lemonade.Span {
	var span lemonade.Span
	for _, e := range rhs.entries {
		if s, ok := e.Minor.(Spanner); ok {
			span = span.Extend(s.Span())
		}
	}
	return span
}

// --- Actions ---------------------------------------------------------------

// Action is a semantic action for a single rule.
type Action func(RHS) (interface{}, error)

// Actions is a Delegate dispatching reductions through a slice indexed by rule
// number. A missing or nil action yields a nil value. Notification hooks are
// optional.
type Actions struct {
	Rules         []Action
	OnAccept      func()
	OnFailure     func()
	OnSyntaxError func(major lr.Symbol, minor interface{})
}

var _ Delegate = (*Actions)(nil)

// Reduce is part of interface Delegate.
func (a *Actions) Reduce(rule int, rhs RHS) (interface{}, error) {
	if rule < 0 || rule >= len(a.Rules) || a.Rules[rule] == nil {
		return nil, nil
	}
	return a.Rules[rule](rhs)
}

// Accept is part of interface Delegate.
func (a *Actions) Accept() {
	if a.OnAccept != nil {
		a.OnAccept()
	}
}

// ParseFailed is part of interface Delegate.
func (a *Actions) ParseFailed() {
	if a.OnFailure != nil {
		a.OnFailure()
	}
}

// SyntaxError is part of interface Delegate.
func (a *Actions) SyntaxError(major lr.Symbol, minor interface{}) {
	if a.OnSyntaxError != nil {
		a.OnSyntaxError(major, minor)
	}
}

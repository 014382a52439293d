package lr

import (
	"fmt"
	"io"

	"github.com/cnf/structhash"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v2"
)

// Symbol is a grammar symbol code. Terminals are numbered first, starting with
// the end-of-input marker, then follow the non-terminals.
type Symbol int

// EOF is the reserved terminal marking the end of input.
const EOF Symbol = 0

// RuleInfo holds the static information about a grammar rule a parser needs
// at runtime: the left hand side symbol and the length of the right hand side.
type RuleInfo struct {
	LHS  Symbol `yaml:"lhs"`
	NRHS int    `yaml:"nrhs"`
}

// Tables is the packed set of parser tables for one grammar.
//
// Tables are produced by a parser generator (or by package pack) and are
// read-only thereafter. See the package documentation for the encoding.
type Tables struct {
	Name      string `yaml:"name,omitempty"`
	NState    int    `yaml:"nstate"`
	NRule     int    `yaml:"nrule"`
	NTerminal int    `yaml:"nterminal"` // number of terminals, including EOF
	NSymbol   int    `yaml:"nsymbol"`   // number of terminals and non-terminals

	Action    []int    `yaml:"action,flow"`
	Lookahead []Symbol `yaml:"lookahead,flow"`

	ShiftOffset  []int `yaml:"shift_offset,flow"`
	ShiftCount   int   `yaml:"shift_count"` // highest state with a shift offset
	ShiftUnused  int   `yaml:"shift_unused"`
	ReduceOffset []int `yaml:"reduce_offset,flow"`
	ReduceCount  int   `yaml:"reduce_count"` // highest state with a reduce offset
	ReduceUnused int   `yaml:"reduce_unused"`

	Default []int      `yaml:"default,flow"`
	Rules   []RuleInfo `yaml:"rules"`

	Fallback    []Symbol `yaml:"fallback,flow,omitempty"` // indexed by terminal, 0 = none
	Wildcard    Symbol   `yaml:"wildcard,omitempty"`      // 0 = none
	ErrorSymbol Symbol   `yaml:"error_symbol,omitempty"`  // 0 = none

	SymbolNames []string `yaml:"symbol_names,flow,omitempty"`
	RuleNames   []string `yaml:"rule_names,omitempty"`
}

// ErrorAction is the action value signalling a syntax error.
func (t *Tables) ErrorAction() int {
	return t.NState + t.NRule
}

// AcceptAction is the action value signalling a complete parse.
func (t *Tables) AcceptAction() int {
	return t.NState + t.NRule + 1
}

// NoAction is the action value of empty slots in the action table.
func (t *Tables) NoAction() int {
	return t.NState + t.NRule + 2
}

// IsShift is true if act denotes a shift (or goto) to a state.
func (t *Tables) IsShift(act int) bool {
	return act >= 0 && act < t.NState
}

// IsReduce is true if act denotes a reduce action.
func (t *Tables) IsReduce(act int) bool {
	return act >= t.NState && act < t.NState+t.NRule
}

// ShiftAction encodes a shift to state.
func (t *Tables) ShiftAction(state int) int {
	return state
}

// ReduceAction encodes a reduction by rule.
func (t *Tables) ReduceAction(rule int) int {
	return t.NState + rule
}

// HasErrorSymbol is true if the grammar declares an error symbol, enabling
// panic-mode error recovery.
func (t *Tables) HasErrorSymbol() bool {
	return t.ErrorSymbol != 0
}

// FallbackFor returns the fallback token for terminal sym, or 0.
func (t *Tables) FallbackFor(sym Symbol) Symbol {
	if sym < 0 || int(sym) >= len(t.Fallback) {
		return 0
	}
	return t.Fallback[sym]
}

// SymbolName returns a printable name for a symbol.
func (t *Tables) SymbolName(sym Symbol) string {
	if sym >= 0 && int(sym) < len(t.SymbolNames) {
		return t.SymbolNames[sym]
	}
	return fmt.Sprintf("#%d", sym)
}

// RuleName returns a printable form of a rule.
func (t *Tables) RuleName(rule int) string {
	if rule >= 0 && rule < len(t.RuleNames) {
		return t.RuleNames[rule]
	}
	return fmt.Sprintf("rule %d", rule)
}

// ActionString is a short helper to stringify an action table entry.
func (t *Tables) ActionString(act int) string {
	switch {
	case t.IsShift(act):
		return fmt.Sprintf("<shift %d>", act)
	case t.IsReduce(act):
		return fmt.Sprintf("<reduce %d>", act-t.NState)
	case act == t.ErrorAction():
		return "<error>"
	case act == t.AcceptAction():
		return "<accept>"
	case act == t.NoAction():
		return "<none>"
	}
	return fmt.Sprintf("<invalid %d>", act)
}

// --- Validation ------------------------------------------------------------

// Validate checks the structural invariants of a set of tables. It does not
// check that the tables correctly recognize any particular grammar, but that
// a parser may use them without indexing out of bounds. All problems found are
// reported together.
func (t *Tables) Validate() error {
	var result *multierror.Error
	fail := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf(format, args...))
	}
	if t.NState <= 0 {
		fail("tables have no states")
	}
	if t.NRule != len(t.Rules) {
		fail("NRule is %d, but %d rules present", t.NRule, len(t.Rules))
	}
	if t.NTerminal <= 0 || t.NTerminal > t.NSymbol {
		fail("NTerminal=%d out of range for NSymbol=%d", t.NTerminal, t.NSymbol)
	}
	if len(t.Action) != len(t.Lookahead) {
		fail("action table has %d entries, lookahead table has %d", len(t.Action), len(t.Lookahead))
	}
	if len(t.Default) != t.NState {
		fail("default table has %d entries for %d states", len(t.Default), t.NState)
	}
	for s, d := range t.Default {
		if d < 0 || d > t.AcceptAction() {
			fail("default action %d of state %d out of range", d, s)
		}
	}
	for i, a := range t.Action {
		if a < 0 || a > t.NoAction() {
			fail("action[%d] = %d out of range", i, a)
		}
	}
	for i, la := range t.Lookahead {
		if la < 0 || int(la) > t.NSymbol {
			fail("lookahead[%d] = %d out of range", i, la)
		}
	}
	checkOffsets := func(kind string, offsets []int, count, unused int) {
		if count != len(offsets)-1 {
			fail("%s count is %d, but %d offsets present", kind, count, len(offsets))
		}
		if count >= t.NState {
			fail("%s count %d exceeds number of states", kind, count)
		}
		for s, o := range offsets {
			if o == unused {
				continue
			}
			if o < -t.NSymbol || o >= len(t.Action) {
				fail("%s offset %d of state %d does not index the action table", kind, o, s)
			}
		}
	}
	checkOffsets("shift", t.ShiftOffset, t.ShiftCount, t.ShiftUnused)
	checkOffsets("reduce", t.ReduceOffset, t.ReduceCount, t.ReduceUnused)
	for r, rule := range t.Rules {
		if int(rule.LHS) < t.NTerminal || int(rule.LHS) >= t.NSymbol {
			fail("rule %d: LHS %d is not a non-terminal", r, rule.LHS)
		}
		if rule.NRHS < 0 {
			fail("rule %d: negative RHS length", r)
		}
	}
	if len(t.Fallback) > t.NTerminal {
		fail("fallback table longer than number of terminals")
	}
	for sym, fb := range t.Fallback {
		if fb < 0 || int(fb) >= t.NTerminal {
			fail("fallback of %d is not a terminal: %d", sym, fb)
		}
	}
	if cyc := t.fallbackCycle(); cyc >= 0 {
		fail("fallback chain of terminal %d is cyclic", cyc)
	}
	if t.Wildcard < 0 || int(t.Wildcard) >= t.NTerminal {
		fail("wildcard %d is not a terminal", t.Wildcard)
	}
	if t.ErrorSymbol < 0 || int(t.ErrorSymbol) >= t.NSymbol {
		fail("error symbol %d out of range", t.ErrorSymbol)
	}
	if len(t.SymbolNames) != 0 && len(t.SymbolNames) != t.NSymbol {
		fail("%d symbol names for %d symbols", len(t.SymbolNames), t.NSymbol)
	}
	if len(t.RuleNames) != 0 && len(t.RuleNames) != t.NRule {
		fail("%d rule names for %d rules", len(t.RuleNames), t.NRule)
	}
	if err := result.ErrorOrNil(); err != nil {
		tracer().Errorf("tables %q invalid: %v", t.Name, err)
		return err
	}
	return nil
}

// fallbackCycle returns a terminal whose fallback chain loops, or -1.
func (t *Tables) fallbackCycle() int {
	for start := range t.Fallback {
		sym := Symbol(start)
		for steps := 0; sym != 0; steps++ {
			if steps > len(t.Fallback) {
				return start
			}
			sym = t.FallbackFor(sym)
		}
	}
	return -1
}

// --- Identity and persistence ----------------------------------------------

// Fingerprint returns a hash over the complete table content. Two table sets
// with equal fingerprints drive parsers identically.
func (t *Tables) Fingerprint() (string, error) {
	return structhash.Hash(t, 1)
}

// ReadTables reads tables in YAML format and validates them.
func ReadTables(r io.Reader) (*Tables, error) {
	t := &Tables{}
	if err := yaml.NewDecoder(r).Decode(t); err != nil {
		return nil, fmt.Errorf("cannot decode parser tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("read tables %q: %d states, %d rules, %d action slots",
		t.Name, t.NState, t.NRule, len(t.Action))
	return t, nil
}

// WriteYAML writes tables in YAML format, suitable for ReadTables.
func (t *Tables) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

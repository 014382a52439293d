package pack

import (
	"fmt"
	"strings"

	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/sparse"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// EOFName is the name of the implicit end-of-input terminal, code 0.
const EOFName = "$"

// Builder collects the symbols, rules and per-state actions of a grammar.
// Symbols are referred to by name; codes are assigned when the tables are
// built: "$" is 0, then the terminals in order of declaration, then the
// non-terminals, then the error symbol.
//
// Builder methods do not return errors. Problems are collected and reported
// by Tables().
type Builder struct {
	name      string
	terminals []string
	nonterms  []string
	errsym    string
	wildcard  string
	fallback  [][2]string
	rules     []ruleDef
	states    []*StateBuilder
	symbols   map[string]lr.Symbol
	conflicts []string
	err       *multierror.Error
}

type ruleDef struct {
	lhs string
	rhs []string
}

// NewBuilder creates a builder for a grammar.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Terminals declares terminals. They are numbered in order, starting at 1.
func (b *Builder) Terminals(names ...string) *Builder {
	b.terminals = append(b.terminals, names...)
	return b
}

// Nonterminals declares non-terminal symbols.
func (b *Builder) Nonterminals(names ...string) *Builder {
	b.nonterms = append(b.nonterms, names...)
	return b
}

// ErrorSymbol declares the error symbol used for error recovery. It is
// numbered after all other non-terminals.
func (b *Builder) ErrorSymbol(name string) *Builder {
	b.errsym = name
	return b
}

// Wildcard declares a terminal as the wildcard token.
func (b *Builder) Wildcard(name string) *Builder {
	b.wildcard = name
	return b
}

// Fallback declares terminal to to be tried whenever terminal from has no
// action in a state.
func (b *Builder) Fallback(from, to string) *Builder {
	b.fallback = append(b.fallback, [2]string{from, to})
	return b
}

// Rule adds a grammar rule and returns its rule number.
func (b *Builder) Rule(lhs string, rhs ...string) int {
	b.rules = append(b.rules, ruleDef{lhs: lhs, rhs: rhs})
	return len(b.rules) - 1
}

// State returns the builder for state n, creating states up to n as needed.
func (b *Builder) State(n int) *StateBuilder {
	for len(b.states) <= n {
		b.states = append(b.states, &StateBuilder{id: len(b.states), def: defaultError})
	}
	return b.states[n]
}

// Conflicts lists the cell conflicts resolved during the last call to Tables().
func (b *Builder) Conflicts() []string {
	return b.conflicts
}

func (b *Builder) errorf(format string, args ...interface{}) {
	b.err = multierror.Append(b.err, errors.Errorf(format, args...))
}

// --- States ----------------------------------------------------------------

// Internal action encoding while building: shift/goto n is n, accept is -1,
// reduce by rule r is -2-r.
const (
	encAccept    = -1
	defaultError = -1 << 20
)

func encReduce(rule int) int32 { return int32(-2 - rule) }

type cell struct {
	sym string
	act int32
	op  string
}

// StateBuilder collects the actions of a single state.
type StateBuilder struct {
	id    int
	cells []cell
	def   int // encoded default action, defaultError if none
}

// Shift adds a shift on terminal term to state to.
func (s *StateBuilder) Shift(term string, to int) *StateBuilder {
	s.cells = append(s.cells, cell{sym: term, act: int32(to), op: "shift"})
	return s
}

// Reduce adds a reduction by rule on each of the given lookahead terminals.
func (s *StateBuilder) Reduce(rule int, on ...string) *StateBuilder {
	for _, term := range on {
		s.cells = append(s.cells, cell{sym: term, act: encReduce(rule), op: "reduce"})
	}
	return s
}

// Goto adds the transition on non-terminal nt to state to.
func (s *StateBuilder) Goto(nt string, to int) *StateBuilder {
	s.cells = append(s.cells, cell{sym: nt, act: int32(to), op: "goto"})
	return s
}

// Accept makes the goto on the start symbol accept the input.
func (s *StateBuilder) Accept(start string) *StateBuilder {
	s.cells = append(s.cells, cell{sym: start, act: encAccept, op: "accept"})
	return s
}

// DefaultReduce sets the action taken for lookaheads without an explicit
// action. Without a default reduce a state reports a syntax error.
func (s *StateBuilder) DefaultReduce(rule int) *StateBuilder {
	s.def = int(encReduce(rule))
	return s
}

// --- Building --------------------------------------------------------------

func (b *Builder) assignSymbols() {
	b.symbols = make(map[string]lr.Symbol)
	add := func(name string) {
		if _, dup := b.symbols[name]; dup {
			b.errorf("symbol %q declared twice", name)
			return
		}
		b.symbols[name] = lr.Symbol(len(b.symbols))
	}
	add(EOFName)
	for _, t := range b.terminals {
		add(t)
	}
	for _, nt := range b.nonterms {
		add(nt)
	}
	if b.errsym != "" {
		add(b.errsym)
	}
}

func (b *Builder) nterminal() int {
	return len(b.terminals) + 1
}

func (b *Builder) lookup(name string, wantTerminal bool, ctx string) (lr.Symbol, bool) {
	sym, ok := b.symbols[name]
	if !ok {
		b.errorf("%s: unknown symbol %q", ctx, name)
		return 0, false
	}
	if isT := int(sym) < b.nterminal(); isT != wantTerminal {
		kind := "non-terminal"
		if wantTerminal {
			kind = "terminal"
		}
		b.errorf("%s: %q is not a %s", ctx, name, kind)
		return 0, false
	}
	return sym, true
}

func (b *Builder) symbolNames() []string {
	names := make([]string, len(b.symbols))
	for name, sym := range b.symbols {
		names[sym] = name
	}
	return names
}

// Tables checks everything collected so far and packs it into parser tables.
func (b *Builder) Tables() (*lr.Tables, error) {
	b.err = nil
	b.conflicts = nil
	b.assignSymbols()
	t := &lr.Tables{
		Name:      b.name,
		NState:    len(b.states),
		NRule:     len(b.rules),
		NTerminal: b.nterminal(),
		NSymbol:   len(b.symbols),
	}
	t.SymbolNames = b.symbolNames()
	b.buildRules(t)
	b.buildSpecials(t)
	m := b.buildMatrix()
	if b.err != nil {
		return nil, b.err.ErrorOrNil()
	}
	t.Default = make([]int, t.NState)
	for _, s := range b.states {
		t.Default[s.id] = decode(t, s.def)
	}
	packMatrix(t, m)
	if err := t.Validate(); err != nil {
		return nil, errors.Wrapf(err, "packed tables for %q invalid", b.name)
	}
	tracer().Infof("packed %q: %d states, %d rules, %d action slots, %d conflicts",
		b.name, t.NState, t.NRule, len(t.Action), len(b.conflicts))
	return t, nil
}

func (b *Builder) buildRules(t *lr.Tables) {
	t.Rules = make([]lr.RuleInfo, len(b.rules))
	t.RuleNames = make([]string, len(b.rules))
	for r, def := range b.rules {
		ctx := fmt.Sprintf("rule %d", r)
		lhs, _ := b.lookup(def.lhs, false, ctx)
		for _, sym := range def.rhs {
			if _, ok := b.symbols[sym]; !ok {
				b.errorf("%s: unknown symbol %q", ctx, sym)
			}
		}
		t.Rules[r] = lr.RuleInfo{LHS: lhs, NRHS: len(def.rhs)}
		t.RuleNames[r] = strings.TrimSpace(def.lhs + " ::= " + strings.Join(def.rhs, " "))
	}
}

func (b *Builder) buildSpecials(t *lr.Tables) {
	if b.errsym != "" {
		t.ErrorSymbol = b.symbols[b.errsym]
	}
	if b.wildcard != "" {
		t.Wildcard, _ = b.lookup(b.wildcard, true, "wildcard")
	}
	if len(b.fallback) > 0 {
		t.Fallback = make([]lr.Symbol, t.NTerminal)
		for _, fb := range b.fallback {
			from, ok1 := b.lookup(fb[0], true, "fallback")
			to, ok2 := b.lookup(fb[1], true, "fallback")
			if ok1 && ok2 {
				t.Fallback[from] = to
			}
		}
	}
}

// buildMatrix collects all cells in a sparse matrix with rows = states and
// columns = symbols, resolving cells assigned more than once.
func (b *Builder) buildMatrix() *sparse.IntMatrix {
	m := sparse.NewIntMatrix(sparse.DefaultNullValue)
	for _, s := range b.states {
		for _, c := range s.cells {
			ctx := fmt.Sprintf("state %d: %s", s.id, c.op)
			sym, ok := b.lookup(c.sym, c.op == "shift" || c.op == "reduce", ctx)
			if !ok {
				continue
			}
			switch c.op {
			case "shift", "goto":
				if int(c.act) < 0 || int(c.act) >= len(b.states) {
					b.errorf("%s to unknown state %d", ctx, c.act)
					continue
				}
			case "reduce":
				if r := -2 - int(c.act); r < 0 || r >= len(b.rules) {
					b.errorf("%s by unknown rule %d", ctx, r)
					continue
				}
			}
			b.put(m, s.id, sym, c.act)
		}
		if s.def != defaultError {
			if r := -2 - s.def; r >= len(b.rules) {
				b.errorf("state %d: default reduce by unknown rule %d", s.id, r)
			}
		}
	}
	return m
}

// put enters an action into the matrix. Shift beats reduce and a lower rule
// number beats a higher one. The losing action is shadowed.
func (b *Builder) put(m *sparse.IntMatrix, state int, sym lr.Symbol, act int32) {
	old := m.Value(state, int(sym))
	if old == m.NullValue() || old == act {
		m.Set(state, int(sym), act)
		return
	}
	switch {
	case old == encAccept || act == encAccept:
		b.errorf("state %d: accept conflicts with another action on %s", state, b.symbolNames()[sym])
		return
	case old >= 0 && act >= 0:
		b.errorf("state %d: conflicting transitions on %s to %d and %d",
			state, b.symbolNames()[sym], old, act)
		return
	case old >= 0 || old > act: // old is shift or reduce by lower rule
		m.Shadow(state, int(sym), act)
	default:
		m.Set(state, int(sym), act).Shadow(state, int(sym), old)
	}
	win, lose := m.Values(state, int(sym))
	b.conflicts = append(b.conflicts, fmt.Sprintf("state %d on %s: %s beats %s",
		state, b.symbolNames()[sym], encString(win), encString(lose)))
}

func encString(act int32) string {
	switch {
	case act >= 0:
		return fmt.Sprintf("shift %d", act)
	case act == encAccept:
		return "accept"
	}
	return fmt.Sprintf("reduce %d", -2-act)
}

// decode translates an encoded action into the numbering of t.
func decode(t *lr.Tables, act int) int {
	switch {
	case act == defaultError:
		return t.ErrorAction()
	case act == encAccept:
		return t.AcceptAction()
	case act >= 0:
		return t.ShiftAction(act)
	}
	return t.ReduceAction(-2 - act)
}

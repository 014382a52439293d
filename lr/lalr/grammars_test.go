package lalr

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/pack"
	"github.com/stretchr/testify/require"
)

// Test grammars, with hand-computed LALR(1) states. Rule numbers and state
// numbers are referred to by the tests.

// sabGrammar is
//
//     0  S ::= A B
//     1  A ::= a
//     2  B ::= b
//
func sabGrammar(t *testing.T, withErrorSymbol bool) *lr.Tables {
	b := pack.NewBuilder("sab")
	b.Terminals("a", "b")
	b.Nonterminals("S", "A", "B")
	if withErrorSymbol {
		b.ErrorSymbol("error")
	}
	r0 := b.Rule("S", "A", "B")
	r1 := b.Rule("A", "a")
	r2 := b.Rule("B", "b")
	b.State(0).Shift("a", 1).Goto("A", 2).Accept("S")
	b.State(1).DefaultReduce(r1)
	b.State(2).Shift("b", 3).Goto("B", 4)
	b.State(3).Reduce(r2, "$")
	b.State(4).Reduce(r0, "$")
	tables, err := b.Tables()
	require.NoError(t, err)
	return tables
}

// exprGrammar is
//
//     0  prog ::= E
//     1  E    ::= E PLUS T
//     2  E    ::= T
//     3  T    ::= NUM
//
func exprGrammar(t *testing.T) *lr.Tables {
	b := pack.NewBuilder("expr")
	b.Terminals("PLUS", "NUM")
	b.Nonterminals("prog", "E", "T")
	r0 := b.Rule("prog", "E")
	r1 := b.Rule("E", "E", "PLUS", "T")
	r2 := b.Rule("E", "T")
	r3 := b.Rule("T", "NUM")
	b.State(0).Shift("NUM", 3).Goto("E", 1).Goto("T", 2).Accept("prog")
	b.State(1).Reduce(r0, "$").Shift("PLUS", 4)
	b.State(2).DefaultReduce(r2)
	b.State(3).DefaultReduce(r3)
	b.State(4).Shift("NUM", 3).Goto("T", 5)
	b.State(5).DefaultReduce(r1)
	tables, err := b.Tables()
	require.NoError(t, err)
	return tables
}

// listGrammar declares an error symbol:
//
//     0  list  ::= items
//     1  items ::= items item
//     2  items ::= item
//     3  item  ::= X SEMI
//     4  item  ::= error SEMI
//
func listGrammar(t *testing.T) *lr.Tables {
	b := pack.NewBuilder("list")
	b.Terminals("X", "SEMI")
	b.Nonterminals("list", "items", "item")
	b.ErrorSymbol("error")
	r0 := b.Rule("list", "items")
	r1 := b.Rule("items", "items", "item")
	r2 := b.Rule("items", "item")
	r3 := b.Rule("item", "X", "SEMI")
	r4 := b.Rule("item", "error", "SEMI")
	b.State(0).Shift("X", 3).Goto("error", 4).Goto("items", 1).Goto("item", 2).Accept("list")
	b.State(1).Reduce(r0, "$").Shift("X", 3).Goto("error", 4).Goto("item", 5)
	b.State(2).DefaultReduce(r2)
	b.State(3).Shift("SEMI", 6)
	b.State(4).Shift("SEMI", 7)
	b.State(5).DefaultReduce(r1)
	b.State(6).DefaultReduce(r3)
	b.State(7).DefaultReduce(r4)
	tables, err := b.Tables()
	require.NoError(t, err)
	return tables
}

// subsGrammar has fallback and wildcard tokens. KW falls back to ID, KW2 to
// KW. ANY is the wildcard.
//
//     0  stmt ::= ID ANY
//     1  stmt ::= ID ID
//
func subsGrammar(t *testing.T) *lr.Tables {
	b := pack.NewBuilder("subs")
	b.Terminals("ID", "KW", "KW2", "NUM", "ANY")
	b.Nonterminals("stmt")
	b.Fallback("KW", "ID").Fallback("KW2", "KW")
	b.Wildcard("ANY")
	r0 := b.Rule("stmt", "ID", "ANY")
	r1 := b.Rule("stmt", "ID", "ID")
	b.State(0).Shift("ID", 1).Accept("stmt")
	b.State(1).Shift("ID", 2).Shift("ANY", 3)
	b.State(2).Reduce(r1, "$")
	b.State(3).Reduce(r0, "$")
	tables, err := b.Tables()
	require.NoError(t, err)
	return tables
}

// --- Helpers ---------------------------------------------------------------

// recorder is a delegate recording every event it receives.
type recorder struct {
	tables *lr.Tables
	events []string
	syntax int
}

func (r *recorder) Reduce(rule int, rhs RHS) (interface{}, error) {
	r.events = append(r.events, fmt.Sprintf("r%d", rule))
	return nil, nil
}

func (r *recorder) Accept() {
	r.events = append(r.events, "accept")
}

func (r *recorder) ParseFailed() {
	r.events = append(r.events, "failed")
}

func (r *recorder) SyntaxError(major lr.Symbol, minor interface{}) {
	r.syntax++
	r.events = append(r.events, "syntax error at "+r.tables.SymbolName(major))
}

func symbol(t *testing.T, tables *lr.Tables, name string) lr.Symbol {
	for i, n := range tables.SymbolNames {
		if n == name {
			return lr.Symbol(i)
		}
	}
	t.Fatalf("no symbol %q", name)
	return 0
}

// feed feeds space separated symbol names and returns the last error.
func feed(t *testing.T, p *Parser, input string) error {
	var err error
	for _, name := range strings.Fields(input) {
		if err = p.Feed(symbol(t, p.tables, name), name); err != nil {
			break
		}
	}
	return err
}

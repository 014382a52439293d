package schema

import (
	"strings"
	"sync"

	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/pack"
	"github.com/pkg/errors"
)

// Terminal symbols of the schema language. Scanners for the language deliver
// these as token types.
const (
	SEMI lr.Symbol = iota + 1
	COMMA
	NAME
	IGNORE
	MODEL
	AS
)

// Rules of the grammar, numbered as in GrammarSpec.
const (
	ruleSchema       = iota // schema   ::= clauses
	ruleClausesFirst        // clauses  ::= clause
	ruleClausesNext         // clauses  ::= clauses SEMI clause
	ruleIgnore              // clause   ::= IGNORE names
	ruleModel               // clause   ::= MODEL names AS stattype
	ruleError               // clause   ::= error
	ruleNamesFirst          // names    ::= NAME
	ruleNamesNext           // names    ::= names COMMA NAME
	ruleStatType            // stattype ::= NAME
	ruleEmpty               // clause   ::=
	ruleCount
)

// GrammarSpec is the LALR(1) state description of the schema language.
// Keywords fall back to NAME, so they may be used as column names. A malformed
// clause is replaced by the error symbol, resynchronizing at the next
// semicolon.
const GrammarSpec = `
name: schema
terminals: [SEMI, COMMA, NAME, IGNORE, MODEL, AS]
nonterminals: [schema, clauses, clause, names, stattype]
error: error
fallback: { IGNORE: NAME, MODEL: NAME, AS: NAME }
rules:
  - schema ::= clauses
  - clauses ::= clause
  - clauses ::= clauses SEMI clause
  - clause ::= IGNORE names
  - clause ::= MODEL names AS stattype
  - clause ::= error
  - names ::= NAME
  - names ::= names COMMA NAME
  - stattype ::= NAME
  - clause ::=
states:
  - shift: { IGNORE: 3, MODEL: 4 }           # 0
    reduce: { $: 9, SEMI: 9 }
    goto: { clauses: 1, clause: 2, error: 5 }
    accept: schema
  - shift: { SEMI: 6 }                       # 1
    reduce: { $: 0 }
  - default: reduce 1                        # 2
  - shift: { NAME: 7 }                       # 3
    goto: { names: 8 }
  - shift: { NAME: 7 }                       # 4
    goto: { names: 9 }
  - reduce: { $: 5, SEMI: 5 }                # 5
  - shift: { IGNORE: 3, MODEL: 4 }           # 6
    reduce: { $: 9, SEMI: 9 }
    goto: { clause: 10, error: 5 }
  - default: reduce 6                        # 7
  - shift: { COMMA: 11 }                     # 8
    default: reduce 3
  - shift: { AS: 12, COMMA: 11 }             # 9
  - default: reduce 2                        # 10
  - shift: { NAME: 13 }                      # 11
  - shift: { NAME: 14 }                      # 12
    goto: { stattype: 15 }
  - default: reduce 7                        # 13
  - default: reduce 8                        # 14
  - default: reduce 4                        # 15
`

var grammar struct {
	once   sync.Once
	tables *lr.Tables
	err    error
}

// Tables returns the parser tables of the schema language. They are packed on
// first use and shared afterwards.
func Tables() (*lr.Tables, error) {
	grammar.once.Do(func() {
		grammar.tables, grammar.err = buildTables()
	})
	return grammar.tables, grammar.err
}

func buildTables() (*lr.Tables, error) {
	spec, err := pack.ReadSpec(strings.NewReader(GrammarSpec))
	if err != nil {
		return nil, err
	}
	b, err := spec.Builder()
	if err != nil {
		return nil, err
	}
	tables, err := b.Tables()
	if err != nil {
		return nil, errors.Wrap(err, "schema grammar")
	}
	if tables.NRule != ruleCount {
		return nil, errors.Errorf("schema grammar has %d rules, expected %d", tables.NRule, ruleCount)
	}
	for _, c := range b.Conflicts() {
		tracer().Errorf("schema grammar: %s", c)
	}
	tracer().Debugf("schema tables packed into %d action slots", len(tables.Action))
	return tables, nil
}

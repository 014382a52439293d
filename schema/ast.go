package schema

import (
	"fmt"
	"strings"

	"github.com/bqlite/lemonade"
)

// Schema is the result of parsing a schema definition.
type Schema struct {
	Clauses []Clause     // in input order, without empty or malformed clauses
	Columns *ColumnTable // every column mentioned
}

// Clause is either an *Ignore or a *Model.
type Clause interface {
	Span() lemonade.Span
	String() string
}

// Ignore excludes columns from modelling.
type Ignore struct {
	Columns []string
	Where   lemonade.Span
}

// Span is part of interface Clause.
func (c *Ignore) Span() lemonade.Span {
	return c.Where
}

func (c *Ignore) String() string {
	return "IGNORE " + strings.Join(quoteAll(c.Columns), ", ")
}

// Model assigns a statistical type to columns.
type Model struct {
	Columns  []string
	StatType string
	Where    lemonade.Span
}

// Span is part of interface Clause.
func (c *Model) Span() lemonade.Span {
	return c.Where
}

func (c *Model) String() string {
	return fmt.Sprintf("MODEL %s AS %s", strings.Join(quoteAll(c.Columns), ", "), c.StatType)
}

func (s *Schema) String() string {
	clauses := make([]string, len(s.Clauses))
	for i, c := range s.Clauses {
		clauses[i] = c.String()
	}
	return strings.Join(clauses, "; ")
}

// StatTypes lists the statistical types a column may be modelled as.
var StatTypes = []string{
	"numerical",
	"nominal",
	"categorical",
	"cyclic",
	"counts",
	"magnitude",
}

func isStatType(s string) bool {
	for _, st := range StatTypes {
		if s == st {
			return true
		}
	}
	return false
}

// names are the values of non-terminal 'names'.
type names struct {
	list  []string
	spans []lemonade.Span
}

func (n *names) Span() lemonade.Span {
	return n.spans[0].Extend(n.spans[len(n.spans)-1])
}

// quoteAll quotes column names which would not scan as a plain NAME.
func quoteAll(cols []string) []string {
	q := make([]string, len(cols))
	for i, c := range cols {
		q[i] = c
		if !isPlainName(c) {
			q[i] = `"` + c + `"`
		}
	}
	return q
}

func isPlainName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

package schema

import (
	"fmt"
	"strings"

	"github.com/bqlite/lemonade"
	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/lalr"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// SyntaxError is an unexpected token in the input. Lexeme is empty for the
// end of input.
type SyntaxError struct {
	Lexeme string
	Where  lemonade.Span
}

func (e *SyntaxError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("syntax error at %v: unexpected end of input", e.Where)
	}
	return fmt.Sprintf("syntax error at %v: unexpected %q", e.Where, e.Lexeme)
}

// SemanticError is raised by a semantic action. It aborts the parse.
type SemanticError struct {
	Msg   string
	Where lemonade.Span
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%s at %v", e.Msg, e.Where)
}

// Parse parses a schema definition. Options are handed to the parser, e.g. for
// tracing.
//
// If the input contained syntax errors the parser recovered from, Parse
// returns the schema without the malformed clauses, together with an error
// listing every syntax error. If the parse failed, the schema is nil. A
// semantic error is returned as *SemanticError.
func Parse(input string, opts ...lalr.Option) (*Schema, error) {
	tables, err := Tables()
	if err != nil {
		return nil, err
	}
	scan, err := NewScanner(input)
	if err != nil {
		return nil, errors.Wrap(err, "cannot scan schema")
	}
	b := &builder{columns: NewColumnTable()}
	scan.SetErrorHandler(b.scanError)
	p := lalr.NewParser(tables, b.actions(), opts...)
	accepted, err := p.Parse(scan)
	var aerr *lalr.ActionError
	if errors.As(err, &aerr) {
		tracer().Infof("schema rejected: %v", aerr.Err)
		return nil, aerr.Err
	}
	if !accepted {
		b.errs = multierror.Append(b.errs, lalr.ErrParseFailed)
		return nil, b.errs
	}
	tracer().Debugf("schema with %d clauses, %d columns", len(b.schema.Clauses), b.columns.Size())
	return b.schema, b.errs.ErrorOrNil()
}

// builder collects the results of the semantic actions of a single parse.
type builder struct {
	columns *ColumnTable
	schema  *Schema
	errs    *multierror.Error
}

func (b *builder) actions() *lalr.Actions {
	rules := make([]lalr.Action, ruleCount)
	rules[ruleSchema] = b.schemaDone
	rules[ruleClausesFirst] = clausesFirst
	rules[ruleClausesNext] = clausesNext
	rules[ruleIgnore] = b.ignore
	rules[ruleModel] = b.model
	rules[ruleNamesFirst] = namesFirst
	rules[ruleNamesNext] = namesNext
	rules[ruleStatType] = statType
	// ruleError and ruleEmpty yield no clause
	return &lalr.Actions{
		Rules:         rules,
		OnSyntaxError: b.syntaxError,
	}
}

func (b *builder) schemaDone(rhs lalr.RHS) (interface{}, error) {
	clauses, _ := rhs.Value(0).([]Clause)
	b.schema = &Schema{Clauses: clauses, Columns: b.columns}
	return b.schema, nil
}

func clausesFirst(rhs lalr.RHS) (interface{}, error) {
	if c, ok := rhs.Value(0).(Clause); ok {
		return []Clause{c}, nil
	}
	return []Clause(nil), nil
}

func clausesNext(rhs lalr.RHS) (interface{}, error) {
	clauses, _ := rhs.Value(0).([]Clause)
	if c, ok := rhs.Value(2).(Clause); ok {
		clauses = append(clauses, c)
	}
	return clauses, nil
}

func (b *builder) ignore(rhs lalr.RHS) (interface{}, error) {
	cols := rhs.Value(1).(*names)
	if err := b.define(cols, Ignored, ""); err != nil {
		return nil, err
	}
	return &Ignore{Columns: cols.list, Where: rhs.Span()}, nil
}

func (b *builder) model(rhs lalr.RHS) (interface{}, error) {
	cols := rhs.Value(1).(*names)
	st := rhs.Value(3).(string)
	if err := b.define(cols, Modelled, st); err != nil {
		return nil, err
	}
	return &Model{Columns: cols.list, StatType: st, Where: rhs.Span()}, nil
}

// define enters columns into the column table. A column may be mentioned only
// once per schema.
func (b *builder) define(cols *names, role Role, statType string) error {
	for i, name := range cols.list {
		col, found := b.columns.ResolveOrDefineColumn(name)
		if found {
			return &SemanticError{
				Msg:   fmt.Sprintf("column %q mentioned twice", name),
				Where: cols.spans[i],
			}
		}
		col.WithRole(role).StatType = statType
		col.Where = cols.spans[i]
	}
	return nil
}

func namesFirst(rhs lalr.RHS) (interface{}, error) {
	tok, _ := rhs.Token(0)
	return &names{
		list:  []string{tokenName(tok)},
		spans: []lemonade.Span{tok.Span()},
	}, nil
}

func namesNext(rhs lalr.RHS) (interface{}, error) {
	n := rhs.Value(0).(*names)
	tok, _ := rhs.Token(2)
	n.list = append(n.list, tokenName(tok))
	n.spans = append(n.spans, tok.Span())
	return n, nil
}

func statType(rhs lalr.RHS) (interface{}, error) {
	tok, _ := rhs.Token(0)
	st := strings.ToLower(tokenName(tok))
	if !isStatType(st) {
		return nil, &SemanticError{
			Msg:   fmt.Sprintf("unknown statistical type %q", tokenName(tok)),
			Where: tok.Span(),
		}
	}
	return st, nil
}

// tokenName is the column name a token stands for. Quoted names carry their
// unquoted name as value.
func tokenName(tok lemonade.Token) string {
	if s, ok := tok.Value().(string); ok {
		return s
	}
	return tok.Lexeme()
}

func (b *builder) syntaxError(major lr.Symbol, minor interface{}) {
	serr := &SyntaxError{}
	if tok, ok := minor.(lemonade.Token); ok {
		serr.Lexeme = tok.Lexeme()
		serr.Where = tok.Span()
	}
	tracer().Debugf("schema: %v", serr)
	b.errs = multierror.Append(b.errs, serr)
}

func (b *builder) scanError(err error) {
	tracer().Debugf("schema: %v", err)
	b.errs = multierror.Append(b.errs, errors.Wrap(err, "scanner error"))
}

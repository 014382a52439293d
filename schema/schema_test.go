package schema

import (
	"bytes"
	"sync"
	"testing"

	"github.com/bqlite/lemonade"
	"github.com/bqlite/lemonade/lr/lalr"
	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	tables, err := Tables()
	require.NoError(t, err)
	assert.Equal(t, 16, tables.NState)
	assert.Equal(t, ruleCount, tables.NRule)
	assert.Equal(t, "NAME", tables.SymbolName(NAME))
	assert.Equal(t, "AS", tables.SymbolName(AS))
	assert.Equal(t, NAME, tables.FallbackFor(MODEL))
	assert.True(t, tables.HasErrorSymbol())
	again, _ := Tables()
	assert.True(t, tables == again, "tables should be built once")
}

func TestScanner(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	scan, err := NewScanner(`Ignore "home town", x1; -- no more`)
	require.NoError(t, err)
	var types []lemonade.TokType
	var values []interface{}
	for {
		tok := scan.NextToken()
		if tok.Lexeme() == "" {
			break
		}
		types = append(types, tok.TokType())
		values = append(values, tok.Value())
	}
	assert.Equal(t, []lemonade.TokType{
		lemonade.TokType(IGNORE),
		lemonade.TokType(NAME),
		lemonade.TokType(COMMA),
		lemonade.TokType(NAME),
		lemonade.TokType(SEMI),
	}, types)
	assert.Equal(t, "home town", values[1])
	assert.Equal(t, "x1", values[3])
}

func TestParseSchema(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	input := `IGNORE id, name;
	MODEL age, income AS numerical;
	model "home town" as Categorical  -- birthplace
	`
	s, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, s.Clauses, 3)
	assert.Equal(t, &Ignore{Columns: []string{"id", "name"}, Where: lemonade.Span{0, 15}}, s.Clauses[0])
	model := s.Clauses[2].(*Model)
	assert.Equal(t, []string{"home town"}, model.Columns)
	assert.Equal(t, "categorical", model.StatType)
	assert.Equal(t, 5, s.Columns.Size())
	assert.Equal(t, []string{"id", "name"}, s.Columns.WithRole(Ignored))
	assert.Equal(t, []string{"age", "home town", "income"}, s.Columns.WithRole(Modelled))
	assert.Equal(t, "numerical", s.Columns.ResolveColumn("INCOME").StatType)
	assert.Equal(t, `IGNORE id, name; MODEL age, income AS numerical; MODEL "home town" AS categorical`,
		s.String())
}

func TestParseEmptyClauses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	s, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, s.Clauses)
	s, err = Parse(";; IGNORE a;")
	require.NoError(t, err)
	assert.Len(t, s.Clauses, 1)
}

func TestKeywordsAsColumnNames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	var trace bytes.Buffer
	s, err := Parse("IGNORE model, as", lalr.Trace(&trace, "schema> "))
	require.NoError(t, err)
	require.Len(t, s.Clauses, 1)
	assert.Equal(t, []string{"model", "as"}, s.Clauses[0].(*Ignore).Columns)
	assert.Contains(t, trace.String(), "schema> FALLBACK MODEL => NAME\n")
	assert.Contains(t, trace.String(), "schema> FALLBACK AS => NAME\n")
	assert.Contains(t, trace.String(), "schema> Accept!\n")
}

func TestRecoverFromMalformedClause(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	s, err := Parse("IGNORE a; MODEL b c AS numerical; IGNORE d")
	require.NotNil(t, s)
	require.Error(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 1)
	var serr *SyntaxError
	require.True(t, errors.As(merr.Errors[0], &serr))
	assert.Equal(t, "c", serr.Lexeme)
	assert.Equal(t, lemonade.Span{18, 19}, serr.Where)
	require.Len(t, s.Clauses, 2)
	assert.Equal(t, "IGNORE a; IGNORE d", s.String())
	assert.Nil(t, s.Columns.ResolveColumn("b"))
}

func TestIncompleteClauseFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	s, err := Parse("IGNORE a; MODEL b")
	assert.Nil(t, s)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	assert.Contains(t, merr.Errors, lalr.ErrParseFailed)
	assert.Contains(t, err.Error(), "unexpected end of input")
}

func TestDuplicateColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	s, err := Parse("IGNORE a; MODEL A AS numerical")
	assert.Nil(t, s)
	var serr *SemanticError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, `column "A" mentioned twice`, serr.Msg)
	assert.Equal(t, lemonade.Span{16, 17}, serr.Where)
}

func TestUnknownStatType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	_, err := Parse("MODEL x AS banana")
	var serr *SemanticError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, lemonade.Span{11, 17}, serr.Where)
	assert.Contains(t, err.Error(), `unknown statistical type "banana"`)
}

func TestScannerErrorsAreCollected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	s, err := Parse("IGNORE a # , b")
	require.NotNil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanner error")
	assert.Equal(t, []string{"a", "b"}, s.Clauses[0].(*Ignore).Columns)
}

func TestConcurrentParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.schema")
	defer teardown()
	//
	inputs := []string{
		"IGNORE a",
		"MODEL a, b AS counts",
		"IGNORE x; MODEL y AS cyclic",
		"MODEL m AS magnitude; IGNORE n, o",
	}
	results := make([]string, len(inputs))
	var wg sync.WaitGroup
	for i := range inputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if s, err := Parse(inputs[i]); err == nil {
				results[i] = s.String()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, []string{
		"IGNORE a",
		"MODEL a, b AS counts",
		"IGNORE x; MODEL y AS cyclic",
		"MODEL m AS magnitude; IGNORE n, o",
	}, results)
}

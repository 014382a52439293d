package scanner

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bqlite/lemonade/lr"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var tokenCounts = []int{1, 3, 3, 3, 5}

func TestScan1(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		reader := strings.NewReader(input)
		name := fmt.Sprintf("input #%d", i)
		scanner := GoTokenizer(name, reader, SkipComments(true))
		token := scanner.NextToken()
		count := 0
		for token.TokType() != EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = scanner.NextToken()
			count++
		}
		if count != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestSpans(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	scanner := GoTokenizer("spans", strings.NewReader("1 + 12"))
	var spans []string
	for token := scanner.NextToken(); token.TokType() != EOF; token = scanner.NextToken() {
		spans = append(spans, token.Span().String())
	}
	assert.Equal(t, []string{"(0…1)", "(2…3)", "(4…6)"}, spans)
}

func TestUnifyStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	scanner := GoTokenizer("strings", strings.NewReader("'c' `raw`"), UnifyStrings(true))
	assert.True(t, scanner.hasmode(optionUnifyStrings))
	assert.Equal(t, String, int(scanner.NextToken().TokType()))
	assert.Equal(t, String, int(scanner.NextToken().TokType()))
}

func TestScannerErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	var errs []error
	scanner := GoTokenizer("errors", strings.NewReader(`"unterminated`))
	scanner.SetErrorHandler(func(e error) { errs = append(errs, e) })
	count := 0
	for token := scanner.NextToken(); token.TokType() != EOF; token = scanner.NextToken() {
		count++
	}
	assert.Equal(t, 1, count)
	if assert.NotEmpty(t, errs) {
		assert.Contains(t, errs[0].Error(), "errors:1:")
	}
}

func TestClassName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	assert.Equal(t, "Ident", ClassName(Ident))
	assert.Equal(t, "Int", ClassName(Int))
	assert.Equal(t, "EOF", ClassName(EOF))
	assert.Equal(t, "+", ClassName('+'))
}

func TestTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	tables := &lr.Tables{
		NTerminal:   4,
		NSymbol:     5,
		SymbolNames: []string{"$", "+", "Int", "let", "E"},
	}
	mapper := Terminals(tables)
	scanner := GoTokenizer("terminals", strings.NewReader("let 12 + x E"))
	assert.True(t, scanner.hasmode(optionSkipComments))
	var symbols []lr.Symbol
	for {
		token := scanner.NextToken()
		symbols = append(symbols, mapper(token))
		if token.TokType() == EOF {
			break
		}
	}
	// x is not a terminal, neither is the non-terminal E
	assert.Equal(t, []lr.Symbol{3, 2, 1, -1, -1, lr.EOF}, symbols)
}

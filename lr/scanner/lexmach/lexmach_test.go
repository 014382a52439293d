package lexmach

import (
	"testing"

	"github.com/bqlite/lemonade/lr/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"1",
	"1+12",
	"Hello #World",
	`x="mystring" // commented `,
	"1,22,333",
}

var TokenCounts = []int{1, 3, 2, 3, 3}

func makeAdapter(t *testing.T) *LMAdapter {
	initTokens()
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`//[^\n]*\n?`), Skip)
		lexer.Add([]byte(`\"[^"]*\"`), MakeToken("STRING", tokenIds["STRING"]))
		lexer.Add([]byte(`#?([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_|-)*[!\?]?`), MakeToken("ID", tokenIds["ID"]))
		lexer.Add([]byte(`[1-9][0-9]*`), MakeToken("NUM", tokenIds["NUM"]))
		lexer.Add([]byte(`( |\,|\t|\n|\r)+`), Skip)
	}
	LM, err := NewLMAdapter(init, literals, keywords, tokenIds)
	require.NoError(t, err)
	return LM
}

func TestLM(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		sc, err := LM.Scanner(input)
		if err != nil {
			t.Error(err)
		}
		token := sc.NextToken()
		count := 0
		for token.TokType() != scanner.EOF {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			token = sc.NextToken()
			count++
		}
		if count != TokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, TokenCounts[i], count)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestKeywordsWinOverIdentifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("NIL nilly T")
	require.NoError(t, err)
	types := []int{}
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		types = append(types, int(token.TokType()))
	}
	assert.Equal(t, []int{tokenIds["nil"], tokenIds["ID"], tokenIds["t"]}, types)
}

func TestSpansAndValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("x = 42")
	require.NoError(t, err)
	x := sc.NextToken()
	assert.Equal(t, "(0…1)", x.Span().String())
	assert.Equal(t, "x", x.Value())
	sc.NextToken()
	n := sc.NextToken()
	assert.Equal(t, "42", n.Lexeme())
	assert.Equal(t, "(4…6)", n.Span().String())
	eof := sc.NextToken()
	assert.Equal(t, scanner.EOF, int(eof.TokType()))
	assert.Equal(t, "(6…6)", eof.Span().String())
}

func TestUnmatchedInputIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lemonade.scanner")
	defer teardown()
	//
	LM := makeAdapter(t)
	sc, err := LM.Scanner("a % b")
	require.NoError(t, err)
	var errs []error
	sc.SetErrorHandler(func(e error) { errs = append(errs, e) })
	var lexemes []string
	for token := sc.NextToken(); token.TokType() != scanner.EOF; token = sc.NextToken() {
		lexemes = append(lexemes, token.Lexeme())
	}
	assert.Equal(t, []string{"a", "b"}, lexemes)
	assert.Len(t, errs, 1)
}

func TestCaseInsensitive(t *testing.T) {
	assert.Equal(t, "[aA][sS]", CaseInsensitive("as"))
	assert.Equal(t, "[iI][dD]2\\_", CaseInsensitive("id2_"))
}

var literals []string       // The tokens representing literal strings
var keywords []string       // The keyword tokens
var tokens []string         // All of the tokens (including literals and keywords)
var tokenIds map[string]int // A map from the token names to their int ids

func initTokens() {
	literals = []string{
		"'",
		"(",
		")",
		"[",
		"]",
		"=",
		"+",
		"-",
		"*",
		"/",
	}
	keywords = []string{
		"nil",
		"t",
	}
	tokens = []string{
		"COMMENT",
		"ID",
		"NUM",
		"STRING",
	}
	tokens = append(tokens, keywords...)
	tokens = append(tokens, literals...)
	tokenIds = make(map[string]int)
	tokenIds["COMMENT"] = scanner.Comment
	tokenIds["ID"] = scanner.Ident
	tokenIds["NUM"] = scanner.Int
	tokenIds["STRING"] = int(scanner.String)
	for i, tok := range tokens[4:] {
		tokenIds[tok] = i + 10
	}
}

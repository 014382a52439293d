package schema

import (
	"sync"

	"github.com/bqlite/lemonade/lr/scanner/lexmach"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

var literals = []string{";", ","}
var keywords = []string{"IGNORE", "MODEL", "AS"}
var tokenIds = map[string]int{
	";":      int(SEMI),
	",":      int(COMMA),
	"NAME":   int(NAME),
	"IGNORE": int(IGNORE),
	"MODEL":  int(MODEL),
	"AS":     int(AS),
}

var lexer struct {
	once    sync.Once
	adapter *lexmach.LMAdapter
	err     error
}

// NewScanner creates a scanner for schema input. Token types are the terminal
// symbols of the schema grammar. Unknown characters are reported to the
// scanner's error handler and skipped.
func NewScanner(input string) (*lexmach.LMScanner, error) {
	lexer.once.Do(func() {
		lexer.adapter, lexer.err = lexmach.NewLMAdapter(initTokens, literals, keywords, tokenIds)
	})
	if lexer.err != nil {
		return nil, lexer.err
	}
	return lexer.adapter.Scanner(input)
}

func initTokens(lex *lexmachine.Lexer) {
	lex.Add([]byte(`\-\-[^\n]*`), lexmach.Skip)
	lex.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
	lex.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_]*`), lexmach.MakeToken("NAME", tokenIds["NAME"]))
	lex.Add([]byte(`\"[^"]*\"`), quotedName)
}

// quotedName is a NAME token with the quotes stripped from its value.
func quotedName(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	name := string(m.Bytes[1 : len(m.Bytes)-1])
	return s.Token(tokenIds["NAME"], name, m), nil
}

package lalr

import (
	"fmt"
	"io"
	"strings"

	"github.com/bqlite/lemonade"
	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/scanner"
	"github.com/pkg/errors"
)

// Status is the state of a parse.
type Status int

// A parse is Normal until it either accepts or fails. While recovering from a
// syntax error by way of the error symbol, it is Recovering.
const (
	Normal Status = iota
	Recovering
	Failed
	Accepted
)

func (s Status) String() string {
	switch s {
	case Normal:
		return "normal"
	case Recovering:
		return "recovering"
	case Failed:
		return "failed"
	case Accepted:
		return "accepted"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Parser is an LALR(1) parser. Create and initialize one with lalr.NewParser(...).
type Parser struct {
	tables   *lr.Tables
	delegate Delegate
	stack    stack
	errcnt   int    // -1 = fresh, 3 after a syntax error, decremented by shifts
	done     Status // Failed or Accepted once terminated, else Normal
	checked  bool   // tables have passed validation
	trace    io.Writer
	prompt   string
	mapToken func(lemonade.Token) lr.Symbol
}

// NewParser creates a parser for a set of tables, reporting semantic events to
// a delegate.
func NewParser(tables *lr.Tables, delegate Delegate, opts ...Option) *Parser {
	p := &Parser{
		tables:   tables,
		delegate: delegate,
		stack:    newStack(),
		errcnt:   -1,
		mapToken: defaultTokenMapper,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Reset prepares a parser for a new parse with the same tables and delegate.
func (p *Parser) Reset() {
	for i := range p.stack.entries {
		p.stack.entries[i] = StackEntry{}
	}
	p.stack.entries = p.stack.entries[:0]
	p.stack.maxDepth = 0
	p.errcnt = -1
	p.done = Normal
}

// Status returns the current state of the parse.
func (p *Parser) Status() Status {
	if p.done != Normal {
		return p.done
	}
	if p.tables.HasErrorSymbol() && p.errcnt > 0 {
		return Recovering
	}
	return Normal
}

// Depth returns the current number of stack entries.
func (p *Parser) Depth() int {
	return p.stack.depth()
}

// MaxDepth returns the maximum number of stack entries of the current parse.
func (p *Parser) MaxDepth() int {
	return p.stack.maxDepth
}

// Feed hands the next token to the parser. major is the token's terminal
// symbol, minor its semantic value. The parser shifts, reduces and recovers
// until the token is consumed or the parse terminates. Input ends with a token
// of symbol lr.EOF.
//
// Feed returns ErrParseFailed if the parse failed with this token. Errors of
// semantic actions are returned as *ActionError. If panic-mode recovery has to
// discard the end of input, the parse fails.
//
// The tables are validated with the first token. Malformed tables fail the
// parse with ErrInconsistentTables, without a call to the delegate.
func (p *Parser) Feed(major lr.Symbol, minor interface{}) error {
	if p.done != Normal {
		return ErrSessionDone
	}
	if !p.checked {
		if err := p.tables.Validate(); err != nil {
			p.done = Failed
			return errors.Wrap(ErrInconsistentTables, err.Error())
		}
		p.checked = true
	}
	if major < 0 || int(major) >= p.tables.NTerminal {
		return errors.Wrapf(ErrInvalidToken, "symbol %d", major)
	}
	if p.stack.empty() {
		p.errcnt = -1
		p.stack.push(StackEntry{State: 0, Major: lr.EOF})
	}
	t := p.tables
	p.tracef("Input %s", t.SymbolName(major))
	tracer().Debugf("input %s, state %d", t.SymbolName(major), p.stack.top().State)
	var err error
	consumed, errorHit := false, false
	for !consumed && !p.stack.empty() && err == nil {
		act := p.findShiftAction(major)
		switch {
		case act < t.NState:
			p.shift(act, major, minor)
			p.errcnt--
			consumed = true
		case act < t.NState+t.NRule:
			err = p.reduce(act - t.NState)
		default:
			consumed = p.syntaxError(major, minor, errorHit)
			errorHit = true
		}
	}
	p.tracef("Return")
	if err != nil {
		return err
	}
	if p.done == Failed {
		return ErrParseFailed
	}
	return nil
}

// Parse reads tokens from a tokenizer and feeds them to the parser until end
// of input or termination of the parse. Token types are mapped to terminal
// symbols, see option TokenMapper. Parse returns true if the input has been
// accepted.
func (p *Parser) Parse(scan scanner.Tokenizer) (bool, error) {
	for p.done == Normal {
		token := scan.NextToken()
		major := p.mapToken(token)
		if err := p.Feed(major, token); err != nil {
			return false, err
		}
		if major == lr.EOF {
			break
		}
	}
	if p.done != Accepted {
		return false, errors.Wrap(ErrParseFailed, "end of input reached without accepting")
	}
	return true, nil
}

func (p *Parser) shift(state int, major lr.Symbol, minor interface{}) {
	p.stack.push(StackEntry{State: state, Major: major, Minor: minor})
	if p.trace != nil {
		p.tracef("Shift %d", state)
		var names []string
		for _, e := range p.stack.entries[1:] {
			names = append(names, p.tables.SymbolName(e.Major))
		}
		p.tracef("Stack: %s", strings.Join(names, " "))
	}
}

// accept terminates the parse successfully.
func (p *Parser) accept() {
	p.tracef("Accept!")
	p.unwind()
	p.done = Accepted
	tracer().Infof("%s: input accepted", p.tables.Name)
	p.delegate.Accept()
}

// fail terminates the parse unsuccessfully.
func (p *Parser) fail() {
	p.tracef("Fail!")
	p.unwind()
	p.done = Failed
	tracer().Infof("%s: parse failed", p.tables.Name)
	p.delegate.ParseFailed()
}

func (p *Parser) unwind() {
	for !p.stack.empty() {
		p.tracef("Popping %s", p.tables.SymbolName(p.stack.popOne()))
	}
}

func (p *Parser) tracef(format string, args ...interface{}) {
	if p.trace == nil {
		return
	}
	fmt.Fprintf(p.trace, "%s%s\n", p.prompt, fmt.Sprintf(format, args...))
}

// --- Options ---------------------------------------------------------------

// Option configures a parser.
type Option func(p *Parser)

// Trace sets a sink for the parser's trace, one line per event, each line
// prefixed by prompt. A nil writer switches tracing off.
func Trace(w io.Writer, prompt string) Option {
	return func(p *Parser) {
		p.trace = w
		p.prompt = prompt
	}
}

// TokenMapper sets the function Parse uses to map tokens to terminal symbols.
// The default uses the token type as the symbol, with scanner.EOF mapped to
// lr.EOF.
func TokenMapper(m func(lemonade.Token) lr.Symbol) Option {
	return func(p *Parser) {
		if m == nil {
			m = defaultTokenMapper
		}
		p.mapToken = m
	}
}

func defaultTokenMapper(token lemonade.Token) lr.Symbol {
	if token.TokType() == scanner.EOF {
		return lr.EOF
	}
	return lr.Symbol(token.TokType())
}

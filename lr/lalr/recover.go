package lalr

import "github.com/bqlite/lemonade/lr"

// syntaxError handles a lookahead for which the current state has no action.
// It returns true if the lookahead has been consumed, either by discarding it
// or because the parse failed.
//
// errorHit is set if a syntax error occurred before while handling the same
// lookahead.
//
// The error counter suppresses cascades of error reports: the delegate hears
// of a syntax error only if the three tokens preceding it have been shifted
// successfully.
func (p *Parser) syntaxError(major lr.Symbol, minor interface{}, errorHit bool) bool {
	t := p.tables
	p.tracef("Syntax Error!")
	tracer().Debugf("syntax error at %s in state %d", t.SymbolName(major), p.stack.top().State)
	if !t.HasErrorSymbol() {
		// no error symbol: discard the offending token
		if p.errcnt <= 0 {
			p.delegate.SyntaxError(major, minor)
		}
		p.errcnt = 3
		if major == lr.EOF {
			p.fail()
		}
		return true
	}
	if p.errcnt < 0 {
		p.delegate.SyntaxError(major, minor)
	}
	p.errcnt = 3
	if p.stack.top().Major == t.ErrorSymbol || errorHit {
		p.tracef("Discard input token %s", t.SymbolName(major))
		if major == lr.EOF {
			p.fail()
		}
		return true
	}
	// pop states until one is able to shift the error symbol
	act := t.ErrorAction()
	for !p.stack.empty() {
		act, _ = p.findReduceAction(p.stack.top().State, t.ErrorSymbol)
		if act < t.NState {
			break
		}
		p.tracef("Popping %s", t.SymbolName(p.stack.popOne()))
	}
	if p.stack.empty() || major == lr.EOF {
		p.fail()
		return true
	}
	p.shift(act, t.ErrorSymbol, nil)
	return false
}

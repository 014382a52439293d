package lalr

import (
	"fmt"

	"github.com/bqlite/lemonade/lr"
	"github.com/npillmayer/schuko/gconf"
	"github.com/pkg/errors"
)

// findShiftAction finds the action for the state on top of the stack and a
// terminal lookahead.
//
// If the lookahead has no entry in the state, a fallback token is tried
// (possibly following a chain of fallbacks), then the wildcard. End of input
// is never substituted. A fallback chain is followed for at most NTerminal
// steps.
func (p *Parser) findShiftAction(la lr.Symbol) int {
	t := p.tables
	state := p.stack.top().State
	if state > t.ShiftCount || t.ShiftOffset[state] == t.ShiftUnused {
		return t.Default[state]
	}
	for steps := 0; ; steps++ {
		i := t.ShiftOffset[state] + int(la)
		if i >= 0 && i < len(t.Action) && t.Lookahead[i] == la {
			return t.Action[i]
		}
		if la <= 0 {
			break
		}
		if fb := t.FallbackFor(la); fb != 0 && steps < t.NTerminal {
			p.tracef("FALLBACK %s => %s", t.SymbolName(la), t.SymbolName(fb))
			la = fb
			continue
		}
		if t.Wildcard != 0 {
			j := t.ShiftOffset[state] + int(t.Wildcard)
			if j >= 0 && j < len(t.Action) && t.Lookahead[j] == t.Wildcard {
				p.tracef("WILDCARD %s => %s", t.SymbolName(la), t.SymbolName(t.Wildcard))
				return t.Action[j]
			}
		}
		break
	}
	return t.Default[state]
}

// findReduceAction finds the goto action for a state and a non-terminal.
//
// Without an error symbol every lookup has to succeed for tables describing
// the grammar correctly; a miss is reported as ErrInconsistentTables. With an
// error symbol, a miss yields the state's default action.
func (p *Parser) findReduceAction(state int, nt lr.Symbol) (int, error) {
	t := p.tables
	if state <= t.ReduceCount && t.ReduceOffset[state] != t.ReduceUnused {
		i := t.ReduceOffset[state] + int(nt)
		if i >= 0 && i < len(t.Action) && t.Lookahead[i] == nt {
			return t.Action[i], nil
		}
	}
	if t.HasErrorSymbol() {
		return t.Default[state], nil
	}
	return t.ErrorAction(), inconsistent("no goto for %s in state %d", t.SymbolName(nt), state)
}

func inconsistent(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("parser tables inconsistent: %s", msg)
	if gconf.GetBool("panic-on-table-inconsistency") {
		panic(`LALR-parser tables are inconsistent.

Configuration flag panic-on-table-inconsistency is set to true. It is aimed at
helping to debug generated parser tables. However, if this is a production
environment and you did not expect this to panic, please unset
panic-on-table-inconsistency to its default (false).

` + msg)
	}
	return errors.Wrap(ErrInconsistentTables, msg)
}

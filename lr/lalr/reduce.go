package lalr

// reduce performs a reduce action for a rule
//
//    LHS --> X1 ... Xn   (with X being terminals or non-terminals)
//
// Symbols X1 to Xn are represented on the stack as entries
//
//    [TOS]  Sn(Xn, value_n) ... S1(X1, value_1)  ...
//
// The semantic action sees X1 … Xn while they are still on the stack. They are
// popped afterwards, and the LHS is shifted with the value returned by the
// action. If the goto for the LHS is the accept action, the parse is complete.
func (p *Parser) reduce(rule int) error {
	t := p.tables
	info := t.Rules[rule]
	p.tracef("Reduce [%s].", t.RuleName(rule))
	if info.NRHS > p.stack.depth()-1 {
		return p.abort(inconsistent("rule %q reduced with %d stack entries", t.RuleName(rule),
			p.stack.depth()-1))
	}
	value, err := p.delegate.Reduce(rule, RHS{entries: p.stack.tail(info.NRHS)})
	if err != nil {
		tracer().Errorf("semantic action for rule %q failed: %v", t.RuleName(rule), err)
		return p.abort(newActionError(rule, err))
	}
	p.stack.popN(info.NRHS)
	act, err := p.findReduceAction(p.stack.top().State, info.LHS)
	if err != nil {
		return p.abort(err)
	}
	switch {
	case act < t.NState:
		p.shift(act, info.LHS, value)
	case act == t.AcceptAction():
		p.accept()
	default:
		return p.abort(inconsistent("goto for %s is %s", t.SymbolName(info.LHS), t.ActionString(act)))
	}
	return nil
}

// abort terminates a parse because of err, which is returned unchanged.
func (p *Parser) abort(err error) error {
	p.fail()
	return err
}

/*
Package lalr provides a table-driven LALR(1) shift-reduce parser. The parser is
grammar-agnostic: it is driven by packed tables of package lr, generated
offline, and leaves every semantic decision to a Delegate.

A parser consumes one token at a time. For each token it consults the tables,
shifts, reduces (calling the delegate's action for the rule) or recovers from
a syntax error, until the token is consumed or the parse terminates, either by
accepting the input or by failing.

Usage

Clients provide tables and a delegate, then feed tokens, ending with the
end-of-input symbol lr.EOF:

    p := lalr.NewParser(tables, &lalr.Actions{
        Rules: []lalr.Action{
            …  // one entry per rule number
        },
    })
    for _, tok := range tokens {
        if err := p.Feed(tok.major, tok); err != nil { … }
    }
    p.Feed(lr.EOF, nil)

Alternatively, Parse pulls tokens from a scanner.Tokenizer.

Semantic actions receive the right hand side of the rule being reduced while it
still is on the parse stack. The value an action returns becomes the semantic
value of the rule's left hand side.

Error Recovery

If the tables declare an error symbol, the parser performs panic-mode recovery:
it pops states until one is found which can shift the error symbol, shifts it,
and discards input tokens until parsing may continue. Without an error symbol
offending tokens are simply discarded. In both cases the delegate is told about
a syntax error at most once for every three tokens shifted successfully.
Reaching end of input during recovery fails the parse.

Tracing

Parsers may be given a trace sink (option Trace). Every shift, reduce, pop,
token substitution and error event is written to it in a fixed line format,
prefixed by a prompt string. Independently, the parser traces to the
schuko tracer with key 'lemonade.lr'.

Concurrency

A parser is not safe for concurrent use. Tables are never modified by a
parser and may be shared by any number of parsers.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lalr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemonade.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lemonade.lr")
}

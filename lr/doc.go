/*
Package lr defines the table format driving the LALR(1) parsers of all BQL
sub-languages.

Packed Parser Tables

Parser tables are generated offline from a grammar. They are packed in the
format made popular by the Lemon parser generator: one combined array of
actions, a parallel array of lookahead symbols used as a collision check, and
per-state offsets into the combined array, one for terminals (shift offsets)
and one for non-terminals (reduce offsets, i.e., the GOTO part).

To find the action for state s and lookahead a, a parser computes

    i := ShiftOffset[s] + a
    if Lookahead[i] == a { action = Action[i] } else { action = Default[s] }

Action values are partitioned by the number of states and rules:

    0 ≤ act < NState                 shift, new state is act
    NState ≤ act < NState+NRule      reduce by rule act-NState
    act == NState+NRule              syntax error
    act == NState+NRule+1            accept
    act == NState+NRule+2            no action (empty table slot)

Tables may declare fallback tokens (a terminal is re-tried as another terminal
if it has no action in a state), a wildcard token matching any terminal as a
last resort, and an error symbol used for panic-mode error recovery.

Tables are immutable after construction and may be shared between any number of
parsers, including parsers running in different goroutines.

Tables may be read from and written to YAML, and constructed from dense
per-state descriptions with package pack.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemonade.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lemonade.lr")
}

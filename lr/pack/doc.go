/*
Package pack constructs packed parser tables from per-state action maps.

A parser generator computes, for every LR state, a dense map from lookahead
symbols to actions. This package takes such maps, either built up
programmatically with a Builder or read from a YAML Spec, resolves duplicate
cell assignments, and packs them into the combined action/lookahead format of
package lr.

    b := pack.NewBuilder("expr")
    b.Terminals("PLUS", "NUM")
    b.Nonterminals("prog", "E", "T")
    r0 := b.Rule("prog", "E")
    ...
    b.State(0).Shift("NUM", 3).Goto("E", 1).Goto("T", 2).Accept("prog")
    tables, err := b.Tables()

Packing places action sets, largest first, into the combined table at the
smallest offset still free. No two action sets share an offset, so the
lookahead check of a parser detects every foreign slot.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pack

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemonade.lr'.
func tracer() tracing.Trace {
	return tracing.Select("lemonade.lr")
}

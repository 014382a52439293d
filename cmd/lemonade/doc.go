/*
Command lemonade packs LALR(1) state descriptions into parser tables and
provides a command line front end for the generative-schema language.

    lemonade pack grammar.yaml --format go --package bql --var SchemaTables
    lemonade run --trace sum.yaml '1 + 2 + 3'
    lemonade schema 'IGNORE id; MODEL age AS numerical'
    lemonade schema --trace < schema.bql
    lemonade repl

The run command parses input with the tables of a state description, without
semantic actions, mapping Go-like tokens to terminals by name. The schema
command prints the parsed schema as a tree. With --trace, the
parser's step-by-step trace is written to stderr. The repl command parses one
schema per line, until <ctrl>D.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemonade.cli'
func tracer() tracing.Trace {
	return tracing.Select("lemonade.cli")
}

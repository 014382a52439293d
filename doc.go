/*
Package lemonade is the parser runtime for the small declarative languages
embedded in BQL: analysis plans, model alteration and generative schemas.

Every one of these languages is parsed by a table-driven LALR(1) parser. The
tables are produced offline by a parser generator; at runtime a single,
grammar-agnostic engine consumes tokens, drives the shift-reduce automaton and
calls back into a delegate which builds the abstract syntax tree. Package
structure is as follows:

■ lr: Package lr defines the packed parser table format shared by all grammars.
Sub-package lalr implements the shift-reduce engine, including fallback and
wildcard tokens and panic-mode error recovery. Sub-package pack encodes dense
per-state tables into the packed format.

■ lr/scanner: Scanners producing token streams for the engine.

■ schema: The generative-schema language, a complete example of a grammar
instantiation.

■ cmd/lemonade: Command line tool to pack tables and to try out schemas.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lemonade

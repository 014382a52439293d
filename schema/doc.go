/*
Package schema implements the generative-schema language of BQL, one of the
sub-languages parsed by the LALR runtime of package lr/lalr.

A schema tells the modelling layer which columns of a table to ignore and which
statistical type to assume for the columns it models:

    IGNORE id, name;
    MODEL age, income AS numerical;
    MODEL "home town" AS categorical  -- comments run to end of line

Keywords are case-insensitive and may be used as column names. Clauses are
separated by semicolons; empty clauses are allowed.

Parse returns the schema, along with all syntax errors encountered. The parser
recovers from a malformed clause by skipping to the next semicolon; the clause
is left out of the result. Mentioning a column twice or using an unknown
statistical type aborts the parse.

The parser tables of the language are built from a declarative state
description (see Tables) when first needed.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package schema

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lemonade.schema'.
func tracer() tracing.Trace {
	return tracing.Select("lemonade.schema")
}

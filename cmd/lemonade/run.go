package main

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/lalr"
	"github.com/bqlite/lemonade/lr/scanner"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:   "run SPEC.yaml [TEXT...]",
		Short: "Runs the parser of a state description on some input",
		Long: `Packs the state description SPEC.yaml and parses the input given as
arguments, or read from stdin if there are none. Input is split into Go-like
tokens. A token is the terminal spelled like it, or else the terminal named
like its class: Ident, Int, Float, Char, String or RawString.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args[1:], " ")
			if len(args) == 1 {
				in, err := ioutil.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				input = string(in)
			}
			var tw io.Writer
			if trace {
				tw = cmd.ErrOrStderr()
			}
			ok, err := runTables(args[0], input, tw)
			if ok {
				pterm.Info.Println("input accepted")
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Write the parser trace to stderr")
	return cmd
}

// runTables parses input with the tables packed from the state description
// in file path. Reductions have no semantic actions. Syntax errors are
// printed as warnings.
func runTables(path, input string, tw io.Writer) (bool, error) {
	tables, err := loadTables(path)
	if err != nil {
		return false, err
	}
	actions := &lalr.Actions{
		OnSyntaxError: func(major lr.Symbol, minor interface{}) {
			pterm.Warning.Printf("syntax error at %s %v\n", tables.SymbolName(major), minor)
		},
	}
	opts := []lalr.Option{lalr.TokenMapper(scanner.Terminals(tables))}
	if tw != nil {
		opts = append(opts, lalr.Trace(tw, tables.Name+"> "))
	}
	p := lalr.NewParser(tables, actions, opts...)
	return p.Parse(scanner.GoTokenizer(path, strings.NewReader(input), scanner.SkipComments(true)))
}

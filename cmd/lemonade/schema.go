package main

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/bqlite/lemonade/lr/lalr"
	"github.com/bqlite/lemonade/schema"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func schemaCmd() *cobra.Command {
	var trace bool
	var prompt string
	cmd := &cobra.Command{
		Use:   "schema [TEXT...]",
		Short: "Parses a generative schema and prints it as a tree",
		Long: `Parses a generative schema given as arguments, or read from stdin if no
arguments are given. The schema is printed as a tree, followed by any errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			if len(args) == 0 {
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
			s, err := parseSchema(input, tw, prompt)
			if s != nil {
				printSchema(s)
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "Write the parser trace to stderr")
	cmd.Flags().StringVar(&prompt, "prompt", "schema> ", "Prefix of trace lines")
	return cmd
}

// parseSchema parses input, tracing to tw if it is not nil.
func parseSchema(input string, tw io.Writer, prompt string) (*schema.Schema, error) {
	tracer().Infof("Input is \"%s\"", strings.TrimSpace(input))
	var opts []lalr.Option
	if tw != nil {
		opts = append(opts, lalr.Trace(tw, prompt))
	}
	return schema.Parse(input, opts...)
}

func printSchema(s *schema.Schema) {
	root := pterm.NewTreeFromLeveledList(schemaList(s))
	pterm.DefaultTree.WithRoot(root).Render()
}

// schemaList lists clauses with their columns one level deeper.
func schemaList(s *schema.Schema) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, c := range s.Clauses {
		var cols []string
		switch c := c.(type) {
		case *schema.Ignore:
			ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "IGNORE " + c.Span().String()})
			cols = c.Columns
		case *schema.Model:
			ll = append(ll, pterm.LeveledListItem{Level: 0, Text: "MODEL AS " + c.StatType + " " + c.Span().String()})
			cols = c.Columns
		}
		for _, col := range cols {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: col})
		}
	}
	return ll
}

package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bqlite/lemonade/schema"
	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func replCmd() *cobra.Command {
	var initf string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactively parses generative schemas, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := readline.New("schema> ")
			if err != nil {
				return errors.Wrap(err, "cannot start repl")
			}
			defer repl.Close()
			pterm.Info.Println("Welcome to the schema REPL")
			tracer().Infof("Quit with <ctrl>D")
			intp := &Intp{repl: repl}
			intp.loadInitFile(initf)
			intp.REPL()
			return nil
		},
	}
	cmd.Flags().StringVar(&initf, "init", "", "Initial load")
	return cmd
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	trace io.Writer // parser trace, if switched on
	last  *schema.Schema
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if _, err := intp.Eval(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses a schema given on a line by itself. Lines starting with a colon
// are commands:
//
//    :trace on|off   switch the parser trace
//    :columns        list the columns of the last schema
//    :quit           leave the REPL
//
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.command(strings.Fields(line[1:]))
	}
	s, err := parseSchema(line, intp.trace, "schema> ")
	if s != nil {
		intp.last = s
		printSchema(s)
	}
	return false, err
}

func (intp *Intp) command(args []string) (bool, error) {
	if len(args) == 0 {
		return false, errors.New("command expected")
	}
	switch args[0] {
	case "quit":
		return true, nil
	case "trace":
		intp.trace = nil
		if len(args) > 1 && args[1] == "on" {
			intp.trace = intp.repl.Stderr()
		}
		return false, nil
	case "columns":
		if intp.last == nil {
			return false, errors.New("no schema parsed yet")
		}
		intp.last.Columns.Each(func(_ string, c *schema.Column) {
			pterm.Info.Println(c.String())
		})
		return false, nil
	}
	return false, errors.Errorf("unknown command %q", args[0])
}

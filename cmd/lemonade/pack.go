package main

import (
	"io"
	"os"

	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/pack"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type packArgs struct {
	format  string
	pkg     string
	varname string
	out     string
}

func packCmd() *cobra.Command {
	pa := &packArgs{}
	cmd := &cobra.Command{
		Use:   "pack SPEC.yaml",
		Short: "Packs an LALR(1) state description into parser tables",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if pa.format != "yaml" && pa.format != "go" {
				return errors.Errorf("format must be yaml or go, got %q", pa.format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if pa.out == "" {
				return runPack(args[0], pa, cmd.OutOrStdout())
			}
			f, err := os.Create(pa.out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err = runPack(args[0], pa, f); err == nil {
				pterm.Info.Printf("tables written to %s\n", pa.out)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&pa.format, "format", "yaml", "Output format [yaml|go]")
	cmd.Flags().StringVar(&pa.pkg, "package", "main", "Package name of generated Go source")
	cmd.Flags().StringVar(&pa.varname, "var", "Tables", "Variable name of generated Go source")
	cmd.Flags().StringVarP(&pa.out, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func runPack(path string, pa *packArgs, out io.Writer) error {
	tables, err := loadTables(path)
	if err != nil {
		return err
	}
	if pa.format == "go" {
		return pack.WriteGo(out, pa.pkg, pa.varname, tables)
	}
	return tables.WriteYAML(out)
}

// loadTables packs the state description in file path, warning about
// conflicts.
func loadTables(path string) (*lr.Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	spec, err := pack.ReadSpec(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	b, err := spec.Builder()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	tables, err := b.Tables()
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	for _, c := range b.Conflicts() {
		pterm.Warning.Println(c)
	}
	tracer().Infof("%s: %d states, %d rules, %d action slots", tables.Name,
		tables.NState, tables.NRule, len(tables.Action))
	return tables, nil
}

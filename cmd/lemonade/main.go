package main

import (
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// traceKeys are the tracers of the packages of this module.
var traceKeys = []string{
	"lemonade.cli",
	"lemonade.lr",
	"lemonade.scanner",
	"lemonade.schema",
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
}

func rootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:           "lemonade",
		Short:         "Table-driven LALR(1) parsing for the sub-languages of BQL",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initDisplay()
			gtrace.SyntaxTracer = gologadapter.New()
			setTraceLevel(traceLevel(level))
			tracer().Debugf("trace level is %s", level)
		},
	}
	root.PersistentFlags().StringVar(&level, "level", "Error", "Trace level [Debug|Info|Error]")
	root.AddCommand(packCmd(), runCmd(), schemaCmd(), replCmd())
	return root
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

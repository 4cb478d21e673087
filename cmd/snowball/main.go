package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snowball/internal/version"
)

// errDiagnostics marks a run that completed but reported errors. The
// diagnostics are already printed, so main only sets the exit status.
var errDiagnostics = errors.New("diagnostics reported errors")

var rootCmd = &cobra.Command{
	Use:               "snowball",
	Short:             "Snowball language front end",
	Long:              `Snowball tokenizes and parses snowball sources and reports syntax diagnostics`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupCommand,
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per file (0=unlimited)")
	pf.String("trace", "", "write trace events to a file (- for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "text", "trace output format (text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "events kept by the trace ring buffer")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
	pf.Bool("timings", false, "print phase timings to stderr")
}

func main() {
	err := rootCmd.Execute()
	finishProfiling()
	finishTracing(err)
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			fmt.Fprintf(os.Stderr, "snowball: %v\n", err)
		}
		os.Exit(1)
	}
}

// setupCommand runs before every subcommand: colour mode, tracing, profiles.
func setupCommand(cmd *cobra.Command, _ []string) error {
	if err := applyColorMode(cmd); err != nil {
		return err
	}
	if err := setupTracing(cmd); err != nil {
		return err
	}
	return setupProfiling(cmd)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

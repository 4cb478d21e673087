package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"snowball/internal/diag"
	"snowball/internal/diagfmt"
	"snowball/internal/source"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// applyColorMode validates --color and sets the global fatih/color switch
// used by output that is not a diagnostic listing.
func applyColorMode(cmd *cobra.Command) error {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(value)
	if err != nil {
		return err
	}
	color.NoColor = !colorEnabled(mode, os.Stdout)
	return nil
}

func colorEnabled(mode colorMode, f *os.File) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return isTerminal(f)
	}
}

// commonFlags are the persistent flags every subcommand reads.
type commonFlags struct {
	maxDiagnostics int
	quiet          bool
	color          colorMode
}

func readCommonFlags(cmd *cobra.Command) (commonFlags, error) {
	pf := cmd.Root().PersistentFlags()
	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return commonFlags{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if maxDiagnostics < 0 {
		return commonFlags{}, fmt.Errorf("--max-diagnostics must not be negative")
	}
	quiet, err := pf.GetBool("quiet")
	if err != nil {
		return commonFlags{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorStr, err := pf.GetString("color")
	if err != nil {
		return commonFlags{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorStr)
	if err != nil {
		return commonFlags{}, err
	}
	return commonFlags{maxDiagnostics: maxDiagnostics, quiet: quiet, color: mode}, nil
}

// printDiagnostics writes bag to stderr in the pretty format.
func printDiagnostics(flags commonFlags, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	bag.Sort()
	return diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     colorEnabled(flags.color, os.Stderr),
		Context:   true,
		ShowNotes: true,
	})
}

func printHeader(w io.Writer, flags commonFlags, path string) error {
	if flags.quiet {
		return nil
	}
	_, err := fmt.Fprintf(w, "== %s ==\n", path)
	return err
}

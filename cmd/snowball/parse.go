package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"snowball/internal/ast"
	"snowball/internal/diagfmt"
	"snowball/internal/driver"
	"snowball/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.sn|directory>",
	Short: "Parse a snowball source file or directory and output the syntax tree",
	Long:  `Parse analyzes a snowball source file or all *.sn files in a directory and outputs their syntax trees`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json|yaml)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	parseCmd.Flags().String("ui", "auto", "progress view for directories (auto|on|off)")
}

func writeTree(w io.Writer, format string, tree ast.Node) error {
	switch format {
	case "json":
		return diagfmt.FormatASTJSON(w, tree)
	case "yaml":
		return diagfmt.FormatASTYAML(w, tree)
	default:
		return diagfmt.FormatASTTree(w, tree)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "tree", "json", "yaml":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	flags, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}

	// Проверяем, файл это или директория
	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	if !st.IsDir() {
		return parseSingle(cmd, path, format, flags)
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return err
	}

	opts := driver.DirOptions{MaxDiagnostics: flags.maxDiagnostics, Jobs: jobs}
	endParse := activeTimer.Track("parse")
	fs, results, err := parseDir(cmd, path, opts, shouldUseTUI(mode, flags.quiet))
	endParse(fmt.Sprintf("%d file(s)", len(results)))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	failed := false
	for _, r := range results {
		if err := printDiagnostics(flags, r.Bag, fs); err != nil {
			return err
		}
		failed = failed || r.Failed()
	}

	out := cmd.OutOrStdout()
	if format == "tree" {
		for idx, r := range results {
			display := fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())
			if err := printHeader(out, flags, display); err != nil {
				return err
			}
			if r.Tree.Kind() != nil {
				if err := diagfmt.FormatASTTree(out, r.Tree); err != nil {
					return err
				}
			}
			if !flags.quiet && idx < len(results)-1 {
				if _, err := fmt.Fprintln(out); err != nil {
					return err
				}
			}
		}
	} else {
		trees := make(map[string]ast.Node, len(results))
		for _, r := range results {
			trees[fs.Get(r.FileID).FormatPath("auto", fs.BaseDir())] = r.Tree
		}
		if format == "json" {
			err = diagfmt.FormatASTSetJSON(out, trees)
		} else {
			err = diagfmt.FormatASTSetYAML(out, trees)
		}
		if err != nil {
			return err
		}
	}
	if failed {
		return errDiagnostics
	}
	return nil
}

func parseSingle(cmd *cobra.Command, path, format string, flags commonFlags) error {
	endParse := activeTimer.Track("parse")
	result, err := driver.Parse(cmd.Context(), path, flags.maxDiagnostics)
	endParse(path)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	if err := printDiagnostics(flags, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Err != nil {
		return errDiagnostics
	}
	return writeTree(cmd.OutOrStdout(), format, result.Tree)
}

func parseDir(cmd *cobra.Command, dir string, opts driver.DirOptions, tui bool) (*source.FileSet, []driver.ParseDirResult, error) {
	if tui {
		return runParseDirWithUI(cmd.Context(), "parse "+dir, dir, opts)
	}
	return driver.ParseDir(cmd.Context(), dir, opts)
}

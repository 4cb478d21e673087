package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snowball/internal/diag"
	"snowball/internal/diagfmt"
	"snowball/internal/driver"
	"snowball/internal/project"
	"snowball/internal/source"
)

const noManifestMessage = "no " + project.ManifestName + " found\nplease pass a file or directory explicitly, e.g.:\n  snowball check path/to/src"

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.sn|directory]",
	Short: "Report syntax diagnostics without printing trees",
	Long: `Check lexes and parses a file or every *.sn file in a directory and reports
diagnostics. Without an argument the source directory of the enclosing
project (snowball.toml) is checked. Exits with status 1 when errors are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostic format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=manifest or auto)")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	checkCmd.Flags().String("ui", "off", "progress view for directories (auto|on|off)")
}

// checkTarget is what check runs on after the manifest defaults are applied.
type checkTarget struct {
	path           string
	isDir          bool
	jobs           int
	maxDiagnostics int
	cache          bool
}

func resolveCheckTarget(cmd *cobra.Command, args []string, flags commonFlags) (checkTarget, error) {
	start := "."
	if len(args) == 1 {
		start = args[0]
	}
	manifestDir := start
	if st, err := os.Stat(start); err == nil && !st.IsDir() {
		manifestDir = "."
	}
	manifest, ok, err := project.LoadManifest(manifestDir)
	if err != nil {
		return checkTarget{}, err
	}
	if !ok && len(args) == 0 {
		return checkTarget{}, errors.New(noManifestMessage)
	}

	target := checkTarget{path: start, maxDiagnostics: flags.maxDiagnostics, cache: true}
	if ok {
		b := manifest.Config.Build
		if len(args) == 0 {
			target.path = manifest.SourceDir()
		}
		target.jobs = b.Jobs
		target.cache = b.Cache
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && b.MaxDiagnostics > 0 {
			target.maxDiagnostics = b.MaxDiagnostics
		}
	}

	if jobs, err := cmd.Flags().GetInt("jobs"); err != nil {
		return checkTarget{}, fmt.Errorf("failed to get jobs flag: %w", err)
	} else if jobs > 0 {
		target.jobs = jobs
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return checkTarget{}, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	target.cache = target.cache && !noCache

	st, err := os.Stat(target.path)
	if err != nil {
		return checkTarget{}, fmt.Errorf("failed to stat path: %w", err)
	}
	target.isDir = st.IsDir()
	return target, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	uiStr, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return err
	}
	flags, err := readCommonFlags(cmd)
	if err != nil {
		return err
	}
	endResolve := activeTimer.Track("resolve")
	target, err := resolveCheckTarget(cmd, args, flags)
	if err != nil {
		return err
	}
	endResolve(target.path)

	var (
		fs    *source.FileSet
		bags  []*diag.Bag
		files int
	)
	endParse := activeTimer.Track("parse")
	if target.isDir {
		opts := driver.DirOptions{MaxDiagnostics: target.maxDiagnostics, Jobs: target.jobs}
		if target.cache {
			cache, err := driver.OpenDiskCache("snowball")
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: result cache disabled: %v\n", err)
			} else {
				opts.Cache = cache
			}
		}
		var results []driver.ParseDirResult
		fs, results, err = parseDir(cmd, target.path, opts, shouldUseTUI(mode, flags.quiet))
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		for _, r := range results {
			bags = append(bags, r.Bag)
		}
		files = len(results)
	} else {
		res, err := driver.Parse(cmd.Context(), target.path, target.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		fs = res.FileSet
		bags = append(bags, res.Bag)
		files = 1
	}
	endParse(fmt.Sprintf("%d file(s)", files))

	endReport := activeTimer.Track("report")
	failed, err := reportCheck(cmd, format, flags, fs, bags)
	endReport("")
	if err != nil {
		return err
	}
	if !flags.quiet && format != "json" {
		fmt.Fprintf(os.Stderr, "checked %d file(s): %d with errors\n", files, failed)
	}
	if failed > 0 {
		return errDiagnostics
	}
	return nil
}

// reportCheck prints every bag in format and returns how many had errors.
func reportCheck(cmd *cobra.Command, format string, flags commonFlags, fs *source.FileSet, bags []*diag.Bag) (int, error) {
	failed := 0
	all := diag.NewBag(0)
	for _, bag := range bags {
		if bag.HasErrors() {
			failed++
		}
		bag.Sort()
		all.Merge(bag)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return failed, diagfmt.JSON(out, all, fs, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	case "short":
		return failed, diagfmt.Short(out, all, fs, diagfmt.PrettyOpts{Color: colorEnabled(flags.color, os.Stdout)})
	default:
		return failed, printDiagnostics(flags, all, fs)
	}
}

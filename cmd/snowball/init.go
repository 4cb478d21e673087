package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"snowball/internal/driver"
	"snowball/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Initialize a new snowball project",
	Long: `Initialize a new snowball project by creating a project manifest (snowball.toml)
and a hello-world entry point (src/main.sn). If [path] is omitted, initializes
the current directory. A missing directory is created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("name", "", "package name (default: directory name)")
}

var projectNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// projectName derives a package name from the target directory basename,
// falling back to "snowball-project" for names that are not identifiers.
func projectName(target string) string {
	name := strings.TrimSpace(filepath.Base(target))
	if !projectNameRe.MatchString(name) {
		return "snowball-project"
	}
	return name
}

func runInit(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", target, err)
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("failed to get name flag: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = projectName(target)
	} else if !projectNameRe.MatchString(name) {
		return fmt.Errorf("invalid package name %q", name)
	}

	cfg := project.Default(name)
	if _, err := project.WriteManifest(target, cfg); err != nil {
		return err
	}

	srcDir := filepath.Join(target, cfg.Build.Source)
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", srcDir, err)
	}
	mainPath := filepath.Join(srcDir, "main"+driver.SourceExt)
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainSN()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.sn: %w", err)
		}
		createdMain = true
	}

	out := cmd.OutOrStdout()
	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err := filepath.Rel(wd, target); err == nil {
			rel = r
		}
	}
	fmt.Fprintf(out, "Initialized snowball project %q in %s\n", name, rel)
	fmt.Fprintf(out, "  - %s\n", project.ManifestName)
	if createdMain {
		fmt.Fprintf(out, "  - %s/main.sn\n", cfg.Build.Source)
	} else {
		fmt.Fprintf(out, "  - %s/main.sn (existing)\n", cfg.Build.Source)
	}
	return nil
}

func defaultMainSN() string {
	return `import std::io;

public fn main() -> i32 {
	io::println("hello, snowball");
	return 0;
}
`
}

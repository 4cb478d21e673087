package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestCollectTrimsAndDefaults(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = origVersion, origCommit })

	Version = "  "
	GitCommit = " abc123 \n"
	info := Collect()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.GitCommit != "abc123" {
		t.Errorf("GitCommit = %q", info.GitCommit)
	}
}

func TestCanBeOverridden(t *testing.T) {
	origVersion, origDate := Version, BuildDate
	t.Cleanup(func() { Version, BuildDate = origVersion, origDate })

	Version = "1.2.3"
	BuildDate = "2024-01-15T10:30:00Z"
	if got := Collect(); got.Version != "1.2.3" || got.BuildDate != "2024-01-15T10:30:00Z" {
		t.Fatalf("Collect() = %+v", got)
	}
}

func TestColored(t *testing.T) {
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	color.NoColor = true
	cases := map[string]string{
		"0.1.0-dev": "0.1.0-dev",
		"1.2.3":     "1.2.3",
		"1.2":       "1.2",
		"dev":       "dev",
	}
	for in, want := range cases {
		if got := Colored(in); got != want {
			t.Errorf("Colored(%q) = %q, want %q", in, got, want)
		}
	}

	color.NoColor = false
	if got := Colored("1.2.3"); got == "1.2.3" {
		t.Error("expected escape sequences with colour enabled")
	}
}

package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ManifestName), `
[package]
name = "demo"

[build]
source = "lib"
jobs = 3
max_diagnostics = 20
cache = false
`)
	nested := filepath.Join(root, "lib", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("LoadManifest: ok=%v err=%v", ok, err)
	}
	wantRoot, _ := filepath.Abs(root)
	if m.Root != wantRoot {
		t.Fatalf("root = %q, want %q", m.Root, wantRoot)
	}
	b := m.Config.Build
	if m.Config.Package.Name != "demo" || b.Source != "lib" || b.Jobs != 3 || b.MaxDiagnostics != 20 || b.Cache {
		t.Fatalf("config = %+v", m.Config)
	}
	if got := m.SourceDir(); got != filepath.Join(wantRoot, "lib") {
		t.Fatalf("source dir = %q", got)
	}
}

func TestLoadManifestMissing(t *testing.T) {
	m, ok, err := LoadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Skip("a manifest exists above the temp dir")
	}
	if m != nil {
		t.Fatal("manifest without ok")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestName)
	writeFile(t, path, "[package]\nname = \"x\"\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Build.Source != DefaultSourceDir || !cfg.Build.Cache || cfg.Build.Jobs != 0 {
		t.Fatalf("defaults = %+v", cfg.Build)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]struct {
		content string
		want    string
	}{
		"no package":   {"[build]\nsource = \"src\"\n", "missing [package]"},
		"no name":      {"[package]\n", "missing [package].name"},
		"blank name":   {"[package]\nname = \"  \"\n", "missing [package].name"},
		"bad jobs":     {"[package]\nname = \"x\"\n[build]\njobs = -1\n", "[build].jobs"},
		"bad max":      {"[package]\nname = \"x\"\n[build]\nmax_diagnostics = -5\n", "[build].max_diagnostics"},
		"unknown key":  {"[package]\nname = \"x\"\nversion = \"1\"\n", "unknown key package.version"},
		"invalid toml": {"[package\n", "failed to parse TOML"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ManifestName)
			writeFile(t, path, tc.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestWriteManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteManifest(dir, Default("hello"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Snowball project manifest\n") {
		t.Fatalf("missing header:\n%s", data)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default("hello") {
		t.Fatalf("round trip = %+v", cfg)
	}
	if _, err := WriteManifest(dir, Default("again")); err == nil {
		t.Fatal("second write must fail")
	}
}

func TestCombine(t *testing.T) {
	a, b := DigestString("a"), DigestString("b")
	if Combine(a, b) == Combine(b, a) {
		t.Fatal("order must matter")
	}
	if Combine(a, b) != Combine(a, b) {
		t.Fatal("combine must be deterministic")
	}
	if !(Digest{}).IsZero() || a.IsZero() {
		t.Fatal("IsZero")
	}
	if len(a.String()) != 64 {
		t.Fatalf("hex length = %d", len(a.String()))
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with colour off and quiet output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--color", "off", "--quiet"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitThenCheck(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir := filepath.Join(t.TempDir(), "demo")

	out, err := execute(t, "init", dir, "--name", "demo")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `Initialized snowball project "demo"`) {
		t.Fatalf("init output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "snowball.toml")); err != nil {
		t.Fatal(err)
	}

	t.Chdir(dir)
	if out, err := execute(t, "check", "--format", "short", "--ui", "off"); err != nil {
		t.Fatalf("check of fresh project failed: %v\n%s", err, out)
	}

	bad := filepath.Join(dir, "src", "bad.sn")
	if err := os.WriteFile(bad, []byte("public 42"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err = execute(t, "check", "--format", "short", "--ui", "off")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	if !strings.Contains(out, "bad.sn:1:8: error[SYN2003]") {
		t.Fatalf("short output:\n%s", out)
	}

	if _, err := execute(t, "init", dir); err == nil {
		t.Fatal("second init must fail")
	}
}

func TestCheckWithoutManifest(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "check", "--format", "short", "--ui", "off")
	if err == nil || !strings.Contains(err.Error(), "no snowball.toml found") {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "x.sn")
	if err := os.WriteFile(path, []byte("fn f("), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "check", path, "--format", "json", "--no-cache", "--ui", "off")
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("expected errDiagnostics, got %v", err)
	}
	var payload struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json: %v\n%s", err, out)
	}
	if payload.Count != 1 {
		t.Fatalf("count = %d", payload.Count)
	}
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sn")
	if err := os.WriteFile(path, []byte("fn main() { return; }"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := execute(t, "parse", path, "--format", "json", "--ui", "off")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"kind": "TopLevel"`) {
		t.Fatalf("parse output:\n%s", out)
	}

	out, err = execute(t, "parse", dir, "--format", "yaml", "--ui", "off", "--jobs", "1")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "main.sn:") || !strings.Contains(out, "kind: TopLevel") {
		t.Fatalf("yaml output:\n%s", out)
	}
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--format", "json", "--full")
	if err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "snowball" || payload.Version == "" || payload.GitCommit == "" {
		t.Fatalf("payload = %+v", payload)
	}
}

func TestReadModes(t *testing.T) {
	for in, want := range map[string]colorMode{"": colorAuto, "ON": colorOn, " off ": colorOff} {
		if got, err := readColorMode(in); err != nil || got != want {
			t.Errorf("readColorMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readColorMode("sometimes"); err == nil {
		t.Error("expected error for bad colour mode")
	}
	if got, err := readUIMode("auto"); err != nil || got != uiModeAuto {
		t.Errorf("readUIMode(auto) = %q, %v", got, err)
	}
	if _, err := readUIMode("maybe"); err == nil {
		t.Error("expected error for bad ui mode")
	}
	if !shouldUseTUI(uiModeOn, true) || shouldUseTUI(uiModeOff, false) {
		t.Error("explicit ui modes must win")
	}
}

func TestProjectName(t *testing.T) {
	cases := map[string]string{
		"/tmp/hello":      "hello",
		"/tmp/my-app":     "my-app",
		"/tmp/9lives":     "snowball-project",
		"/tmp/with space": "snowball-project",
	}
	for in, want := range cases {
		if got := projectName(in); got != want {
			t.Errorf("projectName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	mem := filepath.Join(dir, "mem.out")
	src := filepath.Join(dir, "main.sn")
	if err := os.WriteFile(src, []byte("fn main() {}\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = rootCmd.PersistentFlags().Set("mem-profile", "")
		_ = rootCmd.PersistentFlags().Set("timings", "false")
		activeProfile, activeTimer = nil, nil
	})

	if _, err := execute(t, "--mem-profile", mem, "--timings", "check", src); err != nil {
		t.Fatal(err)
	}
	if activeTimer == nil || len(activeTimer.Report().Phases) != 3 {
		t.Fatalf("timer = %+v", activeTimer.Report())
	}
	finishProfiling()
	if st, err := os.Stat(mem); err != nil || st.Size() == 0 {
		t.Fatalf("heap profile not written: %v", err)
	}
}

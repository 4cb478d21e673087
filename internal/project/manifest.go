package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultSourceDir is used when [build].source is absent.
const DefaultSourceDir = "src"

type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type BuildConfig struct {
	Source         string `toml:"source"`
	Jobs           int    `toml:"jobs,omitempty"`
	MaxDiagnostics int    `toml:"max_diagnostics,omitempty"`
	Cache          bool   `toml:"cache"`
}

// Default returns the manifest `snowball init` writes.
func Default(name string) Config {
	return Config{
		Package: PackageConfig{Name: name},
		Build:   BuildConfig{Source: DefaultSourceDir, Cache: true},
	}
}

// SourceDir resolves [build].source against the project root.
func (m *Manifest) SourceDir() string {
	src := m.Config.Build.Source
	if filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(m.Root, filepath.FromSlash(src))
}

// LoadManifest finds and loads the manifest above startDir. ok is false when
// there is none.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := LoadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

// LoadConfig decodes and validates one manifest file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := validate(meta, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func validate(meta toml.MetaData, cfg *Config) error {
	if !meta.IsDefined("package") {
		return errors.New("missing [package]")
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return errors.New("missing [package].name")
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %s", undecoded[0])
	}
	if !meta.IsDefined("build", "source") || strings.TrimSpace(cfg.Build.Source) == "" {
		cfg.Build.Source = DefaultSourceDir
	}
	// кэш включён, пока явно не выключен
	if !meta.IsDefined("build", "cache") {
		cfg.Build.Cache = true
	}
	if cfg.Build.Jobs < 0 {
		return fmt.Errorf("[build].jobs must not be negative, got %d", cfg.Build.Jobs)
	}
	if cfg.Build.MaxDiagnostics < 0 {
		return fmt.Errorf("[build].max_diagnostics must not be negative, got %d", cfg.Build.MaxDiagnostics)
	}
	return nil
}

// Encode renders cfg as TOML with a short header comment.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# Snowball project manifest\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteManifest creates dir/snowball.toml. An existing manifest is never
// overwritten.
func WriteManifest(dir string, cfg Config) (string, error) {
	path := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("project already initialized: %s exists", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	data, err := Encode(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

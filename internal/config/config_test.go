package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "md2html.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadValidConfig(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, `
output:
  dir: ./public
code:
  format: italic
frontMatter:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Dir != "./public" {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, "./public")
	}
	if cfg.Code.Format != "italic" {
		t.Errorf("Code.Format = %q, want %q", cfg.Code.Format, "italic")
	}
	if cfg.FrontMatter.IsEnabled() {
		t.Error("FrontMatter.IsEnabled() = true, want false")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	t.Parallel()

	if _, err := Load(""); !errors.Is(err, ErrEmptyConfigPath) {
		t.Errorf("Load(\"\") error = %v, want ErrEmptyConfigPath", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := Load(path); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "output: [unclosed\n")
	if _, err := Load(path); !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want ErrConfigParse", err)
	}
}

func TestFrontMatterIsEnabledDefault(t *testing.T) {
	t.Parallel()

	var f FrontMatterConfig
	if !f.IsEnabled() {
		t.Error("unset FrontMatterConfig must default to enabled")
	}

	enabled := true
	f.Enabled = &enabled
	if !f.IsEnabled() {
		t.Error("IsEnabled() = false, want true")
	}

	enabled = false
	if f.IsEnabled() {
		t.Error("IsEnabled() = true, want false")
	}
}

// Package config loads the CLI's YAML configuration file. Flags always win
// over config values; config values win over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrEmptyConfigPath = errors.New("config path cannot be empty")
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds all CLI configuration.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Code        CodeConfig        `yaml:"code"`
	FrontMatter FrontMatterConfig `yaml:"frontMatter"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = same as source)
}

// CodeConfig defines inline code rendering options.
type CodeConfig struct {
	Format string `yaml:"format"` // One of the md2html.CodeFormat names (empty = doublequotes)
}

// FrontMatterConfig defines YAML front matter options.
type FrontMatterConfig struct {
	Enabled *bool `yaml:"enabled"` // nil = enabled
}

// IsEnabled reports whether front matter handling is on; unset means enabled.
func (f FrontMatterConfig) IsEnabled() bool {
	return f.Enabled == nil || *f.Enabled
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrEmptyConfigPath
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigNotFound, err)
	}
	var cfg Config
	if err := yamlutil.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

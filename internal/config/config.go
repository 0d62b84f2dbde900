// Package config holds the boolgrid CLI defaults and their loading rules.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boolgrid/gridfile"
)

// Render modes.
const (
	ModeDisplay = "display"
	ModeDebug   = "debug"
)

// EnvMode overrides Config.Mode when set.
const EnvMode = "BOOLGRID_MODE"

// DefaultFileName is looked up in the user's home directory.
const DefaultFileName = ".boolgrid.yaml"

var (
	// ErrInvalidMode indicates a mode other than display or debug.
	ErrInvalidMode = errors.New("config: invalid render mode")
	// ErrParse indicates the config file is not valid YAML.
	ErrParse = errors.New("config: cannot parse file")
)

// Config holds the CLI defaults. Flags override these values.
type Config struct {
	// Mode is "display" (glyphs) or "debug" (bracketed listing).
	Mode string `yaml:"mode"`
	// Cells forces the cell kind of every document; empty keeps the document's own.
	Cells string `yaml:"cells"`
}

// Default returns display mode with no forced cell kind.
func Default() *Config {
	return &Config{Mode: ModeDisplay}
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Read builds a Config from defaults, then path (or ~/.boolgrid.yaml when
// path is empty and that file exists), then the environment. The result is
// not validated, so callers can apply flag overrides before Validate.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, DefaultFileName)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	if v := os.Getenv(EnvMode); v != "" {
		cfg.Mode = v
	}

	return cfg, nil
}

// mergeFile overlays the non-empty fields found in path.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	var fc Config
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if fc.Mode != "" {
		c.Mode = fc.Mode
	}
	if fc.Cells != "" {
		c.Cells = fc.Cells
	}

	return nil
}

// Validate checks Mode and Cells.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeDisplay, ModeDebug:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if c.Cells != "" {
		if _, err := gridfile.ParseKind(c.Cells); err != nil {
			return err
		}
	}

	return nil
}

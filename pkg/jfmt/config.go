package jfmt

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mstoykov/envconfig"
	"github.com/spf13/afero"

	"github.com/vito/jfmt/pkg/printer"
)

// ConfigFile is the name of the project configuration file.
const ConfigFile = "jfmt.toml"

// Config controls how files are formatted.
type Config struct {
	// EmitComments prints comments. On by default.
	EmitComments bool `toml:"emit_comments"`

	// Indent is the unit of indentation.
	Indent string `toml:"indent"`

	// Exclude lists base-name globs skipped when walking directories.
	Exclude []string `toml:"exclude"`
}

// DefaultConfig is used when no jfmt.toml is found.
func DefaultConfig() Config {
	return Config{
		EmitComments: true,
		Indent:       printer.DefaultIndent,
	}
}

// fileConfig distinguishes keys left out of jfmt.toml from zero values.
type fileConfig struct {
	EmitComments *bool    `toml:"emit_comments"`
	Indent       *string  `toml:"indent"`
	Exclude      []string `toml:"exclude"`
}

// envOverlay is read from JFMT_* environment variables.
type envOverlay struct {
	EmitComments *bool   `envconfig:"EMIT_COMMENTS"`
	Indent       *string `envconfig:"INDENT"`
}

// LoadConfig reads a jfmt.toml file, filling unset keys from
// DefaultConfig.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	var file fileConfig
	if _, err := toml.Decode(string(data), &file); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if file.EmitComments != nil {
		cfg.EmitComments = *file.EmitComments
	}
	if file.Indent != nil {
		cfg.Indent = *file.Indent
	}
	cfg.Exclude = file.Exclude

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig searches for jfmt.toml starting from dir and walking up to
// parent directories, stopping at a .git boundary. It returns the path of
// the file and its config, or "" and DefaultConfig if none is found.
func FindConfig(fs afero.Fs, dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", DefaultConfig(), err
	}
	for {
		path := filepath.Join(dir, ConfigFile)
		if _, err := fs.Stat(path); err == nil {
			cfg, err := LoadConfig(fs, path)
			if err != nil {
				return "", cfg, err
			}
			slog.Debug("loaded config", "path", path)
			return path, cfg, nil
		}

		if _, err := fs.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", DefaultConfig(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", DefaultConfig(), nil
		}
		dir = parent
	}
}

// WithEnv overlays JFMT_EMIT_COMMENTS and JFMT_INDENT, as found by lookup,
// onto c. A nil lookup reads the process environment.
func (c Config) WithEnv(lookup func(string) (string, bool)) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	var env envOverlay
	if err := envconfig.Process("jfmt", &env, lookup); err != nil {
		return c, fmt.Errorf("reading environment: %w", err)
	}
	if env.EmitComments != nil {
		c.EmitComments = *env.EmitComments
	}
	if env.Indent != nil {
		c.Indent = *env.Indent
	}
	return c, c.Validate()
}

// Validate rejects an indent containing anything but spaces and tabs, and
// malformed exclude globs.
func (c Config) Validate() error {
	if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("indent must be spaces or tabs, got %q", c.Indent)
	}
	for _, pattern := range c.Exclude {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("exclude %q: %w", pattern, err)
		}
	}
	return nil
}

// Excluded reports whether path's base name matches an exclude glob.
func (c Config) Excluded(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

// PrinterOptions translates c for the printer.
func (c Config) PrinterOptions() printer.Options {
	return printer.Options{
		EmitComments: c.EmitComments,
		Indent:       c.Indent,
		Logger:       slog.Default(),
	}
}

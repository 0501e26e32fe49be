package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// ThemeConfig selects a palette family and optional per-colour overrides.
// Colours accept ANSI indices ("62") or hex values ("#ff79c6").
type ThemeConfig struct {
	Name    string `toml:"name"` // preset family, see ValidThemeNames
	Mode    string `toml:"mode"` // "auto", "light" or "dark"
	Primary string `toml:"primary,omitempty"`
	Accent  string `toml:"accent,omitempty"`
	Success string `toml:"success,omitempty"`
	Error   string `toml:"error,omitempty"`
	Muted   string `toml:"muted,omitempty"`
	Normal  string `toml:"normal,omitempty"`
	Info    string `toml:"info,omitempty"`
	Warning string `toml:"warning,omitempty"`
}

// PasswordConfig holds password prompt defaults.
type PasswordConfig struct {
	Mask string `toml:"mask,omitempty"` // replaces the theme's mask glyph when set
}

// SpinnerConfig holds spinner defaults.
type SpinnerConfig struct {
	Interval Duration `toml:"interval"`
}

// Config holds the clack configuration
type Config struct {
	ASCII    bool           `toml:"ascii"` // force ASCII glyphs
	Theme    ThemeConfig    `toml:"theme"`
	Password PasswordConfig `toml:"password"`
	Spinner  SpinnerConfig  `toml:"spinner"`
}

// Duration is a time.Duration that decodes from TOML strings like "100ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultSpinnerInterval is the spinner frame interval when none is configured.
const DefaultSpinnerInterval = 100 * time.Millisecond

// Default returns the default configuration
func Default() Config {
	return Config{
		Theme: ThemeConfig{
			Name: "default",
			Mode: "auto",
		},
		Spinner: SpinnerConfig{
			Interval: Duration{DefaultSpinnerInterval},
		},
	}
}

type ctxKey struct{}

// WithConfig attaches a config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns a default config if none is attached.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(ctxKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// Path returns the path of the global config file.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "clack", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clack", "config.toml"), nil
}

// rawConfig mirrors the file layout; empty fields mean "not set".
type rawConfig struct {
	ASCII    *bool          `toml:"ascii"`
	Theme    ThemeConfig    `toml:"theme"`
	Password PasswordConfig `toml:"password"`
	Spinner  SpinnerConfig  `toml:"spinner"`
}

// Load reads config from ~/.config/clack/config.toml and applies
// environment overrides.
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return applyEnv(Default())
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Default(), err
	}
	return applyEnv(cfg)
}

// LoadFile reads a config from path on top of the defaults.
// A missing file yields Default() without error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (Config, error) {
	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := raw.validate(); err != nil {
		return Default(), err
	}
	return merge(Default(), raw), nil
}

// merge overlays the non-empty fields of raw onto base.
func merge(base Config, raw rawConfig) Config {
	if raw.ASCII != nil {
		base.ASCII = *raw.ASCII
	}

	t := raw.Theme
	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&base.Theme.Name, t.Name)
	overlay(&base.Theme.Mode, t.Mode)
	overlay(&base.Theme.Primary, t.Primary)
	overlay(&base.Theme.Accent, t.Accent)
	overlay(&base.Theme.Success, t.Success)
	overlay(&base.Theme.Error, t.Error)
	overlay(&base.Theme.Muted, t.Muted)
	overlay(&base.Theme.Normal, t.Normal)
	overlay(&base.Theme.Info, t.Info)
	overlay(&base.Theme.Warning, t.Warning)
	overlay(&base.Password.Mask, raw.Password.Mask)

	if raw.Spinner.Interval.Duration > 0 {
		base.Spinner.Interval = raw.Spinner.Interval
	}
	return base
}

// applyEnv applies CLACK_THEME and CLACK_ASCII on top of cfg.
func applyEnv(cfg Config) (Config, error) {
	if name := os.Getenv("CLACK_THEME"); name != "" {
		if !isValidThemeName(name) {
			return cfg, fmt.Errorf("invalid CLACK_THEME %q: must be %s", name, formatOptions(ValidThemeNames))
		}
		cfg.Theme.Name = name
	}
	if v := os.Getenv("CLACK_ASCII"); v != "" {
		ascii, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid CLACK_ASCII %q: %w", v, err)
		}
		cfg.ASCII = ascii
	}
	return cfg, nil
}

// DefaultFile returns the content written by "clack config init".
func DefaultFile() string {
	return `# clack configuration
# Config location: ~/.config/clack/config.toml

# Draw with ASCII glyphs instead of Unicode box drawing
# ascii = false

[theme]
# Preset family: none, default, dracula, nord, gruvbox, catppuccin
name = "default"
# Colour mode: auto, light, dark
mode = "auto"
# Per-colour overrides (ANSI index or hex)
# primary = "62"
# accent = "#ff79c6"

[password]
# Glyph drawn for each typed character
# mask = "•"

[spinner]
# Frame interval
interval = "100ms"
`
}

// DefaultLocalFile returns the content written by "clack config init --local".
func DefaultLocalFile() string {
	return `# clack local configuration
# Overrides the global config for prompts run from this directory.

# ascii = true

# [theme]
# name = "nord"

# [password]
# mask = "*"
`
}

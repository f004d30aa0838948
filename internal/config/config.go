// Package config loads the YAML file that configures the tuikit demo.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tui "github.com/grindlemire/tuikit"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Layout kinds accepted in LayoutConfig.Kind.
const (
	LayoutGrid    = "grid"
	LayoutCompass = "compass"
	LayoutStrip   = "strip"
)

// Glyph modes accepted in Config.Glyphs.
const (
	GlyphsAuto    = "auto"
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

var borders = map[string]tui.BorderStyle{
	"none":    tui.BorderNone,
	"single":  tui.BorderSingle,
	"double":  tui.BorderDouble,
	"rounded": tui.BorderRounded,
	"thick":   tui.BorderThick,
	"ascii":   tui.BorderASCII,
}

// Config represents the demo configuration.
type Config struct {
	Title  string       `yaml:"title"`
	Border string       `yaml:"border"`
	Glyphs string       `yaml:"glyphs"`
	Layout LayoutConfig `yaml:"layout"`
	Theme  ThemeConfig  `yaml:"theme"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig selects how the demo body arranges its cells.
type LayoutConfig struct {
	Kind    string `yaml:"kind"`
	Columns int    `yaml:"columns,omitempty"`
	Rows    int    `yaml:"rows,omitempty"`
}

// ThemeConfig holds colors as "#rrggbb" strings. Empty means the
// terminal default.
type ThemeConfig struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Accent     string `yaml:"accent,omitempty"`
}

// LogConfig configures the debug log.
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Default returns a new Config with default values.
func Default() *Config {
	return &Config{
		Title:  "tuikit",
		Border: "rounded",
		Glyphs: GlyphsAuto,
		Layout: LayoutConfig{
			Kind:    LayoutGrid,
			Columns: 2,
			Rows:    2,
		},
		Theme: ThemeConfig{
			Accent: "#5f87ff",
		},
		Log: LogConfig{
			Level: "debug",
		},
	}
}

// Load reads the configuration at path on top of the defaults. An empty
// path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Layout.Kind {
	case LayoutGrid:
		if c.Layout.Columns < 1 || c.Layout.Rows < 1 {
			errs = append(errs, fmt.Errorf("%w: grid needs at least one column and row, got %dx%d", ErrInvalid, c.Layout.Columns, c.Layout.Rows))
		}
	case LayoutCompass, LayoutStrip:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown layout %q", ErrInvalid, c.Layout.Kind))
	}

	if _, ok := borders[c.Border]; !ok {
		errs = append(errs, fmt.Errorf("%w: unknown border %q", ErrInvalid, c.Border))
	}

	switch c.Glyphs {
	case GlyphsAuto, GlyphsUnicode, GlyphsASCII:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown glyph mode %q", ErrInvalid, c.Glyphs))
	}

	for _, field := range []struct{ name, hex string }{
		{"foreground", c.Theme.Foreground},
		{"background", c.Theme.Background},
		{"accent", c.Theme.Accent},
	} {
		if _, err := color(field.hex); err != nil {
			errs = append(errs, fmt.Errorf("%w: theme %s: %w", ErrInvalid, field.name, err))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Log.Level))
	}

	return errors.Join(errs...)
}

// BorderStyle returns the configured border. Unknown names mean single.
func (c *Config) BorderStyle() tui.BorderStyle {
	if b, ok := borders[c.Border]; ok {
		return b
	}
	return tui.BorderSingle
}

// Capabilities applies the glyph override to detected capabilities.
func (c *Config) Capabilities(detected tui.Capabilities) tui.Capabilities {
	switch c.Glyphs {
	case GlyphsUnicode:
		detected.Unicode = true
	case GlyphsASCII:
		detected.Unicode = false
	}
	return detected
}

// Style returns the base text style from the theme.
func (t ThemeConfig) Style() tui.Style {
	fg, _ := color(t.Foreground)
	bg, _ := color(t.Background)
	return tui.NewStyle().Foreground(fg).Background(bg)
}

// AccentStyle returns the base style with the accent as foreground.
func (t ThemeConfig) AccentStyle() tui.Style {
	accent, _ := color(t.Accent)
	return t.Style().Foreground(accent)
}

func color(hex string) (tui.Color, error) {
	if hex == "" {
		return tui.DefaultColor(), nil
	}
	return tui.HexColor(hex)
}

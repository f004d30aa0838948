package tui

import (
	"os"
	"strings"
)

// ColorCapability describes how many colors a terminal can display.
type ColorCapability int

const (
	// ColorNone indicates a monochrome terminal.
	ColorNone ColorCapability = iota
	// Color16 indicates basic 16-color support.
	Color16
	// Color256 indicates the 256 color palette.
	Color256
	// ColorTrue indicates 24-bit color.
	ColorTrue
)

// Capabilities describes what a render target can display. It travels with
// the Surface handed to Draw, so components choose glyphs and colors from
// the surface they are drawing into rather than from global state.
type Capabilities struct {
	Colors  ColorCapability
	Unicode bool
}

// DefaultCapabilities is a unicode, 256 color target.
func DefaultCapabilities() Capabilities {
	return Capabilities{Colors: Color256, Unicode: true}
}

// DetectCapabilities determines terminal capabilities from environment variables.
// Returns conservative defaults when detection fails.
func DetectCapabilities() Capabilities {
	caps := Capabilities{Colors: Color16, Unicode: true}

	colorterm := strings.ToLower(os.Getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		caps.Colors = ColorTrue
	}
	for _, env := range []string{"WT_SESSION", "ITERM_SESSION_ID", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "VTE_VERSION"} {
		if os.Getenv(env) != "" {
			caps.Colors = ColorTrue
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	switch {
	case term == "dumb":
		return Capabilities{Colors: ColorNone, Unicode: false}
	case caps.Colors == ColorTrue:
	case strings.Contains(term, "256color"):
		caps.Colors = Color256
	case strings.Contains(term, "truecolor"):
		caps.Colors = ColorTrue
	}

	lang := os.Getenv("LC_ALL")
	if lang == "" {
		lang = os.Getenv("LANG")
	}
	if lang != "" {
		upper := strings.ToUpper(lang)
		caps.Unicode = strings.Contains(upper, "UTF-8") || strings.Contains(upper, "UTF8")
	}
	return caps
}

// SupportsColor returns true if the target can display the given color as is.
func (c Capabilities) SupportsColor(color Color) bool {
	switch color.Type() {
	case ColorANSI:
		if color.ANSI() < 16 {
			return c.Colors >= Color16
		}
		return c.Colors >= Color256
	case ColorRGB:
		return c.Colors >= ColorTrue
	}
	return true
}

// EffectiveColor returns the color to use given the target's capabilities,
// approximating RGB with the palette and dropping to the default color on
// monochrome targets.
func (c Capabilities) EffectiveColor(color Color) Color {
	switch {
	case c.SupportsColor(color):
		return color
	case c.Colors == ColorNone:
		return DefaultColor()
	case color.Type() == ColorRGB && c.Colors >= Color256:
		return color.ToANSI()
	}
	return DefaultColor()
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string
	switch c.Colors {
	case ColorNone:
		parts = append(parts, "no-color")
	case Color16:
		parts = append(parts, "16-color")
	case Color256:
		parts = append(parts, "256-color")
	case ColorTrue:
		parts = append(parts, "true-color")
	}
	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}
	return strings.Join(parts, ", ")
}

package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned by HexColor for malformed input.
var ErrInvalidColor = errors.New("invalid hex color")

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorDefault represents the terminal's default color (no color set).
	ColorDefault ColorType = iota
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// Color is a terminal color: the terminal default, an ANSI 256 palette
// entry, or a 24-bit RGB value. The zero value is the terminal default.
type Color struct {
	typ     ColorType
	r, g, b uint8
}

// DefaultColor returns a Color representing the terminal's default color.
func DefaultColor() Color {
	return Color{}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses "#RRGGBB" or "#RGB" into an RGB Color.
func HexColor(hex string) (Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("%w %q: expected #RGB or #RRGGBB", ErrInvalidColor, hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: %w", ErrInvalidColor, hex, err)
	}
	return RGBColor(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsDefault returns true if this is the terminal's default color.
func (c Color) IsDefault() bool {
	return c.typ == ColorDefault
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("tui: Color.ANSI called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("tui: Color.RGB called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// ToANSI approximates an RGB color with the nearest entry of the 256 color
// palette, using the grayscale ramp for neutral colors and the 6x6x6 cube
// otherwise. Non-RGB colors are returned unchanged.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}
	if c.r == c.g && c.g == c.b {
		switch {
		case c.r < 8:
			return ANSIColor(16)
		case c.r > 248:
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(c.r)-8)*24/240))
	}
	cube := func(v uint8) int { return int(v) * 5 / 255 }
	return ANSIColor(uint8(16 + 36*cube(c.r) + 6*cube(c.g) + cube(c.b)))
}

// String returns the "#rrggbb" form of an RGB color, the palette index for
// ANSI colors and "default" otherwise.
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return strconv.Itoa(int(c.r))
	case ColorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return "default"
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack = ANSIColor(8)
	BrightWhite = ANSIColor(15)
)

package tui

import "strings"

// Attr is a set of text attributes. Values combine with |.
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << (iota - 1)
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

var attrNames = []struct {
	attr Attr
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrStrikethrough, "strikethrough"},
}

// Style is how a cell is painted. The zero value is the terminal default,
// so styles compare with == and a Cell stays a plain value.
type Style struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// Foreground returns s painted with c.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns s over c.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// With returns s with every given attribute added.
func (s Style) With(attrs ...Attr) Style {
	for _, a := range attrs {
		s.Attrs |= a
	}
	return s
}

// Without returns s with the given attributes cleared.
func (s Style) Without(a Attr) Style {
	s.Attrs &^= a
	return s
}

// HasAttr reports whether every attribute in a is set.
func (s Style) HasAttr(a Attr) bool {
	return s.Attrs&a == a
}

// String lists the colors and attributes, for logs and test failures.
func (s Style) String() string {
	parts := []string{"fg=" + s.Fg.String(), "bg=" + s.Bg.String()}
	for _, an := range attrNames {
		if s.HasAttr(an.attr) {
			parts = append(parts, an.name)
		}
	}
	return strings.Join(parts, " ")
}

package tui

import "github.com/mattn/go-runewidth"

// Cell is the element stored at each coordinate of a Canvas.
// Wide characters (CJK, emoji) occupy two cells; the first holds the rune
// and the second is a continuation with Width 0.
type Cell struct {
	Rune  rune
	Style Style
	Width uint8
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style, Width: uint8(RuneWidth(r))}
}

// BlankCell returns a space with the given style.
func BlankCell(style Style) Cell {
	return Cell{Rune: ' ', Style: style, Width: 1}
}

// IsContinuation returns true if this cell is the trailing half of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// RuneWidth returns the number of columns r occupies: 2 for wide
// characters and 1 for everything else, including zero-width and control
// runes, which still need a cell to be represented.
func RuneWidth(r rune) int {
	if runewidth.RuneWidth(r) == 2 {
		return 2
	}
	return 1
}

// StringWidth returns the display width of s in columns.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

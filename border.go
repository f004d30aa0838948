package tui

// BorderStyle represents different styles of box borders.
type BorderStyle int

const (
	// BorderNone indicates no border should be drawn.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters (─, │, ┌, etc.)
	BorderSingle
	// BorderDouble uses double-line box-drawing characters (═, ║, ╔, etc.)
	BorderDouble
	// BorderRounded uses rounded corner characters (─, │, ╭, ╮, ╰, ╯)
	BorderRounded
	// BorderThick uses thick/heavy box-drawing characters (━, ┃, ┏, etc.)
	BorderThick
	// BorderASCII uses plain ASCII (+, -, |) for targets without unicode.
	BorderASCII
)

// BorderChars holds the characters used to draw a box border.
type BorderChars struct {
	TopLeft     rune
	Top         rune
	TopRight    rune
	Left        rune
	Right       rune
	BottomLeft  rune
	Bottom      rune
	BottomRight rune
}

// Chars returns the box-drawing characters for this border style.
func (b BorderStyle) Chars() BorderChars {
	switch b {
	case BorderSingle:
		return BorderChars{
			TopLeft: '┌', Top: '─', TopRight: '┐',
			Left: '│', Right: '│',
			BottomLeft: '└', Bottom: '─', BottomRight: '┘',
		}
	case BorderDouble:
		return BorderChars{
			TopLeft: '╔', Top: '═', TopRight: '╗',
			Left: '║', Right: '║',
			BottomLeft: '╚', Bottom: '═', BottomRight: '╝',
		}
	case BorderRounded:
		return BorderChars{
			TopLeft: '╭', Top: '─', TopRight: '╮',
			Left: '│', Right: '│',
			BottomLeft: '╰', Bottom: '─', BottomRight: '╯',
		}
	case BorderThick:
		return BorderChars{
			TopLeft: '┏', Top: '━', TopRight: '┓',
			Left: '┃', Right: '┃',
			BottomLeft: '┗', Bottom: '━', BottomRight: '┛',
		}
	case BorderASCII:
		return BorderChars{
			TopLeft: '+', Top: '-', TopRight: '+',
			Left: '|', Right: '|',
			BottomLeft: '+', Bottom: '-', BottomRight: '+',
		}
	default:
		// BorderNone or unknown - return spaces
		return BorderChars{
			TopLeft: ' ', Top: ' ', TopRight: ' ',
			Left: ' ', Right: ' ',
			BottomLeft: ' ', Bottom: ' ', BottomRight: ' ',
		}
	}
}

// For returns the style to use on a target with the given capabilities:
// the style itself when unicode is available, BorderASCII otherwise.
func (b BorderStyle) For(caps Capabilities) BorderStyle {
	if b == BorderNone || caps.Unicode {
		return b
	}
	return BorderASCII
}

// DrawBox draws a border around box, writing only the cells inside region.
// The glyphs degrade to ASCII when the surface lacks unicode. Boxes smaller
// than 2x2 are not drawn.
func DrawBox(s Surface, box Rect, border BorderStyle, style Style, region Rect) {
	if box.Size.Width < 2 || box.Size.Height < 2 || border == BorderNone {
		return
	}
	chars := border.For(s.Caps()).Chars()

	left := box.Origin.X
	right := box.Right() - 1
	top := box.Origin.Y
	bottom := box.Bottom() - 1

	set := func(x, y int, r rune) {
		if region.Contains(Pt(x, y)) {
			s.SetCell(x, y, Cell{Rune: r, Style: style, Width: 1})
		}
	}

	// Draw corners
	set(left, top, chars.TopLeft)
	set(right, top, chars.TopRight)
	set(left, bottom, chars.BottomLeft)
	set(right, bottom, chars.BottomRight)

	// Draw top and bottom edges
	for x := left + 1; x < right; x++ {
		set(x, top, chars.Top)
		set(x, bottom, chars.Bottom)
	}

	// Draw left and right edges
	for y := top + 1; y < bottom; y++ {
		set(left, y, chars.Left)
		set(right, y, chars.Right)
	}
}

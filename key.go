package tui

import "fmt"

// Key identifies a keyboard key. Printable characters are reported as
// KeyRune with the character in KeyEvent.Rune.
type Key uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone Key = iota
	// KeyRune represents a printable character.
	KeyRune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyCtrlC is reported separately so hosts can bind quit without
	// decoding modifiers.
	KeyCtrlC
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Escape",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBacktab:   "Backtab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyCtrlC:     "Ctrl+C",
}

// String returns a human-readable representation of the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Modifier is a bitmask of held modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifier.
	ModNone Modifier = 0
	// ModShift is the shift key.
	ModShift Modifier = 1 << (iota - 1)
	// ModCtrl is the control key.
	ModCtrl
	// ModAlt is the alt/meta key.
	ModAlt
)

// Has returns true if all of the given modifiers are held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

package tui

// Event is an input notification delivered to a component tree. The set of
// event kinds is closed; components type-switch on the kinds they understand
// and ignore the rest.
type Event interface {
	// isEvent is a marker method to prevent external implementations.
	isEvent()
}

// KeyEvent represents a keyboard input event.
type KeyEvent struct {
	// Key is the key pressed. For printable characters, this is KeyRune.
	Key Key
	// Rune is the character for KeyRune events. Zero for special keys.
	Rune rune
	// Mod contains modifier flags.
	Mod Modifier
}

func (KeyEvent) isEvent() {}

// Is checks if the event matches a specific key with optional modifiers.
// Example: event.Is(KeyEnter) or event.Is(KeyRune, ModCtrl)
func (e KeyEvent) Is(key Key, mods ...Modifier) bool {
	if e.Key != key {
		return false
	}
	if len(mods) == 0 {
		return true
	}
	var combined Modifier
	for _, m := range mods {
		combined |= m
	}
	return e.Mod == combined
}

// Char returns the rune if this is a KeyRune event, or 0 otherwise.
func (e KeyEvent) Char() rune {
	if e.Key == KeyRune {
		return e.Rune
	}
	return 0
}

// MouseButton represents which mouse button was involved in an event.
type MouseButton int

const (
	// MouseLeft is the left (primary) mouse button.
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	// MouseNone indicates no button (used for motion events).
	MouseNone
)

// MouseAction represents the type of mouse action.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
)

// MouseEvent represents a mouse input event. Position is relative to the
// component receiving the event; containers translate it on the way down.
type MouseEvent struct {
	Button   MouseButton
	Action   MouseAction
	Position Point
	Mod      Modifier
}

func (MouseEvent) isEvent() {}

// Translated returns a copy of the event with the position moved by -origin.
func (e MouseEvent) Translated(origin Point) MouseEvent {
	e.Position = e.Position.Sub(origin)
	return e
}

// ResizeEvent is delivered when the terminal changes size.
type ResizeEvent struct {
	Size Extent
}

func (ResizeEvent) isEvent() {}

// PasteEvent carries bracketed-paste text.
type PasteEvent struct {
	Text string
}

func (PasteEvent) isEvent() {}

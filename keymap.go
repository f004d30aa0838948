package tui

// KeyMap is an ordered list of host-level key bindings, consulted by a
// backend before a key event reaches the component tree. It is a value;
// hosts build one and keep it.
type KeyMap []KeyBinding

// KeyBinding associates a key pattern with a handler.
type KeyBinding struct {
	Pattern KeyPattern
	Handler func(KeyEvent)
	Stop    bool // If true, later bindings and the component tree never see the key
}

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyTab, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// OnKey creates a broadcast binding for a specific key.
// Other bindings for the same key will also fire.
func OnKey(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
	}
}

// OnKeyStop creates a binding that consumes a specific key.
func OnKeyStop(key Key, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Key: key},
		Handler: handler,
		Stop:    true,
	}
}

// OnRune creates a broadcast binding for a specific printable character.
func OnRune(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
	}
}

// OnRuneStop creates a binding that consumes a specific printable character.
func OnRuneStop(r rune, handler func(KeyEvent)) KeyBinding {
	return KeyBinding{
		Pattern: KeyPattern{Rune: r},
		Handler: handler,
		Stop:    true,
	}
}

// Matches reports whether ev satisfies the pattern.
func (p KeyPattern) Matches(ev KeyEvent) bool {
	if p.RequireNoMods && ev.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ev.Mod != p.Mod {
		return false
	}
	if p.Rune != 0 && ev.Rune == p.Rune && ev.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ev.Key == p.Key {
		return true
	}
	return false
}

// Dispatch runs every binding matching ev, in order, until one with Stop
// set has run. It reports whether ev was consumed.
func (km KeyMap) Dispatch(ev KeyEvent) bool {
	for _, b := range km {
		if !b.Pattern.Matches(ev) {
			continue
		}
		if b.Handler != nil {
			b.Handler(ev)
		}
		if b.Stop {
			return true
		}
	}
	return false
}

// FocusKeys returns the standard traversal bindings for w: Tab moves focus
// forward and Backtab moves it back.
func FocusKeys(w *Window) KeyMap {
	return KeyMap{
		OnKeyStop(KeyTab, func(KeyEvent) { w.FocusNext() }),
		OnKeyStop(KeyBacktab, func(KeyEvent) { w.FocusPrevious() }),
	}
}

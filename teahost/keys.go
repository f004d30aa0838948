package teahost

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	tui "github.com/grindlemire/tuikit"
)

// KeyMap holds the host-level bindings.
type KeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Quit     key.Binding
}

// DefaultKeyMap binds Tab, Shift+Tab and Ctrl+C.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Previous: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Quit},
	}
}

var teaKeys = map[tea.KeyType]tui.Key{
	tea.KeyEnter:     tui.KeyEnter,
	tea.KeyTab:       tui.KeyTab,
	tea.KeyShiftTab:  tui.KeyBacktab,
	tea.KeyEsc:       tui.KeyEscape,
	tea.KeyBackspace: tui.KeyBackspace,
	tea.KeyDelete:    tui.KeyDelete,
	tea.KeyInsert:    tui.KeyInsert,
	tea.KeyUp:        tui.KeyUp,
	tea.KeyDown:      tui.KeyDown,
	tea.KeyLeft:      tui.KeyLeft,
	tea.KeyRight:     tui.KeyRight,
	tea.KeyHome:      tui.KeyHome,
	tea.KeyEnd:       tui.KeyEnd,
	tea.KeyPgUp:      tui.KeyPageUp,
	tea.KeyPgDown:    tui.KeyPageDown,
	tea.KeyCtrlC:     tui.KeyCtrlC,
	tea.KeyF1:        tui.KeyF1,
	tea.KeyF2:        tui.KeyF2,
	tea.KeyF3:        tui.KeyF3,
	tea.KeyF4:        tui.KeyF4,
	tea.KeyF5:        tui.KeyF5,
	tea.KeyF6:        tui.KeyF6,
	tea.KeyF7:        tui.KeyF7,
	tea.KeyF8:        tui.KeyF8,
	tea.KeyF9:        tui.KeyF9,
	tea.KeyF10:       tui.KeyF10,
	tea.KeyF11:       tui.KeyF11,
	tea.KeyF12:       tui.KeyF12,
}

// keyEvents converts a key message. A message carrying several runes, as
// Bubble Tea reports fast typing, becomes one event per rune.
func keyEvents(msg tea.KeyMsg) []tui.KeyEvent {
	var mod tui.Modifier
	if msg.Alt {
		mod = tui.ModAlt
	}

	switch {
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		out := make([]tui.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, tui.KeyEvent{Key: tui.KeyRune, Rune: r, Mod: mod})
		}
		return out
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		if k, ok := teaKeys[msg.Type]; ok {
			return []tui.KeyEvent{{Key: k, Mod: mod}}
		}
		return []tui.KeyEvent{{Key: tui.KeyRune, Rune: 'a' + rune(msg.Type-tea.KeyCtrlA), Mod: mod | tui.ModCtrl}}
	}
	if k, ok := teaKeys[msg.Type]; ok {
		return []tui.KeyEvent{{Key: k, Mod: mod}}
	}
	return nil
}

// mouseEvent converts a mouse message. Motion with no button held reports
// false.
func mouseEvent(msg tea.MouseMsg) (tui.MouseEvent, bool) {
	out := tui.MouseEvent{Position: tui.Pt(msg.X, msg.Y)}
	if msg.Shift {
		out.Mod |= tui.ModShift
	}
	if msg.Alt {
		out.Mod |= tui.ModAlt
	}
	if msg.Ctrl {
		out.Mod |= tui.ModCtrl
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		out.Button = tui.MouseLeft
	case tea.MouseButtonMiddle:
		out.Button = tui.MouseMiddle
	case tea.MouseButtonRight:
		out.Button = tui.MouseRight
	case tea.MouseButtonWheelUp:
		out.Button = tui.MouseWheelUp
	case tea.MouseButtonWheelDown:
		out.Button = tui.MouseWheelDown
	default:
		out.Button = tui.MouseNone
	}

	switch msg.Action {
	case tea.MouseActionPress:
		out.Action = tui.MousePress
	case tea.MouseActionRelease:
		out.Action = tui.MouseRelease
	default:
		if out.Button == tui.MouseNone {
			return tui.MouseEvent{}, false
		}
		out.Action = tui.MouseDrag
	}
	return out, true
}

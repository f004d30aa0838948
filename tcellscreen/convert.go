package tcellscreen

import (
	"github.com/gdamore/tcell/v2"
	tui "github.com/grindlemire/tuikit"
)

var keys = map[tcell.Key]tui.Key{
	tcell.KeyEnter:      tui.KeyEnter,
	tcell.KeyTab:        tui.KeyTab,
	tcell.KeyBacktab:    tui.KeyBacktab,
	tcell.KeyEscape:     tui.KeyEscape,
	tcell.KeyBackspace:  tui.KeyBackspace,
	tcell.KeyBackspace2: tui.KeyBackspace,
	tcell.KeyDelete:     tui.KeyDelete,
	tcell.KeyInsert:     tui.KeyInsert,
	tcell.KeyUp:         tui.KeyUp,
	tcell.KeyDown:       tui.KeyDown,
	tcell.KeyLeft:       tui.KeyLeft,
	tcell.KeyRight:      tui.KeyRight,
	tcell.KeyHome:       tui.KeyHome,
	tcell.KeyEnd:        tui.KeyEnd,
	tcell.KeyPgUp:       tui.KeyPageUp,
	tcell.KeyPgDn:       tui.KeyPageDown,
	tcell.KeyCtrlC:      tui.KeyCtrlC,
}

// keyEvent converts a tcell key event. Control letters other than Ctrl+C
// become the lowercase rune with ModCtrl. Keys with no counterpart report
// false.
func keyEvent(ev *tcell.EventKey) (tui.KeyEvent, bool) {
	mod := modifiers(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return tui.KeyEvent{Key: tui.KeyRune, Rune: ev.Rune(), Mod: mod}, true
	}
	if key, ok := keys[k]; ok {
		return tui.KeyEvent{Key: key, Mod: mod}, true
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return tui.KeyEvent{Key: tui.KeyF1 + tui.Key(k-tcell.KeyF1), Mod: mod}, true
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return tui.KeyEvent{Key: tui.KeyRune, Rune: 'a' + rune(k-tcell.KeyCtrlA), Mod: mod | tui.ModCtrl}, true
	}
	return tui.KeyEvent{}, false
}

func modifiers(m tcell.ModMask) tui.Modifier {
	var mod tui.Modifier
	if m&tcell.ModShift != 0 {
		mod |= tui.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= tui.ModCtrl
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mod |= tui.ModAlt
	}
	return mod
}

// mouseTracker turns tcell's button-state reports into press, drag and
// release actions.
type mouseTracker struct {
	last tcell.ButtonMask
}

// event converts a tcell mouse report. Plain motion with no button held
// reports false.
func (m *mouseTracker) event(ev *tcell.EventMouse) (tui.MouseEvent, bool) {
	x, y := ev.Position()
	out := tui.MouseEvent{Position: tui.Pt(x, y), Mod: modifiers(ev.Modifiers())}
	buttons := ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3 | tcell.WheelUp | tcell.WheelDown)
	last := m.last
	m.last = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case buttons&tcell.WheelUp != 0:
		out.Button, out.Action = tui.MouseWheelUp, tui.MousePress
	case buttons&tcell.WheelDown != 0:
		out.Button, out.Action = tui.MouseWheelDown, tui.MousePress
	case buttons == 0 && last == 0:
		return tui.MouseEvent{}, false
	case buttons == 0:
		out.Button, out.Action = button(last), tui.MouseRelease
	case buttons == last:
		out.Button, out.Action = button(buttons), tui.MouseDrag
	default:
		out.Button, out.Action = button(buttons), tui.MousePress
	}
	return out, true
}

func button(b tcell.ButtonMask) tui.MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return tui.MouseLeft
	case b&tcell.Button3 != 0:
		return tui.MouseMiddle
	case b&tcell.Button2 != 0:
		return tui.MouseRight
	}
	return tui.MouseNone
}

// style converts a cell style, degrading colors to what caps allows.
func style(st tui.Style, caps tui.Capabilities) tcell.Style {
	return tcell.StyleDefault.
		Foreground(color(caps.EffectiveColor(st.Fg))).
		Background(color(caps.EffectiveColor(st.Bg))).
		Bold(st.HasAttr(tui.AttrBold)).
		Dim(st.HasAttr(tui.AttrDim)).
		Italic(st.HasAttr(tui.AttrItalic)).
		Underline(st.HasAttr(tui.AttrUnderline)).
		Blink(st.HasAttr(tui.AttrBlink)).
		Reverse(st.HasAttr(tui.AttrReverse)).
		StrikeThrough(st.HasAttr(tui.AttrStrikethrough))
}

func color(c tui.Color) tcell.Color {
	switch c.Type() {
	case tui.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case tui.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// capabilities derives what the terminal can display from tcell.
func capabilities(s tcell.Screen) tui.Capabilities {
	caps := tui.Capabilities{Unicode: s.CanDisplay('─', false)}
	switch n := s.Colors(); {
	case n >= 1<<24:
		caps.Colors = tui.ColorTrue
	case n >= 256:
		caps.Colors = tui.Color256
	case n >= 8:
		caps.Colors = tui.Color16
	default:
		caps.Colors = tui.ColorNone
	}
	return caps
}

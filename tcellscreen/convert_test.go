package tcellscreen

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	tui "github.com/grindlemire/tuikit"
)

func TestKeyEvent(t *testing.T) {
	type tc struct {
		event  *tcell.EventKey
		expect tui.KeyEvent
		ok     bool
	}

	tests := map[string]tc{
		"rune": {
			event:  tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			expect: tui.KeyEvent{Key: tui.KeyRune, Rune: 'a'},
			ok:     true,
		},
		"alt rune": {
			event:  tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			expect: tui.KeyEvent{Key: tui.KeyRune, Rune: 'x', Mod: tui.ModAlt},
			ok:     true,
		},
		"enter": {
			event:  tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			expect: tui.KeyEvent{Key: tui.KeyEnter},
			ok:     true,
		},
		"backtab": {
			event:  tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone),
			expect: tui.KeyEvent{Key: tui.KeyBacktab},
			ok:     true,
		},
		"backspace2": {
			event:  tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			expect: tui.KeyEvent{Key: tui.KeyBackspace},
			ok:     true,
		},
		"function key": {
			event:  tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone),
			expect: tui.KeyEvent{Key: tui.KeyF5},
			ok:     true,
		},
		"ctrl c": {
			event:  tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
			expect: tui.KeyEvent{Key: tui.KeyCtrlC, Mod: tui.ModCtrl},
			ok:     true,
		},
		"ctrl letter": {
			event:  tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl),
			expect: tui.KeyEvent{Key: tui.KeyRune, Rune: 's', Mod: tui.ModCtrl},
			ok:     true,
		},
		"unmapped": {
			event: tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone),
			ok:    false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := keyEvent(tt.event)
			if ok != tt.ok {
				t.Fatalf("keyEvent() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.expect {
				t.Errorf("keyEvent() = %+v, want %+v", got, tt.expect)
			}
		})
	}
}

func TestMouseTracker(t *testing.T) {
	type step struct {
		buttons tcell.ButtonMask
		expect  tui.MouseEvent
		ok      bool
	}

	at := tui.Pt(3, 2)
	steps := []step{
		{buttons: tcell.ButtonNone, ok: false},
		{buttons: tcell.Button1, expect: tui.MouseEvent{Button: tui.MouseLeft, Action: tui.MousePress, Position: at}, ok: true},
		{buttons: tcell.Button1, expect: tui.MouseEvent{Button: tui.MouseLeft, Action: tui.MouseDrag, Position: at}, ok: true},
		{buttons: tcell.ButtonNone, expect: tui.MouseEvent{Button: tui.MouseLeft, Action: tui.MouseRelease, Position: at}, ok: true},
		{buttons: tcell.Button2, expect: tui.MouseEvent{Button: tui.MouseRight, Action: tui.MousePress, Position: at}, ok: true},
		{buttons: tcell.ButtonNone, expect: tui.MouseEvent{Button: tui.MouseRight, Action: tui.MouseRelease, Position: at}, ok: true},
		{buttons: tcell.WheelDown, expect: tui.MouseEvent{Button: tui.MouseWheelDown, Action: tui.MousePress, Position: at}, ok: true},
		{buttons: tcell.ButtonNone, ok: false},
	}

	var m mouseTracker
	for i, s := range steps {
		got, ok := m.event(tcell.NewEventMouse(at.X, at.Y, s.buttons, tcell.ModNone))
		if ok != s.ok {
			t.Fatalf("step %d: event() ok = %v, want %v", i, ok, s.ok)
		}
		if got != s.expect {
			t.Errorf("step %d: event() = %+v, want %+v", i, got, s.expect)
		}
	}
}

func TestStyle(t *testing.T) {
	red := tui.RGBColor(255, 0, 0)
	st := tui.NewStyle().Foreground(red).Background(tui.ANSIColor(4)).With(tui.AttrBold, tui.AttrReverse)

	type tc struct {
		caps   tui.Capabilities
		wantFg tcell.Color
	}

	tests := map[string]tc{
		"true color keeps rgb": {
			caps:   tui.Capabilities{Colors: tui.ColorTrue},
			wantFg: tcell.NewRGBColor(255, 0, 0),
		},
		"256 colors approximates": {
			caps:   tui.Capabilities{Colors: tui.Color256},
			wantFg: tcell.PaletteColor(196),
		},
		"monochrome drops color": {
			caps:   tui.Capabilities{Colors: tui.ColorNone},
			wantFg: tcell.ColorDefault,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			fg, _, attrs := style(st, tt.caps).Decompose()

			if fg != tt.wantFg {
				t.Errorf("foreground = %v, want %v", fg, tt.wantFg)
			}
			if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrReverse == 0 {
				t.Errorf("attributes = %v, want bold and reverse", attrs)
			}
			if attrs&tcell.AttrUnderline != 0 {
				t.Errorf("attributes = %v, want no underline", attrs)
			}
		})
	}
}

func TestColor(t *testing.T) {
	if got := color(tui.DefaultColor()); got != tcell.ColorDefault {
		t.Errorf("color(default) = %v, want ColorDefault", got)
	}
	if got := color(tui.ANSIColor(9)); got != tcell.PaletteColor(9) {
		t.Errorf("color(ansi 9) = %v, want %v", got, tcell.PaletteColor(9))
	}
}

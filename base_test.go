package tui

import (
	"slices"
	"testing"
)

func TestBase_FocusNext_Toggles(t *testing.T) {
	type tc struct {
		opts     []Option
		disabled bool
		expected []bool
	}

	tests := map[string]tc{
		"focusable toggles": {
			expected: []bool{true, false, true},
		},
		"refuses focus": {
			opts:     []Option{WithFocusable(false)},
			expected: []bool{false, false},
		},
		"disabled refuses focus": {
			disabled: true,
			expected: []bool{false, false},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBase("leaf", tt.opts...)
			if tt.disabled {
				b.SetEnabled(false)
			}

			for step, want := range tt.expected {
				b.FocusNext()
				if got := b.HasFocus(); got != want {
					t.Errorf("step %d: HasFocus() = %v, want %v", step, got, want)
				}
			}
		})
	}
}

func TestBase_FocusSignals(t *testing.T) {
	b := NewBase("leaf")
	rec := recordSignals(b)

	b.SetFocus()
	b.SetFocus()
	if rec.focusSet != 1 {
		t.Errorf("focus-set emissions = %d, want 1", rec.focusSet)
	}

	b.LoseFocus()
	b.LoseFocus()
	if rec.focusLost != 1 {
		t.Errorf("focus-lost emissions = %d, want 1", rec.focusLost)
	}
}

func TestBase_SetEnabled_DropsFocus(t *testing.T) {
	b := NewBase("leaf")
	b.SetSize(Ext(2, 1))
	b.SetFocus()
	rec := recordSignals(b)

	b.SetEnabled(false)

	if b.HasFocus() {
		t.Error("HasFocus() after disable = true, want false")
	}
	if rec.focusLost != 1 {
		t.Errorf("focus-lost emissions = %d, want 1", rec.focusLost)
	}
	if len(rec.redraws) != 1 {
		t.Errorf("redraw emissions = %d, want 1", len(rec.redraws))
	}
}

func TestBase_Cursor(t *testing.T) {
	type tc struct {
		opts        []Option
		move        Point
		expectState bool
		expectPos   Point
		expectSig   int
	}

	tests := map[string]tc{
		"no cursor ignores moves": {
			move:        Pt(3, 3),
			expectState: false,
			expectPos:   Point{},
			expectSig:   0,
		},
		"cursor moves": {
			opts:        []Option{WithCursor(Pt(1, 1))},
			move:        Pt(3, 3),
			expectState: true,
			expectPos:   Pt(3, 3),
			expectSig:   1,
		},
		"moving to same position is silent": {
			opts:        []Option{WithCursor(Pt(1, 1))},
			move:        Pt(1, 1),
			expectState: true,
			expectPos:   Pt(1, 1),
			expectSig:   0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBase("leaf", tt.opts...)
			rec := recordSignals(b)

			b.SetCursorPosition(tt.move)

			if got := b.CursorState(); got != tt.expectState {
				t.Errorf("CursorState() = %v, want %v", got, tt.expectState)
			}
			if got := b.CursorPosition(); got != tt.expectPos {
				t.Errorf("CursorPosition() = %v, want %v", got, tt.expectPos)
			}
			if rec.cursorPosition != tt.expectSig {
				t.Errorf("cursor-position-changed emissions = %d, want %d", rec.cursorPosition, tt.expectSig)
			}
		})
	}
}

func TestBase_SetPreferredSize(t *testing.T) {
	b := NewBase("leaf", WithPreferredSize(Ext(4, 1)))
	rec := recordSignals(b)

	b.SetPreferredSize(Ext(4, 1))
	if rec.preferred != 0 {
		t.Errorf("unchanged SetPreferredSize emitted %d times, want 0", rec.preferred)
	}

	b.SetPreferredSize(Ext(5, 2))
	if rec.preferred != 1 {
		t.Errorf("preferred-size-changed emissions = %d, want 1", rec.preferred)
	}
	if first, second := b.PreferredSize(), b.PreferredSize(); first != Ext(5, 2) || first != second {
		t.Errorf("PreferredSize() = %v then %v, want (5x2) twice", first, second)
	}
}

func TestBase_RequestRedraw(t *testing.T) {
	type tc struct {
		size    Extent
		regions []Rect
		expect  [][]Rect
	}

	tests := map[string]tc{
		"defaults to whole component": {
			size:   Ext(3, 2),
			expect: [][]Rect{{NewRect(0, 0, 3, 2)}},
		},
		"explicit regions": {
			size:    Ext(3, 2),
			regions: []Rect{NewRect(1, 1, 1, 1)},
			expect:  [][]Rect{{NewRect(1, 1, 1, 1)}},
		},
		"empty regions are dropped": {
			size:    Ext(3, 2),
			regions: []Rect{NewRect(0, 0, 0, 0), NewRect(1, 0, 1, 1)},
			expect:  [][]Rect{{NewRect(1, 0, 1, 1)}},
		},
		"unsized component emits nothing": {
			size:   Ext(0, 0),
			expect: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b := NewBase("leaf")
			b.SetSize(tt.size)
			rec := recordSignals(b)

			b.RequestRedraw(tt.regions...)

			if len(rec.redraws) != len(tt.expect) {
				t.Fatalf("redraw emissions = %d, want %d", len(rec.redraws), len(tt.expect))
			}
			for i := range tt.expect {
				if !slices.Equal(rec.redraws[i], tt.expect[i]) {
					t.Errorf("redraw %d = %v, want %v", i, rec.redraws[i], tt.expect[i])
				}
			}
		})
	}
}

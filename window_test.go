package tui

import (
	"slices"
	"testing"
)

func TestWindow_RepaintRequest_Coalesces(t *testing.T) {
	root := newMockComponent("r")
	w := NewWindow(root)
	canvas := NewCanvas(4, 2)
	w.Repaint(canvas)

	requests := 0
	w.OnRepaintRequest().Connect(func() { requests++ })

	root.RequestRedraw(NewRect(0, 0, 1, 1))
	root.RequestRedraw(NewRect(2, 0, 1, 1))
	if requests != 1 {
		t.Fatalf("repaint requests after two redraws = %d, want 1", requests)
	}

	w.Repaint(canvas)
	root.RequestRedraw(NewRect(0, 0, 1, 1))
	if requests != 2 {
		t.Errorf("repaint requests after repaint and redraw = %d, want 2", requests)
	}
	root.RequestRedraw(NewRect(1, 1, 1, 1))
	if requests != 2 {
		t.Errorf("repaint requests after third redraw = %d, want 2", requests)
	}
}

func TestWindow_Repaint_FirstIsFull(t *testing.T) {
	root := newMockComponent("r")
	w := NewWindow(root)
	canvas := NewCanvas(3, 2)

	painted := w.Repaint(canvas)

	full := NewRect(0, 0, 3, 2)
	if !slices.Equal(painted, []Rect{full}) {
		t.Errorf("Repaint() = %v, want [%v]", painted, full)
	}
	if got := root.Size(); got != Ext(3, 2) {
		t.Errorf("root Size() = %v, want (3x2)", got)
	}
	if !slices.Equal(root.draws, []Rect{full}) {
		t.Errorf("root draws = %v, want [%v]", root.draws, full)
	}
	if got := canvas.String(); got != "rrr\nrrr" {
		t.Errorf("canvas = %q, want %q", got, "rrr\nrrr")
	}
}

func TestWindow_Repaint_OnlyPendingRegions(t *testing.T) {
	root := newMockComponent("r")
	w := NewWindow(root)
	canvas := NewCanvas(4, 4)
	w.Repaint(canvas)
	root.draws = nil

	root.RequestRedraw(NewRect(0, 0, 2, 1), NewRect(2, 0, 2, 1))
	root.RequestRedraw(NewRect(9, 9, 2, 2))
	painted := w.Repaint(canvas)

	want := []Rect{NewRect(0, 0, 4, 1)}
	if !slices.Equal(painted, want) {
		t.Errorf("Repaint() = %v, want %v", painted, want)
	}
	if !slices.Equal(root.draws, want) {
		t.Errorf("root draws = %v, want %v", root.draws, want)
	}
	if len(w.Pending()) != 0 {
		t.Errorf("Pending() after repaint = %v, want none", w.Pending())
	}

	root.draws = nil
	if painted := w.Repaint(canvas); len(painted) != 0 || len(root.draws) != 0 {
		t.Errorf("idle Repaint() painted %v and drew %v, want nothing", painted, root.draws)
	}
}

func TestWindow_Repaint_ResizeIsFull(t *testing.T) {
	root := newMockComponent("r")
	w := NewWindow(root)
	w.Repaint(NewCanvas(2, 2))
	root.RequestRedraw(NewRect(0, 0, 1, 1))

	painted := w.Repaint(NewCanvas(5, 3))

	want := []Rect{NewRect(0, 0, 5, 3)}
	if !slices.Equal(painted, want) {
		t.Errorf("Repaint() = %v, want %v", painted, want)
	}
	if got := root.Size(); got != Ext(5, 3) {
		t.Errorf("root Size() = %v, want (5x3)", got)
	}
}

func TestWindow_Repaint_Container(t *testing.T) {
	left := newMockComponent("L")
	right := newMockComponent("R")
	root := NewContainer(WithLayout(rowLayout{}))
	root.AddComponent(left, 2)
	root.AddComponent(right, 2)
	w := NewWindow(root)
	canvas := NewCanvas(4, 1)
	w.Repaint(canvas)
	left.draws, right.draws = nil, nil

	right.RequestRedraw(NewRect(1, 0, 1, 1))
	w.Repaint(canvas)

	if len(left.draws) != 0 {
		t.Errorf("left draws = %v, want none", left.draws)
	}
	if want := []Rect{NewRect(1, 0, 1, 1)}; !slices.Equal(right.draws, want) {
		t.Errorf("right draws = %v, want %v", right.draws, want)
	}
	if got := canvas.Line(0); got != "LLRR" {
		t.Errorf("canvas = %q, want %q", got, "LLRR")
	}
}

func TestWindow_Close(t *testing.T) {
	root := newMockComponent("r")
	w := NewWindow(root)
	w.Repaint(NewCanvas(2, 2))
	requests := 0
	w.OnRepaintRequest().Connect(func() { requests++ })

	w.Close()
	root.RequestRedraw()

	if requests != 0 {
		t.Errorf("repaint requests after Close() = %d, want 0", requests)
	}
	if n := root.Signals().Redraw.Len(); n != 0 {
		t.Errorf("root redraw subscribers after Close() = %d, want 0", n)
	}
}

func TestWindow_FocusWraps(t *testing.T) {
	type tc struct {
		forward  bool
		expected [][]string
	}

	tests := map[string]tc{
		"forward": {
			forward:  true,
			expected: [][]string{{"a"}, {"b"}, {"a"}, {"b"}},
		},
		"backward": {
			forward:  false,
			expected: [][]string{{"b"}, {"a"}, {"b"}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := newMockComponent("a")
			b := newMockComponent("b")
			w := NewWindow(newRow(a, b))

			for step, want := range tt.expected {
				if tt.forward {
					w.FocusNext()
				} else {
					w.FocusPrevious()
				}
				if got := focusedIDs(a, b); !slices.Equal(got, want) {
					t.Errorf("step %d: focused = %v, want %v", step, got, want)
				}
			}
		})
	}
}

func TestWindow_Cursor(t *testing.T) {
	child := newMockComponent("a", WithCursor(Pt(1, 0)))
	child.SetPosition(Pt(2, 1))
	child.SetSize(Ext(3, 1))
	root := NewContainer()
	root.AddComponent(child, nil)
	w := NewWindow(root)

	if w.CursorState() {
		t.Error("CursorState() without focus = true, want false")
	}
	w.FocusNext()
	if !w.CursorState() {
		t.Error("CursorState() = false, want true")
	}
	if got := w.CursorPosition(); got != Pt(3, 1) {
		t.Errorf("CursorPosition() = %v, want (3, 1)", got)
	}
}

func TestWindow_Event(t *testing.T) {
	root := newMockComponent("r")
	w := NewWindow(root)

	w.Event(PasteEvent{Text: "hi"})

	if len(root.events) != 1 || root.events[0] != Event(PasteEvent{Text: "hi"}) {
		t.Errorf("root events = %v, want one paste", root.events)
	}
}

func TestNewWindow_NilRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewWindow(nil) did not panic")
		}
	}()
	NewWindow(nil)
}

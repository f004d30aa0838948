package tui

// mockComponent is a leaf that records every call the tree makes on it.
type mockComponent struct {
	*Base
	id string

	draws  []Rect
	events []Event

	setFocusCalls      int
	loseFocusCalls     int
	focusNextCalls     int
	focusPreviousCalls int

	// keepFocus makes FocusNext and FocusPrevious decline to yield.
	keepFocus bool
}

func newMockComponent(id string, opts ...Option) *mockComponent {
	return &mockComponent{
		Base: NewBase("mock", opts...),
		id:   id,
	}
}

func (m *mockComponent) Draw(s Surface, region Rect) {
	m.draws = append(m.draws, region)
	FillRegion(s, region, NewCell(rune(m.id[0]), NewStyle()))
}

func (m *mockComponent) Event(ev Event) {
	m.events = append(m.events, ev)
}

func (m *mockComponent) SetFocus() {
	m.setFocusCalls++
	m.Base.SetFocus()
}

func (m *mockComponent) LoseFocus() {
	m.loseFocusCalls++
	m.Base.LoseFocus()
}

func (m *mockComponent) FocusNext() {
	m.focusNextCalls++
	if m.keepFocus && m.HasFocus() {
		return
	}
	m.Base.FocusNext()
}

func (m *mockComponent) FocusPrevious() {
	m.focusPreviousCalls++
	if m.keepFocus && m.HasFocus() {
		return
	}
	m.Base.FocusPrevious()
}

func (m *mockComponent) Diagnostic() *Diagnostic {
	return ComponentDiagnostic("mock", m)
}

// fillLayout gives every component the whole container.
type fillLayout struct {
	applies int
}

func (l *fillLayout) PreferredSize(components []Component, hints []Hint) Extent {
	var pref Extent
	for _, c := range components {
		pref = pref.Max(c.PreferredSize())
	}
	return pref
}

func (l *fillLayout) Apply(components []Component, hints []Hint, size Extent) {
	l.applies++
	for _, c := range components {
		c.SetPosition(Point{})
		c.SetSize(size)
	}
}

func (l *fillLayout) Diagnostic() *Diagnostic {
	return NewDiagnostic("fill")
}

// rowLayout places components left to right, each as wide as its int hint
// (1 when the hint is not an int) and as tall as the container.
type rowLayout struct{}

func (rowLayout) width(h Hint) int {
	if w, ok := h.(int); ok {
		return w
	}
	return 1
}

func (l rowLayout) PreferredSize(components []Component, hints []Hint) Extent {
	var pref Extent
	for i, c := range components {
		pref.Width += l.width(hints[i])
		pref.Height = max(pref.Height, c.PreferredSize().Height)
	}
	return pref
}

func (l rowLayout) Apply(components []Component, hints []Hint, size Extent) {
	x := 0
	for i, c := range components {
		w := l.width(hints[i])
		c.SetPosition(Pt(x, 0))
		c.SetSize(Ext(w, size.Height))
		x += w
	}
}

func (rowLayout) Diagnostic() *Diagnostic {
	return NewDiagnostic("row")
}

// signalRecorder counts every signal a component raises.
type signalRecorder struct {
	redraws        [][]Rect
	preferred      int
	focusSet       int
	focusLost      int
	cursorState    int
	cursorPosition int
}

func recordSignals(c Component) *signalRecorder {
	rec := &signalRecorder{}
	sig := c.Signals()
	sig.Redraw.Connect(func(rs []Rect) { rec.redraws = append(rec.redraws, rs) })
	sig.PreferredSizeChanged.Connect(func() { rec.preferred++ })
	sig.FocusSet.Connect(func() { rec.focusSet++ })
	sig.FocusLost.Connect(func() { rec.focusLost++ })
	sig.CursorStateChanged.Connect(func() { rec.cursorState++ })
	sig.CursorPositionChanged.Connect(func() { rec.cursorPosition++ })
	return rec
}

func (r *signalRecorder) total() int {
	return len(r.redraws) + r.preferred + r.focusSet + r.focusLost + r.cursorState + r.cursorPosition
}

func (r *signalRecorder) reset() {
	*r = signalRecorder{}
}

// focusedIDs returns the ids of every mock reporting focus.
func focusedIDs(mocks ...*mockComponent) []string {
	var ids []string
	for _, m := range mocks {
		if m.HasFocus() {
			ids = append(ids, m.id)
		}
	}
	return ids
}

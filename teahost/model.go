package teahost

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/debug"
)

var _ tea.Model = (*Model)(nil)

// Model is a Bubble Tea model hosting a tui.Window.
type Model struct {
	window   *tui.Window
	canvas   *tui.Canvas
	keys     KeyMap
	help     help.Model
	showHelp bool
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) {
		m.keys = k
	}
}

// WithHelp reserves the bottom row for a short help line.
func WithHelp(show bool) Option {
	return func(m *Model) {
		m.showHelp = show
	}
}

// New creates a model for window. The window is sized by the first
// tea.WindowSizeMsg.
func New(window *tui.Window, opts ...Option) *Model {
	m := &Model{
		window: window,
		canvas: tui.NewCanvas(0, 0),
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Window returns the hosted window.
func (m *Model) Window() *tui.Window {
	return m.window
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height
		if m.showHelp {
			height = max(height-1, 0)
		}
		m.help.Width = msg.Width
		debug.Log("teahost: resize %dx%d", msg.Width, height)
		m.canvas.Resize(tui.Ext(msg.Width, height))
		m.window.Event(tui.ResizeEvent{Size: m.canvas.Size()})

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.window.FocusNext()
		case key.Matches(msg, m.keys.Previous):
			m.window.FocusPrevious()
		default:
			for _, ev := range keyEvents(msg) {
				m.window.Event(ev)
			}
		}

	case tea.MouseMsg:
		if ev, ok := mouseEvent(msg); ok {
			m.window.Event(ev)
		}
	}
	return m, nil
}

// View implements tea.Model. It repaints what the window has pending and
// renders the whole canvas.
func (m *Model) View() string {
	m.window.Repaint(m.canvas)

	view := render(m.canvas, m.window.Caps())
	if m.showHelp {
		view += "\n" + m.help.View(m.keys)
	}
	return view
}

// render turns the canvas into text, one line per row, styling each run of
// equally styled cells with lipgloss.
func render(canvas *tui.Canvas, caps tui.Capabilities) string {
	size := canvas.Size()
	lines := make([]string, size.Height)
	for y := range lines {
		var line, run strings.Builder
		var current tui.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(styled(run.String(), current, caps))
			run.Reset()
		}
		for x := 0; x < size.Width; x++ {
			cell := canvas.Cell(x, y)
			if cell.IsContinuation() {
				continue
			}
			if cell.Style != current {
				flush()
				current = cell.Style
			}
			if cell.Rune == 0 {
				run.WriteRune(' ')
				continue
			}
			run.WriteRune(cell.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return strings.Join(lines, "\n")
}

func styled(text string, st tui.Style, caps tui.Capabilities) string {
	if st == (tui.Style{}) {
		return text
	}
	ls := lipgloss.NewStyle().
		Bold(st.HasAttr(tui.AttrBold)).
		Faint(st.HasAttr(tui.AttrDim)).
		Italic(st.HasAttr(tui.AttrItalic)).
		Underline(st.HasAttr(tui.AttrUnderline)).
		Blink(st.HasAttr(tui.AttrBlink)).
		Reverse(st.HasAttr(tui.AttrReverse)).
		Strikethrough(st.HasAttr(tui.AttrStrikethrough))
	if c, ok := lipColor(caps.EffectiveColor(st.Fg)); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipColor(caps.EffectiveColor(st.Bg)); ok {
		ls = ls.Background(c)
	}
	return ls.Render(text)
}

func lipColor(c tui.Color) (lipgloss.Color, bool) {
	switch c.Type() {
	case tui.ColorANSI, tui.ColorRGB:
		return lipgloss.Color(c.String()), true
	}
	return "", false
}

package tcellscreen

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/debug"
	"go.uber.org/zap"
)

// ErrNotInitialized is returned by Run when Init has not been called.
var ErrNotInitialized = errors.New("tcellscreen: screen not initialized")

// quitRequest is posted to wake the loop and stop it.
type quitRequest struct{}

// Screen drives a tui.Window on a tcell screen.
type Screen struct {
	screen tcell.Screen
	window *tui.Window
	canvas *tui.Canvas
	keys   tui.KeyMap

	detectCaps bool
	mouse      mouseTracker
	paste      *strings.Builder
	dirty      bool
	resized    bool
	done       bool
	subs       tui.Subscriptions
}

// Option configures a Screen.
type Option func(*Screen)

// WithScreen uses an existing tcell screen instead of opening the terminal.
// Tests pass a simulation screen here.
func WithScreen(s tcell.Screen) Option {
	return func(sc *Screen) {
		sc.screen = s
	}
}

// WithKeyMap adds host bindings consulted before the standard ones.
func WithKeyMap(km tui.KeyMap) Option {
	return func(sc *Screen) {
		sc.keys = slices.Concat(km, sc.keys)
	}
}

// WithDetectedCaps replaces the window's capabilities with what tcell
// reports for the terminal once the screen is initialized.
func WithDetectedCaps() Option {
	return func(sc *Screen) {
		sc.detectCaps = true
	}
}

// New creates a screen for window. Tab and Backtab move focus and Ctrl+C
// quits unless a binding added with WithKeyMap consumes them first.
func New(window *tui.Window, opts ...Option) *Screen {
	s := &Screen{
		window: window,
		canvas: tui.NewCanvas(0, 0),
	}
	s.keys = append(tui.FocusKeys(window), tui.OnKeyStop(tui.KeyCtrlC, func(tui.KeyEvent) { s.Quit() }))
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init opens and configures the terminal.
func (s *Screen) Init() error {
	if s.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		s.screen = screen
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	s.screen.EnableMouse()
	s.screen.EnablePaste()
	s.screen.HideCursor()

	if s.detectCaps {
		s.window.SetCaps(capabilities(s.screen))
	}
	w, h := s.screen.Size()
	s.canvas.Resize(tui.Ext(w, h))
	s.subs = tui.Subscriptions{
		s.window.OnRepaintRequest().Connect(func() { s.dirty = true }),
	}
	s.dirty = true
	debug.Logger().Debug("tcellscreen: initialized",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Stringer("caps", s.window.Caps()))
	return nil
}

// Fini restores the terminal.
func (s *Screen) Fini() {
	s.subs.DisconnectAll()
	s.subs = nil
	if s.screen != nil {
		s.screen.Fini()
	}
}

// Canvas returns the canvas the window repaints into.
func (s *Screen) Canvas() *tui.Canvas {
	return s.canvas
}

// Post runs fn on the loop goroutine. It is safe to call from any goroutine.
func (s *Screen) Post(fn func()) error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	return s.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// Quit stops Run after the current event. It is safe to call from any goroutine.
func (s *Screen) Quit() {
	if s.screen == nil {
		return
	}
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(quitRequest{}))
}

// Run processes events until Quit is called or ctx is cancelled.
func (s *Screen) Run(ctx context.Context) error {
	if s.screen == nil {
		return ErrNotInitialized
	}
	s.done = false

	stop := context.AfterFunc(ctx, s.Quit)
	defer stop()

	s.Flush()
	for !s.done {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}
		s.Handle(ev)
		s.Flush()
	}
	return ctx.Err()
}

// Handle delivers one tcell event. Run calls it for every polled event.
func (s *Screen) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case quitRequest:
			s.done = true
		case func():
			data()
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		debug.Logger().Debug("tcellscreen: resize", zap.Int("width", w), zap.Int("height", h))
		s.canvas.Resize(tui.Ext(w, h))
		s.window.Event(tui.ResizeEvent{Size: tui.Ext(w, h)})
		s.dirty = true
		s.resized = true
	case *tcell.EventPaste:
		if ev.Start() {
			s.paste = &strings.Builder{}
			return
		}
		if s.paste != nil {
			s.window.Event(tui.PasteEvent{Text: s.paste.String()})
			s.paste = nil
		}
	case *tcell.EventKey:
		ke, ok := keyEvent(ev)
		if !ok {
			return
		}
		if s.paste != nil {
			s.collectPaste(ke)
			return
		}
		if s.keys.Dispatch(ke) {
			return
		}
		s.window.Event(ke)
	case *tcell.EventMouse:
		if me, ok := s.mouse.event(ev); ok {
			s.window.Event(me)
		}
	}
}

func (s *Screen) collectPaste(ke tui.KeyEvent) {
	switch {
	case ke.Key == tui.KeyRune:
		s.paste.WriteRune(ke.Rune)
	case ke.Key == tui.KeyEnter:
		s.paste.WriteRune('\n')
	case ke.Key == tui.KeyTab:
		s.paste.WriteRune('\t')
	}
}

// Flush copies the regions the window repainted, if it asked for a
// repaint, to the terminal and then places the cursor.
func (s *Screen) Flush() {
	if s.dirty {
		s.dirty = false
		s.copyRegions(s.window.Repaint(s.canvas))
	}

	if s.window.CursorState() {
		p := s.window.CursorPosition()
		s.screen.ShowCursor(p.X, p.Y)
	} else {
		s.screen.HideCursor()
	}

	if s.resized {
		s.resized = false
		s.screen.Sync()
		return
	}
	s.screen.Show()
}

func (s *Screen) copyRegions(regions []tui.Rect) {
	caps := s.window.Caps()
	for _, r := range regions {
		for y := r.Origin.Y; y < r.Bottom(); y++ {
			for x := r.Origin.X; x < r.Right(); x++ {
				cell := s.canvas.Cell(x, y)
				if cell.IsContinuation() {
					continue
				}
				ch := cell.Rune
				if ch == 0 {
					ch = ' '
				}
				s.screen.SetContent(x, y, ch, nil, style(cell.Style, caps))
			}
		}
	}
}

// Package tcellscreen runs a tui.Window on a real terminal through tcell.
//
// A Screen owns the tcell screen and a canvas. Its loop polls tcell for
// input, turns each event into a tui.Event, offers key events to a host
// KeyMap and then to the window, and after every event copies the regions
// the window repainted onto the terminal.
//
// All component code runs on the loop goroutine. Other goroutines hand
// work to the loop with Post.
package tcellscreen

// Package teahost runs a tui.Window inside a Bubble Tea program.
//
// The Model translates Bubble Tea key, mouse and size messages into tui
// events and renders the window's canvas as lipgloss-styled text in View.
// Focus traversal and quit are bubbles key bindings, so they show up in
// the optional help line.
package teahost

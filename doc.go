// Package tui provides a retained-mode terminal UI toolkit core for Go.
//
// A user interface is a tree of Components. Leaves embed *Base; interior
// nodes are Containers that own their children, position them with a
// Layout per Layer, route focus and input, and clip drawing to each
// child's bounds. Components report changes through Signals rather than
// drawing eagerly: a redraw request travels up the tree as a list of
// dirty rectangles until it reaches the Window, which coalesces them and
// repaints only those regions onto a Canvas when the host asks.
//
// The package has no terminal dependency of its own. Hosts live in
// subpackages: tcellscreen drives a terminal through tcell, and teahost
// embeds a Window in a Bubble Tea program. Both read the Canvas and feed
// KeyEvent, MouseEvent, ResizeEvent and PasteEvent values back in.
//
// Layouts live in the layout package and ready-made components in widget.
package tui

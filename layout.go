package tui

// Layout is a stateless placement strategy. It reads nothing but its
// arguments and keeps nothing between calls, so one instance can serve
// any number of containers.
//
// hints[i] belongs to components[i]. Each layout defines its own hint
// types; a hint a layout does not recognise (including nil) is treated as
// that layout's default hint.
type Layout interface {
	// PreferredSize returns the extent at which every component would get
	// its preferred size.
	PreferredSize(components []Component, hints []Hint) Extent
	// Apply assigns position and size to each component for a container of
	// the given size.
	Apply(components []Component, hints []Hint, size Extent)
	// Diagnostic returns a snapshot carrying the layout's type tag.
	Diagnostic() *Diagnostic
}

// Hint is a per-component placement value interpreted only by the active
// layout, for example a compass heading or an alignment.
type Hint any

// Layer ranks components for drawing order and groups them for layout.
// Lower layers are drawn first, so higher layers paint over them.
type Layer uint8

const (
	// LowestLayer is drawn first.
	LowestLayer Layer = 0
	// DefaultLayer is where components go unless told otherwise.
	DefaultLayer Layer = 50
	// HighestLayer is drawn last.
	HighestLayer Layer = 100
)

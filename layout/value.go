package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Preferred size of the component
	UnitFixed               // Absolute terminal cells
	UnitPercent             // Percentage of the container's extent
	UnitFill                // Share of the space left over
)

// Value is a Strip hint describing a component's extent along the strip.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that uses the component's preferred size.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: float64(n), Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of the container.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Fill returns a Value that takes an equal share of the space the other
// components leave unused.
func Fill() Value {
	return Value{Unit: UnitFill}
}

// Resolve computes the actual integer value given available space.
// For UnitAuto and UnitFill, returns the fallback value.
func (v Value) Resolve(available, fallback int) int {
	switch v.Unit {
	case UnitFixed:
		return int(v.Amount)
	case UnitPercent:
		return int(float64(available) * v.Amount / 100.0)
	default:
		return fallback
	}
}

// IsAuto returns true if this value is computed from the component.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

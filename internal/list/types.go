// Package list implements a scrollable, position-based item list for the
// terminal: layout managers, a scroll state machine with listeners, and a
// frame-driven smooth-scroll engine.
package list

// NoPosition is returned when a position cannot be determined
const NoPosition = -1

// Orientation is the scroll axis of a layout
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Snap controls where a smooth scroll leaves its target item
type Snap int

const (
	// SnapToAny scrolls the least distance that makes the item visible
	SnapToAny Snap = iota
	// SnapToStart aligns the item with the leading edge of the viewport
	SnapToStart
	// SnapToEnd aligns the item with the trailing edge of the viewport
	SnapToEnd
)

// Vector points from the current scroll position toward a target
type Vector struct {
	X float64
	Y float64
}

// along returns the sign of the vector on the given axis
func (v Vector) along(o Orientation) int {
	c := v.Y
	if o == Horizontal {
		c = v.X
	}
	switch {
	case c > 0:
		return 1
	case c < 0:
		return -1
	default:
		return 0
	}
}

// ScrollState describes what the list is doing
type ScrollState int

const (
	// StateIdle means the list is not moving
	StateIdle ScrollState = iota
	// StateDragging means the user is moving the list
	StateDragging
	// StateSettling means an animation is moving the list
	StateSettling
)

func (s ScrollState) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateSettling:
		return "settling"
	default:
		return "idle"
	}
}

// Adapter supplies the items a layout arranges
type Adapter interface {
	ItemCount() int
	// ItemExtent is the size of the item along the given scroll axis, in cells
	ItemExtent(position int, o Orientation) int
}

// ScrollListener receives scroll notifications from a View
type ScrollListener interface {
	OnScrollStateChanged(v *View, state ScrollState)
	OnScrolled(v *View, dx, dy int)
}

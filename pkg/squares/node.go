package squares

import "github.com/Faultbox/marching-squares/pkg/math"

// CornerNode is a grid-aligned control point carrying a cell value.
type CornerNode struct {
	Position math.Vec3
	Value    uint8
}

// Solid reports whether the corner is a wall.
func (n CornerNode) Solid() bool {
	return n.Value == 1
}

// EdgeNode is the midpoint of one side of a square.
type EdgeNode struct {
	Position math.Vec3
}

// Slot addresses one of the eight nodes of a square.
type Slot int

// Node slots. Corners come first, in configuration bit order.
const (
	SlotTopLeft Slot = iota
	SlotTopRight
	SlotBottomRight
	SlotBottomLeft
	SlotTopCenter
	SlotRightCenter
	SlotBottomCenter
	SlotLeftCenter

	NumSlots = 8
)

// IsCorner reports whether the slot holds a control node.
func (s Slot) IsCorner() bool {
	return s >= SlotTopLeft && s <= SlotBottomLeft
}

// String returns the short slot name used in tables and test output.
func (s Slot) String() string {
	switch s {
	case SlotTopLeft:
		return "TL"
	case SlotTopRight:
		return "TR"
	case SlotBottomRight:
		return "BR"
	case SlotBottomLeft:
		return "BL"
	case SlotTopCenter:
		return "TC"
	case SlotRightCenter:
		return "RC"
	case SlotBottomCenter:
		return "BC"
	case SlotLeftCenter:
		return "LC"
	default:
		return "?"
	}
}

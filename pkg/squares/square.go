package squares

import "github.com/Faultbox/marching-squares/pkg/math"

// Square is one marching-squares evaluation cell: four control corners,
// the four side midpoints derived from them and the configuration code.
type Square struct {
	TopLeft     CornerNode
	TopRight    CornerNode
	BottomRight CornerNode
	BottomLeft  CornerNode

	TopCenter    EdgeNode
	RightCenter  EdgeNode
	BottomCenter EdgeNode
	LeftCenter   EdgeNode

	// Position is the mean of the four corners.
	Position math.Vec3

	configuration Configuration
}

// NewSquare builds a square from its corners, clockwise from the top-left.
func NewSquare(topLeft, topRight, bottomRight, bottomLeft CornerNode) (Square, error) {
	cfg, err := Classify(topLeft.Value, topRight.Value, bottomRight.Value, bottomLeft.Value)
	if err != nil {
		return Square{}, err
	}

	center := topLeft.Position.
		Add(topRight.Position).
		Add(bottomRight.Position).
		Add(bottomLeft.Position).
		Scale(0.25)

	return Square{
		TopLeft:       topLeft,
		TopRight:      topRight,
		BottomRight:   bottomRight,
		BottomLeft:    bottomLeft,
		TopCenter:     EdgeNode{topLeft.Position.Midpoint(topRight.Position)},
		RightCenter:   EdgeNode{topRight.Position.Midpoint(bottomRight.Position)},
		BottomCenter:  EdgeNode{bottomRight.Position.Midpoint(bottomLeft.Position)},
		LeftCenter:    EdgeNode{bottomLeft.Position.Midpoint(topLeft.Position)},
		Position:      center,
		configuration: cfg,
	}, nil
}

// Configuration returns the corner code computed at construction.
func (s *Square) Configuration() Configuration {
	return s.configuration
}

// Node returns the position held in the given slot.
func (s *Square) Node(slot Slot) math.Vec3 {
	switch slot {
	case SlotTopLeft:
		return s.TopLeft.Position
	case SlotTopRight:
		return s.TopRight.Position
	case SlotBottomRight:
		return s.BottomRight.Position
	case SlotBottomLeft:
		return s.BottomLeft.Position
	case SlotTopCenter:
		return s.TopCenter.Position
	case SlotRightCenter:
		return s.RightCenter.Position
	case SlotBottomCenter:
		return s.BottomCenter.Position
	case SlotLeftCenter:
		return s.LeftCenter.Position
	}
	panic("squares: invalid slot")
}

// Corner returns the control node in a corner slot.
func (s *Square) Corner(slot Slot) CornerNode {
	switch slot {
	case SlotTopLeft:
		return s.TopLeft
	case SlotTopRight:
		return s.TopRight
	case SlotBottomRight:
		return s.BottomRight
	case SlotBottomLeft:
		return s.BottomLeft
	}
	panic("squares: slot is not a corner")
}

// Extent returns the size of the square in the ground plane, measured from
// the bottom-left to the top-right corner.
func (s *Square) Extent() math.Vec2 {
	return s.TopRight.Position.XZ().Sub(s.BottomLeft.Position.XZ())
}

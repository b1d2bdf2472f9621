package squares

import (
	"fmt"
	"strings"
)

// Corner bit weights. Every triangulation table is built against this order.
const (
	BitTopLeft     Configuration = 1
	BitTopRight    Configuration = 2
	BitBottomRight Configuration = 4
	BitBottomLeft  Configuration = 8
)

// NumConfigurations is the number of distinct corner patterns.
const NumConfigurations = 16

// Configuration is the 4-bit corner code of a square.
type Configuration uint8

// Kind groups configurations by the shape they produce.
type Kind int

// Configuration families.
const (
	KindEmpty   Kind = iota // 0: no geometry
	KindConvex              // 1, 2, 4, 8: one solid corner
	KindHalf                // 3, 6, 9, 12: two adjacent solid corners
	KindSaddle              // 5, 10: two diagonal solid corners
	KindConcave             // 7, 11, 13, 14: three solid corners
	KindFull                // 15: solid square
)

// SaddlePolicy names how the ambiguous diagonal configurations are resolved.
type SaddlePolicy int

// Saddle policies.
const (
	// SaddleConnectCenter joins both solid corners through the square
	// centre, producing one convex hexagon fan.
	SaddleConnectCenter SaddlePolicy = iota
	// SaddleSeparate cuts each solid corner off on its own, leaving the
	// centre of the square empty.
	SaddleSeparate
)

// Valid reports whether p is a known policy.
func (p SaddlePolicy) Valid() bool {
	return p == SaddleConnectCenter || p == SaddleSeparate
}

// String returns the policy name used in config files and flags.
func (p SaddlePolicy) String() string {
	switch p {
	case SaddleConnectCenter:
		return "center"
	case SaddleSeparate:
		return "separate"
	default:
		return fmt.Sprintf("SaddlePolicy(%d)", int(p))
	}
}

// ParseSaddlePolicy parses "center" or "separate" (case-insensitive).
func ParseSaddlePolicy(s string) (SaddlePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center", "connect":
		return SaddleConnectCenter, nil
	case "separate":
		return SaddleSeparate, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSaddlePolicy, s)
}

// Classify returns the configuration for the four corner values.
// Any value other than 0 or 1 is rejected.
func Classify(topLeft, topRight, bottomRight, bottomLeft uint8) (Configuration, error) {
	for _, v := range [4]uint8{topLeft, topRight, bottomRight, bottomLeft} {
		if v > 1 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidConfiguration, v)
		}
	}
	return Configuration(topLeft) |
		Configuration(topRight)<<1 |
		Configuration(bottomRight)<<2 |
		Configuration(bottomLeft)<<3, nil
}

// Valid reports whether c fits in four bits.
func (c Configuration) Valid() bool {
	return c < NumConfigurations
}

// Has reports whether all bits of corner are set.
func (c Configuration) Has(corner Configuration) bool {
	return c&corner == corner
}

// Count returns the number of solid corners.
func (c Configuration) Count() int {
	n := 0
	for bit := BitTopLeft; bit <= BitBottomLeft; bit <<= 1 {
		if c&bit != 0 {
			n++
		}
	}
	return n
}

// Kind returns the configuration family.
func (c Configuration) Kind() Kind {
	switch c.Count() {
	case 0:
		return KindEmpty
	case 1:
		return KindConvex
	case 3:
		return KindConcave
	case 4:
		return KindFull
	}
	if c == BitTopLeft|BitBottomRight || c == BitTopRight|BitBottomLeft {
		return KindSaddle
	}
	return KindHalf
}

// String returns the code with its solid corners, e.g. "5(TL+BR)".
func (c Configuration) String() string {
	if c == 0 {
		return "0(empty)"
	}
	names := ""
	for _, corner := range []struct {
		bit  Configuration
		name string
	}{
		{BitTopLeft, "TL"},
		{BitTopRight, "TR"},
		{BitBottomRight, "BR"},
		{BitBottomLeft, "BL"},
	} {
		if c.Has(corner.bit) {
			if names != "" {
				names += "+"
			}
			names += corner.name
		}
	}
	return fmt.Sprintf("%d(%s)", uint8(c), names)
}

// String returns a human-readable family name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindConvex:
		return "Convex"
	case KindHalf:
		return "Half"
	case KindSaddle:
		return "Saddle"
	case KindConcave:
		return "Concave"
	case KindFull:
		return "Full"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

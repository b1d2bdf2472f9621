package atlas

import (
	"testing"

	"github.com/Faultbox/marching-squares/pkg/math"
)

func TestTileIndex(t *testing.T) {
	tests := []struct {
		configuration int
		expected      int
	}{
		{0, 12},
		{1, 13},
		{2, 14},
		{3, 15},
		{4, 8},
		{5, 9},
		{6, 10},
		{7, 11},
		{8, 4},
		{9, 5},
		{10, 6},
		{11, 7},
		{12, 0},
		{13, 1},
		{14, 2},
		{15, 3},
		{-1, 12},
		{16, 12},
		{255, 12},
	}

	for _, tc := range tests {
		if got := TileIndex(tc.configuration); got != tc.expected {
			t.Errorf("TileIndex(%d) = %d, expected %d", tc.configuration, got, tc.expected)
		}
	}
}

// TestTileIndex_Permutation checks every atlas cell is used exactly once.
func TestTileIndex_Permutation(t *testing.T) {
	seen := make(map[int]bool)
	for c := 0; c < 16; c++ {
		idx := TileIndex(c)
		if idx < 0 || idx >= Columns*Columns {
			t.Fatalf("TileIndex(%d) = %d out of atlas", c, idx)
		}
		if seen[idx] {
			t.Errorf("atlas cell %d used twice", idx)
		}
		seen[idx] = true
	}
}

func TestTileRect(t *testing.T) {
	tests := []struct {
		configuration int
		offset        math.Vec2
	}{
		{12, math.Vec2{X: 0, Y: 0}},
		{15, math.Vec2{X: 0.75, Y: 0}},
		{8, math.Vec2{X: 0, Y: 0.25}},
		{5, math.Vec2{X: 0.25, Y: 0.5}},
		{1, math.Vec2{X: 0.25, Y: 0.75}},
		{0, math.Vec2{X: 0, Y: 0.75}},
	}

	for _, tc := range tests {
		r := TileRect(tc.configuration)
		if r.Scale != (math.Vec2{X: 0.25, Y: 0.25}) {
			t.Errorf("TileRect(%d).Scale = %v, expected 0.25x0.25", tc.configuration, r.Scale)
		}
		if r.Offset != tc.offset {
			t.Errorf("TileRect(%d).Offset = %v, expected %v", tc.configuration, r.Offset, tc.offset)
		}
	}
}

func TestRectMap(t *testing.T) {
	r := TileRect(5)

	if got := r.Map(math.Vec2{}); got != r.Offset {
		t.Errorf("Map(0,0) = %v, expected offset %v", got, r.Offset)
	}
	if got, want := r.Map(math.Vec2{X: 1, Y: 1}), (math.Vec2{X: 0.5, Y: 0.75}); got != want {
		t.Errorf("Map(1,1) = %v, expected %v", got, want)
	}
	if got, want := r.Corner(CornerTopLeft), (math.Vec2{X: 0.25, Y: 0.75}); got != want {
		t.Errorf("Corner(TopLeft) = %v, expected %v", got, want)
	}
	if got, want := r.Corner(CornerBottomRight), (math.Vec2{X: 0.5, Y: 0.5}); got != want {
		t.Errorf("Corner(BottomRight) = %v, expected %v", got, want)
	}
}

func TestRectContains(t *testing.T) {
	r := TileRect(15)

	if !r.Contains(math.Vec2{X: 0.8, Y: 0.1}, 0) {
		t.Error("expected (0.8, 0.1) inside cell 3")
	}
	if r.Contains(math.Vec2{X: 0.7, Y: 0.1}, 0) {
		t.Error("expected (0.7, 0.1) outside cell 3")
	}
	if !r.Contains(math.Vec2{X: 1.000001, Y: 0.25}, 1e-5) {
		t.Error("expected edge point inside with slack")
	}
}

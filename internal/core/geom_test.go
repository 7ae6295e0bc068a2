package core

import (
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent vertical (no overlap)", NewRect(0, 0, 10, 10), NewRect(0, 10, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{"overlapping", NewBox(0, 0, 32, 32), NewBox(16, 16, 32, 32), true},
		{"touching right edge", NewBox(0, 0, 32, 32), NewBox(32, 0, 32, 32), false},
		{"touching bottom edge", NewBox(0, 0, 32, 32), NewBox(0, 32, 32, 32), false},
		{"feet sunk into platform", NewBox(400, 530, 32, 32), NewBox(300, 560, 200, 20), true},
		{"sub-pixel overlap", NewBox(0, 0, 10, 10), NewBox(9.5, 9.5, 10, 10), true},
		{"far apart", NewBox(0, 0, 10, 10), NewBox(100, 100, 10, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoxOverlapDepth(t *testing.T) {
	a := NewBox(10, 10, 32, 32)
	b := NewBox(30, 36, 32, 32)

	dx, dy := a.Overlap(b)
	if dx != 12 || dy != 6 {
		t.Errorf("Overlap() = (%v, %v), expected (12, 6)", dx, dy)
	}

	dx, dy = b.Overlap(a)
	if dx != 12 || dy != 6 {
		t.Errorf("Overlap() reversed = (%v, %v), expected (12, 6)", dx, dy)
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(400, 500, 32, 32)

	if b.Right() != 432 {
		t.Errorf("Right() = %v, expected 432", b.Right())
	}
	if b.Bottom() != 532 {
		t.Errorf("Bottom() = %v, expected 532", b.Bottom())
	}
	if b.MidY() != 516 {
		t.Errorf("MidY() = %v, expected 516", b.MidY())
	}
	if b.CenterX() != 416 {
		t.Errorf("CenterX() = %v, expected 416", b.CenterX())
	}
}

func TestBoxToRect(t *testing.T) {
	// 800x600 playfield onto an 80x24 terminal
	sx, sy := 80.0/800.0, 24.0/600.0

	r := NewBox(100, 550, 32, 32).ToRect(sx, sy)
	if r.X != 10 || r.Y != 22 {
		t.Errorf("ToRect() position = (%d, %d), expected (10, 22)", r.X, r.Y)
	}
	if r.W < 1 || r.H < 1 {
		t.Errorf("ToRect() must cover at least one cell, got %dx%d", r.W, r.H)
	}
}

func TestVec2(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if v.Len() != 5 {
		t.Errorf("Len() = %v, expected 5", v.Len())
	}
	if got := v.Add(Vec2{X: 1, Y: -1}); got != (Vec2{X: 4, Y: 3}) {
		t.Errorf("Add() = %v", got)
	}
	if got := v.Scale(0.5); math.Abs(got.X-1.5) > 1e-9 || math.Abs(got.Y-2) > 1e-9 {
		t.Errorf("Scale() = %v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-5.5, 0, 10); got != 0 {
		t.Errorf("ClampF(-5.5, 0, 10) = %f, expected 0", got)
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(5, 10) != 5 || Max(5, 10) != 10 {
		t.Error("Min/Max returned wrong values")
	}
	if Abs(-5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned wrong values")
	}
}

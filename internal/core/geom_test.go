package core

import "testing"

func TestBoxContains(t *testing.T) {
	b := NewBox(10, 20, 8, 8)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 14, 24, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner (inclusive)", 18, 28, true},
		{"top-right corner", 18, 20, true},
		{"bottom-left corner", 10, 28, true},
		{"just past right edge", 19, 24, false},
		{"just past bottom edge", 14, 29, false},
		{"outside left", 9, 24, false},
		{"outside top", 14, 19, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := b.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestBoxNegativeOrigin(t *testing.T) {
	// Aliens may drift partly off the left edge
	b := NewBox(-3, 0, 8, 8)

	if !b.Contains(0, 0) {
		t.Error("point at origin should be inside a box starting at x=-3")
	}
	if !b.Contains(5, 8) {
		t.Error("right/bottom edge should be inclusive")
	}
	if b.Contains(6, 0) {
		t.Error("x=6 is past the right edge of a box at x=-3")
	}
}

func TestBoxEdges(t *testing.T) {
	b := NewBox(5, 10, 20, 15)

	if b.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", b.Right())
	}
	if b.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", b.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMax(t *testing.T) {
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

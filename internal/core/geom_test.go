package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        RectAt(0, 0, 10, 10),
			b:        RectAt(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        RectAt(0, 0, 10, 10),
			b:        RectAt(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        RectAt(0, 0, 10, 10),
			b:        RectAt(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching horizontal edge (no overlap)",
			a:        RectAt(0, 0, 10, 10),
			b:        RectAt(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "touching vertical edge (no overlap)",
			a:        RectAt(0, 0, 10, 10),
			b:        RectAt(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        RectAt(0, 0, 20, 20),
			b:        RectAt(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "sub-unit overlap",
			a:        RectAt(0, 0, 10, 10),
			b:        RectAt(9.5, 9.5, 10, 10),
			expected: true,
		},
		{
			name:     "thin projectile straddling edge",
			a:        RectAt(450, 240, 50, 80),
			b:        RectAt(499.5, 300, 1, 80),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := RectAt(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%v, %v) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := RectAt(5, 10, 20, 15)

	if r.Right != 25 {
		t.Errorf("Right = %v, expected 25", r.Right)
	}
	if r.Bottom != 25 {
		t.Errorf("Bottom = %v, expected 25", r.Bottom)
	}
	if r.Width() != 20 || r.Height() != 15 {
		t.Errorf("size = %vx%v, expected 20x15", r.Width(), r.Height())
	}
	if !r.Valid() {
		t.Error("rect with positive size should be valid")
	}
	if (Rect{Top: 5, Bottom: 5, Left: 0, Right: 1}).Valid() {
		t.Error("zero-height rect should not be valid")
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17.5 {
		t.Errorf("Center() = (%v, %v), expected (15, 17.5)", cx, cy)
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

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

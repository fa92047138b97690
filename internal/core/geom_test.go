package core

import "testing"

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 0, Y: 15, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "fractional overlap",
			a:        Box{X: 0, Y: 0, W: 10, H: 10},
			b:        Box{X: 9.9, Y: 9.9, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "contained box",
			a:        Box{X: 0, Y: 0, W: 20, H: 20},
			b:        Box{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxOverlapsX(t *testing.T) {
	bird := Box{X: 72, Y: 244, W: 34, H: 24}

	if !bird.OverlapsX(Box{X: 100, Y: 0, W: 52, H: 10}) {
		t.Error("OverlapsX should ignore vertical position")
	}
	if bird.OverlapsX(Box{X: 106, Y: 244, W: 52, H: 24}) {
		t.Error("OverlapsX should be false when edges only touch")
	}
	if bird.OverlapsX(Box{X: 20, Y: 244, W: 52, H: 24}) {
		t.Error("OverlapsX should be false when the other box ends at bird.X")
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
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

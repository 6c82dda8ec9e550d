package core

import "testing"

func TestRectContainsInclusive(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{
			name:     "interior point",
			r:        NewRect(10, 10, 8, 8),
			x:        14,
			y:        14,
			expected: true,
		},
		{
			name:     "top-left corner",
			r:        NewRect(10, 10, 8, 8),
			x:        10,
			y:        10,
			expected: true,
		},
		{
			name:     "bottom-right corner is inclusive",
			r:        NewRect(10, 10, 8, 8),
			x:        18,
			y:        18,
			expected: true,
		},
		{
			name:     "one past right edge",
			r:        NewRect(10, 10, 8, 8),
			x:        19,
			y:        14,
			expected: false,
		},
		{
			name:     "one past bottom edge",
			r:        NewRect(10, 10, 8, 8),
			x:        14,
			y:        19,
			expected: false,
		},
		{
			name:     "left of rect",
			r:        NewRect(10, 10, 8, 8),
			x:        9,
			y:        14,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.r.ContainsInclusive(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("ContainsInclusive(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectContainsExclusiveEdges(t *testing.T) {
	r := NewRect(0, 0, 8, 8)

	if !r.Contains(0, 0) {
		t.Error("Contains should include the top-left corner")
	}
	if r.Contains(8, 4) {
		t.Error("Contains should exclude the right edge")
	}
	if r.Contains(4, 8) {
		t.Error("Contains should exclude the bottom edge")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name          string
		val, min, max int
		expected      int
	}{
		{"within range", 5, 0, 10, 5},
		{"below min", -3, 0, 10, 0},
		{"above max", 42, 0, 10, 10},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := NewRect(10, 20, 8, 8).Center()
	if cx != 14 || cy != 24 {
		t.Errorf("Center() = (%d, %d), expected (14, 24)", cx, cy)
	}
}

package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},
		{14, 14, true},
		{12, 12, true},
		{15, 10, false},
		{10, 15, false},
		{9, 10, false},
		{10, 9, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)
	inner := outer.Centered(6, 4)

	if inner != NewRect(7, 3, 6, 4) {
		t.Errorf("Centered(6, 4) = %+v", inner)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.min, tt.max, got, tt.expected)
		}
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max failed")
	}
}

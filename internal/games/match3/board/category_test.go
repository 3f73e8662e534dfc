package board

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"red", Red, true},
		{"Purple", Purple, true},
		{"G", Green, true},
		{"y", Yellow, true},
		{"*", Any, true},
		{"any", Any, true},
		{" blue ", Blue, true},
		{"pink", Any, false},
		{"", Any, false},
	}

	for _, tt := range tests {
		got, err := ParseCategory(tt.input)
		if tt.ok && err != nil {
			t.Errorf("ParseCategory(%q) error: %v", tt.input, err)
			continue
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseCategory(%q) should fail", tt.input)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGlyphRoundTrip(t *testing.T) {
	for c := Any; c < categoryCount; c++ {
		got, ok := CategoryFromGlyph(c.Glyph())
		if !ok || got != c {
			t.Errorf("CategoryFromGlyph(%q) = %v, %v; want %v", c.Glyph(), got, ok, c)
		}
	}
}

func TestMatchesWildcard(t *testing.T) {
	if !Any.Matches(Red) || !Blue.Matches(Any) {
		t.Error("Any should match every category")
	}
	if Red.Matches(Blue) {
		t.Error("Red should not match Blue")
	}
	if !Green.Matches(Green) {
		t.Error("Green should match itself")
	}
}

func TestCoordAdjacent(t *testing.T) {
	c := At(2, 2)
	tests := []struct {
		other Coord
		want  bool
	}{
		{At(2, 3), true},
		{At(1, 2), true},
		{At(3, 3), false},
		{At(2, 4), false},
		{At(2, 2), false},
	}
	for _, tt := range tests {
		if got := c.Adjacent(tt.other); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", c, tt.other, got, tt.want)
		}
	}
}

package core

import "testing"

func TestBoxOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "body against pipe it touches",
			a:        NewBox(100, 100, 50, 40),
			b:        NewBox(130, 80, 85, 60),
			expected: true,
		},
		{
			name:     "body against pipe further right",
			a:        NewBox(100, 100, 50, 40),
			b:        NewBox(200, 80, 85, 60),
			expected: false,
		},
		{
			name:     "shared vertical edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "shared horizontal edge",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10, 10, 10),
			expected: true,
		},
		{
			name:     "gap of a fraction",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(10.5, 0, 10, 10),
			expected: false,
		},
		{
			name:     "below",
			a:        NewBox(0, 0, 10, 10),
			b:        NewBox(0, 10.01, 10, 10),
			expected: false,
		},
		{
			name:     "contained",
			a:        NewBox(0, 0, 100, 100),
			b:        NewBox(40, 40, 5, 5),
			expected: true,
		},
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

func TestBoxEdges(t *testing.T) {
	b := NewBox(171, 174, 50, 40)
	if b.Right() != 221 {
		t.Errorf("Right() = %v, expected 221", b.Right())
	}
	if b.Bottom() != 214 {
		t.Errorf("Bottom() = %v, expected 214", b.Bottom())
	}

	moved := b.Translate(-3, 2)
	if moved.X != 168 || moved.Y != 176 {
		t.Errorf("Translate() = (%v, %v), expected (168, 176)", moved.X, moved.Y)
	}
	if b.X != 171 {
		t.Error("Translate should not modify the receiver")
	}
}

func TestBoxScale(t *testing.T) {
	b := NewBox(100, 0, 85, 200)
	r := b.Scale(0.1, 0.1)
	if r.X != 10 || r.Y != 0 {
		t.Errorf("Scale() origin = (%d, %d), expected (10, 0)", r.X, r.Y)
	}
	if r.W != 9 || r.H != 20 {
		t.Errorf("Scale() size = %dx%d, expected 9x20", r.W, r.H)
	}

	tiny := NewBox(5, 5, 1, 1).Scale(0.01, 0.01)
	if tiny.W != 1 || tiny.H != 1 {
		t.Errorf("tiny box should cover one cell, got %dx%d", tiny.W, tiny.H)
	}
}

func TestRectIntersect(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"inside", NewRect(10, 5, 4, 2), NewRect(10, 5, 4, 2)},
		{"pipe above the top row", NewRect(30, -6, 8, 10), NewRect(30, 0, 8, 4)},
		{"past the right edge", NewRect(78, 20, 8, 8), NewRect(78, 20, 2, 4)},
		{"fully offscreen", NewRect(-9, 3, 8, 2), Rect{}},
		{"touching edge only", NewRect(80, 0, 5, 5), Rect{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.r.Intersect(screen)
			if got != tc.want {
				t.Errorf("Intersect() = %+v, expected %+v", got, tc.want)
			}
			if tc.want == (Rect{}) && !got.Empty() {
				t.Error("expected an empty rect")
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-120.0, -25, 90); got != -25 {
		t.Errorf("Clamp below = %v, expected -25", got)
	}
	if got := Clamp(140.0, -25, 90); got != 90 {
		t.Errorf("Clamp above = %v, expected 90", got)
	}
	if got := Clamp(7, 0, 10); got != 7 {
		t.Errorf("Clamp inside = %v, expected 7", got)
	}
}

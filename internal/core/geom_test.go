package core

import (
	"math"
	"testing"
)

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(4, 2, 6, 3)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left cell", 4, 2, true},
		{"bottom-right cell", 9, 4, true},
		{"right edge", 10, 3, false},
		{"bottom edge", 5, 5, false},
		{"above", 5, 1, false},
		{"left", 3, 3, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.want {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
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

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}

func TestVec2RotateDeg(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		deg  float64
		want Vec2
	}{
		{"down by zero", V(0, -1), 0, V(0, -1)},
		{"down by 90", V(0, -1), 90, V(1, 0)},
		{"right by 90", V(1, 0), 90, V(0, 1)},
		{"up by 180", V(0, 1), 180, V(0, -1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.RotateDeg(tc.deg)
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("RotateDeg(%v) = %+v, expected %+v", tc.deg, got, tc.want)
			}
		})
	}
}

func TestVec2AngleDeg(t *testing.T) {
	if a := V(1, 0).AngleDeg(); a != 0 {
		t.Errorf("AngleDeg(right) = %f, expected 0", a)
	}
	if a := V(0, -1).AngleDeg(); math.Abs(a-270) > 1e-9 {
		t.Errorf("AngleDeg(down) = %f, expected 270", a)
	}
	if d := FromAngleDeg(90); math.Abs(d.X) > 1e-9 || math.Abs(d.Y-1) > 1e-9 {
		t.Errorf("FromAngleDeg(90) = %+v, expected (0, 1)", d)
	}
}

func TestVec2Norm(t *testing.T) {
	n := V(3, 4).Norm()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("Norm length = %f, expected 1", n.Len())
	}
	if z := (Vec2{}).Norm(); z != (Vec2{}) {
		t.Errorf("Norm of zero vector = %+v, expected zero", z)
	}
}

func TestCirclesOverlap(t *testing.T) {
	if !CirclesOverlap(V(0, 0), 5, V(10, 0), 5) {
		t.Error("touching circles should overlap")
	}
	if CirclesOverlap(V(0, 0), 5, V(10.5, 0), 5) {
		t.Error("separated circles should not overlap")
	}
}

func TestSegmentIntersectsCircle(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c Vec2
		r       float64
		want    bool
	}{
		{"crosses middle", V(0, 0), V(0, 100), V(3, 50), 5, true},
		{"misses side", V(0, 0), V(0, 100), V(10, 50), 5, false},
		{"beyond end", V(0, 0), V(0, 100), V(0, 110), 5, false},
		{"near start", V(0, 0), V(0, 100), V(0, -4), 5, true},
		{"degenerate point", V(1, 1), V(1, 1), V(2, 1), 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SegmentIntersectsCircle(tc.a, tc.b, tc.c, tc.r); got != tc.want {
				t.Errorf("SegmentIntersectsCircle() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestRectFContains(t *testing.T) {
	r := RectF{X: 10, Y: 20, W: 100, H: 50}
	if !r.Contains(V(10, 20)) || !r.Contains(V(110, 70)) {
		t.Error("edges should be inside")
	}
	if r.Contains(V(9, 30)) || r.Contains(V(50, 71)) {
		t.Error("points outside reported inside")
	}
}

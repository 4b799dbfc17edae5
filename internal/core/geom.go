// Package core provides the shared types of the shooter: vectors, input
// frames, the RNG and the cell screen the host draws.
// It has no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned bounding box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether cell (x, y) lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Vec2 is a point or direction in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// MulAdd returns v + o*s.
func (v Vec2) MulAdd(o Vec2, s float64) Vec2 {
	return Vec2{v.X + o.X*s, v.Y + o.Y*s}
}

// Len2 returns the squared length.
func (v Vec2) Len2() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.Len2())
}

// Norm returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec2{v.X / l, v.Y / l}
}

// Lerp moves v toward o by fraction t.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// RotateDeg rotates v counter-clockwise by deg degrees.
func (v Vec2) RotateDeg(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	s, c := math.Sincos(rad)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// AngleDeg returns the direction of v in degrees, in [0, 360).
func (v Vec2) AngleDeg() float64 {
	a := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if a < 0 {
		a += 360
	}
	return a
}

// FromAngleDeg returns the unit vector for an angle in degrees.
func FromAngleDeg(deg float64) Vec2 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Vec2{c, s}
}

// RectF is an axis-aligned rectangle in world units (origin bottom-left).
type RectF struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle, edges included.
func (r RectF) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(a Vec2, ar float64, b Vec2, br float64) bool {
	rr := ar + br
	return a.Sub(b).Len2() <= rr*rr
}

// SegmentIntersectsCircle reports whether segment ab passes within r of c.
// Degenerate segments are treated as a point.
func SegmentIntersectsCircle(a, b, c Vec2, r float64) bool {
	ab := b.Sub(a)
	abLen2 := ab.Len2()
	if abLen2 <= 1e-6 {
		return a.Sub(c).Len2() <= r*r
	}
	t := ClampF(c.Sub(a).X*ab.X/abLen2+c.Sub(a).Y*ab.Y/abLen2, 0, 1)
	p := a.MulAdd(ab, t)
	return p.Sub(c).Len2() <= r*r
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}


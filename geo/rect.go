package geo

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned minimum bounding rectangle over float32
// coordinates with X1 <= X2 and Y1 <= Y2.
//
// Comparisons follow IEEE-754 single precision. NaN coordinates are a
// caller error; predicates over them are undefined but never panic.
type Rect struct {
	X1, Y1, X2, Y2 float32
}

// NewRect returns the rectangle spanning the two corner points,
// normalizing the coordinate order so that X1 <= X2 and Y1 <= Y2.
func NewRect(x1, y1, x2, y2 float32) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Empty returns the canonical empty rectangle. Intersection and
// containment tests against it are always false and it is the identity
// for Union.
func Empty() Rect {
	inf := float32(math.Inf(1))
	return Rect{X1: inf, Y1: inf, X2: -inf, Y2: -inf}
}

// IsEmpty reports whether r is inverted and therefore covers no point.
func (r Rect) IsEmpty() bool {
	return r.X1 > r.X2 || r.Y1 > r.Y2
}

// ContainsPoint reports whether (x, y) lies in r, edges inclusive.
func (r Rect) ContainsPoint(x, y float32) bool {
	return r.X1 <= x && x <= r.X2 && r.Y1 <= y && y <= r.Y2
}

// Intersects reports whether r and o share at least one point.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 <= o.X2 && o.X1 <= r.X2 && r.Y1 <= o.Y2 && o.Y1 <= r.Y2
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
		X2: max(r.X2, o.X2),
		Y2: max(r.Y2, o.Y2),
	}
}

// Area returns the area of r. It is negative when exactly one axis is
// inverted; a rectangle inverted on both axes, such as Empty(), has a
// positive area (+Inf for Empty()).
func (r Rect) Area() float32 {
	return (r.X2 - r.X1) * (r.Y2 - r.Y1)
}

// Center returns the midpoint of r.
func (r Rect) Center() (x, y float32) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// String returns a compact representation for logs and test failures.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g %g, %g %g)", r.X1, r.Y1, r.X2, r.Y2)
}

package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromVec converts a gonum r3.Vec into a Point.
func FromVec(v r3.Vec) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec converts p into a gonum r3.Vec.
func (p Point) Vec() r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// Distance returns the Euclidean distance between p and q.
// The result is symmetric in its arguments and exactly 0 for coincident points.
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	return r3.Norm(r3.Sub(p.Vec(), q.Vec()))
}

// IsFinite reports whether every coordinate of p is neither NaN nor ±Inf.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y) && isFinite(p.Z)
}

// String renders p as "(x, y, z)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Seg is shorthand for Segment{From: from, To: to}.
func Seg(from, to Point) Segment {
	return Segment{From: from, To: to}
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{From: s.To, To: s.From}
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// String renders s as "(x, y, z)->(x, y, z)".
func (s Segment) String() string {
	return s.From.String() + "->" + s.To.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package shapes

import (
	"fmt"
	"math"
)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PtFromPolar returns the point at the given radius and angle (radians,
// counter-clockwise from the positive x axis) around center.
func PtFromPolar(center Point, radius, angle float64) Point {
	return center.Translate(VecFromAngle(angle).Mul(radius))
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns pt displaced by o.
func (pt Point) Translate(o Vec2) Point {
	return Point{X: pt.X + o.X, Y: pt.Y + o.Y}
}

// Sub computes pt−o as a displacement vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return Point(Vec2(pt).Lerp(Vec2(o), t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (pt.X + o.X), Y: 0.5 * (pt.Y + o.Y)}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// clockwise reports whether the triplet (p0, p1, p2) turns clockwise at p1,
// in a y-down coordinate system. This is the "fast but not reliable" convexity
// primitive: it is a sign test on the cross product of the two edge vectors
// and degrades near colinear triplets, but the package only ever needs the
// flag to agree between two polygons being matched, not to be numerically
// robust in isolation.
func clockwise(p0, p1, p2 Point) bool {
	v1 := p1.Sub(p0)
	v2 := p2.Sub(p1)
	return v1.Cross(v2) > 0
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

package shapes

import "math"

// Cubic is a single cubic Bézier segment, stored as an 8-wide numeric record
// (two anchors and two control points) rather than four [Point]s, so that
// componentwise arithmetic — used by [Morph] to interpolate between two
// cubics — is a single pass over eight floats instead of four point adds.
// The named accessors below are a view onto that layout.
type Cubic struct {
	Anchor0X, Anchor0Y   float64
	Control0X, Control0Y float64
	Control1X, Control1Y float64
	Anchor1X, Anchor1Y   float64
}

// NewCubic builds a Cubic from its four control points.
func NewCubic(anchor0, control0, control1, anchor1 Point) Cubic {
	return Cubic{
		Anchor0X: anchor0.X, Anchor0Y: anchor0.Y,
		Control0X: control0.X, Control0Y: control0.Y,
		Control1X: control1.X, Control1Y: control1.Y,
		Anchor1X: anchor1.X, Anchor1Y: anchor1.Y,
	}
}

func (c Cubic) Anchor0() Point  { return Pt(c.Anchor0X, c.Anchor0Y) }
func (c Cubic) Control0() Point { return Pt(c.Control0X, c.Control0Y) }
func (c Cubic) Control1() Point { return Pt(c.Control1X, c.Control1Y) }
func (c Cubic) Anchor1() Point  { return Pt(c.Anchor1X, c.Anchor1Y) }

// StraightLine returns the cubic representation of the line segment from p0
// to p1, with control points at the 1/3 and 2/3 linear interpolants.
func StraightLine(p0, p1 Point) Cubic {
	return NewCubic(p0, p0.Lerp(p1, 1.0/3.0), p0.Lerp(p1, 2.0/3.0), p1)
}

// CircularArc returns a single cubic approximating the minor arc from p0 to
// p1 around center, in the direction in which a 90°-rotated tangent at p0
// points towards p1.
//
// Near-colinear triplets (cos(angle) > 0.999) fall back to [StraightLine]:
// the single-cubic circular arc approximation degrades as the arc angle
// approaches zero, and a straight line is indistinguishable from the true
// arc at that point anyway.
func CircularArc(center, p0, p1 Point) Cubic {
	p0d := p0.Sub(center)
	p1d := p1.Sub(center)
	r := p0d.Hypot()
	c := p0d.Dot(p1d) / (r * r)
	if c > 0.999 {
		return StraightLine(p0, p1)
	}

	rotatedP0 := p0d.Rotate90()
	clockwise := rotatedP0.Dot(p1d) >= 0

	k := r * (4.0 / 3.0) * (math.Sqrt(2*(1-c)) - math.Sqrt(1-c*c)) / (1 - c)
	if !clockwise {
		k = -k
	}

	control0 := p0.Translate(rotatedP0.Mul(k / r))
	rotatedP1 := p1d.Rotate90()
	control1 := p1.Translate(rotatedP1.Mul(-k / r))

	return NewCubic(p0, control0, control1, p1)
}

// Eval evaluates the cubic at parameter t ∈ [0,1] using the Bernstein form.
func (c Cubic) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.Anchor0()).Mul(mt * mt * mt)
	b := Vec2(c.Control0()).Mul(3 * mt * mt * t)
	cc := Vec2(c.Control1()).Mul(3 * mt * t * t)
	d := Vec2(c.Anchor1()).Mul(t * t * t)
	return Point(a.Add(b).Add(cc).Add(d))
}

// Split splits the cubic at parameter t using de Casteljau's algorithm.
// left.Anchor1() and right.Anchor0() both equal c.Eval(t).
func (c Cubic) Split(t float64) (left, right Cubic) {
	p0, p1, p2, p3 := Vec2(c.Anchor0()), Vec2(c.Control0()), Vec2(c.Control1()), Vec2(c.Anchor1())

	p01 := p0.Lerp(p1, t)
	p12 := p1.Lerp(p2, t)
	p23 := p2.Lerp(p3, t)
	p012 := p01.Lerp(p12, t)
	p123 := p12.Lerp(p23, t)
	p0123 := p012.Lerp(p123, t)

	left = NewCubic(Point(p0), Point(p01), Point(p012), Point(p0123))
	right = NewCubic(Point(p0123), Point(p123), Point(p23), Point(p3))
	return left, right
}

// Reverse returns the cubic traversed in the opposite direction.
func (c Cubic) Reverse() Cubic {
	return Cubic{
		Anchor0X: c.Anchor1X, Anchor0Y: c.Anchor1Y,
		Control0X: c.Control1X, Control0Y: c.Control1Y,
		Control1X: c.Control0X, Control1Y: c.Control0Y,
		Anchor1X: c.Anchor0X, Anchor1Y: c.Anchor0Y,
	}
}

// Transformed returns the cubic with f applied to each of its four points.
func (c Cubic) Transformed(f func(Point) Point) Cubic {
	return NewCubic(f(c.Anchor0()), f(c.Control0()), f(c.Control1()), f(c.Anchor1()))
}

// IsZeroLength reports whether the cubic's two anchors are within
// [DistanceEpsilon] of each other on both axes.
func (c Cubic) IsZeroLength() bool {
	return math.Abs(c.Anchor1X-c.Anchor0X) < DistanceEpsilon &&
		math.Abs(c.Anchor1Y-c.Anchor0Y) < DistanceEpsilon
}

// Plus adds two cubics componentwise. Used by the interpolator in [Morph]
// together with [Cubic.Times].
func (c Cubic) Plus(o Cubic) Cubic {
	return Cubic{
		Anchor0X: c.Anchor0X + o.Anchor0X, Anchor0Y: c.Anchor0Y + o.Anchor0Y,
		Control0X: c.Control0X + o.Control0X, Control0Y: c.Control0Y + o.Control0Y,
		Control1X: c.Control1X + o.Control1X, Control1Y: c.Control1Y + o.Control1Y,
		Anchor1X: c.Anchor1X + o.Anchor1X, Anchor1Y: c.Anchor1Y + o.Anchor1Y,
	}
}

// Times scales a cubic componentwise by a scalar.
func (c Cubic) Times(f float64) Cubic {
	return Cubic{
		Anchor0X: c.Anchor0X * f, Anchor0Y: c.Anchor0Y * f,
		Control0X: c.Control0X * f, Control0Y: c.Control0Y * f,
		Control1X: c.Control1X * f, Control1Y: c.Control1Y * f,
		Anchor1X: c.Anchor1X * f, Anchor1Y: c.Anchor1Y * f,
	}
}

// Interpolate returns the cubic whose eight numbers are linearly interpolated
// between c and o by progress.
func (c Cubic) Interpolate(o Cubic, progress float64) Cubic {
	return c.Times(1 - progress).Plus(o.Times(progress))
}

// CalculateBounds returns the axis-aligned bounding box of the cubic. If
// approximate is true, the bounds are simply the AABB of all four control
// points (cheap, and always a superset of the true bounds); otherwise the
// derivative is solved for roots on each axis to find the exact bounds.
func (c Cubic) CalculateBounds(approximate bool) Rect {
	if approximate {
		r := NewRectFromPoints(c.Anchor0(), c.Anchor1())
		r = r.UnionPoint(c.Control0())
		r = r.UnionPoint(c.Control1())
		return r
	}

	minX, maxX := minMaxOnAxis(c.Anchor0X, c.Control0X, c.Control1X, c.Anchor1X)
	minY, maxY := minMaxOnAxis(c.Anchor0Y, c.Control0Y, c.Control1Y, c.Anchor1Y)
	return Rect{X0: minX, Y0: minY, X1: maxX, Y1: maxY}
}

// minMaxOnAxis returns the exact extent of a single-axis cubic Bézier with
// control values p0..p3, by solving the quadratic derivative for its roots
// in (0,1) and evaluating the cubic at the endpoints and any roots found.
func minMaxOnAxis(p0, p1, p2, p3 float64) (lo, hi float64) {
	lo, hi = min(p0, p3), max(p0, p3)

	// Derivative of the cubic Bézier, as a quadratic in t:
	// B'(t) = 3(1-t)^2(p1-p0) + 6(1-t)t(p2-p1) + 3t^2(p3-p2)
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	cc := p1 - p0

	consider := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		mt := 1 - t
		v := mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
		lo, hi = min(lo, v), max(hi, v)
	}

	const tiny = 1e-12
	if math.Abs(a) < tiny {
		if math.Abs(b) >= tiny {
			consider(-cc / b)
		}
		return lo, hi
	}
	disc := b*b - 4*a*cc
	if disc < 0 {
		return lo, hi
	}
	sq := math.Sqrt(disc)
	consider((-b + sq) / (2 * a))
	consider((-b - sq) / (2 * a))
	return lo, hi
}

package shapes

import "math"

// roundedCorner holds the geometry needed to round a single polygon vertex
// p1, flanked by its neighbors p0 and p2, by the requested rounding. All
// quantities that depend only on the triplet and the rounding (not on how
// much side length neighboring corners leave available) are computed once
// and cached here, since the per-side budget arbitration in buildPolygon
// queries expectedRoundCut and expectedCut for every side.
type roundedCorner struct {
	p0, p1, p2 Point
	rounding   CornerRounding

	d1, d2             Vec2
	cosAngle, sinAngle float64
	expectedRoundCut   float64
	expectedCut        float64
}

func newRoundedCorner(p0, p1, p2 Point, rounding CornerRounding) *roundedCorner {
	d1 := p0.Sub(p1).Normalize()
	d2 := p2.Sub(p1).Normalize()
	cosAngle := d1.Dot(d2)
	sinAngle := math.Sqrt(max(0, 1-cosAngle*cosAngle))

	var expectedRoundCut float64
	if sinAngle > 1e-3 {
		expectedRoundCut = rounding.Radius * (cosAngle + 1) / sinAngle
	}

	rc := &roundedCorner{
		p0: p0, p1: p1, p2: p2,
		rounding:         rounding,
		d1:               d1,
		d2:               d2,
		cosAngle:         cosAngle,
		sinAngle:         sinAngle,
		expectedRoundCut: expectedRoundCut,
	}
	rc.expectedCut = (1 + rounding.Smoothing) * expectedRoundCut
	return rc
}

// getCubics returns the (up to three) cubics rounding the corner, given the
// side length each neighboring corner allows this one to consume.
func (rc *roundedCorner) getCubics(allowedCut0, allowedCut1 float64) []Cubic {
	allowedCut := min(allowedCut0, allowedCut1)
	if rc.expectedRoundCut < DistanceEpsilon || allowedCut < DistanceEpsilon || rc.rounding.Radius < DistanceEpsilon {
		return []Cubic{StraightLine(rc.p1, rc.p1)}
	}

	actualRoundCut := min(allowedCut, rc.expectedRoundCut)
	actualR := rc.rounding.Radius * actualRoundCut / rc.expectedRoundCut

	s0 := rc.actualSmoothing(allowedCut0)
	s1 := rc.actualSmoothing(allowedCut1)

	bisector := rc.d1.Add(rc.d2).Normalize()
	center := rc.p1.Translate(bisector.Mul(math.Sqrt(actualR*actualR + actualRoundCut*actualRoundCut)))
	arcMid := center.Translate(bisector.Negate().Mul(actualR))

	flanking0 := flankingCubic(rc.p1, rc.d1, actualRoundCut, s0, center, actualR, arcMid)
	flanking1 := flankingCubic(rc.p1, rc.d2, actualRoundCut, s1, center, actualR, arcMid)

	arc := CircularArc(center, flanking0.Anchor1(), flanking1.Anchor1())

	return []Cubic{flanking0, arc, flanking1.Reverse()}
}

// actualSmoothing computes the per-side smoothing fraction as a clamped ramp
// of allowedCut between expectedRoundCut (→0) and expectedCut (→Smoothing).
func (rc *roundedCorner) actualSmoothing(allowedCut float64) float64 {
	if rc.rounding.Smoothing <= 0 || rc.expectedCut <= rc.expectedRoundCut {
		return 0
	}
	t := coerceIn((allowedCut-rc.expectedRoundCut)/(rc.expectedCut-rc.expectedRoundCut), 0, 1)
	return rc.rounding.Smoothing * t
}

// flankingCubic builds the cubic from the point on the side at distance
// roundCut*(1+s) from corner, tangent to the side, to a point on the
// rounding circle interpolated between the circle's tangent point on this
// side and the arc's apex (the point on the circle closest to corner) by s.
// The control points come from elevating the quadratic Bézier defined by
// the two endpoints and the intersection of their tangent lines to a cubic
// (the standard 1/3-2/3 split).
func flankingCubic(corner Point, sideDir Vec2, roundCut, s float64, center Point, radius float64, arcMid Point) Cubic {
	sideAnchor := corner.Translate(sideDir.Mul(roundCut * (1 + s)))
	tangentPoint := corner.Translate(sideDir.Mul(roundCut))
	circlePoint := tangentPoint.Lerp(arcMid, s)
	circlePoint = center.Translate(circlePoint.Sub(center).Normalize().Mul(radius))

	radial := circlePoint.Sub(center)
	circleTangentDir := radial.Rotate90()

	apex, ok := lineIntersection(sideAnchor, sideDir, circlePoint, circleTangentDir)
	if !ok {
		return StraightLine(sideAnchor, circlePoint)
	}

	control0 := sideAnchor.Lerp(apex, 2.0/3.0)
	control1 := circlePoint.Lerp(apex, 2.0/3.0)
	return NewCubic(sideAnchor, control0, control1, circlePoint)
}

// lineIntersection finds the intersection of the line through p0 with
// direction d0 and the line through p1 with direction d1.
func lineIntersection(p0 Point, d0 Vec2, p1 Point, d1 Vec2) (Point, bool) {
	denom := d0.Cross(d1)
	if math.Abs(denom) < 1e-9 {
		return Point{}, false
	}
	diff := p1.Sub(p0)
	t := diff.Cross(d1) / denom
	return p0.Translate(d0.Mul(t)), true
}

package shapes

import "math"

// RoundedPolygon is a closed outline built from a vertex list with optional
// per-vertex corner rounding. Features records the corner/edge structure of
// the outline; Cubics is the flattened, closed cubic list derived from
// Features by [buildCubicList]. Both are populated at construction time and
// never mutated afterwards.
type RoundedPolygon struct {
	Features []Feature
	Center   Point
	Cubics   []Cubic
}

// PolygonOption configures optional parameters accepted by the RoundedPolygon
// constructors. The zero value of each option's underlying field matches the
// spec's stated defaults (Unrounded rounding, centroid-derived center).
type PolygonOption func(*polygonOptions)

type polygonOptions struct {
	rounding          CornerRounding
	innerRounding     *CornerRounding
	perVertexRounding []CornerRounding
	center            *Point
}

// WithRounding sets the rounding applied to every vertex that doesn't have
// an explicit per-vertex override.
func WithRounding(r CornerRounding) PolygonOption {
	return func(o *polygonOptions) { o.rounding = r }
}

// WithInnerRounding sets the rounding applied to the inner vertices of
// [NewStar], when WithPerVertexRounding is not also given.
func WithInnerRounding(r CornerRounding) PolygonOption {
	return func(o *polygonOptions) { o.innerRounding = &r }
}

// WithPerVertexRounding overrides the rounding on a per-vertex basis. The
// slice must have one entry per vertex.
func WithPerVertexRounding(rs []CornerRounding) PolygonOption {
	return func(o *polygonOptions) { o.perVertexRounding = rs }
}

// WithCenter overrides the polygon's reported center. Absent this option,
// the center is the centroid of the vertices.
func WithCenter(c Point) PolygonOption {
	return func(o *polygonOptions) { o.center = &c }
}

func resolveOptions(opts []PolygonOption) polygonOptions {
	var o polygonOptions
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// NewRoundedPolygonFromVertices builds a RoundedPolygon from a flat
// [x0,y0,x1,y1,...] vertex list. It panics if the list has an odd length or
// holds fewer than 3 vertices.
func NewRoundedPolygonFromVertices(vertices []float64, opts ...PolygonOption) RoundedPolygon {
	if len(vertices)%2 != 0 {
		panic("shapes: vertices must be a flat list of x,y pairs")
	}
	n := len(vertices) / 2
	points := make([]Point, n)
	for i := range points {
		points[i] = Pt(vertices[2*i], vertices[2*i+1])
	}
	o := resolveOptions(opts)
	return buildPolygon(points, o)
}

// NewRegularPolygon builds a regular n-gon with the given circumradius,
// centered at (cx, cy), with optional corner rounding.
func NewRegularPolygon(numVertices int, radius float64, cx, cy float64, opts ...PolygonOption) RoundedPolygon {
	if numVertices < 3 {
		panic("shapes: numVertices must be at least 3")
	}
	center := Pt(cx, cy)
	points := make([]Point, numVertices)
	for i := range points {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/float64(numVertices)
		points[i] = PtFromPolar(center, radius, angle)
	}
	o := resolveOptions(opts)
	if o.center == nil {
		o.center = &center
	}
	return buildPolygon(points, o)
}

// NewCircle approximates a circle with a regular numVertices-gon whose
// polygon radius is scaled up so that, once every corner is rounded with
// radius equal to the requested circle radius, the rounded outline hugs the
// true circle.
func NewCircle(numVertices int, radius float64, cx, cy float64) RoundedPolygon {
	if numVertices < 3 {
		numVertices = 8
	}
	polygonRadius := radius / math.Cos(math.Pi/float64(numVertices))
	return NewRegularPolygon(numVertices, polygonRadius, cx, cy, WithRounding(CornerRounding{Radius: radius}))
}

// NewRoundedRectangle builds a width×height rectangle centered at (cx, cy).
func NewRoundedRectangle(width, height float64, cx, cy float64, opts ...PolygonOption) RoundedPolygon {
	hw, hh := width/2, height/2
	center := Pt(cx, cy)
	points := []Point{
		center.Translate(Vec(hw, -hh)),
		center.Translate(Vec(hw, hh)),
		center.Translate(Vec(-hw, hh)),
		center.Translate(Vec(-hw, -hh)),
	}
	o := resolveOptions(opts)
	if o.center == nil {
		o.center = &center
	}
	return buildPolygon(points, o)
}

// NewStar builds a star with numVerticesPerRadius outer and the same number
// of inner vertices, alternating around the center. When WithInnerRounding
// is given and WithPerVertexRounding is not, the effective per-vertex
// rounding list alternates [outer rounding, inner rounding, ...] — the
// synthesized list is what's actually used to build the corners.
func NewStar(numVerticesPerRadius int, outerRadius, innerRadius float64, cx, cy float64, opts ...PolygonOption) RoundedPolygon {
	if numVerticesPerRadius < 3 {
		panic("shapes: numVerticesPerRadius must be at least 3")
	}
	center := Pt(cx, cy)
	n := numVerticesPerRadius * 2
	points := make([]Point, n)
	for i := range points {
		angle := -math.Pi/2 + math.Pi*float64(i)/float64(numVerticesPerRadius)
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		points[i] = PtFromPolar(center, r, angle)
	}
	o := resolveOptions(opts)
	if o.center == nil {
		o.center = &center
	}
	if o.perVertexRounding == nil && o.innerRounding != nil {
		pvr := make([]CornerRounding, n)
		for i := range pvr {
			if i%2 == 0 {
				pvr[i] = o.rounding
			} else {
				pvr[i] = *o.innerRounding
			}
		}
		o.perVertexRounding = pvr
	}
	return buildPolygon(points, o)
}

func buildPolygon(points []Point, o polygonOptions) RoundedPolygon {
	n := len(points)
	if n < 3 {
		panic("shapes: a polygon needs at least 3 vertices")
	}

	roundingFor := func(i int) CornerRounding {
		if o.perVertexRounding != nil {
			return o.perVertexRounding[i]
		}
		return o.rounding
	}

	corners := make([]*roundedCorner, n)
	for i := range corners {
		p0 := points[(i-1+n)%n]
		p1 := points[i]
		p2 := points[(i+1)%n]
		corners[i] = newRoundedCorner(p0, p1, p2, roundingFor(i))
	}

	allowedCutTowardPrev := make([]float64, n)
	allowedCutTowardNext := make([]float64, n)
	for s := 0; s < n; s++ {
		left := corners[s]
		right := corners[(s+1)%n]
		sideLength := points[s].Distance(points[(s+1)%n])

		cutSum := left.expectedRoundCut + right.expectedRoundCut
		expectedCutSum := left.expectedCut + right.expectedCut

		var roundRatio, smoothRatio float64
		switch {
		case cutSum > sideLength:
			if cutSum > DistanceEpsilon {
				roundRatio = sideLength / cutSum
			}
			smoothRatio = 0
		case expectedCutSum > sideLength:
			roundRatio = 1
			denom := expectedCutSum - cutSum
			if denom > DistanceEpsilon {
				smoothRatio = (sideLength - cutSum) / denom
			}
		default:
			roundRatio = 1
			smoothRatio = 1
		}

		allowedCutTowardNext[s] = left.expectedRoundCut*roundRatio + (left.expectedCut-left.expectedRoundCut)*smoothRatio
		allowedCutTowardPrev[(s+1)%n] = right.expectedRoundCut*roundRatio + (right.expectedCut-right.expectedRoundCut)*smoothRatio
	}

	cornerCubics := make([][]Cubic, n)
	for i := 0; i < n; i++ {
		cornerCubics[i] = corners[i].getCubics(allowedCutTowardPrev[i], allowedCutTowardNext[i])
	}

	features := make([]Feature, 0, 2*n)
	for i := 0; i < n; i++ {
		cubics := cornerCubics[i]
		convex := clockwise(points[(i-1+n)%n], points[i], points[(i+1)%n])
		features = append(features, CornerFeature(cubics, convex))

		next := (i + 1) % n
		edgeStart := cubics[len(cubics)-1].Anchor1()
		edgeEnd := cornerCubics[next][0].Anchor0()
		features = append(features, EdgeFeature([]Cubic{StraightLine(edgeStart, edgeEnd)}))
	}

	center := centroid(points)
	if o.center != nil {
		center = *o.center
	}

	return RoundedPolygon{
		Features: features,
		Center:   center,
		Cubics:   buildCubicList(features),
	}
}

func centroid(points []Point) Point {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return Pt(sx/n, sy/n)
}

// buildCubicList flattens a feature list into a closed cubic list. If the
// first feature is a non-degenerate corner (three cubics), its middle
// cubic — the circular arc — is split at t=0.5 and its tail half is emitted
// first, with the head half appended at the very end (just before the
// closing cubic). That way, cubics[0] starts inside the roundest part of a
// corner rather than at a raw polygon vertex, which keeps the very first
// cubic well away from any vertex/tangent discontinuity that later feature
// matching has to reason about.
func buildCubicList(features []Feature) []Cubic {
	var raw []Cubic
	first := features[0]
	if first.IsCorner() && len(first.Cubics) == 3 {
		headHalf, tailHalf := first.Cubics[1].Split(0.5)
		raw = append(raw, tailHalf, first.Cubics[2])
		for _, f := range features[1:] {
			raw = append(raw, f.Cubics...)
		}
		raw = append(raw, first.Cubics[0], headHalf)
	} else {
		for _, f := range features {
			raw = append(raw, f.Cubics...)
		}
	}

	retained := make([]Cubic, 0, len(raw))
	for _, c := range raw {
		if c.IsZeroLength() {
			if len(retained) > 0 {
				retained[len(retained)-1].Anchor1X = c.Anchor1X
				retained[len(retained)-1].Anchor1Y = c.Anchor1Y
			}
			continue
		}
		retained = append(retained, c)
	}
	if len(retained) == 0 {
		return retained
	}

	last := retained[len(retained)-1]
	closing := Cubic{
		Anchor0X: last.Anchor1X, Anchor0Y: last.Anchor1Y,
		Control0X: last.Control0X, Control0Y: last.Control0Y,
		Control1X: last.Control1X, Control1Y: last.Control1Y,
		Anchor1X: retained[0].Anchor0X, Anchor1Y: retained[0].Anchor0Y,
	}
	return append(retained, closing)
}

// Transformed returns a copy of p with f applied to every control point of
// every cubic (in both Features and Cubics) and to the center.
func (p RoundedPolygon) Transformed(f func(Point) Point) RoundedPolygon {
	out := RoundedPolygon{
		Center: f(p.Center),
		Cubics: make([]Cubic, len(p.Cubics)),
	}
	for i, c := range p.Cubics {
		out.Cubics[i] = c.Transformed(f)
	}
	out.Features = make([]Feature, len(p.Features))
	for i, feat := range p.Features {
		cubics := make([]Cubic, len(feat.Cubics))
		for j, c := range feat.Cubics {
			cubics[j] = c.Transformed(f)
		}
		out.Features[i] = Feature{Kind: feat.Kind, Cubics: cubics, Convex: feat.Convex}
	}
	return out
}

// Normalized returns p scaled and translated to fit within [0,1]×[0,1] while
// preserving aspect ratio: the longer bounding-box side becomes exactly 1.
func (p RoundedPolygon) Normalized() RoundedPolygon {
	bounds := p.CalculateBounds(true)
	side := max(bounds.Width(), bounds.Height())
	if side < DistanceEpsilon {
		return p
	}
	origin := Pt(bounds.X0, bounds.Y0)
	return p.Transformed(func(pt Point) Point {
		return Pt((pt.X-origin.X)/side, (pt.Y-origin.Y)/side)
	})
}

// CalculateBounds returns the axis-aligned bounding box of p's cubics.
// approximate, when true (the common case), uses each cubic's control-point
// AABB rather than solving for exact extrema — cheaper, and always a
// superset of the true bounds.
func (p RoundedPolygon) CalculateBounds(approximate bool) Rect {
	if len(p.Cubics) == 0 {
		return Rect{}
	}
	bounds := p.Cubics[0].CalculateBounds(approximate)
	for _, c := range p.Cubics[1:] {
		bounds = bounds.Union(c.CalculateBounds(approximate))
	}
	return bounds
}

// CalculateMaxBounds returns the exact bounding box of p's cubics.
func (p RoundedPolygon) CalculateMaxBounds() Rect {
	return p.CalculateBounds(false)
}

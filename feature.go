package shapes

// FeatureKind classifies a contiguous sub-outline of a [RoundedPolygon].
type FeatureKind int

const (
	// FeatureEdge is a straight run between two corners. Edges are ignored
	// by feature matching.
	FeatureEdge FeatureKind = iota
	// FeatureCorner is the (possibly rounded) region around a vertex.
	FeatureCorner
)

// Feature is a tagged classification of a contiguous sub-outline, carrying
// the cubics that make it up. Only two shapes exist (an edge and a corner),
// so a tagged struct is a better fit here than an interface hierarchy: no
// caller needs polymorphic dispatch, only the kind and, for corners, the
// convexity flag.
type Feature struct {
	Kind   FeatureKind
	Cubics []Cubic
	// Convex is meaningful only when Kind == FeatureCorner.
	Convex bool
}

// EdgeFeature returns an edge feature made up of the given cubics.
func EdgeFeature(cubics []Cubic) Feature {
	return Feature{Kind: FeatureEdge, Cubics: cubics}
}

// CornerFeature returns a corner feature made up of the given cubics.
func CornerFeature(cubics []Cubic, convex bool) Feature {
	return Feature{Kind: FeatureCorner, Cubics: cubics, Convex: convex}
}

func (f Feature) IsCorner() bool { return f.Kind == FeatureCorner }

// firstAnchor and lastAnchor return the feature's boundary anchors, used to
// compute a representative point for feature matching.
func (f Feature) firstAnchor() Point { return f.Cubics[0].Anchor0() }
func (f Feature) lastAnchor() Point  { return f.Cubics[len(f.Cubics)-1].Anchor1() }

// representativePoint is the midpoint between the feature's first and last
// anchors, used as a proxy location for feature-to-feature matching.
func (f Feature) representativePoint() Point {
	return f.firstAnchor().Midpoint(f.lastAnchor())
}

// ProgressableFeature associates a corner feature with its midpoint outline
// progress, as computed by [MeasurePolygon].
type ProgressableFeature struct {
	Progress float64
	Feature  Feature
}

// Package shapes builds 2D shapes out of cubic Béziers and morphs between
// them.
//
// # Rounded polygons
//
// [RoundedPolygon] describes a closed shape as an ordered list of vertices,
// each with its own optional corner rounding. [NewRoundedPolygonFromVertices]
// builds one from arbitrary points; [NewRegularPolygon], [NewStar],
// [NewCircle], and [NewRoundedRectangle] build common shapes directly.
// [CornerRounding] configures how much of each corner is replaced by a
// circular arc and how much of the flanking straight edges is smoothed into
// that arc.
//
// A RoundedPolygon's outline is available two ways: [RoundedPolygon.Features]
// describes it as alternating edges and corners, which is what shape matching
// operates on; [RoundedPolygon.Cubics] flattens it into the closed cubic list
// a rasterizer consumes directly, or via [CubicsToPath].
//
// # Morphing
//
// [Morph] aligns the outlines of two rounded polygons — matching corners by
// proximity and convexity, then splitting cubics on both sides so they share
// the same parameter boundaries — and uses that alignment to interpolate
// between them. [Morph.AsCubics] and [Morph.ForEachCubic] both turn a
// progress value in [0,1] into the cubics of the in-between outline; the
// latter avoids allocating by reusing a caller-owned scratch cubic.
//
// Matching is driven by a [Measurer], which turns cubics into a notion of
// distance along the outline. [LengthMeasurer] approximates arc length and is
// the default; callers needing a different notion of "distance" (matching by
// curvature or tangent angle, say) can supply their own.
package shapes

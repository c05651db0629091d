package shapes

import "sort"

// anchorPair is one (a,b) correspondence point of a [DoubleMapper].
type anchorPair struct {
	A, B float64
}

// DoubleMapper is a piecewise-linear, cyclic, order-preserving bijection of
// [0,1) to itself, defined by anchor pairs in insertion order. Insertion
// order must already reflect increasing cyclic a (and, by the bijection
// property, increasing cyclic b): [NewDoubleMapper] does not re-sort.
type DoubleMapper struct {
	anchors []anchorPair
}

// NewDoubleMapper returns a DoubleMapper over the given anchors, which must
// already be arranged in cyclic order.
func NewDoubleMapper(anchors []anchorPair) DoubleMapper {
	if len(anchors) == 0 {
		panic("shapes: DoubleMapper requires at least one anchor")
	}
	return DoubleMapper{anchors: append([]anchorPair(nil), anchors...)}
}

// IdentityDoubleMapper returns the identity mapping [(0,0),(0.5,0.5)].
func IdentityDoubleMapper() DoubleMapper {
	return DoubleMapper{anchors: []anchorPair{{A: 0, B: 0}, {A: 0.5, B: 0.5}}}
}

// Map applies the forward mapping.
func (m DoubleMapper) Map(x float64) float64 { return m.mapVia(x, true) }

// MapBack applies the inverse mapping.
func (m DoubleMapper) MapBack(x float64) float64 { return m.mapVia(x, false) }

func (m DoubleMapper) mapVia(x float64, forward bool) float64 {
	x = positiveModulo(x, 1)
	n := len(m.anchors)
	for i := 0; i < n; i++ {
		var a0, a1, b0, b1 float64
		if forward {
			a0, a1 = m.anchors[i].A, m.anchors[(i+1)%n].A
			b0, b1 = m.anchors[i].B, m.anchors[(i+1)%n].B
		} else {
			a0, a1 = m.anchors[i].B, m.anchors[(i+1)%n].B
			b0, b1 = m.anchors[i].A, m.anchors[(i+1)%n].A
		}
		deltaA := positiveModulo(a1-a0, 1)
		rel := positiveModulo(x-a0, 1)
		if rel < deltaA+1e-9 {
			if deltaA < 1e-3 {
				return positiveModulo(b0+positiveModulo(b1-b0, 1)/2, 1)
			}
			deltaB := positiveModulo(b1-b0, 1)
			return positiveModulo(b0+deltaB*(rel/deltaA), 1)
		}
	}
	panic("shapes: DoubleMapper found no segment containing the given value")
}

// featureMapper greedily matches corner features between two measured
// outlines by proximity of their representative points, and returns the
// piecewise-linear bijection those matches imply.
func featureMapper(features1, features2 []ProgressableFeature) DoubleMapper {
	type candidate struct {
		f1, f2 ProgressableFeature
		dist   float64
	}

	var candidates []candidate
	for _, f1 := range features1 {
		for _, f2 := range features2 {
			if !f1.Feature.IsCorner() || !f2.Feature.IsCorner() {
				continue
			}
			if f1.Feature.Convex != f2.Feature.Convex {
				continue
			}
			d := f1.Feature.representativePoint().DistanceSquared(f2.Feature.representativePoint())
			candidates = append(candidates, candidate{f1: f1, f2: f2, dist: d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	var accepted []anchorPair
	used1 := make(map[float64]bool)
	used2 := make(map[float64]bool)

	for _, cand := range candidates {
		a, b := cand.f1.Progress, cand.f2.Progress
		if used1[a] || used2[b] {
			continue
		}
		if !canInsertAnchor(accepted, a, b) {
			continue
		}
		accepted = insertAnchorSorted(accepted, anchorPair{A: a, B: b})
		used1[a] = true
		used2[b] = true
	}

	switch len(accepted) {
	case 0:
		return IdentityDoubleMapper()
	case 1:
		p := accepted[0]
		antipode := anchorPair{A: positiveModulo(p.A+0.5, 1), B: positiveModulo(p.B+0.5, 1)}
		if antipode.A < p.A {
			return NewDoubleMapper([]anchorPair{antipode, p})
		}
		return NewDoubleMapper([]anchorPair{p, antipode})
	default:
		return NewDoubleMapper(accepted)
	}
}

// canInsertAnchor reports whether (a,b) can be added to accepted (kept
// sorted ascending by A) without violating proximity or monotonicity.
func canInsertAnchor(accepted []anchorPair, a, b float64) bool {
	for _, p := range accepted {
		if circularDistance(a, p.A) < DistanceEpsilon {
			return false
		}
		if circularDistance(b, p.B) < DistanceEpsilon {
			return false
		}
	}
	if len(accepted) < 2 {
		return true
	}

	n := len(accepted)
	predIdx := -1
	for i := 0; i < n; i++ {
		if accepted[i].A < a {
			predIdx = i
		} else {
			break
		}
	}
	var pred, succ anchorPair
	if predIdx == -1 {
		pred, succ = accepted[n-1], accepted[0]
	} else {
		pred = accepted[predIdx]
		if predIdx+1 < n {
			succ = accepted[predIdx+1]
		} else {
			succ = accepted[0]
		}
	}
	return cyclicBetween(pred.B, b, succ.B)
}

// cyclicBetween reports whether x lies strictly within the cyclic interval
// (lo, hi), walking forward from lo to hi.
func cyclicBetween(lo, x, hi float64) bool {
	span := positiveModulo(hi-lo, 1)
	rel := positiveModulo(x-lo, 1)
	return rel > 0 && rel < span
}

func insertAnchorSorted(accepted []anchorPair, p anchorPair) []anchorPair {
	i := 0
	for i < len(accepted) && accepted[i].A < p.A {
		i++
	}
	accepted = append(accepted, anchorPair{})
	copy(accepted[i+1:], accepted[i:])
	accepted[i] = p
	return accepted
}

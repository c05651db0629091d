package shapes

import "sort"

// Measurer computes arc length along cubics and inverts that measurement
// back to a parameter. Implementations must be monotone in m: for a fixed
// cubic c, FindCubicCutPoint(c, m) must not decrease as m increases. The
// package tolerates measurers other than [LengthMeasurer] (for example, one
// based on tangent angle) as long as that property holds.
type Measurer interface {
	MeasureCubic(c Cubic) float64
	FindCubicCutPoint(c Cubic, m float64) float64
}

// LengthMeasurer is the default [Measurer]: it approximates arc length by
// subdividing the cubic into three equal-t chords and summing their lengths.
type LengthMeasurer struct{}

const lengthMeasurerSubdivisions = 3

// MeasureCubic implements Measurer.
func (LengthMeasurer) MeasureCubic(c Cubic) float64 {
	var total float64
	prev := c.Anchor0()
	for i := 1; i <= lengthMeasurerSubdivisions; i++ {
		t := float64(i) / lengthMeasurerSubdivisions
		p := c.Eval(t)
		total += prev.Distance(p)
		prev = p
	}
	return total
}

// FindCubicCutPoint implements Measurer, walking the same chord subdivision
// used by MeasureCubic and linearly interpolating within the first chord
// whose cumulative length reaches m.
func (LengthMeasurer) FindCubicCutPoint(c Cubic, m float64) float64 {
	if m <= 0 {
		return 0
	}
	prev := c.Anchor0()
	prevT := 0.0
	var cum float64
	for i := 1; i <= lengthMeasurerSubdivisions; i++ {
		t := float64(i) / lengthMeasurerSubdivisions
		p := c.Eval(t)
		segLen := prev.Distance(p)
		if cum+segLen >= m {
			frac := 0.0
			if segLen > DistanceEpsilon {
				frac = (m - cum) / segLen
			}
			return prevT + frac*(t-prevT)
		}
		cum += segLen
		prev = p
		prevT = t
	}
	return 1.0
}

// MeasuredCubic is a cubic annotated with the outline-progress range it
// covers within its [MeasuredPolygon], 0 ≤ start ≤ end ≤ 1.
type MeasuredCubic struct {
	Cubic                Cubic
	StartOutlineProgress float64
	EndOutlineProgress   float64
}

// cutAtProgress splits mc at the given outline progress (which must lie
// within [mc.StartOutlineProgress, mc.EndOutlineProgress]) into the portion
// before and the portion after the cut.
func (mc MeasuredCubic) cutAtProgress(progress float64) (front, back MeasuredCubic) {
	span := mc.EndOutlineProgress - mc.StartOutlineProgress
	t := 0.5
	if span > DistanceEpsilon {
		t = coerceIn((progress-mc.StartOutlineProgress)/span, 0, 1)
	}
	left, right := mc.Cubic.Split(t)
	front = MeasuredCubic{Cubic: left, StartOutlineProgress: mc.StartOutlineProgress, EndOutlineProgress: progress}
	back = MeasuredCubic{Cubic: right, StartOutlineProgress: progress, EndOutlineProgress: mc.EndOutlineProgress}
	return front, back
}

// MeasuredPolygon is a RoundedPolygon's outline annotated with cumulative
// arc-length progress in [0,1], plus the progress at which each corner
// feature sits.
type MeasuredPolygon struct {
	Measurer Measurer
	Features []ProgressableFeature
	Cubics   []MeasuredCubic
}

// MeasurePolygon measures polygon's outline with the given measurer, and
// records each corner feature's midpoint outline progress.
func MeasurePolygon(measurer Measurer, polygon RoundedPolygon) MeasuredPolygon {
	type taggedCubic struct {
		cubic Cubic
	}

	var raw []taggedCubic
	midIndex := make(map[int]int) // corner ordinal -> index into raw of its mid cubic
	cornerOrdinal := 0
	for _, feat := range polygon.Features {
		if feat.IsCorner() {
			mid := len(feat.Cubics) / 2
			midIndex[cornerOrdinal] = len(raw) + mid
			for _, c := range feat.Cubics {
				raw = append(raw, taggedCubic{cubic: c})
			}
			cornerOrdinal++
		} else {
			for _, c := range feat.Cubics {
				raw = append(raw, taggedCubic{cubic: c})
			}
		}
	}

	lengths := make([]float64, len(raw))
	var total float64
	for i, tc := range raw {
		l := measurer.MeasureCubic(tc.cubic)
		if l < 0 {
			panic("shapes: Measurer.MeasureCubic returned a negative length")
		}
		lengths[i] = l
		total += l
	}
	if total < DistanceEpsilon {
		total = 1
	}

	boundary := make([]float64, len(raw)+1)
	for i, l := range lengths {
		boundary[i+1] = boundary[i] + l/total
	}

	features := make([]ProgressableFeature, 0, cornerOrdinal)
	ordinal := 0
	for _, feat := range polygon.Features {
		if !feat.IsCorner() {
			continue
		}
		idx := midIndex[ordinal]
		progress := positiveModulo((boundary[idx]+boundary[idx+1])/2, 1)
		features = append(features, ProgressableFeature{Progress: progress, Feature: feat})
		ordinal++
	}

	// Each kept cubic starts exactly where the previous kept one ends, so
	// dropping an empty segment leaves no gap in the progress range.
	cubics := make([]MeasuredCubic, 0, len(raw))
	start := 0.0
	for i, tc := range raw {
		end := boundary[i+1]
		if end-start < 1e-9 {
			continue
		}
		cubics = append(cubics, MeasuredCubic{Cubic: tc.cubic, StartOutlineProgress: start, EndOutlineProgress: end})
		start = end
	}
	if len(cubics) > 0 {
		cubics[0].StartOutlineProgress = 0
		cubics[len(cubics)-1].EndOutlineProgress = 1
	}

	return MeasuredPolygon{Measurer: measurer, Features: features, Cubics: cubics}
}

// findCuttingIndex returns the index of the cubic whose progress range
// contains cuttingPoint.
func (mp MeasuredPolygon) findCuttingIndex(cuttingPoint float64) int {
	for i, c := range mp.Cubics {
		if cuttingPoint >= c.StartOutlineProgress-AngleEpsilon && cuttingPoint < c.EndOutlineProgress-AngleEpsilon {
			return i
		}
	}
	return len(mp.Cubics) - 1
}

// CutAndShift rotates the outline so that progress 0 lands at cuttingPoint.
func (mp MeasuredPolygon) CutAndShift(cuttingPoint float64) MeasuredPolygon {
	cuttingPoint = positiveModulo(cuttingPoint, 1)
	if cuttingPoint < DistanceEpsilon {
		return mp
	}

	idx := mp.findCuttingIndex(cuttingPoint)
	front, back := mp.Cubics[idx].cutAtProgress(cuttingPoint)

	reordered := make([]MeasuredCubic, 0, len(mp.Cubics)+1)
	reordered = append(reordered, back)
	reordered = append(reordered, mp.Cubics[idx+1:]...)
	reordered = append(reordered, mp.Cubics[:idx]...)
	reordered = append(reordered, front)

	shifted := make([]MeasuredCubic, len(reordered))
	for i, c := range reordered {
		shifted[i] = MeasuredCubic{
			Cubic:                c.Cubic,
			StartOutlineProgress: positiveModulo(c.StartOutlineProgress-cuttingPoint, 1),
			EndOutlineProgress:   positiveModulo(c.EndOutlineProgress-cuttingPoint, 1),
		}
	}
	shifted[0].StartOutlineProgress = 0
	shifted[len(shifted)-1].EndOutlineProgress = 1

	features := make([]ProgressableFeature, len(mp.Features))
	for i, f := range mp.Features {
		features[i] = ProgressableFeature{Progress: positiveModulo(f.Progress-cuttingPoint, 1), Feature: f.Feature}
	}
	sort.Slice(features, func(i, j int) bool { return features[i].Progress < features[j].Progress })

	return MeasuredPolygon{Measurer: mp.Measurer, Features: features, Cubics: shifted}
}

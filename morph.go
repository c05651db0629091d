package shapes

// cubicPair is one matched (start-shape cubic, end-shape cubic) alignment
// entry, interpolated componentwise at query time.
type cubicPair struct {
	A, B Cubic
}

// Morph precomputes the alignment between two outlines so that a scalar
// progress ∈ [0,1] can cheaply be turned into an intermediate outline.
// A Morph is immutable once constructed; neither of the source polygons is
// retained.
type Morph struct {
	morphMatch []cubicPair
}

// NewMorph builds a Morph between start and end using the default
// [LengthMeasurer].
func NewMorph(start, end RoundedPolygon) Morph {
	return NewMorphWithMeasurer(start, end, LengthMeasurer{})
}

// NewMorphWithMeasurer builds a Morph using a caller-supplied [Measurer].
func NewMorphWithMeasurer(start, end RoundedPolygon, measurer Measurer) Morph {
	measured1 := MeasurePolygon(measurer, start)
	measured2 := MeasurePolygon(measurer, end)

	mapper := featureMapper(measured1.Features, measured2.Features)
	cut := mapper.Map(0)

	bs1 := measured1
	bs2 := measured2.CutAndShift(cut)

	return Morph{morphMatch: alignCubics(bs1, bs2, mapper, cut)}
}

// alignCubics advances two cursors through bs1.Cubics and bs2.Cubics,
// splitting whichever side is ahead so that both sides expose a boundary at
// every progress value either side needs, yielding two cubic lists of equal
// length with matching parameter ranges.
func alignCubics(bs1, bs2 MeasuredPolygon, mapper DoubleMapper, cut float64) []cubicPair {
	n1, n2 := len(bs1.Cubics), len(bs2.Cubics)
	if n1 == 0 || n2 == 0 {
		return nil
	}

	i1, i2 := 0, 0
	curr1 := bs1.Cubics[0]
	curr2 := bs2.Cubics[0]

	var pairs []cubicPair
	for {
		a1 := 1.0
		if i1 < n1-1 {
			a1 = curr1.EndOutlineProgress
		}
		a2 := 1.0
		if i2 < n2-1 {
			a2 = mapper.MapBack(positiveModulo(curr2.EndOutlineProgress+cut, 1))
		}
		m := min(a1, a2)

		var segA, segB Cubic
		if a1 > m+AngleEpsilon {
			front, back := curr1.cutAtProgress(m)
			segA = front.Cubic
			curr1 = back
		} else {
			segA = curr1.Cubic
			i1++
			if i1 < n1 {
				curr1 = bs1.Cubics[i1]
			}
		}

		if a2 > m+AngleEpsilon {
			cutPoint := positiveModulo(mapper.Map(m)-cut, 1)
			front, back := curr2.cutAtProgress(cutPoint)
			segB = front.Cubic
			curr2 = back
		} else {
			segB = curr2.Cubic
			i2++
			if i2 < n2 {
				curr2 = bs2.Cubics[i2]
			}
		}

		pairs = append(pairs, cubicPair{A: segA, B: segB})

		if i1 >= n1 && i2 >= n2 {
			break
		}
		if i1 >= n1 || i2 >= n2 {
			// One side exhausted before the other due to an accumulation of
			// floating-point slack; stop rather than loop forever on a
			// corrupt alignment.
			break
		}
	}
	return pairs
}

// AsCubics returns the list of cubics making up the outline at the given
// progress ∈ [0,1]. The returned slice always has length |morphMatch|: the
// final entry takes the place of the last interpolated cubic, reusing its
// anchor0, control0, and control1 but replacing its anchor1 with the first
// interpolated cubic's anchor0, so the rendered outline closes on the seam
// exactly rather than drifting by whatever slack the interpolation between
// two differently-measured outlines accumulated.
func (m Morph) AsCubics(progress float64) []Cubic {
	if len(m.morphMatch) == 0 {
		return nil
	}
	out := make([]Cubic, len(m.morphMatch))
	for i, pair := range m.morphMatch {
		out[i] = pair.A.Interpolate(pair.B, progress)
	}
	last := out[len(m.morphMatch)-1]
	first := out[0]
	out[len(out)-1] = Cubic{
		Anchor0X: last.Anchor0X, Anchor0Y: last.Anchor0Y,
		Control0X: last.Control0X, Control0Y: last.Control0Y,
		Control1X: last.Control1X, Control1Y: last.Control1Y,
		Anchor1X: first.Anchor0X, Anchor1Y: first.Anchor0Y,
	}
	return out
}

// ForEachCubic is the allocation-free counterpart to AsCubics: it mutates
// the caller-owned scratch cubic and invokes callback once per emitted
// cubic, in the same order AsCubics would return them. scratch is not
// thread-safe; the caller must not share it across goroutines or retain a
// pointer to it past the callback call it was passed to.
func (m Morph) ForEachCubic(progress float64, scratch *Cubic, callback func(*Cubic)) {
	n := len(m.morphMatch)
	if n == 0 {
		return
	}
	var first, prev Cubic
	for i, pair := range m.morphMatch {
		cur := pair.A.Interpolate(pair.B, progress)
		if i == 0 {
			first = cur
		} else {
			*scratch = prev
			callback(scratch)
		}
		prev = cur
	}

	*scratch = Cubic{
		Anchor0X: prev.Anchor0X, Anchor0Y: prev.Anchor0Y,
		Control0X: prev.Control0X, Control0Y: prev.Control0Y,
		Control1X: prev.Control1X, Control1Y: prev.Control1Y,
		Anchor1X: first.Anchor0X, Anchor1Y: first.Anchor0Y,
	}
	callback(scratch)
}

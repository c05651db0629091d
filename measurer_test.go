package shapes

import "testing"

func TestLengthMeasurerStraightLine(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(10, 0))
	m := LengthMeasurer{}
	if l := m.MeasureCubic(c); l < 9.999 || l > 10.001 {
		t.Errorf("got length %v, want ~10", l)
	}
}

func TestLengthMeasurerFindCubicCutPointMonotone(t *testing.T) {
	c := NewCubic(Pt(0, 0), Pt(1, 5), Pt(2, -5), Pt(3, 0))
	m := LengthMeasurer{}
	total := m.MeasureCubic(c)
	prev := -1.0
	const n = 20
	for i := 0; i <= n; i++ {
		measure := total * float64(i) / n
		tt := m.FindCubicCutPoint(c, measure)
		if tt < prev-1e-9 {
			t.Fatalf("FindCubicCutPoint not monotone: t=%v after prev=%v", tt, prev)
		}
		prev = tt
	}
}

func TestLengthMeasurerFindCubicCutPointEndpoints(t *testing.T) {
	c := StraightLine(Pt(0, 0), Pt(10, 0))
	m := LengthMeasurer{}
	if tt := m.FindCubicCutPoint(c, 0); tt != 0 {
		t.Errorf("got t=%v at measure 0, want 0", tt)
	}
	total := m.MeasureCubic(c)
	if tt := m.FindCubicCutPoint(c, total); tt < 0.999 {
		t.Errorf("got t=%v at full measure, want ~1", tt)
	}
}

func TestMeasurePolygonCoversFullRange(t *testing.T) {
	p := NewRegularPolygon(6, 100, 0, 0, WithRounding(CornerRounding{Radius: 10}))
	mp := MeasurePolygon(LengthMeasurer{}, p)
	if len(mp.Cubics) == 0 {
		t.Fatal("expected non-empty measured cubic list")
	}
	if mp.Cubics[0].StartOutlineProgress != 0 {
		t.Errorf("got start %v, want 0", mp.Cubics[0].StartOutlineProgress)
	}
	if last := mp.Cubics[len(mp.Cubics)-1].EndOutlineProgress; last != 1 {
		t.Errorf("got end %v, want 1", last)
	}
	for i := 1; i < len(mp.Cubics); i++ {
		if mp.Cubics[i].StartOutlineProgress != mp.Cubics[i-1].EndOutlineProgress {
			t.Errorf("progress discontinuity at %d: %v != %v", i, mp.Cubics[i].StartOutlineProgress, mp.Cubics[i-1].EndOutlineProgress)
		}
	}
}

func TestMeasurePolygonFeatureCount(t *testing.T) {
	p := NewRegularPolygon(6, 100, 0, 0, WithRounding(CornerRounding{Radius: 10}))
	mp := MeasurePolygon(LengthMeasurer{}, p)
	if len(mp.Features) != 6 {
		t.Errorf("got %d corner features, want 6", len(mp.Features))
	}
	for _, f := range mp.Features {
		if f.Progress < 0 || f.Progress >= 1 {
			t.Errorf("feature progress %v out of [0,1)", f.Progress)
		}
	}
}

func TestCutAndShiftRotatesStart(t *testing.T) {
	p := NewRegularPolygon(6, 100, 0, 0, WithRounding(CornerRounding{Radius: 10}))
	mp := MeasurePolygon(LengthMeasurer{}, p)
	cut := 0.3
	shifted := mp.CutAndShift(cut)

	if shifted.Cubics[0].StartOutlineProgress != 0 {
		t.Errorf("got start %v, want 0", shifted.Cubics[0].StartOutlineProgress)
	}
	if last := shifted.Cubics[len(shifted.Cubics)-1].EndOutlineProgress; last != 1 {
		t.Errorf("got end %v, want 1", last)
	}
	for i := 1; i < len(shifted.Cubics); i++ {
		if d := shifted.Cubics[i-1].Cubic.Anchor1().Distance(shifted.Cubics[i].Cubic.Anchor0()); d > DistanceEpsilon {
			t.Errorf("shifted outline discontinuous at %d: d=%v", i, d)
		}
	}
}

func TestCutAndShiftNearZeroIsNoop(t *testing.T) {
	p := NewRegularPolygon(6, 100, 0, 0, WithRounding(CornerRounding{Radius: 10}))
	mp := MeasurePolygon(LengthMeasurer{}, p)
	shifted := mp.CutAndShift(0)
	diff(t, shifted, mp)
}

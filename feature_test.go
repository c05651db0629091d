package shapes

import "testing"

func TestFeatureIsCorner(t *testing.T) {
	e := EdgeFeature([]Cubic{StraightLine(Pt(0, 0), Pt(1, 0))})
	c := CornerFeature([]Cubic{StraightLine(Pt(0, 0), Pt(0, 0))}, true)
	if e.IsCorner() {
		t.Error("edge feature reported as corner")
	}
	if !c.IsCorner() {
		t.Error("corner feature not reported as corner")
	}
}

func TestFeatureRepresentativePoint(t *testing.T) {
	f := EdgeFeature([]Cubic{
		StraightLine(Pt(0, 0), Pt(5, 0)),
		StraightLine(Pt(5, 0), Pt(10, 0)),
	})
	diff(t, f.representativePoint(), Pt(5, 0))
}

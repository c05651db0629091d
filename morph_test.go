package shapes

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// S1: identity morph.
func TestMorphIdentity(t *testing.T) {
	p := NewRegularPolygon(6, 250, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	m := NewMorph(p, p)

	for _, progress := range []float64{0, 0.25, 0.5, 0.75, 1} {
		cubics := m.AsCubics(progress)
		if len(cubics) == 0 {
			t.Fatalf("progress=%v: empty cubic list", progress)
		}
		for _, c := range cubics {
			closest := 1e18
			for _, pc := range p.Cubics {
				if d := c.Anchor0().Distance(pc.Anchor0()); d < closest {
					closest = d
				}
			}
			if closest > 1e-4 {
				t.Errorf("progress=%v: anchor %s not near any source anchor (closest=%v)", progress, c.Anchor0(), closest)
			}
		}
	}
}

func TestMorphSameLengthAcrossProgress(t *testing.T) {
	p := NewRegularPolygon(6, 250, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	q := NewStar(6, 250, 125, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	m := NewMorph(p, q)

	n := len(m.AsCubics(0))
	for _, progress := range []float64{0, 0.1, 0.37, 0.5, 0.9, 1} {
		if got := len(m.AsCubics(progress)); got != n {
			t.Errorf("progress=%v: got %d cubics, want %d", progress, got, n)
		}
	}
}

func TestMorphContinuity(t *testing.T) {
	p := NewRegularPolygon(6, 250, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	q := NewStar(6, 250, 125, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	m := NewMorph(p, q)

	for _, progress := range []float64{0, 0.3, 0.5, 0.8, 1} {
		cubics := m.AsCubics(progress)
		for i := range cubics {
			next := cubics[(i+1)%len(cubics)]
			if d := cubics[i].Anchor1().Distance(next.Anchor0()); d > DistanceEpsilon {
				t.Errorf("progress=%v: discontinuity at %d: d=%v", progress, i, d)
			}
		}
	}
}

// S2: hexagon -> star.
func TestMorphHexagonToStar(t *testing.T) {
	p := NewRegularPolygon(6, 250, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	q := NewStar(6, 250, 125, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	m := NewMorph(p, q)

	n0 := len(m.AsCubics(0))
	for _, progress := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := len(m.AsCubics(progress)); got != n0 {
			t.Errorf("progress=%v: got %d cubics, want %d", progress, got, n0)
		}
	}
}

// S4: square -> rounded square.
func TestMorphSquareToRoundedSquare(t *testing.T) {
	square := NewRoundedRectangle(200, 200, 0, 0)
	rounded := NewRoundedRectangle(200, 200, 0, 0, WithRounding(CornerRounding{Radius: 50}))
	m := NewMorph(square, rounded)

	half := m.AsCubics(0.5)
	for _, c := range half {
		if c.Anchor0().IsNaN() {
			t.Fatalf("NaN anchor at progress=0.5")
		}
	}
}

func TestMorphForEachCubicMatchesAsCubics(t *testing.T) {
	p := NewRegularPolygon(6, 250, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	q := NewStar(6, 250, 125, 400, 400, WithRounding(CornerRounding{Radius: 20}))
	m := NewMorph(p, q)

	for _, progress := range []float64{0, 0.33, 0.5, 0.77, 1} {
		want := m.AsCubics(progress)
		var got []Cubic
		var scratch Cubic
		m.ForEachCubic(progress, &scratch, func(c *Cubic) {
			got = append(got, *c)
		})
		diff(t, got, want, cmpopts.EquateApprox(0, 1e-9))
	}
}

func TestMorphAsCubicsClosesSeam(t *testing.T) {
	p := NewRegularPolygon(5, 100, 0, 0)
	q := NewStar(5, 100, 50, 0, 0)
	m := NewMorph(p, q)

	for _, progress := range []float64{0, 0.5, 1} {
		cubics := m.AsCubics(progress)
		last := cubics[len(cubics)-1]
		first := cubics[0]
		diff(t, last.Anchor1(), first.Anchor0(), cmpopts.EquateApprox(0, 1e-9))
	}
}

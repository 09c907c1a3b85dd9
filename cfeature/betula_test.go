// cfeature/betula_test.go
package cfeature

import (
	"math/rand"
	"testing"

	"birch/point"

	"github.com/stretchr/testify/assert"
)

func TestBetulaCFMonoid(t *testing.T) {
	runMonoidChecks[BetulaCF](t, "betula")
}

func TestBetulaCFDist2UsesCenter(t *testing.T) {
	// Unlike BirchCF, Betula's dist2 is defined against the running mean,
	// so dist2 to the true center is always exactly zero.
	var cf BetulaCF
	cf = cf.AddPoint(point.New(0, 0))
	cf = cf.AddPoint(point.New(2, 0))
	center := cf.Center()
	assert.Equal(t, point.New(1, 0), center)
	assert.Equal(t, 0.0, cf.Dist2Point(center))
}

// TestBetulaCFAlgebraSplitEquivalence is property P7: for random splits
// A ∪ B of a point set, CF(A) + CF(B) has the same center and diam2 as
// CF(A ∪ B), within a small relative tolerance.
func TestBetulaCFAlgebraSplitEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		n := 4 + rng.Intn(20)
		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = point.New(rng.NormFloat64()*10, rng.NormFloat64()*10, rng.NormFloat64()*10)
		}

		var whole, a, b BetulaCF
		for _, p := range pts {
			whole = whole.AddPoint(p)
			if rng.Intn(2) == 0 {
				a = a.AddPoint(p)
			} else {
				b = b.AddPoint(p)
			}
		}
		merged := a.Add(b)

		assert.Equal(t, whole.Size(), merged.Size())
		for i := 0; i < 3; i++ {
			w, m := whole.Center().At(i), merged.Center().At(i)
			assert.InDelta(t, w, m, 1e-9*scale(w))
		}
		assert.InDelta(t, whole.Diam2(), merged.Diam2(), 1e-9*scale(whole.Diam2()))
	}
}

// scale returns a magnitude-aware tolerance multiplier so the delta check
// degrades gracefully to an absolute comparison near zero, where a
// relative-only tolerance is ill-defined.
func scale(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x < 1 {
		return 1
	}
	return x
}

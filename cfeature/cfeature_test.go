// cfeature/cfeature_test.go
package cfeature

import (
	"testing"

	"birch/point"

	"github.com/stretchr/testify/assert"
)

// runMonoidChecks exercises the properties every CFeature variant must
// satisfy (spec §4.2): zero identity, center correctness against a naive
// mean, and diam2 degeneracy for singletons and repeated identical
// points. It is invoked from both birch_test.go and betula_test.go so the
// two variants are held to the same contract without duplicating the
// assertions.
func runMonoidChecks[CF CFeature[CF]](t *testing.T, label string) {
	t.Helper()

	pts := []point.Point{
		point.New(1, 2, 3),
		point.New(2, 2, 3),
		point.New(1, 3, 3),
		point.New(1, 2, 4),
	}

	t.Run(label+"/zero_identity", func(t *testing.T) {
		var zero CF
		cf := From[CF](pts[0])
		assert.Equal(t, cf, zero.Add(cf), "zero + cf must equal cf")
		assert.Equal(t, cf, cf.Add(zero), "cf + zero must equal cf")
	})

	t.Run(label+"/singleton_diam2_zero", func(t *testing.T) {
		for _, p := range pts {
			cf := From[CF](p)
			assert.Equal(t, 0.0, cf.Diam2(), "singleton diam2 must be exactly 0")
		}
	})

	t.Run(label+"/identical_points_diam2_zero", func(t *testing.T) {
		var acc CF
		p := point.New(5, 5, 5)
		for i := 0; i < 7; i++ {
			acc = acc.AddPoint(p)
		}
		assert.Equal(t, 0.0, acc.Diam2(), "diam2 after absorbing k identical points must be exactly 0")
		assert.Equal(t, 7.0, acc.Size())
	})

	t.Run(label+"/center_matches_naive_mean", func(t *testing.T) {
		var acc CF
		for _, p := range pts {
			acc = acc.AddPoint(p)
		}
		naive := point.Zero(3)
		for _, p := range pts {
			naive = naive.Add(p)
		}
		naive = naive.DivScalar(float64(len(pts)))

		center := acc.Center()
		for i := 0; i < 3; i++ {
			assert.InDelta(t, naive.At(i), center.At(i), 1e-9*max1(naive.At(i)))
		}
	})

	t.Run(label+"/size_conservation", func(t *testing.T) {
		var acc CF
		for i, p := range pts {
			acc = acc.AddPoint(p)
			assert.Equal(t, float64(i+1), acc.Size())
		}
	})
}

func max1(x float64) float64 {
	if x < 0 {
		x = -x
	}
	if x < 1 {
		return 1
	}
	return x
}

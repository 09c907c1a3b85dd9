// cfeature/birch.go
package cfeature

import "birch/point"

// BirchCF is the classical cluster feature triple (LS, SS, N):
//
//	LS = sum of points
//	SS = sum of squared norms of points
//	N  = point count
//
// Its zero value (LS the zero Point, SS 0, N 0) is the empty summary.
//
// Dist2 and Dist2Point are computed directly on the LS vectors rather
// than on the derived centers. This is unusual — most CF formulations
// compare centers — but it is the behavior this variant documents and
// preserves; see BetulaCF, whose Dist2 and Dist2Point compare centers,
// for the more conventional alternative.
type BirchCF struct {
	LS point.Point
	SS float64
	N  int
}

// Add returns the elementwise combination of two BirchCF summaries.
func (cf BirchCF) Add(o BirchCF) BirchCF {
	if cf.N == 0 {
		return o
	}
	if o.N == 0 {
		return cf
	}
	return BirchCF{
		LS: cf.LS.Add(o.LS),
		SS: cf.SS + o.SS,
		N:  cf.N + o.N,
	}
}

// AddPoint returns a new BirchCF summarizing cf plus p.
func (cf BirchCF) AddPoint(p point.Point) BirchCF {
	if cf.N == 0 {
		return BirchCF{LS: p, SS: p.Norm2(), N: 1}
	}
	return BirchCF{
		LS: cf.LS.Add(p),
		SS: cf.SS + p.Norm2(),
		N:  cf.N + 1,
	}
}

// Size returns the point count.
func (cf BirchCF) Size() float64 { return float64(cf.N) }

// Center returns LS / N, the statistical centroid.
func (cf BirchCF) Center() point.Point {
	return cf.LS.DivScalar(float64(cf.N))
}

// Diam2 returns (2*N*SS - 2*||LS||^2) / (N*(N-1)) for N >= 2, and 0 for
// N < 2 (the denominator is taken to be 1 in that case, matching the
// source formula; a singleton or empty CF always yields 0).
func (cf BirchCF) Diam2() float64 {
	numerator := 2*float64(cf.N)*cf.SS - 2*cf.LS.Norm2()
	denominator := 1.0
	if cf.N >= 2 {
		denominator = float64(cf.N * (cf.N - 1))
	}
	return numerator / denominator
}

// Dist2Point returns the squared distance between LS and p. Note this is
// NOT the distance from the center to p; see the type doc comment.
func (cf BirchCF) Dist2Point(p point.Point) float64 {
	return cf.LS.Sub(p).Norm2()
}

// Dist2 returns the squared distance between the two CFs' LS vectors.
func (cf BirchCF) Dist2(o BirchCF) float64 {
	return cf.LS.Sub(o.LS).Norm2()
}

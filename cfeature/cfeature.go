// cfeature/cfeature.go
//
// Package cfeature defines the cluster feature (CF) algebra: a bounded-size
// summary of a multiset of points that can be merged with another CF or a
// single point, and from which a center and a dispersion measure can be
// derived in constant time.
//
// Two variants satisfy the same contract: BirchCF (the classical
// linear-sum / sum-of-squares statistic) and BetulaCF (a numerically
// stable Welford-style running mean and dispersion). Both are expressed
// against the CFeature interface below via Go's generics rather than a
// shared base type, since the two variants have incompatible internal
// representations and neither can be merged with the other.
package cfeature

import "birch/point"

// CFeature is the capability set every cluster feature variant provides.
// Self is the concrete implementing type: Add and Dist2 only ever combine
// or compare two CFs of the same variant, mirroring the "same concrete
// type" constraint the source expresses via a Rust trait with an
// associated Self type.
//
// The zero value of any CFeature implementation MUST be the empty
// summary (size 0) and MUST behave as the additive identity: zero.Add(cf)
// and cf.Add(zero) must both equal cf.
type CFeature[Self any] interface {
	// Add returns a new CF summarizing the union of the receiver and o.
	Add(o Self) Self
	// AddPoint returns a new CF summarizing the receiver plus p.
	AddPoint(p point.Point) Self
	// Size returns the number of points summarized (possibly fractional
	// for a weighted variant, though none of the variants here weight).
	Size() float64
	// Center returns the statistical centroid of the summarized points.
	Center() point.Point
	// Diam2 returns the squared diameter: a variant-specific dispersion
	// measure, not the geometric diameter.
	Diam2() float64
	// Dist2Point returns the squared distance used for nearest-cluster
	// selection against a candidate point.
	Dist2Point(p point.Point) float64
	// Dist2 returns the squared distance used for nearest-cluster
	// selection against another CF of the same variant.
	Dist2(o Self) float64
}

// From builds a singleton CF summarizing exactly one point, by adding p
// to the variant's zero value.
func From[CF CFeature[CF]](p point.Point) CF {
	var zero CF
	return zero.AddPoint(p)
}

// Sum folds Add over every feature, starting from the variant's zero
// value. An empty slice yields the zero value itself.
func Sum[CF CFeature[CF]](features []CF) CF {
	var acc CF
	for _, f := range features {
		acc = acc.Add(f)
	}
	return acc
}

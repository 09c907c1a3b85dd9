// cfeature/betula.go
package cfeature

import "birch/point"

// BetulaCF is a numerically stable cluster feature, storing a running
// weighted count, a Welford-style running mean Mu, and the weighted sum
// of squared deviations from the mean S. Unlike BirchCF it never
// accumulates sums of squared norms, which avoids the catastrophic
// cancellation BirchCF's diam2 formula is prone to for large, tightly
// clustered point sets.
//
// Its zero value (N 0, Mu and S the zero Point) is the empty summary.
type BetulaCF struct {
	N  float64
	Mu point.Point
	S  point.Point
}

// Add combines two BetulaCF summaries using the Welford parallel merge
// formula:
//
//	n  = n1 + n2
//	mu = mu1 + (n2/n)*(mu2 - mu1)
//	S  = S1 + S2 + n2*(mu1 - mu2)*(mu - mu2)   (componentwise product)
func (cf BetulaCF) Add(o BetulaCF) BetulaCF {
	if cf.N == 0 {
		return o
	}
	if o.N == 0 {
		return cf
	}
	n := cf.N + o.N
	mu := cf.Mu.Add(o.Mu.Sub(cf.Mu).MulScalar(o.N / n))
	s := cf.S.Add(o.S).Add(cf.Mu.Sub(o.Mu).Mul(mu.Sub(o.Mu)).MulScalar(o.N))
	return BetulaCF{N: n, Mu: mu, S: s}
}

// AddPoint returns a new BetulaCF summarizing cf plus p, by treating p as
// a singleton CF and merging it in.
func (cf BetulaCF) AddPoint(p point.Point) BetulaCF {
	if cf.N == 0 {
		return BetulaCF{N: 1, Mu: p, S: point.Zero(p.Dimension())}
	}
	return cf.Add(BetulaCF{N: 1, Mu: p, S: point.Zero(p.Dimension())})
}

// Size returns the (possibly fractional) weighted count.
func (cf BetulaCF) Size() float64 { return cf.N }

// Center returns the running mean Mu.
func (cf BetulaCF) Center() point.Point { return cf.Mu }

// Diam2 returns 2*||S||^2 / N.
func (cf BetulaCF) Diam2() float64 {
	return 2 * cf.S.Norm2() / cf.N
}

// Dist2Point returns the squared distance between the mean and p.
func (cf BetulaCF) Dist2Point(p point.Point) float64 {
	return cf.Mu.Sub(p).Norm2()
}

// Dist2 returns the squared distance between the two CFs' means.
func (cf BetulaCF) Dist2(o BetulaCF) float64 {
	return cf.Mu.Sub(o.Mu).Norm2()
}

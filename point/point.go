// point/point.go
//
// Package point implements a fixed-dimension real-valued vector with
// elementwise arithmetic, the basic numeric building block the cluster
// feature algebra is built on top of.
package point

import (
	"fmt"
	"math"
)

// Point is a fixed-dimension vector of 64-bit floats. Its dimension is
// fixed at construction time and every binary operation requires both
// operands to share it. The zero value is a Point of dimension 0; a binary
// operation between it and a Point of any other dimension panics.
type Point struct {
	data []float64
}

// New copies vals into a new Point.
func New(vals ...float64) Point {
	return NewFromSlice(vals)
}

// NewFromSlice copies vals into a new Point.
func NewFromSlice(vals []float64) Point {
	data := make([]float64, len(vals))
	copy(data, vals)
	return Point{data: data}
}

// Zero returns the all-zeros Point of the given dimension.
func Zero(dim int) Point {
	return Point{data: make([]float64, dim)}
}

// Dimension returns the number of components in p.
func (p Point) Dimension() int {
	return len(p.data)
}

// At returns the i-th component of p.
func (p Point) At(i int) float64 {
	return p.data[i]
}

// Slice returns a copy of p's underlying components.
func (p Point) Slice() []float64 {
	out := make([]float64, len(p.data))
	copy(out, p.data)
	return out
}

// IsZero reports whether every component of p is zero (or p has no
// components at all).
func (p Point) IsZero() bool {
	for _, v := range p.data {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports elementwise equality. Points of different dimension are
// never equal.
func (p Point) Equal(o Point) bool {
	if len(p.data) != len(o.data) {
		return false
	}
	for i, v := range p.data {
		if v != o.data[i] {
			return false
		}
	}
	return true
}

func requireSameDim(a, b Point) {
	if len(a.data) != len(b.data) {
		panic(fmt.Sprintf("point: dimension mismatch (%d vs %d)", len(a.data), len(b.data)))
	}
}

func elementwise(a, b Point, op func(x, y float64) float64) Point {
	requireSameDim(a, b)
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = op(a.data[i], b.data[i])
	}
	return Point{data: out}
}

func broadcast(a Point, s float64, op func(x, y float64) float64) Point {
	out := make([]float64, len(a.data))
	for i := range out {
		out[i] = op(a.data[i], s)
	}
	return Point{data: out}
}

// Add returns the elementwise sum of p and o.
func (p Point) Add(o Point) Point { return elementwise(p, o, func(x, y float64) float64 { return x + y }) }

// Sub returns the elementwise difference p - o.
func (p Point) Sub(o Point) Point { return elementwise(p, o, func(x, y float64) float64 { return x - y }) }

// Mul returns the elementwise (Hadamard) product p * o.
func (p Point) Mul(o Point) Point { return elementwise(p, o, func(x, y float64) float64 { return x * y }) }

// Div returns the elementwise quotient p / o.
func (p Point) Div(o Point) Point { return elementwise(p, o, func(x, y float64) float64 { return x / y }) }

// Mod returns the elementwise remainder of p / o.
func (p Point) Mod(o Point) Point {
	return elementwise(p, o, math.Mod)
}

// AddScalar adds s to every component of p.
func (p Point) AddScalar(s float64) Point { return broadcast(p, s, func(x, y float64) float64 { return x + y }) }

// SubScalar subtracts s from every component of p.
func (p Point) SubScalar(s float64) Point { return broadcast(p, s, func(x, y float64) float64 { return x - y }) }

// MulScalar multiplies every component of p by s.
func (p Point) MulScalar(s float64) Point { return broadcast(p, s, func(x, y float64) float64 { return x * y }) }

// DivScalar divides every component of p by s.
func (p Point) DivScalar(s float64) Point { return broadcast(p, s, func(x, y float64) float64 { return x / y }) }

// Neg returns the elementwise negation of p.
func (p Point) Neg() Point {
	out := make([]float64, len(p.data))
	for i, v := range p.data {
		out[i] = -v
	}
	return Point{data: out}
}

// Norm2 returns the squared Euclidean norm (sum of squared components).
func (p Point) Norm2() float64 {
	var sum float64
	for _, v := range p.data {
		sum += v * v
	}
	return sum
}

// AddAssign adds o to p in place.
func (p *Point) AddAssign(o Point) { *p = p.Add(o) }

// SubAssign subtracts o from p in place.
func (p *Point) SubAssign(o Point) { *p = p.Sub(o) }

// MulAssign multiplies p by o in place.
func (p *Point) MulAssign(o Point) { *p = p.Mul(o) }

// DivAssign divides p by o in place.
func (p *Point) DivAssign(o Point) { *p = p.Div(o) }

// String renders p's components as a bracketed, space-separated list
// (e.g. "[1 2 3]"), useful for debugging and test failure messages.
func (p Point) String() string {
	return fmt.Sprintf("%v", p.data)
}

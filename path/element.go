package path

import (
	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
)

// Estimator selects how segment coefficients are computed.
//
// Samples is the quadrature sample count. Analytic selects the closed form
// for straight lines; curves always use quadrature.
type Estimator struct {
	Samples  int
	Analytic bool
}

// DefaultEstimator uses quadrature with fourier.DefaultSamples samples.
func DefaultEstimator() Estimator {
	return Estimator{Samples: fourier.DefaultSamples}
}

// Element is a segment of a path, parametrized over t ∈ [0,1].
//
// Elements are either Line or CubicBezier.
type Element interface {
	Eval(t float64) epicycles.Pair
	Coefficient(n float64, est Estimator) complex128
	Start() epicycles.Pair
	End() epicycles.Pair
}

var _ Element = Line{}
var _ Element = CubicBezier{}

// Line is a straight segment from Z0 to Z1.
type Line struct {
	Z0, Z1 epicycles.Pair
}

// Eval interpolates linearly between the end points.
func (l Line) Eval(t float64) epicycles.Pair {
	return l.Z0.Lerp(l.Z1, t)
}

// Coefficient returns the n-th Fourier coefficient of the line over its
// parameter range.
func (l Line) Coefficient(n float64, est Estimator) complex128 {
	if est.Analytic {
		return fourier.LineCoefficient(l.Z0.C(), l.Z1.C(), n)
	}
	return fourier.Coefficient(func(t float64) complex128 {
		return l.Eval(t).C()
	}, n, est.Samples)
}

func (l Line) Start() epicycles.Pair { return l.Z0 }
func (l Line) End() epicycles.Pair   { return l.Z1 }

// CubicBezier is a cubic Bézier segment with end points Z0, Z3 and
// control points Z1, Z2.
type CubicBezier struct {
	Z0, Z1, Z2, Z3 epicycles.Pair
}

// Eval evaluates the curve by de Casteljau's algorithm.
func (c CubicBezier) Eval(t float64) epicycles.Pair {
	l1 := c.Z0.Lerp(c.Z1, t)
	l2 := c.Z1.Lerp(c.Z2, t)
	l3 := c.Z2.Lerp(c.Z3, t)
	q1 := l1.Lerp(l2, t)
	q2 := l2.Lerp(l3, t)
	return q1.Lerp(q2, t)
}

// Coefficient returns the n-th Fourier coefficient of the curve, estimated
// by quadrature.
func (c CubicBezier) Coefficient(n float64, est Estimator) complex128 {
	return fourier.Coefficient(func(t float64) complex128 {
		return c.Eval(t).C()
	}, n, est.Samples)
}

func (c CubicBezier) Start() epicycles.Pair { return c.Z0 }
func (c CubicBezier) End() epicycles.Pair   { return c.Z3 }

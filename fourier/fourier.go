// Package fourier estimates Fourier coefficients of periodic complex-valued
// functions of normalized time.
/*
A function f is sampled on its period [0,1). The n-th coefficient is

	c(n) = ∫₀¹ f(t) e^(-i2πnt) dt

which this package approximates by a fixed-sample Riemann sum. For straight
line segments a closed form is available. Coefficients of a curve made of
several equal-share segments are composed from the segments' local spectra
by the shift theorem.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package fourier

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fourier'
func tracer() tracing.Trace {
	return tracing.Select("fourier")
}

const (
	// DefaultSamples is the default sample count for quadrature.
	DefaultSamples = 100
	// CoarseSamples is a cheaper sample count, sufficient for small spectra.
	CoarseSamples = 40
)

// ErrSampleCount indicates a non-positive quadrature sample count.
var ErrSampleCount = errors.New("sample count must be positive")

// ValidateSamples checks a quadrature sample count.
func ValidateSamples(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%w, got %d", ErrSampleCount, samples)
	}
	return nil
}

// Coefficient estimates the n-th Fourier coefficient of f by sampling f at
// samples evenly spaced points in [0,1).
//
// The estimate aliases once |n| approaches samples/2. Callers have to check
// samples with ValidateSamples; a non-positive count yields 0.
func Coefficient(f func(t float64) complex128, n float64, samples int) complex128 {
	if samples <= 0 {
		return 0
	}
	dt := 1 / float64(samples)
	var sum complex128
	for s := 0; s < samples; s++ {
		t := float64(s) * dt
		sum += f(t) * cmplx.Exp(complex(0, -2*math.Pi*n*t)) * complex(dt, 0)
	}
	return sum
}

// LineCoefficient is the exact n-th Fourier coefficient of the linear ramp
// from z0 (t=0) to z1 (t=1).
//
// For integral n this is the midpoint (n=0) or i(z1−z0)/(2πn). Segments of
// a composite path are evaluated at fractional local frequencies, where the
// ramp does not close up and the boundary term z0(1−e^(−iθ))/(iθ) remains.
func LineCoefficient(z0, z1 complex128, n float64) complex128 {
	if n == 0 {
		return (z0 + z1) / 2
	}
	d := z1 - z0
	if n == math.Trunc(n) {
		return 1i * d / complex(2*math.Pi*n, 0)
	}
	a := complex(0, 2*math.Pi*n) // ∫₀¹ g(t) e^(-at) dt
	e := cmplx.Exp(-a)
	return z0*(1-e)/a + d*((1-e)/(a*a)-e/a)
}

// Compose assembles the n-th coefficient of a curve made of k segments,
// each taking an equal share ω = 1/k of the period. local(j, m) has to
// return the m-th coefficient of segment j over its own period [0,1).
//
// Segment j is shifted to [jω, (j+1)ω) and contributes
// ω · e^(−i2πnωj) · local(j, nω).
func Compose(k int, n float64, local func(j int, m float64) complex128) complex128 {
	if k <= 0 {
		tracer().Errorf("cannot compose spectrum of %d segments", k)
		return 0
	}
	omega := 1 / float64(k)
	var sum complex128
	for j := 0; j < k; j++ {
		shift := cmplx.Exp(complex(0, -2*math.Pi*n*omega*float64(j)))
		sum += complex(omega, 0) * shift * local(j, n*omega)
	}
	return sum
}

/*
Package epicycles approximates 2D paths by sums of rotating complex
exponentials and animates the resulting epicycle chains.

This root package holds the small numeric vocabulary shared by the
sub-packages: points in the plane as complex numbers, the unit rotor and
affine transformations. Paths are built in package path, their spectra
live in package phasor and package animation glues both together for
a host which draws frames.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package epicycles

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'epicycles'
func tracer() tracing.Trace {
	return tracing.Select("epicycles")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Rotor returns the unit complex number e^(iθ).
func Rotor(theta float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(c, s)
}

// Polar returns the complex number with magnitude r and angle theta.
// Negative magnitudes are allowed and point into the opposite direction.
func Polar(theta, r float64) complex128 {
	s, c := math.Sincos(theta)
	return complex(c*r, s*r)
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector, represented as a complex number.
// The x-coordinate is the real part.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
// NaN or infinite numbers are mapped to the origin.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for invalid complex %v", c)
		return Origin
	}
	return Pair(c)
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Abs is the distance of p from the origin.
func (p Pair) Abs() float64 {
	return cmplx.Abs(complex128(p))
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// IsValid is false if any coordinate is NaN or infinite.
func (p Pair) IsValid() bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return Pair(p.C() * Rotor(theta))
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p.Scaled(1-t) + q.Scaled(t)
}

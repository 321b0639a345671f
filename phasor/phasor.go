// Package phasor holds sets of rotating complex exponentials and derives the
// epicycle chain they form.
/*
A phasor is a complex coefficient c paired with an integer frequency n. At
time τ it contributes c·e^(−inτ) to the sum; the sum of all phasors, laid
out tip to tail, is the epicycle chain. Array stores only the current
coefficients: every Update bakes the rotation of a time step into them.

Arrays are not safe for concurrent use. A host driving Update from one
goroutine and reading ArmState from another has to serialize these calls.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package phasor

import (
	"errors"
	"fmt"
	"iter"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'phasor'
func tracer() tracing.Trace {
	return tracing.Select("phasor")
}

// ErrPhasorCount indicates a non-positive phasor count.
var ErrPhasorCount = errors.New("phasor count must be positive")

// Frequencies returns the frequencies of an array of count harmonics:
//
//	0, 1, -1, 2, -2, …, count-1, -(count-1)
//
// The order determines the layout of the epicycle chain.
func Frequencies(count int) []int {
	if count <= 0 {
		return nil
	}
	f := make([]int, 0, 2*count-1)
	f = append(f, 0)
	for i := 1; i < count; i++ {
		f = append(f, i, -i)
	}
	return f
}

// Array is a fixed set of phasors.
type Array struct {
	freqs  []int
	coeffs []complex128
}

// New creates an array of 2·count−1 phasors, with the coefficient for
// frequency n given by f(n). f is called once per frequency, in the order
// of Frequencies(count).
func New(count int, f func(n int) complex128) (*Array, error) {
	if count <= 0 {
		tracer().Errorf("cannot create phasor array of %d harmonics", count)
		return nil, fmt.Errorf("%w, got %d", ErrPhasorCount, count)
	}
	a := &Array{freqs: Frequencies(count)}
	a.coeffs = make([]complex128, len(a.freqs))
	for i, n := range a.freqs {
		a.coeffs[i] = f(n)
	}
	return a, nil
}

// MustNew is like New, but panics for non-positive counts.
func MustNew(count int, f func(n int) complex128) *Array {
	a, err := New(count, f)
	if err != nil {
		panic(err)
	}
	return a
}

// Len returns the number of phasors, 2·count−1.
func (a *Array) Len() int {
	return len(a.coeffs)
}

// At returns frequency and current coefficient of phasor i.
func (a *Array) At(i int) (int, complex128) {
	return a.freqs[i], a.coeffs[i]
}

// All iterates over frequency and current coefficient of all phasors, in
// construction order.
func (a *Array) All() iter.Seq2[int, complex128] {
	return func(yield func(int, complex128) bool) {
		for i, c := range a.coeffs {
			if !yield(a.freqs[i], c) {
				return
			}
		}
	}
}

// Coefficients returns a copy of the current coefficients, in construction
// order.
func (a *Array) Coefficients() []complex128 {
	return append([]complex128(nil), a.coeffs...)
}

// Sum returns the sum of all current coefficients, i.e., the tip of the
// epicycle chain relative to its origin.
func (a *Array) Sum() complex128 {
	var s complex128
	for _, c := range a.coeffs {
		s += c
	}
	return s
}

// Update advances time by dt, rotating every coefficient by e^(−i·n·dt).
// A zero step leaves all coefficients untouched. Magnitudes are not
// renormalized, so they may drift over very long runs.
func (a *Array) Update(dt float64) {
	if dt == 0 {
		return
	}
	for i, n := range a.freqs {
		a.coeffs[i] *= cmplx.Exp(complex(0, -float64(n)*dt))
	}
}

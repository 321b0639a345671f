// Package path builds 2D paths of lines and cubic Bézier curves and converts
// them into Fourier spectra.
/*
A path is built with a pen-like builder:

	p := path.New().MoveTo(0, 0).LineTo(2, 0).CurveTo(3, 0, 3, 2, 2, 2).Close()

Every element of a path takes an equal share of the path's period, no
matter how long it is. Spectrum turns a path into a phasor.Array whose
partial sums trace the path.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package path

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/epicycles/phasor"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'path'
func tracer() tracing.Trace {
	return tracing.Select("path")
}

// ErrEmptyPath indicates a path without any elements.
var ErrEmptyPath = errors.New("path has no elements")

// Path is an ordered sequence of path elements. To construct a path, start
// with New() and extend it with the builder methods.
type Path struct {
	elements []Element
	start    epicycles.Pair // pen position of last MoveTo
	current  epicycles.Pair // pen position
}

// New creates an empty path with the pen at the origin.
func New() *Path {
	return &Path{}
}

// MoveTo lifts the pen and puts it down at (x,y). No element is appended.
// Part of builder functionality.
func (path *Path) MoveTo(x, y float64) *Path {
	path.start = epicycles.P(x, y)
	path.current = path.start
	return path
}

// LineTo appends a straight line from the pen position to (x,y).
// Part of builder functionality.
func (path *Path) LineTo(x, y float64) *Path {
	z := epicycles.P(x, y)
	if z.Equal(path.current) {
		tracer().Debugf("degenerate line at %s", z)
	}
	path.elements = append(path.elements, Line{Z0: path.current, Z1: z})
	path.current = z
	return path
}

// CurveTo appends a cubic Bézier curve from the pen position through control
// points (x0,y0) and (x1,y1) to (x,y).
// Part of builder functionality.
func (path *Path) CurveTo(x0, y0, x1, y1, x, y float64) *Path {
	z := epicycles.P(x, y)
	path.elements = append(path.elements, CubicBezier{
		Z0: path.current,
		Z1: epicycles.P(x0, y0),
		Z2: epicycles.P(x1, y1),
		Z3: z,
	})
	path.current = z
	return path
}

// Close appends a line from the pen position back to the start of the
// current sub-path, i.e., the point of the last MoveTo.
// Part of builder functionality.
func (path *Path) Close() *Path {
	path.elements = append(path.elements, Line{Z0: path.current, Z1: path.start})
	path.current = path.start
	return path
}

// Append adds an arbitrary element. The pen moves to the element's end.
func (path *Path) Append(e Element) *Path {
	path.elements = append(path.elements, e)
	path.current = e.End()
	return path
}

// N returns the number of elements.
func (path *Path) N() int {
	return len(path.elements)
}

// IsEmpty is a predicate: has this path no elements?
func (path *Path) IsEmpty() bool {
	return path == nil || len(path.elements) == 0
}

// Element returns element i.
func (path *Path) Element(i int) Element {
	return path.elements[i]
}

// Elements returns a copy of the element list.
func (path *Path) Elements() []Element {
	return append([]Element(nil), path.elements...)
}

// Start returns the start point of the current sub-path.
func (path *Path) Start() epicycles.Pair {
	return path.start
}

// Current returns the pen position.
func (path *Path) Current() epicycles.Pair {
	return path.current
}

// Eval returns the point at global parameter s, with s taken modulo 1.
// Element k covers [k/N, (k+1)/N). Eval on an empty path returns the origin.
func (path *Path) Eval(s float64) epicycles.Pair {
	if path.IsEmpty() {
		return epicycles.Origin
	}
	s -= math.Floor(s)
	u := s * float64(path.N())
	k := min(int(u), path.N()-1)
	return path.elements[k].Eval(u - float64(k))
}

// Coefficient returns the n-th Fourier coefficient of the whole path, where
// the path is traversed once during a period of 1.
func (path *Path) Coefficient(n float64, est Estimator) (complex128, error) {
	if err := path.check(est); err != nil {
		return 0, err
	}
	return path.coefficient(n, est), nil
}

func (path *Path) coefficient(n float64, est Estimator) complex128 {
	return fourier.Compose(path.N(), n, func(k int, m float64) complex128 {
		return path.elements[k].Coefficient(m, est)
	})
}

func (path *Path) check(est Estimator) error {
	if path.IsEmpty() {
		tracer().Errorf("cannot compute spectrum of empty path")
		return ErrEmptyPath
	}
	if est.Analytic && !path.hasCurves() {
		return nil
	}
	return fourier.ValidateSamples(est.Samples)
}

func (path *Path) hasCurves() bool {
	for _, e := range path.elements {
		if _, ok := e.(CubicBezier); ok {
			return true
		}
	}
	return false
}

// Spectrum converts the path into a phasor array of count positive
// harmonics (2·count−1 phasors in total).
func (path *Path) Spectrum(count int, est Estimator) (*phasor.Array, error) {
	if err := path.check(est); err != nil {
		return nil, err
	}
	tracer().Infof("spectrum of %d elements, %d harmonics, %d samples, analytic=%v",
		path.N(), count, est.Samples, est.Analytic)
	return phasor.New(count, func(n int) complex128 {
		return path.coefficient(float64(n), est)
	})
}

// String returns the path in SVG path data notation, with absolute
// coordinates.
func (path *Path) String() string {
	var b strings.Builder
	var pen epicycles.Pair
	for i, e := range path.elements {
		if i == 0 || !e.Start().Equal(pen) {
			fmt.Fprintf(&b, "M%g,%g ", e.Start().X(), e.Start().Y())
		}
		switch e := e.(type) {
		case Line:
			fmt.Fprintf(&b, "L%g,%g ", e.Z1.X(), e.Z1.Y())
		case CubicBezier:
			fmt.Fprintf(&b, "C%g,%g %g,%g %g,%g ", e.Z1.X(), e.Z1.Y(),
				e.Z2.X(), e.Z2.Y(), e.Z3.X(), e.Z3.Y())
		}
		pen = e.End()
	}
	return strings.TrimSpace(b.String())
}

package path

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/npillmayer/epicycles/phasor"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() *Path {
	return New().MoveTo(-1, -1).LineTo(1, -1).LineTo(1, 1).LineTo(-1, 1).Close()
}

// series evaluates the Fourier series of a at global parameter s.
func series(a *phasor.Array, s float64) epicycles.Pair {
	var z complex128
	for n, c := range a.All() {
		z += c * cmplx.Exp(complex(0, 2*math.Pi*float64(n)*s))
	}
	return epicycles.Pair(z)
}

func TestBuilderCursor(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New().MoveTo(1, 2)
	assert.Equal(t, 0, p.N())
	assert.True(t, p.IsEmpty())
	assert.Equal(t, epicycles.P(1, 2), p.Start())
	p.LineTo(3, 4)
	assert.Equal(t, epicycles.P(3, 4), p.Current())
	p.CurveTo(4, 4, 5, 5, 6, 7)
	assert.Equal(t, epicycles.P(6, 7), p.Current())
	assert.Equal(t, epicycles.P(6, 7), p.Element(p.N()-1).End())
	p.Close()
	assert.Equal(t, 3, p.N())
	assert.Equal(t, epicycles.P(1, 2), p.Current())
	assert.Equal(t, Line{Z0: epicycles.P(6, 7), Z1: epicycles.P(1, 2)}, p.Element(2))
	assert.Equal(t, "M1,2 L3,4 C4,4 5,5 6,7 L1,2", p.String())
	assert.Len(t, p.Elements(), 3)
	p.Append(Line{Z0: epicycles.P(1, 2), Z1: epicycles.P(0, 0)})
	assert.Equal(t, epicycles.Origin, p.Current())
	assert.Equal(t, 4, p.N())
}

func TestCubicBezierEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := CubicBezier{epicycles.P(0, 0), epicycles.P(0, 1), epicycles.P(1, 1), epicycles.P(1, 0)}
	assert.Equal(t, c.Z0, c.Eval(0))
	assert.True(t, c.Eval(1).Equal(c.Z3))
	assert.True(t, c.Eval(0.5).Equal(epicycles.P(0.5, 0.75)), "midpoint is %s", c.Eval(0.5))
}

func TestStraightBezierMatchesLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := epicycles.P(-2, 1), epicycles.P(4, 3)
	l := Line{a, b}
	c := CubicBezier{a, a.Lerp(b, 1.0/3.0), a.Lerp(b, 2.0/3.0), b}
	est := DefaultEstimator()
	for n := -3.0; n <= 3; n += 0.5 {
		assert.InDelta(t, 0, cmplx.Abs(l.Coefficient(n, est)-c.Coefficient(n, est)), 1e-12, "n=%g", n)
	}
}

func TestEmptyPathIsRejected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New().MoveTo(3, 3)
	_, err := p.Spectrum(4, DefaultEstimator())
	assert.True(t, errors.Is(err, ErrEmptyPath))
	_, err = p.Coefficient(1, DefaultEstimator())
	assert.True(t, errors.Is(err, ErrEmptyPath))
	var nilpath *Path
	_, err = nilpath.Spectrum(4, DefaultEstimator())
	assert.True(t, errors.Is(err, ErrEmptyPath))
	assert.Equal(t, epicycles.Origin, p.Eval(0.3))
}

func TestInvalidParameters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := square().Spectrum(0, DefaultEstimator())
	assert.True(t, errors.Is(err, phasor.ErrPhasorCount))
	_, err = square().Spectrum(3, Estimator{Samples: 0})
	assert.True(t, errors.Is(err, fourier.ErrSampleCount))
	_, err = square().Spectrum(3, Estimator{Analytic: true})
	assert.NoError(t, err, "lines need no samples in analytic mode")
	curvy := New().CurveTo(1, 0, 1, 1, 0, 1).Close()
	_, err = curvy.Spectrum(3, Estimator{Analytic: true})
	assert.True(t, errors.Is(err, fourier.ErrSampleCount))
}

func TestDegenerateGeometry(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := New().MoveTo(2, 2).LineTo(2, 2)
	for _, est := range []Estimator{DefaultEstimator(), {Analytic: true}} {
		a, err := p.Spectrum(3, est)
		require.NoError(t, err)
		for n, c := range a.All() {
			if n == 0 {
				assert.InDelta(t, 0, cmplx.Abs(c-complex(2, 2)), 1e-12)
			} else {
				assert.InDelta(t, 0, cmplx.Abs(c), 1e-12, "n=%d", n)
			}
		}
	}
}

func TestSingleLineSpectrum(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	l := Line{epicycles.P(0, 0), epicycles.P(3, 1)}
	p := New().MoveTo(0, 0).LineTo(3, 1)
	for _, est := range []Estimator{DefaultEstimator(), {Samples: fourier.CoarseSamples}, {Analytic: true}} {
		a, err := p.Spectrum(5, est)
		require.NoError(t, err)
		direct := phasor.MustNew(5, func(n int) complex128 {
			return l.Coefficient(float64(n), est)
		})
		assert.Equal(t, direct.Coefficients(), a.Coefficients(), "estimator %+v", est)
	}
}

func TestSquareReconstruction(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, est := range []Estimator{DefaultEstimator(), {Analytic: true}} {
		a, err := square().Spectrum(8, est)
		require.NoError(t, err)
		assert.Equal(t, 15, a.Len())
		tip := epicycles.Pair(a.Sum())
		assert.InDelta(t, -1, tip.X(), 0.15, "estimator %+v", est)
		assert.InDelta(t, -1, tip.Y(), 0.15, "estimator %+v", est)
		for _, s := range []float64{0.125, 0.375, 0.625, 0.875} {
			want := square().Eval(s)
			got := series(a, s)
			assert.InDelta(t, 0, (got - want).Abs(), 0.1, "s=%g: %s vs %s", s, got, want)
		}
	}
}

func TestAnalyticAndQuadratureAgree(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	exact, err := square().Spectrum(6, Estimator{Analytic: true})
	require.NoError(t, err)
	approx, err := square().Spectrum(6, Estimator{Samples: 2000})
	require.NoError(t, err)
	e, a := exact.Coefficients(), approx.Coefficients()
	for i := range e {
		assert.InDelta(t, 0, cmplx.Abs(e[i]-a[i]), 2e-3, "phasor %d", i)
	}
}

func TestEval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := square()
	assert.True(t, p.Eval(0).Equal(epicycles.P(-1, -1)))
	assert.True(t, p.Eval(0.125).Equal(epicycles.P(0, -1)))
	assert.True(t, p.Eval(0.5).Equal(epicycles.P(1, 1)))
	assert.True(t, p.Eval(1.25).Equal(epicycles.P(1, -1)), "parameter wraps around")
}

func TestTransformedAndBounds(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	bb := square().Bounds()
	assert.Equal(t, -1.0, bb.Min.X)
	assert.Equal(t, 1.0, bb.Max.Y)
	p := square().Transformed(epicycles.Scaling(2, 3).Combine(epicycles.Translation(epicycles.P(10, 0))))
	bb = p.Bounds()
	assert.InDelta(t, 8, bb.Min.X, 1e-12)
	assert.InDelta(t, 12, bb.Max.X, 1e-12)
	assert.InDelta(t, -3, bb.Min.Y, 1e-12)
	assert.InDelta(t, 3, bb.Max.Y, 1e-12)
	assert.True(t, p.Start().Equal(epicycles.P(8, -3)))
	fit := square().FitInto(epicycles.P(0, 0), epicycles.P(80, 40))
	bb = fit.Bounds()
	assert.InDelta(t, 20, bb.Min.X, 1e-9)
	assert.InDelta(t, 60, bb.Max.X, 1e-9)
	assert.InDelta(t, 0, bb.Min.Y, 1e-9)
	assert.InDelta(t, 40, bb.Max.Y, 1e-9)
}

func TestContour(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := square().Contour(10)
	assert.Len(t, c, 5, "lines contribute one point each, plus the end point")
	curvy := New().CurveTo(1, 0, 1, 1, 0, 1)
	assert.Len(t, curvy.Contour(10), 11)
	assert.Empty(t, New().Contour(10))
}

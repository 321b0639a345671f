package phasor

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/epicycles"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var complexComparer = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) <= 1e-12
})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// testarray has coefficient (n+1)+ni for frequency n.
func testarray(t *testing.T, count int) *Array {
	t.Helper()
	a, err := New(count, func(n int) complex128 {
		return complex(float64(n+1), float64(n))
	})
	require.NoError(t, err)
	return a
}

func TestFrequencies(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	diff(t, []int{0}, Frequencies(1))
	diff(t, []int{0, 1, -1, 2, -2, 3, -3}, Frequencies(4))
	assert.Nil(t, Frequencies(0))
}

func TestNewRejectsCount(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, count := range []int{0, -1} {
		_, err := New(count, func(int) complex128 { return 0 })
		assert.True(t, errors.Is(err, ErrPhasorCount), "count=%d", count)
	}
	assert.Panics(t, func() { MustNew(0, nil) })
}

func TestConstructionOrder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var calls []int
	a := MustNew(3, func(n int) complex128 {
		calls = append(calls, n)
		return complex(float64(n), 0)
	})
	diff(t, []int{0, 1, -1, 2, -2}, calls)
	assert.Equal(t, 5, a.Len())
	var freqs []int
	for n, c := range a.All() {
		freqs = append(freqs, n)
		assert.Equal(t, complex(float64(n), 0), c)
	}
	diff(t, calls, freqs)
	n, c := a.At(3)
	assert.Equal(t, 2, n)
	assert.Equal(t, complex(2, 0), c)
}

func TestZeroStepIsIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := testarray(t, 8)
	before := a.Coefficients()
	a.Update(0)
	assert.Equal(t, before, a.Coefficients())
}

func TestUpdateRotates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := MustNew(2, func(int) complex128 { return 1 })
	a.Update(math.Pi / 2)
	want := []complex128{1, -1i, 1i}
	diff(t, want, a.Coefficients(), complexComparer)
}

func TestUpdateIsReversible(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := testarray(t, 6)
	before := a.Coefficients()
	a.Update(0.37)
	a.Update(-0.37)
	after := a.Coefficients()
	for i := range before {
		assert.InDelta(t, cmplx.Abs(before[i]), cmplx.Abs(after[i]), 1e-12, "magnitude of phasor %d", i)
		assert.InDelta(t, 0, cmplx.Abs(before[i]-after[i]), 1e-12, "phasor %d", i)
	}
}

func TestUpdateKeepsSumPeriodic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := testarray(t, 4)
	start := a.Sum()
	for i := 0; i < 100; i++ {
		a.Update(2 * math.Pi / 100)
	}
	assert.InDelta(t, 0, cmplx.Abs(a.Sum()-start), 1e-9, "a full turn returns to the start")
}

func TestArmState(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := MustNew(2, func(n int) complex128 {
		switch n {
		case 1:
			return 1i
		case -1:
			return -2
		}
		return 1
	})
	arm := ArmState(a, epicycles.P(10, 20))
	want := []ArmPoint{
		{X: 10, Y: 20, R: 1},
		{X: 11, Y: 20, R: 1},
		{X: 11, Y: 21, R: 2},
		{X: 9, Y: 21, R: 0},
	}
	diff(t, want, arm, cmpopts.EquateApprox(0, 1e-12))
}

func TestArmStateLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 1; n <= 10; n++ {
		a := testarray(t, n)
		arm := ArmState(a, epicycles.P(3, -1))
		assert.Len(t, arm, 2*n)
		assert.Equal(t, ArmPoint{X: 3, Y: -1, R: cmplx.Abs(a.coeffs[0])}, arm[0])
		assert.Equal(t, arm[len(arm)-1], LastPoint(a, epicycles.P(3, -1)))
	}
}

func TestLastPointAfterUpdates(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := testarray(t, 5)
	for i := 0; i < 7; i++ {
		a.Update(0.1)
		arm := ArmState(a, epicycles.P(-2, 5))
		assert.Equal(t, arm[len(arm)-1], LastPoint(a, epicycles.P(-2, 5)))
	}
}

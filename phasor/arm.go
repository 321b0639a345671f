package phasor

import (
	"math/cmplx"

	"github.com/npillmayer/epicycles"
)

// ArmPoint is a joint of the epicycle chain. R is the radius of the circle
// swept by the arm starting at this joint.
type ArmPoint struct {
	X, Y, R float64
}

// ArmState returns the epicycle chain anchored at origin: origin, then the
// partial sums origin + c0, origin + c0 + c1, … in array order. Point k
// carries |c_k| as its radius; the final tip has radius 0.
//
// The result has a.Len()+1 points.
func ArmState(a *Array, origin epicycles.Pair) []ArmPoint {
	arm := make([]ArmPoint, 0, a.Len()+1)
	z := origin.C()
	for _, c := range a.coeffs {
		arm = append(arm, ArmPoint{X: real(z), Y: imag(z), R: cmplx.Abs(c)})
		z += c
	}
	return append(arm, ArmPoint{X: real(z), Y: imag(z)})
}

// LastPoint returns the tip of the epicycle chain anchored at origin, equal
// to the last point of ArmState.
func LastPoint(a *Array, origin epicycles.Pair) ArmPoint {
	z := origin.C()
	for _, c := range a.coeffs {
		z += c
	}
	return ArmPoint{X: real(z), Y: imag(z)}
}

package epicycles

import (
	"fmt"
	"math"
)

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows.
// Only the upper two rows carry information; the last row is always (0,0,1).
type AT [9]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(v Pair) AT {
	m := Identity()
	m[2], m[5] = v.X(), v.Y()
	return m
}

// Scaling transform, scaling x and y independently around the origin.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m[0], m[4] = sx, sy
	return m
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{cos, -sin, 0, sin, cos, 0, 0, 0, 1}
}

// Fit returns a transform mapping the box (min,max) into the box (dmin,dmax),
// keeping the aspect ratio and centering the result. Boxes of zero extent
// are translated but not scaled.
func Fit(min, max, dmin, dmax Pair) AT {
	w, h := max.X()-min.X(), max.Y()-min.Y()
	dw, dh := dmax.X()-dmin.X(), dmax.Y()-dmin.Y()
	s := 1.0
	switch {
	case Is0(w) && Is0(h):
	case Is0(w):
		s = dh / h
	case Is0(h):
		s = dw / w
	default:
		s = math.Min(dw/w, dh/h)
	}
	center := min.Lerp(max, 0.5)
	dcenter := dmin.Lerp(dmax, 0.5)
	tracer().Debugf("fit box %s-%s into %s-%s, scale %g", min, max, dmin, dmax, s)
	return Translation(-center).Combine(Scaling(s, s)).Combine(Translation(dcenter))
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}

// Combine 2 affine transformations to a new one: first m, then n.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o[row*3+col] = n[row*3]*m[col] + n[row*3+1]*m[3+col] + n[row*3+2]*m[6+col]
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

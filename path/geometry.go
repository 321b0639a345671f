package path

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/epicycles"
)

// Transformed returns a copy of the path with every point mapped by m.
// Affine maps keep lines straight and Bézier control polygons intact, so
// the copy traces exactly the transformed shape.
func (path *Path) Transformed(m epicycles.AT) *Path {
	t := &Path{
		elements: make([]Element, 0, path.N()),
		start:    m.Transform(path.start),
		current:  m.Transform(path.current),
	}
	for _, e := range path.elements {
		switch e := e.(type) {
		case Line:
			t.elements = append(t.elements, Line{m.Transform(e.Z0), m.Transform(e.Z1)})
		case CubicBezier:
			t.elements = append(t.elements, CubicBezier{
				m.Transform(e.Z0), m.Transform(e.Z1), m.Transform(e.Z2), m.Transform(e.Z3),
			})
		default:
			tracer().Errorf("cannot transform path element of type %T", e)
		}
	}
	return t
}

// Contour flattens the path into a polyline. Lines contribute their start
// point, curves are sampled at steps points. The end point of the last
// element is included.
func (path *Path) Contour(steps int) polyclip.Contour {
	steps = max(steps, 1)
	var c polyclip.Contour
	for _, e := range path.elements {
		n := steps
		if _, ok := e.(Line); ok {
			n = 1
		}
		for i := 0; i < n; i++ {
			c.Add(point(e.Eval(float64(i) / float64(n))))
		}
	}
	if !path.IsEmpty() {
		c.Add(point(path.elements[path.N()-1].End()))
	}
	return c
}

// Bounds returns the bounding box of the flattened path. Curves are
// approximated, so the box may be slightly too small for them.
func (path *Path) Bounds() polyclip.Rectangle {
	return path.Contour(32).BoundingBox()
}

// FitInto returns the path scaled and translated to fit centered into the
// box (min,max).
func (path *Path) FitInto(min, max epicycles.Pair) *Path {
	if path.IsEmpty() {
		return path.Transformed(epicycles.Identity())
	}
	bb := path.Bounds()
	m := epicycles.Fit(pair(bb.Min), pair(bb.Max), min, max)
	return path.Transformed(m)
}

func point(p epicycles.Pair) polyclip.Point {
	return polyclip.Point{X: p.X(), Y: p.Y()}
}

func pair(p polyclip.Point) epicycles.Pair {
	return epicycles.P(p.X, p.Y)
}

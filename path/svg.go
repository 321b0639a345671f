package path

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/epicycles"
)

// ErrSyntax indicates malformed SVG path data.
var ErrSyntax = errors.New("invalid SVG path data")

// ParseSVG builds a path from SVG path data, as found in the d-attribute of
// an SVG <path> element. Supported are the commands M, L, H, V, C, S, Q and Z,
// both absolute and relative. Quadratic curves are elevated to cubic ones.
// Arcs are not supported.
//
// Only the elements are kept: if the data contains several sub-paths, they
// are concatenated into one curve.
func ParseSVG(d string) (*Path, error) {
	sc := &svgScanner{src: d}
	p := New()
	var cmd byte
	var ctrl epicycles.Pair // last cubic control point, for S
	var prev byte
	for {
		sc.skipSpace()
		if sc.eof() {
			break
		}
		if c := sc.peek(); isCommand(c) {
			cmd = c
			sc.pos++
		} else if cmd == 0 {
			return nil, sc.errorf("expected command, found %q", c)
		}
		rel := cmd >= 'a' && cmd <= 'z'
		pen := p.Current()
		var origin epicycles.Pair
		if rel {
			origin = pen
		}
		switch upper(cmd) {
		case 'Z':
			p.Close()
			cmd = 0
		case 'M':
			pt, err := sc.pair(origin)
			if err != nil {
				return nil, err
			}
			p.MoveTo(pt.F())
			if rel { // subsequent pairs are implicit line-tos
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			pt, err := sc.pair(origin)
			if err != nil {
				return nil, err
			}
			p.LineTo(pt.F())
		case 'H':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			p.LineTo(x+origin.X(), pen.Y())
		case 'V':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			p.LineTo(pen.X(), y+origin.Y())
		case 'C':
			pts, err := sc.pairs(3, origin)
			if err != nil {
				return nil, err
			}
			p.CurveTo(pts[0].X(), pts[0].Y(), pts[1].X(), pts[1].Y(), pts[2].X(), pts[2].Y())
			ctrl = pts[1]
		case 'S':
			pts, err := sc.pairs(2, origin)
			if err != nil {
				return nil, err
			}
			c1 := pen
			if upper(prev) == 'C' || upper(prev) == 'S' {
				c1 = pen + pen - ctrl
			}
			p.CurveTo(c1.X(), c1.Y(), pts[0].X(), pts[0].Y(), pts[1].X(), pts[1].Y())
			ctrl = pts[0]
		case 'Q':
			pts, err := sc.pairs(2, origin)
			if err != nil {
				return nil, err
			}
			c1 := pen.Lerp(pts[0], 2.0/3.0)
			c2 := pts[1].Lerp(pts[0], 2.0/3.0)
			p.CurveTo(c1.X(), c1.Y(), c2.X(), c2.Y(), pts[1].X(), pts[1].Y())
		default:
			return nil, sc.errorf("unsupported command %q", cmd)
		}
		prev = upper(cmd)
		if prev == 0 {
			prev = 'Z'
		}
	}
	tracer().Debugf("parsed SVG path with %d elements", p.N())
	return p, nil
}

// MustParseSVG is like ParseSVG, but panics on syntax errors.
func MustParseSVG(d string) *Path {
	p, err := ParseSVG(d)
	if err != nil {
		panic(err)
	}
	return p
}

func isCommand(c byte) bool {
	return strings.IndexByte("MmLlHhVvCcSsQqZzTtAa", c) >= 0
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

type svgScanner struct {
	src string
	pos int
}

func (sc *svgScanner) eof() bool {
	return sc.pos >= len(sc.src)
}

func (sc *svgScanner) peek() byte {
	return sc.src[sc.pos]
}

func (sc *svgScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrSyntax, sc.pos, fmt.Sprintf(format, args...))
}

// skipSpace skips white space and at most one comma.
func (sc *svgScanner) skipSpace() {
	comma := false
	for !sc.eof() {
		switch c := sc.peek(); {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f':
		case c == ',' && !comma:
			comma = true
		default:
			return
		}
		sc.pos++
	}
}

func (sc *svgScanner) number() (float64, error) {
	sc.skipSpace()
	start := sc.pos
	if !sc.eof() && (sc.peek() == '+' || sc.peek() == '-') {
		sc.pos++
	}
	digits, dot := 0, false
	for !sc.eof() {
		c := sc.peek()
		if c >= '0' && c <= '9' {
			digits++
		} else if c == '.' && !dot {
			dot = true
		} else {
			break
		}
		sc.pos++
	}
	if digits > 0 && !sc.eof() && (sc.peek() == 'e' || sc.peek() == 'E') {
		mark := sc.pos
		sc.pos++
		if !sc.eof() && (sc.peek() == '+' || sc.peek() == '-') {
			sc.pos++
		}
		exp := 0
		for !sc.eof() && sc.peek() >= '0' && sc.peek() <= '9' {
			sc.pos++
			exp++
		}
		if exp == 0 {
			sc.pos = mark
		}
	}
	if digits == 0 {
		sc.pos = start
		return 0, sc.errorf("expected number")
	}
	x, err := strconv.ParseFloat(sc.src[start:sc.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return x, nil
}

func (sc *svgScanner) pair(origin epicycles.Pair) (epicycles.Pair, error) {
	x, err := sc.number()
	if err != nil {
		return origin, err
	}
	y, err := sc.number()
	if err != nil {
		return origin, err
	}
	return origin + epicycles.P(x, y), nil
}

func (sc *svgScanner) pairs(n int, origin epicycles.Pair) ([]epicycles.Pair, error) {
	pts := make([]epicycles.Pair, n)
	for i := range pts {
		pt, err := sc.pair(origin)
		if err != nil {
			return nil, err
		}
		pts[i] = pt
	}
	return pts, nil
}

package pathgeom

import (
	"math"
)

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
//
// Most methods expect X0 ≤ X1 and Y0 ≤ Y1; use [Rect.Abs] to normalize a
// rectangle built from arbitrary corners.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var _ Shape = Rect{}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle at origin with the given width and
// height.
func NewRectFromOrigin(origin Point, width, height float64) Rect {
	return NewRectFromPoints(origin, Pt(origin.X+width, origin.Y+height))
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Contains reports whether pt lies inside r or on its border.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X <= r.X1 &&
		pt.Y >= r.Y0 && pt.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely inside r. Rectangles without
// area neither contain nor are contained.
func (r Rect) ContainsRect(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.X0 >= r.X0 && o.Y0 >= r.Y0 && o.X1 <= r.X1 && o.Y1 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) BoundingBox() Rect {
	return r.Abs()
}

// Intersects reports whether the interiors of r and o overlap. Rectangles
// that merely share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X1 > o.X0 && r.X0 < o.X1 && r.Y1 > o.Y0 && r.Y0 < o.Y1
}

// Cohen–Sutherland region codes.
const (
	csLeft   = 1
	csRight  = 2
	csBottom = 4
	csTop    = 8
)

func (r Rect) outcode(pt Point) int {
	code := 0
	if pt.X < r.X0 {
		code |= csLeft
	}
	if pt.X > r.X1 {
		code |= csRight
	}
	if pt.Y < r.Y0 {
		code |= csBottom
	}
	if pt.Y > r.Y1 {
		code |= csTop
	}
	return code
}

// IntersectsLine reports whether the segment l touches r, using
// Cohen–Sutherland clipping.
func (r Rect) IntersectsLine(l Line) bool {
	p0, p1 := l.P0, l.P1
	c0 := r.outcode(p0)
	c1 := r.outcode(p1)
	for {
		if c0|c1 == 0 {
			return true
		}
		if c0&c1 != 0 {
			return false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var pt Point
		switch {
		case out&csTop != 0:
			pt = Pt(p0.X+(p1.X-p0.X)*(r.Y1-p0.Y)/(p1.Y-p0.Y), r.Y1)
		case out&csBottom != 0:
			pt = Pt(p0.X+(p1.X-p0.X)*(r.Y0-p0.Y)/(p1.Y-p0.Y), r.Y0)
		case out&csRight != 0:
			pt = Pt(r.X1, p0.Y+(p1.Y-p0.Y)*(r.X1-p0.X)/(p1.X-p0.X))
		default:
			pt = Pt(r.X0, p0.Y+(p1.Y-p0.Y)*(r.X0-p0.X)/(p1.X-p0.X))
		}
		if out == c0 {
			p0 = pt
			c0 = r.outcode(p0)
		} else {
			p1 = pt
			c1 = r.outcode(p1)
		}
	}
}

// ClosestPoint returns the point of r nearest to pt. Points inside r are
// their own closest point.
func (r Rect) ClosestPoint(pt Point) Point {
	return Pt(
		math.Max(r.X0, math.Min(pt.X, r.X1)),
		math.Max(r.Y0, math.Min(pt.Y, r.Y1)),
	)
}

// FarthestPoint returns the corner of r farthest from pt.
func (r Rect) FarthestPoint(pt Point) Point {
	x := r.X0
	if pt.X <= r.Center().X {
		x = r.X1
	}
	y := r.Y0
	if pt.Y <= r.Center().Y {
		y = r.Y1
	}
	return Pt(x, y)
}

func (r Rect) elements() []PathElement {
	p0, p1, p2, p3 := Pt(r.X0, r.Y0), Pt(r.X1, r.Y0), Pt(r.X1, r.Y1), Pt(r.X0, r.Y1)
	return []PathElement{
		MoveTo(p0),
		LineTo(p0, p1),
		LineTo(p1, p2),
		LineTo(p2, p3),
		ClosePath(p3, p0),
	}
}

// PathIterator returns the outline of r, transformed by aff.
func (r Rect) PathIterator(aff Affine) PathIterator {
	if r.IsEmpty() {
		return ElementIterator(NonZero)
	}
	return ElementIterator(NonZero, transformElements(r.elements(), aff)...)
}

func (Rect) isShape() {}

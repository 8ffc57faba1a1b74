package pathgeom

import (
	"math"
)

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center Point
	// Radii holds the semi-axes along x and y.
	Radii Vec2
}

var _ Shape = Ellipse{}

// NewEllipseFromRect returns the ellipse inscribed in r.
func NewEllipseFromRect(r Rect) Ellipse {
	r = r.Abs()
	return Ellipse{
		Center: r.Center(),
		Radii:  Vec(r.Width()/2, r.Height()/2),
	}
}

// frame returns the rectangle the ellipse is inscribed in.
func (e Ellipse) frame() Rect {
	return Rect{
		X0: e.Center.X - e.Radii.X,
		Y0: e.Center.Y - e.Radii.Y,
		X1: e.Center.X + e.Radii.X,
		Y1: e.Center.Y + e.Radii.Y,
	}
}

func (e Ellipse) IsEmpty() bool {
	return e.Radii.X <= 0 || e.Radii.Y <= 0
}

func (e Ellipse) BoundingBox() Rect {
	return e.frame().Abs()
}

func (e Ellipse) Translate(v Vec2) Ellipse {
	return Ellipse{
		Center: e.Center.Translate(v),
		Radii:  e.Radii,
	}
}

// Contains reports whether pt lies inside the ellipse or on its border.
func (e Ellipse) Contains(pt Point) bool {
	if e.IsEmpty() {
		return false
	}
	nx, ny := e.normalize(pt)
	return nx*nx+ny*ny <= 0.25
}

// normalize maps pt into the frame where the ellipse is the circle of radius
// 0.5 centered on the origin.
func (e Ellipse) normalize(pt Point) (float64, float64) {
	f := e.frame()
	return (pt.X-f.X0)/f.Width() - 0.5, (pt.Y-f.Y0)/f.Height() - 0.5
}

// ContainsRect reports whether r lies entirely inside the ellipse.
func (e Ellipse) ContainsRect(r Rect) bool {
	return e.Contains(r.FarthestPoint(e.Center))
}

// Intersects reports whether two ellipses overlap. Space is scaled so that
// e becomes the unit circle, which turns the test into a circle–ellipse one.
func (e Ellipse) Intersects(o Ellipse) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	rx, ry := e.Radii.X, e.Radii.Y
	scaled := Ellipse{
		Center: Pt((o.Center.X-e.Center.X)/rx, (o.Center.Y-e.Center.Y)/ry),
		Radii:  Vec(o.Radii.X/rx, o.Radii.Y/ry),
	}
	return Circle{Radius: 1}.IntersectsEllipse(scaled)
}

// IntersectsRect reports whether the ellipse overlaps r.
func (e Ellipse) IntersectsRect(r Rect) bool {
	return intersectsEllipseRect(e.frame(), r)
}

// IntersectsLine reports whether the segment l touches the ellipse.
func (e Ellipse) IntersectsLine(l Line) bool {
	return intersectsEllipseSegment(e.frame(), l.P0, l.P1)
}

// ClosestPoint returns the point of the filled ellipse nearest to pt.
func (e Ellipse) ClosestPoint(pt Point) Point {
	if e.IsEmpty() {
		return e.frame().Abs().ClosestPoint(pt)
	}
	if e.Contains(pt) {
		return pt
	}
	v := pt.Sub(e.Center)
	x, y := math.Abs(v.X), math.Abs(v.Y)
	var cx, cy float64
	if e.Radii.X >= e.Radii.Y {
		cx, cy = closestOnEllipseQuadrant(e.Radii.X, e.Radii.Y, x, y)
	} else {
		cy, cx = closestOnEllipseQuadrant(e.Radii.Y, e.Radii.X, y, x)
	}
	return e.Center.Translate(Vec(math.Copysign(cx, v.X), math.Copysign(cy, v.Y)))
}

// closestOnEllipseQuadrant returns the point of the ellipse x²/a² + y²/b² = 1
// nearest to (x, y), for a ≥ b > 0 and a point outside the ellipse in the
// first quadrant.
//
// The nearest point is where the ellipse's normal passes through (x, y). Its
// parameter is the root of a monotonic function, found by bisection as
// described in Eberly, "Distance from a Point to an Ellipse".
func closestOnEllipseQuadrant(a, b, x, y float64) (float64, float64) {
	switch {
	case x == 0:
		return 0, b
	case y == 0:
		return a, 0
	}
	zx, zy := x/a, y/b
	r := (a / b) * (a / b)
	nx := r * zx
	lo, hi := zy-1, math.Hypot(nx, zy)-1
	s := lo
	for range 1100 {
		s = (lo + hi) / 2
		if s == lo || s == hi {
			break
		}
		rx, ry := nx/(s+r), zy/(s+1)
		g := rx*rx + ry*ry - 1
		if g > 0 {
			lo = s
		} else if g < 0 {
			hi = s
		} else {
			break
		}
	}
	return r * x / (s + r), y / (s + 1)
}

func (e Ellipse) PathIterator(aff Affine) PathIterator {
	if e.IsEmpty() {
		return ElementIterator(NonZero)
	}
	return ElementIterator(NonZero, transformElements(ovalElements(e.frame()), aff)...)
}

func (Ellipse) isShape() {}

// intersectsEllipseRect reports whether the ellipse inscribed in frame
// overlaps r, by testing the point of r nearest to the ellipse's center in
// normalized coordinates.
func intersectsEllipseRect(frame, r Rect) bool {
	frame = frame.Abs()
	r = r.Abs()
	ew, eh := frame.Width(), frame.Height()
	rw, rh := r.Width(), r.Height()
	if rw <= 0 || rh <= 0 || ew <= 0 || eh <= 0 {
		return false
	}
	nx0 := (r.X0-frame.X0)/ew - 0.5
	nx1 := nx0 + rw/ew
	ny0 := (r.Y0-frame.Y0)/eh - 0.5
	ny1 := ny0 + rh/eh
	var nearx, neary float64
	if nx0 > 0 {
		nearx = nx0
	} else if nx1 < 0 {
		nearx = nx1
	}
	if ny0 > 0 {
		neary = ny0
	} else if ny1 < 0 {
		neary = ny1
	}
	return nearx*nearx+neary*neary < 0.25
}

// intersectsEllipseSegment reports whether the segment p0p1 touches the
// ellipse inscribed in frame.
func intersectsEllipseSegment(frame Rect, p0, p1 Point) bool {
	ew, eh := frame.Width(), frame.Height()
	if ew <= 0 || eh <= 0 {
		return false
	}
	a := ew / 2
	b := eh / 2
	c := Pt(frame.X0+a, frame.Y0+b)
	q0 := p0.Sub(c)
	v := p1.Sub(p0)
	a2 := a * a
	b2 := b * b

	qa := v.X*v.X/a2 + v.Y*v.Y/b2
	qb := 2*q0.X*v.X/a2 + 2*q0.Y*v.Y/b2
	qc := q0.X*q0.X/a2 + q0.Y*q0.Y/b2 - 1
	d := qb*qb - 4*qa*qc
	switch {
	case d < 0:
		return false
	case d == 0:
		t := -qb / (2 * qa)
		return t >= 0 && t <= 1
	default:
		sd := math.Sqrt(d)
		t1 := (-qb + sd) / (2 * qa)
		t2 := (-qb - sd) / (2 * qa)
		return (t1 >= 0 || t2 >= 0) && (t1 <= 1 || t2 <= 1)
	}
}

const (
	// ovalCtrl places the control points of a cubic quarter arc.
	ovalCtrl = 0.5522847498307933
	ovalPCV  = 0.5 + ovalCtrl*0.5
	ovalNCV  = 0.5 - ovalCtrl*0.5
)

// ovalCtrlPoints holds, on the unit frame, the two control points and the end
// point of each quarter arc.
var ovalCtrlPoints = [4][6]float64{
	{1, ovalPCV, ovalPCV, 1, 0.5, 1},
	{ovalNCV, 1, 0, ovalPCV, 0, 0.5},
	{0, ovalNCV, ovalNCV, 0, 0.5, 0},
	{ovalPCV, 0, 1, ovalNCV, 1, 0.5},
}

// ovalElements approximates the ellipse inscribed in frame with four cubic
// arcs, starting at the middle of the right edge.
func ovalElements(frame Rect) []PathElement {
	w, h := frame.Width(), frame.Height()
	at := func(u, v float64) Point {
		return Pt(frame.X0+u*w, frame.Y0+v*h)
	}
	last := ovalCtrlPoints[3]
	start := at(last[4], last[5])
	els := make([]PathElement, 0, 6)
	els = append(els, MoveTo(start))
	cur := start
	for _, ctrl := range ovalCtrlPoints {
		to := at(ctrl[4], ctrl[5])
		els = append(els, CubicTo(cur, at(ctrl[0], ctrl[1]), at(ctrl[2], ctrl[3]), to))
		cur = to
	}
	return append(els, ClosePath(cur, start))
}

package pathgeom

import (
	"math"
)

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// ControlBox returns the bounding box of the control points, which encloses
// the curve.
func (q QuadBez) ControlBox() Rect {
	return NewRectFromPoints(q.P0, q.P1).UnionPoint(q.P2)
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula suffers
// from numerical instability when the curve is very close to a straight line, we
// detect that case and fall back to Legendre-Gauss quadrature.
func (q QuadBez) Arclen() float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// Nearly straight: 3-point Legendre-Gauss quadrature.
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// Sharp kink.
		return v0
	}
	return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

// Subdivide splits the curve at t = 0.5 using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	l := q.P0.Midpoint(q.P1)
	r := q.P1.Midpoint(q.P2)
	pm := l.Midpoint(r)
	return QuadBez{q.P0, l, pm}, QuadBez{pm, r, q.P2}
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

// flatness returns the squared distance of the control point from the line
// through the endpoints.
func (q QuadBez) flatness() float64 {
	return lineDistanceSquared(q.P0, q.P2, q.P1)
}

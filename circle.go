package pathgeom

import (
	"math"
)

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

var _ Shape = Circle{}

// IsEmpty reports whether the circle has no area.
func (c Circle) IsEmpty() bool {
	return c.Radius <= 0
}

// Contains reports whether pt lies inside the circle or on its border. An
// empty circle contains nothing.
func (c Circle) Contains(pt Point) bool {
	if c.IsEmpty() {
		return false
	}
	return pt.DistanceSquared(c.Center) <= c.Radius*c.Radius
}

// ContainsRect reports whether r lies entirely inside the circle.
func (c Circle) ContainsRect(r Rect) bool {
	return c.Contains(r.FarthestPoint(c.Center))
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return Rect{
		X0: c.Center.X - r,
		Y0: c.Center.Y - r,
		X1: c.Center.X + r,
		Y1: c.Center.Y + r,
	}
}

// Intersects reports whether two circles overlap. Circles that merely touch do
// not intersect.
func (c Circle) Intersects(o Circle) bool {
	r := c.Radius + o.Radius
	return c.Center.DistanceSquared(o.Center) < r*r
}

// IntersectsRect reports whether the circle overlaps r.
func (c Circle) IntersectsRect(r Rect) bool {
	var dx, dy float64
	switch {
	case c.Center.X < r.X0:
		dx = r.X0 - c.Center.X
	case c.Center.X > r.X1:
		dx = c.Center.X - r.X1
	}
	switch {
	case c.Center.Y < r.Y0:
		dy = r.Y0 - c.Center.Y
	case c.Center.Y > r.Y1:
		dy = c.Center.Y - r.Y1
	}
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// IntersectsLine reports whether the segment l passes through the interior of
// the circle.
func (c Circle) IntersectsLine(l Line) bool {
	return segmentDistanceSquared(l.P0, l.P1, c.Center) < c.Radius*c.Radius
}

// IntersectsEllipse reports whether the circle overlaps e, measuring the
// distance from the circle's center to the nearest point of e.
func (c Circle) IntersectsEllipse(e Ellipse) bool {
	if c.IsEmpty() || e.IsEmpty() {
		return false
	}
	return e.ClosestPoint(c.Center).DistanceSquared(c.Center) < c.Radius*c.Radius
}

// ClosestPoint returns the point of the disc nearest to pt.
func (c Circle) ClosestPoint(pt Point) Point {
	v := pt.Sub(c.Center)
	l := v.Hypot2()
	if l <= c.Radius*c.Radius {
		return pt
	}
	return c.Center.Translate(v.Mul(c.Radius / math.Sqrt(l)))
}

// FarthestPoint returns the point of the circle farthest from pt.
func (c Circle) FarthestPoint(pt Point) Point {
	v := c.Center.Sub(pt)
	return c.Center.Translate(v.Mul(c.Radius / v.Hypot()))
}

// PathIterator returns four cubic arcs approximating the circle, transformed
// by aff. Empty circles have no outline.
func (c Circle) PathIterator(aff Affine) PathIterator {
	if c.IsEmpty() {
		return ElementIterator(NonZero)
	}
	return ElementIterator(NonZero, transformElements(ovalElements(c.BoundingBox()), aff)...)
}

func (Circle) isShape() {}

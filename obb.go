package pathgeom

import (
	"math"
)

// OrientedRect is a rectangle whose sides follow an arbitrary pair of
// perpendicular axes.
//
// Axis must be a unit vector; the second axis is Axis rotated by a quarter
// turn. Extent1 and Extent2 are half the side lengths along each axis.
type OrientedRect struct {
	Center  Point
	Axis    Vec2
	Extent1 float64
	Extent2 float64
}

var _ Shape = OrientedRect{}

// NewOrientedRect returns an oriented rectangle with the given center,
// first-axis direction and half extents. The axis need not be normalized.
func NewOrientedRect(center Point, axis Vec2, extent1, extent2 float64) OrientedRect {
	return OrientedRect{
		Center:  center,
		Axis:    axis.Normalize(),
		Extent1: math.Abs(extent1),
		Extent2: math.Abs(extent2),
	}
}

// Axis2 returns the second axis.
func (o OrientedRect) Axis2() Vec2 {
	return o.Axis.Perp()
}

func (o OrientedRect) IsEmpty() bool {
	return o.Extent1 <= 0 || o.Extent2 <= 0
}

// local returns the transform from world coordinates into the rectangle's
// frame, where it spans [−Extent1, Extent1] × [−Extent2, Extent2].
func (o OrientedRect) local() Affine {
	a1, a2 := o.Axis, o.Axis2()
	c := Vec2(o.Center)
	return Affine{
		N0: a1.X, N1: a2.X,
		N2: a1.Y, N3: a2.Y,
		N4: -a1.Dot(c), N5: -a2.Dot(c),
	}
}

func (o OrientedRect) localRect() Rect {
	return Rect{-o.Extent1, -o.Extent2, o.Extent1, o.Extent2}
}

// Corners returns the four corners in outline order.
func (o OrientedRect) Corners() [4]Point {
	u := o.Axis.Mul(o.Extent1)
	v := o.Axis2().Mul(o.Extent2)
	c := o.Center
	return [4]Point{
		c.Translate(u.Negate().Sub(v)),
		c.Translate(u.Sub(v)),
		c.Translate(u.Add(v)),
		c.Translate(v.Sub(u)),
	}
}

func (o OrientedRect) BoundingBox() Rect {
	cs := o.Corners()
	r := Rect{cs[0].X, cs[0].Y, cs[0].X, cs[0].Y}
	for _, pt := range cs[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

func (o OrientedRect) Translate(v Vec2) OrientedRect {
	o.Center = o.Center.Translate(v)
	return o
}

// Contains reports whether pt lies inside the rectangle or on its border.
func (o OrientedRect) Contains(pt Point) bool {
	return o.localRect().Contains(pt.Transform(o.local()))
}

// ContainsRect reports whether r lies entirely inside o.
func (o OrientedRect) ContainsRect(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	return o.Contains(Pt(r.X0, r.Y0)) && o.Contains(Pt(r.X1, r.Y0)) &&
		o.Contains(Pt(r.X1, r.Y1)) && o.Contains(Pt(r.X0, r.Y1))
}

// Intersects reports whether two oriented rectangles overlap, using the
// separating axis theorem.
func (o OrientedRect) Intersects(b OrientedRect) bool {
	t := b.Center.Sub(o.Center)
	oa1, oa2 := o.Axis, o.Axis2()
	ba1, ba2 := b.Axis, b.Axis2()
	os1, os2 := oa1.Mul(o.Extent1), oa2.Mul(o.Extent2)
	bs1, bs2 := ba1.Mul(b.Extent1), ba2.Mul(b.Extent2)

	separated := func(axis Vec2, extent float64, s1, s2 Vec2) bool {
		return math.Abs(t.Dot(axis)) > extent+math.Abs(s1.Dot(axis))+math.Abs(s2.Dot(axis))
	}
	return !separated(oa1, o.Extent1, bs1, bs2) &&
		!separated(oa2, o.Extent2, bs1, bs2) &&
		!separated(ba1, b.Extent1, os1, os2) &&
		!separated(ba2, b.Extent2, os1, os2)
}

// IntersectsRect reports whether o overlaps the axis-aligned rectangle r.
func (o OrientedRect) IntersectsRect(r Rect) bool {
	r = r.Abs()
	return o.Intersects(OrientedRect{
		Center:  r.Center(),
		Axis:    Vec(1, 0),
		Extent1: r.Width() / 2,
		Extent2: r.Height() / 2,
	})
}

// IntersectsLine reports whether the segment l touches o.
func (o OrientedRect) IntersectsLine(l Line) bool {
	return o.localRect().IntersectsLine(l.Transform(o.local()))
}

// IntersectsCircle reports whether o overlaps the disc c.
func (o OrientedRect) IntersectsCircle(c Circle) bool {
	return o.ClosestPoint(c.Center).DistanceSquared(c.Center) < c.Radius*c.Radius
}

// IntersectsEllipse reports whether o overlaps e: either o holds e's center
// or one of o's sides touches e.
func (o OrientedRect) IntersectsEllipse(e Ellipse) bool {
	if e.IsEmpty() || o.IsEmpty() {
		return false
	}
	if o.Contains(e.Center) {
		return true
	}
	cs := o.Corners()
	f := e.frame()
	for i := range cs {
		if intersectsEllipseSegment(f, cs[i], cs[(i+1)%len(cs)]) {
			return true
		}
	}
	return false
}

// ClosestPoint returns the point of o nearest to pt.
func (o OrientedRect) ClosestPoint(pt Point) Point {
	d := pt.Sub(o.Center)
	d1 := max(-o.Extent1, min(d.Dot(o.Axis), o.Extent1))
	d2 := max(-o.Extent2, min(d.Dot(o.Axis2()), o.Extent2))
	return o.Center.Translate(o.Axis.Mul(d1)).Translate(o.Axis2().Mul(d2))
}

// FarthestPoint returns the corner of o opposite to pt.
//
// When pt projects onto the negative side of the second axis, the second
// coordinate of the result is Extent1 rather than Extent2. This matches the
// long-standing behavior of the computation and is kept for compatibility.
func (o OrientedRect) FarthestPoint(pt Point) Point {
	d := pt.Sub(o.Center)
	d1 := o.Extent1
	if d.Dot(o.Axis) >= 0 {
		d1 = -o.Extent1
	}
	d2 := o.Extent1
	if d.Dot(o.Axis2()) >= 0 {
		d2 = -o.Extent2
	}
	return o.Center.Translate(o.Axis.Mul(d1)).Translate(o.Axis2().Mul(d2))
}

// IntersectsIterator reports whether the path produced by it overlaps o. The
// path's winding rule decides whether enclosing o counts as overlapping.
func (o OrientedRect) IntersectsIterator(it PathIterator) (bool, error) {
	if o.IsEmpty() {
		return false, nil
	}
	rule := it.WindingRule()
	c, err := CrossingsFromRect(TransformIterator(it, o.local()), o.localRect(), CrossingOptions{OnlyIntersectWhenOpen: true})
	if err != nil {
		return false, err
	}
	return c.Intersects || c.Count&rule.shapeMask() != 0, nil
}

func (o OrientedRect) elements() []PathElement {
	cs := o.Corners()
	return []PathElement{
		MoveTo(cs[0]),
		LineTo(cs[0], cs[1]),
		LineTo(cs[1], cs[2]),
		LineTo(cs[2], cs[3]),
		ClosePath(cs[3], cs[0]),
	}
}

func (o OrientedRect) PathIterator(aff Affine) PathIterator {
	if o.IsEmpty() {
		return ElementIterator(NonZero)
	}
	return ElementIterator(NonZero, transformElements(o.elements(), aff)...)
}

func (OrientedRect) isShape() {}

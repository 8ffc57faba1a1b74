package pathgeom

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Shape = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) IsEmpty() bool {
	return l.P0 == l.P1
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Contains reports whether pt lies on the segment.
func (l Line) Contains(pt Point) bool {
	return segmentDistanceSquared(l.P0, l.P1, pt) == 0
}

// Intersects reports whether two segments share at least one point,
// endpoints included.
func (l Line) Intersects(o Line) bool {
	return intersectsSegmentsWithEnds(l.P0, l.P1, o.P0, o.P1)
}

// DistanceSquared returns the squared distance from pt to the nearest point
// of the segment.
func (l Line) DistanceSquared(pt Point) float64 {
	return segmentDistanceSquared(l.P0, l.P1, pt)
}

// ClosestPoint returns the point of the segment nearest to pt.
func (l Line) ClosestPoint(pt Point) Point {
	return l.Eval(clamp01(projectOnSegment(l.P0, l.P1, pt)))
}

// FarthestPoint returns whichever endpoint is farther from pt, preferring
// P0 on ties.
func (l Line) FarthestPoint(pt Point) Point {
	if pt.DistanceSquared(l.P0) >= pt.DistanceSquared(l.P1) {
		return l.P0
	}
	return l.P1
}

func (l Line) PathIterator(aff Affine) PathIterator {
	l = l.Transform(aff)
	return ElementIterator(NonZero, MoveTo(l.P0), LineTo(l.P0, l.P1))
}

func (Line) isShape() {}

func clamp01(t float64) float64 {
	return max(0, min(t, 1))
}

// projectOnSegment returns the parameter of the orthogonal projection of pt
// onto the line through p0 and p1. Values outside [0, 1] lie beyond an end.
func projectOnSegment(p0, p1, pt Point) float64 {
	v := p1.Sub(p0)
	d := v.Hypot2()
	if d == 0 {
		return 0
	}
	return pt.Sub(p0).Dot(v) / d
}

// lineDistanceSquared returns the squared distance from pt to the infinite
// line through p0 and p1.
func lineDistanceSquared(p0, p1, pt Point) float64 {
	v := p1.Sub(p0)
	denom := v.Hypot2()
	if denom == 0 {
		return pt.DistanceSquared(p0)
	}
	s := ((p0.Y-pt.Y)*v.X - (p0.X-pt.X)*v.Y) / denom
	return s * s * denom
}

// segmentDistanceSquared returns the squared distance from pt to the segment
// p0p1.
func segmentDistanceSquared(p0, p1, pt Point) float64 {
	v := p1.Sub(p0)
	denom := v.Hypot2()
	if denom == 0 {
		return pt.DistanceSquared(p0)
	}
	ratio := pt.Sub(p0).Dot(v) / denom
	if ratio <= 0 {
		return pt.DistanceSquared(p0)
	}
	if ratio >= 1 {
		return pt.DistanceSquared(p1)
	}
	s := ((p0.Y-pt.Y)*v.X - (p0.X-pt.X)*v.Y) / denom
	return s * s * denom
}

// sideOfLine returns 1 or -1 depending on the side of the directed line
// p0→p1 that pt lies on, and 0 when the three points are collinear.
func sideOfLine(p0, p1, pt Point) int {
	side := pt.Sub(p0).Cross(p1.Sub(p0))
	switch {
	case side < 0:
		return -1
	case side > 0:
		return 1
	default:
		return 0
	}
}

// intersectsSegmentsWithEnds reports whether segments a0a1 and b0b1 share a
// point. Touching endpoints count as an intersection.
func intersectsSegmentsWithEnds(a0, a1, b0, b1 Point) bool {
	return straddlesWithEnds(a0, a1, b0, b1) && straddlesWithEnds(b0, b1, a0, a1)
}

// intersectsSegmentsWithoutEnds is like intersectsSegmentsWithEnds, except
// that contact at an endpoint does not count.
func intersectsSegmentsWithoutEnds(a0, a1, b0, b1 Point) bool {
	return straddlesWithoutEnds(a0, a1, b0, b1) && straddlesWithoutEnds(b0, b1, a0, a1)
}

func straddlesWithEnds(a0, a1, b0, b1 Point) bool {
	v := a1.Sub(a0)
	va := b0.Sub(a0)
	vb := b1.Sub(a0)
	f1 := va.X*v.Y - va.Y*v.X
	f2 := vb.X*v.Y - vb.Y*v.X
	sign := f1 * f2
	if sign < 0 {
		return true
	}
	if sign > 0 {
		return false
	}
	l2 := v.Hypot2()
	switch {
	case f1 == 0 && f2 == 0:
		t1 := va.Dot(v) / l2
		t2 := vb.Dot(v) / l2
		return (t1 >= 0 || t2 >= 0) && (t1 <= 1 || t2 <= 1)
	case f1 == 0:
		t1 := va.Dot(v) / l2
		return t1 >= 0 && t1 <= 1
	default:
		t2 := vb.Dot(v) / l2
		return t2 >= 0 && t2 <= 1
	}
}

func straddlesWithoutEnds(a0, a1, b0, b1 Point) bool {
	v := a1.Sub(a0)
	va := b0.Sub(a0)
	vb := b1.Sub(a0)
	f1 := va.X*v.Y - va.Y*v.X
	f2 := vb.X*v.Y - vb.Y*v.X
	sign := f1 * f2
	if sign < 0 {
		return true
	}
	if sign > 0 {
		return false
	}
	if f1 == 0 && f2 == 0 {
		l2 := v.Hypot2()
		t1 := va.Dot(v) / l2
		t2 := vb.Dot(v) / l2
		return (t1 > 0 || t2 > 0) && (t1 < 1 || t2 < 1)
	}
	return false
}

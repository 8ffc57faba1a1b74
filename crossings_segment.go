package pathgeom

import (
	"math"
)

// Edge rules for the ray-crossing engine. Each function looks at one edge
// from→to of a path and the rightward "shadow" of a reference primitive,
// and adjusts the running count by +1 for every shadow boundary the edge
// crosses going up (increasing Y) and −1 going down.

// segmentCrossingsFromPoint returns the crossing contributed by the edge
// from→to to a ray cast rightwards from pt. An edge starting at the ray's
// height counts, one ending there doesn't.
func segmentCrossingsFromPoint(pt, from, to Point) int {
	if pt.Y < from.Y && pt.Y < to.Y {
		return 0
	}
	if pt.Y >= from.Y && pt.Y >= to.Y {
		return 0
	}
	if pt.X >= from.X && pt.X >= to.X {
		return 0
	}
	if pt.X < from.X && pt.X < to.X {
		return edgeDirection(from, to)
	}
	xi := from.X + (pt.Y-from.Y)*(to.X-from.X)/(to.Y-from.Y)
	if pt.X >= xi {
		return 0
	}
	return edgeDirection(from, to)
}

// segmentCrossingsFromPointStrict is like segmentCrossingsFromPoint but also
// counts edges whose end or intercept coincides with pt.
func segmentCrossingsFromPointStrict(pt, from, to Point) int {
	if pt.Y < from.Y && pt.Y < to.Y {
		return 0
	}
	if pt.Y > from.Y && pt.Y > to.Y {
		return 0
	}
	if pt.X > from.X && pt.X > to.X {
		return 0
	}
	if pt.X < from.X && pt.X < to.X {
		return edgeDirection(from, to)
	}
	xi := from.X + (pt.Y-from.Y)*(to.X-from.X)/(to.Y-from.Y)
	if pt.X > xi {
		return 0
	}
	return edgeDirection(from, to)
}

func edgeDirection(from, to Point) int {
	if from.Y < to.Y {
		return 1
	}
	return -1
}

// crossRightShadow accounts for an edge lying entirely to the right of a
// shadow spanning [ymin, ymax] vertically.
func crossRightShadow(c Crossings, ymin, ymax float64, from, to Point) Crossings {
	switch {
	case from.Y < to.Y:
		if from.Y <= ymin {
			c = c.Add(1)
		}
		if to.Y >= ymax {
			c = c.Add(1)
		}
	case to.Y < from.Y:
		if to.Y <= ymin {
			c = c.Add(-1)
		}
		if from.Y >= ymax {
			c = c.Add(-1)
		}
	}
	return c
}

// segmentCrossingsFromSegment applies the edge from→to to the shadow of the
// segment s.
func segmentCrossingsFromSegment(c Crossings, s Line, from, to Point) Crossings {
	xmin, xmax := min(s.P0.X, s.P1.X), max(s.P0.X, s.P1.X)
	ymin, ymax := min(s.P0.Y, s.P1.Y), max(s.P0.Y, s.P1.Y)

	switch {
	case from.Y <= ymin && to.Y <= ymin,
		from.Y >= ymax && to.Y >= ymax,
		from.X <= xmin && to.X <= xmin:
		return c
	case from.X >= xmax && to.X >= xmax:
		return crossRightShadow(c, ymin, ymax, from, to)
	case intersectsSegmentsWithEnds(from, to, s.P0, s.P1):
		return Crossings{Intersects: true}
	}

	lo, hi := s.P0, s.P1
	if lo.Y > hi.Y {
		lo, hi = hi, lo
	}
	if sideOfLine(lo, hi, from) > 0 || sideOfLine(lo, hi, to) > 0 {
		n1 := segmentCrossingsFromPoint(s.P0, from, to)
		var n2 int
		if n1 != 0 {
			n2 = segmentCrossingsFromPointStrict(s.P1, from, to)
		} else {
			n2 = segmentCrossingsFromPoint(s.P1, from, to)
		}
		c = c.Add(n1 + n2)
	}
	return c
}

// segmentCrossingsFromEllipse applies the edge from→to to the shadow of e.
func segmentCrossingsFromEllipse(c Crossings, e Ellipse, from, to Point) Crossings {
	f := e.frame()
	switch {
	case from.Y <= f.Y0 && to.Y <= f.Y0,
		from.Y >= f.Y1 && to.Y >= f.Y1,
		from.X <= f.X0 && to.X <= f.X0:
		return c
	case from.X >= f.X1 && to.X >= f.X1:
		return crossRightShadow(c, f.Y0, f.Y1, from, to)
	case intersectsEllipseSegment(f, from, to):
		return Crossings{Intersects: true}
	}
	xc := (f.X0 + f.X1) / 2
	c = c.Add(segmentCrossingsFromPoint(Pt(xc, f.Y0), from, to))
	return c.Add(segmentCrossingsFromPoint(Pt(xc, f.Y1), from, to))
}

// segmentCrossingsFromCircle applies the edge from→to to the shadow of circ.
func segmentCrossingsFromCircle(c Crossings, circ Circle, from, to Point) Crossings {
	r := circ.Radius
	xmin := circ.Center.X - math.Abs(r)
	ymin := circ.Center.Y - math.Abs(r)
	ymax := circ.Center.Y + math.Abs(r)
	switch {
	case from.Y <= ymin && to.Y <= ymin,
		from.Y >= ymax && to.Y >= ymax,
		from.X <= xmin && to.X <= xmin:
		return c
	case from.X >= circ.Center.X+r && to.X >= circ.Center.X+r:
		return crossRightShadow(c, ymin, ymax, from, to)
	case circ.IntersectsLine(Line{from, to}):
		return Crossings{Intersects: true}
	}
	c = c.Add(segmentCrossingsFromPoint(Pt(circ.Center.X, ymin), from, to))
	return c.Add(segmentCrossingsFromPoint(Pt(circ.Center.X, ymax), from, to))
}

// segmentCrossingsFromRect applies the edge from→to to the shadow of r,
// which must be normalized.
func segmentCrossingsFromRect(c Crossings, r Rect, from, to Point) Crossings {
	x0, y0, x1, y1 := from.X, from.Y, to.X, to.Y
	switch {
	case y0 >= r.Y1 && y1 >= r.Y1,
		y0 <= r.Y0 && y1 <= r.Y0,
		x0 <= r.X0 && x1 <= r.X0:
		return c
	case x0 >= r.X1 && x1 >= r.X1:
		return crossRightShadow(c, r.Y0, r.Y1, from, to)
	}

	inside := func(x, y float64) bool {
		return x > r.X0 && x < r.X1 && y > r.Y0 && y < r.Y1
	}
	if inside(x0, y0) || inside(x1, y1) {
		return Crossings{Intersects: true}
	}

	// X intercepts of the edge with the rectangle's horizontal sides.
	xi0 := x0
	if y0 < r.Y0 {
		xi0 += (r.Y0 - y0) * (x1 - x0) / (y1 - y0)
	} else if y0 > r.Y1 {
		xi0 += (r.Y1 - y0) * (x1 - x0) / (y1 - y0)
	}
	xi1 := x1
	if y1 < r.Y0 {
		xi1 += (r.Y0 - y1) * (x0 - x1) / (y0 - y1)
	} else if y1 > r.Y1 {
		xi1 += (r.Y1 - y1) * (x0 - x1) / (y0 - y1)
	}
	if xi0 <= r.X0 && xi1 <= r.X0 {
		return c
	}
	if xi0 >= r.X1 && xi1 >= r.X1 {
		return crossRightShadow(c, r.Y0, r.Y1, from, to)
	}
	return Crossings{Intersects: true}
}

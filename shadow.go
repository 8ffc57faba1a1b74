package pathgeom

import (
	"log/slog"
)

// PathShadow tests segments against another path, cheaply rejecting those
// that miss the path's bounding box.
//
// A PathShadow captures the path's bounding box when it is created and must
// be rebuilt if the path changes.
type PathShadow struct {
	path   *Path
	bounds Rect
	ok     bool
}

// NewPathShadow returns the shadow of p.
func NewPathShadow(p *Path) *PathShadow {
	bounds, ok := p.Bounds()
	return &PathShadow{path: p, bounds: bounds, ok: ok}
}

// Crossings adds the crossings of the segment from→to with the shadow to
// initial.
//
// Segments that don't touch the bounding box are classified against the box
// alone. Otherwise every edge of the path is examined: an edge crossing the
// segment reports an intersection, as does a segment lying inside the path.
// In all remaining cases the segment is counted once for each of the box's
// top and bottom sides that it passes to the right of the path.
func (s *PathShadow) Crossings(initial Crossings, from, to Point) Crossings {
	if !s.ok {
		return initial
	}
	c := segmentCrossingsFromRect(initial, s.bounds, from, to)
	if !c.Intersects {
		return c
	}

	Logger().Debug("shadow: detailed pass",
		slog.Any("from", from),
		slog.Any("to", to))
	d := shadowData{
		bounds: s.bounds,
		seg:    Line{from, to},
		x4ymin: s.bounds.X0,
		x4ymax: s.bounds.X0,
	}
	if err := d.walk(s.path.Iterator(), true); err != nil {
		panic(err)
	}

	if d.crossings.insideShape(s.path.rule) {
		return Crossings{Intersects: true}
	}
	inc := 0
	if d.hasX4ymin {
		inc++
	}
	if d.hasX4ymax {
		inc++
	}
	if from.Y < to.Y {
		return initial.Add(inc)
	}
	return initial.Add(-inc)
}

// shadowData accumulates the detailed pass of a PathShadow: the segment's
// crossings with the path's edges, and the rightmost points where those
// edges meet the top and bottom of the bounding box.
type shadowData struct {
	bounds    Rect
	seg       Line
	crossings Crossings

	x4ymin, x4ymax       float64
	hasX4ymin, hasX4ymax bool
}

func (d *shadowData) walk(it PathIterator, top bool) error {
	el, ok := it.Next()
	if !ok {
		return nil
	}
	if el.Kind != MoveToKind {
		return ErrMissingMoveTo
	}
	mov, cur := el.To, el.To
	for !d.crossings.Intersects {
		el, ok := it.Next()
		if !ok {
			break
		}
		switch el.Kind {
		case MoveToKind:
			mov, cur = el.To, el.To
		case LineToKind:
			d.crossEdge(cur, el.To)
			cur = el.To
		case QuadToKind, CubicToKind:
			el.From = cur
			if err := d.walk(curveIterator(el), false); err != nil {
				return err
			}
			cur = el.To
		case ClosePathKind:
			if cur != mov {
				d.crossEdge(cur, mov)
			}
			if d.crossings != (Crossings{}) {
				return nil
			}
			cur = mov
		}
	}
	if top && !d.crossings.Intersects && cur != mov {
		d.crossings.Count = 0
	}
	return nil
}

func (d *shadowData) setYMin(x, y float64) {
	if y <= d.bounds.Y0 && x > d.x4ymin {
		d.x4ymin = x
		d.hasX4ymin = true
	}
}

func (d *shadowData) setYMax(x, y float64) {
	if y >= d.bounds.Y1 && x > d.x4ymax {
		d.x4ymax = x
		d.hasX4ymax = true
	}
}

// crossEdge classifies the tested segment against the path edge e0→e1.
func (d *shadowData) crossEdge(e0, e1 Point) {
	ymin, ymax := min(e0.Y, e1.Y), max(e0.Y, e1.Y)
	xmin, xmax := min(e0.X, e1.X), max(e0.X, e1.X)
	s0, s1 := d.seg.P0, d.seg.P1

	switch {
	case s0.Y < ymin && s1.Y < ymin,
		s0.Y > ymax && s1.Y > ymax,
		s0.X < xmin && s1.X < xmin:
		return
	case s0.X >= xmax && s1.X >= xmax:
		// The segment passes to the right of the edge.
		alpha := (s1.X - s0.X) / (s1.Y - s0.Y)
		if s0.Y < s1.Y {
			if s0.Y <= ymin {
				d.setYMin(s0.X+(ymin-s0.Y)*alpha, ymin)
				d.crossings = d.crossings.Add(1)
			}
			if s1.Y >= ymax {
				d.setYMax(s0.X+(ymax-s0.Y)*alpha, ymax)
				d.crossings = d.crossings.Add(1)
			}
		} else {
			if s1.Y <= ymin {
				d.setYMin(s0.X+(ymin-s0.Y)*alpha, ymin)
				d.crossings = d.crossings.Add(-1)
			}
			if s0.Y >= ymax {
				d.setYMax(s0.X+(ymax-s0.Y)*alpha, ymax)
				d.crossings = d.crossings.Add(-1)
			}
		}
		return
	case intersectsSegmentsWithoutEnds(e0, e1, s0, s1):
		d.crossings = Crossings{Intersects: true}
		return
	}

	up := e0.Y <= e1.Y
	lo, hi := e0, e1
	if !up {
		lo, hi = e1, e0
	}
	if sideOfLine(lo, hi, s0) > 0 || sideOfLine(lo, hi, s1) > 0 {
		d.crossHorizontal(hi.X, ymax, up)
		d.crossHorizontal(lo.X, ymin, !up)
	}
}

// crossHorizontal counts the tested segment if it crosses the horizontal
// ray starting at (x, y) and going right.
func (d *shadowData) crossHorizontal(x, y float64, isMax bool) {
	s0, s1 := d.seg.P0, d.seg.P1
	switch {
	case y < s0.Y && y < s1.Y,
		y > s0.Y && y > s1.Y,
		x > s0.X && x > s1.X:
		return
	}
	xi := s0.X + (y-s0.Y)*(s1.X-s0.X)/(s1.Y-s0.Y)
	if x > xi {
		return
	}
	if isMax {
		d.setYMax(xi, y)
	} else {
		d.setYMin(xi, y)
	}
	if s0.Y < s1.Y {
		d.crossings = d.crossings.Add(1)
	} else {
		d.crossings = d.crossings.Add(-1)
	}
}

package pathgeom

import (
	"fmt"
)

// Crossings is the result of casting a ray through a path.
//
// Count is the signed number of times the path's boundary crosses the
// rightward shadow of the reference primitive: +1 going up, −1 going down.
// Intersects reports that the boundary touches the primitive itself, in
// which case Count is meaningless and the computation stopped early.
type Crossings struct {
	Count      int
	Intersects bool
}

// Add returns c with n added to its count. Once c intersects, it stays that
// way.
func (c Crossings) Add(n int) Crossings {
	if c.Intersects {
		return c
	}
	c.Count += n
	return c
}

func (c Crossings) String() string {
	if c.Intersects {
		return "intersects"
	}
	return fmt.Sprint(c.Count)
}

// insideShape reports whether c indicates an overlap between the path and a
// primitive with area, for a path using the given winding rule.
func (c Crossings) insideShape(rule WindingRule) bool {
	return c.Intersects || c.Count&rule.shapeMask() != 0
}

// CrossingOptions controls how the end of an open subpath is treated.
type CrossingOptions struct {
	// Closeable makes an open path behave as if it ended with a ClosePath.
	Closeable bool
	// OnlyIntersectWhenOpen discards the count of a path that is open at
	// the end of the iteration, so that only an intersection is reported.
	// It has no effect if Closeable is set.
	OnlyIntersectWhenOpen bool
}

// crossingWalker runs the ray-casting loop shared by all reference
// primitives.
type crossingWalker struct {
	op   string
	edge func(c Crossings, from, to Point) Crossings
	// touches reports a path vertex that lies on the reference primitive.
	touches func(pt Point) bool
	// stopOnClose ends the walk at the first ClosePath leaving a non-zero
	// count.
	stopOnClose bool
}

func (w *crossingWalker) walk(c Crossings, it PathIterator, opts CrossingOptions) (Crossings, error) {
	el, ok := it.Next()
	if !ok {
		return c, nil
	}
	if el.Kind != MoveToKind {
		return c, fmt.Errorf("crossings from %s: %w", w.op, ErrMissingMoveTo)
	}
	touches := func(pt Point) bool {
		return w.touches != nil && w.touches(pt)
	}

	mov, cur := el.To, el.To
	for !c.Intersects {
		el, ok := it.Next()
		if !ok {
			break
		}
		switch el.Kind {
		case MoveToKind:
			mov, cur = el.To, el.To
		case LineToKind:
			if touches(el.To) {
				return Crossings{Intersects: true}, nil
			}
			c = w.edge(c, cur, el.To)
			cur = el.To
		case QuadToKind, CubicToKind:
			if touches(el.To) {
				return Crossings{Intersects: true}, nil
			}
			el.From = cur
			var err error
			c, err = w.walk(c, curveIterator(el), CrossingOptions{})
			if err != nil {
				return c, err
			}
			cur = el.To
		case ClosePathKind:
			if cur != mov {
				if touches(mov) {
					return Crossings{Intersects: true}, nil
				}
				c = w.edge(c, cur, mov)
			}
			cur = mov
			if w.stopOnClose && (c.Intersects || c.Count != 0) {
				return c, nil
			}
		default:
			panic(fmt.Sprintf("invalid path element kind %d", el.Kind))
		}
	}
	if c.Intersects {
		return c, nil
	}

	if cur != mov {
		switch {
		case opts.Closeable:
			if touches(mov) {
				return Crossings{Intersects: true}, nil
			}
			c = w.edge(c, cur, mov)
		case opts.OnlyIntersectWhenOpen:
			c.Count = 0
		}
	}
	return c, nil
}

// CrossingsFromPoint casts a ray from p to the right and counts the path
// edges crossing it. A path vertex equal to p reports an intersection.
func CrossingsFromPoint(it PathIterator, p Point, opts CrossingOptions) (Crossings, error) {
	w := crossingWalker{
		op: "point",
		edge: func(c Crossings, from, to Point) Crossings {
			return c.Add(segmentCrossingsFromPoint(p, from, to))
		},
		touches: func(pt Point) bool { return pt == p },
	}
	return w.walk(Crossings{}, it, opts)
}

// CrossingsFromRect counts the path edges crossing the rightward shadow of
// r, stopping as soon as an edge enters r. An empty rectangle has no
// crossings.
func CrossingsFromRect(it PathIterator, r Rect, opts CrossingOptions) (Crossings, error) {
	if r.IsEmpty() {
		return Crossings{}, nil
	}
	w := crossingWalker{
		op: "rect",
		edge: func(c Crossings, from, to Point) Crossings {
			return segmentCrossingsFromRect(c, r, from, to)
		},
		stopOnClose: true,
	}
	return w.walk(Crossings{}, it, opts)
}

// CrossingsFromCircle counts the path edges crossing the rightward shadow of
// circ.
func CrossingsFromCircle(it PathIterator, circ Circle, opts CrossingOptions) (Crossings, error) {
	w := crossingWalker{
		op: "circle",
		edge: func(c Crossings, from, to Point) Crossings {
			return segmentCrossingsFromCircle(c, circ, from, to)
		},
	}
	return w.walk(Crossings{}, it, opts)
}

// CrossingsFromEllipse counts the path edges crossing the rightward shadow
// of e.
func CrossingsFromEllipse(it PathIterator, e Ellipse, opts CrossingOptions) (Crossings, error) {
	w := crossingWalker{
		op: "ellipse",
		edge: func(c Crossings, from, to Point) Crossings {
			return segmentCrossingsFromEllipse(c, e, from, to)
		},
	}
	return w.walk(Crossings{}, it, opts)
}

// CrossingsFromSegment counts the path edges crossing the rightward shadow
// of l. Unless closeable is set, an open path only ever reports an
// intersection.
func CrossingsFromSegment(it PathIterator, l Line, closeable bool) (Crossings, error) {
	w := crossingWalker{
		op: "segment",
		edge: func(c Crossings, from, to Point) Crossings {
			return segmentCrossingsFromSegment(c, l, from, to)
		},
		stopOnClose: true,
	}
	return w.walk(Crossings{}, it, CrossingOptions{Closeable: closeable, OnlyIntersectWhenOpen: true})
}

// CrossingsFromPath counts the edges of the path produced by it crossing the
// shadow of another path.
func CrossingsFromPath(it PathIterator, shadow *PathShadow, opts CrossingOptions) (Crossings, error) {
	w := crossingWalker{
		op:          "path",
		edge:        shadow.Crossings,
		stopOnClose: true,
	}
	return w.walk(Crossings{}, it, opts)
}

// Contains reports whether pt lies inside the path according to its winding
// rule. Curves are flattened at [DefaultFlatness].
func (p *Path) Contains(pt Point) bool {
	c := must(CrossingsFromPoint(p.FlatIterator(DefaultFlatness), pt, CrossingOptions{OnlyIntersectWhenOpen: true}))
	if c.Intersects {
		return p.rule == NonZero
	}
	return c.Count&p.rule.pointMask() != 0
}

// ContainsRect reports whether r lies entirely inside the path. An open
// path is treated as if it were closed. Rectangles without area are never
// contained.
func (p *Path) ContainsRect(r Rect) bool {
	if r.Width() <= 0 || r.Height() <= 0 {
		return false
	}
	c := must(CrossingsFromRect(p.FlatIterator(DefaultFlatness), r, CrossingOptions{Closeable: true}))
	return !c.Intersects && c.Count&p.rule.shapeMask() != 0
}

var intersectOpts = CrossingOptions{OnlyIntersectWhenOpen: true}

// IntersectsRect reports whether the path and r overlap.
func (p *Path) IntersectsRect(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	return must(CrossingsFromRect(p.FlatIterator(DefaultFlatness), r, intersectOpts)).insideShape(p.rule)
}

// IntersectsCircle reports whether the path and c overlap.
func (p *Path) IntersectsCircle(c Circle) bool {
	return must(CrossingsFromCircle(p.FlatIterator(DefaultFlatness), c, intersectOpts)).insideShape(p.rule)
}

// IntersectsEllipse reports whether the path and e overlap.
func (p *Path) IntersectsEllipse(e Ellipse) bool {
	return must(CrossingsFromEllipse(p.FlatIterator(DefaultFlatness), e, intersectOpts)).insideShape(p.rule)
}

// IntersectsLine reports whether the path and the segment l overlap.
func (p *Path) IntersectsLine(l Line) bool {
	return must(CrossingsFromSegment(p.FlatIterator(DefaultFlatness), l, false)).insideShape(p.rule)
}

// IntersectsPath reports whether two paths overlap. Each path is flattened
// and tested against the shadow of the other, using the winding rule of the
// shadowed path, so the relation is symmetric and a path enclosing the other
// overlaps it.
func (p *Path) IntersectsPath(o *Path) bool {
	return must(p.IntersectsIterator(o.FlatIterator(DefaultFlatness))) ||
		must(o.IntersectsIterator(p.FlatIterator(DefaultFlatness)))
}

// IntersectsIterator reports whether the path produced by it overlaps p. It
// returns an error wrapping [ErrMissingMoveTo] if it doesn't start with a
// MoveTo.
func (p *Path) IntersectsIterator(it PathIterator) (bool, error) {
	c, err := CrossingsFromPath(it, NewPathShadow(p), intersectOpts)
	if err != nil {
		return false, err
	}
	return c.insideShape(p.rule), nil
}

// IntersectsOrientedRect reports whether the path and o overlap.
func (p *Path) IntersectsOrientedRect(o OrientedRect) bool {
	return must(o.IntersectsIterator(p.FlatIterator(DefaultFlatness)))
}

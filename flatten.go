package pathgeom

import (
	"fmt"
	"log/slog"
)

// FlatteningIterator wraps another iterator and replaces its curves with
// lines.
//
// Curves are subdivided at their midpoints until the control points lie
// within the flatness of the chord, or until the recursion limit is reached,
// in which case the current piece is accepted as is. The pieces are kept on
// a small stack, the right half of each subdivision in place and the left
// half in front of it, and emitted depth-first from left to right.
type FlatteningIterator struct {
	src     PathIterator
	sqFlat  float64
	limit   int
	hold    []float64
	levels  []int
	srcKind ElementKind

	holdIndex  int
	holdEnd    int
	levelIndex int

	cur      Point
	move     Point
	lastNext Point
	done     bool
}

var _ PathIterator = (*FlatteningIterator)(nil)

// NewFlatteningIterator returns an iterator producing the elements of src
// with every quadratic and cubic Bézier replaced by lines. No point of a
// curve's control polygon lies farther than flatness from the line standing
// in for it, unless subdivision hit limit levels of recursion.
//
// It panics if flatness or limit is negative.
func NewFlatteningIterator(src PathIterator, flatness float64, limit int) *FlatteningIterator {
	if flatness < 0 {
		panic(fmt.Sprintf("flatness must be non-negative, got %g", flatness))
	}
	if limit < 0 {
		panic(fmt.Sprintf("flattening limit must be non-negative, got %d", limit))
	}
	it := &FlatteningIterator{
		src:    src,
		sqFlat: flatness * flatness,
		limit:  limit,
		hold:   make([]float64, 14),
		levels: make([]int, limit+1),
	}
	it.searchNext()
	return it
}

func (it *FlatteningIterator) WindingRule() WindingRule { return it.src.WindingRule() }

// IsPolyline always reports true.
func (it *FlatteningIterator) IsPolyline() bool { return true }

func (it *FlatteningIterator) Remove() error { return errRemoveUnsupported }

func (it *FlatteningIterator) holdPoint(i int) Point {
	return Pt(it.hold[i], it.hold[i+1])
}

func (it *FlatteningIterator) Next() (PathElement, bool) {
	if it.done {
		return PathElement{}, false
	}
	var el PathElement
	switch it.srcKind {
	case MoveToKind:
		pt := it.holdPoint(it.holdIndex)
		el = MoveTo(pt)
		it.lastNext = pt
	case ClosePathKind:
		el = ClosePath(it.lastNext, it.move)
		it.lastNext = it.move
	default:
		pt := it.holdPoint(it.holdIndex)
		el = LineTo(it.lastNext, pt)
		it.lastNext = pt
	}
	it.searchNext()
	return el, true
}

// ensureHoldCapacity makes room for want more values in front of holdIndex,
// moving the live part of the stack to the end of a larger buffer.
func (it *FlatteningIterator) ensureHoldCapacity(want int) {
	if it.holdIndex-want >= 0 {
		return
	}
	hold := make([]float64, len(it.hold)+growSize)
	copy(hold[it.holdIndex+growSize:], it.hold[it.holdIndex:])
	it.hold = hold
	it.holdIndex += growSize
	it.holdEnd += growSize
}

// load fetches the next source element into the front of the hold buffer.
func (it *FlatteningIterator) load() bool {
	el, ok := it.src.Next()
	if !ok {
		return false
	}
	it.srcKind = el.Kind
	switch el.Kind {
	case MoveToKind, LineToKind:
		it.hold[0], it.hold[1] = el.To.X, el.To.Y
	case QuadToKind:
		it.hold[0], it.hold[1] = el.Ctrl1.X, el.Ctrl1.Y
		it.hold[2], it.hold[3] = el.To.X, el.To.Y
	case CubicToKind:
		it.hold[0], it.hold[1] = el.Ctrl1.X, el.Ctrl1.Y
		it.hold[2], it.hold[3] = el.Ctrl2.X, el.Ctrl2.Y
		it.hold[4], it.hold[5] = el.To.X, el.To.Y
	case ClosePathKind:
	default:
		panic(fmt.Sprintf("invalid path element kind %d", el.Kind))
	}
	it.levelIndex = 0
	it.levels[0] = 0
	return true
}

func (it *FlatteningIterator) searchNext() {
	fresh := it.holdIndex >= it.holdEnd
	if fresh && !it.load() {
		it.done = true
		return
	}

	switch it.srcKind {
	case MoveToKind, LineToKind:
		it.cur = it.holdPoint(0)
		if it.srcKind == MoveToKind {
			it.move = it.cur
		}
		it.holdIndex = 0
		it.holdEnd = 0
	case ClosePathKind:
		it.cur = it.move
		it.holdIndex = 0
		it.holdEnd = 0
	case QuadToKind:
		if fresh {
			n := len(it.hold)
			it.holdIndex = n - 6
			it.holdEnd = n - 2
			h := it.hold
			ctrl, to := it.holdPoint(0), it.holdPoint(2)
			h[n-6], h[n-5] = it.cur.X, it.cur.Y
			h[n-4], h[n-3] = ctrl.X, ctrl.Y
			h[n-2], h[n-1] = to.X, to.Y
			it.cur = to
		}
		it.subdivide(4)
	case CubicToKind:
		if fresh {
			n := len(it.hold)
			it.holdIndex = n - 8
			it.holdEnd = n - 2
			h := it.hold
			c1, c2, to := it.holdPoint(0), it.holdPoint(2), it.holdPoint(4)
			h[n-8], h[n-7] = it.cur.X, it.cur.Y
			h[n-6], h[n-5] = c1.X, c1.Y
			h[n-4], h[n-3] = c2.X, c2.Y
			h[n-2], h[n-1] = to.X, to.Y
			it.cur = to
		}
		it.subdivide(6)
	}
}

// subdivide splits the curve on top of the stack until it is flat enough,
// then pops it so that holdIndex addresses its end point. step is the
// number of values a curve adds to the stack when split: 4 for quadratics
// and 6 for cubics.
func (it *FlatteningIterator) subdivide(step int) {
	level := it.levels[it.levelIndex]
	for level < it.limit {
		if it.flatness() < it.sqFlat {
			break
		}
		it.ensureHoldCapacity(step)
		it.split(step)
		it.holdIndex -= step
		level++
		it.levels[it.levelIndex] = level
		it.levelIndex++
		it.levels[it.levelIndex] = level
	}
	if level >= it.limit && it.limit > 0 && it.flatness() >= it.sqFlat {
		Logger().Debug("flatten: depth limit reached",
			slog.Int("limit", it.limit),
			slog.Float64("flatness", it.flatness()))
	}
	it.holdIndex += step
	it.levelIndex--
}

func (it *FlatteningIterator) quad() QuadBez {
	i := it.holdIndex
	return QuadBez{it.holdPoint(i), it.holdPoint(i + 2), it.holdPoint(i + 4)}
}

func (it *FlatteningIterator) cubic() CubicBez {
	i := it.holdIndex
	return CubicBez{it.holdPoint(i), it.holdPoint(i + 2), it.holdPoint(i + 4), it.holdPoint(i + 6)}
}

func (it *FlatteningIterator) flatness() float64 {
	if it.srcKind == QuadToKind {
		return it.quad().flatness()
	}
	return it.cubic().flatness()
}

// split replaces the curve at holdIndex with its two halves: the right half
// starting at holdIndex, the left half ending there.
func (it *FlatteningIterator) split(step int) {
	put := func(i int, pts ...Point) {
		for _, pt := range pts {
			it.hold[i], it.hold[i+1] = pt.X, pt.Y
			i += 2
		}
	}
	left := it.holdIndex - step
	if it.srcKind == QuadToKind {
		l, r := it.quad().Subdivide()
		put(left, l.P0, l.P1, l.P2)
		put(it.holdIndex+2, r.P1, r.P2)
		return
	}
	l, r := it.cubic().Subdivide()
	put(left, l.P0, l.P1, l.P2, l.P3)
	put(it.holdIndex+2, r.P1, r.P2, r.P3)
}

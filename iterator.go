package pathgeom

import (
	"iter"
)

// PathIterator produces the elements of a path one at a time.
//
// Iterators are single-pass and not safe for concurrent use. To traverse a
// path again, request a new iterator from it. Mutating a path while one of
// its iterators is in use has undefined results.
type PathIterator interface {
	// Next returns the next element, or false once the sequence is exhausted.
	Next() (PathElement, bool)
	// WindingRule returns the winding rule of the underlying path.
	WindingRule() WindingRule
	// IsPolyline reports whether the iterator only produces MoveTo, LineTo
	// and ClosePath elements.
	IsPolyline() bool
	// Remove is not supported by any iterator in this package and always
	// returns an error wrapping errors.ErrUnsupported.
	Remove() error
}

// Elements adapts a PathIterator to a sequence. The sequence consumes the
// iterator and can be ranged over only once.
func Elements(it PathIterator) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for {
			el, ok := it.Next()
			if !ok || !yield(el) {
				return
			}
		}
	}
}

// pathIterator replays the commands stored in a Path, optionally passing
// every point through an affine transform.
type pathIterator struct {
	path        *Path
	aff         Affine
	transformed bool

	kindIdx  int
	coordIdx int
	move     Point
	last     Point
}

// Iterator returns an iterator over the commands of p.
func (p *Path) Iterator() PathIterator {
	return &pathIterator{path: p}
}

// TransformedIterator returns an iterator over the commands of p with aff
// applied to every point.
func (p *Path) TransformedIterator(aff Affine) PathIterator {
	if aff == Identity {
		return p.Iterator()
	}
	return &pathIterator{path: p, aff: aff, transformed: true}
}

// PathIterator is like [Path.TransformedIterator].
func (p *Path) PathIterator(aff Affine) PathIterator {
	return p.TransformedIterator(aff)
}

// FlatIterator returns an iterator over p with curves replaced by lines that
// deviate from them by less than flatness.
func (p *Path) FlatIterator(flatness float64) PathIterator {
	return NewFlatteningIterator(p.Iterator(), flatness, DefaultFlatteningLimit)
}

// TransformedFlatIterator is like FlatIterator, flattening the path after
// applying aff.
func (p *Path) TransformedFlatIterator(aff Affine, flatness float64) PathIterator {
	return NewFlatteningIterator(p.TransformedIterator(aff), flatness, DefaultFlatteningLimit)
}

func (it *pathIterator) point() Point {
	c := it.path.coords
	pt := Pt(c[it.coordIdx], c[it.coordIdx+1])
	it.coordIdx += 2
	if it.transformed {
		pt = pt.Transform(it.aff)
	}
	return pt
}

func (it *pathIterator) Next() (PathElement, bool) {
	if it.kindIdx >= len(it.path.kinds) {
		return PathElement{}, false
	}
	k := it.path.kinds[it.kindIdx]
	it.kindIdx++
	var el PathElement
	switch k {
	case MoveToKind:
		to := it.point()
		it.move = to
		el = MoveTo(to)
	case LineToKind:
		el = LineTo(it.last, it.point())
	case QuadToKind:
		ctrl := it.point()
		el = QuadTo(it.last, ctrl, it.point())
	case CubicToKind:
		c1 := it.point()
		c2 := it.point()
		el = CubicTo(it.last, c1, c2, it.point())
	case ClosePathKind:
		el = ClosePath(it.last, it.move)
	default:
		panic("invalid path element kind")
	}
	it.last = el.To
	return el, true
}

func (it *pathIterator) WindingRule() WindingRule { return it.path.rule }
func (it *pathIterator) IsPolyline() bool         { return it.path.IsPolyline() }
func (it *pathIterator) Remove() error            { return errRemoveUnsupported }

// sliceIterator produces a fixed list of elements.
type sliceIterator struct {
	rule WindingRule
	els  []PathElement
}

// ElementIterator returns an iterator producing els with the given winding
// rule. The elements are not validated; a sequence that doesn't start with a
// MoveTo is rejected by the functions consuming it.
func ElementIterator(rule WindingRule, els ...PathElement) PathIterator {
	return &sliceIterator{rule: rule, els: els}
}

func (it *sliceIterator) Next() (PathElement, bool) {
	if len(it.els) == 0 {
		return PathElement{}, false
	}
	el := it.els[0]
	it.els = it.els[1:]
	return el, true
}

func (it *sliceIterator) WindingRule() WindingRule { return it.rule }

func (it *sliceIterator) IsPolyline() bool {
	for _, el := range it.els {
		if el.Kind == QuadToKind || el.Kind == CubicToKind {
			return false
		}
	}
	return true
}

func (it *sliceIterator) Remove() error { return errRemoveUnsupported }

// transformIterator applies an affine transform to the elements of another
// iterator.
type transformIterator struct {
	src PathIterator
	aff Affine
}

// TransformIterator returns an iterator producing the elements of src with
// aff applied to every point.
func TransformIterator(src PathIterator, aff Affine) PathIterator {
	return &transformIterator{src: src, aff: aff}
}

func (it *transformIterator) Next() (PathElement, bool) {
	el, ok := it.src.Next()
	if !ok {
		return PathElement{}, false
	}
	return el.Transform(it.aff), true
}

func (it *transformIterator) WindingRule() WindingRule { return it.src.WindingRule() }
func (it *transformIterator) IsPolyline() bool         { return it.src.IsPolyline() }
func (it *transformIterator) Remove() error            { return errRemoveUnsupported }

// curveIterator flattens a single curve element at DefaultFlatness, as a
// subpath starting at the element's From point.
func curveIterator(el PathElement) PathIterator {
	return NewFlatteningIterator(
		ElementIterator(NonZero, MoveTo(el.From), el),
		DefaultFlatness,
		DefaultFlatteningLimit,
	)
}

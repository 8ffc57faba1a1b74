package pathgeom

import (
	"fmt"
)

// Shape is one of the closed set of geometric shapes this package can test
// for intersection: [Circle], [Ellipse], [Rect], [Line], [OrientedRect] and
// [*Path].
type Shape interface {
	// BoundingBox returns the smallest axis-aligned rectangle enclosing the
	// shape.
	BoundingBox() Rect

	// Contains reports whether pt lies inside the shape.
	Contains(pt Point) bool

	// PathIterator returns an iterator over the shape's outline, with aff
	// applied to every point. Circles and ellipses are approximated by four
	// cubic Béziers.
	PathIterator(aff Affine) PathIterator

	isShape()
}

func shapeRank(s Shape) int {
	switch s.(type) {
	case Circle:
		return 0
	case Ellipse:
		return 1
	case Rect:
		return 2
	case Line:
		return 3
	case OrientedRect:
		return 4
	case *Path:
		return 5
	default:
		panic(fmt.Sprintf("unsupported shape %T", s))
	}
}

// Intersects reports whether two shapes overlap. The relation is symmetric.
//
// Pairs of analytic shapes use closed-form tests. Pairs involving a path
// cast rays through the path, with curves flattened at [DefaultFlatness], and
// honor the path's winding rule; two paths are compared through the
// [PathShadow] of each.
func Intersects(a, b Shape) bool {
	if shapeRank(a) > shapeRank(b) {
		a, b = b, a
	}
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return a.Intersects(b)
		case Ellipse:
			return a.IntersectsEllipse(b)
		case Rect:
			return a.IntersectsRect(b)
		case Line:
			return a.IntersectsLine(b)
		case OrientedRect:
			return b.IntersectsCircle(a)
		case *Path:
			return b.IntersectsCircle(a)
		}
	case Ellipse:
		switch b := b.(type) {
		case Ellipse:
			return a.Intersects(b)
		case Rect:
			return a.IntersectsRect(b)
		case Line:
			return a.IntersectsLine(b)
		case OrientedRect:
			return b.IntersectsEllipse(a)
		case *Path:
			return b.IntersectsEllipse(a)
		}
	case Rect:
		switch b := b.(type) {
		case Rect:
			return a.Intersects(b)
		case Line:
			return a.IntersectsLine(b)
		case OrientedRect:
			return b.IntersectsRect(a)
		case *Path:
			return b.IntersectsRect(a)
		}
	case Line:
		switch b := b.(type) {
		case Line:
			return a.Intersects(b)
		case OrientedRect:
			return b.IntersectsLine(a)
		case *Path:
			return b.IntersectsLine(a)
		}
	case OrientedRect:
		switch b := b.(type) {
		case OrientedRect:
			return a.Intersects(b)
		case *Path:
			return b.IntersectsOrientedRect(a)
		}
	case *Path:
		return a.IntersectsPath(b.(*Path))
	}
	panic("unreachable")
}

package pathgeom

import (
	"fmt"
)

type ElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind ElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier from the current location.
	QuadToKind
	// Draw a cubic Bézier from the current location.
	CubicToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

func (k ElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is one command of a path, together with the point it starts
// from.
//
// From is the current point before the command runs and To the point after.
// QuadTo uses Ctrl1; CubicTo uses Ctrl1 and Ctrl2. For ClosePath, To is the
// start of the subpath. MoveTo only sets To.
type PathElement struct {
	Kind  ElementKind
	From  Point
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

func MoveTo(to Point) PathElement {
	return PathElement{Kind: MoveToKind, To: to}
}

func LineTo(from, to Point) PathElement {
	return PathElement{Kind: LineToKind, From: from, To: to}
}

func QuadTo(from, ctrl, to Point) PathElement {
	return PathElement{Kind: QuadToKind, From: from, Ctrl1: ctrl, To: to}
}

func CubicTo(from, ctrl1, ctrl2, to Point) PathElement {
	return PathElement{Kind: CubicToKind, From: from, Ctrl1: ctrl1, Ctrl2: ctrl2, To: to}
}

func ClosePath(from, to Point) PathElement {
	return PathElement{Kind: ClosePathKind, From: from, To: to}
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.To)
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s, %s)", el.From, el.Ctrl1, el.To)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s, %s)", el.From, el.Ctrl1, el.Ctrl2, el.To)
	default:
		return fmt.Sprintf("%s(%s, %s)", el.Kind, el.From, el.To)
	}
}

// IsDrawable reports whether the element draws something visible: MoveTo
// never does, and the other kinds don't when all their points coincide.
func (el PathElement) IsDrawable() bool {
	switch el.Kind {
	case LineToKind, ClosePathKind:
		return el.From != el.To
	case QuadToKind:
		return el.From != el.Ctrl1 || el.Ctrl1 != el.To
	case CubicToKind:
		return el.From != el.Ctrl1 || el.Ctrl1 != el.Ctrl2 || el.Ctrl2 != el.To
	default:
		return false
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.To.Transform(aff))
	case LineToKind:
		return LineTo(el.From.Transform(aff), el.To.Transform(aff))
	case QuadToKind:
		return QuadTo(el.From.Transform(aff), el.Ctrl1.Transform(aff), el.To.Transform(aff))
	case CubicToKind:
		return CubicTo(el.From.Transform(aff), el.Ctrl1.Transform(aff), el.Ctrl2.Transform(aff), el.To.Transform(aff))
	case ClosePathKind:
		return ClosePath(el.From.Transform(aff), el.To.Transform(aff))
	default:
		panic(fmt.Sprintf("invalid path element kind %d", el.Kind))
	}
}

// Line returns the segment from From to To.
func (el PathElement) Line() Line { return Line{el.From, el.To} }

// Quad returns the element as a quadratic Bézier.
func (el PathElement) Quad() QuadBez { return QuadBez{el.From, el.Ctrl1, el.To} }

// Cubic returns the element as a cubic Bézier.
func (el PathElement) Cubic() CubicBez { return CubicBez{el.From, el.Ctrl1, el.Ctrl2, el.To} }

func transformElements(els []PathElement, aff Affine) []PathElement {
	if aff == Identity {
		return els
	}
	for i, el := range els {
		els[i] = el.Transform(aff)
	}
	return els
}

// WindingRule selects how crossing counts translate to insideness.
type WindingRule int

const (
	// NonZero treats points with a non-zero crossing count as inside.
	NonZero WindingRule = iota
	// EvenOdd treats points with an odd crossing count as inside.
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(r))
	}
}

// pointMask is the mask applied to the crossing count of a point.
func (r WindingRule) pointMask() int {
	if r == NonZero {
		return -1
	}
	return 1
}

// shapeMask is the mask applied to the crossing count of a shape. Every
// horizontal edge of the shape's box contributes, so an enclosed shape
// crosses twice per enclosing edge.
func (r WindingRule) shapeMask() int {
	if r == NonZero {
		return -1
	}
	return 2
}

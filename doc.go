// Package pathgeom provides 2D paths and the geometric queries needed to
// work with them: point containment, shape intersection and curve
// flattening.
//
// # Paths
//
// A [Path] stores a sequence of "move to", "line to", "quadratic Bézier to",
// "cubic Bézier to" and "close path" commands together with a [WindingRule].
// Paths are built incrementally with [Path.MoveTo], [Path.LineTo],
// [Path.QuadTo], [Path.CubicTo] and [Path.ClosePath], and can be edited in
// place. Every path starts with a MoveTo; drawing commands issued before one
// panic with [ErrMissingMoveTo].
//
// Paths can also be read from and written as SVG path data, see
// [ParseSVGPath] and [Path.WriteSVG].
//
// # Iterators
//
// A [PathIterator] produces the elements of a path one at a time. Each
// [PathElement] carries the point it starts from as well as its end and
// control points. [Path.Iterator] replays a path as stored,
// [Path.TransformedIterator] applies an [Affine] transform on the fly, and
// [NewFlatteningIterator] replaces curves with line segments that stay within
// a given flatness of the curve. [Elements] adapts any iterator to an
// iter.Seq.
//
// Iterators are single-pass and hold cursors into their path. Request a new
// iterator for every traversal and don't modify a path while iterating it.
//
// # Crossings
//
// Containment and intersection are decided by casting a horizontal ray to
// the right of a reference primitive and counting, with sign, the path edges
// that cross the primitive's "shadow". The functions [CrossingsFromPoint],
// [CrossingsFromRect], [CrossingsFromCircle], [CrossingsFromEllipse],
// [CrossingsFromSegment] and [CrossingsFromPath] return a [Crossings] value
// holding either that count or the fact that an edge touches the primitive
// itself. Two paths are compared through a [PathShadow], which only looks at
// individual edges once a segment reaches the other path's bounding box.
//
// # Shapes
//
// [Circle], [Ellipse], [Rect], [Line], [OrientedRect] and [*Path] form the
// closed set of [Shape] types. [Intersects] reports whether any two of them
// overlap, using closed-form tests where possible and the crossing engine
// otherwise.
//
// # Logging
//
// The package is silent by default. [SetLogger] installs a [log/slog]
// logger that receives debug records, for example when flattening gives up
// on a curve at the recursion limit.
package pathgeom

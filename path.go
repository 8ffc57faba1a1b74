package pathgeom

import (
	"iter"
	"log/slog"
	"math"
	"slices"
)

const (
	// DefaultFlatness is the flatness used whenever a path has to be
	// approximated by lines internally, e.g. for containment tests and
	// bounding boxes.
	DefaultFlatness = 0.1

	// DefaultFlatteningLimit is the default recursion depth of the curve
	// flattener.
	DefaultFlatteningLimit = 10

	// growSize is the number of slots by which path buffers grow.
	growSize = 24
)

type tristate uint8

const (
	unknown tristate = iota
	yes
	no
)

func tri(b bool) tristate {
	if b {
		return yes
	}
	return no
}

// Path is a mutable sequence of path commands, stored as two parallel
// buffers of element kinds and coordinates.
//
// A path's first command is always a MoveTo. The zero value is an empty path
// using the NonZero winding rule.
//
// Paths cache derived data such as their bounding boxes. Queries therefore
// modify the path and must not run concurrently with each other or with
// mutations. Use [Path.Clone] to share a path across goroutines.
type Path struct {
	rule   WindingRule
	kinds  []ElementKind
	coords []float64

	graphicalBounds *Rect
	logicalBounds   *Rect
	empty           tristate
	polyline        tristate
}

var _ Shape = (*Path)(nil)

// NewPath returns an empty path using the given winding rule.
func NewPath(rule WindingRule) *Path {
	return &Path{rule: rule}
}

// NewPathFromIterator returns a path holding the elements of it, using its
// winding rule.
func NewPathFromIterator(it PathIterator) *Path {
	p := NewPath(it.WindingRule())
	p.Add(it)
	return p
}

func (p *Path) WindingRule() WindingRule { return p.rule }

func (p *Path) SetWindingRule(r WindingRule) { p.rule = r }

func (p *Path) invalidateBounds() {
	p.graphicalBounds = nil
	p.logicalBounds = nil
}

func (p *Path) invalidate() {
	p.invalidateBounds()
	p.empty = unknown
	p.polyline = unknown
}

// ensureSlots makes room for one more command with n coordinates. Only a
// MoveTo may start a path.
func (p *Path) ensureSlots(needMove bool, n int) {
	if needMove && len(p.kinds) == 0 {
		panic(ErrMissingMoveTo)
	}
	if cap(p.kinds)-len(p.kinds) < 1 {
		p.kinds = slices.Grow(p.kinds, growSize)
	}
	if cap(p.coords)-len(p.coords) < n {
		p.coords = slices.Grow(p.coords, n+growSize)
	}
}

func (p *Path) lastKind() ElementKind {
	if len(p.kinds) == 0 {
		return 0
	}
	return p.kinds[len(p.kinds)-1]
}

// MoveTo starts a new subpath at pt. A MoveTo directly following another
// MoveTo replaces it.
func (p *Path) MoveTo(pt Point) {
	if p.lastKind() == MoveToKind {
		p.coords[len(p.coords)-2] = pt.X
		p.coords[len(p.coords)-1] = pt.Y
	} else {
		p.ensureSlots(false, 2)
		p.kinds = append(p.kinds, MoveToKind)
		p.coords = append(p.coords, pt.X, pt.Y)
	}
	p.invalidateBounds()
}

// LineTo adds a line from the current point to pt.
//
// It panics with [ErrMissingMoveTo] if the path is empty.
func (p *Path) LineTo(pt Point) {
	p.ensureSlots(true, 2)
	p.kinds = append(p.kinds, LineToKind)
	p.coords = append(p.coords, pt.X, pt.Y)
	p.empty = unknown
	p.invalidateBounds()
}

// QuadTo adds a quadratic Bézier from the current point to to.
//
// It panics with [ErrMissingMoveTo] if the path is empty.
func (p *Path) QuadTo(ctrl, to Point) {
	p.ensureSlots(true, 4)
	p.kinds = append(p.kinds, QuadToKind)
	p.coords = append(p.coords, ctrl.X, ctrl.Y, to.X, to.Y)
	p.empty = unknown
	p.polyline = no
	p.invalidateBounds()
}

// CubicTo adds a cubic Bézier from the current point to to.
//
// It panics with [ErrMissingMoveTo] if the path is empty.
func (p *Path) CubicTo(ctrl1, ctrl2, to Point) {
	p.ensureSlots(true, 6)
	p.kinds = append(p.kinds, CubicToKind)
	p.coords = append(p.coords, ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, to.X, to.Y)
	p.empty = unknown
	p.polyline = no
	p.invalidateBounds()
}

// ClosePath closes the current subpath. Closing a subpath that is already
// closed, or that consists of a lone MoveTo, does nothing.
//
// It panics with [ErrMissingMoveTo] if the path is empty.
func (p *Path) ClosePath() {
	switch p.lastKind() {
	case ClosePathKind, MoveToKind:
		Logger().Debug("path: ignoring redundant close", slog.String("last", p.lastKind().String()))
		return
	}
	p.ensureSlots(true, 0)
	p.kinds = append(p.kinds, ClosePathKind)
	p.empty = unknown
}

// coordCount returns the number of coordinates stored for a command.
func coordCount(k ElementKind) int {
	switch k {
	case MoveToKind, LineToKind:
		return 2
	case QuadToKind:
		return 4
	case CubicToKind:
		return 6
	case ClosePathKind:
		return 0
	default:
		panic("invalid path element kind")
	}
}

// RemoveLast removes the last command. It does nothing on an empty path.
func (p *Path) RemoveLast() {
	if len(p.kinds) == 0 {
		return
	}
	k := p.kinds[len(p.kinds)-1]
	p.coords = p.coords[:len(p.coords)-coordCount(k)]
	p.kinds = p.kinds[:len(p.kinds)-1]
	p.invalidate()
}

// SetLastPoint replaces the last stored point. It does nothing on an empty
// path.
func (p *Path) SetLastPoint(pt Point) {
	if len(p.coords) < 2 {
		return
	}
	p.coords[len(p.coords)-2] = pt.X
	p.coords[len(p.coords)-1] = pt.Y
	p.invalidateBounds()
	p.empty = unknown
}

// Clear removes all commands and resets the winding rule to NonZero. The
// buffers are retained for reuse.
func (p *Path) Clear() {
	p.kinds = p.kinds[:0]
	p.coords = p.coords[:0]
	p.rule = NonZero
	p.invalidate()
}

// Add appends the elements produced by it, replaying them as path commands.
func (p *Path) Add(it PathIterator) {
	for {
		el, ok := it.Next()
		if !ok {
			return
		}
		switch el.Kind {
		case MoveToKind:
			p.MoveTo(el.To)
		case LineToKind:
			p.LineTo(el.To)
		case QuadToKind:
			p.QuadTo(el.Ctrl1, el.To)
		case CubicToKind:
			p.CubicTo(el.Ctrl1, el.Ctrl2, el.To)
		case ClosePathKind:
			p.ClosePath()
		}
	}
}

// Set replaces the content of p with the outline of s.
func (p *Path) Set(s Shape) {
	if q, ok := s.(*Path); ok && q == p {
		return
	}
	it := s.PathIterator(Identity)
	p.Clear()
	p.Add(it)
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{
		rule:     p.rule,
		kinds:    slices.Clone(p.kinds),
		coords:   slices.Clone(p.coords),
		empty:    p.empty,
		polyline: p.polyline,
	}
}

// Equal reports whether p and o hold the same commands, coordinates and
// winding rule.
func (p *Path) Equal(o *Path) bool {
	return p.rule == o.rule &&
		slices.Equal(p.kinds, o.kinds) &&
		slices.Equal(p.coords, o.coords)
}

// Transform applies aff to every stored point.
func (p *Path) Transform(aff Affine) {
	for i := 0; i < len(p.coords); i += 2 {
		pt := Pt(p.coords[i], p.coords[i+1]).Transform(aff)
		p.coords[i], p.coords[i+1] = pt.X, pt.Y
	}
	p.invalidate()
}

// Translate moves every stored point by v. Cached bounds move along.
func (p *Path) Translate(v Vec2) {
	for i := 0; i < len(p.coords); i += 2 {
		p.coords[i] += v.X
		p.coords[i+1] += v.Y
	}
	if p.graphicalBounds != nil {
		r := p.graphicalBounds.Translate(v)
		p.graphicalBounds = &r
	}
	if p.logicalBounds != nil {
		r := p.logicalBounds.Translate(v)
		p.logicalBounds = &r
	}
}

// NumElements returns the number of commands.
func (p *Path) NumElements() int { return len(p.kinds) }

// NumPoints returns the number of stored points, control points included.
func (p *Path) NumPoints() int { return len(p.coords) / 2 }

// PointAt returns the i-th stored point.
func (p *Path) PointAt(i int) Point {
	return Pt(p.coords[2*i], p.coords[2*i+1])
}

// CurrentPoint returns the point the next command would start from, or
// false for an empty path. After a ClosePath that is the start of the closed
// subpath.
func (p *Path) CurrentPoint() (Point, bool) {
	if len(p.coords) < 2 {
		return Point{}, false
	}
	if p.lastKind() == ClosePathKind {
		var mov Point
		ci := 0
		for _, k := range p.kinds {
			if k == MoveToKind {
				mov = Pt(p.coords[ci], p.coords[ci+1])
			}
			ci += coordCount(k)
		}
		return mov, true
	}
	return p.PointAt(p.NumPoints() - 1), true
}

// Coords returns a copy of the coordinate buffer.
func (p *Path) Coords() []float64 {
	return slices.Clone(p.coords)
}

// TransformedCoords returns a copy of the coordinate buffer with aff applied.
func (p *Path) TransformedCoords(aff Affine) []float64 {
	out := make([]float64, len(p.coords))
	for i := 0; i < len(p.coords); i += 2 {
		pt := Pt(p.coords[i], p.coords[i+1]).Transform(aff)
		out[i], out[i+1] = pt.X, pt.Y
	}
	return out
}

// Points returns all stored points, control points included.
func (p *Path) Points() []Point {
	pts := make([]Point, 0, p.NumPoints())
	for i := range p.NumPoints() {
		pts = append(pts, p.PointAt(i))
	}
	return pts
}

// ContainsControlPoint reports whether pt is one of the stored points.
func (p *Path) ContainsControlPoint(pt Point) bool {
	for i := 0; i < len(p.coords); i += 2 {
		if p.coords[i] == pt.X && p.coords[i+1] == pt.Y {
			return true
		}
	}
	return false
}

// RemovePoint removes the first command that stores pt, either as its end
// point or as a control point, and reports whether one was found.
func (p *Path) RemovePoint(pt Point) bool {
	ci := 0
	for ki, k := range p.kinds {
		n := coordCount(k)
		for j := ci; j < ci+n; j += 2 {
			if p.coords[j] == pt.X && p.coords[j+1] == pt.Y {
				p.coords = slices.Delete(p.coords, ci, ci+n)
				p.kinds = slices.Delete(p.kinds, ki, ki+1)
				p.invalidate()
				return true
			}
		}
		ci += n
	}
	return false
}

// IsEmpty reports whether the path draws nothing.
func (p *Path) IsEmpty() bool {
	if p.empty == unknown {
		empty := true
		for el := range p.Elements() {
			if el.IsDrawable() {
				empty = false
				break
			}
		}
		p.empty = tri(empty)
	}
	return p.empty == yes
}

// IsPolyline reports whether the path consists of straight lines only.
func (p *Path) IsPolyline() bool {
	if p.polyline == unknown {
		p.polyline = tri(!slices.ContainsFunc(p.kinds, func(k ElementKind) bool {
			return k == QuadToKind || k == CubicToKind
		}))
	}
	return p.polyline == yes
}

// Elements returns the path's elements as a sequence.
func (p *Path) Elements() iter.Seq[PathElement] {
	return Elements(p.Iterator())
}

// ControlBox returns the bounding box of every stored point, control points
// included, or false if the path has no points.
func (p *Path) ControlBox() (Rect, bool) {
	if len(p.coords) == 0 {
		return Rect{}, false
	}
	if p.logicalBounds == nil {
		r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
		for i := 0; i < len(p.coords); i += 2 {
			r = r.UnionPoint(Pt(p.coords[i], p.coords[i+1]))
		}
		p.logicalBounds = &r
	}
	return *p.logicalBounds, true
}

// Bounds returns the bounding box of the drawn geometry, with curves
// flattened at [DefaultFlatness], or false if nothing is drawn.
func (p *Path) Bounds() (Rect, bool) {
	if p.graphicalBounds == nil {
		r, ok := graphicalBounds(p.FlatIterator(DefaultFlatness))
		if !ok {
			return Rect{}, false
		}
		p.graphicalBounds = &r
	}
	return *p.graphicalBounds, true
}

// BoundingBox is like [Path.Bounds] but returns the zero Rect for paths that
// draw nothing.
func (p *Path) BoundingBox() Rect {
	r, _ := p.Bounds()
	return r
}

func graphicalBounds(it PathIterator) (Rect, bool) {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	found := false
	for el := range Elements(it) {
		switch el.Kind {
		case LineToKind:
			r = r.UnionPoint(el.From).UnionPoint(el.To)
			found = true
		case QuadToKind, CubicToKind:
			sub, ok := graphicalBounds(curveIterator(el))
			if ok {
				r = r.Union(sub)
				found = true
			}
		}
	}
	if !found {
		return Rect{}, false
	}
	return r, true
}

// Length returns the length of the path, with curves flattened at
// [DefaultFlatness]. Closing edges count.
func (p *Path) Length() float64 {
	if p.IsEmpty() {
		return 0
	}
	return pathLength(p.FlatIterator(DefaultFlatness))
}

func pathLength(it PathIterator) float64 {
	var length float64
	var cur, mov Point
	for el := range Elements(it) {
		switch el.Kind {
		case MoveToKind:
			cur, mov = el.To, el.To
		case LineToKind:
			length += cur.Distance(el.To)
			cur = el.To
		case QuadToKind, CubicToKind:
			length += pathLength(curveIterator(PathElement{
				Kind: el.Kind, From: cur, Ctrl1: el.Ctrl1, Ctrl2: el.Ctrl2, To: el.To,
			}))
			cur = el.To
		case ClosePathKind:
			if cur != mov {
				length += cur.Distance(mov)
			}
			cur = mov
		}
	}
	return length
}

// ClosestPoint returns the point of the filled path nearest to pt, or false
// for a path without points. Points inside the path are their own closest
// point.
func (p *Path) ClosestPoint(pt Point) (Point, bool) {
	return closestPoint(p.FlatIterator(DefaultFlatness), pt)
}

func closestPoint(it PathIterator, pt Point) (Point, bool) {
	mask := it.WindingRule().pointMask()
	var closest Point
	found := false
	best := math.Inf(1)
	crossings := 0
	consider := func(c Point) {
		if d := c.DistanceSquared(pt); d < best {
			best = d
			closest = c
			found = true
		}
	}
	for el := range Elements(it) {
		switch el.Kind {
		case MoveToKind:
			consider(el.To)
		case LineToKind:
			consider(el.Line().ClosestPoint(pt))
			crossings += segmentCrossingsFromPoint(pt, el.From, el.To)
		case ClosePathKind:
			crossings += segmentCrossingsFromPoint(pt, el.From, el.To)
			if crossings&mask != 0 {
				return pt, true
			}
			if el.IsDrawable() {
				consider(el.Line().ClosestPoint(pt))
			}
			crossings = 0
		default:
			panic("unflattened " + el.Kind.String())
		}
	}
	return closest, found
}

// FarthestPoint returns the point of the path farthest from pt, or false for
// a path without points.
func (p *Path) FarthestPoint(pt Point) (Point, bool) {
	return farthestPoint(p.FlatIterator(DefaultFlatness), pt)
}

func farthestPoint(it PathIterator, pt Point) (Point, bool) {
	var farthest Point
	found := false
	best := math.Inf(-1)
	for el := range Elements(it) {
		var c Point
		switch el.Kind {
		case MoveToKind:
			c = el.To
		case LineToKind, ClosePathKind:
			c = el.Line().FarthestPoint(pt)
		default:
			panic("unflattened " + el.Kind.String())
		}
		if d := c.DistanceSquared(pt); d > best {
			best = d
			farthest = c
			found = true
		}
	}
	return farthest, found
}

// DistanceSquared returns the squared distance from pt to the filled path,
// or +Inf for a path without points.
func (p *Path) DistanceSquared(pt Point) float64 {
	c, ok := p.ClosestPoint(pt)
	if !ok {
		return math.Inf(1)
	}
	return c.DistanceSquared(pt)
}

// Distance returns the distance from pt to the filled path.
func (p *Path) Distance(pt Point) float64 {
	return math.Sqrt(p.DistanceSquared(pt))
}

// DistanceL1 returns the Manhattan distance from pt to the closest point of
// the path.
func (p *Path) DistanceL1(pt Point) float64 {
	c, ok := p.ClosestPoint(pt)
	if !ok {
		return math.Inf(1)
	}
	return c.DistanceL1(pt)
}

// DistanceLinf returns the Chebyshev distance from pt to the closest point of
// the path.
func (p *Path) DistanceLinf(pt Point) float64 {
	c, ok := p.ClosestPoint(pt)
	if !ok {
		return math.Inf(1)
	}
	return c.DistanceLinf(pt)
}

func (*Path) isShape() {}

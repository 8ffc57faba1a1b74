package pathgeom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossingsAdd(t *testing.T) {
	c := Crossings{}.Add(2).Add(-1)
	diff(t, Crossings{Count: 1}, c)
	assert.Equal(t, "1", c.String())

	hit := Crossings{Intersects: true}
	diff(t, hit, hit.Add(5))
	assert.Equal(t, "intersects", hit.String())
}

func TestUnitSquareContains(t *testing.T) {
	for _, rule := range []WindingRule{NonZero, EvenOdd} {
		p := unitSquare(rule)
		assert.True(t, p.Contains(Pt(0.5, 0.5)), rule)
		assert.False(t, p.Contains(Pt(1.5, 0.5)), rule)
		assert.False(t, p.Contains(Pt(0.5, -0.5)), rule)
		assert.False(t, p.Contains(Pt(-0.5, 0.5)), rule)
	}

	// A vertex lies on the path; only NonZero treats that as inside.
	assert.True(t, unitSquare(NonZero).Contains(Pt(0, 0)))
	assert.False(t, unitSquare(EvenOdd).Contains(Pt(0, 0)))
}

func TestCrossingsFromPoint(t *testing.T) {
	c, err := CrossingsFromPoint(unitSquare(NonZero).Iterator(), Pt(0.5, 0.5), CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Count: 1}, c)

	// Reversed orientation counts the other way.
	rev := NewPath(NonZero)
	rev.MoveTo(Pt(0, 0))
	rev.LineTo(Pt(0, 1))
	rev.LineTo(Pt(1, 1))
	rev.LineTo(Pt(1, 0))
	rev.ClosePath()
	c, err = CrossingsFromPoint(rev.Iterator(), Pt(0.5, 0.5), CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Count: -1}, c)

	c, err = CrossingsFromPoint(unitSquare(NonZero).Iterator(), Pt(1, 1), CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Intersects: true}, c)

	c, err = CrossingsFromPoint(ElementIterator(NonZero), Pt(0, 0), CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{}, c)
}

func TestCrossingsOpenPath(t *testing.T) {
	// Three sides of a square, left open on the left.
	open := NewPath(NonZero)
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(2, 0))
	open.LineTo(Pt(2, 2))
	open.LineTo(Pt(0, 2))

	f := func(opts CrossingOptions, want Crossings) {
		t.Helper()
		got, err := CrossingsFromPoint(open.Iterator(), Pt(1, 1), opts)
		require.NoError(t, err)
		diff(t, want, got)
	}
	f(CrossingOptions{}, Crossings{Count: 1})
	f(CrossingOptions{OnlyIntersectWhenOpen: true}, Crossings{})
	f(CrossingOptions{Closeable: true}, Crossings{Count: 1})
	f(CrossingOptions{Closeable: true, OnlyIntersectWhenOpen: true}, Crossings{Count: 1})

	// Left of the path, the closing edge cancels the right side.
	got, err := CrossingsFromPoint(open.Iterator(), Pt(-1, 1), CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Count: 1}, got)
	got, err = CrossingsFromPoint(open.Iterator(), Pt(-1, 1), CrossingOptions{Closeable: true})
	require.NoError(t, err)
	diff(t, Crossings{}, got)

	// The sentinel survives the reset.
	got, err = CrossingsFromPoint(open.Iterator(), Pt(2, 2), CrossingOptions{OnlyIntersectWhenOpen: true})
	require.NoError(t, err)
	diff(t, Crossings{Intersects: true}, got)

	assert.False(t, open.Contains(Pt(1, 1)), "open paths contain nothing")
}

func TestCrossingsMissingMoveTo(t *testing.T) {
	bad := func() PathIterator {
		return ElementIterator(NonZero, LineTo(Pt(0, 0), Pt(1, 1)), LineTo(Pt(1, 1), Pt(0, 1)))
	}
	var opts CrossingOptions
	checks := map[string]func() (Crossings, error){
		"point":   func() (Crossings, error) { return CrossingsFromPoint(bad(), Pt(0, 0), opts) },
		"rect":    func() (Crossings, error) { return CrossingsFromRect(bad(), Rect{0, 0, 1, 1}, opts) },
		"circle":  func() (Crossings, error) { return CrossingsFromCircle(bad(), Circle{Pt(0, 0), 1}, opts) },
		"ellipse": func() (Crossings, error) { return CrossingsFromEllipse(bad(), Ellipse{Pt(0, 0), Vec(1, 1)}, opts) },
		"segment": func() (Crossings, error) { return CrossingsFromSegment(bad(), Line{Pt(0, 0), Pt(1, 0)}, false) },
		"path": func() (Crossings, error) {
			return CrossingsFromPath(bad(), NewPathShadow(unitSquare(NonZero)), opts)
		},
	}
	for name, fn := range checks {
		_, err := fn()
		if !errors.Is(err, ErrMissingMoveTo) {
			t.Errorf("%s: got %v, want ErrMissingMoveTo", name, err)
		}
	}

	_, err := unitSquare(NonZero).IntersectsIterator(bad())
	assert.ErrorIs(t, err, ErrMissingMoveTo)
}

func TestCrossingsEvenOdd(t *testing.T) {
	// Two nested squares with the same orientation.
	mk := func(rule WindingRule) *Path {
		p := square(rule, Pt(0, 0), 4)
		p.Add(square(rule, Pt(1, 1), 2).Iterator())
		return p
	}
	nz, eo := mk(NonZero), mk(EvenOdd)

	assert.True(t, nz.Contains(Pt(2, 2)))
	assert.False(t, eo.Contains(Pt(2, 2)))
	assert.True(t, nz.Contains(Pt(0.5, 2)))
	assert.True(t, eo.Contains(Pt(0.5, 2)))

	c, err := CrossingsFromPoint(eo.Iterator(), Pt(2, 2), CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Count: 2}, c)

	assert.True(t, nz.ContainsRect(Rect{1.5, 1.5, 2.5, 2.5}))
	assert.True(t, eo.IntersectsRect(Rect{0.2, 1.5, 0.8, 2.5}))
}

func TestPathContainsRect(t *testing.T) {
	p := unitSquare(NonZero)
	assert.True(t, p.ContainsRect(Rect{0.2, 0.2, 0.8, 0.8}))
	assert.False(t, p.ContainsRect(Rect{0.5, 0.5, 1.5, 0.8}))
	assert.False(t, p.ContainsRect(Rect{2, 2, 3, 3}))
	assert.False(t, p.ContainsRect(Rect{0.2, 0.2, 0.2, 0.8}), "rects without area are never contained")
	assert.True(t, unitSquare(EvenOdd).ContainsRect(Rect{0.2, 0.2, 0.8, 0.8}))

	// An open outline is closed implicitly.
	open := NewPath(NonZero)
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(10, 0))
	open.LineTo(Pt(10, 10))
	open.LineTo(Pt(0, 10))
	assert.True(t, open.ContainsRect(Rect{2, 2, 4, 4}))
	assert.False(t, open.ContainsRect(Rect{8, 8, 12, 12}))
	assert.False(t, open.ContainsRect(Rect{20, 2, 24, 4}))
	c, err := CrossingsFromRect(open.Iterator(), Rect{2, 2, 4, 4}, CrossingOptions{Closeable: true})
	require.NoError(t, err)
	diff(t, Crossings{Count: 2}, c)
}

func TestPathIntersectsRect(t *testing.T) {
	p := unitSquare(NonZero)
	f := func(r Rect, want bool) {
		t.Helper()
		if got := p.IntersectsRect(r); got != want {
			t.Errorf("%v: got %t, want %t", r, got, want)
		}
	}
	f(Rect{0.2, 0.2, 0.8, 0.8}, true)
	f(Rect{0.5, 0.5, 1.5, 0.8}, true)
	f(Rect{-1, -1, 2, 2}, true)
	f(Rect{2, 2, 3, 3}, false)
	f(Rect{2, 0.2, 3, 0.8}, false)
	f(Rect{-3, 0.2, -2, 0.8}, false)
	f(Rect{0.2, 0.2, 0.2, 0.8}, false)

	c, err := CrossingsFromRect(p.Iterator(), Rect{-3, 0.2, -2, 0.8}, CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{}, c)
	c, err = CrossingsFromRect(p.Iterator(), Rect{0.2, 0.2, 0.8, 0.8}, CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Count: 2}, c)
}

func TestPathIntersectsCircleEllipse(t *testing.T) {
	p := unitSquare(NonZero)
	assert.True(t, p.IntersectsCircle(Circle{Pt(0.5, 0.5), 0.1}))
	assert.True(t, p.IntersectsCircle(Circle{Pt(1.2, 0.5), 0.5}))
	assert.False(t, p.IntersectsCircle(Circle{Pt(3, 0.5), 0.5}))
	assert.False(t, p.IntersectsCircle(Circle{Pt(-1, 0.5), 0.5}))

	assert.True(t, p.IntersectsEllipse(Ellipse{Pt(0.5, 0.5), Vec(0.2, 0.1)}))
	assert.True(t, p.IntersectsEllipse(Ellipse{Pt(1.5, 0.5), Vec(1, 0.2)}))
	assert.False(t, p.IntersectsEllipse(Ellipse{Pt(3, 0.5), Vec(1, 0.2)}))

	c, err := CrossingsFromCircle(p.Iterator(), Circle{Pt(0.5, 0.5), 0.1}, CrossingOptions{})
	require.NoError(t, err)
	diff(t, Crossings{Count: 2}, c)
}

func TestPathIntersectsLine(t *testing.T) {
	p := unitSquare(NonZero)
	assert.True(t, p.IntersectsLine(Line{Pt(0.2, 0.5), Pt(0.8, 0.5)}), "inside")
	assert.True(t, p.IntersectsLine(Line{Pt(0.5, 0.5), Pt(1.5, 0.5)}), "crossing")
	assert.False(t, p.IntersectsLine(Line{Pt(2, 0), Pt(3, 1)}), "outside")

	// Open paths only report actual contact.
	open := NewPath(NonZero)
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(1, 0))
	open.LineTo(Pt(1, 1))
	assert.False(t, open.IntersectsLine(Line{Pt(0.2, 0.5), Pt(0.8, 0.5)}))
	assert.True(t, open.IntersectsLine(Line{Pt(0.5, 0.5), Pt(1.5, 0.5)}))

	c, err := CrossingsFromSegment(open.Iterator(), Line{Pt(0.6, 0.5), Pt(0.8, 0.5)}, true)
	require.NoError(t, err)
	diff(t, Crossings{Count: 2}, c)
}

func TestPathIntersectsLineTouching(t *testing.T) {
	diag := polyline(0, 0, 2, 2)
	f := func(l Line) {
		t.Helper()
		assert.True(t, diag.IntersectsLine(l), "%v", l)
		assert.True(t, Intersects(diag, l), "%v", l)
		assert.True(t, Intersects(l, diag), "%v", l)
		assert.True(t, Intersects(Line{Pt(0, 0), Pt(2, 2)}, l), "%v", l)
	}
	// Each segment ends on the diagonal.
	f(Line{Pt(1, 1), Pt(2, 0)})
	f(Line{Pt(1, 1), Pt(1, 3)})
	f(Line{Pt(0.5, -1), Pt(0.5, 0.5)})

	c, err := CrossingsFromSegment(diag.Iterator(), Line{Pt(1, 1), Pt(2, 0)}, false)
	require.NoError(t, err)
	diff(t, Crossings{Intersects: true}, c)
}

func TestPathCurveCrossings(t *testing.T) {
	// A half disc bounded by a cubic arc and its diameter.
	p := NewPath(NonZero)
	p.MoveTo(Pt(-1, 0))
	p.CubicTo(Pt(-1, 1.3333), Pt(1, 1.3333), Pt(1, 0))
	p.ClosePath()

	assert.True(t, p.Contains(Pt(0, 0.5)))
	assert.False(t, p.Contains(Pt(0, 1.5)))
	assert.False(t, p.Contains(Pt(0, -0.5)))
	assert.True(t, p.IntersectsRect(Rect{-0.1, 0.1, 0.1, 0.2}))
	assert.True(t, p.IntersectsLine(Line{Pt(0.05, 0.5), Pt(0.05, 2)}))
	assert.False(t, p.IntersectsLine(Line{Pt(-2, 2), Pt(2, 2)}))

	// Curves are flattened by the engine itself, too.
	c, err := CrossingsFromPoint(p.Iterator(), Pt(0, 0.5), CrossingOptions{})
	require.NoError(t, err)
	assert.NotZero(t, c.Count)
	c, err = CrossingsFromSegment(p.Iterator(), Line{Pt(-0.1, 0.5), Pt(0.1, 0.5)}, false)
	require.NoError(t, err)
	assert.NotZero(t, c.Count, "crossings through curves are kept")
}

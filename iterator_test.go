package pathgeom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathIteratorTransformed(t *testing.T) {
	p := NewPath(EvenOdd)
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(1, 1), Pt(2, 0))
	p.ClosePath()

	it := p.TransformedIterator(Translate(Vec(1, 2)))
	assert.Equal(t, EvenOdd, it.WindingRule())
	assert.False(t, it.IsPolyline())
	want := []PathElement{
		MoveTo(Pt(1, 2)),
		QuadTo(Pt(1, 2), Pt(2, 3), Pt(3, 2)),
		ClosePath(Pt(3, 2), Pt(1, 2)),
	}
	diff(t, want, collect(it))
	diff(t, collect(p.Iterator()), collect(p.PathIterator(Identity)))

	// The path itself is unchanged.
	diff(t, Pt(0, 0), p.PointAt(0))
}

func TestPathIteratorSubpaths(t *testing.T) {
	p := NewPath(NonZero)
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 0))
	p.ClosePath()
	p.LineTo(Pt(0, 1))
	p.MoveTo(Pt(5, 5))
	p.LineTo(Pt(6, 5))
	p.ClosePath()

	want := []PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(0, 0), Pt(1, 0)),
		ClosePath(Pt(1, 0), Pt(0, 0)),
		LineTo(Pt(0, 0), Pt(0, 1)),
		MoveTo(Pt(5, 5)),
		LineTo(Pt(5, 5), Pt(6, 5)),
		ClosePath(Pt(6, 5), Pt(5, 5)),
	}
	diff(t, want, collect(p.Iterator()))
}

func TestIteratorRemove(t *testing.T) {
	p := unitSquare(NonZero)
	its := map[string]PathIterator{
		"path":      p.Iterator(),
		"transform": p.TransformedIterator(Scale(2, 2)),
		"flat":      p.FlatIterator(0.1),
		"slice":     ElementIterator(NonZero),
		"wrapped":   TransformIterator(p.Iterator(), Identity),
	}
	for name, it := range its {
		if err := it.Remove(); !errors.Is(err, errors.ErrUnsupported) {
			t.Errorf("%s: got %v, want ErrUnsupported", name, err)
		}
	}
}

func TestElementIterator(t *testing.T) {
	els := []PathElement{
		MoveTo(Pt(0, 0)),
		CubicTo(Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)),
	}
	it := ElementIterator(EvenOdd, els...)
	assert.Equal(t, EvenOdd, it.WindingRule())
	assert.False(t, it.IsPolyline())
	diff(t, els, collect(it))
	assert.True(t, it.IsPolyline(), "an exhausted iterator has no curves left")

	moved := collect(TransformIterator(ElementIterator(NonZero, els...), Translate(Vec(1, 0))))
	diff(t, CubicTo(Pt(1, 0), Pt(2, 1), Pt(3, 1), Pt(4, 0)), moved[1])
}

func TestElementsStopsEarly(t *testing.T) {
	it := unitSquare(NonZero).Iterator()
	n := 0
	for range Elements(it) {
		n++
		if n == 2 {
			break
		}
	}
	el, ok := it.Next()
	assert.True(t, ok)
	diff(t, LineTo(Pt(1, 0), Pt(1, 1)), el)
}

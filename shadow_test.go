package pathgeom

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShadowOffsetSquares(t *testing.T) {
	a := unitSquare(NonZero)
	b := square(NonZero, Pt(0.5, 0.5), 1)
	assert.True(t, a.IntersectsPath(b))
	assert.True(t, b.IntersectsPath(a))

	far := square(NonZero, Pt(3, 3), 1)
	assert.False(t, a.IntersectsPath(far))
	assert.False(t, far.IntersectsPath(a))

	beside := square(NonZero, Pt(2, 0), 1)
	assert.False(t, a.IntersectsPath(beside))
	assert.False(t, beside.IntersectsPath(a))
}

func TestShadowNestedSquares(t *testing.T) {
	big := square(NonZero, Pt(0, 0), 10)
	small := square(NonZero, Pt(4, 4), 2)
	assert.True(t, big.IntersectsPath(small))
	assert.True(t, small.IntersectsPath(big))
	assert.True(t, Intersects(big, small))
	assert.True(t, Intersects(small, big))

	// The enclosing path crosses the shadow of the enclosed one twice.
	enclosing, err := small.IntersectsIterator(big.Iterator())
	assert.NoError(t, err)
	assert.True(t, enclosing)

	// An open outline never encloses anything.
	open := NewPath(NonZero)
	open.MoveTo(Pt(0, 0))
	open.LineTo(Pt(10, 0))
	open.LineTo(Pt(10, 10))
	assert.False(t, open.IntersectsPath(small))
	assert.False(t, small.IntersectsPath(open))
}

func TestShadowCrossedBars(t *testing.T) {
	// No vertex of one bar lies inside the other.
	h := NewPathFromIterator(Rect{0, 1, 3, 2}.PathIterator(Identity))
	v := NewPathFromIterator(Rect{1, 0, 2, 3}.PathIterator(Identity))
	assert.True(t, h.IntersectsPath(v))
	assert.True(t, v.IntersectsPath(h))
}

func TestShadowBoxClassification(t *testing.T) {
	s := NewPathShadow(unitSquare(NonZero))
	diff(t, Crossings{Count: 2}, s.Crossings(Crossings{}, Pt(2, -1), Pt(2, 2)))
	diff(t, Crossings{Count: -1}, s.Crossings(Crossings{Count: 1}, Pt(2, 2), Pt(2, -1)))
	diff(t, Crossings{}, s.Crossings(Crossings{}, Pt(-2, -1), Pt(-2, 2)))
	diff(t, Crossings{Intersects: true}, s.Crossings(Crossings{}, Pt(0.5, -1), Pt(0.5, 2)))

	hit := Crossings{Intersects: true}
	diff(t, hit, s.Crossings(hit, Pt(2, -1), Pt(2, 2)))
}

func TestShadowOfEmptyPath(t *testing.T) {
	s := NewPathShadow(NewPath(NonZero))
	initial := Crossings{Count: 3}
	diff(t, initial, s.Crossings(initial, Pt(-1, -1), Pt(1, 1)))
	assert.False(t, NewPath(NonZero).IntersectsPath(unitSquare(NonZero)))
}

func TestShadowLogsDetailedPass(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	s := NewPathShadow(unitSquare(NonZero))
	s.Crossings(Crossings{}, Pt(2, -1), Pt(2, 2))
	assert.NotContains(t, buf.String(), "shadow: detailed pass")
	s.Crossings(Crossings{}, Pt(0.5, -1), Pt(0.5, 2))
	assert.Contains(t, buf.String(), "shadow: detailed pass")
	assert.Contains(t, buf.String(), `from="(0.5, -1)"`)
}

// mixedPath is an open path made of a line, a quadratic and a cubic.
func mixedPath() *Path {
	p := NewPath(NonZero)
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(1, 1))
	p.QuadTo(Pt(3, 0), Pt(4, 3))
	p.CubicTo(Pt(5, -1), Pt(6, 5), Pt(7, -5))
	return p
}

func polyline(x0, y0, x1, y1 float64) *Path {
	p := NewPath(NonZero)
	p.MoveTo(Pt(x0, y0))
	p.LineTo(Pt(x1, y1))
	return p
}

func TestShadowMixedPath(t *testing.T) {
	tests := []struct {
		line   *Path
		open   bool
		closed bool
	}{
		{polyline(1, -1, 4, -3), false, false},
		{polyline(1, -1, 5, -3), false, true},
		{polyline(1, -1, 4, 1), false, true},
		{polyline(5, 2, 4, 1), true, true},
	}
	for _, tt := range tests {
		p := mixedPath()
		if got := p.IntersectsPath(tt.line); got != tt.open {
			t.Errorf("open, %s: got %t, want %t", tt.line, got, tt.open)
		}
		if got, err := p.IntersectsIterator(tt.line.Iterator()); err != nil || got != tt.open {
			t.Errorf("open iterator, %s: got %t, %v, want %t", tt.line, got, err, tt.open)
		}
		p.ClosePath()
		if got := p.IntersectsPath(tt.line); got != tt.closed {
			t.Errorf("closed, %s: got %t, want %t", tt.line, got, tt.closed)
		}
	}
}

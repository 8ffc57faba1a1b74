package pathgeom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// collect drains it.
func collect(it PathIterator) []PathElement {
	var out []PathElement
	for el := range Elements(it) {
		out = append(out, el)
	}
	return out
}

// unitSquare returns the closed path (0,0) (1,0) (1,1) (0,1).
func unitSquare(rule WindingRule) *Path {
	return square(rule, Pt(0, 0), 1)
}

func square(rule WindingRule, origin Point, size float64) *Path {
	p := NewPath(rule)
	p.MoveTo(origin)
	p.LineTo(Pt(origin.X+size, origin.Y))
	p.LineTo(Pt(origin.X+size, origin.Y+size))
	p.LineTo(Pt(origin.X, origin.Y+size))
	p.ClosePath()
	return p
}

package pathgeom

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// rasterize fills p into a size×size coverage mask. The rasterizer
// accumulates signed area and clamps its magnitude, which matches the
// NonZero rule for the paths used here.
func rasterize(p *Path, size int) *image.Alpha {
	z := vector.NewRasterizer(size, size)
	f := func(pt Point) (float32, float32) { return float32(pt.X), float32(pt.Y) }
	for el := range p.Elements() {
		switch el.Kind {
		case MoveToKind:
			z.MoveTo(f(el.To))
		case LineToKind:
			z.LineTo(f(el.To))
		case QuadToKind:
			x1, y1 := f(el.Ctrl1)
			x2, y2 := f(el.To)
			z.QuadTo(x1, y1, x2, y2)
		case CubicToKind:
			x1, y1 := f(el.Ctrl1)
			x2, y2 := f(el.Ctrl2)
			x3, y3 := f(el.To)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case ClosePathKind:
			z.ClosePath()
		}
	}
	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func pentagram(center Point, r float64) *Path {
	p := NewPath(NonZero)
	for i := range 5 {
		th := -math.Pi/2 + float64(i*2)*2*math.Pi/5
		pt := center.Translate(VecFromAngle(th).Mul(r))
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	p.ClosePath()
	return p
}

func TestContainsMatchesRaster(t *testing.T) {
	const size = 64

	withHole := square(NonZero, Pt(4, 4), 56)
	// Counter-clockwise, so the winding cancels out.
	withHole.MoveTo(Pt(20, 20))
	withHole.LineTo(Pt(20, 44))
	withHole.LineTo(Pt(44, 44))
	withHole.LineTo(Pt(44, 20))
	withHole.ClosePath()

	curvy := NewPath(NonZero)
	curvy.MoveTo(Pt(8, 56))
	curvy.CubicTo(Pt(8, -10), Pt(56, 70), Pt(56, 8))
	curvy.QuadTo(Pt(40, 40), Pt(8, 56))
	curvy.ClosePath()

	paths := map[string]*Path{
		"pentagram": pentagram(Pt(32, 32), 28),
		"hole":      withHole,
		"curvy":     curvy,
		"ellipse":   NewPathFromIterator(Ellipse{Pt(32, 32), Vec(24, 12)}.PathIterator(Identity)),
	}
	for name, p := range paths {
		t.Run(name, func(t *testing.T) {
			mask := rasterize(p, size)
			var in, out int
			for y := range size {
				for x := range size {
					a := mask.AlphaAt(x, y).A
					if a != 0 && a != 0xff {
						// Edge pixel.
						continue
					}
					want := a == 0xff
					c := Pt(float64(x)+0.5, float64(y)+0.5)
					if got := p.Contains(c); got != want {
						t.Errorf("Contains(%s) = %t, raster coverage %d", c, got, a)
					}
					if want {
						in++
					} else {
						out++
					}
				}
			}
			if in == 0 || out == 0 {
				t.Fatalf("degenerate raster: %d inside, %d outside", in, out)
			}
		})
	}
}

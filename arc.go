package pathgeom

import (
	"iter"
	"math"
)

// Arc is a section of an ellipse whose X axis is rotated by XRotation
// radians. Angles are in radians and SweepAngle is negative for clockwise
// arcs.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// NewArcFromSVG converts the endpoint parameterization of an SVG elliptical
// arc command into an Arc running from 'from' to 'to'. xRotation is in
// radians. Radii too small to span both points are scaled up, as SVG
// requires. It returns false if the arc degenerates into a straight line or
// nothing at all.
func NewArcFromSVG(from Point, radii Vec2, xRotation float64, largeArc, sweep bool, to Point) (Arc, bool) {
	if from == to {
		return Arc{}, false
	}
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 {
		return Arc{}, false
	}

	sin, cos := math.Sincos(xRotation)
	hd := from.Sub(to).Mul(0.5)
	x1p := cos*hd.X + sin*hd.Y
	y1p := -sin*hd.X + cos*hd.Y

	if check := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); check > 1 {
		s := math.Sqrt(check)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := coef * -ry * x1p / rx
	mid := from.Midpoint(to)
	center := Pt(cos*cxp-sin*cyp+mid.X, sin*cxp+cos*cyp+mid.Y)

	u := Vec((x1p-cxp)/rx, (y1p-cyp)/ry)
	v := Vec((-x1p-cxp)/rx, (-y1p-cyp)/ry)
	start := math.Atan2(u.Y, u.X)
	delta := math.Atan2(u.Cross(v), u.Dot(v))
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: start,
		SweepAngle: delta,
		XRotation:  xRotation,
	}, true
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle))
}

// EndPoint returns the point at StartAngle + SweepAngle.
func (a Arc) EndPoint() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+a.SweepAngle))
}

// Cubics approximates the arc with cubic Béziers, using as many as needed
// to stay within tolerance of the true arc.
func (a Arc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			if !yield(CubicBez{
				a.Center.Translate(p0),
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			}) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}

// sampleEllipse returns the point at angle on an ellipse centered on the
// origin.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return rotatePt(Vec2{radii.X * cos, radii.Y * sin}, xRotation)
}

func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// ArcTo appends an SVG-style elliptical arc from the current point to 'to',
// approximated by cubic Béziers within [DefaultFlatness]. xRotation is in
// radians. Zero radii produce a straight line; an arc ending where it starts
// is skipped.
//
// It panics with [ErrMissingMoveTo] if the path is empty.
func (p *Path) ArcTo(radii Vec2, xRotation float64, largeArc, sweep bool, to Point) {
	from, ok := p.CurrentPoint()
	if !ok {
		panic(ErrMissingMoveTo)
	}
	if from == to {
		return
	}
	a, ok := NewArcFromSVG(from, radii, xRotation, largeArc, sweep, to)
	if !ok {
		p.LineTo(to)
		return
	}
	var last CubicBez
	started := false
	for c := range a.Cubics(DefaultFlatness) {
		if started {
			p.CubicTo(last.P1, last.P2, last.P3)
		}
		last = c
		started = true
	}
	if started {
		// Land exactly on the requested end point.
		p.CubicTo(last.P1, last.P2, to)
	}
}

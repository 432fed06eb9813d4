package circline

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyperdisc/cplx"
)

// Intersect returns the common points of cl and other.
//
// Separated circles and parallel lines return ErrNoIntersection. A circle
// nested inside another, or two concentric circles, return an empty slice and
// a nil error. ParamA is measured on cl, ParamB on other.
func (cl CircLine) Intersect(other CircLine) ([]Intersection, error) {
	switch {
	case cl.kind == KindCircle && other.kind == KindCircle:
		return intersectCircles(cl, other)
	case cl.kind == KindCircle:
		return intersectCircleLine(cl, other)
	case other.kind == KindCircle:
		xs, err := intersectCircleLine(other, cl)
		if err != nil {
			return nil, err
		}
		for i := range xs {
			xs[i].ParamA, xs[i].ParamB = xs[i].ParamB, xs[i].ParamA
		}
		return xs, nil
	}
	return intersectLines(cl, other)
}

// intersectCircles uses the radical chord: the foot p2 of the common chord on
// the line of centers and the half chord length h.
func intersectCircles(c0, c1 CircLine) ([]Intersection, error) {
	p0, p1 := c0.Center(), c1.Center()
	r0, r1 := c0.Radius(), c1.Radius()
	d := cmplx.Abs(p1 - p0)

	if d > r0+r1 {
		return nil, ErrNoIntersection
	}
	if d < math.Abs(r0-r1) || d == 0 {
		return []Intersection{}, nil
	}

	a := (r0*r0 - r1*r1 + d*d) / (2 * d)
	h := math.Sqrt(math.Max(0, r0*r0-a*a))
	unit := (p1 - p0) / complex(d, 0)
	p2 := p0 + complex(a, 0)*unit
	normal := unit * complex(0, -h) // h·unit rotated by −π/2

	xs := make([]Intersection, 0, 2)
	for _, p := range []complex128{p2 + normal, p2 - normal} {
		xs = append(xs, Intersection{
			Point:  p,
			ParamA: cplx.Arg(p - p0),
			ParamB: cplx.Arg(p - p1),
		})
	}
	return xs, nil
}

// intersectCircleLine drops a perpendicular from the circle center onto the
// line and walks ±√(r² − dist²) along it.
func intersectCircleLine(circle, line CircLine) ([]Intersection, error) {
	center := circle.Center()
	foot := line.Project(center).Point
	dist := cmplx.Abs(center - foot)
	if dist-circle.Radius() > cplx.LinearTolerance {
		return nil, ErrNoIntersection
	}

	h := math.Sqrt(math.Max(0, circle.RadiusSquared()-dist*dist))
	dir := line.Direction()

	xs := make([]Intersection, 0, 2)
	for _, p := range []complex128{foot + dir*complex(h, 0), foot - dir*complex(h, 0)} {
		xs = append(xs, Intersection{
			Point:  p,
			ParamA: cplx.Arg(p - center),
			ParamB: line.Project(p).Param,
		})
	}
	return xs, nil
}

// intersectLines solves the 2×2 system of the two line equations written in
// z and conj(z).
func intersectLines(l0, l1 CircLine) ([]Intersection, error) {
	den := cmplx.Conj(l0.b)*l1.b - l0.b*cmplx.Conj(l1.b)
	if cplx.IsZero(den) {
		return nil, ErrNoIntersection
	}
	z := (l0.b*complex(l1.c, 0) - l1.b*complex(l0.c, 0)) / den
	return []Intersection{{
		Point:  z,
		ParamA: l0.Project(z).Param,
		ParamB: l1.Project(z).Param,
	}}, nil
}

package circline

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/mobius"
)

// polylinePoints is the number of samples in a full circle outline.
const polylinePoints = 128

// New returns the generalized circle a·|z|² + 2·Re(conj(b)·z) + c = 0.
// A tolerance-zero a yields a line, anything else a circle normalized to a = 1.
func New(a float64, b complex128, c float64) CircLine {
	if cplx.LengthIsZero(a) {
		return newLine(b, c)
	}
	return newCircle(b/complex(a, 0), c/a)
}

// newCircle builds a circle that already has a = 1.
func newCircle(b complex128, c float64) CircLine {
	return CircLine{kind: KindCircle, a: 1, b: b, c: c}
}

// newLine builds a line with b scaled by 1/FastModulus(b).
func newLine(b complex128, c float64) CircLine {
	if s := cplx.FastModulus(b); s > 0 {
		b /= complex(s, 0)
		c /= s
	}
	return CircLine{kind: KindLine, a: 0, b: b, c: c}
}

// NewCircle returns the circle with the given center and radius.
func NewCircle(center complex128, radius float64) CircLine {
	return NewCircleRadiusSquared(center, radius*radius)
}

// NewCircleRadiusSquared returns the circle with the given center and squared
// radius.
func NewCircleRadiusSquared(center complex128, radiusSquared float64) CircLine {
	return newCircle(-center, cplx.ModulusSquared(center)-radiusSquared)
}

// Unit returns the unit circle, the boundary of the Poincaré disc.
func Unit() CircLine {
	return NewCircle(0, 1)
}

// NewLineCoeffs returns the line a·x + b·y + c = 0 for real a, b, c.
func NewLineCoeffs(a, b, c float64) CircLine {
	return newLine(complex(a, b)/2, c)
}

// NewLine returns the line through p1 and p2.
func NewLine(p1, p2 complex128) CircLine {
	dx := real(p2) - real(p1)
	dy := imag(p2) - imag(p1)
	return NewLineCoeffs(-dy, dx, dy*real(p1)-dx*imag(p1))
}

// NewLineAngle returns the line through point with direction angle.
func NewLineAngle(point complex128, angle float64) CircLine {
	return NewLine(point, point-cplx.Polar(1, angle))
}

// Kind reports whether c is a circle or a line.
func (cl CircLine) Kind() Kind { return cl.kind }

// IsLine reports whether c is the line variant.
func (cl CircLine) IsLine() bool { return cl.kind == KindLine }

// IsCircle reports whether c is the circle variant.
func (cl CircLine) IsCircle() bool { return cl.kind == KindCircle }

// Coefficients returns the canonical (a, b, c).
func (cl CircLine) Coefficients() (a float64, b complex128, c float64) {
	return cl.a, cl.b, cl.c
}

// Center returns −b for a circle. A line has no center; it returns 0.
func (cl CircLine) Center() complex128 {
	if cl.kind == KindLine {
		return 0
	}
	return -cl.b
}

// RadiusSquared returns |Center|² − c for a circle and +Inf for a line.
func (cl CircLine) RadiusSquared() float64 {
	if cl.kind == KindLine {
		return math.Inf(1)
	}
	return cplx.ModulusSquared(cl.b) - cl.c
}

// Radius returns the circle radius, clamping tolerance-negative values to 0.
func (cl CircLine) Radius() float64 {
	return math.Sqrt(math.Max(0, cl.RadiusSquared()))
}

// Angle returns the direction angle of a line. It is 0 for a circle.
func (cl CircLine) Angle() float64 {
	if cl.kind == KindCircle {
		return 0
	}
	return math.Pi - math.Atan2(real(cl.b), imag(cl.b))
}

// Origin returns Evaluate(0) of a line.
func (cl CircLine) Origin() complex128 { return cl.Evaluate(0) }

// Direction returns the unit step Evaluate(1) − Evaluate(0) of a line.
func (cl CircLine) Direction() complex128 { return cl.Evaluate(1) - cl.Evaluate(0) }

// Evaluate returns the point with parameter t.
func (cl CircLine) Evaluate(t float64) complex128 {
	if cl.kind == KindCircle {
		return cl.Center() + cplx.Polar(cl.Radius(), t)
	}

	aa := 2 * real(cl.b)
	bb := 2 * imag(cl.b)
	if cplx.LengthIsZero(aa) {
		return complex(t, -cl.c/bb)
	}
	if cplx.LengthIsZero(bb) {
		return complex(-cl.c/aa, t)
	}

	p0 := complex(-cl.c/aa, 0)
	p1 := complex(0, -cl.c/bb)
	if cplx.IsZero(p1 - p0) {
		p1 = p0 + cplx.Polar(1, cl.Angle())
	}
	dir, err := cplx.Normalize(p1 - p0)
	if err != nil {
		dir = cplx.Polar(1, cl.Angle())
	}
	return p0 + dir*complex(t, 0)
}

// Project returns the point of cl nearest to p and its parameter.
func (cl CircLine) Project(p complex128) Evaluation {
	var t float64
	if cl.kind == KindCircle {
		t = cplx.Arg(p - cl.Center())
	} else {
		t = cplx.Dot(p-cl.Origin(), cl.Direction())
	}
	return Evaluation{Point: cl.Evaluate(t), Param: t}
}

// value evaluates the quadratic form at p.
func (cl CircLine) value(p complex128) float64 {
	return cl.a*cplx.ModulusSquared(p) + 2*real(cmplx.Conj(cl.b)*p) + cl.c
}

// ContainsPoint reports whether p satisfies the form within tolerance.
func (cl CircLine) ContainsPoint(p complex128) bool {
	return cplx.LengthIsZero(cl.value(p))
}

// IsPointOnLeft reports whether the form is non-negative at p, within
// tolerance. For a circle this is the outside.
func (cl CircLine) IsPointOnLeft(p complex128) bool {
	return cl.value(p)+cplx.LinearTolerance > 0
}

// ArePointsOnSameSide reports whether p1 and p2 fall on the same side of cl.
// Equal points are always on the same side.
func (cl CircLine) ArePointsOnSameSide(p1, p2 complex128) bool {
	if cplx.Equal(p1, p2) {
		return true
	}
	return cl.IsPointOnLeft(p1) == cl.IsPointOnLeft(p2)
}

// Translate returns cl moved by t.
func (cl CircLine) Translate(t complex128) CircLine {
	b := cl.b - complex(cl.a, 0)*t
	c := cl.c + cl.a*cplx.ModulusSquared(t) - 2*real(cmplx.Conj(cl.b)*t)
	if cl.kind == KindLine {
		return newLine(b, c)
	}
	return newCircle(b, c)
}

// Scale returns cl multiplied by s (a rotation and a dilation about 0).
func (cl CircLine) Scale(s complex128) CircLine {
	b := cl.b * s
	c := cl.c * cplx.ModulusSquared(s)
	if cl.kind == KindLine {
		return newLine(b, c)
	}
	return newCircle(b, c)
}

// Conjugate mirrors cl across the real axis.
func (cl CircLine) Conjugate() CircLine {
	return CircLine{kind: cl.kind, a: cl.a, b: cmplx.Conj(cl.b), c: cl.c}
}

// Inverse returns the image of cl under z ↦ 1/z. Circles and lines through
// the origin swap variants.
func (cl CircLine) Inverse() CircLine {
	return New(cl.c, cmplx.Conj(cl.b), cl.a)
}

// Normalized returns cl with a non-negative constant term for lines; circles
// are already normalized.
func (cl CircLine) Normalized() CircLine {
	if cl.kind == KindLine && cl.c < 0 {
		return CircLine{kind: KindLine, b: -cl.b, c: -cl.c}
	}
	return cl
}

// AsInversion returns the map which, applied to conj(z), inverts z in a
// circle or reflects it in a line:
//
//	circle: z ↦ Center + r²/(conj(z) − conj(Center))
//	line:   z ↦ −(b·conj(z) + c)/conj(b)
//
// To reflect a shape, compose with its conjugate:
// cl.AsInversion() applied to shape.Conjugate().
func (cl CircLine) AsInversion() mobius.Mobius {
	if cl.kind == KindLine {
		return mobius.Mobius{A: cl.b, B: complex(cl.c, 0), C: 0, D: -cmplx.Conj(cl.b)}
	}
	center := cl.Center()
	return mobius.Mobius{
		A: center,
		B: complex(cl.RadiusSquared()-cplx.ModulusSquared(center), 0),
		C: 1,
		D: -cmplx.Conj(center),
	}
}

// Transform returns the image of cl under m.
func (cl CircLine) Transform(m mobius.Mobius) CircLine {
	n := m.Inverse()
	h := mobius.Mobius{
		A: complex(cl.a, 0),
		B: cmplx.Conj(cl.b),
		C: cl.b,
		D: complex(cl.c, 0),
	}
	h = n.Transpose().Mul(h).Mul(n.Conjugate())
	return New(real(h.A), h.C, real(h.D))
}

// IsNormalTo reports whether cl and other meet at right angles.
func (cl CircLine) IsNormalTo(other CircLine) bool {
	switch {
	case cl.kind == KindLine && other.kind == KindLine:
		delta := math.Mod(math.Abs(cl.Angle()-other.Angle()), math.Pi)
		return cplx.AngleEquals(delta, math.Pi/2)
	case cl.kind == KindLine:
		return cl.ContainsPoint(other.Center())
	case other.kind == KindLine:
		return other.ContainsPoint(cl.Center())
	}

	xs, err := cl.Intersect(other)
	if err != nil || len(xs) == 0 {
		return false
	}
	p := xs[0].Point
	c0, c1 := cl.Center(), other.Center()
	return math.Abs(cplx.ModulusSquared(p-c0)+cplx.ModulusSquared(p-c1)-cplx.ModulusSquared(c0-c1)) <
		cplx.AngularTolerance
}

// MinorInterval returns the shorter parameter range between t0 and t1.
// Circle parameters are wrapped into [0, 2π) first, so the result may end
// beyond 2π.
func (cl CircLine) MinorInterval(t0, t1 float64) Interval {
	if cl.kind == KindLine {
		return Interval{Start: math.Min(t0, t1), End: math.Max(t0, t1)}
	}

	t0, t1 = wrapAngle(t0), wrapAngle(t1)
	lo, hi := math.Min(t0, t1), math.Max(t0, t1)
	if hi-lo < math.Pi {
		return Interval{Start: lo, End: hi}
	}
	return Interval{Start: hi, End: lo + 2*math.Pi}
}

// wrapAngle maps t into [0, 2π).
func wrapAngle(t float64) float64 {
	t = math.Mod(t, 2*math.Pi)
	if t < 0 {
		t += 2 * math.Pi
	}
	return t
}

// Polyline samples a circle at polylinePoints equally spaced parameters, or
// returns the two points at ±π of a line.
func (cl CircLine) Polyline() []complex128 {
	if cl.kind == KindLine {
		return []complex128{cl.Evaluate(-math.Pi), cl.Evaluate(math.Pi)}
	}
	pts := make([]complex128, polylinePoints)
	for i := range pts {
		pts[i] = cl.Evaluate(float64(i) / polylinePoints * 2 * math.Pi)
	}
	return pts
}

// Equal compares the canonical coefficients within tolerance.
func (cl CircLine) Equal(other CircLine) bool {
	return cl.kind == other.kind &&
		cplx.LengthEquals(cl.a, other.a) &&
		cplx.Equal(cl.b, other.b) &&
		cplx.LengthEquals(cl.c, other.c)
}

// String describes the variant and its geometry.
func (cl CircLine) String() string {
	if cl.kind == KindLine {
		return fmt.Sprintf("line(b=%v, c=%g)", cl.b, cl.c)
	}
	return fmt.Sprintf("circle(center=%v, r=%g)", cl.Center(), cl.Radius())
}

package cplx

import (
	"math"
	"math/cmplx"
)

// Polar returns r·e^{iθ}.
func Polar(r, theta float64) complex128 {
	return complex(r*math.Cos(theta), r*math.Sin(theta))
}

// Arg returns the argument of z in (-π, π].
func Arg(z complex128) float64 {
	return math.Atan2(imag(z), real(z))
}

// ModulusSquared returns |z|².
func ModulusSquared(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}

// FastModulus returns max(|re|, |im|), a cheap stand-in for |z| used for scaling.
func FastModulus(z complex128) float64 {
	return math.Max(math.Abs(real(z)), math.Abs(imag(z)))
}

// Dot returns the real dot product of a and b viewed as plane vectors.
func Dot(a, b complex128) float64 {
	return real(a)*real(b) + imag(a)*imag(b)
}

// Equal reports whether a and b lie within LinearTolerance of each other.
func Equal(a, b complex128) bool {
	return ModulusSquared(a-b) < LinearToleranceSquared
}

// IsZero reports whether z is within LinearTolerance of the origin.
func IsZero(z complex128) bool {
	return ModulusSquared(z) < LinearToleranceSquared
}

// LengthEquals reports whether two lengths agree within LinearTolerance.
func LengthEquals(a, b float64) bool {
	return math.Abs(a-b) < LinearTolerance
}

// LengthIsZero reports whether a length is within LinearTolerance of zero.
func LengthIsZero(a float64) bool {
	return math.Abs(a) < LinearTolerance
}

// AngleEquals reports whether two angles agree within AngularTolerance.
func AngleEquals(a, b float64) bool {
	return math.Abs(a-b) < AngularTolerance
}

// Normalize scales z to unit length.
// Returns ErrZeroModulus if |z| is within LinearTolerance of zero.
func Normalize(z complex128) (complex128, error) {
	m := cmplx.Abs(z)
	if LengthIsZero(m) {
		return 0, ErrZeroModulus
	}
	return z / complex(m, 0), nil
}

// IsFinite reports whether both parts of z are finite numbers.
func IsFinite(z complex128) bool {
	return !math.IsNaN(real(z)) && !math.IsNaN(imag(z)) &&
		!math.IsInf(real(z), 0) && !math.IsInf(imag(z), 0)
}

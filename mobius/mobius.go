package mobius

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/hyperdisc/cplx"
)

// Mobius is the map z ↦ (A·z+B)/(C·z+D). The zero value is singular; use
// Identity or New.
type Mobius struct {
	A, B, C, D complex128
}

// New returns the map with coefficients a, b, c, d.
// A tolerance-singular quadruple (ad−bc ≈ 0) yields Identity instead.
func New(a, b, c, d complex128) Mobius {
	if cplx.IsZero(a*d - b*c) {
		return Identity()
	}
	return Mobius{A: a, B: b, C: c, D: d}
}

// Identity returns z ↦ z.
func Identity() Mobius {
	return Mobius{A: 1, B: 0, C: 0, D: 1}
}

// Rotation returns z ↦ e^{iφ}·z.
func Rotation(phi float64) Mobius {
	return New(cplx.Polar(1, phi), 0, 0, 1)
}

// Translation returns z ↦ z + t.
func Translation(t complex128) Mobius {
	return New(1, t, 0, 1)
}

// DiscAutomorphism returns the disc isometry sending a to 0 followed by a
// rotation by φ (Visual Complex Analysis, p. 320).
// For φ = 0 the map is an involution, so it also sends 0 to a.
func DiscAutomorphism(a complex128, phi float64) Mobius {
	return Rotation(phi).Mul(New(1, -a, cmplx.Conj(a), -1))
}

// DiscTranslation returns the disc isometry carrying a to b.
func DiscTranslation(a, b complex128) Mobius {
	return DiscAutomorphism(b, 0).Mul(DiscAutomorphism(a, 0).Inverse())
}

// Mul returns the composition m∘n: n is applied first, then m.
// The product is taken verbatim; only New collapses singular input.
func (m Mobius) Mul(n Mobius) Mobius {
	return Mobius{
		A: m.A*n.A + m.B*n.C,
		B: m.A*n.B + m.B*n.D,
		C: m.C*n.A + m.D*n.C,
		D: m.C*n.B + m.D*n.D,
	}
}

// Compose folds maps right to left: Compose(m3, m2, m1) applies m1 first.
// With no arguments it returns Identity.
func Compose(ms ...Mobius) Mobius {
	out := Identity()
	for _, m := range ms {
		out = out.Mul(m)
	}
	return out
}

// Apply evaluates the map at z.
func (m Mobius) Apply(z complex128) complex128 {
	return (m.A*z + m.B) / (m.C*z + m.D)
}

// Scale multiplies the numerator row by s, i.e. z ↦ s·m(z).
func (m Mobius) Scale(s float64) Mobius {
	k := complex(s, 0)
	return New(m.A*k, m.B*k, m.C, m.D)
}

// Determinant returns AD − BC.
func (m Mobius) Determinant() complex128 {
	return m.A*m.D - m.B*m.C
}

// IsSingular reports whether the determinant is within tolerance of zero.
func (m Mobius) IsSingular() bool {
	return cplx.IsZero(m.Determinant())
}

// Inverse returns the adjugate (D,−B,−C,A); the determinant is not rescaled.
func (m Mobius) Inverse() Mobius {
	return Mobius{A: m.D, B: -m.B, C: -m.C, D: m.A}
}

// Conjugate conjugates every coefficient.
func (m Mobius) Conjugate() Mobius {
	return Mobius{A: cmplx.Conj(m.A), B: cmplx.Conj(m.B), C: cmplx.Conj(m.C), D: cmplx.Conj(m.D)}
}

// Transpose swaps B and C.
func (m Mobius) Transpose() Mobius {
	return Mobius{A: m.A, B: m.C, C: m.B, D: m.D}
}

// ConjugateTranspose returns the Hermitian adjoint of the matrix.
func (m Mobius) ConjugateTranspose() Mobius {
	return Mobius{A: cmplx.Conj(m.A), B: cmplx.Conj(m.C), C: cmplx.Conj(m.B), D: cmplx.Conj(m.D)}
}

// Equal reports whether m and n act identically: both matrices are scaled by
// their entry at the position where m is largest and then compared.
func (m Mobius) Equal(n Mobius) bool {
	mc := [4]complex128{m.A, m.B, m.C, m.D}
	nc := [4]complex128{n.A, n.B, n.C, n.D}
	k := 0
	for i := 1; i < 4; i++ {
		if cplx.ModulusSquared(mc[i]) > cplx.ModulusSquared(mc[k]) {
			k = i
		}
	}
	if cplx.IsZero(mc[k]) || cplx.IsZero(nc[k]) {
		return false
	}
	for i := range mc {
		if !cplx.Equal(mc[i]/mc[k], nc[i]/nc[k]) {
			return false
		}
	}
	return true
}

// String formats the four coefficients.
func (m Mobius) String() string {
	return fmt.Sprintf("Mobius(%v, %v, %v, %v)", m.A, m.B, m.C, m.D)
}

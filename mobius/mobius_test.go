package mobius_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/mobius"
)

// randomComplex draws a point from the square [-1,1]².
func randomComplex(rng *rand.Rand) complex128 {
	return complex(2*rng.Float64()-1, 2*rng.Float64()-1)
}

// randomMobius draws a well-conditioned map (|det| bounded away from zero).
func randomMobius(rng *rand.Rand) mobius.Mobius {
	for {
		m := mobius.New(randomComplex(rng), randomComplex(rng), randomComplex(rng), randomComplex(rng))
		if cmplx.Abs(m.Determinant()) > 0.1 {
			return m
		}
	}
}

// closeTo compares with a relative tolerance suitable for chained arithmetic.
func closeTo(t *testing.T, want, got complex128, msg string) {
	t.Helper()
	scale := math.Max(1, cmplx.Abs(want))
	assert.Less(t, cmplx.Abs(want-got)/scale, 1e-7, "%s: want %v, got %v", msg, want, got)
}

// TestAssociativity checks (m1·m2)·m3 == m1·(m2·m3) on sample points.
func TestAssociativity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		m1, m2, m3 := randomMobius(rng), randomMobius(rng), randomMobius(rng)
		z := randomComplex(rng) * 0.5
		left := m1.Mul(m2).Mul(m3)
		right := m1.Mul(m2.Mul(m3))
		closeTo(t, left.Apply(z), right.Apply(z), "associativity")
	}
}

// TestInverse checks m·m⁻¹ acts as the identity for non-singular maps.
func TestInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		m := randomMobius(rng)
		z := randomComplex(rng)
		closeTo(t, z, m.Mul(m.Inverse()).Apply(z), "m*m^-1")
		closeTo(t, z, m.Inverse().Apply(m.Apply(z)), "m^-1(m(z))")
	}
}

// TestMul_Order verifies that the right operand is applied first.
func TestMul_Order(t *testing.T) {
	rot := mobius.Rotation(math.Pi / 2)
	tr := mobius.Translation(1)
	z := complex(0, 0)

	// translate then rotate: 0 → 1 → i
	assert.True(t, cplx.Equal(1i, rot.Mul(tr).Apply(z)))
	// rotate then translate: 0 → 0 → 1
	assert.True(t, cplx.Equal(1, tr.Mul(rot).Apply(z)))
	assert.True(t, cplx.Equal(1i, mobius.Compose(rot, tr).Apply(z)))
	assert.True(t, mobius.Compose().Equal(mobius.Identity()))
}

// TestNew_SingularCollapsesToIdentity documents the identity fallback.
func TestNew_SingularCollapsesToIdentity(t *testing.T) {
	m := mobius.New(1, 2, 2, 4) // det = 0
	assert.Equal(t, mobius.Identity(), m)
	assert.False(t, m.IsSingular())

	// a disc automorphism centred on the boundary degenerates the same way
	d := mobius.DiscAutomorphism(1, 0)
	assert.True(t, d.Equal(mobius.Identity()))
}

// TestDiscAutomorphism checks a ↦ 0 and preservation of the unit circle.
func TestDiscAutomorphism(t *testing.T) {
	a := complex(0.3, -0.4)
	m := mobius.DiscAutomorphism(a, 0.7)
	assert.True(t, cplx.Equal(0, m.Apply(a)))
	for k := 0; k < 12; k++ {
		z := cplx.Polar(1, float64(k)*math.Pi/6)
		assert.InDelta(t, 1.0, cmplx.Abs(m.Apply(z)), 1e-12)
	}
	// involution for φ = 0
	inv := mobius.DiscAutomorphism(a, 0)
	assert.True(t, cplx.Equal(a, inv.Apply(0)))
}

// TestDiscTranslation carries a to b and keeps the disc.
func TestDiscTranslation(t *testing.T) {
	a, b := complex(0.2, 0.1), complex(-0.5, 0.3)
	m := mobius.DiscTranslation(a, b)
	assert.True(t, cplx.Equal(b, m.Apply(a)))
	z := cplx.Polar(0.9, 2)
	assert.Less(t, cmplx.Abs(m.Apply(z)), 1.0)
	assert.True(t, cplx.Equal(b, mobius.DiscTranslation(0, b).Apply(0)))
}

// TestConjugateTranspose relates the algebraic companions.
func TestConjugateTranspose(t *testing.T) {
	m := mobius.New(1+2i, 3-1i, -2i, 4)
	assert.Equal(t, m.Conjugate().Transpose(), m.ConjugateTranspose())
	assert.Equal(t, m, m.Transpose().Transpose())
	assert.Equal(t, m, m.Conjugate().Conjugate())
	require.False(t, m.IsSingular())
	assert.True(t, cplx.Equal(m.Determinant(), m.Transpose().Determinant()))
}

// TestScale covers the scalar product.
func TestScale(t *testing.T) {
	s := mobius.Identity().Scale(2)
	assert.True(t, cplx.Equal(4+2i, s.Apply(2+1i)))
}

// TestEqual_ProjectiveScaling treats proportional matrices as the same map.
func TestEqual_ProjectiveScaling(t *testing.T) {
	m := mobius.New(1, 2i, 3, 4)
	k := complex(0, 2)
	n := mobius.New(m.A*k, m.B*k, m.C*k, m.D*k)
	assert.True(t, m.Equal(n))
	assert.False(t, m.Equal(mobius.Identity()))
	assert.Contains(t, m.String(), "Mobius(")
}

package region_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperdisc/circline"
	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/region"
)

func TestCorrect(t *testing.T) {
	cases := []struct {
		name         string
		p, q         int
		wantP, wantQ int
	}{
		{"already hyperbolic", 5, 5, 5, 5},
		{"bump q", 5, 3, 5, 4},
		{"triangle", 3, 3, 3, 7},
		{"square", 4, 4, 4, 5},
		{"q below three", 6, 1, 6, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, q, err := region.Correct(tc.p, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantP, p)
			assert.Equal(t, tc.wantQ, q)
			assert.True(t, region.IsHyperbolic(p, q))
		})
	}

	_, _, err := region.Correct(2, 5)
	assert.ErrorIs(t, err, region.ErrInvalidP)
}

func TestCorrectP(t *testing.T) {
	p, q, err := region.CorrectP(3, 5)
	require.NoError(t, err)
	assert.Equal(t, 4, p)
	assert.Equal(t, 5, q)

	p, _, err = region.CorrectP(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 7, p)

	_, _, err = region.CorrectP(5, 2)
	assert.ErrorIs(t, err, region.ErrInvalidQ)
}

func TestCorrect_Sweep(t *testing.T) {
	for p := -3; p <= 30; p++ {
		for q := -3; q <= 30; q++ {
			cp, cq, err := region.Correct(p, q)
			if p < 3 {
				require.ErrorIs(t, err, region.ErrInvalidP, "{%d,%d}", p, q)
			} else {
				require.NoError(t, err, "{%d,%d}", p, q)
				require.Equal(t, p, cp)
				require.GreaterOrEqual(t, cq, q)
				require.True(t, region.IsHyperbolic(cp, cq), "{%d,%d} -> {%d,%d}", p, q, cp, cq)
				if cq > q {
					require.False(t, region.IsHyperbolic(cp, cq-1), "{%d,%d} -> {%d,%d} is not minimal", p, q, cp, cq)
				}
				_, err = region.New(cp, cq)
				require.NoError(t, err)
			}

			cp, cq, err = region.CorrectP(p, q)
			if q < 3 {
				require.ErrorIs(t, err, region.ErrInvalidQ, "{%d,%d}", p, q)
				continue
			}
			require.NoError(t, err, "{%d,%d}", p, q)
			require.Equal(t, q, cq)
			require.GreaterOrEqual(t, cp, p)
			require.True(t, region.IsHyperbolic(cp, cq), "{%d,%d} -> {%d,%d}", p, q, cp, cq)
			if cp > p {
				require.False(t, region.IsHyperbolic(cp-1, cq), "{%d,%d} -> {%d,%d} is not minimal", p, q, cp, cq)
			}
			_, err = region.New(cp, cq)
			require.NoError(t, err)
		}
	}
}

func TestNew_Rejects(t *testing.T) {
	_, err := region.New(4, 4)
	assert.ErrorIs(t, err, region.ErrNotHyperbolic)
	_, err = region.New(2, 9)
	assert.ErrorIs(t, err, region.ErrInvalidP)
	_, err = region.New(9, 2)
	assert.ErrorIs(t, err, region.ErrInvalidQ)
}

func TestNew_FiveFive(t *testing.T) {
	rg, err := region.New(5, 5)
	require.NoError(t, err)

	assert.Equal(t, 5, rg.P())
	assert.Equal(t, 5, rg.Q())
	assert.Equal(t, "{5,5}", rg.String())
	assert.InDelta(t, 1.057371, rg.R(), 1e-6)
	assert.InDelta(t, 1.455347, rg.D(), 1e-6)
	assert.InDelta(t, 0.1*math.Pi, rg.Phi(), 1e-12)

	assert.InDelta(t, 0.449727, real(rg.P1()), 1e-6)
	assert.InDelta(t, 0.326746, imag(rg.P1()), 1e-6)
	assert.InDelta(t, 0.397976, real(rg.P2()), 1e-6)
}

// TestRegionGeometry checks the incidences of the triangle for several pairs.
func TestRegionGeometry(t *testing.T) {
	for _, pq := range [][2]int{{5, 5}, {5, 4}, {3, 7}, {7, 3}, {4, 6}, {8, 8}} {
		rg, err := region.New(pq[0], pq[1])
		require.NoError(t, err)

		assert.True(t, rg.C().IsNormalTo(circline.Unit()), "%v: C must be orthogonal to the disc", rg)
		assert.True(t, rg.C().ContainsPoint(rg.P1()), "%v: P1 on C", rg)
		assert.True(t, rg.C().ContainsPoint(rg.P2()), "%v: P2 on C", rg)
		assert.True(t, rg.L1().ContainsPoint(rg.P2()), "%v: P2 on L1", rg)
		assert.True(t, rg.L2().ContainsPoint(rg.P1()), "%v: P1 on L2", rg)
		assert.InDelta(t, math.Pi/float64(rg.P()), cplx.Arg(rg.P1()), 1e-9)
		assert.Less(t, cmplx.Abs(rg.P1()), 1.0)
	}
}

func TestMesh(t *testing.T) {
	rg, err := region.New(5, 4)
	require.NoError(t, err)
	m := rg.Mesh()

	require.Len(t, m, region.MeshSize)
	assert.Equal(t, complex128(0), m[region.MeshCenter])
	assert.True(t, cplx.Equal(rg.P2(), m[region.MeshEdgeCenter]))
	assert.True(t, cplx.Equal(rg.P1(), m[region.MeshVertex]))

	for i := 0; i < 3; i++ {
		assert.True(t, rg.L1().ContainsPoint(m[region.MeshDual+i]), "dual %d", i)
		assert.True(t, rg.C().ContainsPoint(m[region.MeshHalfEdge+i]), "half edge %d", i)
		assert.True(t, rg.L2().ContainsPoint(m[region.MeshSpine+i]), "spine %d", i)
	}

	// Interior points fall strictly inside the triangle.
	for i := 0; i < 3; i++ {
		z := m[region.MeshInterior+i]
		assert.Greater(t, imag(z), 0.0)
		assert.Less(t, cplx.Arg(z), math.Pi/float64(rg.P()))
		assert.Greater(t, cmplx.Abs(z-complex(rg.D(), 0)), rg.R())
	}
}

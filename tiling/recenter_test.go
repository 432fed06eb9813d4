package tiling_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
	"github.com/katalvlaran/hyperdisc/tiling"
)

func seedFace(t testing.TB, p, q int) *face.Face {
	t.Helper()
	rg, err := region.New(p, q)
	require.NoError(t, err)
	return face.New(rg)
}

func TestRecenter_SeedIsStable(t *testing.T) {
	seed := seedFace(t, 5, 5)
	f, flips, err := tiling.Recenter(seed)
	require.NoError(t, err)
	assert.Equal(t, 0, flips)
	assert.Same(t, seed, f)
}

func TestRecenter_OneStep(t *testing.T) {
	seed := seedFace(t, 5, 5)
	moved := seed.Transform(mobius.DiscTranslation(0, -0.5))
	require.GreaterOrEqual(t, moved.ConvexEdge(), 0)

	f, flips, err := tiling.Recenter(moved)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, flips, 1)
	assert.LessOrEqual(t, flips, 5)
	assert.Equal(t, -1, f.ConvexEdge())
	assert.Less(t, cmplx.Abs(f.Center()), 0.5)
	assert.Equal(t, flips%2 == 1, f.IsFlipped())
}

// TestRecenter_Converges moves seeds far from the center and checks that
// the result is the tile containing the origin.
func TestRecenter_Converges(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, pq := range [][2]int{{5, 5}, {7, 3}, {4, 6}, {3, 8}} {
		seed := seedFace(t, pq[0], pq[1])
		circumradius := cmplx.Abs(seed.Vertices()[0])
		for i := 0; i < 20; i++ {
			b := cplx.Polar(0.8*rng.Float64(), 2*math.Pi*rng.Float64())
			m := mobius.DiscTranslation(0, b).Mul(mobius.Rotation(2 * math.Pi * rng.Float64()))

			f, flips, err := tiling.Recenter(seed.Transform(m))
			require.NoError(t, err)
			require.Less(t, flips, tiling.MaxFlips, "{%d,%d} b=%v", pq[0], pq[1], b)
			assert.Equal(t, -1, f.ConvexEdge())
			assert.LessOrEqual(t, cmplx.Abs(f.Center()), circumradius+1e-9)
		}
	}
}

func TestRebuild(t *testing.T) {
	seed := seedFace(t, 5, 5)
	cases := []struct {
		name    string
		current *face.Face
	}{
		{"moved", seed.Transform(mobius.DiscTranslation(0, 0.2+0.1i).Mul(mobius.Rotation(0.3)))},
		{"mirrored", seed.Reflect(0).Transform(mobius.DiscTranslation(0.687, 0.1-0.2i))},
		{"identity", seed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tiling.Rebuild(tc.current, seed)
			require.NoError(t, err)
			assert.Equal(t, tc.current.IsFlipped(), got.IsFlipped())
			assert.InDelta(t, 0, cmplx.Abs(tc.current.Center()-got.Center()), 1e-6)
			for i := range got.Vertices() {
				assert.InDelta(t, 0, cmplx.Abs(tc.current.Vertices()[i]-got.Vertices()[i]), 1e-6, "vertex %d", i)
				assert.InDelta(t, 0, cmplx.Abs(tc.current.Edges()[i].Start-got.Edges()[i].Start), 1e-6, "edge %d", i)
			}
		})
	}
}

func TestNilFaces(t *testing.T) {
	_, _, err := tiling.Recenter(nil)
	assert.ErrorIs(t, err, tiling.ErrNilSeed)
	_, err = tiling.Rebuild(nil, seedFace(t, 5, 5))
	assert.ErrorIs(t, err, tiling.ErrNilSeed)
	_, err = tiling.Discover(nil, tiling.DefaultTuning())
	assert.ErrorIs(t, err, tiling.ErrNilSeed)
}

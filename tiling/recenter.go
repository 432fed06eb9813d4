package tiling

import (
	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/mobius"
)

// Recenter flips f across convex edges until none is left and returns the
// resulting tile with the number of flips. The loop stops after MaxFlips.
func Recenter(f *face.Face) (*face.Face, int, error) {
	if f == nil {
		return nil, 0, ErrNilSeed
	}
	flips := 0
	for ; flips < MaxFlips; flips++ {
		i := f.ConvexEdge()
		if i < 0 {
			break
		}
		f = f.Reflect(i)
	}
	return f, flips, nil
}

// Rebuild returns a fresh image of seed occupying the same place as current:
// same center, same vertex 0 and the same mirror parity. seed must be
// centered at the origin, as face.New builds it.
//
// The map is the disc automorphism through current's center composed with
// the rotation that lines seed's vertex 0 up with current's.
func Rebuild(current, seed *face.Face) (*face.Face, error) {
	if current == nil || seed == nil {
		return nil, ErrNilSeed
	}
	base := seed
	if current.IsFlipped() != seed.IsFlipped() {
		base = seed.Conjugate()
	}

	toCenter := mobius.DiscAutomorphism(current.Center(), 0)
	angle := cplx.Arg(toCenter.Apply(current.Vertices()[0]))
	rotation := mobius.Rotation(angle - cplx.Arg(base.Vertices()[0]))
	return base.Transform(toCenter.Mul(rotation)), nil
}

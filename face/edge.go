package face

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyperdisc/circline"
	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/mobius"
)

// Edge is one side of a Face.
type Edge struct {
	Circ  circline.CircLine
	Start complex128
	End   complex128
}

// Transform returns the image of e under m.
func (e Edge) Transform(m mobius.Mobius) Edge {
	return Edge{Circ: e.Circ.Transform(m), Start: m.Apply(e.Start), End: m.Apply(e.End)}
}

// Conjugate mirrors e across the real axis, swapping the endpoints so the
// mirrored face is still traversed clockwise.
func (e Edge) Conjugate() Edge {
	return Edge{Circ: e.Circ.Conjugate(), Start: cmplx.Conj(e.End), End: cmplx.Conj(e.Start)}
}

// IsConvex reports whether the supporting circle's center lies on the face's
// side of the chord Start→End, i.e. the edge bulges away from the face. Only
// circle edges can be convex.
func (e Edge) IsConvex() bool {
	if !e.Circ.IsCircle() {
		return false
	}
	a1 := cplx.Arg(e.End - e.Start)
	a2 := cplx.Arg(e.Circ.Center() - e.Start)
	return math.Mod(a1-a2+4*math.Pi, 2*math.Pi) < math.Pi
}

// Trimmed returns the arc (or segment) between the endpoints.
func (e Edge) Trimmed() circline.Trimmed {
	return circline.NewTrimmed(e.Circ, e.Start, e.End)
}

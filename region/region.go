package region

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hyperdisc/circline"
	"github.com/katalvlaran/hyperdisc/cplx"
)

// IsHyperbolic reports whether {p,q} tiles the hyperbolic plane.
func IsHyperbolic(p, q int) bool {
	return (p-2)*(q-2) > 4
}

// Correct returns (p, q') where q' ≥ q is the smallest value making the pair
// hyperbolic.
func Correct(p, q int) (int, int, error) {
	if p < 3 {
		return p, q, fmt.Errorf("%w: got %d", ErrInvalidP, p)
	}
	for !IsHyperbolic(p, q) {
		q++
	}
	return p, q, nil
}

// CorrectP returns (p', q) where p' ≥ p is the smallest value making the pair
// hyperbolic.
func CorrectP(p, q int) (int, int, error) {
	if q < 3 {
		return p, q, fmt.Errorf("%w: got %d", ErrInvalidQ, q)
	}
	for !IsHyperbolic(p, q) {
		p++
	}
	return p, q, nil
}

// Region is the fundamental triangle of {p,q}. It is a small value and safe to
// copy.
type Region struct {
	p, q      int
	r, d, phi float64
	l1, l2, c circline.CircLine
}

// New computes the region for a hyperbolic pair.
func New(p, q int) (Region, error) {
	if p < 3 {
		return Region{}, fmt.Errorf("%w: got %d", ErrInvalidP, p)
	}
	if q < 3 {
		return Region{}, fmt.Errorf("%w: got %d", ErrInvalidQ, q)
	}
	if !IsHyperbolic(p, q) {
		return Region{}, fmt.Errorf("%w: {%d,%d}", ErrNotHyperbolic, p, q)
	}

	sinP := math.Sin(math.Pi / float64(p))
	cosQ := math.Cos(math.Pi / float64(q))
	sinP2, cosQ2 := sinP*sinP, cosQ*cosQ

	rg := Region{
		p:   p,
		q:   q,
		r:   math.Sqrt(sinP2 / (cosQ2 - sinP2)),
		d:   math.Sqrt(cosQ2 / (cosQ2 - sinP2)),
		phi: math.Pi * (0.5 - 1/float64(p) - 1/float64(q)),
	}
	rg.l1 = circline.NewLine(0, 1)
	rg.l2 = circline.NewLineAngle(0, math.Pi/float64(p))
	rg.c = circline.NewCircle(complex(rg.d, 0), rg.r)
	return rg, nil
}

// P returns the number of sides of each tile.
func (rg Region) P() int { return rg.p }

// Q returns the number of tiles meeting at each vertex.
func (rg Region) Q() int { return rg.q }

// R returns the radius of the arc C.
func (rg Region) R() float64 { return rg.r }

// D returns the distance from the origin to the center of C.
func (rg Region) D() float64 { return rg.d }

// Phi returns the angle subtended by the arc between P2 and P1, seen from the
// center of C.
func (rg Region) Phi() float64 { return rg.phi }

// L1 returns the real axis side.
func (rg Region) L1() circline.CircLine { return rg.l1 }

// L2 returns the side at angle π/p.
func (rg Region) L2() circline.CircLine { return rg.l2 }

// C returns the circle carrying the tile edge.
func (rg Region) C() circline.CircLine { return rg.c }

// P1 returns the tile vertex.
func (rg Region) P1() complex128 {
	return complex(rg.d, 0) + cplx.Polar(rg.r, math.Pi-rg.phi)
}

// P2 returns the edge midpoint.
func (rg Region) P2() complex128 {
	return complex(rg.d-rg.r, 0)
}

// Mesh subdivides the triangle (see the package documentation for layout).
func (rg Region) Mesh() Mesh {
	var m Mesh
	p1, p2 := rg.P1(), rg.P2()
	for i := 0; i < meshSteps; i++ {
		t := float64(i) / meshSteps
		m[MeshCenter+i] = p2 * complex(t, 0)
		m[MeshEdgeCenter+i] = complex(rg.d, 0) + cplx.Polar(rg.r, math.Pi-rg.phi*t)
		m[MeshVertex+i] = p1 * complex(1-t, 0)
	}
	m[MeshInterior] = (p1 + p2) / 4
	m[MeshInterior+1] = (p2 + p1/2) / 2
	m[MeshInterior+2] = (p1 + p2/2) / 2
	return m
}

// String returns the Schläfli symbol.
func (rg Region) String() string {
	return fmt.Sprintf("{%d,%d}", rg.p, rg.q)
}

package face

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
)

// triple holds the three inner mesh points along one side of a half-sector.
type triple [3]complex128

// Face is one tile. All slices are owned by the Face and must be treated as
// read-only by callers.
type Face struct {
	region      region.Region
	mesh        region.Mesh
	center      complex128
	edges       []Edge
	vertices    []complex128
	edgeCenters []complex128
	duals       []triple // p: center → edge center
	spines      []triple // p: vertex → center
	halfEdges   []triple // 2p: [0,p) upper half-sectors, [p,2p) their mirrors
	interiors   []triple // 2p, same split as halfEdges
	flipped     bool
}

// New builds the seed tile of rg: centered at the origin, vertex 0 at angle
// π/p, edge 0 crossing the positive real axis.
func New(rg region.Region) *Face {
	p := rg.P()
	mesh := rg.Mesh()
	f := alloc(rg, mesh, p)

	increment := mobius.Rotation(2 * math.Pi / float64(p))
	p1 := rg.P1()
	edge := Edge{Circ: rg.C(), Start: p1, End: increment.Inverse().Apply(p1)}

	rotation := mobius.Identity()
	for i := 0; i < p; i++ {
		rot := rotation.Apply
		f.edges[i] = edge.Transform(rotation)
		f.vertices[i] = rot(mesh[region.MeshVertex])
		f.edgeCenters[i] = rot(mesh[region.MeshEdgeCenter])
		for k := 0; k < 3; k++ {
			f.duals[i][k] = rot(mesh[region.MeshDual+k])
			f.spines[i][k] = rot(mesh[region.MeshSpine+k])
			f.halfEdges[i][k] = rot(mesh[region.MeshHalfEdge+k])
			f.halfEdges[i+p][k] = rot(cmplx.Conj(mesh[region.MeshHalfEdge+k]))
			f.interiors[i][k] = rot(mesh[region.MeshInterior+k])
			f.interiors[i+p][k] = rot(cmplx.Conj(mesh[region.MeshInterior+k]))
		}
		rotation = rotation.Mul(increment)
	}
	return f
}

// alloc returns a Face with every slice sized for p.
func alloc(rg region.Region, mesh region.Mesh, p int) *Face {
	return &Face{
		region:      rg,
		mesh:        mesh,
		edges:       make([]Edge, p),
		vertices:    make([]complex128, p),
		edgeCenters: make([]complex128, p),
		duals:       make([]triple, p),
		spines:      make([]triple, p),
		halfEdges:   make([]triple, 2*p),
		interiors:   make([]triple, 2*p),
	}
}

// derive builds a new Face by mapping every point through pt and every edge
// through edge. flip toggles the mirror flag.
func (f *Face) derive(pt func(complex128) complex128, edge func(Edge) Edge, flip bool) *Face {
	p := len(f.edges)
	out := alloc(f.region, f.mesh, p)
	out.center = pt(f.center)
	out.flipped = f.flipped != flip

	for i := 0; i < p; i++ {
		out.edges[i] = edge(f.edges[i])
		out.vertices[i] = pt(f.vertices[i])
		out.edgeCenters[i] = pt(f.edgeCenters[i])
		out.duals[i] = mapTriple(f.duals[i], pt)
		out.spines[i] = mapTriple(f.spines[i], pt)
	}
	for i := 0; i < 2*p; i++ {
		out.halfEdges[i] = mapTriple(f.halfEdges[i], pt)
		out.interiors[i] = mapTriple(f.interiors[i], pt)
	}
	return out
}

func mapTriple(t triple, pt func(complex128) complex128) triple {
	return triple{pt(t[0]), pt(t[1]), pt(t[2])}
}

// Transform returns the image of f under m. The mirror flag is kept.
func (f *Face) Transform(m mobius.Mobius) *Face {
	return f.derive(m.Apply, func(e Edge) Edge { return e.Transform(m) }, false)
}

// Conjugate returns f mirrored across the real axis, with IsFlipped toggled.
func (f *Face) Conjugate() *Face {
	return f.derive(cmplx.Conj, Edge.Conjugate, true)
}

// Reflect returns the neighbor of f across edge i: the inversion in that
// edge's circle applied to the conjugated face.
func (f *Face) Reflect(i int) *Face {
	inv := f.edges[i].Circ.AsInversion()
	return f.derive(
		func(z complex128) complex128 { return inv.Apply(cmplx.Conj(z)) },
		func(e Edge) Edge { return e.Conjugate().Transform(inv) },
		true,
	)
}

// ConvexEdge returns the index of the first convex edge, or -1.
func (f *Face) ConvexEdge() int {
	for i, e := range f.edges {
		if e.IsConvex() {
			return i
		}
	}
	return -1
}

// Region returns the fundamental region the face was built from.
func (f *Face) Region() region.Region { return f.region }

// P returns the number of edges.
func (f *Face) P() int { return len(f.edges) }

// Center returns the image of the tile center.
func (f *Face) Center() complex128 { return f.center }

// Edges returns the p edges in clockwise order.
func (f *Face) Edges() []Edge { return f.edges }

// Vertices returns the p tile corners. In the seed, edge i runs from vertex i
// to vertex i−1.
func (f *Face) Vertices() []complex128 { return f.vertices }

// EdgeCenters returns the midpoint of each edge.
func (f *Face) EdgeCenters() []complex128 { return f.edgeCenters }

// IsFlipped reports whether f is an odd number of mirrorings away from the
// seed.
func (f *Face) IsFlipped() bool { return f.flipped }

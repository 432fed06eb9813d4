package face

import "github.com/katalvlaran/hyperdisc/region"

// Vertex is a mesh point: its position in the disc and its texture
// coordinate, the matching point of the fundamental mesh.
type Vertex struct {
	Pos complex128
	UV  complex128
}

// Triangle is one piece of a face tessellation.
type Triangle struct {
	V [3]Vertex

	// Mirrored marks the second (mirror-image) half of a sector.
	Mirrored bool

	// Flipped copies the owning face's IsFlipped.
	Flipped bool
}

// Inverted reports whether the triangle is drawn with inverted colours when
// inversion is enabled. Neighbouring half-sectors always disagree.
func (t Triangle) Inverted(isInverting bool) bool {
	return isInverting && t.Flipped != t.Mirrored
}

// TrianglesPerFace returns the tessellation size for a p-gon.
func TrianglesPerFace(p int) int {
	return 32 * p
}

// Triangles appends the tessellation of f to dst and returns the extended
// slice. Each half-sector is covered by four strips running from the center
// out to the edge and up to the vertex.
func (f *Face) Triangles(dst []Triangle) []Triangle {
	p := len(f.edges)
	for i := 0; i < p; i++ {
		dst = f.appendHalfSector(dst, i, i, i, false)
		dst = f.appendHalfSector(dst, i, (i+p-1)%p, i+p, true)
	}
	return dst
}

// appendHalfSector emits one half-sector: i selects the dual edge and edge
// center, s the spine and vertex, h the half-edge and interior points.
func (f *Face) appendHalfSector(dst []Triangle, i, s, h int, mirrored bool) []Triangle {
	v := func(pos complex128, idx int) Vertex {
		return Vertex{Pos: pos, UV: f.mesh[idx]}
	}
	dual, spine, half, in := f.duals[i], f.spines[s], f.halfEdges[h], f.interiors[h]

	strips := [4][]Vertex{
		{
			v(f.center, region.MeshCenter),
			v(spine[2], region.MeshSpine+2),
			v(dual[0], region.MeshDual),
			v(in[0], region.MeshInterior),
			v(dual[1], region.MeshDual+1),
			v(in[1], region.MeshInterior+1),
			v(dual[2], region.MeshDual+2),
			v(half[0], region.MeshHalfEdge),
			v(f.edgeCenters[i], region.MeshEdgeCenter),
		},
		{
			v(spine[2], region.MeshSpine+2),
			v(spine[1], region.MeshSpine+1),
			v(in[0], region.MeshInterior),
			v(in[2], region.MeshInterior+2),
			v(in[1], region.MeshInterior+1),
			v(half[1], region.MeshHalfEdge+1),
			v(half[0], region.MeshHalfEdge),
		},
		{
			v(spine[1], region.MeshSpine+1),
			v(spine[0], region.MeshSpine),
			v(in[2], region.MeshInterior+2),
			v(half[2], region.MeshHalfEdge+2),
			v(half[1], region.MeshHalfEdge+1),
		},
		{
			v(spine[0], region.MeshSpine),
			v(f.vertices[s], region.MeshVertex),
			v(half[2], region.MeshHalfEdge+2),
		},
	}

	for _, strip := range strips {
		for k := 0; k+2 < len(strip); k++ {
			dst = append(dst, Triangle{
				V:        [3]Vertex{strip[k], strip[k+1], strip[k+2]},
				Mirrored: mirrored,
				Flipped:  f.flipped,
			})
		}
	}
	return dst
}

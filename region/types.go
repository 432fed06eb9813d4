package region

import "errors"

var (
	// ErrInvalidP indicates a polygon with fewer than three sides.
	ErrInvalidP = errors.New("region: p must be at least 3")

	// ErrInvalidQ indicates fewer than three polygons around a vertex.
	ErrInvalidQ = errors.New("region: q must be at least 3")

	// ErrNotHyperbolic indicates a Euclidean or spherical pair.
	ErrNotHyperbolic = errors.New("region: (p-2)(q-2) must exceed 4")
)

// Indices into Mesh.
const (
	MeshCenter     = 0
	MeshDual       = 1 // 1..3
	MeshEdgeCenter = 4
	MeshHalfEdge   = 5 // 5..7
	MeshVertex     = 8
	MeshSpine      = 9  // 9..11
	MeshInterior   = 12 // 12..14

	// MeshSize is the number of mesh points.
	MeshSize = 15

	// meshSteps is the number of subdivisions along each triangle side.
	meshSteps = 4
)

// Mesh is the fixed subdivision of the fundamental triangle.
type Mesh [MeshSize]complex128

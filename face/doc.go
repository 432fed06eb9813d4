// Package face models a single tile of a {p,q} tiling in the Poincaré disc.
//
// What
//
//   - Edge: a supporting CircLine and two endpoints. Edges of a Face always
//     run clockwise around it, so the tile interior lies on their right.
//   - Face: center, p edges, p vertices, p edge centers and the images of the
//     fundamental mesh in each of the 2p half-sectors. A Face is built once
//     (New) and then only moved: Transform applies a Möbius map, Conjugate
//     mirrors across the real axis, Reflect mirrors across one of its edges.
//     Every operation allocates a fresh Face; nothing is shared or mutated.
//   - Triangles: the triangle-strip tessellation used by renderers, with
//     texture coordinates taken from the fundamental mesh.
//
// Orientation
//
//	Conjugate toggles IsFlipped. Renderers that alternate colours between
//	mirror-image half-sectors use Triangle.Inverted to stay consistent.
//
// Complexity
//
//	New, Transform, Conjugate, Reflect: O(p) with a fixed 3-point payload per
//	half-sector. Triangles: 32·p triangles per face.
package face

// Package region computes the fundamental triangle of a regular hyperbolic
// tiling {p,q}: p-gons, q of them around each vertex.
//
// What
//
//	For (p−2)(q−2) > 4 the tiling lives in the Poincaré disc and every tile
//	is the union of 2p copies of one triangle with vertices
//
//	  0 (tile center), P2 (edge midpoint, on the real axis), P1 (tile vertex)
//
//	bounded by the real axis L1, the ray L2 at angle π/p, and an arc of the
//	circle C orthogonal to the unit circle:
//
//	  r = √( sin²(π/p) / (cos²(π/q) − sin²(π/p)) )
//	  d = √( cos²(π/q) / (cos²(π/q) − sin²(π/p)) )
//	  φ = π·(½ − 1/p − 1/q)
//
//	C has center d and radius r; P1 = d + r·e^{i(π−φ)}, P2 = d − r.
//
// Mesh
//
//	Mesh returns 15 points subdividing the triangle, shared by every tile:
//
//	  0       center            8       vertex P1
//	  1..3    dual edge 0 → P2  9..11   spine P1 → 0
//	  4       edge center P2    12..14  interior centroids
//	  5..7    arc P2 → P1
//
// Correction
//
//	Correct and CorrectP push a (p,q) pair into the hyperbolic regime by
//	stepping q (resp. p) upwards, which is how interactive controls keep the
//	pair valid while the user edits one value.
//
// Errors
//
//   - ErrInvalidP        p < 3 while correcting q.
//   - ErrInvalidQ        q < 3 while correcting p.
//   - ErrNotHyperbolic   New called with (p−2)(q−2) ≤ 4.
package region

// Package tiling generates the visible part of a {p,q} tiling of the
// Poincaré disc, frame after frame, around a moving viewpoint.
//
// What
//
//   - Recenter: flip the current tile across convex edges until it is the
//     tile nearest the disc center again.
//   - Rebuild: replace the current tile by a fresh image of the seed tile to
//     shed the rounding error of repeated Möbius composition.
//   - Discover: bounded breadth-first search over the tiling's dual graph,
//     reflecting tiles across their edges until they leave the visible radius.
//   - Tuning: the adaptive visible radius, passed in and returned explicitly.
//   - Disc: a session tying the above together: Frame(movement) moves,
//     recenters, rebuilds and discovers.
//
// Why
//
//	The viewer never moves the tiling, only the current tile. Each frame
//	starts from one well-conditioned tile near the center and regrows the
//	rest, so numerical error cannot accumulate in tiles far from the center.
//
// Algorithm (Discover)
//
//  1. Seed the queue and the center set with the current tile.
//  2. Pop a tile; for each edge skip it when it is convex (it faces the
//     explored region), a line, or a circle with r² below MinRadiusSquared.
//  3. Reflect the tile across the edge. Skip the image when |center|²
//     exceeds the circle limit or when its center was already discovered.
//  4. Otherwise enqueue it and append it to the result.
//  5. Before expanding each tile, stop (Truncated) if the wall-clock budget
//     of 1.5× the draw-time target is spent.
//
// Complexity
//
//	O(F·p) reflections for F discovered tiles, each O(p). The center set
//	answers membership in O(1) expected time per lookup.
//
// Options
//
//	Functional options in the usual style: WithContext, WithScratch,
//	WithBudget, WithClock, WithMinRadiusSquared, WithSectors, WithOnDiscover.
//	Invalid values are reported as ErrOptionViolation.
//
// Errors
//
//   - ErrNilSeed          Discover, Recenter or Rebuild called with a nil face.
//   - ErrOptionViolation  an option carried an invalid value.
//   - context errors      the context was cancelled mid-traversal; the
//     partial result is returned alongside.
//
// Geometry never fails a frame: degenerate tiles are skipped.
package tiling

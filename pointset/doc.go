// Package pointset provides a spatial set of disc points with tolerant
// membership, used to deduplicate tile centers during tiling discovery.
//
// Points are bucketed by angular sector and by a band of squared modulus:
//
//	sector = ⌊(arg z + π) / (2π/n)⌋ mod n
//	band   = ⌊|z|² · 10000⌋
//
// Contains reports a hit when some stored point lies within LinearTolerance
// of the query. Buckets are much wider than the tolerance, so a lookup checks
// at most the few buckets touched by the tolerance square around the query.
// Points within a tiny radius of the origin share sector 0, where all sectors
// meet.
//
// Reset empties the set but keeps every bucket's backing array, so a set
// reused frame after frame stops allocating once it has seen a typical frame.
//
// A Set is not safe for concurrent use.
package pointset

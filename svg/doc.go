// Package svg writes a discovered tiling as an SVG document.
//
// Every tile edge becomes its own path: a circular arc for edges on circles
// orthogonal to the rim, a straight segment for diameters. Coordinates are
// disc units with y flipped so the picture matches the screen. The view box
// is computed with geom.Rect from the sampled edges, optionally grown to the
// whole unit disc.
package svg

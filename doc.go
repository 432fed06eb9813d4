// Package hyperdisc renders regular hyperbolic tilings {p,q} in the
// Poincaré disc model and lets you fly through them in real time.
//
// 🚀 What is hyperdisc?
//
//	A pure-Go tiling engine plus three front ends:
//		• Numeric core: tolerant complex arithmetic (cplx)
//		• Möbius group: composition, inversion, disc automorphisms (mobius)
//		• Generalized circles: lines and circles under one algebra (circline)
//		• Fundamental region and tile model for any hyperbolic {p,q} (region, face)
//		• Bounded breadth-first discovery with a time budget (tiling, pointset)
//		• Texture, raster and SVG output (texture, raster, svg)
//		• Interactive state and input mapping (control)
//
// ✨ Why hyperdisc?
//
//   - Every frame re-centers the nearest tile and rebuilds it from the seed,
//     so round-off never accumulates while you drift.
//   - Discovery adapts its circle limit to the measured frame time.
//   - The engine never logs, never panics, and allocates per frame only
//     what the reusable Scratch cannot hold.
//
// Layout:
//
//	cplx/      tolerances and helpers over complex128
//	mobius/    Möbius maps z ↦ (az+b)/(cz+d)
//	circline/  circles and lines, intersection, projection, Hermitian transform
//	region/    {p,q} validation and the fundamental triangle
//	face/      tiles, edges, reflection and triangle tessellation
//	pointset/  bucketed set of tile centers
//	tiling/    Disc sessions, re-centering, discovery, adaptive Tuning
//	texture/   image loading, wrapped sampling, colour helpers
//	raster/    software renderer to *image.RGBA
//	svg/       vector export of tile edges
//	control/   viewer session and keyboard, mouse, joystick mapping
//	cmd/       hyperdisc (window), hyperdisc-term (terminal), hyperdisc-snap (files)
//
// Quick example:
//
//	rg, _ := region.New(5, 4)
//	disc, _ := tiling.NewDisc(rg)
//	tuning := tiling.DefaultTuning()
//	fr, _ := disc.Frame(mobius.DiscTranslation(0, 0.01), tuning)
//	tuning = tuning.Adjust(fr.Elapsed)
//
//	go install github.com/katalvlaran/hyperdisc/cmd/hyperdisc@latest
package hyperdisc

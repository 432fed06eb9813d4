// Package raster renders a discovered tiling into an *image.RGBA.
//
// Rendering follows the layered order of a frame: clear to black, fill the
// unit disc with the texture's average colour, draw every tile's triangle
// tessellation, then blend the horizon ring from the alpha band out to the
// rim and outline the rim in the inverse colour. Coverage comes from the
// anti-aliasing rasterizer of golang.org/x/image/vector: the disc, the
// horizon and the outline are circle paths, and all triangles of one colour
// parity form a single path, so edges shared between triangles leave no
// seams. The texture is sampled per pixel at the barycentric texture
// coordinate of the triangle under it. With inversion enabled, triangles
// whose parity disagrees with their tile sample the colour-inverted texture.
//
// A Renderer is not safe for concurrent use; it reuses its rasterizer and
// triangle buffers across frames.
package raster

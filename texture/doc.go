// Package texture loads the images mapped onto tiles.
//
// A Texture is an RGBA image sampled with wrapped coordinates, the way a
// repeating GPU texture is: u and v outside [0,1) wrap around. Loading
// registers PNG, JPEG and BMP decoders; images can be rescaled to a fixed
// working size on load.
//
// The package also computes the average colour used for the disc
// background and the slowly drifting texture offset that animates the
// tiling.
package texture

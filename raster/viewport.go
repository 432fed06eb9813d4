package raster

// Viewport maps between pixel coordinates and the disc. The unit disc is
// inscribed in the centered square of side min(Width, Height); y grows
// upwards in the disc and downwards in pixels.
type Viewport struct {
	Width, Height int
}

// Scale returns the number of pixels per disc unit.
func (v Viewport) Scale() float64 {
	s := v.Width
	if v.Height < s {
		s = v.Height
	}
	return float64(s) / 2
}

// ToPixel maps a disc point to pixel coordinates.
func (v Viewport) ToPixel(z complex128) (x, y float64) {
	s := v.Scale()
	return float64(v.Width)/2 + real(z)*s, float64(v.Height)/2 - imag(z)*s
}

// ToDisc maps pixel coordinates to a disc point.
func (v Viewport) ToDisc(x, y float64) complex128 {
	s := v.Scale()
	return complex((x-float64(v.Width)/2)/s, (float64(v.Height)/2-y)/s)
}

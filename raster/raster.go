package raster

import (
	"errors"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/texture"
	"github.com/katalvlaran/hyperdisc/tiling"
)

// Sentinel errors.
var (
	// ErrNilTexture is returned by New without a texture.
	ErrNilTexture = errors.New("raster: texture is nil")
)

// kappa places the control points of a cubic Bézier quarter circle.
const kappa = 0.5522847498307936

// Renderer draws tilings with one texture.
type Renderer struct {
	// Texture and Inverse are the normal and colour-inverted images.
	Texture *texture.Texture
	Inverse *texture.Texture

	// Background fills the disc behind the tiles and the horizon.
	Background color.RGBA

	// Inverting enables colour inversion by triangle parity.
	Inverting bool

	ras   vector.Rasterizer
	tris  []face.Triangle
	index index
}

// New returns a Renderer for tex whose background is tex's average colour.
func New(tex *texture.Texture, inverting bool) (*Renderer, error) {
	if tex == nil {
		return nil, ErrNilTexture
	}
	return &Renderer{
		Texture:    tex,
		Inverse:    tex.Inverted(),
		Background: tex.Average(),
		Inverting:  inverting,
	}, nil
}

// Draw renders faces into dst and returns the number of triangles drawn.
// texOffset is added to every texture coordinate.
func (r *Renderer) Draw(dst *image.RGBA, faces []*face.Face, tu tiling.Tuning, texOffset complex128) int {
	r.tris = r.tris[:0]
	for _, f := range faces {
		r.tris = f.Triangles(r.tris)
	}

	b := dst.Bounds()
	if b.Empty() {
		return len(r.tris)
	}
	vp := Viewport{Width: b.Dx(), Height: b.Dy()}

	draw.Draw(dst, b, image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
	r.begin(vp)
	r.circle(vp, 1, false)
	r.ras.Draw(dst, b, image.NewUniform(r.Background), image.Point{})

	r.index.build(vp, r.tris, r.Inverting)
	r.tiles(dst, vp, false, r.Texture, texOffset)
	r.tiles(dst, vp, true, r.Inverse, texOffset)

	r.horizon(dst, vp, tu)
	return len(r.tris)
}

// begin clears the rasterizer for a path over the whole viewport.
func (r *Renderer) begin(vp Viewport) {
	r.ras.Reset(vp.Width, vp.Height)
}

// tiles draws every indexed triangle of the given parity as one path. The
// triangles are added with a common winding so shared edges add up to full
// coverage; the shader then looks up the texture coordinate per pixel.
func (r *Renderer) tiles(dst *image.RGBA, vp Viewport, inverted bool, tex *texture.Texture, texOffset complex128) {
	r.begin(vp)
	n := 0
	for i := range r.index.tris {
		t := &r.index.tris[i]
		if t.inverted != inverted {
			continue
		}
		a, b, c := 0, 1, 2
		if t.inv < 0 {
			b, c = 2, 1
		}
		r.ras.MoveTo(float32(t.x[a]), float32(t.y[a]))
		r.ras.LineTo(float32(t.x[b]), float32(t.y[b]))
		r.ras.LineTo(float32(t.x[c]), float32(t.y[c]))
		r.ras.ClosePath()
		n++
	}
	if n == 0 {
		return
	}
	bounds := dst.Bounds()
	r.ras.Draw(dst, bounds, &shader{
		index:    &r.index,
		tex:      tex,
		offset:   texOffset,
		inverted: inverted,
		bounds:   bounds,
	}, bounds.Min)
}

// horizon fades the background in between the alpha band and the middle
// radius, covers everything out to the rim, and outlines the rim with a
// two-pixel ring.
func (r *Renderer) horizon(dst *image.RGBA, vp Viewport, tu tiling.Tuning) {
	inner, middle, _ := tu.HorizonRadii()
	bounds := dst.Bounds()

	if inner < 1 {
		r.begin(vp)
		r.circle(vp, 1, false)
		r.circle(vp, math.Max(inner, 0), true)
		r.ras.Draw(dst, bounds, &fade{
			vp:     vp,
			bounds: bounds,
			colour: r.Background,
			inner:  inner,
			middle: middle,
		}, bounds.Min)
	}

	r.begin(vp)
	r.circle(vp, 1, false)
	r.circle(vp, 1-2/vp.Scale(), true)
	r.ras.Draw(dst, bounds, image.NewUniform(texture.Invert(r.Background)), image.Point{})
}

// circle adds a circle of the given disc radius around the disc center as
// four cubic arcs. A reversed circle cuts a hole into an enclosing one.
func (r *Renderer) circle(vp Viewport, radius float64, reversed bool) {
	cx, cy := vp.ToPixel(0)
	rad := radius * vp.Scale()
	s := 1.0
	if reversed {
		s = -1
	}
	at := func(k int) (x, y, dx, dy float64) {
		sin, cos := math.Sincos(s * float64(k) * math.Pi / 2)
		return cx + rad*cos, cy + rad*sin, -s * kappa * rad * sin, s * kappa * rad * cos
	}

	x0, y0, dx0, dy0 := at(0)
	r.ras.MoveTo(float32(x0), float32(y0))
	for k := 1; k <= 4; k++ {
		x1, y1, dx1, dy1 := at(k)
		r.ras.CubeTo(
			float32(x0+dx0), float32(y0+dy0),
			float32(x1-dx1), float32(y1-dy1),
			float32(x1), float32(y1))
		x0, y0, dx0, dy0 = x1, y1, dx1, dy1
	}
	r.ras.ClosePath()
}

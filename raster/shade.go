package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/texture"
)

// cellSize is the side, in pixels, of an index cell.
const cellSize = 8

// screenTri is a triangle in pixel coordinates.
type screenTri struct {
	x, y [3]float64
	uv   [3]complex128

	// inv is the reciprocal of the doubled signed area; its sign is the
	// winding of the vertices.
	inv float64

	inverted bool
}

// weights returns the barycentric coordinates of (cx, cy).
func (t *screenTri) weights(cx, cy float64) (w0, w1, w2 float64) {
	w0 = ((t.x[1]-cx)*(t.y[2]-cy) - (t.x[2]-cx)*(t.y[1]-cy)) * t.inv
	w1 = ((t.x[2]-cx)*(t.y[0]-cy) - (t.x[0]-cx)*(t.y[2]-cy)) * t.inv
	return w0, w1, 1 - w0 - w1
}

// index buckets the triangles of a frame by the grid cells their bounding
// boxes overlap. Buffers are kept across frames.
type index struct {
	tris       []screenTri
	cols, rows int
	cells      [][]int32
}

// build projects tris into vp and buckets them. Degenerate triangles and
// triangles outside the viewport are dropped.
func (ix *index) build(vp Viewport, tris []face.Triangle, inverting bool) {
	ix.tris = ix.tris[:0]
	ix.cols = (vp.Width + cellSize - 1) / cellSize
	ix.rows = (vp.Height + cellSize - 1) / cellSize
	n := ix.cols * ix.rows
	if cap(ix.cells) < n {
		ix.cells = append(ix.cells[:cap(ix.cells)], make([][]int32, n-cap(ix.cells))...)
	}
	ix.cells = ix.cells[:n]
	for i := range ix.cells {
		ix.cells[i] = ix.cells[i][:0]
	}

	for i := range tris {
		src := &tris[i]
		var t screenTri
		for k, v := range src.V {
			t.x[k], t.y[k] = vp.ToPixel(v.Pos)
			t.uv[k] = v.UV
		}
		area := (t.x[1]-t.x[0])*(t.y[2]-t.y[0]) - (t.x[2]-t.x[0])*(t.y[1]-t.y[0])
		if area == 0 || math.IsNaN(area) || math.IsInf(area, 0) {
			continue
		}
		t.inv = 1 / area
		t.inverted = src.Inverted(inverting)

		x0, x1 := minMax(t.x)
		y0, y1 := minMax(t.y)
		if x1 < 0 || y1 < 0 || x0 > float64(vp.Width) || y0 > float64(vp.Height) {
			continue
		}

		id := int32(len(ix.tris))
		ix.tris = append(ix.tris, t)
		c0, c1 := ix.cell(x0, ix.cols), ix.cell(x1, ix.cols)
		r0, r1 := ix.cell(y0, ix.rows), ix.cell(y1, ix.rows)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				k := row*ix.cols + col
				ix.cells[k] = append(ix.cells[k], id)
			}
		}
	}
}

// cell returns the clamped cell coordinate of pixel coordinate v.
func (ix *index) cell(v float64, n int) int {
	c := int(math.Floor(v)) / cellSize
	if c < 0 {
		return 0
	}
	if c >= n {
		return n - 1
	}
	return c
}

// lookup returns the texture coordinate at pixel position (cx, cy) from the
// triangle of the given parity containing it. Pixels on the rim of the
// covered area take the nearest triangle of their cell. ok is false when the
// cell holds no such triangle.
func (ix *index) lookup(cx, cy float64, inverted bool) (uv complex128, ok bool) {
	col, row := int(cx)/cellSize, int(cy)/cellSize
	if cx < 0 || cy < 0 || col >= ix.cols || row >= ix.rows {
		return 0, false
	}

	best := math.Inf(-1)
	for _, id := range ix.cells[row*ix.cols+col] {
		t := &ix.tris[id]
		if t.inverted != inverted {
			continue
		}
		w0, w1, w2 := t.weights(cx, cy)
		if m := math.Min(w0, math.Min(w1, w2)); m > best {
			best = m
			uv = complex(w0, 0)*t.uv[0] + complex(w1, 0)*t.uv[1] + complex(w2, 0)*t.uv[2]
			if m >= 0 {
				break
			}
		}
	}
	return uv, !math.IsInf(best, -1)
}

// shader is the source image of a tile layer. It samples tex at the
// interpolated texture coordinate of the triangle under each pixel.
type shader struct {
	index    *index
	tex      *texture.Texture
	offset   complex128
	inverted bool
	bounds   image.Rectangle
}

func (s *shader) ColorModel() color.Model { return color.RGBAModel }

func (s *shader) Bounds() image.Rectangle { return s.bounds }

func (s *shader) At(x, y int) color.Color {
	cx := float64(x-s.bounds.Min.X) + 0.5
	cy := float64(y-s.bounds.Min.Y) + 0.5
	uv, ok := s.index.lookup(cx, cy, s.inverted)
	if !ok {
		return color.Transparent
	}
	return s.tex.AtUV(uv + s.offset)
}

// fade is the source image of the horizon: colour with an opacity rising
// linearly from inner to middle radius.
type fade struct {
	vp            Viewport
	bounds        image.Rectangle
	colour        color.RGBA
	inner, middle float64
}

func (f *fade) ColorModel() color.Model { return color.NRGBAModel }

func (f *fade) Bounds() image.Rectangle { return f.bounds }

func (f *fade) At(x, y int) color.Color {
	z := f.vp.ToDisc(float64(x-f.bounds.Min.X)+0.5, float64(y-f.bounds.Min.Y)+0.5)
	a := 1.0
	if f.middle > f.inner {
		a = (math.Hypot(real(z), imag(z)) - f.inner) / (f.middle - f.inner)
		a = math.Max(0, math.Min(a, 1))
	}
	return color.NRGBA{R: f.colour.R, G: f.colour.G, B: f.colour.B, A: uint8(math.Round(255 * a))}
}

func minMax(v [3]float64) (lo, hi float64) {
	return math.Min(v[0], math.Min(v[1], v[2])), math.Max(v[0], math.Max(v[1], v[2]))
}

package svg

import (
	"fmt"
	"io"
	"math"

	"github.com/jbeda/geom"

	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/face"
)

// Options controls the output.
type Options struct {
	// Margin pads the view box on every side, in disc units.
	Margin float64

	// Stroke and StrokeWidth style the edges.
	Stroke      string
	StrokeWidth float64

	// Boundary draws the unit circle and includes it in the view box.
	Boundary bool

	// Fill paints the unit disc when Boundary is set; empty means none.
	Fill string
}

// DefaultOptions returns black hairlines inside the drawn unit circle.
func DefaultOptions() Options {
	return Options{
		Margin:      0.02,
		Stroke:      "black",
		StrokeWidth: 0.002,
		Boundary:    true,
		Fill:        "none",
	}
}

// Coord converts a disc point to SVG coordinates.
func Coord(z complex128) geom.Coord {
	return geom.Coord{X: real(z), Y: -imag(z)}
}

// Bounds returns the box around every sampled edge of faces. Degenerate
// edges are ignored.
func Bounds(faces []*face.Face) geom.Rect {
	r := geom.NilRect()
	for _, f := range faces {
		for _, e := range f.Edges() {
			pts, err := e.Trimmed().Polygon()
			if err != nil {
				continue
			}
			for _, z := range pts {
				if cplx.IsFinite(z) {
					r.ExpandToContainCoord(Coord(z))
				}
			}
		}
	}
	return r
}

// Write renders faces to w and returns the number of edge paths written.
func Write(w io.Writer, faces []*face.Face, opts Options) (int, error) {
	bounds := Bounds(faces)
	if opts.Boundary {
		bounds.ExpandToContainRect(geom.Rect{Min: geom.Coord{X: -1, Y: -1}, Max: geom.Coord{X: 1, Y: 1}})
	}
	if bounds.Min.X > bounds.Max.X {
		// nothing to frame
		bounds = geom.Rect{Min: geom.Coord{X: -1, Y: -1}, Max: geom.Coord{X: 1, Y: 1}}
	}
	bounds.Min = bounds.Min.Minus(geom.Coord{X: opts.Margin, Y: opts.Margin})
	bounds.Max = bounds.Max.Plus(geom.Coord{X: opts.Margin, Y: opts.Margin})

	out := &document{w: w}
	out.start(bounds)
	if opts.Boundary {
		fill := opts.Fill
		if fill == "" {
			fill = "none"
		}
		out.printf("<circle cx='0' cy='0' r='1' fill='%s' stroke='%s' stroke-width='%f'/>\n",
			fill, opts.Stroke, opts.StrokeWidth)
	}

	out.printf("<g fill='none' stroke='%s' stroke-width='%f'>\n", opts.Stroke, opts.StrokeWidth)
	n := 0
	for _, f := range faces {
		for _, e := range f.Edges() {
			if out.edge(e) {
				n++
			}
		}
	}
	out.printf("</g>\n")
	out.end()
	return n, out.err
}

// document is an SVG writer that keeps the first write error.
type document struct {
	w   io.Writer
	err error
}

func (d *document) printf(format string, args ...interface{}) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

func (d *document) start(viewBox geom.Rect) {
	d.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg">
`, viewBox.Min.X, viewBox.Min.Y, viewBox.Width(), viewBox.Height())
}

func (d *document) end() {
	d.printf("</svg>\n")
}

// edge writes e as an arc or segment and reports whether it was drawable.
func (d *document) edge(e face.Edge) bool {
	if !cplx.IsFinite(e.Start) || !cplx.IsFinite(e.End) || e.Start == e.End {
		return false
	}
	p1, p2 := Coord(e.Start), Coord(e.End)

	if e.Circ.IsLine() {
		d.printf("<path d='M%f,%f L%f,%f'/>\n", p1.X, p1.Y, p2.X, p2.Y)
		return true
	}

	r := e.Circ.Radius()
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return false
	}
	c := e.Circ.Center()
	a, b := e.Start-c, e.End-c
	// The minor arc turns counterclockwise in the disc exactly when the
	// cross product is positive, which is clockwise once y is flipped.
	sweep := real(a)*imag(b)-imag(a)*real(b) > 0
	d.printf("<path d='M%f,%f A%f,%f 0 0,%s %f,%f'/>\n",
		p1.X, p1.Y, r, r, onezero(sweep), p2.X, p2.Y)
	return true
}

func onezero(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

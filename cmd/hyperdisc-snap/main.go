// Command hyperdisc-snap renders a tiling without a display: it runs a number
// of frames and writes the last one as PNG and/or SVG.
//
// Usage:
//
//	hyperdisc-snap [flags] [image-dir]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/hyperdisc/internal/app"
	"github.com/katalvlaran/hyperdisc/texture"
	"github.com/katalvlaran/hyperdisc/tiling"
)

// frameStep is the simulated time between frames, in seconds.
const frameStep = 1.0 / 30

var errNoOutput = errors.New("nothing to write: set -out and/or -svg")

type options struct {
	p, q      int
	frames    int
	size      int
	out       string
	svgOut    string
	invert    bool
	moving    bool
	offsetX   float64
	offsetY   float64
	angle     float64
	image     int
	budget    time.Duration
	seed      int64
	imagesDir string
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("hyperdisc-snap", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.p, "p", 5, "Sides per tile")
	fs.IntVar(&o.q, "q", 5, "Tiles per vertex")
	fs.IntVar(&o.frames, "frames", 1, "Frames to run before writing")
	fs.IntVar(&o.size, "size", 800, "PNG width and height in pixels")
	fs.StringVar(&o.out, "out", "", "PNG output file")
	fs.StringVar(&o.svgOut, "svg", "", "SVG output file")
	fs.BoolVar(&o.invert, "invert", false, "Invert colours of alternate half-sectors")
	fs.BoolVar(&o.moving, "move", false, "Wander while running frames")
	fs.Float64Var(&o.offsetX, "dx", 0, "Per-frame drift, real part")
	fs.Float64Var(&o.offsetY, "dy", 0, "Per-frame drift, imaginary part")
	fs.Float64Var(&o.angle, "angle", 0, "Per-frame rotation in radians")
	fs.IntVar(&o.image, "image", 0, "Image index within the directory")
	fs.DurationVar(&o.budget, "budget", time.Second, "Per-frame discovery budget")
	fs.Int64Var(&o.seed, "seed", 1, "Randomization seed")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		o.imagesDir = fs.Arg(0)
	}
	if o.out == "" && o.svgOut == "" {
		return o, errNoOutput
	}
	if o.frames < 1 || o.size < 1 {
		return o, fmt.Errorf("frames and size must be positive, got %d and %d", o.frames, o.size)
	}
	return o, nil
}

func run(args []string, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	log.SetOutput(stderr)

	var images []string
	if o.imagesDir != "" {
		if images, err = texture.Discover(o.imagesDir); err != nil {
			return err
		}
	}

	a, err := app.New(app.Config{
		Images:      images,
		TextureSize: app.DefaultTextureSize,
		P:           o.p,
		Q:           o.q,
		Inverting:   o.invert,
		Moving:      o.moving,
		Budget:      o.budget,
		Seed:        o.seed,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	s := a.Session
	if o.image != 0 {
		s.SetImageIndex(o.image)
		s.Reset()
	}
	s.Offset = complex(o.offsetX, o.offsetY)
	s.AngleOffset = o.angle

	var img *image.RGBA
	if o.out != "" {
		img = image.NewRGBA(image.Rect(0, 0, o.size, o.size))
	}
	var fr *tiling.Frame
	for i := 0; i < o.frames; i++ {
		if fr, err = a.Step(float64(i) * frameStep); err != nil {
			return err
		}
		if img != nil {
			a.Render(img, fr)
		}
		a.EndFrame()
	}
	log.Printf("%s: %d faces, truncated %v", a.Disc().Region(), len(fr.Faces), fr.Truncated)

	if img != nil {
		if err := writePNG(o.out, img); err != nil {
			return err
		}
	}
	if o.svgOut != "" {
		if err := writeSVG(o.svgOut, fr.Faces); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

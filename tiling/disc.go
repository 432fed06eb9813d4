package tiling

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
)

// Frame is the outcome of one Disc.Frame call.
type Frame struct {
	// Faces are the discovered tiles, current tile first. They alias the
	// session's scratch storage and are valid until the next Frame.
	Faces []*face.Face

	// Current is the re-centered, rebuilt tile the traversal started from.
	Current *face.Face

	// Flips counts the edge flips made while re-centering.
	Flips int

	// Truncated reports that the time budget cut discovery short.
	Truncated bool

	// Elapsed is the time spent in the engine for this frame.
	Elapsed time.Duration
}

// Disc is a tiling session: a fundamental region, its seed tile and the tile
// currently nearest the disc center. A Disc is not safe for concurrent use.
type Disc struct {
	region  region.Region
	seed    *face.Face
	current *face.Face
	opts    Options
}

// NewDisc starts a session on rg. Options apply to every frame; a scratch
// arena is allocated unless one is supplied.
func NewDisc(rg region.Region, opts ...Option) (*Disc, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if o.Scratch == nil {
		o.Scratch = NewScratch(DefaultScratchCapacity)
	}
	d := &Disc{opts: o}
	d.Reset(rg)
	return d, nil
}

// Reset switches to rg and puts the seed tile back at the center.
func (d *Disc) Reset(rg region.Region) {
	d.region = rg
	d.seed = face.New(rg)
	d.current = d.seed
}

// Frame moves the current tile by movement, re-centers and rebuilds it, then
// discovers the visible tiling with tuning's circle limit. The caller feeds
// the measured frame time back through Tuning.Adjust.
func (d *Disc) Frame(movement mobius.Mobius, tuning Tuning) (*Frame, error) {
	start := d.opts.Clock()

	cur, flips, err := Recenter(d.current.Transform(movement))
	if err != nil {
		return nil, err
	}
	if cur, err = Rebuild(cur, d.seed); err != nil {
		return nil, err
	}
	d.current = cur

	res, err := discover(cur, tuning, d.opts)
	fr := &Frame{
		Current: cur,
		Flips:   flips,
		Elapsed: d.opts.Clock().Sub(start),
	}
	if res != nil {
		fr.Faces = res.Faces
		fr.Truncated = res.Truncated
	}
	return fr, err
}

// Region returns the session's fundamental region.
func (d *Disc) Region() region.Region { return d.region }

// Seed returns the centered seed tile.
func (d *Disc) Seed() *face.Face { return d.seed }

// Current returns the tile the last frame started from.
func (d *Disc) Current() *face.Face { return d.current }

// Summary formats the session statistics logged when a session ends.
func (d *Disc) Summary(t Tuning) string {
	return fmt.Sprintf("P: %d, Q: %d, Avg: %.5f", d.region.P(), d.region.Q(), t.Average())
}

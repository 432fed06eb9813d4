package tiling

import (
	"context"
	"time"

	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/pointset"
)

// walker encapsulates the mutable state of one traversal.
type walker struct {
	opts     Options
	ctx      context.Context
	limit    float64
	deadline time.Time
	queue    []queueItem
	head     int
	seen     *pointset.Set
	res      *Result
}

// Discover runs the bounded breadth-first search from seed with the circle
// limit of tuning, applying any number of functional Options.
// Returns ErrNilSeed or ErrOptionViolation for invalid input, or the context
// error together with the partial result when cancelled.
func Discover(seed *face.Face, tuning Tuning, opts ...Option) (*Result, error) {
	if seed == nil {
		return nil, ErrNilSeed
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return discover(seed, tuning, o)
}

// discover runs a traversal with already validated options.
func discover(seed *face.Face, tuning Tuning, o Options) (*Result, error) {
	budget := o.Budget
	if budget == 0 {
		budget = tuning.Budget()
	}

	w := &walker{
		opts:     o,
		ctx:      o.Ctx,
		limit:    tuning.CircleLimit,
		deadline: o.Clock().Add(budget),
		res:      &Result{},
	}
	if s := o.Scratch; s != nil {
		s.reset(o.Sectors)
		w.queue, w.seen, w.res.Faces = s.queue, s.seen, s.faces
	} else {
		w.queue = make([]queueItem, 0, DefaultScratchCapacity)
		w.seen = pointset.New(o.Sectors)
	}

	w.seen.Add(seed.Center())
	w.enqueue(seed, 0)
	err := w.loop()

	if s := o.Scratch; s != nil {
		s.queue, s.faces = w.queue, w.res.Faces
	}
	return w.res, err
}

// enqueue appends f to both the queue and the result.
func (w *walker) enqueue(f *face.Face, depth int) {
	w.queue = append(w.queue, queueItem{f: f, depth: depth})
	w.res.Faces = append(w.res.Faces, f)
	w.opts.OnDiscover(f, depth)
}

// loop expands tiles until the queue drains, the budget runs out or the
// context is cancelled.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}
		if w.opts.Clock().After(w.deadline) {
			w.res.Truncated = true
			return nil
		}

		item := w.queue[w.head]
		w.head++
		w.expand(item)
	}
	return nil
}

// expand reflects item across each eligible edge and enqueues new tiles.
func (w *walker) expand(item queueItem) {
	w.res.Expanded++
	for i, e := range item.f.Edges() {
		if e.IsConvex() || !e.Circ.IsCircle() || e.Circ.RadiusSquared() < w.opts.MinRadiusSquared {
			continue
		}

		image := item.f.Reflect(i)
		c := image.Center()
		if !cplx.IsFinite(c) || cplx.ModulusSquared(c) > w.limit {
			continue
		}
		if !w.seen.Insert(c) {
			continue
		}
		w.enqueue(image, item.depth+1)
	}
}

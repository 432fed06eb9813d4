package tiling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hyperdisc/face"
	"github.com/katalvlaran/hyperdisc/pointset"
)

// Sentinel errors.
var (
	// ErrNilSeed is returned when a nil face is passed in.
	ErrNilSeed = errors.New("tiling: seed face is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("tiling: invalid option supplied")
)

const (
	// DefaultMinRadiusSquared is the squared radius below which edge circles
	// are too small to yield visible tiles.
	DefaultMinRadiusSquared = 1e-4

	// DefaultScratchCapacity pre-sizes the queue and result of a Scratch.
	DefaultScratchCapacity = 2000

	// MaxFlips bounds the re-centering loop.
	MaxFlips = 64
)

// Option configures a traversal via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the knobs of Discover and Disc.
type Options struct {
	// Ctx allows cancellation between tile expansions.
	Ctx context.Context

	// Scratch, if non-nil, supplies reusable buffers. The returned faces then
	// alias Scratch storage and stay valid until its next use.
	Scratch *Scratch

	// Budget overrides the wall-clock cutoff; 0 derives it from the Tuning.
	Budget time.Duration

	// Clock reads the current time.
	Clock func() time.Time

	// MinRadiusSquared skips edges whose circle is smaller than this.
	MinRadiusSquared float64

	// Sectors is the angular sector count of the center set.
	Sectors int

	// OnDiscover is called for every discovered tile, the seed included,
	// with its breadth-first depth.
	OnDiscover func(f *face.Face, depth int)

	err error
}

// DefaultOptions returns options with a background context, time.Now,
// DefaultMinRadiusSquared, pointset.DefaultSectors and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Clock:            time.Now,
		MinRadiusSquared: DefaultMinRadiusSquared,
		Sectors:          pointset.DefaultSectors,
		OnDiscover:       func(*face.Face, int) {},
	}
}

// WithContext sets a context checked between tile expansions.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithScratch reuses s across calls.
func WithScratch(s *Scratch) Option {
	return func(o *Options) {
		o.Scratch = s
	}
}

// WithBudget sets the wall-clock cutoff.
//
//	d > 0: stop expanding after d
//	d == 0: use 1.5× the Tuning's draw-time target
//	d < 0: invalid option → ErrOptionViolation
func WithBudget(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: budget cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Budget = d
	}
}

// WithClock replaces time.Now, typically in tests.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		if clock != nil {
			o.Clock = clock
		}
	}
}

// WithMinRadiusSquared sets the edge-circle floor; it must be non-negative.
func WithMinRadiusSquared(r2 float64) Option {
	return func(o *Options) {
		if r2 < 0 {
			o.err = fmt.Errorf("%w: min radius squared cannot be negative (%g)", ErrOptionViolation, r2)
			return
		}
		o.MinRadiusSquared = r2
	}
}

// WithSectors sets the sector count of the center set; it must be positive.
func WithSectors(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: sectors must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Sectors = n
	}
}

// WithOnDiscover registers a hook run for every discovered tile.
func WithOnDiscover(fn func(f *face.Face, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

// Result is the outcome of one traversal.
type Result struct {
	// Faces lists the discovered tiles in discovery order, seed first.
	Faces []*face.Face

	// Truncated reports that the time budget cut the traversal short.
	Truncated bool

	// Expanded counts the tiles whose edges were examined.
	Expanded int
}

// queueItem pairs a tile with its breadth-first depth.
type queueItem struct {
	f     *face.Face
	depth int
}

// Scratch is a caller-owned arena reused across traversals. Buffers grow on
// demand; their size never limits a traversal. A Scratch must not be shared
// by concurrent traversals.
type Scratch struct {
	queue []queueItem
	faces []*face.Face
	seen  *pointset.Set
}

// NewScratch returns a Scratch pre-sized for capacity tiles. A non-positive
// capacity selects DefaultScratchCapacity.
func NewScratch(capacity int) *Scratch {
	if capacity <= 0 {
		capacity = DefaultScratchCapacity
	}
	return &Scratch{
		queue: make([]queueItem, 0, capacity),
		faces: make([]*face.Face, 0, capacity),
		seen:  pointset.New(pointset.DefaultSectors),
	}
}

// reset empties the arena for a traversal using the given sector count.
func (s *Scratch) reset(sectors int) {
	clear(s.queue)
	clear(s.faces)
	s.queue = s.queue[:0]
	s.faces = s.faces[:0]
	if s.seen == nil || s.seen.Sectors() != sectors {
		s.seen = pointset.New(sectors)
		return
	}
	s.seen.Reset()
}

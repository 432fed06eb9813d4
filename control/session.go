package control

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
)

// Sentinel errors.
var (
	// ErrNoImages is returned when a session is created without images.
	ErrNoImages = errors.New("control: no images")
)

// Session defaults.
const (
	DefaultP          = 5
	DefaultQ          = 5
	DefaultImageSpeed = 111

	// RandomizeInterval is the time in seconds between automatic
	// randomizations.
	RandomizeInterval = 60
)

// Session is the viewer state. It is not safe for concurrent use.
type Session struct {
	p, q       int
	imageIndex int
	images     int

	// Offset is the per-frame disc translation.
	Offset complex128

	// AngleOffset is the per-frame rotation in radians.
	AngleOffset float64

	IsMoving      bool
	IsRandomizing bool
	IsInverting   bool

	// ImageSpeed is added to ImageOffset every frame.
	ImageSpeed float64

	// ImageOffset is the texture animation time.
	ImageOffset float64

	rng          *rand.Rand
	dirty        bool
	lastRandomAt float64
}

// New returns a {5,5} session over images pictures. rng drives Randomize;
// nil seeds one from 1.
func New(images int, rng *rand.Rand) (*Session, error) {
	if images < 1 {
		return nil, ErrNoImages
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Session{
		p:          DefaultP,
		q:          DefaultQ,
		images:     images,
		ImageSpeed: DefaultImageSpeed,
		rng:        rng,
		dirty:      true,
	}, nil
}

// P returns the number of tile sides.
func (s *Session) P() int { return s.p }

// Q returns the number of tiles per vertex.
func (s *Session) Q() int { return s.q }

// SetP sets p, raising it until {p,q} is hyperbolic.
func (s *Session) SetP(p int) {
	// q ≥ 3 always holds, so CorrectP cannot fail.
	s.p, s.q, _ = region.CorrectP(max(p, 3), s.q)
}

// SetQ sets q, raising it until {p,q} is hyperbolic.
func (s *Session) SetQ(q int) {
	s.p, s.q, _ = region.Correct(s.p, q)
}

// SetPQ sets both parameters, raising q until {p,q} is hyperbolic. p below
// 3 is raised to 3.
func (s *Session) SetPQ(p, q int) {
	s.p, s.q, _ = region.Correct(max(p, 3), q)
}

// Region builds the fundamental region of the current pair.
func (s *Session) Region() (region.Region, error) {
	return region.New(s.p, s.q)
}

// Images returns the number of available images.
func (s *Session) Images() int { return s.images }

// ImageIndex returns the selected image.
func (s *Session) ImageIndex() int { return s.imageIndex }

// SetImageIndex selects an image; i wraps around in both directions.
func (s *Session) SetImageIndex(i int) {
	i %= s.images
	if i < 0 {
		i += s.images
	}
	s.imageIndex = i
}

// Reset requests a new tiling.
func (s *Session) Reset() { s.dirty = true }

// TakeReset reports and clears a pending reset.
func (s *Session) TakeReset() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// Recenter clears the drift and requests a new tiling.
func (s *Session) Recenter() {
	s.Offset = 0
	s.AngleOffset = 0
	s.Reset()
}

// Restore puts {p,q} and the image back to their defaults and recenters.
func (s *Session) Restore() {
	s.p, s.q = DefaultP, DefaultQ
	s.imageIndex = 0
	s.Recenter()
}

// Randomize picks p in [3,7], q below 10 − p and an image, then corrects the
// pair and requests a new tiling.
func (s *Session) Randomize() {
	s.SetP(s.rng.Intn(5) + 3)
	s.SetQ(s.rng.Intn(10 - s.p))
	s.imageIndex = s.rng.Intn(s.images)
	s.Reset()
}

// MakeLimitRotation sets the rotation to twice the drift, turning the motion
// into a rotation about a point at infinity.
func (s *Session) MakeLimitRotation() {
	s.AngleOffset = cmplx.Abs(s.Offset) * 2
}

// Tick advances the session to time t in seconds: it randomizes when due and
// steps the texture animation. It returns the new ImageOffset.
func (s *Session) Tick(t float64) float64 {
	if s.IsRandomizing && t-s.lastRandomAt > RandomizeInterval {
		s.Randomize()
		s.lastRandomAt = t
	}
	s.ImageOffset += s.ImageSpeed
	return s.ImageOffset
}

// Movement returns the per-frame map at time t: the drift translation
// followed by the rotation, preceded by a slow wandering translation when
// IsMoving is set.
func (s *Session) Movement(t float64) mobius.Mobius {
	rotation := mobius.Rotation(s.AngleOffset)
	offset := mobius.DiscTranslation(0, s.Offset)
	if !s.IsMoving {
		return mobius.Compose(rotation, offset)
	}
	wander := cplx.Polar(0.01*math.Sin(2*math.Pi*t/50), 2*math.Pi*t/30)
	return mobius.Compose(mobius.DiscTranslation(0, wander), rotation, offset)
}

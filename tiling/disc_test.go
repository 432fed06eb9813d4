package tiling_test

import (
	"math/cmplx"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperdisc/mobius"
	"github.com/katalvlaran/hyperdisc/region"
	"github.com/katalvlaran/hyperdisc/tiling"
)

// DiscSuite drives a {5,5} session frame by frame.
type DiscSuite struct {
	suite.Suite
	disc   *tiling.Disc
	tuning tiling.Tuning
}

func (s *DiscSuite) SetupTest() {
	rg, err := region.New(5, 5)
	s.Require().NoError(err)
	s.disc, err = tiling.NewDisc(rg, tiling.WithBudget(time.Minute))
	s.Require().NoError(err)
	s.tuning = tiling.DefaultTuning()
}

func TestDiscSuite(t *testing.T) {
	suite.Run(t, new(DiscSuite))
}

func (s *DiscSuite) TestStill() {
	fr, err := s.disc.Frame(mobius.Identity(), s.tuning)
	s.Require().NoError(err)
	s.Equal(0, fr.Flips)
	s.False(fr.Truncated)
	s.Require().NotEmpty(fr.Faces)
	s.Same(fr.Current, fr.Faces[0])
	s.Same(fr.Current, s.disc.Current())
	s.InDelta(0, cmplx.Abs(fr.Current.Center()), 1e-9)
	s.GreaterOrEqual(fr.Elapsed, time.Duration(0))
}

func (s *DiscSuite) TestDriftStaysCentered() {
	circumradius := cmplx.Abs(s.disc.Seed().Vertices()[0])
	step := mobius.DiscTranslation(0, 0.05).Mul(mobius.Rotation(0.01))

	totalFlips := 0
	for i := 0; i < 80; i++ {
		fr, err := s.disc.Frame(step, s.tuning)
		s.Require().NoError(err)
		totalFlips += fr.Flips

		cur := fr.Current
		s.Equal(-1, cur.ConvexEdge(), "frame %d", i)
		s.LessOrEqual(cmplx.Abs(cur.Center()), circumradius+1e-9, "frame %d", i)
		s.Greater(len(fr.Faces), 1)
		s.tuning = s.tuning.Adjust(fr.Elapsed)
	}
	s.Greater(totalFlips, 0, "the view must have crossed at least one edge")
}

func (s *DiscSuite) TestReset() {
	_, err := s.disc.Frame(mobius.DiscTranslation(0, 0.3), s.tuning)
	s.Require().NoError(err)

	rg, err := region.New(4, 5)
	s.Require().NoError(err)
	s.disc.Reset(rg)
	s.Equal(4, s.disc.Region().P())
	s.Same(s.disc.Seed(), s.disc.Current())
	s.Equal(complex128(0), s.disc.Current().Center())

	fr, err := s.disc.Frame(mobius.Identity(), s.tuning)
	s.Require().NoError(err)
	s.Len(fr.Current.Edges(), 4)
}

func (s *DiscSuite) TestSummary() {
	s.Equal("P: 5, Q: 5, Avg: 0.00000", s.disc.Summary(s.tuning))
	tu := s.tuning.Adjust(20 * time.Millisecond)
	s.Equal("P: 5, Q: 5, Avg: 0.02000", s.disc.Summary(tu))
}

func TestNewDisc_BadOption(t *testing.T) {
	rg, err := region.New(5, 5)
	require.NoError(t, err)
	_, err = tiling.NewDisc(rg, tiling.WithSectors(-1))
	assert.ErrorIs(t, err, tiling.ErrOptionViolation)
}

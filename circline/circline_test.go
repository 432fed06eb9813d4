package circline_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hyperdisc/circline"
	"github.com/katalvlaran/hyperdisc/cplx"
	"github.com/katalvlaran/hyperdisc/mobius"
)

// CircLineSuite groups the constructor and accessor checks.
type CircLineSuite struct {
	suite.Suite
	unit  circline.CircLine
	xAxis circline.CircLine
}

func (s *CircLineSuite) SetupTest() {
	s.unit = circline.Unit()
	s.xAxis = circline.NewLine(0, 1)
}

func TestCircLineSuite(t *testing.T) {
	suite.Run(t, new(CircLineSuite))
}

func (s *CircLineSuite) TestNewDispatch() {
	l := circline.New(0, 1, 2)
	s.True(l.IsLine())
	s.Equal(circline.KindLine, l.Kind())

	c := circline.New(2, -2, 0) // |z|² − 2Re(z) = 0: center 1, radius 1
	s.Require().True(c.IsCircle())
	s.True(cplx.Equal(1, c.Center()))
	s.InDelta(1.0, c.Radius(), 1e-12)

	a, _, _ := c.Coefficients()
	s.Equal(1.0, a)
}

func (s *CircLineSuite) TestLineCoefficientsAreScaled() {
	l := circline.NewLineCoeffs(4, 8, 2)
	_, b, _ := l.Coefficients()
	s.InDelta(1.0, cplx.FastModulus(b), 1e-12)
	s.True(math.IsInf(l.RadiusSquared(), 1))
}

func (s *CircLineSuite) TestNewLineContainsEndpoints() {
	p1, p2 := complex(0.3, -0.2), complex(-1.5, 2)
	l := circline.NewLine(p1, p2)
	s.True(l.ContainsPoint(p1))
	s.True(l.ContainsPoint(p2))
	s.True(l.ContainsPoint((p1 + p2) / 2))
	s.False(l.ContainsPoint(p1 + 1i))

	la := circline.NewLineAngle(p1, math.Pi/3)
	s.True(la.ContainsPoint(p1))
	s.True(la.ContainsPoint(p1 + cplx.Polar(2, math.Pi/3)))
}

func (s *CircLineSuite) TestEvaluateAndProject() {
	for _, t := range []float64{-3, -1, 0, 0.5, 2} {
		p := s.unit.Evaluate(t)
		s.InDelta(1.0, cmplx.Abs(p), 1e-12)
		s.True(s.unit.ContainsPoint(p))
	}
	ev := s.unit.Project(3i)
	s.True(cplx.Equal(1i, ev.Point))
	s.InDelta(math.Pi/2, ev.Param, 1e-12)

	l := circline.NewLine(1+1i, 3+2i)
	for _, t := range []float64{-2, 0, 1.5} {
		p := l.Evaluate(t)
		s.True(l.ContainsPoint(p), "t=%v", t)
		s.InDelta(t, l.Project(p).Param, 1e-9)
	}
	s.InDelta(1.0, cmplx.Abs(l.Direction()), 1e-12)

	foot := s.xAxis.Project(2 + 5i)
	s.True(cplx.Equal(2, foot.Point))
}

func (s *CircLineSuite) TestPointSides() {
	s.False(s.unit.IsPointOnLeft(0))
	s.True(s.unit.IsPointOnLeft(2))
	s.True(s.unit.IsPointOnLeft(1)) // on the curve counts as left
	s.True(s.unit.ArePointsOnSameSide(0.1, -0.2i))
	s.False(s.unit.ArePointsOnSameSide(0.1, 3))
	s.True(s.unit.ArePointsOnSameSide(5, 5))
	s.False(s.xAxis.ArePointsOnSameSide(1i, -1i))
}

func (s *CircLineSuite) TestTranslateScaleConjugate() {
	c := circline.NewCircle(1+1i, 0.5)
	tc := c.Translate(-2)
	s.True(cplx.Equal(-1+1i, tc.Center()))
	s.InDelta(0.5, tc.Radius(), 1e-12)

	sc := c.Scale(2i)
	s.True(cplx.Equal((1+1i)*2i, sc.Center()))
	s.InDelta(1.0, sc.Radius(), 1e-12)

	cc := c.Conjugate()
	s.True(cplx.Equal(1-1i, cc.Center()))

	tl := s.xAxis.Translate(3i)
	s.True(tl.ContainsPoint(3i))
	s.True(tl.ContainsPoint(-7 + 3i))

	sl := s.xAxis.Scale(1i) // quarter turn: the imaginary axis
	s.True(sl.ContainsPoint(5i))
	s.False(sl.ContainsPoint(5))

	s.True(circline.NewLine(1i, 2+1i).Conjugate().ContainsPoint(4 - 1i))
}

func (s *CircLineSuite) TestInverse() {
	// A circle through the origin inverts to a line.
	inv := circline.NewCircle(1, 1).Inverse()
	s.Require().True(inv.IsLine())
	s.True(inv.ContainsPoint(0.5))
	s.True(inv.ContainsPoint(0.5 + 3i))

	// And back.
	back := inv.Inverse()
	s.Require().True(back.IsCircle())
	s.True(cplx.Equal(1, back.Center()))
	s.InDelta(1.0, back.Radius(), 1e-9)

	// A line through the origin stays a line.
	s.True(s.xAxis.Inverse().IsLine())

	// Inverse agrees with the sandwich transform under 1/z.
	c := circline.NewCircle(2+1i, 0.5)
	s.True(c.Inverse().Equal(c.Transform(mobius.New(0, 1, 1, 0))))
}

func (s *CircLineSuite) TestNormalized() {
	l := circline.NewLineCoeffs(1, 0, -2)
	n := l.Normalized()
	_, _, c := n.Coefficients()
	s.GreaterOrEqual(c, 0.0)
	s.True(n.ContainsPoint(2))
	s.True(s.unit.Equal(s.unit.Normalized()))
}

func (s *CircLineSuite) TestAsInversion() {
	inv := s.unit.AsInversion()
	reflect := func(m mobius.Mobius, z complex128) complex128 { return m.Apply(cmplx.Conj(z)) }

	s.True(cplx.Equal(2, reflect(inv, 0.5)))
	s.True(cplx.Equal(-2i, reflect(inv, -0.5i)))
	s.True(cplx.Equal(cplx.Polar(1, 0.7), reflect(inv, cplx.Polar(1, 0.7))))

	c := circline.NewCircle(0.4-0.3i, 0.8)
	ci := c.AsInversion()
	z := complex(0.1, 0.25)
	s.True(cplx.Equal(z, reflect(ci, reflect(ci, z))))

	li := s.xAxis.AsInversion()
	s.True(cplx.Equal(1-2i, reflect(li, 1+2i)))

	diag := circline.NewLine(1, 2+1i) // y = x − 1
	di := diag.AsInversion()
	s.True(cplx.Equal(1-1i, reflect(di, 0)))
	s.True(cplx.Equal(3+2i, reflect(di, 3+2i)))
}

func (s *CircLineSuite) TestIntersectCircles() {
	xs, err := s.unit.Intersect(circline.NewCircle(1, 1))
	s.Require().NoError(err)
	s.Require().Len(xs, 2)
	want := []complex128{complex(0.5, math.Sqrt(3)/2), complex(0.5, -math.Sqrt(3)/2)}
	for _, x := range xs {
		s.True(cplx.Equal(want[0], x.Point) || cplx.Equal(want[1], x.Point), "got %v", x.Point)
		s.True(cplx.Equal(x.Point, s.unit.Evaluate(x.ParamA)))
		s.True(cplx.Equal(x.Point, circline.NewCircle(1, 1).Evaluate(x.ParamB)))
	}

	_, err = s.unit.Intersect(circline.NewCircle(5, 1))
	s.ErrorIs(err, circline.ErrNoIntersection)

	xs, err = s.unit.Intersect(circline.NewCircle(0.1, 0.2))
	s.NoError(err)
	s.Empty(xs)
}

func (s *CircLineSuite) TestIntersectCircleLine() {
	xs, err := s.unit.Intersect(s.xAxis)
	s.Require().NoError(err)
	s.Require().Len(xs, 2)
	got := map[bool]bool{}
	for _, x := range xs {
		got[real(x.Point) > 0] = true
		s.InDelta(0, imag(x.Point), 1e-12)
		s.True(cplx.Equal(x.Point, s.unit.Evaluate(x.ParamA)))
		s.True(cplx.Equal(x.Point, s.xAxis.Evaluate(x.ParamB)))
	}
	s.Len(got, 2)

	sw, err := s.xAxis.Intersect(s.unit)
	s.Require().NoError(err)
	s.Require().Len(sw, 2)
	s.Equal(xs[0].ParamA, sw[0].ParamB)
	s.Equal(xs[0].ParamB, sw[0].ParamA)

	_, err = s.unit.Intersect(s.xAxis.Translate(3i))
	s.ErrorIs(err, circline.ErrNoIntersection)

	// off-origin line
	l := circline.NewLine(0.5-2i, 0.5+2i)
	xs, err = s.unit.Intersect(l)
	s.Require().NoError(err)
	for _, x := range xs {
		s.True(s.unit.ContainsPoint(x.Point))
		s.True(l.ContainsPoint(x.Point))
	}
}

func (s *CircLineSuite) TestIntersectLines() {
	yAxis := circline.NewLine(0, 1i)
	xs, err := s.xAxis.Intersect(yAxis)
	s.Require().NoError(err)
	s.Require().Len(xs, 1)
	s.True(cplx.Equal(0, xs[0].Point))

	a := circline.NewLine(1+1i, 3+2i)
	b := circline.NewLine(-1+4i, 2-1i)
	xs, err = a.Intersect(b)
	s.Require().NoError(err)
	s.True(a.ContainsPoint(xs[0].Point))
	s.True(b.ContainsPoint(xs[0].Point))

	_, err = s.xAxis.Intersect(s.xAxis.Translate(1i))
	s.ErrorIs(err, circline.ErrNoIntersection)
}

func (s *CircLineSuite) TestIsNormalTo() {
	orth := circline.NewCircle(math.Sqrt2, 1)
	s.True(s.unit.IsNormalTo(orth))
	s.True(orth.IsNormalTo(s.unit))
	s.False(s.unit.IsNormalTo(circline.NewCircle(1, 1)))

	s.True(s.xAxis.IsNormalTo(circline.NewLine(0, 1i)))
	s.False(s.xAxis.IsNormalTo(circline.NewLine(0, 1+1i)))

	s.True(s.xAxis.IsNormalTo(s.unit))
	s.True(s.unit.IsNormalTo(s.xAxis))
	s.False(s.xAxis.Translate(0.5i).IsNormalTo(s.unit))
}

func (s *CircLineSuite) TestMinorInterval() {
	iv := s.unit.MinorInterval(-0.1, 0.1)
	s.InDelta(0.2, iv.Span(), 1e-12)
	s.InDelta(2*math.Pi-0.1, iv.Start, 1e-12)

	iv = s.unit.MinorInterval(0.5, 2)
	s.InDelta(0.5, iv.Start, 1e-12)
	s.InDelta(2, iv.End, 1e-12)

	iv = s.xAxis.MinorInterval(3, -1)
	s.Equal(circline.Interval{Start: -1, End: 3}, iv)
}

func (s *CircLineSuite) TestPolyline() {
	s.Len(s.unit.Polyline(), 128)
	s.Len(s.xAxis.Polyline(), 2)
}

func (s *CircLineSuite) TestString() {
	s.Contains(s.unit.String(), "circle")
	s.Contains(s.xAxis.String(), "line")
	s.Equal("circle", circline.KindCircle.String())
}

// TestTransformConsistency checks that a point on c maps onto the image of c.
func TestTransformConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 300; i++ {
		a := cplx.Polar(0.6*rng.Float64(), 2*math.Pi*rng.Float64())
		m := mobius.DiscAutomorphism(a, 2*math.Pi*rng.Float64())

		var c circline.CircLine
		if i%3 == 0 {
			c = circline.NewLineAngle(complex(rng.Float64()-0.5, rng.Float64()-0.5), math.Pi*rng.Float64())
		} else {
			c = circline.NewCircle(complex(2*rng.Float64()-1, 2*rng.Float64()-1), 0.2+0.8*rng.Float64())
		}
		img := c.Transform(m)
		if img.IsCircle() && img.Radius() > 20 {
			continue
		}

		for k := 0; k < 8; k++ {
			p := c.Evaluate(float64(k) - 3)
			q := m.Apply(p)
			if cmplx.Abs(q) > 5 {
				continue
			}
			require.True(t, img.ContainsPoint(q), "c=%v m=%v p=%v img=%v", c, m, p, img)
			checked++
		}
	}
	assert.Greater(t, checked, 500)
}

// TestTransformUnitCircleByDiscMaps keeps the disc boundary in place.
func TestTransformUnitCircleByDiscMaps(t *testing.T) {
	for _, m := range []mobius.Mobius{
		mobius.Rotation(1.1),
		mobius.DiscAutomorphism(0.3+0.2i, 0),
		mobius.DiscTranslation(-0.4i, 0.25),
	} {
		img := circline.Unit().Transform(m)
		require.True(t, img.IsCircle())
		assert.True(t, cplx.Equal(0, img.Center()), "center %v", img.Center())
		assert.InDelta(t, 1.0, img.Radius(), 1e-9)
	}
}

// TestTransformCircleToLine maps a circle through the pole onto a line.
func TestTransformCircleToLine(t *testing.T) {
	m := mobius.New(0, 1, 1, 0) // 1/z
	img := circline.NewCircle(0.5, 0.5).Transform(m)
	require.True(t, img.IsLine())
	assert.True(t, img.ContainsPoint(1))
	assert.True(t, img.ContainsPoint(1+7i))
}

// TestTrimmedPolygon samples arcs and segments.
func TestTrimmedPolygon(t *testing.T) {
	arc := circline.NewTrimmed(circline.Unit(), 1, 1i)
	pts, err := arc.Polygon()
	require.NoError(t, err)
	require.Len(t, pts, 32)
	assert.True(t, cplx.Equal(1, pts[0]))
	assert.True(t, cplx.Equal(1i, pts[31]))
	assert.InDelta(t, math.Pi/2, arc.Bounds.Span(), 1e-12)

	seg := circline.NewSegment(0, 2+2i)
	pts, err = seg.Polygon()
	require.NoError(t, err)
	require.Len(t, pts, 2)
	for _, p := range pts {
		assert.True(t, seg.CircLine.ContainsPoint(p))
	}

	_, err = circline.NewTrimmed(circline.Unit(), 1, 1).Polygon()
	assert.ErrorIs(t, err, circline.ErrZeroSpan)
}

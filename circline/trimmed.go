package circline

import "github.com/katalvlaran/hyperdisc/cplx"

// Segments per polygon for each variant.
const (
	arcSegments  = 31
	lineSegments = 1
)

// Trimmed is the part of a CircLine between two parameters.
type Trimmed struct {
	CircLine CircLine
	Bounds   Interval
}

// NewTrimmed returns the minor piece of cl between the projections of start
// and end.
func NewTrimmed(cl CircLine, start, end complex128) Trimmed {
	return Trimmed{
		CircLine: cl,
		Bounds:   cl.MinorInterval(cl.Project(start).Param, cl.Project(end).Param),
	}
}

// NewSegment returns the straight segment from start to end.
func NewSegment(start, end complex128) Trimmed {
	return NewTrimmed(NewLine(start, end), start, end)
}

// Polygon samples the trimmed curve from Bounds.Start to Bounds.End,
// endpoints included. Arcs are split into arcSegments pieces, lines into one.
// Returns ErrZeroSpan when the interval has no length.
func (t Trimmed) Polygon() ([]complex128, error) {
	span := t.Bounds.Span()
	if cplx.LengthIsZero(span) {
		return nil, ErrZeroSpan
	}

	n := arcSegments
	if t.CircLine.IsLine() {
		n = lineSegments
	}
	pts := make([]complex128, n+1)
	for i := range pts {
		pts[i] = t.CircLine.Evaluate(t.Bounds.Start + span*float64(i)/float64(n))
	}
	return pts, nil
}

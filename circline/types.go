package circline

import "errors"

var (
	// ErrNoIntersection indicates that two generalized circles cannot meet
	// (separated circles, parallel lines).
	ErrNoIntersection = errors.New("circline: no intersection")

	// ErrZeroSpan indicates a trimmed curve whose interval has no length.
	ErrZeroSpan = errors.New("circline: zero span")
)

// Kind distinguishes the two variants of a CircLine.
type Kind uint8

const (
	// KindLine is the degenerate, infinite-radius variant (a = 0).
	KindLine Kind = iota
	// KindCircle is a proper circle normalized to a = 1.
	KindCircle
)

// String returns "line" or "circle".
func (k Kind) String() string {
	if k == KindCircle {
		return "circle"
	}
	return "line"
}

// CircLine is an immutable generalized circle. Every operation returns a new
// value; the zero value is not meaningful.
type CircLine struct {
	kind Kind
	a    float64
	b    complex128
	c    float64
}

// Intersection is a common point of two CircLines together with its
// parameter on each of them.
type Intersection struct {
	Point  complex128
	ParamA float64 // parameter on the receiver
	ParamB float64 // parameter on the argument
}

// Evaluation is a point on a CircLine and the parameter that produces it.
type Evaluation struct {
	Point complex128
	Param float64
}

// Interval is a closed parameter range [Start, End].
type Interval struct {
	Start, End float64
}

// Span returns End − Start.
func (iv Interval) Span() float64 { return iv.End - iv.Start }

package tiling

import (
	"math"
	"time"
)

// Tuning defaults and bounds.
const (
	DefaultCircleLimit    = 0.985
	DefaultDrawTimeTarget = 40 * time.Millisecond

	// MaxCircleLimit and MinCircleLimit clamp the adaptive limit.
	MaxCircleLimit = 0.99
	MinCircleLimit = 0.5

	// tuningFrames is the number of frames during which the limit adapts.
	tuningFrames = 16

	// tuningDeadband ignores draw-time errors smaller than this.
	tuningDeadband = 4 * time.Millisecond

	// budgetFactor scales the draw-time target into the traversal cutoff.
	budgetFactor = 1.5
)

// Tuning is the per-session adaptive state. It is a value: Adjust returns the
// next state and leaves the receiver untouched.
type Tuning struct {
	// CircleLimit bounds |center|² of discovered tiles.
	CircleLimit float64

	// AlphaBand is the inner radius of the blended horizon ring. It trails
	// 1 − 2·(1 − CircleLimit) with exponential smoothing.
	AlphaBand float64

	// DrawTimeTarget is the desired duration of one frame.
	DrawTimeTarget time.Duration

	// Frames counts adjusted frames.
	Frames int

	// TotalDraw accumulates measured frame durations.
	TotalDraw time.Duration
}

// DefaultTuning returns a limit of 0.985 and a 40ms target.
func DefaultTuning() Tuning {
	return Tuning{
		CircleLimit:    DefaultCircleLimit,
		DrawTimeTarget: DefaultDrawTimeTarget,
	}
}

// Adjust folds one measured frame duration into the tuning. During the first
// frames the limit is scaled by 1 + (target − drawTime)/2 (in seconds),
// whenever the error exceeds the dead band, and clamped to
// [MinCircleLimit, MaxCircleLimit].
func (t Tuning) Adjust(drawTime time.Duration) Tuning {
	diff := t.DrawTimeTarget - drawTime
	if t.Frames < tuningFrames && (diff > tuningDeadband || diff < -tuningDeadband) {
		t.CircleLimit *= 1 + diff.Seconds()/2
		t.CircleLimit = math.Max(MinCircleLimit, math.Min(t.CircleLimit, MaxCircleLimit))
	}
	t.AlphaBand = (t.AlphaBand + (1 - (1-t.CircleLimit)*2)) / 2
	t.TotalDraw += drawTime
	t.Frames++
	return t
}

// Budget returns the traversal cutoff, 1.5× the draw-time target.
func (t Tuning) Budget() time.Duration {
	return time.Duration(float64(t.DrawTimeTarget) * budgetFactor)
}

// Average returns the mean frame duration in seconds, or 0 before the first
// frame.
func (t Tuning) Average() float64 {
	if t.Frames == 0 {
		return 0
	}
	return t.TotalDraw.Seconds() / float64(t.Frames)
}

// HorizonRadii returns the inner, middle and outer radii of the blended
// horizon ring drawn over the rim of the disc.
func (t Tuning) HorizonRadii() (inner, middle, outer float64) {
	return t.AlphaBand, (t.CircleLimit + 1) / 2, 0.999
}

package control

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/hyperdisc/cplx"
)

// Key is a viewer key.
type Key int

// Keys understood by Session.Key.
const (
	KeyNone Key = iota
	KeyP
	KeyQ
	KeyN
	KeyZ
	KeyR
	KeyL
	KeyI
	KeyM
	KeyF
	KeyEscape
)

// Action is a request for the host that the session cannot fulfil itself.
type Action int

// Host actions.
const (
	ActionNone Action = iota
	ActionFullscreen
	ActionQuit
)

// Key applies a key press. shift reverses P, Q and N.
func (s *Session) Key(k Key, shift bool) Action {
	step := 1
	if shift {
		step = -1
	}

	switch k {
	case KeyP:
		s.SetP(s.p + step)
		s.Reset()
	case KeyQ:
		s.SetQ(s.q + step)
		s.Reset()
	case KeyN:
		s.SetImageIndex(s.imageIndex + step)
		s.Reset()
	case KeyZ:
		s.Randomize()
	case KeyR:
		s.Recenter()
	case KeyL:
		s.MakeLimitRotation()
	case KeyI:
		s.IsInverting = !s.IsInverting
		s.Reset()
	case KeyM:
		s.IsMoving = !s.IsMoving
	case KeyF:
		return ActionFullscreen
	case KeyEscape:
		return ActionQuit
	}
	return ActionNone
}

// Mouse limits.
const (
	// AngleDragRadiusSquared starts an angle drag when pressed beyond it.
	AngleDragRadiusSquared = 0.98

	// maxDragRadius clamps translation drags inside the disc.
	maxDragRadius = 0.98
)

// Mouse turns drags into drift: dragging inside the disc sets Offset to the
// per-sample displacement, dragging from the rim sets AngleOffset to the
// swept angle.
type Mouse struct {
	dragging      bool
	draggingAngle bool
	pos, initial  complex128
}

// Press starts a drag at pos, in disc coordinates.
func (m *Mouse) Press(pos complex128) {
	m.dragging = true
	m.pos = pos
	m.draggingAngle = cplx.ModulusSquared(pos) > AngleDragRadiusSquared
	m.initial = pos
}

// Release ends the drag.
func (m *Mouse) Release() {
	m.dragging = false
	m.draggingAngle = false
}

// IsDragging reports an active drag.
func (m *Mouse) IsDragging() bool { return m.dragging }

// Sample reads the pointer once per frame.
func (m *Mouse) Sample(s *Session, pos complex128) {
	if m.dragging {
		m.pos = pos
		if m.draggingAngle {
			s.AngleOffset = cmplx.Phase(pos) - cmplx.Phase(m.initial)
		} else {
			if cplx.ModulusSquared(m.pos) > AngleDragRadiusSquared {
				m.pos = cplx.Polar(maxDragRadius, cmplx.Phase(m.pos))
			}
			s.Offset = m.pos - m.initial
		}
	}
	m.initial = m.pos
}

// Button is a joystick button.
type Button int

// Joystick buttons, named by their position on a flight stick.
const (
	ButtonTrigger Button = iota
	ButtonGrip
	ButtonThumbBottomLeft
	ButtonThumbBottomRight
	ButtonThumbTopLeft
	ButtonThumbTopRight
	ButtonPad7
	ButtonPad8
	ButtonPad9
	ButtonPad10
	ButtonPad11
	ButtonPad12
)

// Joystick axis indices.
const (
	AxisX = iota
	AxisY
	AxisTwist
	AxisThrottle
	AxisHatX
	AxisHatY
	axisCount
)

// Joystick tuning.
const (
	joystickScale = 0.001
	joystickLimit = 0.15
	limitRatio    = 0.8
	brakeFactor   = 0.9
)

// Joystick steers a session from a flight stick: the stick accumulates
// drift, the throttle sets the texture speed and the hat steps p and q.
type Joystick struct {
	limit     bool
	braking   bool
	disablePQ bool
}

// Press applies a button press.
func (j *Joystick) Press(s *Session, b Button) {
	switch b {
	case ButtonTrigger:
		j.limit = true
	case ButtonGrip:
		j.braking = true
	case ButtonThumbBottomLeft, ButtonPad11:
		s.SetImageIndex(s.imageIndex - 1)
		s.Reset()
	case ButtonThumbBottomRight, ButtonPad12:
		s.SetImageIndex(s.imageIndex + 1)
		s.Reset()
	case ButtonThumbTopLeft:
		s.IsInverting = !s.IsInverting
		s.Reset()
	case ButtonThumbTopRight:
		s.Randomize()
	case ButtonPad7:
		s.IsMoving = !s.IsMoving
	case ButtonPad8:
		s.IsRandomizing = !s.IsRandomizing
	case ButtonPad9:
		s.Recenter()
	case ButtonPad10:
		s.Restore()
	}
}

// Release applies a button release.
func (j *Joystick) Release(b Button) {
	switch b {
	case ButtonTrigger:
		j.limit = false
	case ButtonGrip:
		j.braking = false
	}
}

// Sample reads the axes once per frame. Missing axes read as zero.
func (j *Joystick) Sample(s *Session, axes []float64) {
	var a [axisCount]float64
	copy(a[:], axes)

	s.Offset += complex(a[AxisX]*joystickScale, a[AxisY]*joystickScale)
	if cplx.ModulusSquared(s.Offset) > joystickLimit*joystickLimit {
		s.Offset = cplx.Polar(joystickLimit, cmplx.Phase(s.Offset))
	}

	s.AngleOffset -= a[AxisTwist] * joystickScale
	if math.Abs(s.AngleOffset) > joystickLimit {
		s.AngleOffset = math.Copysign(joystickLimit, s.AngleOffset)
	}

	s.ImageSpeed = a[AxisThrottle] * math.Abs(a[AxisThrottle]) / 5

	if a[AxisHatX] == 0 && a[AxisHatY] == 0 {
		j.disablePQ = false
	}
	if a[AxisHatX] != 0 && !j.disablePQ {
		s.SetP(s.p + int(a[AxisHatX]))
		j.disablePQ = true
		s.Reset()
	}
	if a[AxisHatY] != 0 && !j.disablePQ {
		s.SetQ(s.q + int(a[AxisHatY]))
		j.disablePQ = true
		s.Reset()
	}

	if j.limit {
		old := s.AngleOffset
		s.MakeLimitRotation()
		s.AngleOffset = s.AngleOffset*(1-limitRatio) + old*limitRatio
	}
	if j.braking {
		s.Offset *= brakeFactor
		s.AngleOffset *= brakeFactor
	}
}

package roomscale

import (
	"go.uber.org/zap"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/logger"
	"github.com/Faultbox/roomscale/internal/pose"
	"github.com/Faultbox/roomscale/pkg/math"
)

// Axis names, in the order Update resolves them.
const (
	AxisYaw        = "yaw"
	AxisPitch      = "pitch"
	AxisHorizontal = "horizontal"
	AxisVertical   = "vertical"
)

// DefaultLeanSensitivity is the horizontal and vertical rate in meters per second.
const DefaultLeanSensitivity = 0.1

// Translator maps headset rotation and movement onto four axes.
//
//	yaw        heading, grows turning left
//	pitch      negated elevation, grows looking down
//	horizontal sideways offset from HeadOrigin in the head frame, grows to the right
//	vertical   forward offset from HeadOrigin in the head frame, grows forward
type Translator struct {
	Yaw        *Axis
	Pitch      *Axis
	Horizontal *Axis
	Vertical   *Axis

	HeadOrigin math.Vec3

	modes map[string]*action.Mode
}

// NewTranslator creates a translator with all axes disabled.
func NewTranslator() *Translator {
	t := &Translator{modes: make(map[string]*action.Mode)}
	t.Yaw = t.newAxis(AxisYaw)
	t.Pitch = t.newAxis(AxisPitch)
	t.Horizontal = t.newAxis(AxisHorizontal)
	t.Horizontal.Sensitivity = DefaultLeanSensitivity
	t.Vertical = t.newAxis(AxisVertical)
	t.Vertical.Sensitivity = DefaultLeanSensitivity
	return t
}

func (t *Translator) newAxis(name string) *Axis {
	mode := action.NewMode(false)
	t.modes[name] = mode
	return NewAxis(name, mode)
}

// Mode returns the enable gate of the named axis, or nil.
func (t *Translator) Mode(name string) *action.Mode {
	return t.modes[name]
}

// Modes returns the enable gates keyed by axis name.
func (t *Translator) Modes() map[string]*action.Mode {
	return t.modes
}

// Axes returns the axes in update order.
func (t *Translator) Axes() []*Axis {
	return []*Axis{t.Yaw, t.Pitch, t.Horizontal, t.Vertical}
}

// Update feeds one frame of head pose into the axes, yaw first and vertical last.
// An axis that was disabled while an action was entered has that action left first.
func (t *Translator) Update(now float64, dt float32, head pose.HeadPose) {
	for _, a := range t.Axes() {
		if !a.Enabled() && a.Direction != DirectionNone {
			a.ForceStop()
		}
	}
	if !t.anyEnabled() {
		return
	}

	yaw, pitch := head.YawPitch()
	// Follow the simulated yaw across the ±π seam instead of jumping a full turn.
	yaw = math.UnwrapNear(yaw, t.Yaw.Current)

	t.Yaw.Update(now, dt, yaw)
	t.Pitch.Update(now, dt, -pitch)

	// Floor-plane offset in the head's own frame: X right, Y backwards.
	floor := math.RotateYaw(head.Position.Sub(t.HeadOrigin), -yaw).XZ()

	t.Horizontal.Update(now, dt, floor.X)
	t.Vertical.Update(now, dt, -floor.Y)
}

// Reset makes the current head pose the new neutral pose and releases
// every entered action.
func (t *Translator) Reset(head pose.HeadPose) {
	yaw, pitch := head.YawPitch()
	t.HeadOrigin = head.Position

	t.Yaw.Current = yaw
	t.Yaw.Center = yaw
	t.Pitch.Current = -pitch
	t.Horizontal.Current = 0
	t.Vertical.Current = 0

	for _, a := range t.Axes() {
		a.ForceStop()
	}

	logger.Info("roomscale reset",
		zap.Float32("yaw", yaw),
		zap.Float32("pitch", pitch),
		zap.Float32("x", head.Position.X),
		zap.Float32("y", head.Position.Y),
		zap.Float32("z", head.Position.Z),
	)
}

func (t *Translator) anyEnabled() bool {
	for _, a := range t.Axes() {
		if a.Enabled() {
			return true
		}
	}
	return false
}

// Package pose describes headset poses and where they come from.
package pose

import (
	"github.com/Faultbox/roomscale/pkg/math"
)

// HeadPose is a snapshot of the headset in tracking space (meters, Y up, -Z forward).
type HeadPose struct {
	Position    math.Vec3
	Orientation math.Quat
}

// FromYawPitch builds a pose looking along yaw/pitch (radians).
func FromYawPitch(position math.Vec3, yaw, pitch float32) HeadPose {
	return HeadPose{
		Position:    position,
		Orientation: math.QuatFromYawPitch(yaw, pitch),
	}
}

// YawPitch returns the heading (grows turning left) and elevation (grows looking up).
func (p HeadPose) YawPitch() (yaw, pitch float32) {
	return p.Orientation.YawPitch()
}

// Lerp blends two poses; t=0 gives p, t=1 gives other.
func (p HeadPose) Lerp(other HeadPose, t float32) HeadPose {
	return HeadPose{
		Position:    math.LerpVec3(p.Position, other.Position, t),
		Orientation: p.Orientation.Slerp(other.Orientation, t),
	}
}

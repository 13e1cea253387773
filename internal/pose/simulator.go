package pose

import (
	gomath "math"

	"github.com/Faultbox/roomscale/pkg/math"
)

// Simulator stands in for a headset: it integrates look and lean input into a pose.
type Simulator struct {
	Yaw      float32
	Pitch    float32
	Position math.Vec3
}

// NewSimulator creates a simulator with the head at eyeHeight above the origin.
func NewSimulator(eyeHeight float32) *Simulator {
	return &Simulator{Position: math.Vec3{Y: eyeHeight}}
}

// Look turns the head. Yaw wraps around, pitch stops just short of straight up or down.
func (s *Simulator) Look(dYaw, dPitch float32) {
	s.Yaw = math.WrapAngle(s.Yaw + dYaw)
	limit := float32(gomath.Pi/2 - 0.01)
	s.Pitch = math.Clamp(s.Pitch+dPitch, -limit, limit)
}

// Lean moves the head in its own frame: move.X to the right, move.Y forward
// along the view.
func (s *Simulator) Lean(move math.Vec2) {
	local := math.Vec3{X: move.X, Y: 0, Z: -move.Y}
	s.Position = s.Position.Add(math.RotateYaw(local, s.Yaw))
}

// Pose returns the current head pose.
func (s *Simulator) Pose() HeadPose {
	return FromYawPitch(s.Position, s.Yaw, s.Pitch)
}

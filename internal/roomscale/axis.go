// Package roomscale turns continuous head motion into discrete input actions.
//
// Each Axis simulates the value a game would reach if the bound keys were held:
// it chases a target at a capped rate and enters, updates and leaves a
// negative, positive or center action as the simulated value moves.
// A Translator owns the yaw, pitch, horizontal and vertical axes and feeds
// them from head pose snapshots, one Update per frame.
package roomscale

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/logger"
)

// Direction is the action an axis currently has entered.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionNegative
	DirectionCenter
	DirectionPositive
)

func (d Direction) String() string {
	switch d {
	case DirectionNegative:
		return "negative"
	case DirectionCenter:
		return "center"
	case DirectionPositive:
		return "positive"
	default:
		return "none"
	}
}

// Gate enables or disables an axis.
type Gate interface {
	Enabled() bool
}

// Default axis tuning.
const (
	DefaultSensitivity   = 1.25
	DefaultCenterEpsilon = 0.05
	DefaultHoldThreshold = 100000
)

// Axis is one simulated degree of freedom.
type Axis struct {
	Name string
	Mode Gate

	Sensitivity   float32 // max change of Current per second
	CenterEpsilon float32 // half-width of the zone around Center that triggers CenterAction
	HoldThreshold float32 // targets further than this from Center keep driving the axis

	Current  float32
	Center   float32
	Centered bool

	Direction Direction
	Target    float32 // last target passed to Update

	Negative     action.Action
	Positive     action.Action
	CenterAction action.Action // optional
}

// NewAxis creates an axis with default tuning and no-op directional actions.
func NewAxis(name string, mode Gate) *Axis {
	return &Axis{
		Name:          name,
		Mode:          mode,
		Sensitivity:   DefaultSensitivity,
		CenterEpsilon: DefaultCenterEpsilon,
		HoldThreshold: DefaultHoldThreshold,
		Centered:      true,
		Negative:      action.Nop{},
		Positive:      action.Nop{},
	}
}

// Enabled reports whether the axis gate is open.
func (a *Axis) Enabled() bool {
	return a.Mode != nil && a.Mode.Enabled()
}

// Update advances Current toward target by at most Sensitivity*dt and
// dispatches the matching action lifecycle calls.
func (a *Axis) Update(now float64, dt float32, target float32) {
	if !a.Enabled() {
		return
	}
	a.Target = target

	maxChange := a.Sensitivity * dt
	// Keep driving while a full frame of movement still fits before the
	// target, or while the target is pinned beyond the hold threshold.
	moving := abs(target-a.Current) >= maxChange
	pinned := abs(target-a.Center) > a.HoldThreshold
	if !moving && !pinned {
		a.StopMovement()
		return
	}

	switch {
	case a.CenterAction != nil && abs(a.Center-target) < a.CenterEpsilon:
		if a.Direction == DirectionCenter {
			a.StopMovement()
			a.Centered = true
		} else if !a.Centered {
			a.StopMovement()
			a.Current = a.Center
			a.enter(DirectionCenter, now)
		}

	case a.Current < target || target > a.Center+a.HoldThreshold:
		// A pinned target below Current holds the key without moving back.
		a.Current = min(max(target, a.Current), a.Current+maxChange)
		if a.Direction == DirectionPositive {
			a.actionFor(DirectionPositive).Update(now)
		} else {
			a.StopMovement()
			a.Centered = false
			a.enter(DirectionPositive, now)
		}

	case a.Current > target || target < a.Center-a.HoldThreshold:
		a.Current = max(min(target, a.Current), a.Current-maxChange)
		if a.Direction == DirectionNegative {
			a.actionFor(DirectionNegative).Update(now)
		} else {
			a.StopMovement()
			a.Centered = false
			a.enter(DirectionNegative, now)
		}

	default:
		a.StopMovement()
	}
}

// StopMovement leaves the entered action. It does nothing while the axis
// is disabled or when no action is entered.
func (a *Axis) StopMovement() {
	if !a.Enabled() {
		return
	}
	a.leave()
}

// ForceStop leaves the entered action even if the axis has been disabled
// in the meantime, so no key stays held across a reset.
func (a *Axis) ForceStop() {
	a.leave()
}

func (a *Axis) enter(dir Direction, now float64) {
	logger.Debug("axis enter",
		zap.String("axis", a.Name),
		zap.Stringer("direction", dir),
		zap.Float32("current", a.Current),
		zap.Float32("target", a.Target),
	)
	a.Direction = dir
	a.actionFor(dir).Enter(now, false)
}

func (a *Axis) leave() {
	if a.Direction == DirectionNone {
		return
	}
	logger.Debug("axis leave",
		zap.String("axis", a.Name),
		zap.Stringer("direction", a.Direction),
		zap.Float32("current", a.Current),
	)
	a.actionFor(a.Direction).Leave()
	a.Direction = DirectionNone
}

// actionFor returns the action bound to dir, or a no-op when none is bound.
func (a *Axis) actionFor(dir Direction) action.Action {
	var act action.Action
	switch dir {
	case DirectionNegative:
		act = a.Negative
	case DirectionPositive:
		act = a.Positive
	case DirectionCenter:
		act = a.CenterAction
	}
	if act == nil {
		return action.Nop{}
	}
	return act
}

func abs(v float32) float32 {
	return float32(gomath.Abs(float64(v)))
}

package config

import "fmt"

// Action types understood by the action builder.
const (
	ActionKey    = "key"
	ActionTap    = "tap"
	ActionToggle = "toggle"
	ActionMulti  = "multi"
)

// AxisNames lists the axes in update order.
var AxisNames = []string{"yaw", "pitch", "horizontal", "vertical"}

// Axis returns the axis config by name, or nil.
func (r *RoomscaleConfig) Axis(name string) *AxisConfig {
	switch name {
	case "yaw":
		return &r.Yaw
	case "pitch":
		return &r.Pitch
	case "horizontal":
		return &r.Horizontal
	case "vertical":
		return &r.Vertical
	}
	return nil
}

// Validate checks the config for values the translator cannot run with.
func (c *Config) Validate() error {
	for _, name := range AxisNames {
		if err := c.Roomscale.Axis(name).validate(); err != nil {
			return fmt.Errorf("roomscale.%s: %w", name, err)
		}
	}
	if c.Replay.FPS < 0 {
		return fmt.Errorf("replay.fps: must not be negative, got %d", c.Replay.FPS)
	}
	if c.Replay.Speed <= 0 {
		return fmt.Errorf("replay.speed: must be positive, got %v", c.Replay.Speed)
	}
	return nil
}

func (a *AxisConfig) validate() error {
	if a.Sensitivity <= 0 {
		return fmt.Errorf("sensitivity must be positive, got %v", a.Sensitivity)
	}
	if a.CenterEpsilon < 0 {
		return fmt.Errorf("center_epsilon must not be negative, got %v", a.CenterEpsilon)
	}
	if a.HoldThreshold <= 0 {
		return fmt.Errorf("hold_threshold must be positive, got %v", a.HoldThreshold)
	}
	for side, act := range map[string]*ActionConfig{"negative": a.Negative, "positive": a.Positive, "center": a.Center} {
		if act == nil {
			continue
		}
		if err := act.Validate(); err != nil {
			return fmt.Errorf("%s: %w", side, err)
		}
	}
	return nil
}

// Validate checks one action description, recursing into multi actions.
func (a *ActionConfig) Validate() error {
	switch a.Type {
	case ActionKey, ActionTap:
		if a.Key == "" {
			return fmt.Errorf("%s action needs a key", a.Type)
		}
		if a.Type == ActionTap && a.Duration <= 0 {
			return fmt.Errorf("tap action needs a positive duration")
		}
	case ActionToggle:
		found := false
		for _, name := range AxisNames {
			if a.Mode == name {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("toggle action: unknown mode %q", a.Mode)
		}
	case ActionMulti:
		if len(a.Actions) == 0 {
			return fmt.Errorf("multi action needs at least one action")
		}
		for i := range a.Actions {
			if err := a.Actions[i].Validate(); err != nil {
				return fmt.Errorf("actions[%d]: %w", i, err)
			}
		}
	default:
		return fmt.Errorf("unknown action type %q", a.Type)
	}
	return nil
}

// Keys returns every key name bound on any axis, including nested actions.
func (r *RoomscaleConfig) Keys() []string {
	var keys []string
	var walk func(a *ActionConfig)
	walk = func(a *ActionConfig) {
		if a == nil {
			return
		}
		if a.Key != "" {
			keys = append(keys, a.Key)
		}
		for i := range a.Actions {
			walk(&a.Actions[i])
		}
	}
	for _, name := range AxisNames {
		axis := r.Axis(name)
		walk(axis.Negative)
		walk(axis.Positive)
		walk(axis.Center)
	}
	return keys
}

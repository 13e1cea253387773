// Package config handles roomscale configuration loading and management.
package config

import (
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all settings.
type Config struct {
	Roomscale RoomscaleConfig `yaml:"roomscale"`
	Sim       SimConfig       `yaml:"sim"`
	Replay    ReplayConfig    `yaml:"replay"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// RoomscaleConfig binds the four head axes to actions.
type RoomscaleConfig struct {
	Yaw        AxisConfig `yaml:"yaw"`
	Pitch      AxisConfig `yaml:"pitch"`
	Horizontal AxisConfig `yaml:"horizontal"`
	Vertical   AxisConfig `yaml:"vertical"`
}

// AxisConfig holds the tuning and action bindings of one axis.
type AxisConfig struct {
	Enabled       bool          `yaml:"enabled"`
	Sensitivity   float32       `yaml:"sensitivity"`    // units or radians per second
	CenterEpsilon float32       `yaml:"center_epsilon"` // neutral zone half-width
	HoldThreshold float32       `yaml:"hold_threshold"` // offset from center that pins the axis
	Negative      *ActionConfig `yaml:"negative,omitempty"`
	Positive      *ActionConfig `yaml:"positive,omitempty"`
	Center        *ActionConfig `yaml:"center,omitempty"`
}

// ActionConfig describes one action.
//
//	type: key     hold Key while the direction is active
//	type: tap     press Key, release after Duration
//	type: toggle  flip the enable gate of the axis named by Mode
//	type: multi   run Actions together
type ActionConfig struct {
	Type     string         `yaml:"type"`
	Key      string         `yaml:"key,omitempty"`
	Duration time.Duration  `yaml:"duration,omitempty"`
	Mode     string         `yaml:"mode,omitempty"`
	Actions  []ActionConfig `yaml:"actions,omitempty"`
}

// UnmarshalYAML replaces the action as a whole, so a profile entry never
// inherits fields such as Key from the default binding it overrides.
func (a *ActionConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain ActionConfig
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = ActionConfig(p)
	return nil
}

// SimConfig holds settings of the SDL simulated-headset harness.
type SimConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	MouseRadPerPx  float32 `yaml:"mouse_rad_per_px"`
	LeanSpeed      float32 `yaml:"lean_speed"` // meters per second while a lean key is held
	EyeHeight      float32 `yaml:"eye_height"`
	FrameRateLimit int     `yaml:"frame_rate_limit"`
}

// ReplayConfig holds settings of trace playback.
type ReplayConfig struct {
	Trace string  `yaml:"trace"`
	FPS   int     `yaml:"fps"` // resampling rate; 0 replays the recorded frames as-is
	Speed float64 `yaml:"speed"`
	TUI   bool    `yaml:"tui"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
// Yaw and pitch drive the arrow keys; leaning is opt-in.
func Default() *Config {
	return &Config{
		Roomscale: RoomscaleConfig{
			Yaw: AxisConfig{
				Enabled:       true,
				Sensitivity:   1.25,
				CenterEpsilon: 0.05,
				HoldThreshold: 100000,
				Negative:      &ActionConfig{Type: ActionKey, Key: "Right"},
				Positive:      &ActionConfig{Type: ActionKey, Key: "Left"},
			},
			Pitch: AxisConfig{
				Enabled:       true,
				Sensitivity:   1.25,
				CenterEpsilon: 0.05,
				HoldThreshold: 100000,
				Negative:      &ActionConfig{Type: ActionKey, Key: "Up"},
				Positive:      &ActionConfig{Type: ActionKey, Key: "Down"},
			},
			Horizontal: AxisConfig{
				Enabled:       false,
				Sensitivity:   0.1,
				CenterEpsilon: 0.05,
				HoldThreshold: 100000,
				Negative:      &ActionConfig{Type: ActionKey, Key: "A"},
				Positive:      &ActionConfig{Type: ActionKey, Key: "D"},
			},
			Vertical: AxisConfig{
				Enabled:       false,
				Sensitivity:   0.1,
				CenterEpsilon: 0.05,
				HoldThreshold: 100000,
				Negative:      &ActionConfig{Type: ActionKey, Key: "S"},
				Positive:      &ActionConfig{Type: ActionKey, Key: "W"},
			},
		},
		Sim: SimConfig{
			Width:          800,
			Height:         600,
			MouseRadPerPx:  0.005,
			LeanSpeed:      0.5,
			EyeHeight:      1.7,
			FrameRateLimit: 90,
		},
		Replay: ReplayConfig{
			FPS:   90,
			Speed: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

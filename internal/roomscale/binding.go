package roomscale

import (
	"fmt"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/config"
)

// FromConfig builds a translator whose axes are tuned and bound as cfg describes.
// Key actions send their events to sink.
func FromConfig(cfg config.RoomscaleConfig, sink action.KeySink) (*Translator, error) {
	t := NewTranslator()

	for _, a := range t.Axes() {
		axisCfg := cfg.Axis(a.Name)
		if err := t.bind(a, axisCfg, sink); err != nil {
			return nil, fmt.Errorf("binding %s axis: %w", a.Name, err)
		}
	}
	return t, nil
}

func (t *Translator) bind(a *Axis, cfg *config.AxisConfig, sink action.KeySink) error {
	t.modes[a.Name].Set(cfg.Enabled)
	a.Sensitivity = cfg.Sensitivity
	a.CenterEpsilon = cfg.CenterEpsilon
	a.HoldThreshold = cfg.HoldThreshold

	var err error
	if cfg.Negative != nil {
		if a.Negative, err = action.Build(*cfg.Negative, sink, t.modes); err != nil {
			return fmt.Errorf("negative: %w", err)
		}
	}
	if cfg.Positive != nil {
		if a.Positive, err = action.Build(*cfg.Positive, sink, t.modes); err != nil {
			return fmt.Errorf("positive: %w", err)
		}
	}
	if cfg.Center != nil {
		if a.CenterAction, err = action.Build(*cfg.Center, sink, t.modes); err != nil {
			return fmt.Errorf("center: %w", err)
		}
	}
	return nil
}

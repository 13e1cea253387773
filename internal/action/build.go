package action

import (
	"fmt"

	"github.com/Faultbox/roomscale/internal/config"
)

// Build creates an action from its config description. Toggle actions look
// their target up in modes by axis name.
func Build(cfg config.ActionConfig, sink KeySink, modes map[string]*Mode) (Action, error) {
	switch cfg.Type {
	case config.ActionKey:
		if cfg.Key == "" {
			return nil, fmt.Errorf("key action needs a key")
		}
		return NewKeyPress(cfg.Key, sink), nil

	case config.ActionTap:
		if cfg.Key == "" {
			return nil, fmt.Errorf("tap action needs a key")
		}
		return NewKeyTap(cfg.Key, cfg.Duration.Seconds(), sink), nil

	case config.ActionToggle:
		mode, ok := modes[cfg.Mode]
		if !ok {
			return nil, fmt.Errorf("toggle action: unknown mode %q", cfg.Mode)
		}
		return &Toggle{Mode: mode}, nil

	case config.ActionMulti:
		multi := make(Multi, 0, len(cfg.Actions))
		for i, child := range cfg.Actions {
			a, err := Build(child, sink, modes)
			if err != nil {
				return nil, fmt.Errorf("actions[%d]: %w", i, err)
			}
			multi = append(multi, a)
		}
		return multi, nil
	}
	return nil, fmt.Errorf("unknown action type %q", cfg.Type)
}

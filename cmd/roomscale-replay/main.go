// Package main replays a recorded head-pose trace through the roomscale
// translator and reports the key actions it produces.
//
// Usage:
//
//	roomscale-replay -trace session.yaml [-config roomscale.yaml] [-fps 90] [-tui] [-debug]
package main

import (
	"fmt"
	"os"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Faultbox/roomscale/internal/action"
	"github.com/Faultbox/roomscale/internal/config"
	"github.com/Faultbox/roomscale/internal/logger"
	"github.com/Faultbox/roomscale/internal/monitor"
	"github.com/Faultbox/roomscale/internal/pose"
	"github.com/Faultbox/roomscale/internal/replay"
	"github.com/Faultbox/roomscale/internal/roomscale"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if config.WriteConfigRequested() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", config.DefaultPath())
		return
	}

	if cfg.Replay.Trace == "" {
		fmt.Fprintln(os.Stderr, "Usage: roomscale-replay -trace <trace.yaml> [-config <file>] [-fps N] [-tui] [-write-config]")
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs only go to the file there.
	if cfg.Replay.TUI {
		err = logger.InitWithFileConfig(cfg.Logging.Level, logFileConfig(cfg), false)
	} else {
		err = logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	trace, err := pose.LoadTrace(cfg.Replay.Trace)
	if err != nil {
		logger.Error("failed to load trace", zap.Error(err))
		os.Exit(1)
	}

	keys := action.NewRecorder()
	sink := action.Tee{keys, action.LogSink{Log: logger.Named("keys")}}
	tr, err := roomscale.FromConfig(cfg.Roomscale, sink)
	if err != nil {
		logger.Error("failed to bind roomscale", zap.Error(err))
		os.Exit(1)
	}

	steps := trace.Steps(cfg.Replay.FPS)
	player := replay.NewPlayer(tr, steps)

	logger.Info("replaying trace",
		zap.String("name", trace.Name),
		zap.Int("frames", len(trace.Frames)),
		zap.Int("steps", len(steps)),
		zap.Float64("duration_s", trace.Duration()),
	)

	if cfg.Replay.TUI {
		program := tea.NewProgram(monitor.New(player, keys, cfg.Replay.Speed), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			logger.Error("monitor error", zap.Error(err))
			os.Exit(1)
		}
	} else {
		player.Run()
	}

	summarize(keys)
}

func logFileConfig(cfg *config.Config) logger.FileConfig {
	path := cfg.Logging.LogFile
	if path == "" {
		path = "roomscale-replay.log"
	}
	return logger.DefaultFileConfig(path)
}

// summarize logs how often each key was pressed.
func summarize(keys *action.Recorder) {
	counts := make(map[string]int)
	for _, e := range keys.Events {
		if e.Down {
			counts[e.Key]++
		}
	}

	names := make([]string, 0, len(counts))
	for k := range counts {
		names = append(names, k)
	}
	sort.Strings(names)

	for _, k := range names {
		logger.Info("key summary", zap.String("key", k), zap.Int("presses", counts[k]))
	}
	logger.Info("replay finished", zap.Int("events", len(keys.Events)))
}

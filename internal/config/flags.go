package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagTrace   = flag.String("trace", "", "Head pose trace to replay")
	flagTUI     = flag.Bool("tui", false, "Show the axis monitor during replay")
	flagFPS     = flag.Int("fps", -1, "Replay resampling rate (0 keeps recorded frames)")
	flagLogFile = flag.String("log-file", "", "Write logs to this file")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")

	flagWriteConfig = flag.Bool("write-config", false, "Write the effective config to the user config file and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigRequested reports whether -write-config was given.
func WriteConfigRequested() bool {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTrace != "" {
		cfg.Replay.Trace = *flagTrace
	}
	if *flagTUI {
		cfg.Replay.TUI = true
	}
	if *flagFPS >= 0 {
		cfg.Replay.FPS = *flagFPS
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWidth > 0 {
		cfg.Sim.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Sim.Height = *flagHeight
	}
}

package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagScene    = flag.String("scene", "", "Path to scene description")
	flagHeadless = flag.Bool("headless", false, "Run without a window")
	flagFrames   = flag.Int("frames", 0, "Number of frames to run in headless mode")
	flagDynamic  = flag.Bool("dynamic", false, "Refresh instance matrices every frame")
	flagWidth    = flag.Int("width", 0, "Window width")
	flagHeight   = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagHeadless {
		cfg.Window.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Window.Frames = *flagFrames
	}
	if *flagDynamic {
		cfg.Culling.StaticMeshes = false
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
}

package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging and curve overlay")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagOBJ        = flag.String("obj", "", "Mesh file (OBJ)")
	flagMTL        = flag.String("mtl", "", "Material file (MTL)")
	flagCurve      = flag.String("curve", "", "Control point file")
	flagSamples    = flag.Int("samples", 0, "Number of curve samples")
	flagWatch      = flag.Bool("watch", false, "Reload the control point file when it changes")
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
		cfg.Debug.ShowFPS = true
		cfg.Debug.ShowCurve = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagOBJ != "" {
		cfg.Assets.OBJ = *flagOBJ
	}
	if *flagMTL != "" {
		cfg.Assets.MTL = *flagMTL
	}
	if *flagCurve != "" {
		cfg.Assets.Curve = *flagCurve
	}
	if *flagSamples > 0 {
		cfg.Animation.Samples = *flagSamples
	}
	if *flagWatch {
		cfg.Debug.WatchCurve = true
	}
}

package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed    = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen  = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth       = flag.Int("width", 0, "Window width")
	flagHeight      = flag.Int("height", 0, "Window height")
	flagGrid        = flag.Int("grid", 0, "Sprites per grid side")
	flagSpacing     = flag.Float64("spacing", 0, "Distance between sprites")
	flagTextureSize = flag.Int("texture-size", 0, "Facade texture edge in pixels")
	flagSaveFacade  = flag.Bool("save-facade", false, "Write the baked facade to a PNG")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// WriteConfigPath returns the --write-config target, empty when unset.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
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
	if *flagGrid > 0 {
		cfg.Scene.GridCount = *flagGrid
	}
	if *flagSpacing > 0 {
		cfg.Scene.GridSpacing = float32(*flagSpacing)
	}
	if *flagTextureSize > 0 {
		cfg.Facade.TextureSize = *flagTextureSize
	}
	if *flagSaveFacade {
		cfg.Capture.SaveFacade = true
	}
}

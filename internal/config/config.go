// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Facade   FacadeConfig   `yaml:"facade"`
	Scene    SceneConfig    `yaml:"scene"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Viewer camera vertical FOV in degrees
}

// FacadeConfig controls the one-time bake of the facade texture.
type FacadeConfig struct {
	TextureSize int     `yaml:"texture_size"` // Square render target edge in pixels
	FOV         float32 `yaml:"fov"`          // Bake camera vertical FOV in degrees
	Padding     float32 `yaml:"padding"`      // Multiplier on the object's largest extent
}

// SceneConfig describes the source object and the sprite grid.
type SceneConfig struct {
	GridCount   int        `yaml:"grid_count"` // Sprites per grid side
	GridSpacing float32    `yaml:"grid_spacing"`
	KnotRadius  float32    `yaml:"knot_radius"`
	KnotTube    float32    `yaml:"knot_tube"`
	KnotP       int        `yaml:"knot_p"`
	KnotQ       int        `yaml:"knot_q"`
	ObjectColor [3]float32 `yaml:"object_color"`
	Background  [3]float32 `yaml:"background"`

	// Sun direction in degrees
	SunAzimuth   float32 `yaml:"sun_azimuth"`
	SunElevation float32 `yaml:"sun_elevation"`
}

// CaptureConfig holds PNG output settings.
type CaptureConfig struct {
	SaveFacade bool   `yaml:"save_facade"` // Write the baked texture once at startup
	OutputDir  string `yaml:"output_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        60,
		},
		Facade: FacadeConfig{
			TextureSize: 512,
			FOV:         45,
			Padding:     1.1,
		},
		Scene: SceneConfig{
			GridCount:   21,
			GridSpacing: 6,
			KnotRadius:  1,
			KnotTube:    0.3,
			KnotP:       2,
			KnotQ:       3,
			ObjectColor: [3]float32{0.85, 0.45, 0.2},
			Background:  [3]float32{0.1, 0.1, 0.15},

			SunAzimuth:   30,
			SunElevation: 55,
		},
		Capture: CaptureConfig{
			SaveFacade: false,
			OutputDir:  "captures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

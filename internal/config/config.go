// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Assets    AssetsConfig    `yaml:"assets"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Debug     DebugConfig     `yaml:"debug"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"`
	LineWidth  float32    `yaml:"line_width"`
	PointSize  float32    `yaml:"point_size"`
}

// AssetsConfig holds the input file paths of the trajectory demo.
type AssetsConfig struct {
	OBJ         string `yaml:"obj"`
	MTL         string `yaml:"mtl"`
	Curve       string `yaml:"curve"`
	FlipTexture bool   `yaml:"flip_texture"` // image rows are top-down, GL expects bottom-up
}

// AnimationConfig holds curve and model animation settings.
type AnimationConfig struct {
	Samples          int     `yaml:"samples"`
	PathScale        float32 `yaml:"path_scale"`
	InitialRotationX float32 `yaml:"initial_rotation_x"` // degrees
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	Position     [3]float32 `yaml:"position"`
	FOV          float32    `yaml:"fov"`
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	Sensitivity  float32    `yaml:"sensitivity"`
	Speed        float32    `yaml:"speed"`
	CaptureMouse bool       `yaml:"capture_mouse"`
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	ShowCurve        bool   `yaml:"show_curve"`
	ShowFPS          bool   `yaml:"show_fps"`
	WatchCurve       bool   `yaml:"watch_curve"` // reload control points when the file changes
	ScreenshotDir    string `yaml:"screenshot_dir"`
	ScreenshotFormat string `yaml:"screenshot_format"` // png or webp
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
			Width:      1000,
			Height:     1000,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [4]float32{0, 0, 0, 1},
			LineWidth:  10,
			PointSize:  20,
		},
		Assets: AssetsConfig{
			OBJ:         "models/SuzanneTriTextured.obj",
			MTL:         "materials/SuzanneTriTextured.mtl",
			Curve:       "animations/curves.txt",
			FlipTexture: true,
		},
		Animation: AnimationConfig{
			Samples:          1500,
			PathScale:        0.5,
			InitialRotationX: 90,
		},
		Camera: CameraConfig{
			Position:     [3]float32{0, 0, 3},
			FOV:          45,
			Near:         0.1,
			Far:          100,
			Sensitivity:  0.1,
			Speed:        0.01,
			CaptureMouse: true,
		},
		Debug: DebugConfig{
			ShowCurve:        false,
			ShowFPS:          false,
			ScreenshotDir:    "screenshots",
			ScreenshotFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

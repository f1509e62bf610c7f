// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Overview OverviewConfig `yaml:"overview"`
	Camera   CameraConfig   `yaml:"camera"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	FPSLimit   int        `yaml:"fps_limit"`
	ClearColor [3]float32 `yaml:"clear_color"`

	Light        string  `yaml:"light"` // "camera" or "sun"
	SunLongitude float32 `yaml:"sun_longitude"`
	SunLatitude  float32 `yaml:"sun_latitude"`
}

// TerrainConfig holds the terrain sources and initial presentation.
type TerrainConfig struct {
	Heightmap    string  `yaml:"heightmap"`
	Alphamap     string  `yaml:"alphamap"` // empty uses a red fill
	HeightScale  float32 `yaml:"height_scale"`
	HeightOffset float32 `yaml:"height_offset"`
	Mode         string  `yaml:"mode"`
}

// OverviewConfig holds the top-down overview settings.
type OverviewConfig struct {
	Size    float32 `yaml:"size"` // pixels per side
	Visible bool    `yaml:"visible"`
}

// CameraConfig holds the first-person camera settings.
type CameraConfig struct {
	Eye         [3]float32 `yaml:"eye"`
	MoveStep    float32    `yaml:"move_step"`
	Sensitivity float32    `yaml:"sensitivity"`
	FovY        float32    `yaml:"fov_y"` // degrees
}

// DebugConfig holds reference geometry and capture settings.
type DebugConfig struct {
	GridLength    int    `yaml:"grid_length"`
	GridDelta     int    `yaml:"grid_delta"`
	ShowGrid      bool   `yaml:"show_grid"`
	ScreenshotDir string `yaml:"screenshot_dir"`
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
			FPSLimit:   0,
			ClearColor: [3]float32{0, 0, 0},

			Light:        "camera",
			SunLongitude: 45,
			SunLatitude:  45,
		},
		Terrain: TerrainConfig{
			Heightmap:    "heightmap.png",
			Alphamap:     "",
			HeightScale:  10,
			HeightOffset: 0,
			Mode:         "textured",
		},
		Overview: OverviewConfig{
			Size:    300,
			Visible: false,
		},
		Camera: CameraConfig{
			Eye:         [3]float32{-20, 20, -20},
			MoveStep:    1,
			Sensitivity: 0.005,
			FovY:        45,
		},
		Debug: DebugConfig{
			GridLength:    800,
			GridDelta:     10,
			ShowGrid:      true,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Package config handles configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Terrain  TerrainConfig  `yaml:"terrain"`
	Camera   CameraConfig   `yaml:"camera"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds terrain synthesis settings.
type TerrainConfig struct {
	ControlSize int     `yaml:"control_size"` // Coarse control grid side length
	FineSize    int     `yaml:"fine_size"`    // Dense heightfield side length
	UVScale     float32 `yaml:"uv_scale"`     // Texture repeats across the field
	Seed        uint64  `yaml:"seed"`         // 0 = seed from wall clock
}

// CameraConfig holds first-person camera tuning.
type CameraConfig struct {
	Speed          float32 `yaml:"speed"`           // World units per second
	FastMultiplier float32 `yaml:"fast_multiplier"` // Shift speed factor
	AngularSpeed   float32 `yaml:"angular_speed"`   // Look degrees per second
	EyeOffset      float32 `yaml:"eye_offset"`      // Eye height above terrain
	FOVDegrees     float32 `yaml:"fov_degrees"`
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
}

// AssetsConfig holds asset search paths and file names.
type AssetsConfig struct {
	Dirs           []string `yaml:"dirs"`            // Search directories, later wins
	Texture        string   `yaml:"texture"`         // Terrain surface texture
	VertexShader   string   `yaml:"vertex_shader"`   // Optional override, "" = embedded
	FragmentShader string   `yaml:"fragment_shader"` // Optional override, "" = embedded
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
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			ControlSize: 20,
			FineSize:    200,
			UVScale:     10,
			Seed:        0,
		},
		Camera: CameraConfig{
			Speed:          4.0,
			FastMultiplier: 2.0,
			AngularSpeed:   60.0,
			EyeOffset:      2.0,
			FOVDegrees:     60.0,
			Near:           0.01,
			Far:            1000.0,
		},
		Assets: AssetsConfig{
			Dirs:    []string{"assets"},
			Texture: "textures/sand.png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Package config handles instancer configuration loading and management.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Camera  CameraConfig  `yaml:"camera"`
	Culling CullingConfig `yaml:"culling"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for the interactive viewer.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Headless   bool `yaml:"headless"` // Run frames without a window
	Frames     int  `yaml:"frames"`   // Frame count in headless mode
}

// CameraConfig holds the projection and orbit settings of the scene camera.
type CameraConfig struct {
	FOVDegrees float32    `yaml:"fov_degrees"`
	Near       float32    `yaml:"near"`
	Far        float32    `yaml:"far"`
	Distance   float32    `yaml:"distance"`
	Center     [3]float32 `yaml:"center"`
}

// CullingConfig holds batching and culling behavior.
type CullingConfig struct {
	// StaticMeshes skips the per-frame matrix refresh after the first build.
	StaticMeshes bool `yaml:"static_meshes"`
	// HideGrouped hides renderables once they are drawn through a batch.
	HideGrouped bool `yaml:"hide_grouped"`
	// Spin rotates dynamic objects around Y, in degrees per frame.
	Spin float32 `yaml:"spin"`
}

// SceneConfig holds the scene description location.
type SceneConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
			Frames: 3,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			Near:       0.1,
			Far:        500,
			Distance:   20,
		},
		Culling: CullingConfig{
			StaticMeshes: true,
			HideGrouped:  true,
			Spin:         1,
		},
		Scene: SceneConfig{
			Path: "scene.yaml",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

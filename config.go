package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the demo's window and camera settings, loaded from a TOML
// file. Fields left out of the file keep their defaults.
type Config struct {
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Title   string `toml:"title"`
	LogFile string `toml:"log_file"`

	Camera CameraConfig `toml:"camera"`
}

// DefaultConfig returns the settings the demo starts with when no config
// file is present.
func DefaultConfig() Config {
	return Config{
		Width:   640,
		Height:  480,
		Title:   "Triforces DEMO",
		LogFile: "gl.log",
		Camera: CameraConfig{
			Near:     0.1,
			Far:      100.0,
			FOV:      67.0,
			Speed:    3.0,
			YawSpeed: 50.0,
			Position: [3]float32{0, 0, 30},
		},
	}
}

// LoadConfig reads settings from a TOML file, applying them over the
// defaults. A missing file is not an error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const settingsFileName = "settings.toml"

// Settings holds the recommender tunables. Every field has a working
// default so the settings file is optional.
type Settings struct {
	CameraIndex     int    `toml:"camera_index"`
	FrameWidth      int    `toml:"frame_width"`
	FrameHeight     int    `toml:"frame_height"`
	FrameSkip       int    `toml:"frame_skip"`
	Stability       int    `toml:"stability"`
	RotationSeconds int    `toml:"rotation_seconds"`
	Market          string `toml:"market"`
	SearchLimit     int    `toml:"search_limit"`
	CascadeDir      string `toml:"cascade_dir"`
	LogLevel        string `toml:"log_level"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		CameraIndex:     0,
		FrameWidth:      640,
		FrameHeight:     480,
		FrameSkip:       30,
		Stability:       3,
		RotationSeconds: 10,
		Market:          "US",
		SearchLimit:     20,
		CascadeDir:      "/usr/share/opencv4/haarcascades",
		LogLevel:        "info",
	}
}

// DefaultSettingsPath returns ~/.config/moodtune/settings.toml.
func DefaultSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(configDir, "moodtune", settingsFileName), nil
}

// LoadSettings reads the TOML settings file at path, layering it over the
// defaults. A missing file yields the defaults with no error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings file: %w", err)
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}

	s.normalize()
	return s, nil
}

// normalize clamps out-of-range values back to the defaults rather than
// failing; a bad tunable should not stop the run.
func (s *Settings) normalize() {
	d := DefaultSettings()
	if s.FrameSkip <= 0 {
		s.FrameSkip = d.FrameSkip
	}
	if s.Stability <= 0 {
		s.Stability = d.Stability
	}
	if s.RotationSeconds <= 0 {
		s.RotationSeconds = d.RotationSeconds
	}
	if s.SearchLimit <= 0 {
		s.SearchLimit = d.SearchLimit
	}
	// Spotify caps search results at 50 per call.
	if s.SearchLimit > 50 {
		s.SearchLimit = 50
	}
	if s.FrameWidth <= 0 {
		s.FrameWidth = d.FrameWidth
	}
	if s.FrameHeight <= 0 {
		s.FrameHeight = d.FrameHeight
	}
	if s.Market == "" {
		s.Market = d.Market
	}
	if s.LogLevel == "" {
		s.LogLevel = d.LogLevel
	}
}

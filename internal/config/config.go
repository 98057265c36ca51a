package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Mode       string `json:"mode"`
	LogPath    string `json:"log_path"`
	ScoresPath string `json:"scores_path"`
	Preset     string `json:"preset"`
	SafeStart  bool   `json:"safe_start"`
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":        c.Mode,
		"log_path":    c.LogPath,
		"scores_path": c.ScoresPath,
		"preset":      c.Preset,
		"safe_start":  c.SafeStart,
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// Default places the log and score files under the user config dir and
// plays a beginner field with first-click safety on.
func Default() Config {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	dir = filepath.Join(dir, "sweeper")
	return Config{
		Mode:       "production",
		LogPath:    filepath.Join(dir, "sweeper.log"),
		ScoresPath: filepath.Join(dir, "scores.db"),
		Preset:     "beginner",
		SafeStart:  true,
	}
}

func ReadConfig(path string, config *Config) error {
	if b, err := os.ReadFile(path); err != nil {
		return err
	} else {
		return json.Unmarshal(b, config)
	}
}

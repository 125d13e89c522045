package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Preset is a named board setup selectable with --preset.
type Preset struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

type Config struct {
	LogLevel string            `json:"log_level"`
	Presets  map[string]Preset `json:"presets"`
}

// Default returns the built-in configuration: info logging and the three
// classic difficulty presets.
func Default() Config {
	return Config{
		LogLevel: "info",
		Presets: map[string]Preset{
			"beginner":     {Width: 9, Height: 9, MineCount: 10},
			"intermediate": {Width: 16, Height: 16, MineCount: 40},
			"expert":       {Width: 30, Height: 16, MineCount: 99},
		},
	}
}

// ReadConfig loads a JSON config file over *config, leaving untouched
// whatever the file does not mention.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, config); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"log_level": c.LogLevel,
		"presets":   len(c.Presets),
	}
}

package labeler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigFile = "config.json"

// WindowConfig remembers the last window size.
type WindowConfig struct {
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Config aggregates runtime settings persisted to config.json.
type Config struct {
	OutputPath       string       `json:"outputPath"`
	Columns          Columns      `json:"columns"`
	LastCommentsPath string       `json:"lastCommentsPath"`
	LastVideosPath   string       `json:"lastVideosPath"`
	Window           WindowConfig `json:"window"`
}

// ApplyDefaults populates zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputFile
	}
	c.Columns.ApplyDefaults()
	if c.Window.Width <= 0 {
		c.Window.Width = 1180
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 760
	}
}

// LoadConfig loads configuration from the given path or the default
// config.json. A missing file yields defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigFile
	}
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// SaveConfig persists configuration to disk.
func SaveConfig(path string, cfg Config) error {
	if path == "" {
		path = defaultConfigFile
	}
	tmp := path + ".tmp"
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	cfg.ApplyDefaults()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename config: %w", err)
	}
	return nil
}

package crimegame

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// DefaultConfig is what a fresh install runs with when no config file exists.
func DefaultConfig() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log  LogConfig  `toml:"log"`
	Save SaveConfig `toml:"save"`
	Sim  SimConfig  `toml:"sim"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type SaveConfig struct {
	// Path of the sqlite save database. If the database cannot be opened the
	// engine falls back to the JSON file at FallbackPath, then to memory-only.
	Path            string `toml:"path"`
	FallbackPath    string `toml:"fallback_path"`
	Key             string `toml:"key"`
	AutosaveSeconds int    `toml:"autosave_seconds"`
}

func (c SaveConfig) AutosaveInterval() time.Duration {
	return time.Duration(c.AutosaveSeconds) * time.Second
}

type SimConfig struct {
	TickRateMs int `toml:"tick_rate_ms"`
}

func (c SimConfig) TickRate() time.Duration {
	return time.Duration(c.TickRateMs) * time.Millisecond
}

func (c *Config) applyDefaults() {
	if c.Save.Path == "" {
		c.Save.Path = "crimegame.db"
	}
	if c.Save.FallbackPath == "" {
		c.Save.FallbackPath = "crimegame.save.json"
	}
	if c.Save.Key == "" {
		c.Save.Key = "idle-crime-storage"
	}
	if c.Save.AutosaveSeconds <= 0 {
		c.Save.AutosaveSeconds = 30
	}
	if c.Sim.TickRateMs <= 0 {
		c.Sim.TickRateMs = 100
	}
}

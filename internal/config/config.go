package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root device configuration.
type Config struct {
	Board     BoardConfig     `yaml:"board"`
	Settings  SettingsConfig  `yaml:"settings"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Tools     ToolsConfig     `yaml:"tools"`
}

// BoardConfig identifies the board in initialize replies.
type BoardConfig struct {
	Name         string `yaml:"name"`
	BuildVersion string `yaml:"build_version"`
}

// SettingsConfig locates the persistent settings store.
type SettingsConfig struct {
	Path string `yaml:"path"`
}

// SchedulerConfig sizes the application job queue.
type SchedulerConfig struct {
	QueueSize int `yaml:"queue_size"`
}

// ToolsConfig toggles built-in tool groups.
type ToolsConfig struct {
	// DisableUserOnly leaves the user-privileged tools unregistered, so
	// they are invisible even to withUserTools listings.
	DisableUserOnly bool `yaml:"disable_user_only"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Name:         "voicepod",
			BuildVersion: "dev",
		},
		Settings: SettingsConfig{
			Path: "settings.db",
		},
		Scheduler: SchedulerConfig{
			QueueSize: 32,
		},
	}
}

// Load reads a YAML config file, applying defaults for omitted fields.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the device cannot run with.
func (c *Config) Validate() error {
	if c.Board.Name == "" {
		return fmt.Errorf("config: board.name must not be empty")
	}

	if c.Scheduler.QueueSize < 0 {
		return fmt.Errorf("config: scheduler.queue_size must not be negative")
	}

	return nil
}

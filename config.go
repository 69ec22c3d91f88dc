package devicekit

import "github.com/voicepod/devicekit-go/internal/config"

// Config is the root device configuration.
type Config = config.Config

// LoadConfig reads a YAML config file, applying defaults for omitted fields.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return config.Default()
}

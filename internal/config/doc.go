// Package config loads the device board configuration from YAML.
package config

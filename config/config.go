// Package config loads session configuration from a TOML file: sane
// built-in defaults, overridden by an on-disk file if one exists,
// resolved to a platform-specific path when the caller doesn't name one.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"x64lab/vm"
)

// Config is the on-disk session configuration for x64lab.
type Config struct {
	// Execution settings
	Execution struct {
		MemorySize   uint64 `toml:"memory_size"`   // CPU linear memory size in bytes
		DefaultEntry string `toml:"default_entry"` // hex or decimal RIP seed; loaded and saved only, the session and "run" never read it
	} `toml:"execution"`

	// Encoder settings
	Encoder struct {
		Backend string `toml:"backend"` // name of the external encoder backend (keystone)
	} `toml:"encoder"`

	// Display settings
	Display struct {
		NumberFormat string `toml:"number_format"` // "hex" or "decimal", default for memory dumps
	} `toml:"display"`
}

// DefaultConfig returns the built-in defaults used when no config file
// is present or overrides are incomplete.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.MemorySize = vm.DefaultMemorySize
	cfg.Execution.DefaultEntry = "0x0"

	cfg.Encoder.Backend = "keystone"

	cfg.Display.NumberFormat = "hex"

	return cfg
}

// GetConfigPath returns the platform-specific config file path,
// creating the containing directory if needed.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "x64lab")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "x64lab")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path, falling back to defaults if
// the file does not exist. A malformed file is reported as an error
// rather than silently ignored.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes the configuration to path as TOML.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

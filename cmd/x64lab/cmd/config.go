package cmd

import (
	"x64lab/config"
	"x64lab/model"
)

// loadConfig resolves --config if set, otherwise the platform default
// config path, falling back to built-in defaults on any load error.
func loadConfig() *config.Config {
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// numberFormatFromConfig maps the config's Display.NumberFormat string
// onto a model.MemoryDumpFormat, defaulting to hex for anything that
// isn't exactly "decimal".
func numberFormatFromConfig(s string) model.MemoryDumpFormat {
	if s == "decimal" {
		return model.FormatDecimal
	}
	return model.FormatHex
}

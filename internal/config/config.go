// Package config loads driver settings from environment variables.
package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the sigplot driver
type Config struct {
	OutputDir    string // directory the comparison images are written to
	ImageFormat  string // png, svg, pdf or html
	ScenarioFile string // optional YAML scenario; empty runs the built-in demo
	LogLevel     string // zerolog level name
}

// Load loads configuration from environment variables with defaults.
func Load() (*Config, error) {
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("IMAGE_FORMAT", "png")
	viper.SetDefault("SCENARIO_FILE", "")
	viper.SetDefault("LOG_LEVEL", "info")

	// Environment variables override defaults
	viper.AutomaticEnv()
	viper.SetEnvPrefix("SIGPLOT")
	viper.BindEnv("OUTPUT_DIR")
	viper.BindEnv("IMAGE_FORMAT")
	viper.BindEnv("SCENARIO_FILE")
	viper.BindEnv("LOG_LEVEL")

	config := &Config{
		OutputDir:    viper.GetString("OUTPUT_DIR"),
		ImageFormat:  viper.GetString("IMAGE_FORMAT"),
		ScenarioFile: viper.GetString("SCENARIO_FILE"),
		LogLevel:     viper.GetString("LOG_LEVEL"),
	}

	log.Debug().
		Str("output_dir", config.OutputDir).
		Str("image_format", config.ImageFormat).
		Str("scenario_file", config.ScenarioFile).
		Msg("Configuration loaded")

	return config, nil
}

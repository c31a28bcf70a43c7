package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the CLI configuration
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// OutputConfig controls how patterns are printed
type OutputConfig struct {
	Format  string `mapstructure:"format"`  // text, json, ics or xcal
	Summary string `mapstructure:"summary"` // SUMMARY of generated events
}

// LogConfig controls diagnostics written to stderr
type LogConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn or error
}

var formats = []string{"text", "json", "ics", "xcal"}

// Load reads configuration from configPath, or from calpattern.yaml in the
// usual places when configPath is empty. A missing default file is not an error.
// Environment variables prefixed with CALPATTERN_ override file values.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("output.format", "text")
	v.SetDefault("output.summary", "")
	v.SetDefault("log.level", "warn")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("calpattern")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/calpattern")
	}

	v.SetEnvPrefix("CALPATTERN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Output.Format = strings.ToLower(config.Output.Format)
	config.Log.Level = strings.ToLower(config.Log.Level)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	valid := false
	for _, f := range formats {
		if c.Output.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("output.format must be one of %s, got '%s'", strings.Join(formats, ", "), c.Output.Format)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel converts the configured level name
func (c *LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Level)
	}
	return level, nil
}

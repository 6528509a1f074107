// Package config loads the booktruck configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Daemon   DaemonConfig   `mapstructure:"daemon"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // "file" or "sqlite"
	Dir    string `mapstructure:"dir"`    // data directory, default ~/.booktruck
}

// ScheduleConfig tunes the generated stop window
type ScheduleConfig struct {
	DaysAhead int      `mapstructure:"days_ahead"`
	Timezone  string   `mapstructure:"timezone"`
	Locations []string `mapstructure:"locations"`
}

// DaemonConfig represents daemon mode configuration
type DaemonConfig struct {
	RefreshCron string `mapstructure:"refresh_cron"` // cron spec for the daily refresh
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load loads configuration from file. A missing config file is fine;
// defaults cover everything.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.booktruck")
		v.AddConfigPath("/etc/booktruck")
	}

	v.SetEnvPrefix("booktruck")
	v.AutomaticEnv()

	v.SetDefault("storage.driver", "file")
	v.SetDefault("schedule.days_ahead", 14)
	v.SetDefault("schedule.timezone", "America/New_York")
	v.SetDefault("daemon.refresh_cron", "0 6 * * *")
	v.SetDefault("daemon.log_level", "info")

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

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "file", "sqlite":
	default:
		return fmt.Errorf("storage.driver must be 'file' or 'sqlite', got '%s'", c.Storage.Driver)
	}

	if c.Schedule.DaysAhead <= 0 {
		return fmt.Errorf("schedule.days_ahead must be positive")
	}
	if _, err := time.LoadLocation(c.Schedule.Timezone); err != nil {
		return fmt.Errorf("schedule.timezone is not a valid IANA zone: %w", err)
	}
	if c.Daemon.RefreshCron == "" {
		return fmt.Errorf("daemon.refresh_cron is required")
	}

	return nil
}

// Location returns the schedule reference timezone.
func (c *ScheduleConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// DataDir returns the resolved data directory, defaulting to ~/.booktruck.
func (c *StorageConfig) DataDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".booktruck"), nil
}

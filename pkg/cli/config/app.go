package config

import (
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig represents the optional application configuration file
type AppConfig struct {
	ChangeLog ChangeLogConfig `toml:"changelog"`
}

// ChangeLogConfig controls the mutation audit log
type ChangeLogConfig struct {
	RetentionDays        int `toml:"retention_days"`
	PruneIntervalMinutes int `toml:"prune_interval_minutes"`
	ListLimit            int `toml:"list_limit"`
}

// DefaultAppConfig returns the configuration used when no file is given
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		ChangeLog: ChangeLogConfig{
			RetentionDays:        14,
			PruneIntervalMinutes: 60,
			ListLimit:            50,
		},
	}
}

// Validate checks if the AppConfig is valid
func (a *AppConfig) Validate() error {
	if a.ChangeLog.RetentionDays <= 0 {
		return goerr.New("changelog retention_days must be positive",
			goerr.V("retention_days", a.ChangeLog.RetentionDays))
	}
	if a.ChangeLog.PruneIntervalMinutes <= 0 {
		return goerr.New("changelog prune_interval_minutes must be positive",
			goerr.V("prune_interval_minutes", a.ChangeLog.PruneIntervalMinutes))
	}
	if a.ChangeLog.ListLimit <= 0 {
		return goerr.New("changelog list_limit must be positive",
			goerr.V("list_limit", a.ChangeLog.ListLimit))
	}
	return nil
}

// Retention returns the change-log retention period
func (a *AppConfig) Retention() time.Duration {
	return time.Duration(a.ChangeLog.RetentionDays) * 24 * time.Hour
}

// PruneInterval returns how often the retention worker runs
func (a *AppConfig) PruneInterval() time.Duration {
	return time.Duration(a.ChangeLog.PruneIntervalMinutes) * time.Minute
}

// LoadAppConfiguration loads the application configuration from a TOML file.
// Missing values fall back to the defaults.
func LoadAppConfiguration(path string) (*AppConfig, error) {
	config := DefaultAppConfig()
	if path == "" {
		return config, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML config", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "config validation failed", goerr.V("path", path))
	}

	return config, nil
}

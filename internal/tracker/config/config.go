package config

import (
	"time"

	"fpl-price-tracker/pkg/common"
	"fpl-price-tracker/pkg/config"
)

// FPL holds the configuration for the Fantasy Premier League API.
type FPL struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

// Storage holds the tracker's output file configuration.
type Storage struct {
	SnapshotFile string `mapstructure:"snapshot_file"`
}

// Config holds the full configuration for the tracker service.
type Config struct {
	App       config.App       `mapstructure:"app"`
	Logger    config.Logger    `mapstructure:"logger"`
	FPL       FPL              `mapstructure:"fpl"`
	Storage   Storage          `mapstructure:"storage"`
	Scheduler config.Scheduler `mapstructure:"scheduler"`
}

// Load reads the tracker configuration from the given path and applies
// defaults for anything left unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(path, cfg); err != nil {
		return nil, err
	}

	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.FPL.BaseURL == "" {
		cfg.FPL.BaseURL = common.DefaultFPLBaseURL
	}
	if cfg.FPL.Timeout == 0 {
		cfg.FPL.Timeout = 10 * time.Second
	}
	if cfg.FPL.MaxRequestPerMinute == 0 {
		cfg.FPL.MaxRequestPerMinute = 6
	}
	if cfg.Storage.SnapshotFile == "" {
		cfg.Storage.SnapshotFile = common.DefaultSnapshotFile
	}

	return cfg, nil
}

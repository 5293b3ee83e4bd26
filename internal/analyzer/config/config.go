package config

import (
	"fpl-price-tracker/pkg/common"
	"fpl-price-tracker/pkg/config"
)

// Storage holds the analyzer's input and output file configuration.
type Storage struct {
	SnapshotFile   string `mapstructure:"snapshot_file"`
	PredictionFile string `mapstructure:"prediction_file"`
	SummaryFile    string `mapstructure:"summary_file"`
}

// Analyzer holds the analysis tuning parameters.
type Analyzer struct {
	// Threshold is the net-transfer magnitude assumed to trigger one price
	// step.
	Threshold   int `mapstructure:"threshold"`
	TopN        int `mapstructure:"top_n"`
	SummarySize int `mapstructure:"summary_size"`
}

// Config holds the full configuration for the analyzer service.
type Config struct {
	App       config.App       `mapstructure:"app"`
	Logger    config.Logger    `mapstructure:"logger"`
	Storage   Storage          `mapstructure:"storage"`
	Analyzer  Analyzer         `mapstructure:"analyzer"`
	Scheduler config.Scheduler `mapstructure:"scheduler"`
	API       config.API       `mapstructure:"api"`
	Telegram  config.Telegram  `mapstructure:"telegram"`
}

// Load reads the analyzer configuration from the given path and applies
// defaults for anything left unset.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := config.Load(path, cfg); err != nil {
		return nil, err
	}

	if cfg.Logger.Level == "" {
		cfg.Logger.Level = "info"
	}
	if cfg.Storage.SnapshotFile == "" {
		cfg.Storage.SnapshotFile = common.DefaultSnapshotFile
	}
	if cfg.Storage.PredictionFile == "" {
		cfg.Storage.PredictionFile = common.DefaultPredictionFile
	}
	if cfg.Storage.SummaryFile == "" {
		cfg.Storage.SummaryFile = common.DefaultSummaryFile
	}
	if cfg.Analyzer.Threshold == 0 {
		cfg.Analyzer.Threshold = common.DefaultTransferThreshold
	}
	if cfg.Analyzer.TopN == 0 {
		cfg.Analyzer.TopN = common.DefaultTopN
	}
	if cfg.Analyzer.SummarySize == 0 {
		cfg.Analyzer.SummarySize = common.DefaultSummarySize
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8081
	}

	return cfg, nil
}

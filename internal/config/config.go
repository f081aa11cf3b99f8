// Package config holds runtime configuration, loaded from defaults,
// an optional YAML file, and ACELENS_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultInputPath     = "fk-df.txt"
	defaultCSVPath       = "high_risk_targets.csv"
	defaultTopProcesses  = 5
	defaultTopFiles      = 15
	defaultTopExtensions = 8
	defaultTopHours      = 12
	defaultCSVLimit      = 200
)

// Config is the full runtime configuration.
type Config struct {
	Input  InputConfig  `mapstructure:",squash"`
	Report ReportConfig `mapstructure:",squash"`
	Export ExportConfig `mapstructure:",squash"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log-level"`
	// Pause waits for Enter before exiting, for drag-and-drop use.
	Pause bool `mapstructure:"pause"`
}

// InputConfig locates the log file to analyze.
type InputConfig struct {
	Path string `mapstructure:"input-path"`
}

// ReportConfig controls the terminal report.
type ReportConfig struct {
	TopProcesses  int  `mapstructure:"top-processes"`
	TopFiles      int  `mapstructure:"top-files"`
	TopExtensions int  `mapstructure:"top-extensions"`
	TopHours      int  `mapstructure:"top-hours"`
	NoColor       bool `mapstructure:"no-color"`
}

// ExportConfig controls the CSV and optional JSON exports.
type ExportConfig struct {
	CSVPath  string `mapstructure:"csv-path"`
	CSVLimit int    `mapstructure:"csv-limit"`
	// JSONPath enables the JSON summary sink when non-empty.
	JSONPath string `mapstructure:"json-path"`
}

// Load reads configuration. configPath may be empty; a missing explicit
// file is an error, since the user asked for it.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ACELENS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("input-path", defaultInputPath)
	v.SetDefault("csv-path", defaultCSVPath)
	v.SetDefault("csv-limit", defaultCSVLimit)
	v.SetDefault("json-path", "")
	v.SetDefault("top-processes", defaultTopProcesses)
	v.SetDefault("top-files", defaultTopFiles)
	v.SetDefault("top-extensions", defaultTopExtensions)
	v.SetDefault("top-hours", defaultTopHours)
	v.SetDefault("no-color", false)
	v.SetDefault("log-level", "info")
	v.SetDefault("pause", false)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

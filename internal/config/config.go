// Package config loads analyzer settings from defaults, an optional
// analyzer.yaml / analyzer.toml file and ANALYZER_* environment variables.
package config

import (
	"strings"

	"go-property-analyzer/internal/apperr"

	"github.com/spf13/viper"
)

// Config is the analyzer configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	History   HistoryConfig   `mapstructure:"history"`
	Export    ExportConfig    `mapstructure:"export"`
	Histogram HistogramConfig `mapstructure:"histogram"`
	Classify  ClassifyConfig  `mapstructure:"classify"`
	Ingest    IngestConfig    `mapstructure:"ingest"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// HistoryConfig configures the SQLite query log.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"` // ":memory:" keeps the log in process
}

// ExportConfig configures where exports are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// HistogramConfig holds histogram defaults.
type HistogramConfig struct {
	Bins int `mapstructure:"bins"`
}

// ClassifyConfig holds the default keyword group and the text column it
// is matched against.
type ClassifyConfig struct {
	Column   string   `mapstructure:"column"`
	Keywords []string `mapstructure:"keywords"`
}

// IngestConfig controls retries of URL sources. Delays are Go duration
// strings such as "500ms" or "2s".
type IngestConfig struct {
	RetryAttempts int    `mapstructure:"retry_attempts"`
	RetryDelay    string `mapstructure:"retry_delay"`
	RetryMaxDelay string `mapstructure:"retry_max_delay"`
}

// LogConfig selects the log encoder.
type LogConfig struct {
	JSON bool `mapstructure:"json"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")

	v.SetDefault("history.enabled", true)
	v.SetDefault("history.path", "analyzer.db")

	v.SetDefault("export.dir", "output")

	v.SetDefault("histogram.bins", 20)

	v.SetDefault("classify.column", "comments")
	v.SetDefault("classify.keywords", []string{"clean", "tidy", "hygiene", "neat"})

	v.SetDefault("ingest.retry_attempts", 3)
	v.SetDefault("ingest.retry_delay", "1s")
	v.SetDefault("ingest.retry_max_delay", "30s")

	v.SetDefault("log.json", false)
}

// New returns a Viper instance with defaults and environment binding set
// up. configFile, when non-empty, is read explicitly; otherwise an
// analyzer.{yaml,toml} in the working directory is used if present.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix("ANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, apperr.Wrapf(err, "read config file %s", configFile)
		}
		return v, nil
	}

	v.SetConfigName("analyzer")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !apperr.As(err, &notFound) {
			return nil, apperr.Wrap(err, "read config")
		}
	}
	return v, nil
}

// Load reads the configuration and validates it.
func Load(configFile string) (*Config, error) {
	v, err := New(configFile)
	if err != nil {
		return nil, err
	}
	return LoadWithViper(v)
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperr.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return apperr.InvalidArgumentf("server.addr cannot be empty")
	}
	if c.History.Enabled && c.History.Path == "" {
		return apperr.InvalidArgumentf("history.path cannot be empty when history is enabled")
	}
	if c.Export.Dir == "" {
		return apperr.InvalidArgumentf("export.dir cannot be empty")
	}
	if c.Histogram.Bins < 1 {
		return apperr.InvalidArgumentf("histogram.bins must be >= 1, got %d", c.Histogram.Bins)
	}
	if c.Classify.Column == "" {
		return apperr.InvalidArgumentf("classify.column cannot be empty")
	}
	if c.Ingest.RetryAttempts < 1 {
		return apperr.InvalidArgumentf("ingest.retry_attempts must be >= 1, got %d", c.Ingest.RetryAttempts)
	}
	return nil
}

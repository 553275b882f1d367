package config

import "time"

// Default configuration values.
const (
	DefaultLogLevel       = "INFO"
	DefaultLogFormat      = "text"
	DefaultLogOutput      = "stderr"
	DefaultRegion         = "us-east-1"
	DefaultRequestTimeout = 30 * time.Second
)

// DefaultConfig returns a fully populated configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills in default values for any unset fields.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = DefaultLogOutput
	}

	if cfg.Store.Region == "" {
		cfg.Store.Region = DefaultRegion
	}
	if cfg.Store.RequestTimeout == 0 {
		cfg.Store.RequestTimeout = DefaultRequestTimeout
	}
}

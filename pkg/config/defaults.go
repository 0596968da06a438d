package config

import "time"

// Default values for configuration fields.
const (
	DefaultAPITimeout = 30 * time.Second

	DefaultCooldown  = "5m"
	DefaultTimeGrain = "1m"
	DefaultStatistic = "Average"

	DefaultOutputFormat = "json"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// ApplyDefaults fills unset fields with their default values.
func ApplyDefaults(cfg *Config) {
	if cfg.API.Timeout == 0 {
		cfg.API.Timeout = DefaultAPITimeout
	}
	if cfg.Defaults.Cooldown == "" {
		cfg.Defaults.Cooldown = DefaultCooldown
	}
	if cfg.Defaults.TimeGrain == "" {
		cfg.Defaults.TimeGrain = DefaultTimeGrain
	}
	if cfg.Defaults.Statistic == "" {
		cfg.Defaults.Statistic = DefaultStatistic
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLogFormat
	}
}

// Default returns a configuration with every field at its default value.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

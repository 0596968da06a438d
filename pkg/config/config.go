package config

import "time"

// Config is the root configuration for the vigil CLI. All fields can be set
// in the config file and overridden by environment variables.
type Config struct {
	// API contains the management API connection settings.
	API APIConfig `yaml:"api"`

	// Defaults contains values applied during rule binding when the user
	// does not supply them on the command line.
	Defaults DefaultsConfig `yaml:"defaults"`

	// Output controls how assembled documents are rendered.
	Output OutputConfig `yaml:"output"`

	// Logging controls diagnostic output.
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig contains management API connection settings.
type APIConfig struct {
	// Endpoint is the base URL of the management API. Required only when
	// submitting; rendering locally needs no endpoint.
	Endpoint string `yaml:"endpoint"`

	// Subscription is the default subscription scope for resource URIs.
	Subscription string `yaml:"subscription"`

	// ResourceGroup is the default resource group for resource URIs.
	ResourceGroup string `yaml:"resource_group"`

	// Timeout bounds each API request.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultsConfig contains binding-stage defaults.
type DefaultsConfig struct {
	// Cooldown is the default scale-rule cooldown as an ISO8601 duration
	// or shorthand. Default: 5m
	Cooldown string `yaml:"cooldown"`

	// TimeGrain is the default metric sampling granularity.
	// Default: 1m
	TimeGrain string `yaml:"time_grain"`

	// Statistic is the default within-grain statistic.
	// Default: Average
	Statistic string `yaml:"statistic"`
}

// OutputConfig controls document rendering.
type OutputConfig struct {
	// Format is one of "json" or "yaml". Default: json
	Format string `yaml:"format"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: warn
	Level string `yaml:"level"`

	// Format is "text" or "json". Default: text
	Format string `yaml:"format"`
}

package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from a YAML file, applies defaults, validates,
// and returns the result. A missing file is not an error: the defaults are
// returned so the CLI works without any configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWithEnvOverrides loads configuration from a YAML file and then applies
// environment variable overrides. Variables follow the naming convention
// VIGIL_SECTION_FIELD (e.g. VIGIL_API_ENDPOINT) and always take precedence
// over file values.
func LoadWithEnvOverrides(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrides := map[string]*string{
		"VIGIL_API_ENDPOINT":       &cfg.API.Endpoint,
		"VIGIL_API_SUBSCRIPTION":   &cfg.API.Subscription,
		"VIGIL_API_RESOURCE_GROUP": &cfg.API.ResourceGroup,
		"VIGIL_DEFAULTS_COOLDOWN":  &cfg.Defaults.Cooldown,
		"VIGIL_OUTPUT_FORMAT":      &cfg.Output.Format,
		"VIGIL_LOG_LEVEL":          &cfg.Logging.Level,
		"VIGIL_LOG_FORMAT":         &cfg.Logging.Format,
	}
	for name, field := range overrides {
		if value := os.Getenv(name); value != "" {
			*field = value
		}
	}
}

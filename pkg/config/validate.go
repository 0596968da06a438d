package config

import (
	"fmt"
	"net/url"
	"strings"
)

// FieldError represents a validation error for a specific configuration
// field.
type FieldError struct {
	// Field is the dotted path to the configuration field (e.g.
	// "api.endpoint").
	Field string

	// Message is a human-readable error message.
	Message string
}

// Error returns the error message for this field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError represents one or more validation errors in a
// configuration.
type ValidationError struct {
	Errors []FieldError
}

// Error returns a formatted string containing all validation errors.
func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "configuration validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("configuration validation failed: %s", e.Errors[0].Error())
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("configuration validation failed with %d errors:\n", len(e.Errors)))
	for _, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  - %s\n", err.Error()))
	}
	return sb.String()
}

// Validate checks the configuration and collects all field errors before
// returning. It returns nil when the configuration is valid.
func Validate(cfg *Config) error {
	var errs []FieldError

	if cfg.API.Endpoint != "" {
		u, err := url.Parse(cfg.API.Endpoint)
		if err != nil || !u.IsAbs() {
			errs = append(errs, FieldError{
				Field:   "api.endpoint",
				Message: fmt.Sprintf("must be an absolute URL, got %q", cfg.API.Endpoint),
			})
		}
	}
	if cfg.API.Timeout < 0 {
		errs = append(errs, FieldError{
			Field:   "api.timeout",
			Message: "timeout must be positive",
		})
	}

	switch cfg.Output.Format {
	case "json", "yaml":
	default:
		errs = append(errs, FieldError{
			Field:   "output.format",
			Message: fmt.Sprintf("must be json or yaml, got %q", cfg.Output.Format),
		})
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be debug, info, warn, or error, got %q", cfg.Logging.Level),
		})
	}
	switch cfg.Logging.Format {
	case "text", "json":
	default:
		errs = append(errs, FieldError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be text or json, got %q", cfg.Logging.Format),
		})
	}

	switch cfg.Defaults.Statistic {
	case "Average", "Min", "Max", "Sum":
	default:
		errs = append(errs, FieldError{
			Field:   "defaults.statistic",
			Message: fmt.Sprintf("must be Average, Min, Max, or Sum, got %q", cfg.Defaults.Statistic),
		})
	}

	if len(errs) > 0 {
		return ValidationError{Errors: errs}
	}
	return nil
}
